// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package stats implements the statistics view: total interactions, last
// emotional state with a representative emoji, and the emotional trend
// sparkline. The view holds no cache; every entry re-fetches and the
// fields reset to placeholders while the request is in flight.
package stats

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/model"
	"github.com/mindcare/mindcare-tui/internal/ui/components"
	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

// =============================================================================
// STATS MODEL
// =============================================================================

// fetchedMsg carries a stats fetch outcome.
type fetchedMsg struct {
	snapshot *model.StatsSnapshot
	err      error
}

// Model holds the stats view state.
type Model struct {
	client *api.Client
	theme  *styles.Theme
	spark  *components.Sparkline

	snapshot *model.StatsSnapshot
	failed   bool
	loading  bool
}

// New creates a stats model with an empty chart.
func New(client *api.Client, theme *styles.Theme) Model {
	return Model{
		client: client,
		theme:  theme,
		spark:  components.NewSparkline(40),
	}
}

// Fetch resets the view to placeholders and returns the command that loads
// a fresh snapshot. Stale data never survives into the round trip.
func (m *Model) Fetch(userID string) tea.Cmd {
	m.snapshot = nil
	m.failed = false
	m.loading = true
	m.spark.Clear()

	client := m.client
	return func() tea.Msg {
		snapshot, err := client.FetchStats(context.Background(), userID)
		return fetchedMsg{snapshot: snapshot, err: err}
	}
}

// Reset discards fetched data. Used on logout.
func (m *Model) Reset() {
	m.snapshot = nil
	m.failed = false
	m.loading = false
	m.spark.Clear()
}

// Update handles fetch results.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if fm, ok := msg.(fetchedMsg); ok {
		m.loading = false
		if fm.err != nil {
			m.failed = true
			m.snapshot = nil
			m.spark.Clear()
		} else {
			m.failed = false
			m.snapshot = fm.snapshot
			m.spark.SetSeries(fm.snapshot.EmotionalTrend)
		}
	}
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the stats region.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render("Tus estadísticas"))
	b.WriteString("\n\n")

	total := "-"
	state := "-"
	emoji := ""

	switch {
	case m.failed:
		state = "Error"
	case m.snapshot != nil:
		total = strconv.Itoa(m.snapshot.TotalInteractions)
		state = m.snapshot.LastEmotionalState
		if state == "" {
			state = "-"
		}
		emoji = m.snapshot.MoodEmoji()
	}

	b.WriteString(m.theme.StatsLabel.Render("Interacciones totales: "))
	b.WriteString(m.theme.StatsValue.Render(total))
	b.WriteString("\n")

	b.WriteString(m.theme.StatsLabel.Render("Último estado emocional: "))
	b.WriteString(m.theme.StatsValue.Render(strings.TrimSpace(state + " " + emoji)))
	b.WriteString("\n\n")

	b.WriteString(m.theme.StatsLabel.Render("Tendencia emocional"))
	b.WriteString("\n")
	b.WriteString(m.spark.View(m.theme))

	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Muted.Render("Actualizando..."))
	}

	return b.String()
}
