// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package alerts implements the two alert views: the recent list shown in
// the Alerts tab and the chronological timeline shown in the History tab.
// Both render the same fetch-scoped data independently; nothing is cached
// across fetches.
package alerts

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/model"
	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

// =============================================================================
// ALERTS MODEL
// =============================================================================

// Mode selects which rendering the model produces.
type Mode int

const (
	// ModeRecent lists alerts newest first, as returned by the backend.
	ModeRecent Mode = iota
	// ModeHistory re-sorts oldest to newest and draws a timeline.
	ModeHistory
)

// fetchedMsg carries a fetch outcome, tagged with the requesting mode so
// the recent and history models ignore each other's responses.
type fetchedMsg struct {
	mode   Mode
	alerts []model.Alert
	err    error
}

// Model holds one alert rendering target.
type Model struct {
	client *api.Client
	theme  *styles.Theme
	mode   Mode

	alerts  []model.Alert
	fetched bool
	loading bool
	err     error

	width int
}

// New creates an alerts model for the given mode.
func New(client *api.Client, theme *styles.Theme, mode Mode) Model {
	return Model{client: client, theme: theme, mode: mode, width: 80}
}

// SetWidth updates the render width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Fetch returns the command that loads the alert list for the user. The
// previous list keeps rendering until the response lands.
func (m *Model) Fetch(userID string) tea.Cmd {
	m.loading = true
	client := m.client
	mode := m.mode
	return func() tea.Msg {
		alerts, err := client.FetchAlerts(context.Background(), userID)
		return fetchedMsg{mode: mode, alerts: alerts, err: err}
	}
}

// Reset discards fetched data. Used on logout.
func (m *Model) Reset() {
	m.alerts = nil
	m.fetched = false
	m.loading = false
	m.err = nil
}

// Update handles fetch results. Responses for the other mode pass through
// untouched; a late response simply overwrites an earlier one.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if fm, ok := msg.(fetchedMsg); ok && fm.mode == m.mode {
		m.loading = false
		m.fetched = true
		if fm.err != nil {
			m.err = fm.err
			m.alerts = nil
		} else {
			m.err = nil
			m.alerts = fm.alerts
		}
	}
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the alert region for the model's mode.
func (m Model) View() string {
	var b strings.Builder

	title := "Alertas recientes"
	if m.mode == ModeHistory {
		title = "Historial de alertas"
	}
	b.WriteString(m.theme.HeaderTitle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.ErrorBox.Render(
			"No se pudieron cargar las alertas: " + m.err.Error()))
	case m.loading && !m.fetched:
		b.WriteString(m.theme.Muted.Render("Cargando alertas..."))
	case m.fetched && len(m.alerts) == 0:
		b.WriteString(m.theme.AlertEmpty.Render("No hay alertas registradas."))
	case !m.fetched:
		b.WriteString(m.theme.Muted.Render("Cargando alertas..."))
	default:
		m.renderAlerts(&b)
	}

	return b.String()
}

// renderAlerts writes the alert entries in mode order.
func (m Model) renderAlerts(b *strings.Builder) {
	alerts := m.alerts
	if m.mode == ModeHistory {
		// The backend returns newest first; the timeline reads oldest first.
		alerts = reversed(alerts)
	}

	for i, alert := range alerts {
		if i > 0 {
			if m.mode == ModeHistory {
				b.WriteString("\n" + m.theme.Muted.Render("   │") + "\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(m.renderAlert(alert))
	}
}

// renderAlert formats a single entry: icon, label, message, score detail.
func (m Model) renderAlert(alert model.Alert) string {
	meta, ok := alert.Level.Meta()
	if !ok {
		// Stored alerts always carry a classified level; unknown values
		// fall back to the low tier.
		meta, _ = model.RiskLow.Meta()
	}

	message := alert.Message
	if message == "" {
		message = "(mensaje no disponible)"
	}

	value := "-"
	if alert.Value != nil {
		value = strconv.FormatFloat(*alert.Value, 'f', 3, 64)
	}

	head := meta.Icon + " " + meta.Label + " · " + alert.Classification
	detail := "puntuación " + strconv.FormatFloat(alert.Score, 'f', 3, 64) +
		" · valor " + value
	when := ""
	if !alert.Timestamp.IsZero() {
		when = alert.Timestamp.Format("2006-01-02 15:04")
	}

	lines := head + "\n" + message + "\n" +
		m.theme.AlertMeta.Render(strings.TrimSpace(detail+"  "+when))

	return m.theme.AlertStyle(alert.Level).Width(m.width - 4).Render(lines)
}

func reversed(in []model.Alert) []model.Alert {
	out := make([]model.Alert, len(in))
	for i, a := range in {
		out[len(in)-1-i] = a
	}
	return out
}
