// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mindcare/mindcare-tui/internal/ui/styles"
	"github.com/mindcare/mindcare-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// HealthState describes the last known state of the backend.
type HealthState int

const (
	HealthUnknown HealthState = iota
	HealthOK
	HealthDown
)

// StatusBar renders the bottom status line: session identity on the left,
// backend health and key hints on the right.
type StatusBar struct {
	userName string
	health   HealthState
	hint     string
	width    int
}

// NewStatusBar creates a status bar with default hints.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		health: HealthUnknown,
		hint:   "Tab: vistas | Ctrl+C: salir",
		width:  80,
	}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetUser updates the displayed user name. An empty name shows the bar in
// logged-out form.
func (s *StatusBar) SetUser(name string) {
	s.userName = name
}

// SetHealth records the latest backend health probe result.
func (s *StatusBar) SetHealth(state HealthState) {
	s.health = state
}

// SetHint replaces the key hint text.
func (s *StatusBar) SetHint(hint string) {
	s.hint = hint
}

// View renders the status bar as a single full-width line.
func (s *StatusBar) View(theme *styles.Theme) string {
	left := "MindCare"
	if s.userName != "" {
		left += " | " + s.userName
	}

	var health string
	switch s.health {
	case HealthOK:
		health = theme.StatusHealthy.Render("● conectado")
	case HealthDown:
		health = theme.StatusError.Render("● sin conexión")
	default:
		health = theme.Muted.Render("● ...")
	}

	right := health + "  " + s.hint

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	line := left + util.PadRight("", gap) + right
	return theme.StatusBar.Width(s.width).Render(line)
}
