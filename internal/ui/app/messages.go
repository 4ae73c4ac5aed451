// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/ui/components"
)

// =============================================================================
// MESSAGE TYPES AND COMMANDS
// =============================================================================

// NavigateMsg requests a view transition. Views outside the known set are
// ignored.
type NavigateMsg struct {
	View View
}

// Navigate builds a command that dispatches a NavigateMsg.
func Navigate(view View) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{View: view}
	}
}

// healthMsg carries the result of a backend health probe.
type healthMsg struct {
	health *api.Health
	err    error
}

// healthCmd probes the backend health endpoint.
func (m Model) healthCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		health, err := client.CheckHealth(context.Background())
		return healthMsg{health: health, err: err}
	}
}

// healthState maps a probe result to the status bar state.
func healthState(msg healthMsg) components.HealthState {
	if msg.err != nil || msg.health == nil {
		return components.HealthDown
	}
	return components.HealthOK
}
