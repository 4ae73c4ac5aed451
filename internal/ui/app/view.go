// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the whole screen for the current state.
func (m Model) View() string {
	if m.view == ViewLoggedOut {
		return m.loginView()
	}

	var b strings.Builder
	b.WriteString(m.navbar.View(m.theme))
	b.WriteString("\n")

	switch m.view {
	case ViewChat:
		b.WriteString(m.chat.View())
	case ViewAlerts:
		b.WriteString(m.recent.View())
	case ViewResources:
		b.WriteString(m.resources.View())
	case ViewStats:
		b.WriteString(m.stats.View())
	case ViewHistory:
		b.WriteString(m.history.View())
	}

	b.WriteString("\n")
	b.WriteString(m.status.View(m.theme))

	return b.String()
}

// loginView renders the name prompt shown before a session exists.
func (m Model) loginView() string {
	var b strings.Builder

	b.WriteString(m.theme.LoginLogo.Render("MindCare"))
	b.WriteString("\n")
	b.WriteString(m.theme.LoginHint.Render("Un espacio seguro para hablar de cómo te sientes."))
	b.WriteString("\n\n")
	b.WriteString(m.login.View())

	if m.loginErr != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.LoginError.Render(m.loginErr))
	}

	return m.theme.LoginBox.Render(b.String())
}
