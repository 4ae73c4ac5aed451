// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindcare/mindcare-tui/internal/session"
	"github.com/mindcare/mindcare-tui/internal/ui/chat"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update drives the root state machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case NavigateMsg:
		cmd := m.navigate(msg.View)
		return m, cmd

	case chat.SendCompletedMsg:
		// The recent alerts list refreshes after every send, whatever the
		// outcome, so the alerts view matches whatever the server recorded.
		if sess := m.sessions.Current(); sess.Active() {
			return m, m.recent.Fetch(sess.UserID)
		}
		return m, nil

	case chat.LogoutRequestedMsg:
		m.leaveSession()
		return m, nil

	case healthMsg:
		m.status.SetHealth(healthState(msg))
		return m, nil
	}

	cmd := m.forward(msg)
	return m, cmd
}

// handleKey routes keyboard input: global bindings first, then the login
// gate or the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyTab:
		if m.view != ViewLoggedOut {
			m.navbar.Next()
			cmd := m.navigate(navViews[m.navbar.Active()])
			return m, cmd
		}
	}

	if m.view == ViewLoggedOut {
		if msg.Type == tea.KeyEnter {
			m.submitLogin()
			return m, nil
		}
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	}

	if m.view == ViewChat {
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	return m, nil
}

// submitLogin attempts to start a session from the login input.
func (m *Model) submitLogin() {
	name := m.login.Value()
	sess, err := m.sessions.Start(name)
	if err != nil {
		if errors.Is(err, session.ErrNameTooShort) {
			m.loginErr = "El nombre debe tener al menos 2 caracteres."
		} else {
			m.loginErr = "No se pudo iniciar la sesión: " + err.Error()
		}
		return
	}
	m.enterSession(sess)
}

// navigate performs a view transition and fires the view's data load.
// Unknown targets and transitions without a session are no-ops; the only
// way back to the login gate is a logout.
func (m *Model) navigate(view View) tea.Cmd {
	sess := m.sessions.Current()
	if !sess.Active() {
		return nil
	}

	switch view {
	case ViewChat:
		m.chat.Focus()
	case ViewAlerts:
		m.chat.Blur()
	case ViewResources, ViewStats, ViewHistory:
		m.chat.Blur()
	default:
		return nil
	}

	m.view = view
	for i, v := range navViews {
		if v == view {
			m.navbar.SetActive(i)
			break
		}
	}

	switch view {
	case ViewAlerts:
		return m.recent.Fetch(sess.UserID)
	case ViewHistory:
		return m.history.Fetch(sess.UserID)
	case ViewStats:
		return m.stats.Fetch(sess.UserID)
	}
	return nil
}

// forward delivers non-key messages to every submodel. Fetch results must
// land even after the user navigated away, and the spinner tick belongs to
// the chat model.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.chat, cmd = m.chat.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.recent, cmd = m.recent.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.history, cmd = m.history.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.stats, cmd = m.stats.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// setSize propagates the terminal size to every region.
func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height

	contentHeight := height - 4
	if contentHeight < 5 {
		contentHeight = 5
	}

	m.navbar.SetWidth(width)
	m.status.SetWidth(width)
	m.recent.SetWidth(width)
	m.history.SetWidth(width)
	m.chat.SetSize(width, contentHeight)
	m.login.Width = 40
}
