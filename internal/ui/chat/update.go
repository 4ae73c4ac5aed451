// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/model"
	"github.com/mindcare/mindcare-tui/internal/util"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles chat view messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			if cmd := m.handleSubmit(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}

	case responseMsg:
		m.handleResponse(msg)
		// The alerts refresh fires on every outcome, including failures.
		return m, completedCmd()

	case exportedMsg:
		if msg.err != nil {
			m.notice = "No se pudo guardar la conversación: " + msg.err.Error()
		} else {
			m.notice = "Conversación guardada (" + msg.id + ")."
		}
		return m, nil
	}

	if cmd := m.spinner.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleSubmit processes the Enter key: slash commands first, then the send
// pipeline. Empty input and in-flight sends are no-ops.
func (m *Model) handleSubmit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}

	switch strings.ToLower(text) {
	case "/export", "/guardar":
		m.input.SetValue("")
		if m.transcripts == nil || m.transcript.Len() == 0 {
			m.notice = "No hay conversación que guardar."
			return nil
		}
		return m.exportCmd()
	case "/logout", "/salir":
		m.input.SetValue("")
		return func() tea.Msg { return LogoutRequestedMsg{} }
	}

	if m.sending || !m.session.Active() {
		return nil
	}

	m.input.SetValue("")
	m.notice = ""
	m.sending = true

	// Optimistic append before the network resolves.
	m.transcript.Append(model.NewUserTurn(text))
	m.refreshViewport()

	return tea.Batch(m.spinner.Start(), m.sendCmd(text))
}

// handleResponse appends exactly one assistant turn for the resolved send,
// whatever the outcome, and releases the send control.
func (m *Model) handleResponse(msg responseMsg) {
	m.spinner.Stop()
	m.sending = false

	var turn model.Turn
	switch {
	case msg.err != nil:
		turn = model.NewAssistantTurn(errorTurnText(msg.err), nil)
	default:
		turn = model.NewAssistantTurn(msg.result.Reply, msg.result.Risk)
	}
	m.transcript.Append(turn)

	m.banner.Update(m.transcript.LatestRisk())
	m.refreshViewport()
}

// errorTurnText maps a send failure to the assistant-turn wording shown in
// the log. Transport, connectivity, and backend errors stay distinguishable.
func errorTurnText(err error) string {
	var ce *api.ClientError
	if errors.As(err, &ce) {
		switch ce.Type {
		case api.ErrTypeHTTP:
			return "Lo siento, hubo un error al procesar tu mensaje (código " +
				util.IntToString(ce.StatusCode) + ")."
		case api.ErrTypeBackend:
			return ce.Message
		case api.ErrTypeConnection, api.ErrTypeTimeout:
			return "No pude conectar con el servidor: " + ce.Message
		}
	}
	return "Lo siento, ocurrió un error inesperado: " + err.Error()
}
