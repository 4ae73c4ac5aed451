// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/model"
	"github.com/mindcare/mindcare-tui/internal/session"
	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(api.NewClient(), styles.NewTheme(), nil)
	m.SetSize(80, 24)
	m.SetSession(session.Session{UserID: "u-1", UserName: "Ana"})
	m.Focus()
	return m
}

func pressEnter(m Model, text string) (Model, tea.Cmd) {
	m.input.SetValue(text)
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSend_OptimisticUserTurn(t *testing.T) {
	m := newTestModel(t)

	m, cmd := pressEnter(m, "me siento mal")
	require.NotNil(t, cmd, "a send command is issued")
	assert.True(t, m.Sending())

	// Exactly one user turn appears before the network resolves.
	turns := m.Transcript().Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, model.SpeakerUser, turns[0].Speaker)
	assert.Equal(t, "me siento mal", turns[0].Text)
	assert.Empty(t, m.input.Value())
}

func TestSend_EmptyInputNoOp(t *testing.T) {
	m := newTestModel(t)

	m, cmd := pressEnter(m, "   ")
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Transcript().Len())
	assert.False(t, m.Sending())
}

func TestSend_NoSessionNoOp(t *testing.T) {
	m := New(api.NewClient(), styles.NewTheme(), nil)
	m.SetSize(80, 24)

	m, cmd := pressEnter(m, "hola")
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Transcript().Len())
}

func TestSend_IgnoredWhileInFlight(t *testing.T) {
	m := newTestModel(t)
	m, _ = pressEnter(m, "primero")

	m, cmd := pressEnter(m, "segundo")
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Transcript().Len(), "send control stays disabled until the response")
}

// resolve feeds a response and asserts the alerts-refresh signal fires.
func resolve(t *testing.T, m Model, msg responseMsg) Model {
	t.Helper()
	m, cmd := m.Update(msg)
	require.NotNil(t, cmd, "every outcome triggers the completion command")
	assert.IsType(t, SendCompletedMsg{}, cmd())
	return m
}

func TestResponse_SuccessWithRisk(t *testing.T) {
	m := newTestModel(t)
	m, _ = pressEnter(m, "me siento mal")

	m = resolve(t, m, responseMsg{result: &api.ChatResult{
		Reply: "Lamento que te sientas así.",
		Risk:  &model.RiskAnalysis{Level: model.RiskHigh, Classification: "ideación"},
	}})

	turns := m.Transcript().Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, model.SpeakerAssistant, turns[1].Speaker)
	require.NotNil(t, turns[1].Risk)
	assert.Equal(t, model.RiskHigh, turns[1].Risk.Level)
	assert.False(t, m.Sending())
	assert.True(t, m.banner.Visible())
	assert.Contains(t, m.banner.View(), "ideación")
}

func TestResponse_HTTPErrorTurn(t *testing.T) {
	m := newTestModel(t)
	m, _ = pressEnter(m, "hola")

	m = resolve(t, m, responseMsg{err: &api.ClientError{
		Type: api.ErrTypeHTTP, StatusCode: 500, Message: "server error",
	}})

	turns := m.Transcript().Turns()
	require.Len(t, turns, 2, "turn count grows by exactly 2 on failure too")
	assert.Contains(t, turns[1].Text, "500")
	assert.Nil(t, turns[1].Risk)
	assert.False(t, m.Sending())
	assert.False(t, m.banner.Visible())
}

func TestResponse_ConnectionErrorTurn(t *testing.T) {
	m := newTestModel(t)
	m, _ = pressEnter(m, "hola")

	m = resolve(t, m, responseMsg{err: &api.ClientError{
		Type: api.ErrTypeConnection, Message: "backend is not reachable",
	}})

	turns := m.Transcript().Turns()
	require.Len(t, turns, 2)
	assert.Contains(t, turns[1].Text, "No pude conectar")
	assert.False(t, m.Sending())
}

func TestResponse_BackendErrorText(t *testing.T) {
	m := newTestModel(t)
	m, _ = pressEnter(m, "hola")

	m = resolve(t, m, responseMsg{err: &api.ClientError{
		Type: api.ErrTypeBackend, Message: "Mensaje vacío",
	}})

	turns := m.Transcript().Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "Mensaje vacío", turns[1].Text)
}

func TestBanner_ReplacedByLaterTurn(t *testing.T) {
	m := newTestModel(t)
	m, _ = pressEnter(m, "uno")
	m = resolve(t, m, responseMsg{result: &api.ChatResult{
		Reply: "r1",
		Risk:  &model.RiskAnalysis{Level: model.RiskMedium, Classification: "NEGATIVO"},
	}})
	assert.True(t, m.banner.Visible())

	// A newer assistant turn without analysis hides the banner.
	m, _ = pressEnter(m, "dos")
	m = resolve(t, m, responseMsg{result: &api.ChatResult{Reply: "r2"}})
	assert.False(t, m.banner.Visible())
}

func TestLogoutCommand(t *testing.T) {
	m := newTestModel(t)

	m, cmd := pressEnter(m, "/logout")
	require.NotNil(t, cmd)
	assert.IsType(t, LogoutRequestedMsg{}, cmd())
	assert.Equal(t, 0, m.Transcript().Len())
}

func TestReset_ClearsEverything(t *testing.T) {
	m := newTestModel(t)
	m.AppendGreeting("Ana")
	m, _ = pressEnter(m, "hola")

	m.Reset()
	assert.Equal(t, 0, m.Transcript().Len())
	assert.False(t, m.Sending())
	assert.False(t, m.banner.Visible())
}

func TestGreetingTurn(t *testing.T) {
	m := newTestModel(t)
	m.AppendGreeting("Ana")

	turns := m.Transcript().Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, model.SpeakerAssistant, turns[0].Speaker)
	assert.Contains(t, turns[0].Text, "Hola Ana")
}
