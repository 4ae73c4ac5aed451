// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/session"
	"github.com/mindcare/mindcare-tui/internal/ui/chat"
)

func newApp(t *testing.T) (Model, *session.Store) {
	t.Helper()
	store, err := session.NewStoreWithDir(t.TempDir())
	require.NoError(t, err)
	m := New(api.NewClient(), store, nil)
	m.setSize(100, 30)
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func login(t *testing.T, m Model, name string) Model {
	t.Helper()
	m.login.SetValue(name)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestStartsLoggedOut(t *testing.T) {
	m, _ := newApp(t)
	assert.Equal(t, ViewLoggedOut, m.CurrentView())
	assert.Contains(t, m.View(), "MindCare")
}

func TestLogin_ShortNameRejected(t *testing.T) {
	m, store := newApp(t)
	m = login(t, m, " A ")

	assert.Equal(t, ViewLoggedOut, m.CurrentView())
	assert.Contains(t, m.View(), "al menos 2 caracteres")
	assert.False(t, store.Current().Active())
}

func TestLogin_Success(t *testing.T) {
	m, store := newApp(t)
	m = login(t, m, "Ana")

	assert.Equal(t, ViewChat, m.CurrentView())
	assert.True(t, store.Current().Active())

	turns := m.chat.Transcript().Turns()
	require.Len(t, turns, 1, "greeting turn appended on login")
	assert.Contains(t, turns[0].Text, "Hola Ana")
}

func TestRestore_LandsInChat(t *testing.T) {
	dir := t.TempDir()
	store, err := session.NewStoreWithDir(dir)
	require.NoError(t, err)
	_, err = store.Start("Ana")
	require.NoError(t, err)

	fresh, err := session.NewStoreWithDir(dir)
	require.NoError(t, err)
	m := New(api.NewClient(), fresh, nil)

	assert.Equal(t, ViewChat, m.CurrentView())
	assert.Len(t, m.chat.Transcript().Turns(), 1)
}

func TestNavigate_TriggersFetches(t *testing.T) {
	m, _ := newApp(t)
	m = login(t, m, "Ana")

	m, cmd := update(t, m, NavigateMsg{View: ViewAlerts})
	assert.Equal(t, ViewAlerts, m.CurrentView())
	assert.NotNil(t, cmd, "entering alerts triggers the recent fetch")

	m, cmd = update(t, m, NavigateMsg{View: ViewStats})
	assert.Equal(t, ViewStats, m.CurrentView())
	assert.NotNil(t, cmd)

	m, cmd = update(t, m, NavigateMsg{View: ViewHistory})
	assert.Equal(t, ViewHistory, m.CurrentView())
	assert.NotNil(t, cmd)

	m, cmd = update(t, m, NavigateMsg{View: ViewResources})
	assert.Equal(t, ViewResources, m.CurrentView())
	assert.Nil(t, cmd, "resources is static, no fetch")

	m, cmd = update(t, m, NavigateMsg{View: ViewChat})
	assert.Equal(t, ViewChat, m.CurrentView())
	assert.Nil(t, cmd)
}

func TestNavigate_UnknownViewNoOp(t *testing.T) {
	m, _ := newApp(t)
	m = login(t, m, "Ana")

	m, cmd := update(t, m, NavigateMsg{View: View(99)})
	assert.Equal(t, ViewChat, m.CurrentView())
	assert.Nil(t, cmd)
}

func TestNavigate_LoggedOutNoOp(t *testing.T) {
	m, _ := newApp(t)

	m, cmd := update(t, m, NavigateMsg{View: ViewAlerts})
	assert.Equal(t, ViewLoggedOut, m.CurrentView())
	assert.Nil(t, cmd)
}

func TestTab_CyclesViews(t *testing.T) {
	m, _ := newApp(t)
	m = login(t, m, "Ana")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewAlerts, m.CurrentView())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewResources, m.CurrentView())
}

func TestSendCompleted_RefreshesRecentAlerts(t *testing.T) {
	m, _ := newApp(t)
	m = login(t, m, "Ana")

	_, cmd := update(t, m, chat.SendCompletedMsg{})
	assert.NotNil(t, cmd, "alerts refresh fires even outside the alerts view")
}

func TestLogout_ClearsEverything(t *testing.T) {
	m, store := newApp(t)
	m = login(t, m, "Ana")
	require.Equal(t, ViewChat, m.CurrentView())

	m, _ = update(t, m, chat.LogoutRequestedMsg{})
	assert.Equal(t, ViewLoggedOut, m.CurrentView())
	assert.False(t, store.Current().Active())
	assert.Equal(t, 0, m.chat.Transcript().Len())

	// A fresh store over the same directory finds nothing to restore.
	_, ok := store.Restore()
	assert.False(t, ok)
}

func TestRelogin_KeepsStableUserID(t *testing.T) {
	m, store := newApp(t)
	m = login(t, m, "Ana")
	first := store.Current().UserID
	require.NotEmpty(t, first)

	// Logging in again under another name reuses the persisted identifier.
	sess, err := store.Start("Lucía")
	require.NoError(t, err)
	assert.Equal(t, first, sess.UserID)
	assert.Equal(t, "Lucía", sess.UserName)
}
