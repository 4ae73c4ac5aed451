// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app holds the root Bubble Tea model: the login gate, the view
// state machine, and the dispatch of per-view data loads.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/session"
	"github.com/mindcare/mindcare-tui/internal/storage"
	"github.com/mindcare/mindcare-tui/internal/ui/alerts"
	"github.com/mindcare/mindcare-tui/internal/ui/chat"
	"github.com/mindcare/mindcare-tui/internal/ui/components"
	"github.com/mindcare/mindcare-tui/internal/ui/resources"
	"github.com/mindcare/mindcare-tui/internal/ui/stats"
	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

// =============================================================================
// VIEW STATES
// =============================================================================

// View is one mutually exclusive screen state.
type View int

const (
	ViewLoggedOut View = iota
	ViewChat
	ViewAlerts
	ViewResources
	ViewStats
	ViewHistory
)

// navViews maps navigation tab positions to views.
var navViews = []View{ViewChat, ViewAlerts, ViewResources, ViewStats, ViewHistory}

var navLabels = []string{"Chat", "Alertas", "Recursos", "Estadísticas", "Historial"}

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the application root.
type Model struct {
	theme    *styles.Theme
	sessions *session.Store
	client   *api.Client

	view   View
	width  int
	height int

	login    textinput.Model
	loginErr string

	chat      chat.Model
	recent    alerts.Model
	history   alerts.Model
	stats     stats.Model
	resources resources.Model

	navbar *components.NavBar
	status *components.StatusBar
}

// New creates the root model. A previously persisted session is restored
// and drops the user straight into the chat view with a fresh greeting.
func New(client *api.Client, sessions *session.Store, transcripts *storage.TranscriptStore) Model {
	theme := styles.NewTheme()

	login := textinput.New()
	login.Placeholder = "¿Cómo te llamas?"
	login.CharLimit = 60
	login.Prompt = "> "
	login.Focus()

	m := Model{
		theme:     theme,
		sessions:  sessions,
		client:    client,
		view:      ViewLoggedOut,
		login:     login,
		chat:      chat.New(client, theme, transcripts),
		recent:    alerts.New(client, theme, alerts.ModeRecent),
		history:   alerts.New(client, theme, alerts.ModeHistory),
		stats:     stats.New(client, theme),
		resources: resources.New(theme),
		navbar:    components.NewNavBar(navLabels),
		status:    components.NewStatusBar(),
	}

	if sess, ok := sessions.Restore(); ok {
		m.enterSession(sess)
	}

	return m
}

// Init starts the cursor blink and the initial backend health probe.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.healthCmd())
}

// CurrentView exposes the active view state.
func (m Model) CurrentView() View {
	return m.view
}

// enterSession installs an active session and lands on the chat view with
// the opening greeting.
func (m *Model) enterSession(sess session.Session) {
	m.chat.SetSession(sess)
	m.chat.AppendGreeting(sess.UserName)
	m.status.SetUser(sess.UserName)
	m.navbar.SetActive(0)
	m.view = ViewChat
	m.chat.Focus()
	m.loginErr = ""
	m.login.SetValue("")
}

// leaveSession tears the session down and returns to the login gate. Every
// view's fetched data is discarded.
func (m *Model) leaveSession() {
	m.sessions.Logout()
	m.chat.Reset()
	m.recent.Reset()
	m.history.Reset()
	m.stats.Reset()
	m.status.SetUser("")
	m.view = ViewLoggedOut
	m.login.SetValue("")
	m.login.Focus()
}
