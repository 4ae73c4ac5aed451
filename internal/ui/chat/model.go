// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view: the transcript viewport,
// the message input, the risk banner, and the send pipeline against the
// MindCare backend.
package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/model"
	"github.com/mindcare/mindcare-tui/internal/session"
	"github.com/mindcare/mindcare-tui/internal/storage"
	"github.com/mindcare/mindcare-tui/internal/ui/components"
	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the chat view state.
type Model struct {
	client      *api.Client
	theme       *styles.Theme
	transcripts *storage.TranscriptStore

	session    session.Session
	transcript *model.Transcript

	input    textinput.Model
	viewport viewport.Model
	spinner  components.Spinner
	banner   *components.RiskBanner
	renderer *glamour.TermRenderer

	sending bool
	notice  string

	width  int
	height int
	ready  bool
}

// New creates a chat model. The transcript store may be nil, which disables
// the export command.
func New(client *api.Client, theme *styles.Theme, transcripts *storage.TranscriptStore) Model {
	input := textinput.New()
	input.Placeholder = "Escribe cómo te sientes..."
	input.CharLimit = 2000
	input.Prompt = "> "

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	return Model{
		client:      client,
		theme:       theme,
		transcripts: transcripts,
		transcript:  &model.Transcript{},
		input:       input,
		spinner:     components.NewThinkingSpinner(),
		banner:      components.NewRiskBanner(),
		renderer:    renderer,
	}
}

// SetSession installs the active session. Sends are a no-op without one.
func (m *Model) SetSession(sess session.Session) {
	m.session = sess
}

// SetSize resizes the viewport and input to the available region.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.banner.SetWidth(width)

	vpHeight := height - 4
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.input.Width = width - 4
	m.refreshViewport()
}

// Focus moves keyboard focus to the message input.
func (m *Model) Focus() {
	m.input.Focus()
}

// Blur removes keyboard focus from the message input.
func (m *Model) Blur() {
	m.input.Blur()
}

// AppendGreeting adds the opening assistant turn for a fresh session.
func (m *Model) AppendGreeting(name string) {
	m.transcript.Append(model.NewAssistantTurn(
		"Hola "+name+", estoy aquí para escucharte.", nil))
	m.refreshViewport()
}

// Reset discards the transcript, the banner, and any pending notice. Used
// on logout.
func (m *Model) Reset() {
	m.transcript.Reset()
	m.banner.Clear()
	m.spinner.Stop()
	m.sending = false
	m.notice = ""
	m.input.SetValue("")
	m.session = session.Session{}
	m.refreshViewport()
}

// Transcript exposes the turn log, read-only by convention.
func (m *Model) Transcript() *model.Transcript {
	return m.transcript
}

// Sending reports whether a send is in flight.
func (m *Model) Sending() bool {
	return m.sending
}
