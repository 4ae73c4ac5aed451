// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/mindcare/mindcare-tui/internal/model"
	"github.com/mindcare/mindcare-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat region: risk banner, transcript, activity line,
// input.
func (m Model) View() string {
	var b strings.Builder

	if m.banner.Visible() {
		b.WriteString(m.banner.View())
		b.WriteString("\n")
	}

	if m.ready {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	switch {
	case m.spinner.Active():
		b.WriteString(m.spinner.View(m.theme))
		b.WriteString("\n")
	case m.notice != "":
		b.WriteString(m.theme.Muted.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.InputContainer.Render(m.input.View()))

	return b.String()
}

// refreshViewport rebuilds the transcript rendering and scrolls to the
// latest turn.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for i, turn := range m.transcript.Turns() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderTurn(turn))
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// renderTurn formats a single turn. Assistant text goes through the
// markdown renderer; user text is shown literally so markup in user input
// is never interpreted.
func (m *Model) renderTurn(turn model.Turn) string {
	label := m.theme.Timestamp.Render(turn.Timestamp.Format("15:04")) + " " +
		turn.Speaker.DisplayName()

	width := m.width - 8
	if width < 20 {
		width = 20
	}

	var body string
	if turn.Speaker == model.SpeakerAssistant {
		body = m.renderMarkdown(turn.Text)
		return label + "\n" + m.theme.AssistantBubble.Render(body)
	}

	body = util.WrapText(turn.Text, width)
	return label + "\n" + m.theme.UserBubble.Render(body)
}

// renderMarkdown renders assistant markdown, falling back to the raw text
// when the renderer is unavailable or fails.
func (m *Model) renderMarkdown(text string) string {
	if m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
