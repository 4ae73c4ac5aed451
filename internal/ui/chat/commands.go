// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindcare/mindcare-tui/internal/storage"
)

// =============================================================================
// COMMANDS
// =============================================================================

// sendCmd posts the message to the backend off the update loop.
func (m *Model) sendCmd(text string) tea.Cmd {
	client := m.client
	sess := m.session
	return func() tea.Msg {
		result, err := client.SendMessage(context.Background(), sess.UserID, sess.UserName, text)
		return responseMsg{result: result, err: err}
	}
}

// exportCmd writes the current transcript to the archive.
func (m *Model) exportCmd() tea.Cmd {
	store := m.transcripts
	tr := &storage.StoredTranscript{
		UserName:  m.session.UserName,
		CreatedAt: time.Now(),
		Turns:     m.transcript.Turns(),
	}
	return func() tea.Msg {
		id, err := store.Save(tr)
		return exportedMsg{id: id, err: err}
	}
}

// completedCmd signals the root model that a send resolved.
func completedCmd() tea.Cmd {
	return func() tea.Msg {
		return SendCompletedMsg{}
	}
}
