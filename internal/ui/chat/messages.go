// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/mindcare/mindcare-tui/internal/api"

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// responseMsg carries the outcome of a send, success or failure.
type responseMsg struct {
	result *api.ChatResult
	err    error
}

// SendCompletedMsg is emitted after every send resolves, on any outcome.
// The root model reacts by refreshing the recent alerts list so the alerts
// view stays consistent with whatever the server recorded.
type SendCompletedMsg struct{}

// LogoutRequestedMsg is emitted when the user types the logout command.
type LogoutRequestedMsg struct{}

// exportedMsg carries the result of a transcript export.
type exportedMsg struct {
	id  string
	err error
}
