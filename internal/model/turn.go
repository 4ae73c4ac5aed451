// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// SPEAKER TYPE
// =============================================================================

// Speaker identifies the author of a chat turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// String returns the string representation of the speaker.
func (s Speaker) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the speaker.
func (s Speaker) DisplayName() string {
	switch s {
	case SpeakerUser:
		return "Tú"
	case SpeakerAssistant:
		return "MindCare"
	default:
		return string(s)
	}
}

// =============================================================================
// TURN TYPE
// =============================================================================

// Turn is one message unit in the chat log.
type Turn struct {
	ID        string    `json:"id"`
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`

	// Risk carries the classification for assistant turns that have one.
	// Nil on user turns and on assistant turns without analysis.
	Risk *RiskAnalysis `json:"risk,omitempty"`
}

// NewUserTurn creates a user turn with a generated ID.
func NewUserTurn(text string) Turn {
	return Turn{
		ID:        generateTurnID(),
		Speaker:   SpeakerUser,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewAssistantTurn creates an assistant turn with a generated ID.
func NewAssistantTurn(text string, risk *RiskAnalysis) Turn {
	return Turn{
		ID:        generateTurnID(),
		Speaker:   SpeakerAssistant,
		Text:      text,
		Timestamp: time.Now(),
		Risk:      risk,
	}
}

// generateTurnID creates a unique turn ID.
func generateTurnID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "turn_" + hex.EncodeToString(bytes)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the append-only in-memory chat log for the current session.
// Turns are never mutated or removed except by Reset (logout).
type Transcript struct {
	turns []Turn
}

// Append adds a turn to the end of the log.
func (t *Transcript) Append(turn Turn) {
	t.turns = append(t.turns, turn)
}

// Turns returns the turns in insertion order.
// The returned slice must not be mutated by callers.
func (t *Transcript) Turns() []Turn {
	return t.turns
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// LatestRisk returns the risk analysis of the most recent assistant turn,
// or nil when the log is empty or the latest assistant turn carries none.
// The banner is a single-slot overlay, not a history: only this value is
// ever displayed.
func (t *Transcript) LatestRisk() *RiskAnalysis {
	for i := len(t.turns) - 1; i >= 0; i-- {
		if t.turns[i].Speaker == SpeakerAssistant {
			return t.turns[i].Risk
		}
	}
	return nil
}

// Reset discards all turns. Called on logout only.
func (t *Transcript) Reset() {
	t.turns = nil
}
