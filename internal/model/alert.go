// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"
)

// =============================================================================
// ALERT TYPE
// =============================================================================

// Alert is a backend-persisted record created when a user message was
// classified at non-NONE risk. The client only reads and renders alerts;
// it never creates, mutates, or deletes them.
type Alert struct {
	// Timestamp is when the alert was recorded server-side.
	Timestamp time.Time
	// Level is the severity classification (LOW/MEDIUM/HIGH).
	Level RiskLevel
	// Classification is the free-text sentiment label (e.g. "NEGATIVO").
	Classification string
	// Score is the sentiment score, 0-1 expected. Defaults to 0 when the
	// backend omits it.
	Score float64
	// Value is the optional numeric risk signal. Nil when absent.
	Value *float64
	// Message is the original user text. Empty when the backend withheld it;
	// rendering shows a fixed placeholder in that case.
	Message string
}

// =============================================================================
// STATS TYPES
// =============================================================================

// TrendPoint is one entry of the emotional trend series.
type TrendPoint struct {
	Date  string
	Value float64
}

// StatsSnapshot is the aggregate usage/risk statistics for a user.
// Snapshots are fetch-scoped: each entry into the stats view replaces the
// previous one wholesale, never merging.
type StatsSnapshot struct {
	TotalInteractions  int
	LastEmotionalState string
	// LastRiskLevel is RiskNone for older snapshots predating the field.
	LastRiskLevel  RiskLevel
	RiskCounts     map[RiskLevel]int
	EmotionalTrend []TrendPoint
}

// MoodEmoji selects the representative emoji for the snapshot.
// The risk-level mapping is primary; the keyword fallback against the
// free-text state exists only for snapshots that predate ultimo_riesgo.
func (s StatsSnapshot) MoodEmoji() string {
	if e := s.LastRiskLevel.Emoji(); e != "" {
		return e
	}
	return moodEmojiFromText(s.LastEmotionalState)
}

// moodEmojiFromText matches Spanish mood keywords in free text. Only used
// for snapshots that predate the ultimo_riesgo field.
func moodEmojiFromText(state string) string {
	lower := strings.ToLower(state)
	switch {
	case strings.Contains(lower, "trist"),
		strings.Contains(lower, "negativ"),
		strings.Contains(lower, "extrem"):
		return "😢"
	case strings.Contains(lower, "ansi"),
		strings.Contains(lower, "neutr"):
		return "😐"
	default:
		return "🙂"
	}
}
