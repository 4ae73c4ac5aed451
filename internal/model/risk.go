// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared by every view:
// risk levels, chat turns, alerts, and statistics snapshots.
package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// RISK LEVEL
// =============================================================================

// RiskLevel is the closed severity classification attached to assistant
// turns and stored alerts. RiskNone represents the absence of a
// classification and suppresses all risk rendering.
type RiskLevel int

const (
	RiskNone RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
)

// ParseRiskLevel maps a backend risk string to a RiskLevel.
// The wire vocabulary is Spanish (ALTO/MEDIO/BAJO); the English names are
// accepted as well. Any other value is treated as "no risk" rather than an
// error, so unknown future levels degrade to a hidden banner.
func ParseRiskLevel(s string) RiskLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ALTO", "HIGH":
		return RiskHigh
	case "MEDIO", "MEDIUM":
		return RiskMedium
	case "BAJO", "LOW":
		return RiskLow
	default:
		return RiskNone
	}
}

// String returns the canonical English name of the level.
func (r RiskLevel) String() string {
	switch r {
	case RiskHigh:
		return "HIGH"
	case RiskMedium:
		return "MEDIUM"
	case RiskLow:
		return "LOW"
	default:
		return "NONE"
	}
}

// =============================================================================
// DISPLAY METADATA
// =============================================================================

// RiskMeta is the single canonical mapping from a risk level to its display
// attributes. Every rendering site consumes this instead of re-deriving
// icons and colors from strings.
type RiskMeta struct {
	// Icon is the ASCII indicator shown next to the level.
	Icon string
	// Label is the human-readable tier label.
	Label string
	// Message is the banner message template for chat.
	Message string
	// Accent is the tier accent color.
	Accent lipgloss.AdaptiveColor
}

var riskMetas = map[RiskLevel]RiskMeta{
	RiskHigh: {
		Icon:    "[!!]",
		Label:   "Riesgo alto",
		Message: "Lo que sientes es importante. Considera hablar con un profesional.",
		Accent:  lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"},
	},
	RiskMedium: {
		Icon:    "[!]",
		Label:   "Riesgo medio",
		Message: "Estoy aquí para escucharte. No estás solo.",
		Accent:  lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"},
	},
	RiskLow: {
		Icon:    "[i]",
		Label:   "Riesgo bajo",
		Message: "Gracias por compartir cómo te sientes.",
		Accent:  lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"},
	},
}

// Meta returns the display metadata for the level.
// RiskNone has no metadata; callers must hide the element instead.
func (r RiskLevel) Meta() (RiskMeta, bool) {
	m, ok := riskMetas[r]
	return m, ok
}

// Emoji returns the representative mood emoji for the level, used by the
// stats view: high risk reads sad, medium neutral, low happy.
func (r RiskLevel) Emoji() string {
	switch r {
	case RiskHigh:
		return "😢"
	case RiskMedium:
		return "😐"
	case RiskLow:
		return "🙂"
	default:
		return ""
	}
}

// =============================================================================
// RISK ANALYSIS
// =============================================================================

// RiskAnalysis is the classification attached to an assistant turn.
type RiskAnalysis struct {
	Level          RiskLevel
	Classification string
}
