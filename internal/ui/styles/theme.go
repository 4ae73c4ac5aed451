// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mindcare/mindcare-tui/internal/model"
)

// Theme holds all the pre-built styles used by the views and components.
type Theme struct {
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// LAYOUT STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// ==========================================================================
	// NAVIGATION STYLES
	// ==========================================================================

	NavBar       lipgloss.Style
	NavTab       lipgloss.Style
	NavTabActive lipgloss.Style

	// ==========================================================================
	// CHAT STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	Timestamp       lipgloss.Style

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	Thinking lipgloss.Style

	// ==========================================================================
	// LOGIN STYLES
	// ==========================================================================

	LoginBox   lipgloss.Style
	LoginLogo  lipgloss.Style
	LoginHint  lipgloss.Style
	LoginError lipgloss.Style

	// ==========================================================================
	// ALERT STYLES
	// ==========================================================================

	AlertHigh   lipgloss.Style
	AlertMedium lipgloss.Style
	AlertLow    lipgloss.Style
	AlertMeta   lipgloss.Style
	AlertEmpty  lipgloss.Style

	// ==========================================================================
	// STATS STYLES
	// ==========================================================================

	StatsLabel lipgloss.Style
	StatsValue lipgloss.Style
	StatsChart lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	StatusBar     lipgloss.Style
	StatusHealthy lipgloss.Style
	StatusError   lipgloss.Style

	ErrorBox lipgloss.Style
	Muted    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	// Navigation
	t.NavBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.NavTab = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	t.NavTabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(Indigo).
		Padding(0, 2).
		Underline(true)

	// Chat bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Indigo).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(0, 2).
		MarginRight(4)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Thinking = lipgloss.NewStyle().
		Foreground(Teal).
		Italic(true)

	// Login
	t.LoginBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.LoginLogo = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.LoginHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.LoginError = lipgloss.NewStyle().
		Foreground(Rose)

	// Alerts
	t.AlertHigh = lipgloss.NewStyle().
		Foreground(Rose).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Rose).
		PaddingLeft(2)

	t.AlertMedium = lipgloss.NewStyle().
		Foreground(Amber).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Amber).
		PaddingLeft(2)

	t.AlertLow = lipgloss.NewStyle().
		Foreground(Emerald).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Emerald).
		PaddingLeft(2)

	t.AlertMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.AlertEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Stats
	t.StatsLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatsValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.StatsChart = lipgloss.NewStyle().
		Foreground(Teal)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusHealthy = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.StatusError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ErrorBox = lipgloss.NewStyle().
		Foreground(Rose).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Rose).
		Padding(0, 1)

	t.Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// AlertStyle returns the list style matching a risk level.
func (t *Theme) AlertStyle(level model.RiskLevel) lipgloss.Style {
	switch level {
	case model.RiskHigh:
		return t.AlertHigh
	case model.RiskMedium:
		return t.AlertMedium
	default:
		return t.AlertLow
	}
}
