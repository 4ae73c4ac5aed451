// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the MindCare TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mindcare/mindcare-tui/internal/model"
)

// =============================================================================
// RISK BANNER COMPONENT
// =============================================================================

// RiskBanner displays the risk assessment of the latest assistant reply at
// the top of the chat view. It holds at most one alert at a time: setting a
// new analysis replaces the previous one, and an analysis without a
// recognized risk level clears the banner entirely.
type RiskBanner struct {
	analysis *model.RiskAnalysis
	width    int
}

// NewRiskBanner creates an empty banner.
func NewRiskBanner() *RiskBanner {
	return &RiskBanner{width: 80}
}

// SetWidth updates the banner width for full-width rendering.
func (b *RiskBanner) SetWidth(width int) {
	b.width = width
}

// Update replaces the banner content. A nil analysis, or one whose level has
// no display metadata, hides the banner.
func (b *RiskBanner) Update(analysis *model.RiskAnalysis) {
	if analysis == nil {
		b.analysis = nil
		return
	}
	if _, ok := analysis.Level.Meta(); !ok {
		b.analysis = nil
		return
	}
	b.analysis = analysis
}

// Clear hides the banner.
func (b *RiskBanner) Clear() {
	b.analysis = nil
}

// Visible reports whether the banner currently has content to render.
func (b *RiskBanner) Visible() bool {
	return b.analysis != nil
}

// View renders the banner as a full-width highlighted line, or an empty
// string when there is nothing to show.
func (b *RiskBanner) View() string {
	if b.analysis == nil {
		return ""
	}

	meta, ok := b.analysis.Level.Meta()
	if !ok {
		return ""
	}

	text := meta.Icon + " " + meta.Label + ": " + meta.Message
	if b.analysis.Classification != "" {
		text += " (" + b.analysis.Classification + ")"
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(meta.Accent).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(meta.Accent).
		PaddingLeft(1).
		Width(b.width)

	return style.Render(text)
}
