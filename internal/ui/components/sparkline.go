// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/mindcare/mindcare-tui/internal/model"
	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

// =============================================================================
// SPARKLINE COMPONENT
// =============================================================================

// sparkRunes maps a normalized value to a block character, lowest to highest.
var sparkRunes = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders an emotional trend series as a compact block chart. The
// series is drawn oldest to newest, left to right.
type Sparkline struct {
	points []model.TrendPoint
	max    int
}

// NewSparkline creates a sparkline capped at the given number of points.
// Longer series keep only their most recent points.
func NewSparkline(max int) *Sparkline {
	if max <= 0 {
		max = 30
	}
	return &Sparkline{max: max}
}

// SetSeries replaces the plotted series.
func (s *Sparkline) SetSeries(points []model.TrendPoint) {
	if len(points) > s.max {
		points = points[len(points)-s.max:]
	}
	s.points = points
}

// Clear resets the chart to the empty state.
func (s *Sparkline) Clear() {
	s.points = nil
}

// Empty reports whether there is anything to draw.
func (s *Sparkline) Empty() bool {
	return len(s.points) == 0
}

// View renders the chart, or a placeholder when the series is empty.
func (s *Sparkline) View(theme *styles.Theme) string {
	if len(s.points) == 0 {
		return theme.AlertEmpty.Render("Sin datos de tendencia todavía.")
	}

	lo, hi := s.points[0].Value, s.points[0].Value
	for _, p := range s.points[1:] {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}

	var b strings.Builder
	for _, p := range s.points {
		b.WriteRune(sparkRune(p.Value, lo, hi))
	}

	return theme.StatsChart.Render(b.String())
}

// sparkRune picks the block character for a value within [lo, hi]. A flat
// series renders at mid height.
func sparkRune(v, lo, hi float64) rune {
	if hi <= lo {
		return sparkRunes[len(sparkRunes)/2]
	}
	idx := int((v - lo) / (hi - lo) * float64(len(sparkRunes)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sparkRunes) {
		idx = len(sparkRunes) - 1
	}
	return sparkRunes[idx]
}
