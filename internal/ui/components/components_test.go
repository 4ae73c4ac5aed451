// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindcare/mindcare-tui/internal/model"
	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

func TestRiskBanner_SingleSlot(t *testing.T) {
	b := NewRiskBanner()
	assert.False(t, b.Visible())
	assert.Empty(t, b.View())

	b.Update(&model.RiskAnalysis{Level: model.RiskHigh, Classification: "EXTREMO"})
	assert.True(t, b.Visible())
	assert.Contains(t, b.View(), "Riesgo alto")
	assert.Contains(t, b.View(), "EXTREMO")

	// A newer analysis replaces the previous one, it never stacks.
	b.Update(&model.RiskAnalysis{Level: model.RiskLow, Classification: "POSITIVO"})
	assert.Contains(t, b.View(), "Riesgo bajo")
	assert.NotContains(t, b.View(), "Riesgo alto")
}

func TestRiskBanner_UnknownLevelClears(t *testing.T) {
	b := NewRiskBanner()
	b.Update(&model.RiskAnalysis{Level: model.RiskMedium, Classification: "NEGATIVO"})
	assert.True(t, b.Visible())

	b.Update(&model.RiskAnalysis{Level: model.RiskNone})
	assert.False(t, b.Visible())
	assert.Empty(t, b.View())
}

func TestRiskBanner_NilClears(t *testing.T) {
	b := NewRiskBanner()
	b.Update(&model.RiskAnalysis{Level: model.RiskHigh})
	b.Update(nil)
	assert.False(t, b.Visible())
}

func TestNavBar_Cycle(t *testing.T) {
	n := NewNavBar([]string{"Chat", "Alertas", "Recursos", "Estadísticas", "Historial"})
	assert.Equal(t, 0, n.Active())

	n.Next()
	assert.Equal(t, 1, n.Active())

	n.SetActive(4)
	n.Next()
	assert.Equal(t, 0, n.Active(), "selection wraps past the last tab")

	n.SetActive(99)
	assert.Equal(t, 0, n.Active(), "out of range index is ignored")
}

func TestSparkline_SeriesAndClear(t *testing.T) {
	theme := styles.NewTheme()
	s := NewSparkline(5)
	assert.True(t, s.Empty())
	assert.Contains(t, s.View(theme), "Sin datos")

	s.SetSeries([]model.TrendPoint{
		{Date: "2025-01-01", Value: -1},
		{Date: "2025-01-02", Value: 0},
		{Date: "2025-01-03", Value: 1},
	})
	assert.False(t, s.Empty())

	s.Clear()
	assert.True(t, s.Empty())
}

func TestSparkline_KeepsMostRecent(t *testing.T) {
	s := NewSparkline(2)
	s.SetSeries([]model.TrendPoint{
		{Date: "2025-01-01", Value: 0.1},
		{Date: "2025-01-02", Value: 0.2},
		{Date: "2025-01-03", Value: 0.3},
	})
	assert.Len(t, s.points, 2)
	assert.Equal(t, "2025-01-02", s.points[0].Date)
}

func TestSparkRune_Bounds(t *testing.T) {
	assert.Equal(t, sparkRunes[0], sparkRune(0, 0, 1))
	assert.Equal(t, sparkRunes[len(sparkRunes)-1], sparkRune(1, 0, 1))
	// Flat series renders at mid height instead of dividing by zero.
	assert.Equal(t, sparkRunes[len(sparkRunes)/2], sparkRune(5, 5, 5))
}

func TestStatusBar_View(t *testing.T) {
	theme := styles.NewTheme()
	s := NewStatusBar()
	s.SetWidth(60)

	out := s.View(theme)
	assert.Contains(t, out, "MindCare")

	s.SetUser("Lucía")
	s.SetHealth(HealthOK)
	out = s.View(theme)
	assert.Contains(t, out, "Lucía")
	assert.Contains(t, out, "conectado")

	s.SetHealth(HealthDown)
	assert.Contains(t, s.View(theme), "sin conexión")
}

func TestSpinner_Lifecycle(t *testing.T) {
	theme := styles.NewTheme()
	s := NewThinkingSpinner()
	assert.False(t, s.Active())
	assert.Empty(t, s.View(theme))

	cmd := s.Start()
	assert.NotNil(t, cmd)
	assert.True(t, s.Active())
	assert.True(t, strings.Contains(s.View(theme), "escribiendo"))

	s.Stop()
	assert.False(t, s.Active())
	assert.Empty(t, s.View(theme))
}
