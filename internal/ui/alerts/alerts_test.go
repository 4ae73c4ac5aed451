// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package alerts

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/model"
	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

func sampleAlerts() []model.Alert {
	v := 0.42
	return []model.Alert{
		{
			Timestamp:      time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC),
			Level:          model.RiskHigh,
			Classification: "EXTREMO",
			Score:          0.91,
			Value:          &v,
			Message:        "no puedo más",
		},
		{
			Timestamp:      time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
			Level:          model.RiskMedium,
			Classification: "NEGATIVO",
			Score:          0.5,
		},
	}
}

func newModel(mode Mode) Model {
	return New(api.NewClient(), styles.NewTheme(), mode)
}

func TestRecent_EmptyListShowsPlaceholder(t *testing.T) {
	m := newModel(ModeRecent)
	m, _ = m.Update(fetchedMsg{mode: ModeRecent, alerts: []model.Alert{}})

	out := m.View()
	assert.Contains(t, out, "No hay alertas registradas")
}

func TestRecent_RendersNewestFirst(t *testing.T) {
	m := newModel(ModeRecent)
	m, _ = m.Update(fetchedMsg{mode: ModeRecent, alerts: sampleAlerts()})

	out := m.View()
	assert.NotContains(t, out, "No hay alertas")
	// Backend order is preserved: the newest alert comes first.
	assert.Less(t, strings.Index(out, "no puedo más"), strings.Index(out, "NEGATIVO"))
}

func TestHistory_RendersOldestFirst(t *testing.T) {
	m := newModel(ModeHistory)
	m, _ = m.Update(fetchedMsg{mode: ModeHistory, alerts: sampleAlerts()})

	out := m.View()
	assert.Less(t, strings.Index(out, "NEGATIVO"), strings.Index(out, "no puedo más"))
	assert.Contains(t, out, "│", "timeline connector between entries")
}

func TestAlert_MissingFieldsPlaceholders(t *testing.T) {
	m := newModel(ModeRecent)
	m, _ = m.Update(fetchedMsg{mode: ModeRecent, alerts: []model.Alert{
		{Level: model.RiskLow, Classification: "NEUTRO"},
	}})

	out := m.View()
	assert.Contains(t, out, "(mensaje no disponible)")
	assert.Contains(t, out, "0.000", "missing score defaults to 0 at 3 decimals")
	assert.Contains(t, out, "valor -")
}

func TestFetchFailure_RendersErrorInRegion(t *testing.T) {
	m := newModel(ModeRecent)
	m, _ = m.Update(fetchedMsg{mode: ModeRecent, err: api.ErrUnreachable})

	out := m.View()
	assert.Contains(t, out, "No se pudieron cargar las alertas")
}

func TestUpdate_IgnoresOtherMode(t *testing.T) {
	m := newModel(ModeRecent)
	m, _ = m.Update(fetchedMsg{mode: ModeHistory, alerts: sampleAlerts()})

	assert.False(t, m.fetched, "history responses never touch the recent list")
}

func TestUpdate_LateResponseOverwrites(t *testing.T) {
	m := newModel(ModeRecent)
	m, _ = m.Update(fetchedMsg{mode: ModeRecent, alerts: sampleAlerts()})
	m, _ = m.Update(fetchedMsg{mode: ModeRecent, alerts: []model.Alert{}})

	assert.Contains(t, m.View(), "No hay alertas registradas")
}

func TestSuccessClearsPreviousError(t *testing.T) {
	m := newModel(ModeRecent)
	m, _ = m.Update(fetchedMsg{mode: ModeRecent, err: api.ErrUnreachable})
	m, _ = m.Update(fetchedMsg{mode: ModeRecent, alerts: sampleAlerts()})

	require.Nil(t, m.err)
	assert.NotContains(t, m.View(), "No se pudieron cargar")
}

func TestReset(t *testing.T) {
	m := newModel(ModeRecent)
	m, _ = m.Update(fetchedMsg{mode: ModeRecent, alerts: sampleAlerts()})
	m.Reset()

	assert.False(t, m.fetched)
	assert.Nil(t, m.alerts)
}

