// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRiskLevel(t *testing.T) {
	tests := []struct {
		input string
		want  RiskLevel
	}{
		{"ALTO", RiskHigh},
		{"alto", RiskHigh},
		{" MEDIO ", RiskMedium},
		{"BAJO", RiskLow},
		{"HIGH", RiskHigh},
		{"MEDIUM", RiskMedium},
		{"LOW", RiskLow},
		// Anything unrecognized degrades to no-risk, never an error
		{"", RiskNone},
		{"CRITICO", RiskNone},
		{"42", RiskNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRiskLevel(tt.input))
		})
	}
}

func TestRiskLevelMeta(t *testing.T) {
	for _, level := range []RiskLevel{RiskLow, RiskMedium, RiskHigh} {
		meta, ok := level.Meta()
		assert.True(t, ok, "level %s must have metadata", level)
		assert.NotEmpty(t, meta.Icon)
		assert.NotEmpty(t, meta.Label)
		assert.NotEmpty(t, meta.Message)
	}

	_, ok := RiskNone.Meta()
	assert.False(t, ok, "RiskNone must not render")
}

func TestTranscriptAppendOnly(t *testing.T) {
	var tr Transcript
	tr.Append(NewUserTurn("hola"))
	tr.Append(NewAssistantTurn("Hola, estoy aquí.", nil))

	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, SpeakerUser, tr.Turns()[0].Speaker)
	assert.Equal(t, SpeakerAssistant, tr.Turns()[1].Speaker)
	assert.NotEmpty(t, tr.Turns()[0].ID)
	assert.NotEqual(t, tr.Turns()[0].ID, tr.Turns()[1].ID)

	tr.Reset()
	assert.Equal(t, 0, tr.Len())
}

func TestTranscriptLatestRisk(t *testing.T) {
	var tr Transcript
	assert.Nil(t, tr.LatestRisk(), "empty log has no risk")

	tr.Append(NewUserTurn("me siento mal"))
	tr.Append(NewAssistantTurn("Lo siento.", &RiskAnalysis{Level: RiskHigh, Classification: "ideación"}))
	risk := tr.LatestRisk()
	if assert.NotNil(t, risk) {
		assert.Equal(t, RiskHigh, risk.Level)
	}

	// A newer assistant turn without analysis hides the banner again
	tr.Append(NewUserTurn("gracias"))
	tr.Append(NewAssistantTurn("De nada.", nil))
	assert.Nil(t, tr.LatestRisk())
}

func TestStatsSnapshotMoodEmoji(t *testing.T) {
	// Risk level mapping is primary
	assert.Equal(t, "😢", StatsSnapshot{LastRiskLevel: RiskHigh}.MoodEmoji())
	assert.Equal(t, "😐", StatsSnapshot{LastRiskLevel: RiskMedium}.MoodEmoji())
	assert.Equal(t, "🙂", StatsSnapshot{LastRiskLevel: RiskLow}.MoodEmoji())

	// Keyword fallback for snapshots without ultimo_riesgo
	assert.Equal(t, "😢", StatsSnapshot{LastEmotionalState: "muy TRISTE hoy"}.MoodEmoji())
	assert.Equal(t, "😐", StatsSnapshot{LastEmotionalState: "ansioso"}.MoodEmoji())
	assert.Equal(t, "🙂", StatsSnapshot{LastEmotionalState: "feliz"}.MoodEmoji())
	assert.Equal(t, "🙂", StatsSnapshot{LastEmotionalState: "-"}.MoodEmoji())

	// Risk wins over contradictory text
	snap := StatsSnapshot{LastRiskLevel: RiskHigh, LastEmotionalState: "feliz"}
	assert.Equal(t, "😢", snap.MoodEmoji())
}
