// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcare/mindcare-tui/internal/model"
)

func newTestStore(t *testing.T) *TranscriptStore {
	t.Helper()
	store, err := NewTranscriptStoreWithDir(t.TempDir())
	require.NoError(t, err)
	return store
}

func sampleTranscript() *StoredTranscript {
	return &StoredTranscript{
		UserName: "Ana",
		Turns: []model.Turn{
			model.NewUserTurn("me siento mal"),
			model.NewAssistantTurn("Lo siento mucho, Ana.", &model.RiskAnalysis{
				Level:          model.RiskMedium,
				Classification: "NEGATIVO",
			}),
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Save(sampleTranscript())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	loaded, err := store.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", loaded.UserName)
	require.Len(t, loaded.Turns, 2)
	assert.Equal(t, model.SpeakerUser, loaded.Turns[0].Speaker)
	require.NotNil(t, loaded.Turns[1].Risk)
	assert.Equal(t, model.RiskMedium, loaded.Turns[1].Risk.Level)
}

func TestSaveGeneratesSummaryFromFirstUserTurn(t *testing.T) {
	store := newTestStore(t)

	tr := sampleTranscript()
	_, err := store.Save(tr)
	require.NoError(t, err)
	assert.Equal(t, "me siento mal", tr.Summary)
}

func TestListMostRecentFirst(t *testing.T) {
	store := newTestStore(t)

	older := sampleTranscript()
	older.CreatedAt = time.Now().Add(-time.Hour)
	olderID, err := store.Save(older)
	require.NoError(t, err)

	newer := sampleTranscript()
	newerID, err := store.Save(newer)
	require.NoError(t, err)

	metas, err := store.List()
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, newerID, metas[0].ID)
	assert.Equal(t, olderID, metas[1].ID)
	assert.Equal(t, 2, metas[0].TurnCount)
}

func TestLoadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load("chat_deadbeef")
	assert.True(t, errors.Is(err, ErrTranscriptNotFound))
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Save(sampleTranscript())
	require.NoError(t, err)
	require.NoError(t, store.Delete(id))

	_, err = store.Load(id)
	assert.True(t, errors.Is(err, ErrTranscriptNotFound))
}

func TestEnforceLimit(t *testing.T) {
	store := newTestStore(t)
	store.MaxTranscripts = 2

	for i := 0; i < 4; i++ {
		tr := sampleTranscript()
		tr.CreatedAt = time.Now().Add(time.Duration(i-4) * time.Hour)
		_, err := store.Save(tr)
		require.NoError(t, err)
	}

	metas, err := store.List()
	require.NoError(t, err)
	assert.Len(t, metas, 2, "oldest transcripts are pruned")
}

func TestExportMarkdown(t *testing.T) {
	tr := sampleTranscript()
	tr.CreatedAt = time.Now()

	md := tr.ExportMarkdown()
	assert.Contains(t, md, "# MindCare — sesión de Ana")
	assert.Contains(t, md, "**Tú**")
	assert.Contains(t, md, "**MindCare**")
	assert.Contains(t, md, "me siento mal")
	assert.Contains(t, md, "Riesgo medio: NEGATIVO")
}
