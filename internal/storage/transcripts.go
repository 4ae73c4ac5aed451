// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides local transcript archiving for mindcare-tui.
//
// Archives are a client-side convenience (the /export chat command); the
// authoritative message and alert history lives server-side. Logging out
// never touches previously exported transcripts.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mindcare/mindcare-tui/internal/model"
	"github.com/mindcare/mindcare-tui/internal/util"
)

// =============================================================================
// STORED TRANSCRIPT TYPE
// =============================================================================

// StoredTranscript is a persisted snapshot of a chat session.
type StoredTranscript struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`

	Turns []model.Turn `json:"turns"`
}

// TranscriptMeta contains metadata for listing transcripts.
type TranscriptMeta struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	TurnCount int       `json:"turn_count"`
}

// =============================================================================
// TRANSCRIPT STORE
// =============================================================================

// TranscriptStore handles transcript persistence.
type TranscriptStore struct {
	// BaseDir is the directory for storing transcripts
	// Default: ~/.mindcare/transcripts/
	BaseDir string

	// MaxTranscripts limits stored transcripts (0 = unlimited)
	MaxTranscripts int
}

// NewTranscriptStore creates a store under the default directory.
func NewTranscriptStore() (*TranscriptStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewTranscriptStoreWithDir(filepath.Join(homeDir, ".mindcare", "transcripts"))
}

// NewTranscriptStoreWithDir creates a store with a custom directory.
func NewTranscriptStoreWithDir(baseDir string) (*TranscriptStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &TranscriptStore{
		BaseDir:        baseDir,
		MaxTranscripts: 100,
	}, nil
}

// =============================================================================
// SAVE / LOAD
// =============================================================================

// Save persists a transcript and returns its ID.
func (s *TranscriptStore) Save(tr *StoredTranscript) (string, error) {
	if tr.ID == "" {
		tr.ID = generateTranscriptID()
	}
	if tr.Summary == "" {
		tr.Summary = generateSummary(tr.Turns)
	}
	if tr.CreatedAt.IsZero() {
		tr.CreatedAt = time.Now()
	}

	data, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return "", err
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	if err := util.AtomicWriteFile(s.filePath(tr.ID), data, 0600); err != nil {
		return "", err
	}

	if s.MaxTranscripts > 0 {
		s.enforceLimit()
	}
	return tr.ID, nil
}

// Load retrieves a transcript by ID.
func (s *TranscriptStore) Load(id string) (*StoredTranscript, error) {
	data, err := os.ReadFile(s.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTranscriptNotFound
		}
		return nil, err
	}

	var tr StoredTranscript
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

// List returns all saved transcripts (most recent first).
func (s *TranscriptStore) List() ([]TranscriptMeta, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TranscriptMeta{}, nil
		}
		return nil, err
	}

	var metas []TranscriptMeta
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		tr, err := s.Load(id)
		if err != nil {
			continue // Skip corrupted files
		}

		metas = append(metas, TranscriptMeta{
			ID:        tr.ID,
			UserName:  tr.UserName,
			Summary:   tr.Summary,
			CreatedAt: tr.CreatedAt,
			TurnCount: len(tr.Turns),
		})
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas, nil
}

// Delete removes a transcript by ID.
func (s *TranscriptStore) Delete(id string) error {
	if err := os.Remove(s.filePath(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrTranscriptNotFound
		}
		return err
	}
	return nil
}

// enforceLimit removes oldest transcripts if over limit.
func (s *TranscriptStore) enforceLimit() {
	metas, err := s.List()
	if err != nil || len(metas) <= s.MaxTranscripts {
		return
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].CreatedAt.Before(metas[j].CreatedAt)
	})

	excess := len(metas) - s.MaxTranscripts
	for i := 0; i < excess; i++ {
		s.Delete(metas[i].ID)
	}
}

// =============================================================================
// EXPORT
// =============================================================================

// ExportMarkdown renders the transcript as a Markdown document.
// Risk classifications are included next to the assistant turns carrying one.
func (c *StoredTranscript) ExportMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# MindCare — sesión de " + c.UserName + "\n\n")
	sb.WriteString("Creada: " + c.CreatedAt.Format(time.RFC3339) + "\n\n")
	sb.WriteString("---\n\n")

	for _, turn := range c.Turns {
		sb.WriteString("**" + turn.Speaker.DisplayName() + "** (" + turn.Timestamp.Format("15:04") + "):\n\n")
		sb.WriteString(turn.Text)
		sb.WriteString("\n\n")
		if turn.Risk != nil {
			if meta, ok := turn.Risk.Level.Meta(); ok {
				sb.WriteString("> " + meta.Icon + " " + meta.Label + ": " + turn.Risk.Classification + "\n\n")
			}
		}
		sb.WriteString("---\n\n")
	}
	return sb.String()
}

// =============================================================================
// HELPERS
// =============================================================================

// generateSummary creates a summary from the first user turn.
func generateSummary(turns []model.Turn) string {
	for _, turn := range turns {
		if turn.Speaker == model.SpeakerUser && turn.Text != "" {
			text := strings.ReplaceAll(turn.Text, "\n", " ")
			text = strings.ReplaceAll(text, "\r", "")
			return util.TruncateRunes(text, 50)
		}
	}
	return "Sesión sin mensajes"
}

// filePath returns the file path for a transcript ID.
func (s *TranscriptStore) filePath(id string) string {
	return filepath.Join(s.BaseDir, id+".json")
}

// generateTranscriptID creates a unique transcript ID.
func generateTranscriptID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "chat_" + hex.EncodeToString(bytes)
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrTranscriptNotFound is returned when a transcript doesn't exist.
// Use errors.Is(err, ErrTranscriptNotFound) to check for this error.
var ErrTranscriptNotFound = &TranscriptError{Message: "transcript not found"}

// TranscriptError represents a transcript-related error.
type TranscriptError struct {
	Message string
}

// Error implements the error interface.
func (e *TranscriptError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing transcript errors.
func (e *TranscriptError) Is(target error) bool {
	t, ok := target.(*TranscriptError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
