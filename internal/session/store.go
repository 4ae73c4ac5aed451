// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session provides the local user session: a stable persisted user
// identifier bound to a display name.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mindcare/mindcare-tui/internal/util"
)

// MinNameLength is the minimum display-name length after trimming.
const MinNameLength = 2

// ErrNameTooShort is returned when a trimmed display name is shorter than
// MinNameLength. The call is a no-op: neither memory nor disk changes.
var ErrNameTooShort = errors.New("display name must be at least 2 characters")

// =============================================================================
// SESSION TYPES
// =============================================================================

// Session is the client-held identity binding a persisted user identifier
// to a display name.
type Session struct {
	// UserID is an opaque stable identifier, generated exactly once per
	// profile and reused across restarts. It never changes, even when the
	// display name does.
	UserID string `json:"user_id"`
	// UserName is the display name, at least MinNameLength characters after
	// trimming.
	UserName string `json:"user_name"`
}

// Active reports whether the session holds a usable identity.
// No component may call the backend without an active session.
func (s Session) Active() bool {
	return s.UserID != "" && s.UserName != ""
}

// =============================================================================
// SESSION STORE
// =============================================================================

// Store owns the in-memory session and its persisted profile file.
// It is the only writer of session state; every other component reads the
// session through Current().
type Store struct {
	// dir is the directory holding the profile file
	// (default: ~/.mindcare)
	dir string

	current Session
}

// profileFile is the fixed name of the persisted profile.
const profileFile = "profile.json"

// NewStore creates a session store rooted at the default config directory.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStoreWithDir(filepath.Join(home, ".mindcare"))
}

// NewStoreWithDir creates a session store rooted at a custom directory.
func NewStoreWithDir(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Current returns the current session (zero value when logged out).
func (s *Store) Current() Session {
	return s.current
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Start begins a session for the given display name.
//
// The name is trimmed; names shorter than MinNameLength fail with
// ErrNameTooShort and leave any existing session and the persisted profile
// untouched. The user identifier is read from the persisted profile when one
// exists and generated fresh otherwise, so a rename keeps the identity
// stable.
func (s *Store) Start(rawName string) (Session, error) {
	name := strings.TrimSpace(rawName)
	if len([]rune(name)) < MinNameLength {
		return s.current, ErrNameTooShort
	}

	userID := ""
	if persisted, err := s.readProfile(); err == nil && persisted.UserID != "" {
		userID = persisted.UserID
	}
	if userID == "" {
		userID = uuid.NewString()
	}

	sess := Session{UserID: userID, UserName: name}
	if err := s.writeProfile(sess); err != nil {
		return s.current, err
	}

	s.current = sess
	return sess, nil
}

// Restore loads the persisted profile at startup.
//
// When both the identifier and the name are present the session resumes
// without re-validating the name (it was validated when written). Otherwise
// the session stays empty and ok is false.
func (s *Store) Restore() (Session, bool) {
	persisted, err := s.readProfile()
	if err != nil || persisted.UserID == "" || persisted.UserName == "" {
		return Session{}, false
	}
	s.current = persisted
	return s.current, true
}

// Logout clears the in-memory session and removes the persisted profile
// unconditionally. Backend state is unaffected.
func (s *Store) Logout() {
	s.current = Session{}
	os.Remove(s.profilePath())
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func (s *Store) profilePath() string {
	return filepath.Join(s.dir, profileFile)
}

func (s *Store) readProfile() (Session, error) {
	data, err := os.ReadFile(s.profilePath())
	if err != nil {
		return Session{}, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Store) writeProfile(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	// Profile is private to the user
	return util.AtomicWriteFile(s.profilePath(), data, 0600)
}
