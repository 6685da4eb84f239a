// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package session owns the persisted authentication state of the
// academy client: the bearer token and the serialized user it belongs
// to, stored at a well-known path like SSH keys — authenticate once
// with "academy login", then every protected command loads it
// transparently.
//
// The session file is the only state shared across commands. It is
// read-mostly: writes happen only on login, logout, and expiry, and
// each write atomically replaces the whole value (last write wins).
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cps-academy/academy/lib/strapi"
)

// ErrNoSession is returned by Load and Guard.Ensure when no session is
// persisted. Callers treat it as a redirect to the authentication
// entry point ("academy login") and must not attempt protected calls.
var ErrNoSession = errors.New("no session")

// Session is an authenticated identity: the bearer token for
// protected repository calls and the user it was issued to.
type Session struct {
	// Token is the JWT returned by the repository's login endpoint.
	Token string `json:"token"`

	// User is the authenticated user as of login time. Role changes
	// on the server show up after the next login.
	User strapi.User `json:"user"`
}

// FilePath returns the path to the session file. Checks the
// ACADEMY_SESSION_FILE environment variable first, then falls back to
// ~/.config/academy/session.json (honoring XDG_CONFIG_HOME).
func FilePath() string {
	if envPath := os.Getenv("ACADEMY_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "academy-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "academy", "session.json")
}

// Store reads and writes the persisted session at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store at the well-known session path.
func NewStore() *Store {
	return &Store{path: FilePath()}
}

// NewStoreAt creates a store at a specific path. Used by tests and by
// deployments that relocate the session file.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store persists to.
func (store *Store) Path() string {
	return store.path
}

// Load reads the persisted session. Returns ErrNoSession when the
// file does not exist.
func (store *Store) Load() (*Session, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("reading session file %s: %w", store.path, err)
	}

	var current Session
	if err := json.Unmarshal(data, &current); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", store.path, err)
	}

	if current.Token == "" {
		return nil, fmt.Errorf("session file %s has no token", store.path)
	}
	if current.User.Username == "" {
		return nil, fmt.Errorf("session file %s has no user", store.path)
	}

	return &current, nil
}

// Save writes the session, replacing any previous value. Creates the
// parent directory with mode 0700 if needed. The file is written with
// mode 0600 (owner-only read/write) since it contains a bearer token.
func (store *Store) Save(current *Session) error {
	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", store.path, err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an absent session is
// not an error.
func (store *Store) Clear() error {
	if err := os.Remove(store.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", store.path, err)
	}
	return nil
}
