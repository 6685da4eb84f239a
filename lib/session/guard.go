// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"log/slog"
	"sync"

	"github.com/cps-academy/academy/lib/strapi"
)

// Notifier surfaces a user-facing notice (session expired, permission
// denied). Commands pass a function that writes to stderr or to the
// active TUI's status line.
type Notifier func(notice string)

// Guard gates protected repository calls on session validity and
// reacts to authorization failures.
//
// The guard is the single owner of session teardown: when any
// repository call returns unauthorized, the guard destroys the
// persisted session exactly once, even when several in-flight calls
// fail concurrently (TUI fetches run off the event loop), and every
// caller gets the same redirect signal.
type Guard struct {
	store  *Store
	notify Notifier
	logger *slog.Logger

	mutex       sync.Mutex
	invalidated bool
}

// NewGuard creates a guard over the given store. A nil notify is
// replaced with a no-op.
func NewGuard(store *Store, notify Notifier, logger *slog.Logger) *Guard {
	if notify == nil {
		notify = func(string) {}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{store: store, notify: notify, logger: logger}
}

// Ensure loads the persisted session before a protected view
// activates. Returns ErrNoSession when none exists — the caller must
// redirect to login and perform no fetch. Ensure itself never touches
// the network.
func (guard *Guard) Ensure() (*Session, error) {
	guard.mutex.Lock()
	defer guard.mutex.Unlock()
	if guard.invalidated {
		return nil, ErrNoSession
	}
	return guard.store.Load()
}

// Invalidate destroys the persisted session and surfaces the given
// notice. Idempotent: a second invocation while teardown is already
// done (or pending on another goroutine) is a no-op, so concurrent
// unauthorized results cannot double-clear or double-notify. Returns
// true when this call performed the teardown.
func (guard *Guard) Invalidate(notice string) bool {
	guard.mutex.Lock()
	defer guard.mutex.Unlock()

	if guard.invalidated {
		return false
	}
	guard.invalidated = true

	if err := guard.store.Clear(); err != nil {
		guard.logger.Error("clearing session", "error", err)
	}
	guard.notify(notice)
	return true
}

// HandleError reacts to a repository call failure per the error
// taxonomy and returns the error for the caller to propagate:
//
//   - Unauthorized: the session is dead. Destroy it (once), surface a
//     "session expired" notice; the caller redirects to login.
//   - Forbidden: the session stays intact. Surface a permission
//     notice; the caller degrades to an empty/denied view.
//   - Everything else passes through untouched.
func (guard *Guard) HandleError(err error) error {
	switch {
	case strapi.IsUnauthorized(err):
		guard.Invalidate("Session expired. Please login again.")
	case strapi.IsForbidden(err):
		guard.notify("Access denied. Check repository permissions.")
	}
	return err
}
