// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"
	"net/http"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cps-academy/academy/lib/strapi"
)

func TestEnsureWithoutSession(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	guard := NewGuard(store, nil, nil)

	_, err := guard.Ensure()
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("Ensure = %v, want ErrNoSession", err)
	}
}

func TestEnsureReturnsPersistedSession(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(testSession()); err != nil {
		t.Fatal(err)
	}
	guard := NewGuard(store, nil, nil)

	current, err := guard.Ensure()
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if current.Token != "jwt-token" {
		t.Errorf("token = %q", current.Token)
	}
}

func TestHandleErrorUnauthorizedClearsSession(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(testSession()); err != nil {
		t.Fatal(err)
	}

	var notices []string
	guard := NewGuard(store, func(notice string) { notices = append(notices, notice) }, nil)

	unauthorized := &strapi.APIError{Kind: strapi.KindUnauthorized, StatusCode: http.StatusUnauthorized, Message: "expired"}
	if err := guard.HandleError(unauthorized); !strapi.IsUnauthorized(err) {
		t.Errorf("HandleError should pass the error through, got %v", err)
	}

	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Errorf("session should be cleared, Load = %v", err)
	}
	if len(notices) != 1 {
		t.Errorf("notices = %v, want exactly one", notices)
	}
	if _, err := guard.Ensure(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Ensure after invalidation = %v, want ErrNoSession", err)
	}
}

func TestHandleErrorForbiddenKeepsSession(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(testSession()); err != nil {
		t.Fatal(err)
	}

	var notices []string
	guard := NewGuard(store, func(notice string) { notices = append(notices, notice) }, nil)

	forbidden := &strapi.APIError{Kind: strapi.KindForbidden, StatusCode: http.StatusForbidden, Message: "denied"}
	guard.HandleError(forbidden)

	if _, err := store.Load(); err != nil {
		t.Errorf("session should survive forbidden, Load = %v", err)
	}
	if len(notices) != 1 {
		t.Errorf("notices = %v, want a permission notice", notices)
	}
	if _, err := guard.Ensure(); err != nil {
		t.Errorf("Ensure after forbidden = %v, want success", err)
	}
}

func TestInvalidateIdempotent(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(testSession()); err != nil {
		t.Fatal(err)
	}

	var notices []string
	guard := NewGuard(store, func(notice string) { notices = append(notices, notice) }, nil)

	if !guard.Invalidate("expired") {
		t.Error("first Invalidate should act")
	}
	if guard.Invalidate("expired") {
		t.Error("second Invalidate should be a no-op")
	}
	if len(notices) != 1 {
		t.Errorf("notices = %v, want exactly one", notices)
	}
}

func TestInvalidateConcurrent(t *testing.T) {
	// Several in-flight fetches can fail with unauthorized at once;
	// exactly one teardown must win.
	store := NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(testSession()); err != nil {
		t.Fatal(err)
	}

	var noticeCount atomic.Int64
	guard := NewGuard(store, func(string) { noticeCount.Add(1) }, nil)

	var wg sync.WaitGroup
	var actedCount atomic.Int64
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if guard.Invalidate("expired") {
				actedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	if actedCount.Load() != 1 {
		t.Errorf("teardowns = %d, want 1", actedCount.Load())
	}
	if noticeCount.Load() != 1 {
		t.Errorf("notices = %d, want 1", noticeCount.Load())
	}
}

func TestHandleErrorPassesThroughOtherKinds(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(testSession()); err != nil {
		t.Fatal(err)
	}

	var notices []string
	guard := NewGuard(store, func(notice string) { notices = append(notices, notice) }, nil)

	notFound := &strapi.APIError{Kind: strapi.KindNotFound, StatusCode: http.StatusNotFound, Message: "gone"}
	guard.HandleError(notFound)

	if len(notices) != 0 {
		t.Errorf("notices = %v, want none for not-found", notices)
	}
	if _, err := store.Load(); err != nil {
		t.Errorf("session should survive not-found, Load = %v", err)
	}
}
