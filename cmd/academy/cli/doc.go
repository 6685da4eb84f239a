// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the academy CLI:
// the command tree with flag parsing and help output, categorized
// command errors, structured logging, and the shared connect helpers
// that build an authenticated repository client from the persisted
// session.
package cli
