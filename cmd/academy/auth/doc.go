// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package auth implements the account commands: login, register,
// logout, and whoami. Login persists the session that every protected
// command loads transparently.
package auth
