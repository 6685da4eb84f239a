// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package course implements the catalog commands: the interactive
// course browser and the single-course viewer with its module
// accordion. Both sit behind the session guard.
package course
