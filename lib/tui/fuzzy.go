// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// fzf's scoring tables must be built before the first match; without
// this every input scores zero.
func init() {
	algo.Init("default")
}

// FuzzyResult is the outcome of matching a pattern against a text:
// the fzf score (higher is better, zero means no match) and the rune
// positions in the text that matched, for highlight rendering.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// NewSlab allocates a reusable scratch buffer for FuzzyMatch. Callers
// that match many candidates against one pattern (filtering a list)
// should allocate one slab and pass it to every call; a nil slab also
// works but allocates per call.
func NewSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// FuzzyMatch runs fzf's V2 fuzzy algorithm case-insensitively with
// Unicode normalization. An empty pattern never matches — callers
// treat that as "no filter active" and skip matching entirely.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	// fzf expects a pre-lowercased pattern when matching
	// case-insensitively.
	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(text))

	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	match := FuzzyResult{Score: result.Score}
	if positions != nil {
		match.Positions = *positions
	}
	return match
}
