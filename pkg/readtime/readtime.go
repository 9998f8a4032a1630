// Copyright (c) 2026 Folio. All rights reserved.

// Package readtime estimates how long a piece of prose takes to read.
//
// # Usage
//
// The estimate is stored alongside blog posts and recomputed on every
// content change. It is a pure function of the current text: no history,
// no memoization across edits.
package readtime

import "strings"

// WordsPerMinute is the assumed reading speed for the estimate.
const WordsPerMinute = 200

// Estimate returns the reading time in whole minutes, rounded up.
//
// Non-empty text always yields at least 1 minute. Empty or
// whitespace-only text yields 0.
func Estimate(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}

	return (words + WordsPerMinute - 1) / WordsPerMinute
}
