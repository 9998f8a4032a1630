// Copyright (c) 2026 Folio. All rights reserved.

package readtime_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foliohq/folio/pkg/readtime"
)

// words builds a body of exactly n whitespace-separated words.
func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

/*
TestEstimate verifies the ceiling division against the 200 wpm constant.
*/
func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace_only", "   \n\t  ", 0},
		{"single_word", "hello", 1},
		{"under_one_minute", words(199), 1},
		{"exactly_one_minute", words(200), 1},
		{"just_over_one_minute", words(201), 2},
		{"two_minutes", words(399), 2},
		{"exactly_two_minutes", words(400), 2},
		{"long_article", words(1000), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readtime.Estimate(tt.text))
		})
	}
}

/*
TestEstimate_WhitespaceRuns verifies that runs of mixed whitespace count as
a single separator, matching the word-count approximation.
*/
func TestEstimate_WhitespaceRuns(t *testing.T) {
	assert.Equal(t, 1, readtime.Estimate("one\n\ntwo\t three    four"))
}
