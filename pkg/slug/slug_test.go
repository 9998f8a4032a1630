// Copyright (c) 2026 Folio. All rights reserved.

package slug_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foliohq/folio/pkg/slug"
)

/*
TestFrom_Basic verifies common title-to-slug conversions.
*/
func TestFrom_Basic(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation", "C++ & Go: A Love Story!", "c-go-a-love-story"},
		{"accents", "Résumé Café", "resume-cafe"},
		{"surrounding_noise", "  --Weird   Title-- ", "weird-title"},
		{"numbers", "Top 10 Tips (2026)", "top-10-tips-2026"},
		{"already_clean", "hello-world", "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.title))
		})
	}
}

/*
TestFrom_Fallback verifies that degenerate titles still produce a usable slug.
*/
func TestFrom_Fallback(t *testing.T) {
	assert.Equal(t, slug.Fallback, slug.From("!!!"))
	assert.Equal(t, slug.Fallback, slug.From(""))
	assert.Equal(t, slug.Fallback, slug.From("   "))
}

/*
TestFrom_Shape verifies the URL-safety invariants on arbitrary input:
only [a-z0-9-], no consecutive hyphens, no leading/trailing hyphen.
*/
func TestFrom_Shape(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z0-9-]+$`)

	inputs := []string{
		"C++ & Go: A Love Story!",
		"  multiple---hyphens  here ",
		"ÜBER größe Straße",
		"日本語のタイトル mixed With ASCII",
	}

	for _, input := range inputs {
		result := slug.From(input)
		assert.Regexp(t, shape, result)
		assert.NotContains(t, result, "--")
		assert.False(t, strings.HasPrefix(result, "-"))
		assert.False(t, strings.HasSuffix(result, "-"))
	}
}
