package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "Spark the Jolteon",
			expected: "Spark the Jolteon",
		},
		{
			name:     "bold stripped",
			input:    "**Spark**",
			expected: "Spark",
		},
		{
			name:     "italics and underline stripped",
			input:    "*Spark* __the__ _Jolteon_",
			expected: "Spark the Jolteon",
		},
		{
			name:     "inline code stripped",
			input:    "`Spark`",
			expected: "Spark",
		},
		{
			name:     "spoiler stripped",
			input:    "||Spark||",
			expected: "Spark",
		},
		{
			name:     "link collapses to text",
			input:    "[Spark](https://example.com/spark)",
			expected: "Spark",
		},
		{
			name:     "heading marker stripped",
			input:    "# Spark",
			expected: "Spark",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Spark  ",
			expected: "Spark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoveMarkdown(tt.input))
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Run("short string untouched", func(t *testing.T) {
		assert.Equal(t, "Spark", TruncateRunes("Spark", 20))
	})

	t.Run("long string truncated with ellipsis", func(t *testing.T) {
		result := TruncateRunes("An Exceedingly Long Character Name", 20)
		assert.Equal(t, "An Exceedingly Long ...", result)
	})

	t.Run("multibyte runes survive truncation", func(t *testing.T) {
		result := TruncateRunes("ポケモンポケモンポケモンポケモンポケモンポケモン", 20)
		assert.Equal(t, "ポケモンポケモンポケモンポケモンポケモン...", result)
	})
}

func TestEscapeMentions(t *testing.T) {
	assert.NotContains(t, EscapeMentions("hello @everyone"), "@everyone")
	assert.NotContains(t, EscapeMentions("hi <@123456789>"), "@123456789")
	assert.Equal(t, "no mentions here", EscapeMentions("no mentions here"))
}
