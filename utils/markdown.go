package utils

import (
	"regexp"
	"strings"
)

var (
	// Markdown tokens Discord renders: bold, italics, underline, strikethrough,
	// spoilers, inline code and code fences.
	markdownTokenRegex = regexp.MustCompile("([*_~|`]{1,3})")

	// Markdown links [text](url) collapse to their text.
	markdownLinkRegex = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// Heading markers at the start of a line.
	markdownHeadingRegex = regexp.MustCompile(`(?m)^#{1,3}\s+`)

	mentionRegex = regexp.MustCompile(`@(everyone|here|[!&]?\d+)`)
)

// RemoveMarkdown strips Discord markdown formatting from a string.
// Character names and search arguments must go through this before both
// storage queries and fuzzy comparison, or lookups silently miss.
func RemoveMarkdown(s string) string {
	result := markdownLinkRegex.ReplaceAllString(s, "$1")
	result = markdownHeadingRegex.ReplaceAllString(result, "")
	result = markdownTokenRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// EscapeMentions neutralizes @everyone, @here and user/role mentions so stored
// descriptions can be echoed back without pinging anyone.
func EscapeMentions(s string) string {
	return mentionRegex.ReplaceAllString(s, "@​$1")
}

// TruncateRunes shortens s to at most limit runes, appending "..." when it had
// to cut. Rune-aware so multi-byte names don't get split mid-character.
func TruncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
