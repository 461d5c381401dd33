package strings

import (
	"strings"
)

// DefaultDescriptionMaxLen is the maximum width help tables allow for a
// description cell before truncating it.
const DefaultDescriptionMaxLen = 60

// MinTruncateLen is the smallest maxLen TruncateDescription accepts. Anything
// shorter would not fit a single character plus the "..." suffix.
const MinTruncateLen = 4

// TruncateDescription flattens a description to a single line and truncates it
// to at most maxLen characters, appending "..." when content was cut.
//
// All runs of whitespace (including newlines and tabs) collapse to single
// spaces, and slicing happens on runes so multi-byte characters are never
// split. A maxLen below MinTruncateLen is clamped to MinTruncateLen.
func TruncateDescription(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
