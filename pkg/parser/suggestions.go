package parser

import "strings"

// FilterByPrefix returns the candidates matching the given prefix
// case-insensitively, preserving candidate order. An empty prefix matches
// everything.
func FilterByPrefix(prefix string, candidates []string) []string {
	if prefix == "" {
		out := make([]string, len(candidates))
		copy(out, candidates)
		return out
	}
	var out []string
	lowered := strings.ToLower(prefix)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lowered) {
			out = append(out, c)
		}
	}
	return out
}

// FixedSuggestions is a SuggestionProvider serving a fixed candidate list.
// Useful for arguments whose parser has no suggestion capability but whose
// likely values are known at registration time.
type FixedSuggestions []string

// Suggest implements SuggestionProvider.
func (f FixedSuggestions) Suggest(_ Context, prefix string) []string {
	return FilterByPrefix(prefix, f)
}
