package parser

import (
	"strings"

	"herald/pkg/input"
)

// EnumParser parses one token against a closed set of constant names,
// case-insensitively. The parsed value is the constant as registered, not as
// typed, so handlers can rely on canonical casing.
type EnumParser struct {
	values     []string
	suggestion []string
}

// NewEnumParser returns a parser accepting exactly the given constants.
func NewEnumParser(values ...string) *EnumParser {
	suggestion := make([]string, len(values))
	for i, v := range values {
		suggestion[i] = strings.ToLower(v)
	}
	return &EnumParser{values: values, suggestion: suggestion}
}

// Values returns the registered constant set.
func (p *EnumParser) Values() []string {
	return p.values
}

// Parse implements Parser.
func (p *EnumParser) Parse(_ Context, in *input.Cursor) (any, error) {
	token := in.PeekString()
	if token == "" {
		return nil, &NoInputError{}
	}
	for _, v := range p.values {
		if strings.EqualFold(v, token) {
			in.ReadString()
			return v, nil
		}
	}
	return nil, &EnumError{Input: token, Acceptable: p.values}
}

// ContextFree implements Parser.
func (p *EnumParser) ContextFree() bool { return true }

// Suggest implements SuggestionProvider. Candidates are lower-cased for
// discoverability, matching the acceptable-values list in error messages.
func (p *EnumParser) Suggest(_ Context, prefix string) []string {
	return FilterByPrefix(prefix, p.suggestion)
}
