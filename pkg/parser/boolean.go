package parser

import (
	"strings"

	"herald/pkg/input"
)

var (
	strictBooleans  = []string{"true", "false"}
	liberalBooleans = []string{"true", "false", "yes", "no", "on", "off"}
)

// BooleanParser parses one token as a bool. In strict mode only "true" and
// "false" are accepted (case-insensitively); with Liberal set, "yes"/"on"
// map to true and "no"/"off" map to false.
type BooleanParser struct {
	Liberal bool
}

// NewBooleanParser returns a strict boolean parser.
func NewBooleanParser() *BooleanParser {
	return &BooleanParser{}
}

// NewLiberalBooleanParser returns a parser additionally accepting
// yes/no/on/off.
func NewLiberalBooleanParser() *BooleanParser {
	return &BooleanParser{Liberal: true}
}

// Parse implements Parser.
func (p *BooleanParser) Parse(_ Context, in *input.Cursor) (any, error) {
	token := in.PeekString()
	if token == "" {
		return nil, &NoInputError{}
	}
	switch strings.ToLower(token) {
	case "true":
	case "false":
	case "yes", "on":
		if !p.Liberal {
			return nil, &BooleanError{Input: token}
		}
	case "no", "off":
		if !p.Liberal {
			return nil, &BooleanError{Input: token}
		}
	default:
		return nil, &BooleanError{Input: token}
	}
	in.ReadString()
	switch strings.ToLower(token) {
	case "true", "yes", "on":
		return true, nil
	default:
		return false, nil
	}
}

// ContextFree implements Parser.
func (p *BooleanParser) ContextFree() bool { return true }

// Suggest implements SuggestionProvider.
func (p *BooleanParser) Suggest(_ Context, prefix string) []string {
	candidates := strictBooleans
	if p.Liberal {
		candidates = liberalBooleans
	}
	return FilterByPrefix(prefix, candidates)
}
