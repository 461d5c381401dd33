package parser

import (
	"unicode/utf8"

	"herald/pkg/input"
)

// CharParser parses one token that must consist of exactly one character.
type CharParser struct{}

// NewCharParser returns a single-character parser.
func NewCharParser() *CharParser {
	return &CharParser{}
}

// Parse implements Parser. The produced value is a rune.
func (p *CharParser) Parse(_ Context, in *input.Cursor) (any, error) {
	token := in.PeekString()
	if token == "" {
		return nil, &NoInputError{}
	}
	if utf8.RuneCountInString(token) != 1 {
		return nil, &CharError{Input: token}
	}
	in.ReadString()
	r, _ := utf8.DecodeRuneInString(token)
	return r, nil
}

// ContextFree implements Parser.
func (p *CharParser) ContextFree() bool { return true }
