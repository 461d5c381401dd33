package parser

import (
	"github.com/google/uuid"

	"herald/pkg/input"
)

// UUIDParser parses one token as a UUID via github.com/google/uuid, wrapping
// any format failure into a typed UUIDError.
type UUIDParser struct{}

// NewUUIDParser returns a UUID parser.
func NewUUIDParser() *UUIDParser {
	return &UUIDParser{}
}

// Parse implements Parser. The produced value is a uuid.UUID.
func (p *UUIDParser) Parse(_ Context, in *input.Cursor) (any, error) {
	token := in.PeekString()
	if token == "" {
		return nil, &NoInputError{}
	}
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, &UUIDError{Input: token, Cause: err}
	}
	in.ReadString()
	return id, nil
}

// ContextFree implements Parser.
func (p *UUIDParser) ContextFree() bool { return true }
