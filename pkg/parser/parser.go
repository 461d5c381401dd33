// Package parser provides the value-parser family of the herald framework:
// small, composable converters from raw command-line tokens into typed Go
// values. Every parser follows the same contract: it either succeeds and
// advances the cursor past exactly the input it consumed, or it fails with a
// typed error and consumes nothing. That no-partial-consumption rule is what
// lets the resolution engine try sibling branches without backtracking
// bookkeeping.
package parser

import (
	"herald/pkg/input"
)

// Context exposes what a value parser may observe about the resolution
// attempt it participates in. The command package's Context satisfies this;
// parsers depend only on this narrow view.
type Context interface {
	// Sender identifies who issued the command line.
	Sender() string
	// Suggesting reports whether this attempt serves tab completion rather
	// than execution.
	Suggesting() bool
	// Value returns a previously parsed argument by name.
	Value(name string) (any, bool)
}

// Parser converts raw input into a typed value.
//
// Parse must not leave the cursor partially advanced on failure. The
// resolution engine additionally snapshots the cursor position around every
// invocation, so a misbehaving parser cannot corrupt sibling attempts, but
// well-behaved parsers restore on their own.
type Parser interface {
	Parse(ctx Context, in *input.Cursor) (any, error)

	// ContextFree reports whether the parser's behavior depends only on the
	// raw input. Parsers that consult sender-specific state must return
	// false; their suggestions are recomputed per sender instead of cached.
	ContextFree() bool
}

// SuggestionProvider is implemented by parsers that can propose completion
// candidates for a partial final token.
type SuggestionProvider interface {
	Suggest(ctx Context, prefix string) []string
}

// Suggestions collects suggestion output from a parser, returning nil when
// the parser has no suggestion capability.
func Suggestions(p Parser, ctx Context, prefix string) []string {
	sp, ok := p.(SuggestionProvider)
	if !ok {
		return nil
	}
	return sp.Suggest(ctx, prefix)
}
