package input

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrNoInput is returned when a read is attempted past the end of the input.
// It is a distinct condition from a malformed value: callers use it to decide
// between "suggest starting values" and "report an invalid value".
var ErrNoInput = errors.New("no input was provided")

// Cursor is a mutable, rewindable view over the unconsumed remainder of a
// single command line. It supports reads at two granularities: whole
// space-delimited tokens, and individual characters within the current
// token (needed for quoted-string scanning and similar sub-token lookahead).
//
// The space character is the only token separator. Other whitespace (tabs,
// carriage returns) is ordinary token content, so a line copied in with tabs
// parses the same everywhere in the module.
//
// Reading is monotonic: the position only moves forward, except through an
// explicit Position/Restore pair. A failed parse attempt must leave the
// cursor exactly where it was before the attempt; the resolution engine
// enforces this by snapshotting the position around every parser invocation.
//
// A Cursor is owned exclusively by one resolution attempt and must not be
// shared across goroutines.
type Cursor struct {
	input string
	pos   int
}

// New creates a cursor over the given command line.
func New(line string) *Cursor {
	return &Cursor{input: line}
}

// Position returns the current byte offset into the original input.
func (c *Cursor) Position() int {
	return c.pos
}

// Restore rewinds (or advances) the cursor to a position previously obtained
// from Position. It is the only sanctioned way to move backwards.
func (c *Cursor) Restore(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.input) {
		pos = len(c.input)
	}
	c.pos = pos
}

// Input returns the full original input line, including consumed portions.
func (c *Cursor) Input() string {
	return c.input
}

// RemainingInput returns the unconsumed tail of the input verbatim, with
// leading spaces stripped. Parsers that need to scan across token
// boundaries (quoted strings, duration literals) match against this view and
// then consume the matched span with ReadSpan.
func (c *Cursor) RemainingInput() string {
	return strings.TrimLeft(c.input[c.pos:], " ")
}

// IsEmpty reports whether no tokens remain.
func (c *Cursor) IsEmpty() bool {
	return c.RemainingInput() == ""
}

// RemainingTokens returns the number of space-delimited tokens left.
func (c *Cursor) RemainingTokens() int {
	rest := c.RemainingInput()
	if rest == "" {
		return 0
	}
	n := 0
	inToken := false
	for i := 0; i < len(rest); i++ {
		if rest[i] == ' ' {
			inToken = false
		} else if !inToken {
			inToken = true
			n++
		}
	}
	return n
}

// PeekString returns the next token without consuming it, or the empty
// string if the input is exhausted.
func (c *Cursor) PeekString() string {
	rest := c.RemainingInput()
	if rest == "" {
		return ""
	}
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		return rest[:i]
	}
	return rest
}

// ReadString consumes and returns the next token. It returns ErrNoInput if
// the cursor is exhausted.
func (c *Cursor) ReadString() (string, error) {
	c.skipSpaces()
	if c.pos >= len(c.input) {
		return "", ErrNoInput
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != ' ' {
		c.pos++
	}
	return c.input[start:c.pos], nil
}

// Peek returns the next character of the current token without consuming it.
// Leading spaces before the token are skipped over (but not consumed).
// The second return value is false if no input remains.
func (c *Cursor) Peek() (rune, bool) {
	rest := c.RemainingInput()
	if rest == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r, true
}

// Read consumes and returns the next character of the current token,
// consuming any spaces that precede it.
func (c *Cursor) Read() (rune, bool) {
	c.skipSpaces()
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r, true
}

// ReadSpan consumes exactly n bytes of RemainingInput and returns them.
// It is used by parsers that matched a multi-token span (e.g. a quoted
// string) against RemainingInput and now need the cursor to advance by
// precisely that span. n is clamped to the remaining length.
func (c *Cursor) ReadSpan(n int) string {
	c.skipSpaces()
	if n > len(c.input)-c.pos {
		n = len(c.input) - c.pos
	}
	if n < 0 {
		n = 0
	}
	span := c.input[c.pos : c.pos+n]
	c.pos += n
	return span
}

// ReadRemaining consumes everything that is left and returns it verbatim
// (leading spaces stripped). Returns ErrNoInput on an exhausted cursor.
func (c *Cursor) ReadRemaining() (string, error) {
	c.skipSpaces()
	if c.pos >= len(c.input) {
		return "", ErrNoInput
	}
	rest := c.input[c.pos:]
	c.pos = len(c.input)
	return rest, nil
}

func (c *Cursor) skipSpaces() {
	for c.pos < len(c.input) && c.input[c.pos] == ' ' {
		c.pos++
	}
}
