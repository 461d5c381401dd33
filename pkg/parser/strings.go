package parser

import (
	"regexp"
	"strings"

	"herald/pkg/input"
)

// StringMode selects how much input a StringParser consumes.
type StringMode int

const (
	// StringSingle consumes exactly one token, verbatim.
	StringSingle StringMode = iota
	// StringQuoted consumes a quoted span (possibly spanning several
	// tokens) when the input starts with a quote character, falling back
	// to StringSingle otherwise.
	StringQuoted
	// StringGreedy consumes all remaining input, space-joined.
	StringGreedy
	// StringGreedyFlagYielding consumes remaining tokens but stops before
	// the first token shaped like a flag marker, so trailing flags stay
	// parseable after a greedy argument.
	StringGreedyFlagYielding
)

// FlagMarkerPattern matches the two flag marker shapes: a short alias such
// as "-f" and a long name such as "--force". Shared by the flag parser and
// the flag-yielding string mode so the two can never disagree on what counts
// as a flag.
var FlagMarkerPattern = regexp.MustCompile(`^(-[A-Za-z]|--[A-Za-z][A-Za-z0-9_-]*)$`)

var (
	doubleQuotedPattern = regexp.MustCompile(`^"((?:\\.|[^\\"])*)"`)
	singleQuotedPattern = regexp.MustCompile(`^'((?:\\.|[^\\'])*)'`)
)

// StringParser parses string arguments in the configured mode.
type StringParser struct {
	Mode StringMode
}

// NewStringParser returns a parser for the given mode.
func NewStringParser(mode StringMode) *StringParser {
	return &StringParser{Mode: mode}
}

// Parse implements Parser. The produced value is always a string.
func (p *StringParser) Parse(_ Context, in *input.Cursor) (any, error) {
	switch p.Mode {
	case StringQuoted:
		return p.parseQuoted(in)
	case StringGreedy:
		s, err := in.ReadRemaining()
		if err != nil {
			return nil, &NoInputError{}
		}
		return joinTokens(s), nil
	case StringGreedyFlagYielding:
		return p.parseGreedyFlagYielding(in)
	default:
		token, err := in.ReadString()
		if err != nil {
			return nil, &NoInputError{}
		}
		return token, nil
	}
}

// ContextFree implements Parser.
func (p *StringParser) ContextFree() bool { return true }

func (p *StringParser) parseQuoted(in *input.Cursor) (any, error) {
	rest := in.RemainingInput()
	if rest == "" {
		return nil, &NoInputError{}
	}
	first := rest[0]
	if first != '"' && first != '\'' {
		token, _ := in.ReadString()
		return token, nil
	}

	// Both quote kinds are attempted; the earlier-closing match wins. With
	// the match anchored at a quote character only one pattern can apply,
	// but the preference rule is kept explicit for inputs like `"'"`.
	var match []string
	if m := doubleQuotedPattern.FindStringSubmatch(rest); m != nil {
		match = m
	}
	if m := singleQuotedPattern.FindStringSubmatch(rest); m != nil {
		if match == nil || len(m[0]) < len(match[0]) {
			match = m
		}
	}
	if match == nil {
		return nil, &QuoteError{Input: rest}
	}

	in.ReadSpan(len(match[0]))
	inner := match[1]
	inner = strings.ReplaceAll(inner, `\"`, `"`)
	inner = strings.ReplaceAll(inner, `\'`, `'`)
	return inner, nil
}

// joinTokens rejoins the remaining tokens with single spaces, so greedy
// output reads the same however many separators the sender typed.
func joinTokens(s string) string {
	var parts []string
	for _, p := range strings.Split(s, " ") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func (p *StringParser) parseGreedyFlagYielding(in *input.Cursor) (any, error) {
	var parts []string
	for !in.IsEmpty() {
		if FlagMarkerPattern.MatchString(in.PeekString()) {
			break
		}
		token, err := in.ReadString()
		if err != nil {
			break
		}
		parts = append(parts, token)
	}
	if len(parts) == 0 {
		return nil, &NoInputError{}
	}
	return strings.Join(parts, " "), nil
}
