package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"herald/pkg/input"
)

var durationGroupPattern = regexp.MustCompile(`([0-9]+)(d|h|m|s)`)

// durationUnits in suggestion order, largest first.
var durationUnits = []string{"d", "h", "m", "s"}

// DurationParser parses one token of repeated <number><unit> groups, e.g.
// "1d2h3m4s", into a time.Duration. Units are days, hours, minutes and
// seconds. A token with no valid groups, with trailing garbage between or
// after groups, or whose groups sum to zero is rejected.
type DurationParser struct{}

// NewDurationParser returns a duration parser.
func NewDurationParser() *DurationParser {
	return &DurationParser{}
}

// Parse implements Parser.
func (p *DurationParser) Parse(_ Context, in *input.Cursor) (any, error) {
	token := in.PeekString()
	if token == "" {
		return nil, &NoInputError{}
	}

	matches := durationGroupPattern.FindAllStringSubmatch(token, -1)
	if matches == nil {
		return nil, &DurationError{Input: token}
	}
	matched := 0
	var total time.Duration
	for _, m := range matches {
		matched += len(m[0])
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, &DurationError{Input: token}
		}
		switch m[2] {
		case "d":
			total += time.Duration(n) * 24 * time.Hour
		case "h":
			total += time.Duration(n) * time.Hour
		case "m":
			total += time.Duration(n) * time.Minute
		case "s":
			total += time.Duration(n) * time.Second
		}
	}
	// The groups must cover the whole token; "1dxx" is not a duration.
	if matched != len(token) || total == 0 {
		return nil, &DurationError{Input: token}
	}

	in.ReadString()
	return total, nil
}

// ContextFree implements Parser.
func (p *DurationParser) ContextFree() bool { return true }

// Suggest implements SuggestionProvider. On empty input it proposes the
// digits 1 through 9. After a number it proposes the unit letters not yet
// used in the partial input; after a unit it proposes starting digits for
// the next group.
func (p *DurationParser) Suggest(_ Context, prefix string) []string {
	if prefix == "" {
		out := make([]string, 0, 9)
		for d := 1; d <= 9; d++ {
			out = append(out, strconv.Itoa(d))
		}
		return out
	}

	last := rune(prefix[len(prefix)-1])
	if unicode.IsDigit(last) {
		var out []string
		for _, unit := range durationUnits {
			if !strings.Contains(prefix, unit) {
				out = append(out, prefix+unit)
			}
		}
		return out
	}

	// A complete group was just closed; a further group may follow if any
	// unit remains unused.
	unused := false
	for _, unit := range durationUnits {
		if !strings.Contains(prefix, unit) {
			unused = true
			break
		}
	}
	if !unused {
		return nil
	}
	var out []string
	for d := 1; d <= 9; d++ {
		out = append(out, prefix+strconv.Itoa(d))
	}
	return out
}
