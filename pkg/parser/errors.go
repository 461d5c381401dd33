package parser

import (
	"fmt"
	"strings"

	"herald/pkg/caption"
	"herald/pkg/input"
)

// Error is the interface shared by all typed parse failures. Every failure
// carries a stable caption key plus the substitution variables needed to
// render a user-facing message, so downstream rendering never has to pick
// apart error strings.
type Error interface {
	error
	CaptionKey() caption.Key
	Variables() caption.Variables
}

// NoInputError reports an exhausted cursor where an argument was required.
// It unwraps to input.ErrNoInput so callers can detect the condition with
// errors.Is; suggestion logic treats it as "propose starting values" rather
// than "the value was invalid".
type NoInputError struct{}

func (e *NoInputError) Error() string { return "no input was provided" }

func (e *NoInputError) Unwrap() error { return input.ErrNoInput }

func (e *NoInputError) CaptionKey() caption.Key { return caption.NoInputProvided }

func (e *NoInputError) Variables() caption.Variables { return caption.Variables{} }

// Unbounded is the bound representation reported when a numeric parser was
// configured without an explicit min or max. Reporting the type's physical
// limits would suggest the command author chose them, which they did not.
const Unbounded = "unbounded"

// NumberError reports numeric input that failed to parse or fell outside the
// configured range. Min and Max hold the rendered bounds, or Unbounded for a
// side that was never configured.
type NumberError struct {
	TypeName string
	Input    string
	Min      string
	Max      string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("'%s' is not a valid %s in the range %s to %s", e.Input, e.TypeName, e.Min, e.Max)
}

func (e *NumberError) CaptionKey() caption.Key { return caption.NumberParseFailure }

func (e *NumberError) Variables() caption.Variables {
	return caption.Variables{
		"input": e.Input,
		"type":  e.TypeName,
		"min":   e.Min,
		"max":   e.Max,
	}
}

// BooleanError reports input not recognized as a boolean in the parser's
// configured mode.
type BooleanError struct {
	Input string
}

func (e *BooleanError) Error() string {
	return fmt.Sprintf("'%s' is not a valid boolean", e.Input)
}

func (e *BooleanError) CaptionKey() caption.Key { return caption.BooleanParseFailure }

func (e *BooleanError) Variables() caption.Variables {
	return caption.Variables{"input": e.Input}
}

// EnumError reports input that matched none of an enum's constants.
// Acceptable holds the full constant set as registered.
type EnumError struct {
	Input      string
	Acceptable []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("'%s' is not one of the following: %s", e.Input, e.AcceptableList())
}

// AcceptableList renders the acceptable values lower-cased and comma-joined,
// the form used in user-facing messages.
func (e *EnumError) AcceptableList() string {
	lowered := make([]string, len(e.Acceptable))
	for i, v := range e.Acceptable {
		lowered[i] = strings.ToLower(v)
	}
	return strings.Join(lowered, ", ")
}

func (e *EnumError) CaptionKey() caption.Key { return caption.EnumParseFailure }

func (e *EnumError) Variables() caption.Variables {
	return caption.Variables{
		"input":      e.Input,
		"acceptable": e.AcceptableList(),
	}
}

// QuoteError reports a quoted string missing its closing quote.
type QuoteError struct {
	Input string
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("'%s' is missing a closing quote", e.Input)
}

func (e *QuoteError) CaptionKey() caption.Key { return caption.StringQuoteFailure }

func (e *QuoteError) Variables() caption.Variables {
	return caption.Variables{"input": e.Input}
}

// CharError reports input that was not exactly one character.
type CharError struct {
	Input string
}

func (e *CharError) Error() string {
	return fmt.Sprintf("'%s' is not a single character", e.Input)
}

func (e *CharError) CaptionKey() caption.Key { return caption.CharParseFailure }

func (e *CharError) Variables() caption.Variables {
	return caption.Variables{"input": e.Input}
}

// DurationError reports a duration literal with no valid <number><unit>
// groups, trailing garbage, or a sum of zero.
type DurationError struct {
	Input string
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("'%s' is not a duration format like 1d2h3m4s", e.Input)
}

func (e *DurationError) CaptionKey() caption.Key { return caption.DurationParseFailure }

func (e *DurationError) Variables() caption.Variables {
	return caption.Variables{"input": e.Input}
}

// UUIDError reports input rejected by the UUID format parse.
type UUIDError struct {
	Input string
	Cause error
}

func (e *UUIDError) Error() string {
	return fmt.Sprintf("'%s' is not a valid UUID", e.Input)
}

func (e *UUIDError) Unwrap() error { return e.Cause }

func (e *UUIDError) CaptionKey() caption.Key { return caption.UUIDParseFailure }

func (e *UUIDError) Variables() caption.Variables {
	return caption.Variables{"input": e.Input}
}
