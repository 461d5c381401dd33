// Package caption maps stable error identifiers to user-facing message
// templates. Parsers report failures as typed errors carrying a caption key
// plus substitution variables; rendering those into text is the job of this
// package, so message wording (and localization) stays decoupled from the
// parsing code that produced the failure.
package caption

import (
	"strings"
	"sync"
)

// Key identifies one kind of user-visible failure message.
type Key string

// Caption keys for every failure kind the framework can surface.
const (
	// NoInputProvided covers an exhausted cursor where an argument was required.
	NoInputProvided Key = "parse.failure.no_input"
	// NumberParseFailure covers unparsable or out-of-range numeric input.
	NumberParseFailure Key = "parse.failure.number"
	// BooleanParseFailure covers input not recognized as a boolean.
	BooleanParseFailure Key = "parse.failure.boolean"
	// EnumParseFailure covers input matching none of an enum's constants.
	EnumParseFailure Key = "parse.failure.enum"
	// StringQuoteFailure covers a quoted string with no closing quote.
	StringQuoteFailure Key = "parse.failure.string.quote"
	// CharParseFailure covers input that is not exactly one character.
	CharParseFailure Key = "parse.failure.char"
	// DurationParseFailure covers malformed or zero-sum duration literals.
	DurationParseFailure Key = "parse.failure.duration"
	// UUIDParseFailure covers input that is not a valid UUID.
	UUIDParseFailure Key = "parse.failure.uuid"
	// FlagUnknown covers a flag marker naming no registered flag.
	FlagUnknown Key = "parse.failure.flag.unknown"
	// FlagMissingArgument covers a value-taking flag at end of input.
	FlagMissingArgument Key = "parse.failure.flag.missing_argument"
	// TooManyArguments covers trailing input after a fully matched command.
	TooManyArguments Key = "resolve.failure.too_many_arguments"
	// NoMatchingCommand covers input whose first token matches no command.
	NoMatchingCommand Key = "resolve.failure.no_matching_command"
	// NoPermission covers a sender denied access to a command.
	NoPermission Key = "resolve.failure.no_permission"
	// ExecutionFailure covers an error or panic thrown by a command handler.
	ExecutionFailure Key = "execution.failure"
)

// Variables holds the substitution values for one rendered message.
// Template placeholders use angle brackets, e.g. "<input>".
type Variables map[string]string

var defaultMessages = map[Key]string{
	NoInputProvided:      "No input was provided",
	NumberParseFailure:   "'<input>' is not a valid <type> in the range <min> to <max>",
	BooleanParseFailure:  "'<input>' is not a valid boolean",
	EnumParseFailure:     "'<input>' is not one of the following: <acceptable>",
	StringQuoteFailure:   "'<input>' is missing a closing quote",
	CharParseFailure:     "'<input>' is not a single character",
	DurationParseFailure: "'<input>' is not a duration format like 1d2h3m4s",
	UUIDParseFailure:     "'<input>' is not a valid UUID",
	FlagUnknown:          "Unknown flag '<flag>'",
	FlagMissingArgument:  "Flag '<flag>' requires a value",
	TooManyArguments:     "Too many arguments: unexpected trailing input '<input>'",
	NoMatchingCommand:    "Unknown command: '<input>'",
	NoPermission:         "You do not have permission to run this command",
	ExecutionFailure:     "The command failed: <cause>",
}

// Registry holds the message template for each caption key. Registrations
// normally happen at startup; rendering is read-mostly and safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	messages map[Key]string
}

// NewRegistry returns a registry pre-populated with the default English
// messages. Hosts replace individual templates via Register.
func NewRegistry() *Registry {
	m := make(map[Key]string, len(defaultMessages))
	for k, v := range defaultMessages {
		m[k] = v
	}
	return &Registry{messages: m}
}

// Register installs (or replaces) the template for a key.
func (r *Registry) Register(key Key, template string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[key] = template
}

// Render substitutes vars into the template registered for key. Placeholders
// with no corresponding variable are left intact. An unregistered key renders
// as the key itself so that a missing template is visible rather than silent.
func (r *Registry) Render(key Key, vars Variables) string {
	r.mu.RLock()
	template, ok := r.messages[key]
	r.mu.RUnlock()
	if !ok {
		return string(key)
	}
	msg := template
	for name, value := range vars {
		msg = strings.ReplaceAll(msg, "<"+name+">", value)
	}
	return msg
}
