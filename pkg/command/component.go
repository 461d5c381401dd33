package command

import (
	"fmt"

	"herald/pkg/input"
	"herald/pkg/parser"
)

// Component is one argument slot of a command signature: a named value
// parser plus requiredness and an optional default for absent optional
// slots. Components are plain configuration values; all behavior lives in
// the parser they wrap.
type Component struct {
	// Name keys the parsed value in the Context. Must be unique along any
	// root-to-leaf path of the command tree.
	Name string
	// Parser converts raw input into the component's value.
	Parser parser.Parser
	// Required marks the slot as mandatory. Optional components may only
	// be followed by other optional components or flags.
	Required bool
	// Default is the raw input substituted when an optional slot is absent
	// at the end of the line. Empty means the slot is simply skipped.
	Default string
	// Suggestions overrides the parser's own suggestion output when set.
	Suggestions parser.SuggestionProvider
	// Description is used by help rendering only.
	Description string
}

// RequiredComponent builds a mandatory argument slot.
func RequiredComponent(name string, p parser.Parser) *Component {
	return &Component{Name: name, Parser: p, Required: true}
}

// OptionalComponent builds an optional argument slot with no default.
func OptionalComponent(name string, p parser.Parser) *Component {
	return &Component{Name: name, Parser: p}
}

// OptionalComponentWithDefault builds an optional slot that default-fills
// from the given raw input when absent.
func OptionalComponentWithDefault(name string, p parser.Parser, def string) *Component {
	return &Component{Name: name, Parser: p, Default: def}
}

func (c *Component) validate() error {
	if c.Name == "" {
		return fmt.Errorf("component has no name")
	}
	if c.Parser == nil {
		return fmt.Errorf("component %q has no parser", c.Name)
	}
	if c.Required && c.Default != "" {
		return fmt.Errorf("component %q is required and cannot have a default", c.Name)
	}
	if c.Default != "" {
		if _, err := c.Parser.Parse(NewContext("", false), input.New(c.Default)); err != nil {
			return fmt.Errorf("component %q default %q does not parse: %w", c.Name, c.Default, err)
		}
	}
	return nil
}

// suggest returns the component's completion candidates for a partial token.
func (c *Component) suggest(ctx parser.Context, prefix string) []string {
	if c.Suggestions != nil {
		return c.Suggestions.Suggest(ctx, prefix)
	}
	return parser.Suggestions(c.Parser, ctx, prefix)
}

// fillDefault parses the component's default value into the context.
// Insert validated the default, so a failure here indicates the parser is
// not deterministic for its own default.
func (c *Component) fillDefault(ctx *Context) error {
	if c.Default == "" {
		return nil
	}
	v, err := c.Parser.Parse(ctx, input.New(c.Default))
	if err != nil {
		return fmt.Errorf("component %q default %q failed to parse: %w", c.Name, c.Default, err)
	}
	ctx.Store(c.Name, v)
	return nil
}

// greedy reports whether the component's parser consumes the rest of the
// line, which restricts where it may appear in a signature.
func (c *Component) greedy() (all bool, flagYielding bool) {
	sp, ok := c.Parser.(*parser.StringParser)
	if !ok {
		return false, false
	}
	switch sp.Mode {
	case parser.StringGreedy:
		return true, false
	case parser.StringGreedyFlagYielding:
		return false, true
	default:
		return false, false
	}
}
