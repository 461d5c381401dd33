package command

import (
	"errors"
	"fmt"
	"strings"

	"herald/pkg/input"
	"herald/pkg/parser"
)

// FlagMode controls how repeated occurrences of a flag combine.
type FlagMode int

const (
	// FlagSingle allows one effective occurrence; a later occurrence
	// overwrites the earlier one.
	FlagSingle FlagMode = iota
	// FlagRepeatable accumulates every occurrence into an ordered list,
	// retrievable via Context.FlagValues.
	FlagRepeatable
)

// Flag is a named, order-independent optional component introduced by a
// marker token: "--name" for the long form, "-x" for a single-character
// alias. A flag without an inner component is a boolean presence marker.
type Flag struct {
	Name string
	// Aliases are the short forms, each exactly one character. Enforced at
	// registration so "-f" can never be confused with anything else.
	Aliases []string
	Mode    FlagMode
	// Permission gates visibility of the flag per sender, like command
	// permissions. Empty means public.
	Permission string
	// Component parses the value following the marker. Nil for presence
	// markers.
	Component   *Component
	Description string
}

// PresenceFlag builds a boolean marker flag.
func PresenceFlag(name string, aliases ...string) *Flag {
	return &Flag{Name: name, Aliases: aliases}
}

// ValueFlag builds a flag whose marker is followed by a parsed value.
func ValueFlag(name string, p parser.Parser, aliases ...string) *Flag {
	return &Flag{
		Name:      name,
		Aliases:   aliases,
		Component: &Component{Name: name, Parser: p, Required: true},
	}
}

func (f *Flag) validate() error {
	if f.Name == "" {
		return fmt.Errorf("flag has no name")
	}
	if strings.HasPrefix(f.Name, "-") {
		return fmt.Errorf("flag %q must be registered without its marker dashes", f.Name)
	}
	for _, a := range f.Aliases {
		if len([]rune(a)) != 1 {
			return fmt.Errorf("flag %q alias %q must be exactly one character", f.Name, a)
		}
	}
	if f.Component != nil {
		if f.Component.Parser == nil {
			return fmt.Errorf("flag %q has a component without a parser", f.Name)
		}
	}
	return nil
}

// markers returns the tokens that introduce this flag, long form first.
func (f *Flag) markers() []string {
	out := make([]string, 0, 1+len(f.Aliases))
	out = append(out, "--"+f.Name)
	for _, a := range f.Aliases {
		out = append(out, "-"+a)
	}
	return out
}

// lookupFlag resolves a marker token against the registered flags, honoring
// registered case exactly.
func lookupFlag(flags []*Flag, token string) *Flag {
	if strings.HasPrefix(token, "--") {
		name := token[2:]
		for _, f := range flags {
			if f.Name == name {
				return f
			}
		}
		return nil
	}
	alias := strings.TrimPrefix(token, "-")
	for _, f := range flags {
		for _, a := range f.Aliases {
			if a == alias {
				return f
			}
		}
	}
	return nil
}

// parseFlags consumes the remaining input as a sequence of flag invocations.
// Every remaining token must be a flag marker or the value of the preceding
// value-taking flag; anything else fails the flag-set branch.
func parseFlags(flags []*Flag, ctx *Context, in *input.Cursor, perm PermissionFunc) error {
	for !in.IsEmpty() {
		token := in.PeekString()
		if !parser.FlagMarkerPattern.MatchString(token) {
			return &TooManyArgumentsError{Input: in.RemainingInput()}
		}
		in.ReadString()

		f := lookupFlag(flags, token)
		if f == nil || !permitted(perm, ctx.Sender(), f.Permission) {
			return &FlagError{Flag: token}
		}
		if err := consumeFlag(f, token, ctx, in); err != nil {
			return err
		}
	}
	return nil
}

// consumeFlag parses one flag invocation whose marker token has already been
// read off the cursor.
func consumeFlag(f *Flag, token string, ctx *Context, in *input.Cursor) error {
	if f.Component == nil {
		ctx.storeFlag(f.Name, true, f.Mode == FlagRepeatable)
		return nil
	}
	v, err := f.Component.Parser.Parse(ctx, in)
	if err != nil {
		if errors.Is(err, input.ErrNoInput) {
			return &FlagError{Flag: token, MissingValue: true}
		}
		return err
	}
	ctx.storeFlag(f.Name, v, f.Mode == FlagRepeatable)
	return nil
}

// consumeInterleavedFlags peels flag invocations that appear ahead of
// positional input, so flags may be interleaved with arguments anywhere in
// the signature. A marker-shaped token that matches none of the given flags
// is left in place for the positional parser to judge.
func consumeInterleavedFlags(flags []*Flag, ctx *Context, in *input.Cursor, perm PermissionFunc) error {
	for {
		token := in.PeekString()
		if token == "" || !parser.FlagMarkerPattern.MatchString(token) {
			return nil
		}
		f := lookupFlag(flags, token)
		if f == nil || !permitted(perm, ctx.Sender(), f.Permission) {
			return nil
		}
		in.ReadString()
		if err := consumeFlag(f, token, ctx, in); err != nil {
			return err
		}
	}
}
