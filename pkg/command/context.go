// Package command contains the command model and resolution core of herald:
// the command tree, the context that accumulates parsed arguments, flag
// handling, and the engines that resolve or suggest against a line of input.
package command

import "fmt"

type contextEntry struct {
	name  string
	value any
}

// Context accumulates the parsed argument values of one resolution attempt,
// in parse order, together with the sender identity and whether the attempt
// serves suggestions or execution. It is created fresh per attempt, owned by
// a single goroutine, and never mutated after the walk completes.
type Context struct {
	sender     string
	suggesting bool
	values     []contextEntry
	flags      []contextEntry
}

// NewContext creates a context for one resolution attempt.
func NewContext(sender string, suggesting bool) *Context {
	return &Context{sender: sender, suggesting: suggesting}
}

// Sender returns the identity that issued the command line.
func (c *Context) Sender() string { return c.sender }

// Suggesting reports whether this attempt serves tab completion.
func (c *Context) Suggesting() bool { return c.suggesting }

// Store records a parsed argument value under its component name.
func (c *Context) Store(name string, value any) {
	c.values = append(c.values, contextEntry{name: name, value: value})
}

// Value returns the argument stored under name. The latest store wins,
// though component names are unique along any resolved path.
func (c *Context) Value(name string) (any, bool) {
	for i := len(c.values) - 1; i >= 0; i-- {
		if c.values[i].name == name {
			return c.values[i].value, true
		}
	}
	return nil, false
}

// ArgumentNames returns the stored argument names in parse order.
func (c *Context) ArgumentNames() []string {
	names := make([]string, len(c.values))
	for i, e := range c.values {
		names[i] = e.name
	}
	return names
}

// Get returns the argument stored under name asserted to type T.
func Get[T any](c *Context, name string) (T, bool) {
	v, ok := c.Value(name)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// MustGet is Get for arguments the resolved signature guarantees to exist,
// e.g. required components inside their own command handler.
func MustGet[T any](c *Context, name string) T {
	v, ok := Get[T](c, name)
	if !ok {
		panic(fmt.Sprintf("command: no %T argument stored under %q", v, name))
	}
	return v
}

// storeFlag records one flag occurrence. Single-mode flags overwrite any
// earlier occurrence; repeatable flags accumulate in order.
func (c *Context) storeFlag(name string, value any, repeatable bool) {
	if !repeatable {
		for i := range c.flags {
			if c.flags[i].name == name {
				c.flags[i].value = value
				return
			}
		}
	}
	c.flags = append(c.flags, contextEntry{name: name, value: value})
}

// HasFlag reports whether the flag was present at least once.
func (c *Context) HasFlag(name string) bool {
	for _, e := range c.flags {
		if e.name == name {
			return true
		}
	}
	return false
}

// Flag returns the value of the flag's most recent occurrence. Presence
// markers store true.
func (c *Context) Flag(name string) (any, bool) {
	for i := len(c.flags) - 1; i >= 0; i-- {
		if c.flags[i].name == name {
			return c.flags[i].value, true
		}
	}
	return nil, false
}

// FlagValues returns every occurrence of a repeatable flag, in input order.
func (c *Context) FlagValues(name string) []any {
	var out []any
	for _, e := range c.flags {
		if e.name == name {
			out = append(out, e.value)
		}
	}
	return out
}

// FlagValue returns the flag's value asserted to type T.
func FlagValue[T any](c *Context, name string) (T, bool) {
	v, ok := c.Flag(name)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// contextMark captures the context size so a failed branch can be unwound
// before a sibling branch is attempted.
type contextMark struct {
	values int
	flags  int
}

func (c *Context) mark() contextMark {
	return contextMark{values: len(c.values), flags: len(c.flags)}
}

func (c *Context) restore(m contextMark) {
	c.values = c.values[:m.values]
	c.flags = c.flags[:m.flags]
}
