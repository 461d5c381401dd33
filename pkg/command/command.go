package command

// Handler executes a fully resolved command invocation. Errors (and panics)
// raised here are caught by the service and routed through the same error
// channel as parse failures.
type Handler func(ctx *Context) error

// Command is one registered command signature: a path of leading literal
// tokens, an ordered list of argument components, and an optional flag set.
// Commands are plain data; the Tree compiles them into its trie at
// registration time.
type Command struct {
	// Path is the literal token sequence introducing the command, e.g.
	// ["mod", "ban"]. Must have at least one element.
	Path []string
	// Aliases are alternative spellings of the first path literal.
	Aliases []string
	// Description is used by help rendering only.
	Description string
	// Permission gates the command per sender. An empty string means
	// public. Senders failing the check see neither resolution nor
	// suggestions for this command, as if it were not registered.
	Permission string
	// Components are the positional argument slots, in order.
	Components []*Component
	// Flags may follow all positional arguments, in any order.
	Flags []*Flag
	// Handler runs the invocation. Required.
	Handler Handler
}

// FullName returns the space-joined literal path, for logs and help output.
func (c *Command) FullName() string {
	name := ""
	for i, p := range c.Path {
		if i > 0 {
			name += " "
		}
		name += p
	}
	return name
}
