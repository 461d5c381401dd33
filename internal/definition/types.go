package definition

// File is the top-level structure of one definition file.
type File struct {
	Commands []CommandDefinition `yaml:"commands"`
}

// CommandDefinition describes one command signature in YAML.
type CommandDefinition struct {
	// Path is the literal token sequence introducing the command.
	Path []string `yaml:"path"`
	// Aliases are alternative spellings of the first path literal.
	Aliases []string `yaml:"aliases,omitempty"`
	// Handler names the registered handler that runs the command.
	Handler     string `yaml:"handler"`
	Description string `yaml:"description,omitempty"`
	Permission  string `yaml:"permission,omitempty"`

	Arguments []ArgumentDefinition `yaml:"arguments,omitempty"`
	Flags     []FlagDefinition     `yaml:"flags,omitempty"`
}

// ArgumentDefinition describes one positional argument slot.
type ArgumentDefinition struct {
	Name string `yaml:"name"`
	// Type selects the parser: string, quoted, greedy, greedy_flags,
	// bool, bool_liberal, int8, int16, int32, int64, float32, float64,
	// enum, duration, uuid, char.
	Type     string `yaml:"type"`
	Required bool   `yaml:"required,omitempty"`
	// Default fills the slot when an optional argument is absent at the
	// end of the line. Written in the argument's own input syntax.
	Default     string `yaml:"default,omitempty"`
	Description string `yaml:"description,omitempty"`

	// Values lists the acceptable inputs of an enum argument.
	Values []string `yaml:"values,omitempty"`
	// Min and Max bound numeric arguments, written as numbers in the
	// argument's own syntax. Either side may be omitted.
	Min string `yaml:"min,omitempty"`
	Max string `yaml:"max,omitempty"`

	// Suggestions overrides the parser's own completion candidates.
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// FlagDefinition describes one flag of a command. A flag without a Type is a
// presence marker.
type FlagDefinition struct {
	Name string `yaml:"name"`
	// Aliases are the single-character short forms.
	Aliases []string `yaml:"aliases,omitempty"`
	// Repeatable switches the flag from overwrite to accumulate semantics.
	Repeatable  bool   `yaml:"repeatable,omitempty"`
	Permission  string `yaml:"permission,omitempty"`
	Description string `yaml:"description,omitempty"`

	// Type selects the value parser, with the same vocabulary as
	// arguments. Empty means the flag takes no value.
	Type   string   `yaml:"type,omitempty"`
	Values []string `yaml:"values,omitempty"`
	Min    string   `yaml:"min,omitempty"`
	Max    string   `yaml:"max,omitempty"`
}
