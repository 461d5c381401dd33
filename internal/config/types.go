package config

// HeraldConfig is the top-level configuration structure for herald.
type HeraldConfig struct {
	// Definitions is the directory holding the YAML command definition
	// files. Relative paths resolve against the config directory.
	Definitions string `yaml:"definitions,omitempty"`
	// Watch enables hot reload of the definitions directory.
	Watch bool `yaml:"watch,omitempty"`
	// CaseSensitiveLiterals switches literal matching to exact case.
	CaseSensitiveLiterals bool `yaml:"caseSensitiveLiterals,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty"`

	Shell      ShellConfig      `yaml:"shell"`
	Dispatcher DispatcherConfig `yaml:"dispatcher"`
}

// ShellConfig configures the interactive shell.
type ShellConfig struct {
	Prompt string `yaml:"prompt,omitempty"` // Readline prompt (default: "herald> ")
	// History is the readline history file. Relative paths resolve
	// against the config directory.
	History string `yaml:"history,omitempty"`
}

// DispatcherConfig configures asynchronous handler execution.
type DispatcherConfig struct {
	Workers   int `yaml:"workers,omitempty"`   // Concurrent async handlers (default: 4)
	QueueSize int `yaml:"queueSize,omitempty"` // Pending async invocations before Submit blocks (default: 64)
}
