package config

const (
	// DefaultPrompt is the readline prompt of the interactive shell.
	DefaultPrompt = "herald> "

	// DefaultDefinitionsDir is the definitions directory relative to the
	// config directory.
	DefaultDefinitionsDir = "commands"

	// DefaultHistoryFile is the shell history file relative to the config
	// directory.
	DefaultHistoryFile = "history"
)

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() HeraldConfig {
	return HeraldConfig{
		Definitions: DefaultDefinitionsDir,
		Watch:       true,
		LogLevel:    "info",
		Shell: ShellConfig{
			Prompt:  DefaultPrompt,
			History: DefaultHistoryFile,
		},
		Dispatcher: DispatcherConfig{
			Workers:   4,
			QueueSize: 64,
		},
	}
}
