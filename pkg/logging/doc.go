// Package logging provides a structured logging system for herald with
// subsystem tagging and flexible output routing.
//
// This package implements a logging system built on Go's standard slog package,
// providing consistent logging behavior with structured output and level filtering.
//
// # Architecture
//
// The logging system is built around these core concepts:
//
// ## Log Levels
//   - **Debug**: Detailed information for debugging and development
//   - **Info**: General informational messages about application operation
//   - **Warn**: Warning messages that indicate potential issues
//   - **Error**: Error messages for failures and exceptional conditions
//
// ## Structured Logging
// All log entries include:
//   - Timestamp
//   - Log level (Debug, Info, Warn, Error)
//   - Subsystem identifier for categorization
//   - Message content with optional formatting
//   - Optional error information
//
// # Usage Examples
//
// ## CLI Mode
//
//	// Initialize with Info level logging to stderr
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	// Log messages
//	logging.Info("Bootstrap", "Application starting up")
//	logging.Debug("Definition", "Loaded %d commands from %s", n, path)
//	logging.Warn("Watcher", "Reload skipped: %v", err)
//	logging.Error("Dispatch", err, "Handler failed for %s", name)
//
// ## Shell Mode
//
// The interactive shell owns the terminal, so logging to stderr would corrupt
// the readline prompt. Shell mode delivers entries over a channel instead,
// letting the shell print them above the prompt:
//
//	entries := logging.InitForShell()
//	defer logging.CloseShellChannel()
//	go func() {
//	    for entry := range entries {
//	        printAbovePrompt(entry)
//	    }
//	}()
//
// # Subsystem Organization
//
// Logs are organized by subsystem to enable filtering and categorization:
//
//   - **Bootstrap**: Application initialization and startup
//   - **Config**: Configuration loading and validation
//   - **Definition**: Command definition loading and validation
//   - **Watcher**: Definition file watching and hot reload
//   - **Dispatch**: Command resolution and handler execution
//   - **Shell**: Interactive shell operations
//
// # Integration with slog
//
// The logging system integrates with Go's standard slog package:
//   - Uses slog.Handler implementations for output formatting
//   - Converts custom LogLevel to slog.Level for compatibility
//   - Falls back to the global slog logger when uninitialized
//
// # Thread Safety
//
// The logging system is fully thread-safe:
//   - Safe concurrent logging from multiple goroutines
//   - Protected access to shared logging state
//   - No data races in configuration
package logging
