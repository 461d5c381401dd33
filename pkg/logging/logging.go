package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a configuration string into a LogLevel, defaulting to
// info for anything unrecognized.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SlogLevel maps a LogLevel onto its slog equivalent.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Entry is the structured log entry handed to the interactive shell.
type Entry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	shellChannel  chan Entry
	shellMode     bool
)

const shellChannelBufferSize = 1024

// InitForCLI initializes logging for plain command-line runs: a slog text
// handler writing to the given output, filtered at the given level.
func InitForCLI(level LogLevel, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: level.SlogLevel()})
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
	shellMode = false
	shellChannel = nil
}

// InitForShell initializes logging for the interactive shell. Entries are
// delivered on the returned channel so the shell can print them above the
// readline prompt instead of corrupting it; nothing is written directly.
// The shell filters by level itself.
func InitForShell() <-chan Entry {
	mu.Lock()
	defer mu.Unlock()

	shellChannel = make(chan Entry, shellChannelBufferSize)
	shellMode = true
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return shellChannel
}

// CloseShellChannel closes the shell log channel. Should be called on
// application shutdown.
func CloseShellChannel() {
	mu.Lock()
	defer mu.Unlock()

	if shellChannel != nil {
		close(shellChannel)
		shellChannel = nil
		shellMode = false
	}
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	mu.RLock()
	logger := defaultLogger
	channel := shellChannel
	inShell := shellMode
	mu.RUnlock()

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	if inShell {
		entry := Entry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		select {
		case channel <- entry:
		default:
			// Channel full; losing the prompt beats losing the log line.
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
		}
		return
	}

	if logger == nil || !logger.Enabled(context.Background(), level.SlogLevel()) {
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}
