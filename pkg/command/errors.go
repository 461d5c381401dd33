package command

import (
	"fmt"

	"herald/pkg/caption"
)

// ArgumentError wraps a value parser's failure with the identity of the
// component that produced it. The caption key and variables pass through
// from the underlying parser error, so rendering stays uniform.
type ArgumentError struct {
	// Argument is the component name the failing parser was bound to.
	Argument string
	Cause    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q: %v", e.Argument, e.Cause)
}

func (e *ArgumentError) Unwrap() error { return e.Cause }

func (e *ArgumentError) CaptionKey() caption.Key {
	if c, ok := e.Cause.(interface{ CaptionKey() caption.Key }); ok {
		return c.CaptionKey()
	}
	return caption.ExecutionFailure
}

func (e *ArgumentError) Variables() caption.Variables {
	if c, ok := e.Cause.(interface{ Variables() caption.Variables }); ok {
		vars := c.Variables()
		vars["argument"] = e.Argument
		return vars
	}
	return caption.Variables{"argument": e.Argument}
}

// TooManyArgumentsError reports a fully matched command with trailing input
// no further grammar can consume. Distinct from a per-argument failure: the
// command itself was fine, the line just kept going.
type TooManyArgumentsError struct {
	// Input is the unconsumed trailing input.
	Input string
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many arguments: unexpected trailing input %q", e.Input)
}

func (e *TooManyArgumentsError) CaptionKey() caption.Key { return caption.TooManyArguments }

func (e *TooManyArgumentsError) Variables() caption.Variables {
	return caption.Variables{"input": e.Input}
}

// NoMatchingCommandError reports input whose tokens matched no registered
// command branch at all.
type NoMatchingCommandError struct {
	// Input is the token that failed to match.
	Input string
}

func (e *NoMatchingCommandError) Error() string {
	return fmt.Sprintf("unknown command: %q", e.Input)
}

func (e *NoMatchingCommandError) CaptionKey() caption.Key { return caption.NoMatchingCommand }

func (e *NoMatchingCommandError) Variables() caption.Variables {
	return caption.Variables{"input": e.Input}
}

// NoPermissionError reports a sender denied the resolved command.
type NoPermissionError struct {
	Sender     string
	Permission string
}

func (e *NoPermissionError) Error() string {
	return fmt.Sprintf("sender %q lacks permission %q", e.Sender, e.Permission)
}

func (e *NoPermissionError) CaptionKey() caption.Key { return caption.NoPermission }

func (e *NoPermissionError) Variables() caption.Variables {
	return caption.Variables{"sender": e.Sender, "permission": e.Permission}
}

// FlagError reports an unknown flag marker, or a value-taking flag that ran
// out of input before its value.
type FlagError struct {
	// Flag is the marker token as typed, dashes included.
	Flag string
	// MissingValue distinguishes "needs a value" from "unknown flag".
	MissingValue bool
}

func (e *FlagError) Error() string {
	if e.MissingValue {
		return fmt.Sprintf("flag %q requires a value", e.Flag)
	}
	return fmt.Sprintf("unknown flag %q", e.Flag)
}

func (e *FlagError) CaptionKey() caption.Key {
	if e.MissingValue {
		return caption.FlagMissingArgument
	}
	return caption.FlagUnknown
}

func (e *FlagError) Variables() caption.Variables {
	return caption.Variables{"flag": e.Flag}
}

// ExecutionError wraps an error returned, or a panic raised, by a command
// handler during invocation.
type ExecutionError struct {
	Cause error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command execution failed: %v", e.Cause)
}

func (e *ExecutionError) Unwrap() error { return e.Cause }

func (e *ExecutionError) CaptionKey() caption.Key { return caption.ExecutionFailure }

func (e *ExecutionError) Variables() caption.Variables {
	return caption.Variables{"cause": e.Cause.Error()}
}
