package cmd

import (
	"errors"
	"os"

	"herald/pkg/command"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands. These follow common conventions so scripts
// can distinguish "no such command" and "denied" from general failures.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (handler failure, bad config).
	ExitCodeError = 1
	// ExitCodeNoMatch indicates the line resolved to no registered command.
	ExitCodeNoMatch = 2
	// ExitCodeNoPermission indicates the sender lacks the command's permission.
	ExitCodeNoPermission = 3
)

// configPath overrides the config directory when set via --config.
var configPath string

// rootCmd represents the base command for the herald application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "herald",
	Short: "Resolve, execute, and complete structured command lines",
	Long: `herald is a command parsing and dispatch framework: commands are
described declaratively, compiled into a prefix tree, and resolved
against typed argument parsers with flags, permissions, and tab
completion. The herald binary hosts an interactive shell and one-shot
resolution for scripting.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application. SilenceErrors keeps Cobra from
	// echoing errors the subcommands already rendered for the user.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles
// subcommands and flags. This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "herald version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var noMatch *command.NoMatchingCommandError
	if errors.As(err, &noMatch) {
		return ExitCodeNoMatch
	}

	var noPermission *command.NoPermissionError
	if errors.As(err, &noPermission) {
		return ExitCodeNoPermission
	}

	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config directory (default $HERALD_CONFIG or ~/.config/herald)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newShellCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newCommandsCmd())
}
