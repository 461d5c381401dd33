package cmd

import (
	"fmt"
	"os"
	"strings"

	"herald/pkg/logging"

	"github.com/spf13/cobra"
)

// newRunCmd creates the Cobra command that resolves and executes a single
// command line, for scripting and debugging definitions.
func newRunCmd() *cobra.Command {
	var sender string

	cmd := &cobra.Command{
		Use:   "run <line>...",
		Short: "Resolve and execute one command line",
		Long: `Resolve the given line against the registered commands and execute
the matched handler. The line can be passed as one quoted argument or
as separate shell words; both forms join into the same input.

Exit codes: 0 on success, 2 when no command matches, 3 when the sender
lacks permission, 1 for any other failure.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.InitForCLI(logging.LevelWarn, os.Stderr)
			env, err := loadEnvironment(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			initCLILogging(env.config)

			line := strings.Join(args, " ")
			if err := env.service.Execute(sender, line); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), env.service.Render(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "console", "sender identity for permission checks")
	return cmd
}
