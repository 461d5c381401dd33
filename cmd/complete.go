package cmd

import (
	"fmt"
	"os"
	"strings"

	"herald/pkg/logging"

	"github.com/spf13/cobra"
)

// newCompleteCmd creates the Cobra command that prints completion
// candidates for a partial line, one per line. Useful for wiring herald
// completions into an outer shell and for debugging suggestion behavior.
func newCompleteCmd() *cobra.Command {
	var sender string

	cmd := &cobra.Command{
		Use:   "complete <partial-line>...",
		Short: "Print completion candidates for a partial command line",
		Long: `Walk the command tree against the given partial line and print every
completion candidate for its final token, one per line, in suggestion
order. A trailing space in the quoted line asks for candidates of the
next, still empty token.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.InitForCLI(logging.LevelWarn, os.Stderr)
			env, err := loadEnvironment(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			line := strings.Join(args, " ")
			for _, s := range env.service.Suggest(sender, line) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "console", "sender identity for permission checks")
	return cmd
}
