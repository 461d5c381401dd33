package cmd

import (
	"os"

	"herald/internal/help"
	"herald/pkg/logging"

	"github.com/spf13/cobra"
)

// newCommandsCmd creates the Cobra command that lists the registered
// commands as a table, or one command in detail.
func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands [name]...",
		Short: "List the registered commands",
		Long: `Print a table of every command compiled from the definitions
directory, with its argument signature and description. With a command
name, print that command's arguments and flags in detail.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.InitForCLI(logging.LevelWarn, os.Stderr)
			env, err := loadEnvironment(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			cmds := env.registry.Commands()
			if len(args) == 0 {
				help.RenderCommandList(cmd.OutOrStdout(), cmds)
				return nil
			}

			name := ""
			for i, a := range args {
				if i > 0 {
					name += " "
				}
				name += a
			}
			for _, c := range cmds {
				if c.FullName() == name {
					help.RenderCommand(cmd.OutOrStdout(), c)
					return nil
				}
			}
			cmd.PrintErrf("No command named %q\n", name)
			return nil
		},
	}
}
