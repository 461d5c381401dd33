package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"herald/internal/definition"
	"herald/internal/shell"
	"herald/pkg/logging"

	"github.com/spf13/cobra"
)

// newShellCmd creates the Cobra command that starts the interactive shell.
func newShellCmd() *cobra.Command {
	var sender string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Long: `Start a readline shell serving the commands compiled from the
definitions directory. Tab completion is answered by the suggestion
engine, history persists across sessions, and when watching is enabled
edits to the definition files reload the command tree live.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if env.config.Watch {
				watcher := definition.NewWatcher(env.config.Definitions, env.handlers, env.registry, 0)
				if err := watcher.Start(ctx); err != nil {
					logging.Warn("Shell", "Definition watching disabled: %v", err)
				} else {
					defer watcher.Stop()
				}
			}

			sh := shell.New(shell.Config{
				Service:     env.service,
				Sender:      sender,
				Prompt:      env.config.Shell.Prompt,
				HistoryFile: env.config.Shell.History,
				LogLevel:    logging.ParseLevel(env.config.LogLevel),
				Out:         cmd.OutOrStdout(),
			})
			return sh.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "console", "sender identity for permission checks")
	return cmd
}
