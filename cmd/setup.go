package cmd

import (
	"fmt"
	"io"
	"os"

	"herald/internal/config"
	"herald/internal/definition"
	"herald/pkg/command"
	"herald/pkg/logging"
)

// environment bundles everything a subcommand needs to serve command lines.
type environment struct {
	config   config.HeraldConfig
	handlers *definition.Handlers
	registry *command.Registry
	service  *command.Service
}

// loadEnvironment loads the configuration, registers the builtin handlers,
// and compiles the definitions directory into a ready service.
func loadEnvironment(out io.Writer) (*environment, error) {
	dir := configPath
	if dir == "" {
		dir = config.GetDefaultConfigPathOrPanic()
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	handlers := builtinHandlers(out)
	registry := command.NewRegistry(command.TreeConfig{
		CaseSensitiveLiterals: cfg.CaseSensitiveLiterals,
	})

	count, err := definition.LoadInto(cfg.Definitions, handlers, registry)
	if err != nil {
		return nil, err
	}
	logging.Info("Bootstrap", "Registered %d commands from %s", count, cfg.Definitions)

	return &environment{
		config:   cfg,
		handlers: handlers,
		registry: registry,
		service:  command.NewService(command.ServiceConfig{Registry: registry}),
	}, nil
}

// builtinHandlers returns the handler registry available to definitions run
// by the herald binary. Embedding applications supply their own.
func builtinHandlers(out io.Writer) *definition.Handlers {
	handlers := definition.NewHandlers()

	// echo prints every parsed argument and flag, for exercising and
	// debugging definitions.
	handlers.Register("echo", func(ctx *command.Context) error {
		for _, name := range ctx.ArgumentNames() {
			v, _ := ctx.Value(name)
			fmt.Fprintf(out, "%s=%v\n", name, v)
		}
		return nil
	})

	// noop succeeds silently.
	handlers.Register("noop", func(_ *command.Context) error { return nil })

	// fail returns an execution failure, for testing error rendering.
	handlers.Register("fail", func(_ *command.Context) error {
		return fmt.Errorf("this command always fails")
	})

	return handlers
}

// initCLILogging configures plain-text logging to stderr at the configured
// level for one-shot commands.
func initCLILogging(cfg config.HeraldConfig) {
	logging.InitForCLI(logging.ParseLevel(cfg.LogLevel), os.Stderr)
}
