package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"herald/internal/help"
	"herald/pkg/command"
	"herald/pkg/logging"
)

// Config carries the collaborators and settings of a Shell.
type Config struct {
	Service *command.Service
	// Sender is the identity attached to every line typed into the shell.
	Sender string
	Prompt string
	// HistoryFile persists readline history across sessions. Empty
	// disables persistence.
	HistoryFile string
	// LogLevel filters the log entries printed above the prompt.
	LogLevel logging.LogLevel
	// Out receives command output and rendered errors. Defaults to
	// os.Stdout.
	Out io.Writer
}

// Shell is the interactive frontend: a readline loop whose tab completion
// is answered by the suggestion engine and whose lines are executed by the
// command service. Log entries arriving on the shell logging channel are
// printed above the prompt without corrupting it.
type Shell struct {
	service  *command.Service
	sender   string
	prompt   string
	history  string
	logLevel logging.LogLevel
	out      io.Writer

	rl       *readline.Instance
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a shell from its configuration.
func New(config Config) *Shell {
	out := config.Out
	if out == nil {
		out = os.Stdout
	}
	prompt := config.Prompt
	if prompt == "" {
		prompt = "herald> "
	}
	return &Shell{
		service:  config.Service,
		sender:   config.Sender,
		prompt:   prompt,
		history:  config.HistoryFile,
		logLevel: config.LogLevel,
		out:      out,
		stopChan: make(chan struct{}),
	}
}

// Run starts the interactive loop and blocks until the user exits, input
// reaches EOF, or the context is canceled.
func (s *Shell) Run(ctx context.Context) error {
	entries := logging.InitForShell()
	defer logging.CloseShellChannel()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            s.prompt,
		HistoryFile:       s.history,
		AutoComplete:      newCompleter(s.service, s.sender),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	s.rl = rl

	s.wg.Add(1)
	go s.logListener(ctx, entries)
	defer func() {
		close(s.stopChan)
		s.wg.Wait()
	}()

	fmt.Fprintf(s.out, "herald shell. Type 'help' for commands, TAB to complete, 'exit' to leave.\n")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				continue
			}
		} else if err == io.EOF {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if s.handleLine(input) {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
	}
}

// handleLine processes one line and reports whether the shell should exit.
// Builtins (help, exit) are handled here; everything else goes through the
// command service.
func (s *Shell) handleLine(line string) bool {
	fields := strings.Fields(line)

	switch fields[0] {
	case "exit", "quit":
		return true
	case "help", "?":
		s.renderHelp(fields[1:])
		return false
	}

	if err := s.service.Execute(s.sender, line); err != nil {
		fmt.Fprintln(s.out, s.service.Render(err))
	}
	return false
}

// renderHelp prints the command overview, or the detail view when the
// arguments name a registered command.
func (s *Shell) renderHelp(args []string) {
	cmds := s.service.Registry().Commands()
	if len(args) == 0 {
		help.RenderCommandList(s.out, cmds)
		return
	}

	name := strings.Join(args, " ")
	for _, cmd := range cmds {
		if strings.EqualFold(cmd.FullName(), name) {
			help.RenderCommand(s.out, cmd)
			return
		}
	}
	fmt.Fprintf(s.out, "No command named %q. Type 'help' for the full list.\n", name)
}

// logListener prints log entries above the readline prompt.
func (s *Shell) logListener(ctx context.Context, entries <-chan logging.Entry) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case entry, ok := <-entries:
			if !ok {
				return
			}
			if entry.Level < s.logLevel {
				continue
			}
			// Clear the prompt line, print, repaint.
			if s.rl != nil {
				s.rl.Stdout().Write([]byte("\r\033[K"))
			}
			if entry.Err != nil {
				fmt.Fprintf(s.out, "[%s] %s: %s: %v\n", entry.Level, entry.Subsystem, entry.Message, entry.Err)
			} else {
				fmt.Fprintf(s.out, "[%s] %s: %s\n", entry.Level, entry.Subsystem, entry.Message)
			}
			if s.rl != nil {
				s.rl.Refresh()
			}
		}
	}
}
