// Package shell provides herald's interactive frontend.
//
// The shell wraps a readline instance around the command service: every
// line typed is resolved and executed, failures are rendered through the
// caption registry, and tab completion is answered live by the suggestion
// engine walking the current command tree. Because the tree is swapped
// atomically on definition reloads, completions pick up new commands
// without restarting the shell.
//
// Two builtins exist outside the command tree: `help` (overview table, or
// per-command detail with `help <command>`) and `exit`. Everything else is
// a registered command.
//
// Log output is routed through the shell logging channel and printed above
// the prompt, keeping the input line intact while background work (such as
// the definition watcher) reports.
package shell
