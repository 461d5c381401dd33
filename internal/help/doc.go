// Package help renders registered commands as tables for the shell and the
// one-shot CLI: an overview table of every command with its signature, and
// a per-command detail view listing arguments and flags.
package help
