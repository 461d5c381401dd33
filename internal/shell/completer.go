package shell

import (
	"strings"

	"herald/pkg/command"
)

// completer bridges the suggestion engine into readline's AutoCompleter
// interface. Readline hands over the whole line and cursor position; the
// engine answers with full candidates for the final token, which are cut
// down to the suffixes readline expects.
type completer struct {
	service *command.Service
	sender  string
}

func newCompleter(service *command.Service, sender string) *completer {
	return &completer{service: service, sender: sender}
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	token := prefix
	if i := strings.LastIndex(prefix, " "); i >= 0 {
		token = prefix[i+1:]
	}

	tokenLen := len([]rune(token))
	var out [][]rune
	for _, s := range c.service.Suggest(c.sender, prefix) {
		// Slice by runes, not bytes: a case-insensitive match may differ
		// from the typed token in byte length, and the suffix must carry
		// the candidate's own spelling.
		runes := []rune(s)
		if len(runes) < tokenLen {
			continue
		}
		out = append(out, append(runes[tokenLen:], ' '))
	}
	return out, tokenLen
}
