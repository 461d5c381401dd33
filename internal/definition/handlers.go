package definition

import (
	"fmt"
	"sort"
	"sync"

	"herald/pkg/command"
)

// Handlers maps handler names to their implementations. Definitions refer to
// handlers by name; the embedding application registers the implementations
// before definitions load. Safe for concurrent use.
type Handlers struct {
	mu       sync.RWMutex
	handlers map[string]command.Handler
}

// NewHandlers creates an empty handler registry.
func NewHandlers() *Handlers {
	return &Handlers{handlers: make(map[string]command.Handler)}
}

// Register associates a name with a handler, replacing any previous
// registration under the same name.
func (h *Handlers) Register(name string, handler command.Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[name] = handler
}

// Lookup returns the handler registered under name.
func (h *Handlers) Lookup(name string) (command.Handler, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	handler, ok := h.handlers[name]
	return handler, ok
}

// Names returns the registered handler names, sorted for stable error
// messages and help output.
func (h *Handlers) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.handlers))
	for name := range h.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupOrError resolves a handler name into a compile error when absent.
func (h *Handlers) lookupOrError(name string) (command.Handler, error) {
	if name == "" {
		return nil, fmt.Errorf("no handler named")
	}
	handler, ok := h.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown handler %q (registered: %v)", name, h.Names())
	}
	return handler, nil
}
