package command

import (
	"sync"
	"sync/atomic"
)

// Registry owns the published command tree. Registration rebuilds a fresh
// tree from the full command list and swaps it in atomically, so resolution
// attempts racing a late registration always walk either the old tree or
// the new one, never a half-mutated structure.
type Registry struct {
	config TreeConfig

	mu       sync.Mutex
	commands []*Command

	tree    atomic.Pointer[Tree]
	version atomic.Uint64
}

// NewRegistry creates a registry with an empty published tree.
func NewRegistry(config TreeConfig) *Registry {
	r := &Registry{config: config}
	r.tree.Store(NewTree(config))
	return r
}

// Register adds commands to the registry and publishes a rebuilt tree.
// On any registration error nothing is published and the previous tree
// keeps serving.
func (r *Registry) Register(cmds ...*Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(append([]*Command{}, r.commands...), cmds...)
	return r.publish(next)
}

// Replace swaps the full command set wholesale, for definition reloads.
func (r *Registry) Replace(cmds []*Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.publish(append([]*Command{}, cmds...))
}

// publish rebuilds and atomically installs the tree; r.mu must be held.
func (r *Registry) publish(cmds []*Command) error {
	tree := NewTree(r.config)
	for _, cmd := range cmds {
		if err := tree.Insert(cmd); err != nil {
			return err
		}
	}
	r.commands = cmds
	r.tree.Store(tree)
	r.version.Add(1)
	return nil
}

// Tree returns the currently published tree snapshot. The snapshot is
// immutable; callers may walk it without coordination.
func (r *Registry) Tree() *Tree {
	return r.tree.Load()
}

// Version increments on every successful publish. Suggestion caches key on
// it to invalidate after a swap.
func (r *Registry) Version() uint64 {
	return r.version.Load()
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []*Command {
	return r.Tree().Commands()
}
