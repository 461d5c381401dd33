package command

import (
	"fmt"
	"strings"
)

type nodeKind int

const (
	nodeLiteral nodeKind = iota
	nodeArgument
	nodeFlagSet
)

// node is one vertex of the command trie. Literal nodes are shared between
// commands with a common prefix; argument and flag-set nodes belong to a
// single command signature.
type node struct {
	kind       nodeKind
	literal    string
	aliases    []string
	component  *Component
	flags      []*Flag
	children   []*node
	executable bool
	command    *Command
	// permissions of all commands reachable through this node. The node is
	// visible to a sender holding any of them; an empty string marks a
	// public command beneath.
	permissions []string
}

// addChild keeps sibling order as the engines require it: literals first,
// then arguments, then the flag set, preserving registration order within
// each group.
func (n *node) addChild(child *node) {
	rank := func(k nodeKind) int { return int(k) }
	idx := len(n.children)
	for i, c := range n.children {
		if rank(c.kind) > rank(child.kind) {
			idx = i
			break
		}
	}
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
}

// findFlagSet returns the flag-set node governing the signature(s) below n,
// or nil when none is registered. Flags attach after the last positional
// component, so the set is found by descending the component chain; a direct
// child wins over a deeper one.
func (n *node) findFlagSet() *node {
	for _, c := range n.children {
		if c.kind == nodeFlagSet {
			return c
		}
	}
	for _, c := range n.children {
		if fs := c.findFlagSet(); fs != nil {
			return fs
		}
	}
	return nil
}

func (n *node) addPermission(permission string) {
	for _, p := range n.permissions {
		if p == permission {
			return
		}
	}
	n.permissions = append(n.permissions, permission)
}

// TreeConfig carries the tree-wide knobs.
type TreeConfig struct {
	// CaseSensitiveLiterals controls literal token matching. Off by
	// default: "Ban" matches the literal "ban".
	CaseSensitiveLiterals bool
}

// Tree is the trie of all registered command signatures. Registration
// happens before the tree is published to the engines; a published tree is
// never mutated, which is what makes concurrent resolution attempts safe
// (see Registry for the swap discipline).
type Tree struct {
	config   TreeConfig
	root     *node
	commands []*Command
}

// NewTree creates an empty command tree.
func NewTree(config TreeConfig) *Tree {
	return &Tree{config: config, root: &node{kind: nodeLiteral}}
}

// Commands returns the registered commands in registration order.
func (t *Tree) Commands() []*Command {
	out := make([]*Command, len(t.commands))
	copy(out, t.commands)
	return out
}

// Insert compiles one command signature into the trie. All structural
// problems — missing handler, ill-formed flag aliases, a required component
// after an optional one, a greedy component that is not last — are
// registration errors reported here, never at parse time.
func (t *Tree) Insert(cmd *Command) error {
	if err := t.validate(cmd); err != nil {
		return fmt.Errorf("command %q: %w", cmd.FullName(), err)
	}

	cur := t.root
	for i, lit := range cmd.Path {
		child := cur.findLiteral(lit, t.config.CaseSensitiveLiterals)
		if child == nil {
			child = &node{kind: nodeLiteral, literal: lit}
			if i == 0 {
				child.aliases = append(child.aliases, cmd.Aliases...)
			}
			cur.addChild(child)
		} else if i == 0 {
			child.mergeAliases(cmd.Aliases)
		}
		child.addPermission(cmd.Permission)
		cur = child
	}

	for _, comp := range cmd.Components {
		child := &node{kind: nodeArgument, component: comp}
		child.addPermission(cmd.Permission)
		cur.addChild(child)
		cur = child
	}

	if len(cmd.Flags) > 0 {
		child := &node{kind: nodeFlagSet, flags: cmd.Flags}
		child.addPermission(cmd.Permission)
		cur.addChild(child)
		cur = child
	}

	if cur.executable {
		return fmt.Errorf("command %q: signature already registered", cmd.FullName())
	}
	cur.executable = true
	cur.command = cmd

	t.commands = append(t.commands, cmd)
	return nil
}

func (n *node) findLiteral(lit string, caseSensitive bool) *node {
	for _, c := range n.children {
		if c.kind != nodeLiteral {
			continue
		}
		if literalEquals(c.literal, lit, caseSensitive) {
			return c
		}
	}
	return nil
}

func (n *node) mergeAliases(aliases []string) {
	for _, a := range aliases {
		found := false
		for _, existing := range n.aliases {
			if existing == a {
				found = true
				break
			}
		}
		if !found {
			n.aliases = append(n.aliases, a)
		}
	}
}

func literalEquals(registered, token string, caseSensitive bool) bool {
	if caseSensitive {
		return registered == token
	}
	return strings.EqualFold(registered, token)
}

// matchesLiteral reports whether the token selects this literal node, by
// main name or any alias.
func (n *node) matchesLiteral(token string, caseSensitive bool) bool {
	if literalEquals(n.literal, token, caseSensitive) {
		return true
	}
	for _, a := range n.aliases {
		if literalEquals(a, token, caseSensitive) {
			return true
		}
	}
	return false
}

func (t *Tree) validate(cmd *Command) error {
	if cmd.Handler == nil {
		return fmt.Errorf("no handler")
	}
	if len(cmd.Path) == 0 {
		return fmt.Errorf("empty path")
	}
	for _, lit := range cmd.Path {
		if lit == "" || strings.Contains(lit, " ") {
			return fmt.Errorf("invalid path literal %q", lit)
		}
	}
	for _, a := range cmd.Aliases {
		if a == "" || strings.Contains(a, " ") {
			return fmt.Errorf("invalid alias %q", a)
		}
	}

	seen := map[string]bool{}
	optionalSeen := false
	for i, comp := range cmd.Components {
		if err := comp.validate(); err != nil {
			return err
		}
		if seen[comp.Name] {
			return fmt.Errorf("duplicate component name %q", comp.Name)
		}
		seen[comp.Name] = true
		if optionalSeen && comp.Required {
			return fmt.Errorf("required component %q follows an optional component", comp.Name)
		}
		if !comp.Required {
			optionalSeen = true
		}
		all, flagYielding := comp.greedy()
		last := i == len(cmd.Components)-1
		if (all || flagYielding) && !last {
			return fmt.Errorf("greedy component %q must be the last component", comp.Name)
		}
		if all && last && len(cmd.Flags) > 0 {
			return fmt.Errorf("greedy component %q would consume the flags; use the flag-yielding mode", comp.Name)
		}
	}

	flagNames := map[string]bool{}
	flagAliases := map[string]bool{}
	for _, f := range cmd.Flags {
		if err := f.validate(); err != nil {
			return err
		}
		if flagNames[f.Name] {
			return fmt.Errorf("duplicate flag name %q", f.Name)
		}
		flagNames[f.Name] = true
		for _, a := range f.Aliases {
			if flagAliases[a] {
				return fmt.Errorf("duplicate flag alias %q", a)
			}
			flagAliases[a] = true
		}
	}
	return nil
}
