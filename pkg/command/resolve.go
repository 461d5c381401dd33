package command

import (
	"herald/pkg/input"
	"herald/pkg/parser"
)

// PermissionFunc decides whether a sender holds a permission. A nil
// PermissionFunc allows everything; commands and flags with an empty
// permission string are always allowed.
type PermissionFunc func(sender, permission string) bool

func permitted(perm PermissionFunc, sender, permission string) bool {
	if permission == "" || perm == nil {
		return true
	}
	return perm(sender, permission)
}

// visible reports whether any command reachable through the node is
// permitted for the sender. An invisible node behaves exactly as if it were
// not registered, for resolution and suggestion alike.
func (n *node) visible(sender string, perm PermissionFunc) bool {
	if perm == nil || len(n.permissions) == 0 {
		return true
	}
	for _, p := range n.permissions {
		if permitted(perm, sender, p) {
			return true
		}
	}
	return false
}

// Result is a completed resolution: the populated context plus the matched
// command, ready to hand to the execution collaborator.
type Result struct {
	Context *Context
	Command *Command
}

// walkFailure carries the error of one failed branch together with how far
// into the input that branch got. When no branch succeeds, the failure that
// consumed furthest is surfaced, on the theory that it is the branch the
// user meant; ties go to the earlier-registered branch.
type walkFailure struct {
	pos int
	err error
}

func deeper(a, b *walkFailure) *walkFailure {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.pos > a.pos {
		return b
	}
	return a
}

// Resolve walks the tree against the input, returning a completed
// invocation or the most specific failure. The cursor and context are owned
// by this attempt; the tree itself is read-only here and safe to share
// across concurrent attempts.
func (t *Tree) Resolve(ctx *Context, in *input.Cursor, perm PermissionFunc) (*Result, error) {
	res, fail := t.resolveNode(t.root, ctx, in, perm)
	if res != nil {
		if !permitted(perm, ctx.Sender(), res.Command.Permission) {
			return nil, &NoPermissionError{Sender: ctx.Sender(), Permission: res.Command.Permission}
		}
		return res, nil
	}
	if fail == nil {
		return nil, &NoMatchingCommandError{Input: in.PeekString()}
	}
	return nil, fail.err
}

func (t *Tree) resolveNode(n *node, ctx *Context, in *input.Cursor, perm PermissionFunc) (*Result, *walkFailure) {
	if in.IsEmpty() {
		return t.finishExhausted(n, ctx, in, perm)
	}

	var best *walkFailure
	for _, child := range n.children {
		if !child.visible(ctx.Sender(), perm) {
			continue
		}
		mark := in.Position()
		cmark := ctx.mark()

		switch child.kind {
		case nodeLiteral:
			if !child.matchesLiteral(in.PeekString(), t.config.CaseSensitiveLiterals) {
				continue
			}
			if _, err := in.ReadString(); err != nil {
				continue
			}
			res, fail := t.resolveNode(child, ctx, in, perm)
			if res != nil {
				return res, nil
			}
			if fail == nil {
				// The literal matched but nothing below accepted the rest.
				fail = &walkFailure{
					pos: in.Position(),
					err: &NoMatchingCommandError{Input: in.PeekString()},
				}
			}
			best = deeper(best, fail)

		case nodeArgument:
			// Flags are order-independent: invocations of the signature's
			// flag set may appear ahead of any positional, so peel them off
			// before asking the component to parse.
			if fs := child.findFlagSet(); fs != nil {
				if ferr := consumeInterleavedFlags(fs.flags, ctx, in, perm); ferr != nil {
					best = deeper(best, &walkFailure{pos: in.Position(), err: ferr})
					in.Restore(mark)
					ctx.restore(cmark)
					continue
				}
			}
			// Position after any peeled flags, so a branch that advanced
			// through its flags still ranks as the deeper failure.
			argPos := in.Position()
			v, err := child.component.Parser.Parse(ctx, in)
			if err != nil {
				in.Restore(mark)
				ctx.restore(cmark)
				best = deeper(best, &walkFailure{
					pos: argPos,
					err: &ArgumentError{Argument: child.component.Name, Cause: err},
				})
				continue
			}
			ctx.Store(child.component.Name, v)
			res, fail := t.resolveNode(child, ctx, in, perm)
			if res != nil {
				return res, nil
			}
			best = deeper(best, fail)

		case nodeFlagSet:
			if err := parseFlags(child.flags, ctx, in, perm); err != nil {
				best = deeper(best, &walkFailure{pos: in.Position(), err: err})
				in.Restore(mark)
				ctx.restore(cmark)
				continue
			}
			res, fail := t.resolveNode(child, ctx, in, perm)
			if res != nil {
				return res, nil
			}
			best = deeper(best, fail)
		}

		in.Restore(mark)
		ctx.restore(cmark)
	}

	if best == nil && n.executable {
		// The command itself matched; the line just kept going.
		return nil, &walkFailure{
			pos: in.Position(),
			err: &TooManyArgumentsError{Input: in.RemainingInput()},
		}
	}
	return nil, best
}

// finishExhausted handles the end of input: the walk succeeds if the current
// node is executable, or if an executable node is reachable through nothing
// but optional components (default-filled) and the flag set.
func (t *Tree) finishExhausted(n *node, ctx *Context, in *input.Cursor, perm PermissionFunc) (*Result, *walkFailure) {
	target, err := t.defaultFill(n, ctx, ctx.Sender(), perm)
	if err != nil {
		return nil, &walkFailure{pos: in.Position(), err: err}
	}
	if target != nil {
		return &Result{Context: ctx, Command: target.command}, nil
	}

	// A required argument (or deeper literal) was still expected.
	fail := &walkFailure{pos: in.Position()}
	for _, child := range n.children {
		if child.kind == nodeArgument && child.visible(ctx.Sender(), perm) {
			fail.err = &ArgumentError{Argument: child.component.Name, Cause: &parser.NoInputError{}}
			return nil, fail
		}
	}
	fail.err = &parser.NoInputError{}
	return nil, fail
}

// defaultFill searches below n for an executable node reachable through
// optional components only, storing their defaults along the way. Returns
// nil when none exists.
func (t *Tree) defaultFill(n *node, ctx *Context, sender string, perm PermissionFunc) (*node, error) {
	if n.executable {
		return n, nil
	}
	for _, child := range n.children {
		if !child.visible(sender, perm) {
			continue
		}
		switch child.kind {
		case nodeArgument:
			if child.component.Required {
				continue
			}
			m := ctx.mark()
			if err := child.component.fillDefault(ctx); err != nil {
				return nil, err
			}
			found, err := t.defaultFill(child, ctx, sender, perm)
			if err != nil {
				return nil, err
			}
			if found != nil {
				return found, nil
			}
			ctx.restore(m)
		case nodeFlagSet:
			found, err := t.defaultFill(child, ctx, sender, perm)
			if err != nil {
				return nil, err
			}
			if found != nil {
				return found, nil
			}
		}
	}
	return nil, nil
}
