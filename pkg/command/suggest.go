package command

import (
	"strings"

	"herald/pkg/input"
	"herald/pkg/parser"
)

// suggestionSink collects candidates deduplicated in first-seen order, and
// tracks whether every parser consulted along the way was context-free. Only
// fully context-free suggestion lists may be cached across senders.
type suggestionSink struct {
	out         []string
	seen        map[string]struct{}
	contextFree bool
}

func newSuggestionSink() *suggestionSink {
	return &suggestionSink{seen: make(map[string]struct{}), contextFree: true}
}

func (s *suggestionSink) add(candidate string) {
	if candidate == "" {
		return
	}
	if _, dup := s.seen[candidate]; dup {
		return
	}
	s.seen[candidate] = struct{}{}
	s.out = append(s.out, candidate)
}

// Suggest walks the tree against a partial line and returns completion
// candidates for the final (possibly empty) token, merged across every
// branch still reachable given the consumed prefix. Ordering is
// deterministic: literals before arguments, registration order within each
// group, first occurrence wins on duplicates.
func (t *Tree) Suggest(ctx *Context, in *input.Cursor, perm PermissionFunc) []string {
	sink := newSuggestionSink()
	t.suggestNode(t.root, ctx, in, perm, sink)
	return sink.out
}

// suggestTracked is Suggest plus the context-free verdict, for cache use.
func (t *Tree) suggestTracked(ctx *Context, in *input.Cursor, perm PermissionFunc) ([]string, bool) {
	sink := newSuggestionSink()
	t.suggestNode(t.root, ctx, in, perm, sink)
	return sink.out, sink.contextFree
}

// atFinalToken reports whether the cursor rests on the final, possibly
// empty, token of the line — the position suggestions are computed for.
func atFinalToken(in *input.Cursor) bool {
	return !strings.Contains(in.RemainingInput(), " ")
}

func (t *Tree) suggestNode(n *node, ctx *Context, in *input.Cursor, perm PermissionFunc, sink *suggestionSink) {
	if atFinalToken(in) {
		prefix := in.RemainingInput()
		for _, child := range n.children {
			if !child.visible(ctx.Sender(), perm) {
				continue
			}
			switch child.kind {
			case nodeLiteral:
				for _, s := range parser.FilterByPrefix(prefix, []string{child.literal}) {
					sink.add(s)
				}
			case nodeArgument:
				if !child.component.Parser.ContextFree() {
					sink.contextFree = false
				}
				for _, s := range child.component.suggest(ctx, prefix) {
					sink.add(s)
				}
			case nodeFlagSet:
				suggestFlagMarkers(child.flags, ctx, prefix, perm, sink, nil)
			}
		}
		return
	}

	// More complete tokens remain; descend every branch that accepts the
	// next one. Unlike resolution, no branch commits: ambiguous siblings
	// all contribute.
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
			t.suggestNode(child, ctx, in, perm, sink)

		case nodeArgument:
			if !child.component.Parser.ContextFree() {
				sink.contextFree = false
			}
			v, err := child.component.Parser.Parse(ctx, in)
			if err != nil {
				in.Restore(mark)
				continue
			}
			ctx.Store(child.component.Name, v)
			t.suggestNode(child, ctx, in, perm, sink)

		case nodeFlagSet:
			t.suggestFlags(child.flags, ctx, in, perm, sink)
		}

		in.Restore(mark)
		ctx.restore(cmark)
	}
}

// suggestFlags advances through complete flag tokens and their values, then
// suggests at the final token: either the value of a pending value-taking
// flag, or the visible flag markers themselves.
func (t *Tree) suggestFlags(flags []*Flag, ctx *Context, in *input.Cursor, perm PermissionFunc, sink *suggestionSink) {
	used := map[string]bool{}
	for {
		if atFinalToken(in) {
			suggestFlagMarkers(flags, ctx, in.RemainingInput(), perm, sink, used)
			return
		}
		token, err := in.ReadString()
		if err != nil {
			return
		}
		if !parser.FlagMarkerPattern.MatchString(token) {
			return
		}
		f := lookupFlag(flags, token)
		if f == nil || !permitted(perm, ctx.Sender(), f.Permission) {
			return
		}
		if f.Mode == FlagSingle {
			used[f.Name] = true
		}
		if f.Component == nil {
			continue
		}
		if !f.Component.Parser.ContextFree() {
			sink.contextFree = false
		}
		if atFinalToken(in) {
			for _, s := range f.Component.suggest(ctx, in.RemainingInput()) {
				sink.add(s)
			}
			return
		}
		if _, err := f.Component.Parser.Parse(ctx, in); err != nil {
			return
		}
	}
}

// suggestFlagMarkers proposes the marker tokens of the visible flags, long
// form first, skipping single-mode flags already used earlier in the line.
func suggestFlagMarkers(flags []*Flag, ctx *Context, prefix string, perm PermissionFunc, sink *suggestionSink, used map[string]bool) {
	for _, f := range flags {
		if used[f.Name] {
			continue
		}
		if !permitted(perm, ctx.Sender(), f.Permission) {
			continue
		}
		for _, s := range parser.FilterByPrefix(prefix, f.markers()) {
			sink.add(s)
		}
	}
}
