package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herald/pkg/parser"
)

func noopHandler(_ *Context) error { return nil }

func TestTreeInsertValidation(t *testing.T) {
	word := parser.NewStringParser(parser.StringSingle)
	greedy := parser.NewStringParser(parser.StringGreedy)
	yielding := parser.NewStringParser(parser.StringGreedyFlagYielding)

	tests := []struct {
		name    string
		cmd     *Command
		wantErr string
	}{
		{
			name:    "missing handler",
			cmd:     &Command{Path: []string{"ban"}},
			wantErr: "no handler",
		},
		{
			name:    "empty path",
			cmd:     &Command{Handler: noopHandler},
			wantErr: "empty path",
		},
		{
			name:    "path literal with space",
			cmd:     &Command{Path: []string{"mod ban"}, Handler: noopHandler},
			wantErr: "invalid path literal",
		},
		{
			name: "duplicate component name",
			cmd: &Command{
				Path:    []string{"ban"},
				Handler: noopHandler,
				Components: []*Component{
					RequiredComponent("player", word),
					RequiredComponent("player", word),
				},
			},
			wantErr: "duplicate component name",
		},
		{
			name: "required after optional",
			cmd: &Command{
				Path:    []string{"ban"},
				Handler: noopHandler,
				Components: []*Component{
					OptionalComponent("reason", word),
					RequiredComponent("player", word),
				},
			},
			wantErr: "follows an optional component",
		},
		{
			name: "required component with default",
			cmd: &Command{
				Path:    []string{"ban"},
				Handler: noopHandler,
				Components: []*Component{
					{Name: "player", Parser: word, Required: true, Default: "bob"},
				},
			},
			wantErr: "cannot have a default",
		},
		{
			name: "default that does not parse",
			cmd: &Command{
				Path:    []string{"warp"},
				Handler: noopHandler,
				Components: []*Component{
					OptionalComponentWithDefault("count", parser.NewIntegerParser[int32](), "many"),
				},
			},
			wantErr: "does not parse",
		},
		{
			name: "greedy component not last",
			cmd: &Command{
				Path:    []string{"broadcast"},
				Handler: noopHandler,
				Components: []*Component{
					RequiredComponent("message", greedy),
					RequiredComponent("channel", word),
				},
			},
			wantErr: "must be the last component",
		},
		{
			name: "fully greedy component with flags",
			cmd: &Command{
				Path:       []string{"broadcast"},
				Handler:    noopHandler,
				Components: []*Component{RequiredComponent("message", greedy)},
				Flags:      []*Flag{PresenceFlag("silent")},
			},
			wantErr: "flag-yielding",
		},
		{
			name: "flag-yielding greedy with flags is fine",
			cmd: &Command{
				Path:       []string{"broadcast"},
				Handler:    noopHandler,
				Components: []*Component{RequiredComponent("message", yielding)},
				Flags:      []*Flag{PresenceFlag("silent")},
			},
		},
		{
			name: "flag registered with marker dashes",
			cmd: &Command{
				Path:    []string{"list"},
				Handler: noopHandler,
				Flags:   []*Flag{PresenceFlag("--verbose")},
			},
			wantErr: "without its marker dashes",
		},
		{
			name: "multi-character flag alias",
			cmd: &Command{
				Path:    []string{"list"},
				Handler: noopHandler,
				Flags:   []*Flag{PresenceFlag("verbose", "vb")},
			},
			wantErr: "exactly one character",
		},
		{
			name: "duplicate flag alias",
			cmd: &Command{
				Path:    []string{"list"},
				Handler: noopHandler,
				Flags: []*Flag{
					PresenceFlag("verbose", "v"),
					PresenceFlag("version", "v"),
				},
			},
			wantErr: "duplicate flag alias",
		},
		{
			name: "valid command",
			cmd: &Command{
				Path:       []string{"ban"},
				Handler:    noopHandler,
				Components: []*Component{RequiredComponent("player", word)},
				Flags:      []*Flag{PresenceFlag("silent", "s")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree(TreeConfig{})
			err := tree.Insert(tt.cmd)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTreeRejectsDuplicateSignature(t *testing.T) {
	tree := NewTree(TreeConfig{})
	cmd := &Command{Path: []string{"ping"}, Handler: noopHandler}

	require.NoError(t, tree.Insert(cmd))
	err := tree.Insert(&Command{Path: []string{"ping"}, Handler: noopHandler})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestTreeSharesLiteralPrefix(t *testing.T) {
	tree := NewTree(TreeConfig{})
	require.NoError(t, tree.Insert(&Command{Path: []string{"mod", "ban"}, Handler: noopHandler}))
	require.NoError(t, tree.Insert(&Command{Path: []string{"mod", "kick"}, Handler: noopHandler}))

	// One shared "mod" node with two literal children.
	require.Len(t, tree.root.children, 1)
	mod := tree.root.children[0]
	assert.Equal(t, "mod", mod.literal)
	assert.Len(t, mod.children, 2)
}

func TestTreeMergesAliases(t *testing.T) {
	tree := NewTree(TreeConfig{})
	require.NoError(t, tree.Insert(&Command{Path: []string{"teleport"}, Aliases: []string{"tp"}, Handler: noopHandler}))
	require.NoError(t, tree.Insert(&Command{
		Path:       []string{"teleport"},
		Aliases:    []string{"tp", "warp"},
		Handler:    noopHandler,
		Components: []*Component{RequiredComponent("target", parser.NewStringParser(parser.StringSingle))},
	}))

	root := tree.root.children[0]
	assert.Equal(t, []string{"tp", "warp"}, root.aliases)
}

func TestTreeChildOrdering(t *testing.T) {
	tree := NewTree(TreeConfig{})
	word := parser.NewStringParser(parser.StringSingle)

	// Register the argument signature first; the literal must still sort
	// ahead of it among the siblings.
	require.NoError(t, tree.Insert(&Command{
		Path:       []string{"give"},
		Handler:    noopHandler,
		Components: []*Component{RequiredComponent("item", word)},
	}))
	require.NoError(t, tree.Insert(&Command{Path: []string{"give", "all"}, Handler: noopHandler}))

	give := tree.root.children[0]
	require.Len(t, give.children, 2)
	assert.Equal(t, nodeLiteral, give.children[0].kind)
	assert.Equal(t, nodeArgument, give.children[1].kind)
}

func TestTreeCommandsReturnsRegistrationOrder(t *testing.T) {
	tree := NewTree(TreeConfig{})
	first := &Command{Path: []string{"one"}, Handler: noopHandler}
	second := &Command{Path: []string{"two"}, Handler: noopHandler}
	require.NoError(t, tree.Insert(first))
	require.NoError(t, tree.Insert(second))

	cmds := tree.Commands()
	require.Len(t, cmds, 2)
	assert.Same(t, first, cmds[0])
	assert.Same(t, second, cmds[1])
}
