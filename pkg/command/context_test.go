package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextStoreAndValue(t *testing.T) {
	ctx := NewContext("alice", false)
	assert.Equal(t, "alice", ctx.Sender())
	assert.False(t, ctx.Suggesting())

	_, ok := ctx.Value("count")
	assert.False(t, ok)

	ctx.Store("count", 7)
	ctx.Store("target", "bob")

	v, ok := ctx.Value("count")
	require.True(t, ok)
	assert.Equal(t, 7, v)

	assert.Equal(t, []string{"count", "target"}, ctx.ArgumentNames())
}

func TestContextLatestStoreWins(t *testing.T) {
	ctx := NewContext("alice", false)
	ctx.Store("level", 1)
	ctx.Store("level", 2)

	v, ok := ctx.Value("level")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestContextTypedGet(t *testing.T) {
	ctx := NewContext("alice", false)
	ctx.Store("count", int32(5))

	v, ok := Get[int32](ctx, "count")
	require.True(t, ok)
	assert.Equal(t, int32(5), v)

	// Wrong type assertion fails rather than panicking.
	_, ok = Get[string](ctx, "count")
	assert.False(t, ok)

	assert.Equal(t, int32(5), MustGet[int32](ctx, "count"))
	assert.Panics(t, func() { MustGet[string](ctx, "missing") })
}

func TestContextFlagsSingleOverwrites(t *testing.T) {
	ctx := NewContext("alice", false)
	ctx.storeFlag("page", 1, false)
	ctx.storeFlag("page", 3, false)

	v, ok := ctx.Flag("page")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Len(t, ctx.FlagValues("page"), 1)
}

func TestContextFlagsRepeatableAccumulate(t *testing.T) {
	ctx := NewContext("alice", false)
	ctx.storeFlag("tag", "a", true)
	ctx.storeFlag("tag", "b", true)

	assert.True(t, ctx.HasFlag("tag"))
	assert.Equal(t, []any{"a", "b"}, ctx.FlagValues("tag"))

	// Flag returns the most recent occurrence.
	v, ok := ctx.Flag("tag")
	require.True(t, ok)
	assert.Equal(t, "b", v)

	typed, ok := FlagValue[string](ctx, "tag")
	require.True(t, ok)
	assert.Equal(t, "b", typed)
}

func TestContextMarkRestore(t *testing.T) {
	ctx := NewContext("alice", false)
	ctx.Store("kept", 1)
	ctx.storeFlag("verbose", true, false)

	m := ctx.mark()
	ctx.Store("branch", 2)
	ctx.storeFlag("tag", "x", true)
	ctx.restore(m)

	_, ok := ctx.Value("branch")
	assert.False(t, ok)
	assert.False(t, ctx.HasFlag("tag"))

	v, ok := ctx.Value("kept")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, ctx.HasFlag("verbose"))
}
