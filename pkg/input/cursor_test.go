package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_TokenReads(t *testing.T) {
	c := New("one two  three")

	assert.Equal(t, "one", c.PeekString())
	assert.Equal(t, 3, c.RemainingTokens())

	tok, err := c.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "one", tok)

	tok, err = c.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "two", tok)

	// Double spaces are a single separator.
	tok, err = c.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "three", tok)

	assert.True(t, c.IsEmpty())
	_, err = c.ReadString()
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestCursor_SpaceIsTheOnlySeparator(t *testing.T) {
	c := New("a\tb c")

	// The tab is token content, not a boundary.
	assert.Equal(t, 2, c.RemainingTokens())
	assert.Equal(t, "a\tb", c.PeekString())

	tok, err := c.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "a\tb", tok)

	tok, err = c.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "c", tok)
}

func TestCursor_PeekDoesNotConsume(t *testing.T) {
	c := New("hello world")

	before := c.Position()
	assert.Equal(t, "hello", c.PeekString())
	assert.Equal(t, "hello", c.PeekString())
	assert.Equal(t, before, c.Position())
}

func TestCursor_CharacterReads(t *testing.T) {
	c := New(" 'ab")

	r, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, '\'', r)

	r, ok = c.Read()
	require.True(t, ok)
	assert.Equal(t, '\'', r)

	r, ok = c.Read()
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	tok, err := c.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "b", tok)
}

func TestCursor_RemainingInputIsVerbatim(t *testing.T) {
	c := New("first second  third")

	_, err := c.ReadString()
	require.NoError(t, err)

	assert.Equal(t, "second  third", c.RemainingInput())
}

func TestCursor_ReadSpan(t *testing.T) {
	c := New(`"a b" c`)

	span := c.ReadSpan(5)
	assert.Equal(t, `"a b"`, span)

	tok, err := c.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "c", tok)
}

func TestCursor_RestoreRewindsFailedAttempt(t *testing.T) {
	c := New("alpha beta")

	mark := c.Position()
	_, err := c.ReadString()
	require.NoError(t, err)
	c.Restore(mark)

	assert.Equal(t, "alpha", c.PeekString())
	assert.Equal(t, 2, c.RemainingTokens())
}

func TestCursor_ReadRemaining(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		consume int
		want    string
		wantErr bool
	}{
		{
			name: "full line",
			line: "all of it",
			want: "all of it",
		},
		{
			name:    "tail after one token",
			line:    "head rest of line",
			consume: 1,
			want:    "rest of line",
		},
		{
			name:    "exhausted cursor",
			line:    "only",
			consume: 1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.line)
			for i := 0; i < tt.consume; i++ {
				_, err := c.ReadString()
				require.NoError(t, err)
			}
			got, err := c.ReadRemaining()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, c.IsEmpty())
		})
	}
}
