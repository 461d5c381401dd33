package parser

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herald/pkg/input"
)

func TestUUIDParser_Parse(t *testing.T) {
	p := NewUUIDParser()

	t.Run("valid uuid round trips", func(t *testing.T) {
		id := uuid.New()
		in := input.New(id.String())

		v, err := p.Parse(testContext{}, in)
		require.NoError(t, err)
		assert.Equal(t, id, v)
		assert.True(t, in.IsEmpty())
	})

	t.Run("malformed uuid", func(t *testing.T) {
		in := input.New("not-a-uuid trailing")
		before := in.Position()

		_, err := p.Parse(testContext{}, in)
		var uuidErr *UUIDError
		require.ErrorAs(t, err, &uuidErr)
		assert.Equal(t, "not-a-uuid", uuidErr.Input)
		assert.Equal(t, before, in.Position())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := p.Parse(testContext{}, input.New(""))
		assert.ErrorIs(t, err, input.ErrNoInput)
	})
}

func TestCharParser_Parse(t *testing.T) {
	p := NewCharParser()

	t.Run("single character", func(t *testing.T) {
		v, err := p.Parse(testContext{}, input.New("x"))
		require.NoError(t, err)
		assert.Equal(t, 'x', v)
	})

	t.Run("multibyte rune counts as one character", func(t *testing.T) {
		v, err := p.Parse(testContext{}, input.New("ß"))
		require.NoError(t, err)
		assert.Equal(t, 'ß', v)
	})

	t.Run("multiple characters rejected", func(t *testing.T) {
		in := input.New("xy")
		before := in.Position()

		_, err := p.Parse(testContext{}, in)
		var charErr *CharError
		require.ErrorAs(t, err, &charErr)
		assert.Equal(t, "xy", charErr.Input)
		assert.Equal(t, before, in.Position())
	})
}
