package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteGridCloneIsIndependent(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Fill('L')
	g.Set(2, 1, '#')

	c := g.Clone()
	require.True(t, g.Equal(c))

	c.Set(0, 0, '#')
	assert.False(t, g.Equal(c))
	assert.Equal(t, uint8('L'), g.At(0, 0))
	assert.Equal(t, 1, g.Count('#'))
	assert.Equal(t, 2, c.Count('#'))
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(0, -1)
	assert.Equal(t, 1, g.W)
	assert.Equal(t, 1, g.H)

	g = NewByteGrid(4, 3)
	assert.True(t, g.InBounds(3, 2))
	assert.False(t, g.InBounds(4, 0))
	assert.False(t, g.InBounds(0, -1))
	assert.Equal(t, 7, g.Index(3, 1))
}
