package cubes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/automaton"
	"advent2020/internal/core"
	"advent2020/internal/input"
)

func TestSample(t *testing.T) {
	lines := input.MustReadLines("sample.txt")

	got, err := Part1(lines)
	require.NoError(t, err)
	assert.Equal(t, 112, got)

	got, err = Part2(lines)
	require.NoError(t, err)
	assert.Equal(t, 848, got)
}

func TestMalformedSeed(t *testing.T) {
	_, err := Part1([]string{".#.", "#L#"})
	assert.ErrorIs(t, err, automaton.ErrGrid)
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"dims": "3", "seed_size": "4", "rule": "B0/S23"})
	assert.Equal(t, 3, c.Dims)
	assert.Equal(t, 4, c.SeedSize)
	assert.Equal(t, automaton.LifeRule(), c.Rule, "birth on zero is not runnable on a lattice")

	c = FromMap(map[string]string{"dims": "7", "rule": "B36/S23"})
	assert.Equal(t, 4, c.Dims)
	assert.Equal(t, "B36/S23", c.Rule.String())
}

func TestSimWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Dims = 32, 24, 3
	s := New(cfg)
	s.Reset(3)

	cells := s.Cells()
	require.Len(t, cells, 32*24)
	visible := 0
	for _, c := range cells {
		visible += int(c)
	}
	// The whole seed patch lies in the window and on the origin plane.
	assert.Equal(t, s.Population(), visible)

	s.Step()
	assert.Equal(t, "cubes-3d", s.Name())
	assert.Equal(t, core.Size{W: 32, H: 24}, s.Size())
}
