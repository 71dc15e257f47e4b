package seating

import (
	"slices"
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
	assert.Equal(t, 37, got)

	got, err = Part2(lines)
	require.NoError(t, err)
	assert.Equal(t, 26, got)
}

func TestMalformedLayout(t *testing.T) {
	_, err := Part1([]string{"L.L", "L"})
	assert.ErrorIs(t, err, automaton.ErrGrid)
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "10", "h": "-3", "density": "2", "policy": "adjacent"})
	assert.Equal(t, 10, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.Equal(t, DefaultConfig().SeatDensity, c.SeatDensity)
	assert.Equal(t, automaton.Adjacent.Name, c.Policy.Name)
	assert.Equal(t, automaton.SeatRule(4), c.Rule)

	c = FromMap(map[string]string{"rule": "B0/S01"})
	assert.Equal(t, "B0/S01", c.Rule.String())
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestSimSettles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	s := New(cfg)
	s.Reset(5)

	before := append([]uint8(nil), s.Cells()...)
	s.Reset(5)
	require.Equal(t, before, s.Cells(), "reset must be deterministic")

	converged := false
	for range 1000 {
		before := append([]uint8(nil), s.Cells()...)
		s.Step()
		if slices.Equal(before, s.Cells()) {
			converged = true
			break
		}
	}
	require.True(t, converged)
	settled := append([]uint8(nil), s.Cells()...)
	s.Step()
	assert.Equal(t, settled, s.Cells())
	assert.Len(t, s.Palette(), 256)
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sims()["seating"]
	require.True(t, ok)
	sim := f(map[string]string{"w": "8", "h": "4"})
	assert.Equal(t, core.Size{W: 8, H: 4}, sim.Size())
	assert.Len(t, sim.Cells(), 32)
}
