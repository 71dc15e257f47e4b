package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/pkg/core"
)

var sample = []string{"F10", "N3", "F7", "R90", "F11"}

func TestSample(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 25, got)

	got, err = Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 286, got)
}

func TestPositions(t *testing.T) {
	prog, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, core.PtInt{X: 17, Y: -8}, Sail(prog))
	assert.Equal(t, core.PtInt{X: 214, Y: -72}, Waypoint(prog))
}

func TestTurnsCancel(t *testing.T) {
	prog, err := Parse([]string{"L270", "R90", "L180", "F5", "R360", "F1"})
	require.NoError(t, err)
	assert.Equal(t, core.PtInt{X: 6}, Sail(prog))
}

func TestMalformed(t *testing.T) {
	for _, bad := range []string{"R45", "X10", "F", "Nx"} {
		_, err := Parse([]string{bad})
		assert.ErrorIs(t, err, ErrMalformed, bad)
	}
}
