package handheld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"nop +0",
	"acc +1",
	"jmp +4",
	"acc +3",
	"jmp -3",
	"acc -99",
	"acc +1",
	"jmp -4",
	"acc +6",
}

func TestSample(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, ok, err := Part2(sample)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, got)
}

func TestRunTerminates(t *testing.T) {
	acc, done := Run([]Instr{{Acc, 2}, {Nop, 7}, {Acc, -5}})
	assert.True(t, done)
	assert.Equal(t, -3, acc)

	_, done = Run([]Instr{{Jmp, 5}})
	assert.False(t, done, "jumping past the end is not a clean exit")
}

func TestRepairAbsent(t *testing.T) {
	prog, err := Parse([]string{"acc +1", "jmp +0", "acc +1", "jmp -3"})
	require.NoError(t, err)
	_, ok := Repair(prog)
	assert.False(t, ok)
	assert.Equal(t, Jmp, prog[1].Op, "repair must not modify its input")
}

func TestMalformed(t *testing.T) {
	for _, bad := range []string{"acc", "acc x", "mul +2"} {
		_, err := Parse([]string{bad})
		assert.ErrorIs(t, err, ErrMalformed, bad)
	}
}
