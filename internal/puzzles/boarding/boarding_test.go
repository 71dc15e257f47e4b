package boarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		code     string
		row, col int
		id       int
	}{
		{"FBFBBFFRLR", 44, 5, 357},
		{"BFFFBBFRRR", 70, 7, 567},
		{"FFFBBBFRRR", 14, 7, 119},
		{"BBFFBBFRLL", 102, 4, 820},
	}
	for _, c := range cases {
		row, col, err := Decode(c.code)
		require.NoError(t, err, c.code)
		assert.Equal(t, c.row, row, c.code)
		assert.Equal(t, c.col, col, c.code)
		id, err := SeatID(c.code)
		require.NoError(t, err)
		assert.Equal(t, c.id, id, c.code)
	}
}

func TestMalformed(t *testing.T) {
	for _, bad := range []string{"FBFBBFFRL", "FBFBBFFRLRR", "FBFBBFFRLX", "FBFBBFLRLR", "RBFBBFFRLR"} {
		_, err := SeatID(bad)
		assert.ErrorIs(t, err, ErrMalformed, bad)
	}
}

func TestParts(t *testing.T) {
	lines := []string{"FBFBBFFRLR", "BFFFBBFRRR", "FFFBBBFRRR", "BBFFBBFRLL", ""}
	best, ok, err := Part1(lines)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 820, best)

	_, ok, err = Part1(nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMissing(t *testing.T) {
	id, ok := Missing([]int{10, 8, 12, 11})
	require.True(t, ok)
	assert.Equal(t, 9, id)

	_, ok = Missing([]int{3, 4, 5})
	assert.False(t, ok)
	_, ok = Missing([]int{3})
	assert.False(t, ok)
}
