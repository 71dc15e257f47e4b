package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	lines, err := ReadLines("numbers.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"1721", "979", "366", "", "299", "675", "1456"}, lines)
}

func TestReadLinesMissing(t *testing.T) {
	_, err := ReadLines("does-not-exist.txt")
	require.ErrorIs(t, err, ErrUnreadable)
	assert.Panics(t, func() { MustReadLines("does-not-exist.txt") })
}

func TestInts(t *testing.T) {
	nums, err := Ints(MustReadLines("numbers.txt"))
	require.NoError(t, err)
	assert.Equal(t, []int{1721, 979, 366, 299, 675, 1456}, nums)

	_, err = Ints([]string{"12", "x"})
	require.ErrorIs(t, err, ErrMalformed)

	big, err := Int64s([]string{"127", "182", "219298342157"})
	require.NoError(t, err)
	assert.Equal(t, []int64{127, 182, 219298342157}, big)
}

func TestGroups(t *testing.T) {
	groups := Groups([]string{"abc", "", "a", "b", "", "", "c", ""})
	assert.Equal(t, [][]string{{"abc"}, {"a", "b"}, {"c"}}, groups)
	assert.Nil(t, Groups(nil))
	assert.Equal(t, []string{"a", "b"}, NonBlank([]string{"a", " ", "b", ""}))
}
