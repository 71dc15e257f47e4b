package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/input"
)

func TestErrorRate(t *testing.T) {
	got, err := Part1(input.MustReadLines("sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, 71, got)
}

func TestValidDropsBadTickets(t *testing.T) {
	n, err := Parse(input.MustReadLines("sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{7, 1, 14}, {7, 3, 47}}, n.Valid())
}

func TestAssign(t *testing.T) {
	n, err := Parse(input.MustReadLines("fields.txt"))
	require.NoError(t, err)
	fields, err := n.Assign()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"row": 0, "class": 1, "seat": 2}, fields)
	assert.Equal(t, 12, n.Mine[fields["class"]])
	assert.Equal(t, 11, n.Mine[fields["row"]])
	assert.Equal(t, 13, n.Mine[fields["seat"]])
}

func TestDepartureProduct(t *testing.T) {
	got, err := Part2(input.MustReadLines("departure.txt"))
	require.NoError(t, err)
	assert.Equal(t, 11*13, got)

	got, err = Part2(input.MustReadLines("fields.txt"))
	require.NoError(t, err)
	assert.Equal(t, 1, got, "no departure fields")
}

func TestAmbiguous(t *testing.T) {
	_, err := Part2([]string{
		"a: 0-9 or 10-19",
		"b: 0-9 or 10-19",
		"",
		"your ticket:",
		"1,2",
		"",
		"nearby tickets:",
		"3,4",
	})
	assert.ErrorIs(t, err, ErrAmbiguous)
}

func TestMalformed(t *testing.T) {
	for name, lines := range map[string][]string{
		"sections": {"class: 1-3 or 5-7"},
		"rule":     {"class 1-3", "", "your ticket:", "1", "", "nearby tickets:", "1"},
		"range":    {"class: 1-x", "", "your ticket:", "1", "", "nearby tickets:", "1"},
		"header":   {"class: 1-3", "", "my ticket:", "1", "", "nearby tickets:", "1"},
		"width":    {"class: 1-3", "", "your ticket:", "1", "", "nearby tickets:", "1,2"},
		"value":    {"class: 1-3", "", "your ticket:", "1", "", "nearby tickets:", "q"},
	} {
		_, err := Part1(lines)
		assert.ErrorIs(t, err, ErrMalformed, name)
	}
}
