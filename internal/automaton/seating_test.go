package automaton

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleLayout = []string{
	"L.LL.LL.LL",
	"LLLLLLL.LL",
	"L.L.L..L..",
	"LLLL.LL.LL",
	"L.LL.LL.LL",
	"L.LLLLL.LL",
	"..L.L.....",
	"LLLLLLLLLL",
	"L.LLLLLL.L",
	"L.LLLLL.LL",
}

func mustGrid(t *testing.T, lines ...string) *Seating {
	t.Helper()
	g, err := ParseGrid(lines)
	require.NoError(t, err)
	return NewSeating(g, Adjacent)
}

func TestParseGridErrors(t *testing.T) {
	_, err := ParseGrid(nil)
	assert.ErrorIs(t, err, ErrGrid)
	_, err = ParseGrid([]string{"L.L", "LL"})
	assert.ErrorIs(t, err, ErrGrid)
	_, err = ParseGrid([]string{"L?L"})
	assert.ErrorIs(t, err, ErrGrid)
}

func TestSeatingFirstGeneration(t *testing.T) {
	s := mustGrid(t, sampleLayout...)
	next, changed := s.Next(SeatRule(4))
	require.True(t, changed)

	want := strings.ReplaceAll(strings.Join(sampleLayout, "\n")+"\n", "L", "#")
	assert.Equal(t, want, next.(*Seating).String())
	// Receiver is untouched.
	assert.Equal(t, 0, s.Population())
}

func TestSeatingFixedPoints(t *testing.T) {
	g, err := ParseGrid(sampleLayout)
	require.NoError(t, err)

	adjacent, err := Run(NewSeating(g, Adjacent), Config{Rule: SeatRule(4)})
	require.NoError(t, err)
	assert.True(t, adjacent.Converged)
	assert.Less(t, adjacent.Steps, 1000)
	assert.Equal(t, 37, adjacent.Population)

	sight, err := Run(NewSeating(g, LineOfSight), Config{Rule: SeatRule(5)})
	require.NoError(t, err)
	assert.True(t, sight.Converged)
	assert.Equal(t, 26, sight.Population)

	assert.NotEqual(t, adjacent.Population, sight.Population)
	assert.Equal(t, 0, g.Count(Occupied), "input grid must not be modified")
}

func TestLineOfSightCounts(t *testing.T) {
	s := mustGrid(t,
		".......#.",
		"...#.....",
		".#.......",
		".........",
		"..#L....#",
		"....#....",
		".........",
		"#........",
		"...#.....",
	)
	assert.Equal(t, 8, LineOfSight.Count(s.Grid(), 3, 4))
	assert.Equal(t, 2, Adjacent.Count(s.Grid(), 3, 4))

	s = mustGrid(t,
		".............",
		".L.L.#.#.#.#.",
		".............",
	)
	assert.Equal(t, 0, LineOfSight.Count(s.Grid(), 1, 1))

	s = mustGrid(t,
		".##.##.",
		"#.#.#.#",
		"##...##",
		"...L...",
		"##...##",
		"#.#.#.#",
		".##.##.",
	)
	assert.Equal(t, 0, LineOfSight.Count(s.Grid(), 3, 3))
	assert.Equal(t, 0, Adjacent.Count(s.Grid(), 3, 3))
}

func TestPoliciesDisagreeOnThreeNeighbours(t *testing.T) {
	// The centre seat has three occupied direct neighbours and sees five more
	// across the floor.
	s := mustGrid(t,
		".....",
		".###.",
		"#.#.#",
		".....",
		"#.#.#",
	)
	g := s.Grid()
	require.Equal(t, 3, Adjacent.Count(g, 2, 2))
	require.Equal(t, 8, LineOfSight.Count(g, 2, 2))

	adjacent, _ := s.Next(SeatRule(4))
	assert.Equal(t, Occupied, adjacent.(*Seating).Grid().At(2, 2))

	sight, _ := NewSeating(g, LineOfSight).Next(SeatRule(5))
	assert.Equal(t, Empty, sight.(*Seating).Grid().At(2, 2))
}

func TestRunLogsFixedPoint(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res, err := Run(mustGrid(t, "L.L"), Config{Rule: SeatRule(4), Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Population)
	assert.Equal(t, 1, res.Steps)
	assert.Contains(t, buf.String(), "automaton fixed point")
}
