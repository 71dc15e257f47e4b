package automaton

import (
	"fmt"

	"advent2020/internal/core"
)

// Seat symbols as they appear in a layout.
const (
	Floor    uint8 = '.'
	Empty    uint8 = 'L'
	Occupied uint8 = '#'
)

// Compass lists the eight unit directions as (dx, dy) pairs.
var Compass = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Policy decides which seats count as a seat's neighbours. Along each of Dirs
// the walk skips floor and stops at the first seat, counting it when occupied.
// Reach bounds the walk length; zero walks to the grid edge.
type Policy struct {
	Name  string
	Dirs  [8][2]int
	Reach int
}

var (
	// Adjacent counts occupied seats among the eight surrounding cells.
	Adjacent = Policy{Name: "adjacent", Dirs: Compass, Reach: 1}
	// LineOfSight counts the first seat visible in each direction when it is
	// occupied.
	LineOfSight = Policy{Name: "sight", Dirs: Compass, Reach: 0}
)

// Count returns the number of occupied neighbours of (x, y) in g.
func (p Policy) Count(g *core.ByteGrid, x, y int) int {
	n := 0
	for _, d := range p.Dirs {
		cx, cy := x, y
		for step := 1; p.Reach == 0 || step <= p.Reach; step++ {
			cx += d[0]
			cy += d[1]
			if !g.InBounds(cx, cy) {
				break
			}
			c := g.At(cx, cy)
			if c == Occupied {
				n++
				break
			}
			if c == Empty {
				break
			}
		}
	}
	return n
}

// ParseGrid builds a seat grid from equally long lines of '.', 'L' and '#'.
func ParseGrid(lines []string) (*core.ByteGrid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrGrid)
	}
	w := len(lines[0])
	g := core.NewByteGrid(w, len(lines))
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrGrid, y, len(line), w)
		}
		for x := 0; x < w; x++ {
			c := line[x]
			switch c {
			case Floor, Empty, Occupied:
				g.Set(x, y, c)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrGrid, c, x, y)
			}
		}
	}
	return g, nil
}

// Seating is a bounded seat grid snapshot.
type Seating struct {
	grid   *core.ByteGrid
	policy Policy
}

// NewSeating returns a snapshot of g using policy to count neighbours. The grid
// is copied.
func NewSeating(g *core.ByteGrid, policy Policy) *Seating {
	return &Seating{grid: g.Clone(), policy: policy}
}

// Grid exposes the snapshot's cells. Callers must not modify it.
func (s *Seating) Grid() *core.ByteGrid { return s.grid }

// Population returns the number of occupied seats.
func (s *Seating) Population() int { return s.grid.Count(Occupied) }

// Next applies rule to every seat simultaneously. Floor never changes.
func (s *Seating) Next(rule Rule) (Space, bool) {
	g := s.grid
	next := g.Clone()
	changed := false
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			if c == Floor {
				continue
			}
			occupied := c == Occupied
			if rule.Next(occupied, s.policy.Count(g, x, y)) == occupied {
				continue
			}
			changed = true
			if occupied {
				next.Set(x, y, Empty)
			} else {
				next.Set(x, y, Occupied)
			}
		}
	}
	return &Seating{grid: next, policy: s.policy}, changed
}

// String renders the grid one row per line.
func (s *Seating) String() string {
	g := s.grid
	buf := make([]byte, 0, (g.W+1)*g.H)
	for y := 0; y < g.H; y++ {
		buf = append(buf, g.Cells()[g.Index(0, y):g.Index(0, y)+g.W]...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
