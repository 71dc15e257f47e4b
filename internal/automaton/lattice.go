package automaton

import (
	"cmp"
	"fmt"
	"slices"
)

// MaxDims is the largest supported number of lattice axes.
const MaxDims = 4

// Point is a lattice coordinate. Axes beyond the lattice's dimensions are zero.
type Point [MaxDims]int

func (p Point) add(d Point) Point {
	for i := range p {
		p[i] += d[i]
	}
	return p
}

// MooreOffsets returns every offset vector with components in {-1, 0, 1} over
// the first dims axes, excluding the zero vector: 3^dims - 1 offsets.
func MooreOffsets(dims int) []Point {
	offsets := []Point{{}}
	for axis := 0; axis < dims; axis++ {
		grown := make([]Point, 0, len(offsets)*3)
		for _, o := range offsets {
			for d := -1; d <= 1; d++ {
				o[axis] = d
				grown = append(grown, o)
			}
		}
		offsets = grown
	}
	return slices.DeleteFunc(offsets, func(p Point) bool { return p == Point{} })
}

// ParsePlane reads a 2D seed of '#' (active) and '.' (inactive) rows.
func ParsePlane(lines []string) ([][]bool, error) {
	plane := make([][]bool, 0, len(lines))
	for y, line := range lines {
		row := make([]bool, len(line))
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
				row[x] = true
			case '.':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrGrid, line[x], x, y)
			}
		}
		plane = append(plane, row)
	}
	return plane, nil
}

// Lattice is a sparse snapshot holding only active cells. Every other
// coordinate is implicitly inactive.
type Lattice struct {
	dims    int
	offsets []Point
	active  map[Point]struct{}
}

// NewLattice embeds plane at zero on every axis past the second. plane[y][x]
// seeds the cell (x, y, 0, ...).
func NewLattice(dims int, plane [][]bool) (*Lattice, error) {
	if dims < 2 || dims > MaxDims {
		return nil, fmt.Errorf("%w: %d axes, want 2..%d", ErrDims, dims, MaxDims)
	}
	l := &Lattice{dims: dims, offsets: MooreOffsets(dims), active: make(map[Point]struct{})}
	for y, row := range plane {
		for x, on := range row {
			if on {
				l.active[Point{x, y}] = struct{}{}
			}
		}
	}
	return l, nil
}

// Dims returns the number of axes.
func (l *Lattice) Dims() int { return l.dims }

// Population returns the number of active cells.
func (l *Lattice) Population() int { return len(l.active) }

// Active reports whether p is active.
func (l *Lattice) Active(p Point) bool {
	_, ok := l.active[p]
	return ok
}

// Points returns the active cells in ascending coordinate order.
func (l *Lattice) Points() []Point {
	pts := make([]Point, 0, len(l.active))
	for p := range l.active {
		pts = append(pts, p)
	}
	slices.SortFunc(pts, func(a, b Point) int {
		for i := MaxDims - 1; i >= 0; i-- {
			if c := cmp.Compare(a[i], b[i]); c != 0 {
				return c
			}
		}
		return 0
	})
	return pts
}

// CheckRule rejects rules that would activate cells with no active neighbours,
// since those cells are never materialised.
func (l *Lattice) CheckRule(rule Rule) error {
	if rule.Birth.Has(0) {
		return fmt.Errorf("%w: %s", ErrUnboundedBirth, rule)
	}
	return nil
}

// Next counts active neighbours for every active cell and every neighbour of
// one, then keeps the cells rule marks active.
func (l *Lattice) Next(rule Rule) (Space, bool) {
	counts := make(map[Point]int, len(l.active)*len(l.offsets))
	for p := range l.active {
		for _, d := range l.offsets {
			counts[p.add(d)]++
		}
	}

	next := make(map[Point]struct{}, len(l.active))
	for p, n := range counts {
		_, on := l.active[p]
		if rule.Next(on, n) {
			next[p] = struct{}{}
		}
	}
	// Isolated active cells never appear in counts.
	for p := range l.active {
		if _, seen := counts[p]; !seen && rule.Next(true, 0) {
			next[p] = struct{}{}
		}
	}

	changed := len(next) != len(l.active)
	if !changed {
		for p := range next {
			if _, ok := l.active[p]; !ok {
				changed = true
				break
			}
		}
	}
	return &Lattice{dims: l.dims, offsets: l.offsets, active: next}, changed
}

// Window renders the plane at zero on all extra axes for x in [x0, x0+w) and
// y in [y0, y0+h), one byte per cell (1 active, 0 inactive).
func (l *Lattice) Window(x0, y0, w, h int) []uint8 {
	cells := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if l.Active(Point{x0 + x, y0 + y}) {
				cells[y*w+x] = 1
			}
		}
	}
	return cells
}
