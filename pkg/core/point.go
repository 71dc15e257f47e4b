package core

import "golang.org/x/exp/constraints"

// Pt2 is a point or offset on a 2D integer plane.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// PtInt is the common int-valued point.
type PtInt = Pt2[int]

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{X: p.X + d.X, Y: p.Y + d.Y}
}

// Scale returns p multiplied component-wise by k.
func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{X: p.X * k, Y: p.Y * k}
}

// RotateRight turns p clockwise by quarter turns around the origin, with Y
// pointing north.
func (p Pt2[T]) RotateRight(quarters int) Pt2[T] {
	quarters = ((quarters % 4) + 4) % 4
	for range quarters {
		p = Pt2[T]{X: p.Y, Y: -p.X}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (p Pt2[T]) MDist(b Pt2[T]) T {
	return Abs(p.X-b.X) + Abs(p.Y-b.Y)
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sum adds all values.
func Sum[T constraints.Integer](vals []T) T {
	var total T
	for _, v := range vals {
		total += v
	}
	return total
}

// Product multiplies all values. The product of no values is 1.
func Product[T constraints.Integer](vals []T) T {
	total := T(1)
	for _, v := range vals {
		total *= v
	}
	return total
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// Mod returns a modulo m in the range [0, m).
func Mod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
