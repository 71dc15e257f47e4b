package core

import "math/rand/v2"

// RNG wraps math/rand/v2 with deterministic seeding for generated layouts.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Plane returns a w*h boolean plane where each cell is set with probability
// density.
func (r *RNG) Plane(w, h int, density float64) [][]bool {
	plane := make([][]bool, h)
	for y := range plane {
		row := make([]bool, w)
		for x := range row {
			row[x] = r.Chance(density)
		}
		plane[y] = row
	}
	return plane
}
