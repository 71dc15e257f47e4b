// Package cubes runs the pocket-dimension energy source: Conway's rule on a
// sparse lattice of three or four axes seeded from a 2D slice.
package cubes

import (
	"advent2020/internal/automaton"
	"advent2020/internal/input"
)

// BootCycles is the number of generations the boot process runs.
const BootCycles = 6

// Part1 counts active cubes after the boot cycles in three dimensions.
func Part1(lines []string) (int, error) {
	return boot(lines, 3)
}

// Part2 counts active cubes after the boot cycles in four dimensions.
func Part2(lines []string) (int, error) {
	return boot(lines, 4)
}

func boot(lines []string, dims int) (int, error) {
	plane, err := automaton.ParsePlane(input.NonBlank(lines))
	if err != nil {
		return 0, err
	}
	l, err := automaton.NewLattice(dims, plane)
	if err != nil {
		return 0, err
	}
	res, err := automaton.Run(l, automaton.Config{Rule: automaton.LifeRule(), Steps: BootCycles})
	if err != nil {
		return 0, err
	}
	return res.Population, nil
}
