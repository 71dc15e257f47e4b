// Package customs tallies customs declaration answers per travel group.
package customs

import (
	"math/bits"

	"advent2020/internal/input"
)

// answers returns a bitset of the letters a-z in one person's line.
func answers(line string) uint32 {
	var set uint32
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			set |= 1 << (r - 'a')
		}
	}
	return set
}

// Anyone counts the questions at least one member of group answered.
func Anyone(group []string) int {
	var union uint32
	for _, line := range group {
		union |= answers(line)
	}
	return bits.OnesCount32(union)
}

// Everyone counts the questions every member of group answered.
func Everyone(group []string) int {
	if len(group) == 0 {
		return 0
	}
	all := ^uint32(0)
	for _, line := range group {
		all &= answers(line)
	}
	return bits.OnesCount32(all)
}

// Part1 sums Anyone over the blank-line separated groups.
func Part1(lines []string) int {
	return sum(lines, Anyone)
}

// Part2 sums Everyone over the blank-line separated groups.
func Part2(lines []string) int {
	return sum(lines, Everyone)
}

func sum(lines []string, f func([]string) int) int {
	n := 0
	for _, g := range input.Groups(lines) {
		n += f(g)
	}
	return n
}
