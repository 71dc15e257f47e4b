// Package adapters chains joltage adapters from the outlet to the device.
package adapters

import (
	"errors"
	"fmt"
	"slices"

	"advent2020/internal/input"
)

// MaxGap is the largest joltage step one adapter accepts.
const MaxGap = 3

var (
	// ErrGap indicates two consecutive adapters more than MaxGap apart.
	ErrGap = errors.New("adapters: joltage gap too large")
	// ErrRating indicates an adapter rated below the outlet.
	ErrRating = errors.New("adapters: negative joltage rating")
)

// chain returns the outlet (0), the sorted adapters and the device
// (highest + MaxGap).
func chain(nums []int) []int {
	out := make([]int, 0, len(nums)+2)
	out = append(out, 0)
	out = append(out, nums...)
	slices.Sort(out[1:])
	return append(out, out[len(out)-1]+MaxGap)
}

// Gaps counts the 1-, 2- and 3-jolt differences along the full chain.
func Gaps(nums []int) ([MaxGap + 1]int, error) {
	var counts [MaxGap + 1]int
	c := chain(nums)
	for i := 1; i < len(c); i++ {
		d := c[i] - c[i-1]
		if c[i] < 0 {
			return counts, fmt.Errorf("%w: %d", ErrRating, c[i])
		}
		if d > MaxGap {
			return counts, fmt.Errorf("%w: %d to %d", ErrGap, c[i-1], c[i])
		}
		counts[d]++
	}
	return counts, nil
}

// Arrangements counts the distinct adapter subsets that still connect the
// outlet to the device.
func Arrangements(nums []int) int {
	c := chain(nums)
	ways := make([]int, len(c))
	ways[0] = 1
	for i := 1; i < len(c); i++ {
		for j := i - 1; j >= 0 && c[i]-c[j] <= MaxGap; j-- {
			ways[i] += ways[j]
		}
	}
	return ways[len(c)-1]
}

// Part1 multiplies the 1-jolt and 3-jolt difference counts.
func Part1(lines []string) (int, error) {
	nums, err := input.Ints(lines)
	if err != nil {
		return 0, err
	}
	g, err := Gaps(nums)
	if err != nil {
		return 0, err
	}
	return g[1] * g[3], nil
}

// Part2 counts the valid arrangements.
func Part2(lines []string) (int, error) {
	nums, err := input.Ints(lines)
	if err != nil {
		return 0, err
	}
	if _, err := Gaps(nums); err != nil {
		return 0, err
	}
	return Arrangements(nums), nil
}
