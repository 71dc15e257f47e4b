// Package expense finds the expense report entries that sum to a target.
package expense

import "advent2020/internal/input"

// Target is the sum the report entries must reach.
const Target = 2020

// FindPair returns the product of two entries at distinct indices summing to
// target. ok is false when no such pair exists.
func FindPair(nums []int, target int) (product int, ok bool) {
	seen := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		if _, hit := seen[target-v]; hit {
			return v * (target - v), true
		}
		seen[v] = struct{}{}
	}
	return 0, false
}

// FindTriple returns the product of three entries at distinct indices summing
// to target. ok is false when no such triple exists.
func FindTriple(nums []int, target int) (product int, ok bool) {
	for i := 0; i < len(nums)-2; i++ {
		seen := make(map[int]struct{})
		rest := target - nums[i]
		for j := i + 1; j < len(nums); j++ {
			if _, hit := seen[rest-nums[j]]; hit {
				return nums[i] * nums[j] * (rest - nums[j]), true
			}
			seen[nums[j]] = struct{}{}
		}
	}
	return 0, false
}

// Part1 parses one entry per line and solves FindPair for Target.
func Part1(lines []string) (int, bool, error) {
	nums, err := input.Ints(lines)
	if err != nil {
		return 0, false, err
	}
	p, ok := FindPair(nums, Target)
	return p, ok, nil
}

// Part2 parses one entry per line and solves FindTriple for Target.
func Part2(lines []string) (int, bool, error) {
	nums, err := input.Ints(lines)
	if err != nil {
		return 0, false, err
	}
	p, ok := FindTriple(nums, Target)
	return p, ok, nil
}
