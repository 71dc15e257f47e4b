// Package xmas attacks the XMAS cipher's preamble-sum property.
package xmas

import "advent2020/internal/input"

// Preamble is the window length used by the real data stream.
const Preamble = 25

// FirstInvalid returns the first number after the preamble that is not the
// sum of two numbers at different positions in the window before it.
func FirstInvalid(nums []int64, window int) (int64, bool) {
	for i := window; i < len(nums); i++ {
		if !pairSums(nums[i-window:i], nums[i]) {
			return nums[i], true
		}
	}
	return 0, false
}

func pairSums(window []int64, target int64) bool {
	for i, a := range window {
		for _, b := range window[i+1:] {
			if a+b == target {
				return true
			}
		}
	}
	return false
}

// Weakness finds a contiguous run of at least two numbers summing to target
// and returns the sum of its smallest and largest members.
func Weakness(nums []int64, target int64) (int64, bool) {
	for i := range nums {
		sum := nums[i]
		for j := i + 1; j < len(nums); j++ {
			sum += nums[j]
			if sum == target {
				lo, hi := nums[i], nums[i]
				for _, v := range nums[i : j+1] {
					lo, hi = min(lo, v), max(hi, v)
				}
				return lo + hi, true
			}
		}
	}
	return 0, false
}

// Part1 returns FirstInvalid over the given window, Preamble for real input.
func Part1(lines []string, window int) (int64, bool, error) {
	nums, err := input.Int64s(lines)
	if err != nil {
		return 0, false, err
	}
	v, ok := FirstInvalid(nums, window)
	return v, ok, nil
}

// Part2 returns the encryption weakness for the first invalid number.
func Part2(lines []string, window int) (int64, bool, error) {
	nums, err := input.Int64s(lines)
	if err != nil {
		return 0, false, err
	}
	target, ok := FirstInvalid(nums, window)
	if !ok {
		return 0, false, nil
	}
	v, ok := Weakness(nums, target)
	return v, ok, nil
}
