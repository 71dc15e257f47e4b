// Package boarding decodes binary space partitioned boarding passes.
package boarding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed indicates a pass that is not 7 row letters then 3 column
	// letters.
	ErrMalformed = errors.New("boarding: malformed pass")
)

const (
	rowBits = 7
	colBits = 3
)

// partition narrows [lo, lo+span) once per letter of code starting at pos,
// taking the lower half on lower and the upper half on upper. It returns the
// chosen value and the position after the consumed letters.
func partition(code string, pos, lo, span int, lower, upper byte) (int, int, error) {
	if span == 1 {
		return lo, pos, nil
	}
	if pos >= len(code) {
		return 0, pos, fmt.Errorf("%w: %q: too short", ErrMalformed, code)
	}
	half := span / 2
	switch code[pos] {
	case lower:
	case upper:
		lo += half
	default:
		return 0, pos, fmt.Errorf("%w: %q: unexpected %q at %d", ErrMalformed, code, code[pos], pos)
	}
	return partition(code, pos+1, lo, half, lower, upper)
}

// Decode returns the row and column of a pass such as "FBFBBFFRLR".
func Decode(code string) (row, col int, err error) {
	if len(code) != rowBits+colBits {
		return 0, 0, fmt.Errorf("%w: %q: want %d letters", ErrMalformed, code, rowBits+colBits)
	}
	row, pos, err := partition(code, 0, 0, 1<<rowBits, 'F', 'B')
	if err != nil {
		return 0, 0, err
	}
	col, _, err = partition(code, pos, 0, 1<<colBits, 'L', 'R')
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// SeatID returns row*8 + column for a pass.
func SeatID(code string) (int, error) {
	row, col, err := Decode(code)
	if err != nil {
		return 0, err
	}
	return row*8 + col, nil
}

func seatIDs(lines []string) ([]int, error) {
	var ids []int
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, err := SeatID(line)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Part1 returns the highest seat ID. ok is false when there are no passes.
func Part1(lines []string) (int, bool, error) {
	ids, err := seatIDs(lines)
	if err != nil || len(ids) == 0 {
		return 0, false, err
	}
	best := ids[0]
	for _, id := range ids[1:] {
		best = max(best, id)
	}
	return best, true, nil
}

// Part2 returns the one seat ID missing between the lowest and highest
// scanned IDs. ok is false when there is no gap.
func Part2(lines []string) (int, bool, error) {
	ids, err := seatIDs(lines)
	if err != nil {
		return 0, false, err
	}
	id, ok := Missing(ids)
	return id, ok, nil
}

// Missing returns the first ID absent from ids that lies strictly between
// its minimum and maximum.
func Missing(ids []int) (int, bool) {
	if len(ids) < 2 {
		return 0, false
	}
	seen := make(map[int]struct{}, len(ids))
	lo, hi := ids[0], ids[0]
	for _, id := range ids {
		seen[id] = struct{}{}
		lo, hi = min(lo, id), max(hi, id)
	}
	for id := lo + 1; id < hi; id++ {
		if _, ok := seen[id]; !ok {
			return id, true
		}
	}
	return 0, false
}
