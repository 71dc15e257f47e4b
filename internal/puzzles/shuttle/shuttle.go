// Package shuttle works out bus departures from the shuttle schedule.
package shuttle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent2020/pkg/core"
)

// ErrMalformed indicates notes that are not an earliest time plus a comma
// separated bus list.
var ErrMalformed = errors.New("shuttle: malformed notes")

// ErrNoSolution indicates a schedule whose offsets can never line up.
var ErrNoSolution = errors.New("shuttle: no common departure")

// Bus is an in-service bus: its period and its position in the list.
type Bus struct {
	ID     int64
	Offset int64
}

// ParseSchedule reads a list like "7,13,x,x,59". Out-of-service entries are
// "x" and only advance the offset.
func ParseSchedule(s string) ([]Bus, error) {
	var buses []Bus
	for i, f := range strings.Split(strings.TrimSpace(s), ",") {
		if f == "x" {
			continue
		}
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: bus %q", ErrMalformed, f)
		}
		buses = append(buses, Bus{ID: id, Offset: int64(i)})
	}
	if len(buses) == 0 {
		return nil, fmt.Errorf("%w: no buses in service", ErrMalformed)
	}
	return buses, nil
}

// Parse reads the two-line notes: the earliest departure then the schedule.
func Parse(lines []string) (int64, []Bus, error) {
	if len(lines) < 2 {
		return 0, nil, fmt.Errorf("%w: want 2 lines, got %d", ErrMalformed, len(lines))
	}
	earliest, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	buses, err := ParseSchedule(lines[1])
	return earliest, buses, err
}

// Earliest returns the first bus departing at or after t and how long it
// takes to leave.
func Earliest(t int64, buses []Bus) (Bus, int64) {
	best, wait := buses[0], core.Mod(-t, buses[0].ID)
	for _, b := range buses[1:] {
		if w := core.Mod(-t, b.ID); w < wait {
			best, wait = b, w
		}
	}
	return best, wait
}

// Contest returns the earliest t at which every bus departs Offset minutes
// after t. IDs need not be coprime; offsets that can never line up give
// ErrNoSolution.
func Contest(buses []Bus) (int64, error) {
	t, step := int64(0), int64(1)
	for _, b := range buses {
		g := core.GCD(step, b.ID)
		// t cycles through every reachable residue mod b.ID within b.ID/g steps.
		for i := int64(0); (t+b.Offset)%b.ID != 0; i++ {
			if i >= b.ID/g {
				return 0, fmt.Errorf("%w: bus %d at offset %d", ErrNoSolution, b.ID, b.Offset)
			}
			t += step
		}
		step = step / g * b.ID
	}
	return t, nil
}

// Part1 returns the earliest bus ID times the wait for it.
func Part1(lines []string) (int64, error) {
	t, buses, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	b, wait := Earliest(t, buses)
	return b.ID * wait, nil
}

// Part2 solves Contest for the schedule line.
func Part2(lines []string) (int64, error) {
	_, buses, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return Contest(buses)
}
