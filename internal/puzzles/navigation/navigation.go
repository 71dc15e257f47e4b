// Package navigation steers the ferry through its action list.
package navigation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent2020/pkg/core"
)

// ErrMalformed indicates an unknown action, a bad value, or a turn that is
// not a multiple of 90 degrees.
var ErrMalformed = errors.New("navigation: malformed instruction")

// Instr is one action and its value.
type Instr struct {
	Action byte
	Value  int
}

var compass = map[byte]core.PtInt{
	'N': {X: 0, Y: 1},
	'S': {X: 0, Y: -1},
	'E': {X: 1, Y: 0},
	'W': {X: -1, Y: 0},
}

// Parse decodes lines like "F10" and "R90".
func Parse(lines []string) ([]Instr, error) {
	var out []Instr
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		in := Instr{Action: line[0]}
		v, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrMalformed, i+1, line, err)
		}
		in.Value = v
		switch in.Action {
		case 'N', 'S', 'E', 'W', 'F':
		case 'L', 'R':
			if v%90 != 0 {
				return nil, fmt.Errorf("%w: line %d: turn of %d degrees", ErrMalformed, i+1, v)
			}
		default:
			return nil, fmt.Errorf("%w: line %d: unknown action %q", ErrMalformed, i+1, in.Action)
		}
		out = append(out, in)
	}
	return out, nil
}

func quarters(in Instr) int {
	if in.Action == 'L' {
		return -in.Value / 90
	}
	return in.Value / 90
}

// Sail follows the actions with the ship moving along its own heading,
// starting east, and returns the final position.
func Sail(prog []Instr) core.PtInt {
	var ship core.PtInt
	heading := compass['E']
	for _, in := range prog {
		switch in.Action {
		case 'L', 'R':
			heading = heading.RotateRight(quarters(in))
		case 'F':
			ship = ship.Add(heading.Scale(in.Value))
		default:
			ship = ship.Add(compass[in.Action].Scale(in.Value))
		}
	}
	return ship
}

// Waypoint follows the actions with compass moves and turns applied to a
// waypoint, starting 10 east 1 north of the ship, and returns the final ship
// position.
func Waypoint(prog []Instr) core.PtInt {
	var ship core.PtInt
	wp := core.PtInt{X: 10, Y: 1}
	for _, in := range prog {
		switch in.Action {
		case 'L', 'R':
			wp = wp.RotateRight(quarters(in))
		case 'F':
			ship = ship.Add(wp.Scale(in.Value))
		default:
			wp = wp.Add(compass[in.Action].Scale(in.Value))
		}
	}
	return ship
}

// Part1 returns the Manhattan distance travelled by Sail.
func Part1(lines []string) (int, error) {
	return distance(lines, Sail)
}

// Part2 returns the Manhattan distance travelled by Waypoint.
func Part2(lines []string) (int, error) {
	return distance(lines, Waypoint)
}

func distance(lines []string, nav func([]Instr) core.PtInt) (int, error) {
	prog, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return nav(prog).MDist(core.PtInt{}), nil
}
