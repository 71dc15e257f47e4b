// Package seating simulates passengers filling a waiting area until nobody
// wants to move.
package seating

import (
	"advent2020/internal/automaton"
	"advent2020/internal/input"
)

// Part1 counts occupied seats once the layout settles when people leave a seat
// with four or more occupied neighbours.
func Part1(lines []string) (int, error) {
	return settle(lines, automaton.Adjacent, automaton.SeatRule(4))
}

// Part2 counts occupied seats once the layout settles when people only look at
// the first seat in each direction and tolerate four occupied ones.
func Part2(lines []string) (int, error) {
	return settle(lines, automaton.LineOfSight, automaton.SeatRule(5))
}

func settle(lines []string, policy automaton.Policy, rule automaton.Rule) (int, error) {
	g, err := automaton.ParseGrid(input.NonBlank(lines))
	if err != nil {
		return 0, err
	}
	res, err := automaton.Run(automaton.NewSeating(g, policy), automaton.Config{Rule: rule})
	if err != nil {
		return 0, err
	}
	return res.Population, nil
}
