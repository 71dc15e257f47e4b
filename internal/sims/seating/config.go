package seating

import (
	"strconv"

	"advent2020/internal/automaton"
)

// Config controls the generated layout shown by the viewer.
type Config struct {
	Width  int
	Height int

	// SeatDensity is the fraction of cells that hold a seat rather than floor.
	SeatDensity float64
	Policy      automaton.Policy
	Rule        automaton.Rule
}

// DefaultConfig returns the puzzle's line-of-sight setup on a 96x96 layout.
func DefaultConfig() Config {
	return Config{
		Width:       96,
		Height:      96,
		SeatDensity: 0.85,
		Policy:      automaton.LineOfSight,
		Rule:        automaton.SeatRule(5),
	}
}

// FromMap populates a Config from a string map. Selecting a policy also selects
// its threshold unless a rule is given explicitly.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SeatDensity = parsed
		}
	}
	switch cfg["policy"] {
	case automaton.Adjacent.Name:
		c.Policy = automaton.Adjacent
		c.Rule = automaton.SeatRule(4)
	case automaton.LineOfSight.Name:
		c.Policy = automaton.LineOfSight
		c.Rule = automaton.SeatRule(5)
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := automaton.ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	return c
}
