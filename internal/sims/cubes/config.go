package cubes

import (
	"strconv"

	"advent2020/internal/automaton"
)

// Config controls the viewer's lattice: the visible window on the z=w=0 plane
// and the random seed patch in its centre.
type Config struct {
	Width  int
	Height int

	Dims     int
	SeedSize int
	Density  float64
	Rule     automaton.Rule
}

// DefaultConfig returns a 4-axis lattice viewed through a 128x128 window.
func DefaultConfig() Config {
	return Config{
		Width:    128,
		Height:   128,
		Dims:     4,
		SeedSize: 8,
		Density:  0.4,
		Rule:     automaton.LifeRule(),
	}
}

// FromMap populates a Config from a string map.
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
	if v, ok := cfg["dims"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 && parsed <= automaton.MaxDims {
			c.Dims = parsed
		}
	}
	if v, ok := cfg["seed_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SeedSize = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := automaton.ParseRule(v); err == nil && !parsed.Birth.Has(0) {
			c.Rule = parsed
		}
	}
	return c
}
