package automaton

import (
	"fmt"
	"log/slog"
)

// DefaultMaxSteps bounds fixed-point runs when Config.MaxSteps is unset.
const DefaultMaxSteps = 1000

// Space is one snapshot of an automaton.
type Space interface {
	// Next derives the successor snapshot under rule without modifying the
	// receiver, and reports whether any cell changed state.
	Next(rule Rule) (Space, bool)
	// Population returns the number of active cells.
	Population() int
}

// RuleChecker is implemented by spaces that cannot run every rule.
type RuleChecker interface {
	CheckRule(rule Rule) error
}

// Config controls a Run.
type Config struct {
	Rule Rule

	// Steps runs exactly this many generations when positive. When zero the
	// run continues until a fixed point is reached.
	Steps int
	// MaxSteps bounds a fixed-point run. Zero means DefaultMaxSteps.
	MaxSteps int

	// Logger receives per-step diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// Result describes the final snapshot of a run.
type Result struct {
	Population int
	// Steps is the number of transitions applied. For fixed-point runs it
	// excludes the final transition that changed nothing.
	Steps     int
	Converged bool
	Final     Space
}

// Run advances s under cfg and reports the final population.
func Run(s Space, cfg Config) (Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Steps < 0 || cfg.MaxSteps < 0 {
		return Result{}, fmt.Errorf("%w: steps=%d max_steps=%d", ErrConfig, cfg.Steps, cfg.MaxSteps)
	}
	if rc, ok := s.(RuleChecker); ok {
		if err := rc.CheckRule(cfg.Rule); err != nil {
			return Result{}, err
		}
	}

	if cfg.Steps > 0 {
		cur := s
		for step := 1; step <= cfg.Steps; step++ {
			cur, _ = cur.Next(cfg.Rule)
			logger.Debug("automaton step", "rule", cfg.Rule.String(), "step", step, "population", cur.Population())
		}
		return Result{Population: cur.Population(), Steps: cfg.Steps, Final: cur}, nil
	}

	limit := cfg.MaxSteps
	if limit == 0 {
		limit = DefaultMaxSteps
	}
	cur := s
	for step := 0; step < limit; step++ {
		next, changed := cur.Next(cfg.Rule)
		if !changed {
			logger.Debug("automaton fixed point", "rule", cfg.Rule.String(), "steps", step, "population", cur.Population())
			return Result{Population: cur.Population(), Steps: step, Converged: true, Final: cur}, nil
		}
		cur = next
		logger.Debug("automaton step", "rule", cfg.Rule.String(), "step", step+1, "population", cur.Population())
	}
	logger.Warn("automaton did not converge", "rule", cfg.Rule.String(), "max_steps", limit)
	return Result{Population: cur.Population(), Steps: limit, Final: cur}, fmt.Errorf("%w (%d steps)", ErrNoFixedPoint, limit)
}
