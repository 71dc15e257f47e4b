package automaton

import "errors"

var (
	// ErrRule indicates a rule string that is not in B<digits>/S<digits> form.
	ErrRule = errors.New("automaton: malformed rule")
	// ErrGrid indicates an empty, ragged or unrecognised seat layout.
	ErrGrid = errors.New("automaton: malformed grid")
	// ErrDims indicates an unsupported number of lattice axes.
	ErrDims = errors.New("automaton: unsupported dimensions")
	// ErrUnboundedBirth indicates a rule that would activate infinitely many
	// cells of an unbounded lattice.
	ErrUnboundedBirth = errors.New("automaton: birth on zero neighbours in unbounded space")
	// ErrNoFixedPoint indicates the step budget ran out before two consecutive
	// snapshots matched.
	ErrNoFixedPoint = errors.New("automaton: no fixed point within step budget")
	// ErrConfig indicates invalid run parameters.
	ErrConfig = errors.New("automaton: invalid config")
)
