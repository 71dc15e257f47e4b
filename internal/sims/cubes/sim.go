package cubes

import (
	"strconv"

	"advent2020/internal/automaton"
	"advent2020/internal/core"
	pcore "advent2020/pkg/core"
)

// Sim shows the origin plane of a growing lattice.
type Sim struct {
	cfg     Config
	lattice *automaton.Lattice
}

// New returns a viewer sim for cfg seeded with seed 0.
func New(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "cubes-" + strconv.Itoa(s.cfg.Dims) + "d" }

// Size returns the window dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Population returns the number of active cells across all planes.
func (s *Sim) Population() int { return s.lattice.Population() }

// Cells renders the window centred on the seed patch (1 active, 0 inactive).
func (s *Sim) Cells() []uint8 {
	half := s.cfg.SeedSize / 2
	return s.lattice.Window(half-s.cfg.Width/2, half-s.cfg.Height/2, s.cfg.Width, s.cfg.Height)
}

// Reset seeds a random square patch with its corner at the origin.
func (s *Sim) Reset(seed int64) {
	plane := pcore.NewRNG(seed).Plane(s.cfg.SeedSize, s.cfg.SeedSize, s.cfg.Density)
	l, err := automaton.NewLattice(s.cfg.Dims, plane)
	if err != nil {
		l, _ = automaton.NewLattice(DefaultConfig().Dims, plane)
	}
	s.lattice = l
}

// Step advances one generation.
func (s *Sim) Step() {
	next, _ := s.lattice.Next(s.cfg.Rule)
	s.lattice = next.(*automaton.Lattice)
}

func init() {
	core.Register("cubes", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
