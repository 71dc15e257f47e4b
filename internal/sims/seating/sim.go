package seating

import (
	"image/color"

	"advent2020/internal/automaton"
	"advent2020/internal/core"
	pcore "advent2020/pkg/core"
)

var palette = buildPalette()

func buildPalette() []color.RGBA {
	p := make([]color.RGBA, 256)
	p[automaton.Floor] = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	p[automaton.Empty] = color.RGBA{R: 70, G: 110, B: 160, A: 255}
	p[automaton.Occupied] = color.RGBA{R: 240, G: 200, B: 90, A: 255}
	return p
}

// Sim steps a generated seat layout one generation at a time.
type Sim struct {
	cfg   Config
	space *automaton.Seating
}

// New returns a viewer sim for cfg. Call Reset before stepping.
func New(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "seating-" + s.cfg.Policy.Name }

// Size returns the layout dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the current layout bytes ('.', 'L', '#').
func (s *Sim) Cells() []uint8 { return s.space.Grid().Cells() }

// Palette maps seat symbols to colours.
func (s *Sim) Palette() []color.RGBA { return palette }

// Population returns the number of occupied seats.
func (s *Sim) Population() int { return s.space.Population() }

// Reset generates an empty layout from seed.
func (s *Sim) Reset(seed int64) {
	rng := pcore.NewRNG(seed)
	g := core.NewByteGrid(s.cfg.Width, s.cfg.Height)
	cells := g.Cells()
	for i := range cells {
		cells[i] = automaton.Floor
		if rng.Chance(s.cfg.SeatDensity) {
			cells[i] = automaton.Empty
		}
	}
	s.space = automaton.NewSeating(g, s.cfg.Policy)
}

// Step advances one generation. A settled layout stays as it is.
func (s *Sim) Step() {
	next, changed := s.space.Next(s.cfg.Rule)
	if changed {
		s.space = next.(*automaton.Seating)
	}
}

func init() {
	core.Register("seating", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
