//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"advent2020/internal/core"
	"advent2020/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type populator interface {
	Population() int
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	pace    *core.FixedStep

	scale      int
	paused     bool
	tickOnce   bool
	seed       int64
	generation int
}

// New constructs a Game for the provided simulation stepping gps
// generations per second.
func New(sim core.Sim, scale, gps int, seed int64) *Game {
	pal := render.BinaryPalette(color.White, color.Black)
	if pp, ok := sim.(core.PaletteProvider); ok {
		pal = pp.Palette()
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		palette: pal,
		pace:    core.NewFixedStep(gps),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.generation = 0
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if (!g.paused && g.pace.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state with a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	status := fmt.Sprintf("%s gen %d", g.sim.Name(), g.generation)
	if p, ok := g.sim.(populator); ok {
		status += fmt.Sprintf(" pop %d", p.Population())
	}
	if g.paused {
		status += " [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
