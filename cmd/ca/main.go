//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"advent2020/internal/app"
	"advent2020/internal/core"
	_ "advent2020/internal/sims/cubes"
	_ "advent2020/internal/sims/seating"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(cfg.Set)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.GPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("advent2020: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
