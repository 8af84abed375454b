//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ising-mc/internal/app"
	"ising-mc/internal/core"
	_ "ising-mc/internal/sims/ising"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Side <= 0 || cfg.Scale <= 0 {
		log.Fatalf("side and scale must be positive")
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	if sim == nil {
		log.Fatalf("sim %q could not be constructed", cfg.Sim)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("ising-mc: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
