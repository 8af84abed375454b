package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"ising-mc/internal/sims/ising"
	"ising-mc/internal/sweep"
)

func main() {
	base := ising.DefaultConfig()
	side := flag.Int("side", 32, "lattice side length")
	tmin := flag.Float64("tmin", 0.5, "lowest temperature")
	tmax := flag.Float64("tmax", 4.0, "highest temperature")
	points := flag.Int("n", 8, "number of temperatures")
	sweeps := flag.Int("sweeps", 500, "lattice sweeps per temperature")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	format := flag.String("format", "table", "output format: table or yaml")
	flag.Int64Var(&base.Seed, "seed", 1337, "seed of the first run; run i uses seed+i")
	flag.Float64Var(&base.Params.Coupling, "coupling", base.Params.Coupling, "coupling parameter J")
	flag.Float64Var(&base.Params.Field, "field", base.Params.Field, "external field strength h")
	flag.Parse()

	if *side <= 0 || *points <= 0 {
		log.Fatalf("side and n must be positive")
	}
	base.Width, base.Height = *side, *side

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("sweeping %d temperatures in [%g, %g] on a %dx%d lattice", *points, *tmin, *tmax, *side, *side)
	start := time.Now()
	results, err := sweep.Run(ctx, sweep.Options{
		Base:         base,
		Temperatures: sweep.Linspace(*tmin, *tmax, *points),
		Sweeps:       *sweeps,
		Workers:      *workers,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("finished in %s", time.Since(start).Round(time.Millisecond))

	switch *format {
	case "yaml":
		err = sweep.WriteYAML(os.Stdout, results)
	case "table":
		err = sweep.WriteTable(os.Stdout, results)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatal(err)
	}
}
