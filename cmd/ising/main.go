package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"ising-mc/internal/core"
	"ising-mc/internal/runner"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ising: ")

	opts, err := runner.Parse("ising", os.Args[1:], os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return
	case errors.Is(err, runner.ErrUsage):
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: ising [flags] [side]")
		os.Exit(2)
	case err != nil:
		log.Fatal(err)
	}

	if opts.Seed == 0 {
		opts.Seed = core.ClockSeed()
	}
	log.Printf("seed %d", opts.Seed)

	summary, err := runner.Run(os.Stdout, opts)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("accepted %d of %d attempts", summary.Accepted, summary.Steps)
}
