// Package runner implements the console driver: it advances a Metropolis
// simulation for a fixed number of steps and periodically prints the lattice
// and its magnetisation.
package runner

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"ising-mc/internal/sims/ising"
)

const (
	banner = "Welcome to Ising Monte Carlo"
	done   = "Done. Cleaning up."
)

// Summary describes a finished run.
type Summary struct {
	Seed     int64
	Steps    int
	Accepted int
	Final    ising.Observables
}

// Parse builds Options from command-line arguments. When -config names a
// file, its values are applied first and flags given explicitly on the
// command line override them. flag.ErrHelp is returned unwrapped.
func Parse(name string, args []string, stderr io.Writer) (*Options, error) {
	opts := NewOptions()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [side]\n", name)
		fs.PrintDefaults()
	}
	opts.Bind(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if opts.ConfigFile != "" {
		merged := NewOptions()
		if err := merged.LoadFile(opts.ConfigFile); err != nil {
			return nil, err
		}
		overrides := flag.NewFlagSet(name, flag.ContinueOnError)
		merged.Bind(overrides)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if err := overrides.Set(f.Name, f.Value.String()); err != nil && setErr == nil {
				setErr = err
			}
		})
		if setErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrUsage, setErr)
		}
		opts = merged
	}

	if err := opts.ApplyArgs(fs.Args()); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Run executes the simulation described by opts, writing the banner, the
// periodic lattice snapshots and magnetisation values, and a completion line
// to w.
func Run(w io.Writer, opts *Options) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}
	sim, err := ising.NewWithConfig(opts.Config())
	if err != nil {
		return Summary{}, err
	}

	out := bufio.NewWriter(w)
	fmt.Fprintln(out, banner)
	fmt.Fprintf(out, "Making a grid of %d per side\n", opts.Side)

	lat := sim.Lattice()
	for step := 0; step < opts.Steps; step++ {
		sim.Step()
		if due(step, opts.StepsPerOutput) {
			if _, err := lat.WriteTo(out); err != nil {
				return Summary{}, err
			}
			if err := out.WriteByte('\n'); err != nil {
				return Summary{}, err
			}
		}
		if due(step, opts.StepsPerCalculate) {
			if _, err := out.WriteString(FormatValue(lat.Magnetisation()) + "\n"); err != nil {
				return Summary{}, err
			}
		}
	}
	fmt.Fprintln(out, done)
	if err := out.Flush(); err != nil {
		return Summary{}, err
	}

	return Summary{
		Seed:     sim.Config().Seed,
		Steps:    sim.Steps(),
		Accepted: sim.Accepted(),
		Final:    sim.Observables(),
	}, nil
}

// FormatValue prints an observable with six significant digits.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func due(step, every int) bool {
	return every > 0 && step%every == 0
}
