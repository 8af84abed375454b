// Package ising drives a 2D Ising lattice with single-spin-flip Metropolis
// updates.
package ising

import (
	"fmt"
	"image/color"
	"math"

	"ising-mc/internal/core"
	"ising-mc/internal/lattice"
)

// Rand is the random source consumed by the simulation. Site selection,
// initial spins and acceptance tests all draw from the same instance.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Move records the outcome of one Metropolis attempt.
type Move struct {
	X, Y     int
	DeltaE   float64
	Accepted bool
}

// Observables is an instantaneous measurement of the lattice.
type Observables struct {
	Magnetisation        float64 `yaml:"magnetisation"`
	MagnetisationSquared float64 `yaml:"magnetisation_squared"`
	Energy               float64 `yaml:"energy"`
	EnergySquared        float64 `yaml:"energy_squared"`
}

// Simulation owns a lattice together with its random source and parameters.
type Simulation struct {
	cfg  Config
	rnd  Rand
	lat  *lattice.Lattice
	beta float64

	steps    int
	accepted int
	cells    []uint8
}

// DeltaE returns the energy change of flipping the spin at (x, y):
// 2·J·s·Σneighbours + 2·h·s.
func DeltaE(l *lattice.Lattice, x, y int, c lattice.Coupling) float64 {
	s := float64(l.Get(x, y))
	return 2*c.J*s*float64(l.NeighbourSum(x, y)) + 2*c.H*s
}

// Accept applies the Metropolis criterion. Moves lowering the energy are
// always taken; otherwise one uniform draw is compared against exp(−ΔE·β).
// At zero temperature (β = +Inf) no draw is made and the move is rejected.
func Accept(deltaE, beta float64, rnd Rand) bool {
	if deltaE < 0 {
		return true
	}
	if math.IsInf(beta, 1) {
		return false
	}
	return rnd.Float64() < math.Exp(-deltaE*beta)
}

// New builds a simulation with a freshly randomised lattice drawn from rnd.
func New(cfg Config, rnd Rand) (*Simulation, error) {
	lat, err := lattice.New(cfg.Height, cfg.Width, rnd)
	if err != nil {
		return nil, fmt.Errorf("ising: %w", err)
	}
	return WithLattice(cfg, lat, rnd), nil
}

// WithLattice wraps an existing lattice. The lattice dimensions override
// those in cfg.
func WithLattice(cfg Config, lat *lattice.Lattice, rnd Rand) *Simulation {
	cfg.Width = lat.Width()
	cfg.Height = lat.Height()
	return &Simulation{cfg: cfg, rnd: rnd, lat: lat, beta: cfg.Params.Beta()}
}

// NewWithConfig builds a simulation seeded from cfg.Seed, falling back to the
// clock when the seed is zero.
func NewWithConfig(cfg Config) (*Simulation, error) {
	if cfg.Seed == 0 {
		cfg.Seed = core.ClockSeed()
	}
	return New(cfg, core.NewRNG(cfg.Seed))
}

// Attempt performs one Metropolis step: pick a site uniformly, compute the
// flip energy, and flip it if accepted.
func (s *Simulation) Attempt() Move {
	x := s.rnd.IntN(s.lat.Width())
	y := s.rnd.IntN(s.lat.Height())
	m := Move{X: x, Y: y, DeltaE: DeltaE(s.lat, x, y, s.cfg.Params.Hamiltonian())}
	m.Accepted = Accept(m.DeltaE, s.beta, s.rnd)
	if m.Accepted {
		s.lat.Flip(x, y)
		s.accepted++
	}
	s.steps++
	return m
}

// Sweep performs one attempt per lattice site on average.
func (s *Simulation) Sweep() {
	for i := 0; i < s.lat.Len(); i++ {
		s.Attempt()
	}
}

// Lattice exposes the simulated lattice.
func (s *Simulation) Lattice() *lattice.Lattice { return s.lat }

// Config returns the active configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Steps returns the number of attempts since the last reset.
func (s *Simulation) Steps() int { return s.steps }

// Accepted returns the number of accepted flips since the last reset.
func (s *Simulation) Accepted() int { return s.accepted }

// Observables measures the current lattice.
func (s *Simulation) Observables() Observables {
	c := s.cfg.Params.Hamiltonian()
	return Observables{
		Magnetisation:        s.lat.Magnetisation(),
		MagnetisationSquared: s.lat.MagnetisationSquared(),
		Energy:               s.lat.Energy(c),
		EnergySquared:        s.lat.EnergySquared(c),
	}
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "ising" }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size {
	return core.Size{W: s.lat.Width(), H: s.lat.Height()}
}

// Step performs a single Metropolis attempt.
func (s *Simulation) Step() { s.Attempt() }

// Cells exposes the display encoding of the lattice.
func (s *Simulation) Cells() []uint8 {
	s.cells = s.lat.Cells(s.cells)
	return s.cells
}

// Reset draws a new lattice from a generator seeded with seed. A zero seed
// reuses the configured one.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	if seed == 0 {
		seed = core.ClockSeed()
	}
	s.cfg.Seed = seed
	rng := core.NewRNG(seed)
	lat, err := lattice.New(s.cfg.Height, s.cfg.Width, rng)
	if err != nil {
		// Dimensions come from an existing lattice and are always positive.
		panic(err)
	}
	s.rnd = rng
	s.lat = lat
	s.steps = 0
	s.accepted = 0
}

var isingPalette = []color.RGBA{
	{R: 20, G: 24, B: 48, A: 255},
	{R: 235, G: 225, B: 200, A: 255},
	{R: 255, G: 0, B: 64, A: 255},
}

// Palette maps Cells values (down, up, invalid) to colours.
func (s *Simulation) Palette() []color.RGBA { return isingPalette }

func init() {
	core.Register("ising", func(cfg map[string]string) core.Sim {
		sim, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil
		}
		return sim
	})
}
