// Package lattice stores Ising spins on a periodic H×W grid and computes the
// instantaneous thermodynamic observables of a configuration.
package lattice

import (
	"errors"
	"fmt"

	"ising-mc/internal/core"
)

// Spin is the state of a single site.
type Spin int8

// Up and Down are the two Ising states.
const (
	Up   Spin = 1
	Down Spin = -1
)

// Valid reports whether s is one of the two Ising states.
func (s Spin) Valid() bool { return s == Up || s == Down }

var (
	// ErrInvalidSize is returned for lattices with a non-positive dimension.
	ErrInvalidSize = errors.New("lattice: height and width must be positive")
	// ErrInvalidSpin is returned when a spin pattern contains a value other than ±1.
	ErrInvalidSpin = errors.New("lattice: spin must be +1 or -1")
)

// Uniform is the random source used to draw initial spins.
type Uniform interface {
	Float64() float64
}

// Coupling carries the Hamiltonian constants: J couples nearest neighbours
// and H is the external field strength.
type Coupling struct {
	J float64
	H float64
}

// Lattice is an H×W torus of spins. Coordinates are (x, y) with x the column
// in [0, W) and y the row in [0, H); anything else wraps.
type Lattice struct {
	torus core.Torus
	spins []Spin
}

// New builds an h×w lattice, assigning every site independently with a fair
// coin drawn from rnd.
func New(h, w int, rnd Uniform) (*Lattice, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, h, w)
	}
	l := &Lattice{torus: core.NewTorus(w, h), spins: make([]Spin, h*w)}
	for i := range l.spins {
		if rnd.Float64() < 0.5 {
			l.spins[i] = Up
		} else {
			l.spins[i] = Down
		}
	}
	return l, nil
}

// FromSpins builds an h×w lattice from a row-major spin pattern. The pattern
// is copied.
func FromSpins(h, w int, spins []Spin) (*Lattice, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, h, w)
	}
	if len(spins) != h*w {
		return nil, fmt.Errorf("lattice: pattern has %d spins, expected %d", len(spins), h*w)
	}
	for i, s := range spins {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: site %d holds %d", ErrInvalidSpin, i, s)
		}
	}
	return &Lattice{torus: core.NewTorus(w, h), spins: append([]Spin(nil), spins...)}, nil
}

// Uniformly returns an h×w lattice with every site set to s.
func Uniformly(h, w int, s Spin) (*Lattice, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, h, w)
	}
	spins := make([]Spin, h*w)
	for i := range spins {
		spins[i] = s
	}
	return FromSpins(h, w, spins)
}

// Height returns the number of rows.
func (l *Lattice) Height() int { return l.torus.H }

// Width returns the number of columns.
func (l *Lattice) Width() int { return l.torus.W }

// Len returns the number of sites.
func (l *Lattice) Len() int { return len(l.spins) }

// Spins returns a copy of the row-major spin slice.
func (l *Lattice) Spins() []Spin { return append([]Spin(nil), l.spins...) }

// Get returns the spin at (x, y) after periodic wrapping.
func (l *Lattice) Get(x, y int) Spin {
	return l.spins[l.torus.WrapIndex(x, y)]
}

// Flip negates the spin at (x, y) after periodic wrapping.
func (l *Lattice) Flip(x, y int) {
	idx := l.torus.WrapIndex(x, y)
	l.spins[idx] = -l.spins[idx]
}

// NeighbourSum returns the sum of the four nearest neighbours of (x, y).
// On lattices narrower than 3 a neighbour may be the site itself or appear
// twice; it is counted with multiplicity.
func (l *Lattice) NeighbourSum(x, y int) int {
	return int(l.Get(x-1, y)) + int(l.Get(x+1, y)) + int(l.Get(x, y-1)) + int(l.Get(x, y+1))
}

// Magnetisation returns the mean spin, (1/N) Σ s.
func (l *Lattice) Magnetisation() float64 {
	sum := 0
	for _, s := range l.spins {
		sum += int(s)
	}
	return float64(sum) / float64(len(l.spins))
}

// MagnetisationSquared returns (1/N) Σ s². It is 1 for any valid Ising lattice.
func (l *Lattice) MagnetisationSquared() float64 {
	sum := 0
	for _, s := range l.spins {
		sum += int(s) * int(s)
	}
	return float64(sum) / float64(len(l.spins))
}

// siteEnergy splits the local energy of (x, y) into its bond term
// −J·s·Σneighbours and field term −h·s.
func (l *Lattice) siteEnergy(x, y int, c Coupling) (bond, field float64) {
	s := float64(l.Get(x, y))
	bond = -c.J * s * float64(l.NeighbourSum(x, y))
	field = -c.H * s
	return bond, field
}

// Energy returns E = −J Σ⟨ij⟩ sᵢsⱼ − h Σ sᵢ. Summing the bond term over every
// site visits each bond twice, so that sum is halved once at the end.
func (l *Lattice) Energy(c Coupling) float64 {
	var bonds, field float64
	for y := 0; y < l.torus.H; y++ {
		for x := 0; x < l.torus.W; x++ {
			b, f := l.siteEnergy(x, y, c)
			bonds += b
			field += f
		}
	}
	return 0.5*bonds + field
}

// EnergySquared returns half the sum over sites of the squared local energy
// term (bond plus field). This is a per-site second moment, not Energy()².
func (l *Lattice) EnergySquared(c Coupling) float64 {
	var sum float64
	for y := 0; y < l.torus.H; y++ {
		for x := 0; x < l.torus.W; x++ {
			b, f := l.siteEnergy(x, y, c)
			e := b + f
			sum += e * e
		}
	}
	return 0.5 * sum
}

// Cells writes the display encoding of the lattice into dst, growing it if
// needed: 0 for Down, 1 for Up and 2 for anything else.
func (l *Lattice) Cells(dst []uint8) []uint8 {
	if cap(dst) < len(l.spins) {
		dst = make([]uint8, len(l.spins))
	}
	dst = dst[:len(l.spins)]
	for i, s := range l.spins {
		switch s {
		case Down:
			dst[i] = 0
		case Up:
			dst[i] = 1
		default:
			dst[i] = 2
		}
	}
	return dst
}
