package ising

import (
	"math"
	"strconv"

	"ising-mc/internal/lattice"
)

// Params holds the physical constants of the model.
type Params struct {
	// Coupling is J. Negative values make aligned neighbours cost energy
	// under E = −J Σ sᵢsⱼ.
	Coupling    float64 `mapstructure:"coupling" yaml:"coupling"`
	Field       float64 `mapstructure:"field" yaml:"field"`
	Boltzmann   float64 `mapstructure:"boltzmann" yaml:"boltzmann"`
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`
}

// Beta returns the inverse temperature 1/(k·T). A zero temperature yields
// +Inf, which rejects every move with ΔE > 0.
func (p Params) Beta() float64 {
	kt := p.Boltzmann * p.Temperature
	if kt == 0 {
		return math.Inf(1)
	}
	return 1 / kt
}

// Hamiltonian returns the lattice coupling constants.
func (p Params) Hamiltonian() lattice.Coupling {
	return lattice.Coupling{J: p.Coupling, H: p.Field}
}

// Config controls the Ising simulation dimensions and physics.
type Config struct {
	Width  int   `mapstructure:"width" yaml:"width"`
	Height int   `mapstructure:"height" yaml:"height"`
	Seed   int64 `mapstructure:"seed" yaml:"seed"`

	Params Params `mapstructure:"params" yaml:"params"`
}

// DefaultParams returns the standard physical constants.
func DefaultParams() Params {
	return Params{
		Coupling:    -1.0,
		Field:       0.0,
		Boltzmann:   1.0,
		Temperature: 0.01,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  30,
		Height: 30,
		Seed:   0,
		Params: DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
			c.Height = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["coupling"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Coupling = parsed
		}
	}
	if v, ok := cfg["field"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Field = parsed
		}
	}
	if v, ok := cfg["boltzmann"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Boltzmann = parsed
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Temperature = parsed
		}
	}
	return c
}
