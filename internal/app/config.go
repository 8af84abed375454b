package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters of the viewer.
type Config struct {
	Sim           string
	Scale         int
	TPS           int
	Seed          int64
	StepsPerFrame int
	HUDWidth      int

	Side        int
	Coupling    float64
	Field       float64
	Temperature float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "ising",
		Scale:       8,
		TPS:         30,
		Seed:        42,
		HUDWidth:    240,
		Side:        96,
		Coupling:    -1,
		Temperature: 2.0,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.StepsPerFrame, "steps-per-frame", c.StepsPerFrame, "Metropolis attempts per tick (0 = one sweep)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.IntVar(&c.Side, "side", c.Side, "lattice side length")
	fs.Float64Var(&c.Coupling, "coupling", c.Coupling, "coupling parameter J")
	fs.Float64Var(&c.Field, "field", c.Field, "external field strength h")
	fs.Float64Var(&c.Temperature, "temp", c.Temperature, "temperature T")
}

// SimOptions renders the simulation settings as factory key/value pairs.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"size":        strconv.Itoa(c.Side),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"coupling":    strconv.FormatFloat(c.Coupling, 'g', -1, 64),
		"field":       strconv.FormatFloat(c.Field, 'g', -1, 64),
		"temperature": strconv.FormatFloat(c.Temperature, 'g', -1, 64),
	}
}

// FrameSteps returns how many sim steps to run per tick for a grid of the
// given size.
func (c *Config) FrameSteps(w, h int) int {
	if c.StepsPerFrame > 0 {
		return c.StepsPerFrame
	}
	return w * h
}
