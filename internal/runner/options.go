package runner

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"ising-mc/internal/sims/ising"
)

// DefaultSide is the lattice side length used when none is given.
const DefaultSide = 30

// ErrUsage marks command-line input that cannot be turned into a run.
var ErrUsage = errors.New("usage")

// Options configures a console run.
type Options struct {
	Side              int          `mapstructure:"side" yaml:"side"`
	Steps             int          `mapstructure:"steps" yaml:"steps"`
	StepsPerOutput    int          `mapstructure:"steps_per_output" yaml:"steps_per_output"`
	StepsPerCalculate int          `mapstructure:"steps_per_calculate" yaml:"steps_per_calculate"`
	Seed              int64        `mapstructure:"seed" yaml:"seed"`
	Params            ising.Params `mapstructure:"params" yaml:"params"`

	ConfigFile string `mapstructure:"-" yaml:"-"`
}

// NewOptions returns Options populated with the standard run settings.
func NewOptions() *Options {
	return &Options{
		Side:              DefaultSide,
		Steps:             50000,
		StepsPerOutput:    100,
		StepsPerCalculate: 100,
		Params:            ising.DefaultParams(),
	}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Steps, "steps", o.Steps, "number of Metropolis attempts")
	fs.IntVar(&o.StepsPerOutput, "output-every", o.StepsPerOutput, "print the lattice every N steps (0 disables)")
	fs.IntVar(&o.StepsPerCalculate, "calc-every", o.StepsPerCalculate, "print the magnetisation every N steps (0 disables)")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "random seed (0 seeds from the clock)")
	fs.Float64Var(&o.Params.Coupling, "coupling", o.Params.Coupling, "coupling parameter J")
	fs.Float64Var(&o.Params.Field, "field", o.Params.Field, "external field strength h")
	fs.Float64Var(&o.Params.Temperature, "temp", o.Params.Temperature, "temperature T")
	fs.Float64Var(&o.Params.Boltzmann, "boltzmann", o.Params.Boltzmann, "Boltzmann constant k")
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "optional YAML file with run settings")
}

// ApplyArgs interprets the positional arguments. A single argument sets the
// side length; any other count keeps the current side.
func (o *Options) ApplyArgs(args []string) error {
	if len(args) != 1 {
		return nil
	}
	side, err := ParseSide(args[0])
	if err != nil {
		return err
	}
	o.Side = side
	return nil
}

// ParseSide parses a lattice side length.
func ParseSide(s string) (int, error) {
	side, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: side length %q is not an integer", ErrUsage, s)
	}
	if side <= 0 {
		return 0, fmt.Errorf("%w: side length must be positive, got %d", ErrUsage, side)
	}
	return side, nil
}

// Validate rejects settings that cannot drive a run.
func (o *Options) Validate() error {
	switch {
	case o.Side <= 0:
		return fmt.Errorf("%w: side length must be positive, got %d", ErrUsage, o.Side)
	case o.Steps < 0:
		return fmt.Errorf("%w: steps must not be negative, got %d", ErrUsage, o.Steps)
	case o.StepsPerOutput < 0 || o.StepsPerCalculate < 0:
		return fmt.Errorf("%w: output cadence must not be negative", ErrUsage)
	case o.Params.Temperature < 0:
		return fmt.Errorf("%w: temperature must not be negative, got %g", ErrUsage, o.Params.Temperature)
	case o.Params.Boltzmann <= 0:
		return fmt.Errorf("%w: Boltzmann constant must be positive, got %g", ErrUsage, o.Params.Boltzmann)
	}
	return nil
}

// Config converts the options into a simulation config.
func (o *Options) Config() ising.Config {
	return ising.Config{Width: o.Side, Height: o.Side, Seed: o.Seed, Params: o.Params}
}

// LoadFile overlays settings from a YAML file onto o. Keys absent from the
// file keep their current values.
func (o *Options) LoadFile(path string) error {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType(configType(path))
	if err := vp.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := vp.Unmarshal(o); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func configType(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch ext {
	case "json", "toml":
		return ext
	default:
		return "yaml"
	}
}
