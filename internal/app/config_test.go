package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"ising-mc/internal/sims/ising"
)

func TestConfigBindAndSimOptions(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ising-gui", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-side", "24", "-temp", "1.5", "-field", "0.1", "-seed", "9"}))

	simCfg := ising.FromMap(cfg.SimOptions())
	require.Equal(t, 24, simCfg.Width)
	require.Equal(t, 24, simCfg.Height)
	require.EqualValues(t, 9, simCfg.Seed)
	require.Equal(t, 1.5, simCfg.Params.Temperature)
	require.Equal(t, 0.1, simCfg.Params.Field)
	require.Equal(t, -1.0, simCfg.Params.Coupling)
}

func TestFrameSteps(t *testing.T) {
	cfg := NewConfig()
	require.Equal(t, 100, cfg.FrameSteps(10, 10), "default is one sweep")
	cfg.StepsPerFrame = 7
	require.Equal(t, 7, cfg.FrameSteps(10, 10))
}
