package sweep

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ising-mc/internal/sims/ising"
)

func smallBase() ising.Config {
	cfg := ising.DefaultConfig()
	cfg.Width, cfg.Height = 6, 6
	cfg.Seed = 123
	return cfg
}

func TestLinspace(t *testing.T) {
	require.Equal(t, []float64{1, 1.5, 2, 2.5, 3}, Linspace(1, 3, 5))
	require.Equal(t, []float64{0.4}, Linspace(0.4, 9, 1))
	require.Nil(t, Linspace(0, 1, 0))
}

func TestRunIsReproducibleAcrossWorkerCounts(t *testing.T) {
	temps := Linspace(0.5, 4, 6)
	serial, err := Run(context.Background(), Options{Base: smallBase(), Temperatures: temps, Sweeps: 20, Workers: 1})
	require.NoError(t, err)
	parallel, err := Run(context.Background(), Options{Base: smallBase(), Temperatures: temps, Sweeps: 20, Workers: 4})
	require.NoError(t, err)
	require.Equal(t, serial, parallel)

	for i, p := range serial {
		require.Equal(t, temps[i], p.Temperature)
		require.EqualValues(t, 123+i, p.Seed)
		require.Equal(t, 20*36, p.Attempts)
		require.Equal(t, 1.0, p.Observables.MagnetisationSquared)
		require.True(t, p.Observables.Magnetisation >= -1 && p.Observables.Magnetisation <= 1)
	}
}

func TestRunRejectsEmptyInput(t *testing.T) {
	_, err := Run(context.Background(), Options{Base: smallBase()})
	require.Error(t, err)

	bad := smallBase()
	bad.Width = 0
	_, err = Run(context.Background(), Options{Base: bad, Temperatures: []float64{1}})
	require.Error(t, err)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Base: smallBase(), Temperatures: []float64{1, 2}, Sweeps: 10})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	points, err := Run(context.Background(), Options{Base: smallBase(), Temperatures: []float64{1, 2}, Sweeps: 2, Workers: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, points))
	require.Contains(t, buf.String(), "magnetisation_squared: 1")

	var decoded []Point
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, points, decoded)
}

func TestWriteTable(t *testing.T) {
	points := []Point{{
		Temperature: 2,
		Attempts:    36,
		Accepted:    10,
		Observables: ising.Observables{Magnetisation: 0.5, MagnetisationSquared: 1, Energy: -8, EnergySquared: 40},
	}}
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, points))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, []string{"T", "M", "M^2", "E", "E^2", "accepted"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"2", "0.5", "1", "-8", "40", "10/36"}, strings.Fields(lines[1]))
}
