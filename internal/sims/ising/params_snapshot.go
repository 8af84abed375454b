package ising

import (
	"strconv"

	"ising-mc/internal/core"
)

// Parameters describes the configuration and live observables for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	p := s.cfg.Params
	obs := s.Observables()
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("w", "Width", s.lat.Width()),
				intParam("h", "Height", s.lat.Height()),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Hamiltonian",
			Params: []core.Parameter{
				floatParam("coupling", "Coupling J", p.Coupling),
				floatParam("field", "Field h", p.Field),
				floatParam("boltzmann", "Boltzmann k", p.Boltzmann),
				floatParam("temperature", "Temperature T", p.Temperature),
				floatParam("beta", "Beta", s.beta),
			},
		},
		{
			Name: "Observables",
			Params: []core.Parameter{
				intParam("steps", "Steps", s.steps),
				intParam("accepted", "Accepted", s.accepted),
				floatParam("magnetisation", "Magnetisation", obs.Magnetisation),
				floatParam("energy", "Energy", obs.Energy),
				floatParam("energy_squared", "Energy squared", obs.EnergySquared),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetFloatParameter updates a physical constant in place. The lattice is left
// untouched so the run continues from its current state.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "coupling":
		s.cfg.Params.Coupling = value
	case "field":
		s.cfg.Params.Field = value
	case "temperature":
		if value < 0 {
			return false
		}
		s.cfg.Params.Temperature = value
	case "boltzmann":
		if value <= 0 {
			return false
		}
		s.cfg.Params.Boltzmann = value
	default:
		return false
	}
	s.beta = s.cfg.Params.Beta()
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'g', 6, 64),
	}
}
