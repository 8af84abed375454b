package ui

import (
	"fmt"
	"strings"

	"ising-mc/internal/core"
)

// Help lists the viewer's key bindings.
var Help = []string{
	"space  pause/resume",
	"n      single tick",
	"r/s    reset / reseed",
	"up/dn  raise/lower temperature",
	"q      quit",
}

// Lines flattens a parameter snapshot into the text rows shown on the panel.
func Lines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, group := range snap.Groups {
		lines = append(lines, "", strings.ToUpper(group.Name))
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("%-15s %s", p.Label, p.Value))
		}
	}
	lines = append(lines, "")
	return append(lines, Help...)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	size := sim.Size()
	return fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)
}
