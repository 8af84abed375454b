//go:build ebiten

package app

import (
	"image/color"
	"time"

	"ising-mc/internal/core"
	"ising-mc/internal/render"
	"ising-mc/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const temperatureFactor = 1.25

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	palette []color.RGBA

	scale         int
	hudWidth      int
	stepsPerFrame int
	temperature   float64
	paused        bool
	tickOnce      bool
	seed          int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	palette := render.BinaryPalette(color.Black, color.White)
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	return &Game{
		sim:           sim,
		painter:       render.NewGridPainter(size.W, size.H),
		hud:           ui.NewHUD(sim, cfg.HUDWidth),
		palette:       palette,
		scale:         cfg.Scale,
		hudWidth:      cfg.HUDWidth,
		stepsPerFrame: cfg.FrameSteps(size.W, size.H),
		temperature:   cfg.Temperature,
		seed:          cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.setTemperature(g.temperature * temperatureFactor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.setTemperature(g.temperature / temperatureFactor)
	}

	if !g.paused || g.tickOnce {
		for i := 0; i < g.stepsPerFrame; i++ {
			g.sim.Step()
		}
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

func (g *Game) setTemperature(t float64) {
	setter, ok := g.sim.(core.FloatParameterSetter)
	if !ok {
		return
	}
	if setter.SetFloatParameter("temperature", t) {
		g.temperature = t
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
