package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
)

// Smallest playfield the game accepts; smaller terminals are padded up to it.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// Game adapts the World to the platform's fixed-tick loop.
type Game struct {
	cfg       config.SkyfallConfig
	runtime   core.RuntimeConfig
	logger    *log.Logger
	observers []Observer

	world  *World
	paused bool
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.SkyfallConfig, opts Options) *Game {
	return &Game{
		cfg:       cfg,
		logger:    opts.Logger,
		observers: opts.Observers,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyfall"
}

// Reset builds a fresh world sized to the screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	rc.ScreenW = core.Max(rc.ScreenW, MinScreenW)
	rc.ScreenH = core.Max(rc.ScreenH, MinScreenH)
	g.runtime = rc
	g.paused = false

	viewport := core.V(float64(rc.ScreenW), float64(rc.ScreenH))
	g.world = NewWorld(g.cfg, viewport, rc.Seed, Options{
		Logger:    g.logger,
		Observers: g.observers,
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.world.Step(g.runtime.TickSeconds(), in)
	}
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Alive:  g.world.Player().Alive(),
		Paused: g.paused,
		Ticks:  g.world.Ticks(),
	}
}

// World exposes the simulation, mainly for tests and tooling.
func (g *Game) World() *World {
	return g.world
}

// ScreenToWorld converts a terminal cell to the world point at its center.
// World y grows upwards from the bottom row.
func (g *Game) ScreenToWorld(col, row int) core.Vec2 {
	return core.V(float64(col)+0.5, float64(g.runtime.ScreenH-row)-0.5)
}
