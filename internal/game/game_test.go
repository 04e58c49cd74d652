package game

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/physics"
)

func newTestGame(w, h int) *Game {
	g := New(config.DefaultSkyfallConfig(), Options{})
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 42})
	return g
}

func TestGameMetadata(t *testing.T) {
	g := New(config.DefaultSkyfallConfig(), Options{})
	assert.Equal(t, "skyfall", g.ID())
	assert.Equal(t, "Skyfall", g.Title())
	assert.False(t, g.State().Alive, "not reset yet")
}

func TestGameResetClampsTinyScreens(t *testing.T) {
	g := newTestGame(3, 2)
	assert.Equal(t, core.V(MinScreenW, MinScreenH), g.World().Viewport())
	assert.True(t, g.State().Alive)
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := newTestGame(80, 24)

	g.Step(core.NewInputFrame())
	require.Equal(t, 1, g.State().Ticks)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	assert.True(t, res.State.Paused)

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 1, g.State().Ticks)

	res = g.Step(pause)
	assert.False(t, res.State.Paused)
	assert.Equal(t, 2, res.State.Ticks)
}

func TestGameResetStartsOver(t *testing.T) {
	g := newTestGame(80, 24)
	g.World().KillPlayer()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	require.False(t, g.State().Alive)

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	assert.True(t, g.State().Alive)
	assert.Equal(t, 0, g.State().Ticks)
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%25 == 0 {
			inputs[i].Set(core.ActionFire)
		}
		if i%10 == 0 {
			inputs[i].SetTilt(0.05)
		}
	}

	play := func() *Game {
		g := newTestGame(80, 24)
		for _, in := range inputs {
			g.Step(in)
		}
		return g
	}

	g1, g2 := play(), play()
	assert.Equal(t, g1.State(), g2.State())
	assert.Equal(t, g1.World().Entities(physics.CategoryObstacle), g2.World().Entities(physics.CategoryObstacle))
	assert.Equal(t, g1.World().Entities(physics.CategoryProjectile), g2.World().Entities(physics.CategoryProjectile))
}

func TestScreenToWorldFlipsY(t *testing.T) {
	g := newTestGame(80, 24)
	assert.Equal(t, core.V(0.5, 0.5), g.ScreenToWorld(0, 23))
	assert.Equal(t, core.V(10.5, 23.5), g.ScreenToWorld(10, 0))
}

func TestRenderDrawsHeroAndHUD(t *testing.T) {
	g := newTestGame(80, 24)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	assert.Contains(t, scr.Row(0), "SKYFALL")

	// Hero at (38.5, 11) with height 2 occupies rows 11 and 12
	assert.Contains(t, scr.Row(11), `\o/`)
	assert.Equal(t, core.ColorRed, scr.GetCell(38, 11).Color)
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(80, 24)
	g.World().KillPlayer()
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	assert.Contains(t, scr.String(), "OUCH!")

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	g.Render(scr)
	assert.True(t, strings.Contains(scr.String(), "PAUSED"))
}

func TestWebGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '─'},
		{math.Pi, '─'},
		{math.Pi / 2, '│'},
		{-math.Pi / 2, '│'},
		{math.Pi / 4, '╱'},
		{-3 * math.Pi / 4, '╱'},
		{3 * math.Pi / 4, '╲'},
		{-math.Pi / 4, '╲'},
	}

	for _, tc := range tests {
		assert.Equal(t, string(tc.want), string(webGlyph(tc.angle)), "angle %.2f", tc.angle)
	}
}
