package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/physics"
)

const testDT = 1.0 / 60

// quietConfig has no birds or clouds so tests control every entity.
func quietConfig() config.SkyfallConfig {
	cfg := config.DefaultSkyfallConfig()
	cfg.Obstacles.Count = 0
	cfg.Clouds.Count = 0
	return cfg
}

type eventLog struct {
	events []Event
}

func (l *eventLog) Observe(ev Event) {
	l.events = append(l.events, ev)
}

func (l *eventLog) count(kind EventKind, c physics.Category) int {
	n := 0
	for _, ev := range l.events {
		if ev.Kind == kind && ev.Category == c {
			n++
		}
	}
	return n
}

func newTestWorld(cfg config.SkyfallConfig, log *eventLog) *World {
	opts := Options{}
	if log != nil {
		opts.Observers = []Observer{log}
	}
	return NewWorld(cfg, core.V(1000, 800), 42, opts)
}

func stepN(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step(testDT, core.NewInputFrame())
	}
}

func TestNewWorldPopulatesScene(t *testing.T) {
	w := newTestWorld(config.DefaultSkyfallConfig(), nil)

	assert.Equal(t, 1, w.Count(physics.CategoryPlayer))
	assert.Equal(t, 1, w.Count(physics.CategoryObstacle))
	assert.Equal(t, 1, w.Count(physics.CategoryDecoration))
	assert.Equal(t, 0, w.Count(physics.CategoryProjectile))
	assert.True(t, w.Player().Alive())

	hero, ok := w.Player().Entity()
	require.True(t, ok)
	assert.Equal(t, core.V(498.5, 399), hero.Pos)
}

func TestFireEndToEnd(t *testing.T) {
	w := newTestWorld(quietConfig(), nil)
	hero, _ := w.Player().Entity()
	hero.Pos = core.V(100, 300)
	w.Player().SetTargetX(100)

	id, ok := w.Fire(core.V(500, 300))
	require.True(t, ok)

	web, ok := w.Entity(id)
	require.True(t, ok)
	assert.Equal(t, core.V(101.5, 300), web.Pos)
	assert.InDelta(t, 0, web.Rotation, 1e-12)
	assert.Equal(t, physics.CategoryProjectile, web.Category)

	stepN(w, 14)
	web, ok = w.Entity(id)
	require.True(t, ok, "web should still be flying")
	assert.Less(t, web.Pos.X, 500.0)

	stepN(w, 1)
	assert.False(t, w.Scheduler().Moving(id))
	_, ok = w.Entity(id)
	assert.False(t, ok, "web is removed on arrival")
}

func TestFireRotationFollowsTarget(t *testing.T) {
	w := newTestWorld(quietConfig(), nil)
	hero, _ := w.Player().Entity()
	origin := EmissionPoint(hero)

	id, _ := w.Fire(origin.Add(core.V(0, 50)))
	web, _ := w.Entity(id)
	assert.InDelta(t, math.Pi/2, web.Rotation, 1e-12)
}

func TestTapsInInputFrameFire(t *testing.T) {
	log := &eventLog{}
	w := newTestWorld(quietConfig(), log)

	in := core.NewInputFrame()
	in.Tap(core.V(10, 10))
	in.Tap(core.V(900, 700))
	w.Step(testDT, in)

	assert.Equal(t, 2, w.Count(physics.CategoryProjectile))
	assert.Equal(t, 2, log.count(EventProjectileFired, physics.CategoryProjectile))
}

func TestFireAtNearestTargetsFlyingBird(t *testing.T) {
	w := newTestWorld(quietConfig(), nil)

	near := w.obstacles.Spawn(SpawnRequest{Side: SideLeft, StartY: 420, EndY: 420, Duration: 5})
	w.obstacles.Spawn(SpawnRequest{Side: SideRight, StartY: 100, EndY: 700, Duration: 5})
	bird, _ := w.Entity(near)
	bird.Pos = core.V(520, 420)
	target := bird.Center()

	id, ok := w.FireAtNearest()
	require.True(t, ok)
	dest, ok := w.Scheduler().Destination(id)
	require.True(t, ok)
	assert.Equal(t, target, dest)
}

func TestFireAtNearestWithEmptySky(t *testing.T) {
	w := newTestWorld(quietConfig(), nil)
	hero, _ := w.Player().Entity()
	origin := EmissionPoint(hero)

	id, ok := w.FireAtNearest()
	require.True(t, ok)
	dest, _ := w.Scheduler().Destination(id)
	assert.Equal(t, origin.Y, dest.Y)
	assert.Greater(t, dest.X, 1000.0)
}

func TestWebDestroysBird(t *testing.T) {
	log := &eventLog{}
	w := newTestWorld(quietConfig(), log)
	hero, _ := w.Player().Entity()
	hero.Pos = core.V(100, 300)
	w.Player().SetTargetX(100)

	// A bird hovering right on the web's path
	birdID := w.obstacles.Spawn(SpawnRequest{Side: SideLeft, StartY: 0, EndY: 0, Duration: 5})
	w.Scheduler().Cancel(birdID)
	bird, _ := w.Entity(birdID)
	bird.Pos = core.V(400, 299.5)

	// The tip lands exactly on the bird's center on the tenth tick
	webID, ok := w.Fire(core.V(551.5, 300))
	require.True(t, ok)

	stepN(w, 10)

	bird, ok = w.Entity(birdID)
	require.True(t, ok)
	assert.True(t, bird.Falling)
	assert.Equal(t, 1, log.count(EventObstacleDestroyed, physics.CategoryObstacle))
	assert.True(t, w.arena.Alive(webID), "webs keep flying after a hit")

	dest, ok := w.Scheduler().Destination(birdID)
	require.True(t, ok)
	assert.Equal(t, core.V(400, -1), dest)
}

func TestDestroyObstacleIsIdempotent(t *testing.T) {
	log := &eventLog{}
	w := newTestWorld(quietConfig(), log)
	id := w.spawnObstacle()

	require.True(t, w.DestroyObstacle(id))
	assert.False(t, w.DestroyObstacle(id), "already falling")
	assert.False(t, w.DestroyObstacle(w.Player().ID()), "not an obstacle")
	assert.False(t, w.DestroyObstacle(EntityID{Index: 99, Gen: 1}), "absent")
	assert.Equal(t, 1, log.count(EventObstacleDestroyed, physics.CategoryObstacle))

	// 1.5s fall at 60 ticks per second
	stepN(w, 89)
	assert.True(t, w.arena.Alive(id))
	stepN(w, 1)
	assert.False(t, w.arena.Alive(id))

	// Exactly one replacement bird
	assert.Equal(t, 1, w.Count(physics.CategoryObstacle))
	assert.Equal(t, 2, log.count(EventSpawned, physics.CategoryObstacle))
	assert.False(t, w.DestroyObstacle(id), "removed")
}

func TestObstacleLoopRearmsOnArrival(t *testing.T) {
	log := &eventLog{}
	w := newTestWorld(quietConfig(), log)
	first := w.obstacles.Spawn(SpawnRequest{Side: SideLeft, StartY: 10, EndY: 790, Duration: 0.5})

	stepN(w, 30)

	assert.False(t, w.arena.Alive(first))
	assert.Equal(t, 1, w.Count(physics.CategoryObstacle))
	assert.Equal(t, 1, log.count(EventRemoved, physics.CategoryObstacle))
}

func TestPlayerDeathAndRespawn(t *testing.T) {
	log := &eventLog{}
	w := newTestWorld(quietConfig(), log)
	p := w.Player()
	oldID := p.ID()

	require.True(t, w.KillPlayer())
	assert.Equal(t, PhaseDying, p.Phase())
	assert.False(t, p.Alive())
	assert.False(t, w.KillPlayer(), "second kill is a no-op")
	assert.Equal(t, 1, log.count(EventPlayerDied, physics.CategoryPlayer))

	// Dead players neither shoot nor steer
	_, fired := w.Fire(core.V(0, 0))
	assert.False(t, fired)
	target := p.TargetX()
	in := core.NewInputFrame()
	in.SetTilt(1)
	in.Set(core.ActionFire)
	w.Step(testDT, in)
	assert.Equal(t, target, p.TargetX())
	assert.Equal(t, 0, w.Count(physics.CategoryProjectile))

	hero, _ := p.Entity()
	assert.Less(t, hero.Pos.Y, 399.0, "hero drops while dying")

	stepN(w, 60)

	assert.True(t, p.Alive())
	assert.NotEqual(t, oldID, p.ID())
	assert.False(t, w.arena.Alive(oldID))
	assert.Equal(t, 1, w.Count(physics.CategoryPlayer))
	hero, _ = p.Entity()
	assert.Equal(t, core.V(498.5, 399), hero.Pos)
	assert.Equal(t, 1, log.count(EventPlayerRespawned, physics.CategoryPlayer))
}

func TestPlayerClampHoldsPosition(t *testing.T) {
	w := newTestWorld(quietConfig(), nil)
	p := w.Player()
	hero, _ := p.Entity()
	x := hero.Pos.X

	lo, hi := p.Bounds()
	assert.InDelta(t, 50, lo, 1e-9)
	assert.InDelta(t, 947, hi, 1e-9)

	p.SetTargetX(10)
	assert.False(t, p.Tick())
	assert.Equal(t, x, p.TargetX())
	assert.False(t, w.Scheduler().Moving(p.ID()))

	p.SetTargetX(960)
	assert.False(t, p.Tick())
	assert.Equal(t, x, p.TargetX())

	p.SetTargetX(600)
	require.True(t, p.Tick())
	dest, _ := w.Scheduler().Destination(p.ID())
	assert.Equal(t, core.V(600, hero.Pos.Y), dest)
}

func TestTiltDerivesTarget(t *testing.T) {
	w := newTestWorld(quietConfig(), nil)
	p := w.Player()

	p.ApplyTilt(0.5)
	assert.Equal(t, 498.5+75, p.TargetX())

	// Last sample wins
	p.ApplyTilt(-0.2)
	assert.InDelta(t, 498.5-30, p.TargetX(), 1e-9)

	// Each tick re-issues a short move, so the hero eases into the target
	stepN(w, 6)
	hero, _ := p.Entity()
	assert.Less(t, hero.Pos.X, 498.5)
	assert.Greater(t, hero.Pos.X, 468.5)

	stepN(w, 120)
	hero, _ = p.Entity()
	assert.InDelta(t, 468.5, hero.Pos.X, 1e-3)
}

func TestMissingTiltSampleKeepsTarget(t *testing.T) {
	w := newTestWorld(quietConfig(), nil)
	p := w.Player()
	p.ApplyTilt(0.1)
	target := p.TargetX()

	w.Step(testDT, core.NewInputFrame())
	assert.Equal(t, target, p.TargetX())
}

func TestContactPriorityInWorld(t *testing.T) {
	w := newTestWorld(quietConfig(), nil)
	bird := w.spawnObstacle()
	web := w.projectiles.Fire(core.V(0, 0), core.V(10, 0))
	hero := w.Player().ID()

	body := func(id EntityID, c physics.Category) physics.Body {
		return physics.Body{Handle: id.Handle(), Category: c, Radius: 1}
	}
	out := w.ResolveReport([]physics.Contact{
		{A: body(web, physics.CategoryProjectile), B: body(bird, physics.CategoryObstacle)},
		{A: body(hero, physics.CategoryPlayer), B: body(bird, physics.CategoryObstacle)},
	})

	require.Len(t, out, 2)
	assert.Equal(t, PhaseDying, w.Player().Phase())
	e, _ := w.Entity(bird)
	assert.False(t, e.Falling, "bird that hit the player is not destroyed")
}

func TestResolveSingleContact(t *testing.T) {
	w := newTestWorld(quietConfig(), nil)
	bird := w.spawnObstacle()
	web := w.projectiles.Fire(core.V(0, 0), core.V(10, 0))

	res := w.Resolve(physics.CategoryObstacle, physics.CategoryProjectile, bird, web)
	assert.Equal(t, ReactionObstacleDestroyed, res.Reaction)
	assert.True(t, res.Applied)

	res = w.Resolve(physics.CategoryPlayer, physics.CategoryProjectile, w.Player().ID(), web)
	assert.Equal(t, ReactionNone, res.Reaction)
	assert.True(t, w.Player().Alive())
}

func TestDecorationsAndBackgroundRunWhileDead(t *testing.T) {
	cfg := quietConfig()
	cfg.Clouds.Count = 1
	cfg.Clouds.Duration = 0.5
	cfg.Obstacles.Count = 1
	cfg.Obstacles.FlightDuration = 0.5
	cfg.Player.DeathDuration = 100

	w := newTestWorld(cfg, nil)
	cloud := w.Entities(physics.CategoryDecoration)[0].ID
	bird := w.Entities(physics.CategoryObstacle)[0].ID
	before := sortedSegments(w.Background())[0].Y

	require.True(t, w.KillPlayer())
	stepN(w, 40)

	assert.False(t, w.Player().Alive())
	assert.False(t, w.arena.Alive(cloud))
	assert.Equal(t, 1, w.Count(physics.CategoryDecoration))
	assert.False(t, w.arena.Alive(bird))
	assert.Equal(t, 1, w.Count(physics.CategoryObstacle))
	assert.NotEqual(t, before, sortedSegments(w.Background())[0].Y)
}

func TestBackgroundFreezesWhenConfigured(t *testing.T) {
	cfg := quietConfig()
	cfg.Background.ScrollWhileDead = false
	cfg.Player.DeathDuration = 100
	w := newTestWorld(cfg, nil)

	w.KillPlayer()
	before := append([]Segment(nil), w.Background().Segments()...)
	stepN(w, 10)
	assert.Equal(t, before, w.Background().Segments())
}

func TestWorldDeterminism(t *testing.T) {
	run := func() *World {
		w := NewWorld(config.DefaultSkyfallConfig(), core.V(80, 24), 12345, Options{})
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%20 == 0 {
				in.Set(core.ActionFire)
			}
			if i%7 == 0 {
				in.SetTilt(math.Sin(float64(i) / 30))
			}
			w.Step(testDT, in)
		}
		return w
	}

	w1, w2 := run(), run()
	assert.Equal(t, w1.Entities(physics.CategoryObstacle), w2.Entities(physics.CategoryObstacle))
	assert.Equal(t, w1.Entities(physics.CategoryDecoration), w2.Entities(physics.CategoryDecoration))
	assert.Equal(t, w1.Entities(physics.CategoryPlayer), w2.Entities(physics.CategoryPlayer))
	assert.Equal(t, w1.Player().Phase(), w2.Player().Phase())
}
