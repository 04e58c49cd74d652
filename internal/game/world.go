// Package game implements skyfall: the hero falls past a skyscraper, dodges
// birds crossing the screen and shoots webs at them.
//
// The World is driven by Step, once per frame. Timed motion lives in a
// central Scheduler whose finished moves are dispatched as explicit state
// transitions; entities live in an Arena and are referenced by EntityID.
package game

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/physics"
)

// Options carries optional collaborators of the World.
type Options struct {
	Logger    *log.Logger
	Observers []Observer
}

// World owns every entity and runs the game loop.
type World struct {
	cfg      config.SkyfallConfig
	viewport core.Vec2
	rng      *rand.Rand

	arena       *Arena
	sched       *Scheduler
	background  *Scroller
	obstacles   *ObstacleSpawner
	clouds      *CloudSpawner
	player      *PlayerController
	projectiles *ProjectileManager
	resolver    *Resolver
	detector    *physics.Detector

	logger    *log.Logger
	observers []Observer
	ticks     int
}

// NewWorld builds the scene and starts the clouds, the player and the bird
// spawn loops. The viewport must be positive in both dimensions.
func NewWorld(cfg config.SkyfallConfig, viewport core.Vec2, seed int64, opts Options) *World {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	arena := NewArena()
	sched := NewScheduler()
	rng := rand.New(rand.NewSource(seed))

	w := &World{
		cfg:         cfg,
		viewport:    viewport,
		rng:         rng,
		arena:       arena,
		sched:       sched,
		background:  NewScroller(viewport, cfg.Background),
		obstacles:   NewObstacleSpawner(arena, sched, rng, viewport, cfg.Obstacles),
		clouds:      NewCloudSpawner(arena, sched, rng, viewport, cfg.Clouds),
		player:      NewPlayerController(arena, sched, viewport, cfg.Player),
		projectiles: NewProjectileManager(arena, sched, cfg.Projectiles),
		detector:    physics.NewDetector(),
		logger:      logger,
		observers:   opts.Observers,
	}
	w.resolver = NewResolver(w)

	for i := 0; i < cfg.Clouds.Count; i++ {
		w.spawnCloud()
	}
	id := w.player.Spawn()
	w.emit(EventSpawned, id, physics.CategoryPlayer)
	for i := 0; i < cfg.Obstacles.Count; i++ {
		w.spawnObstacle()
	}

	w.logger.Debug("world created",
		"width", viewport.X,
		"height", viewport.Y,
		"seed", seed,
	)
	return w
}

// Step advances the world by one frame of dt seconds.
func (w *World) Step(dt float64, in core.InputFrame) {
	w.ticks++

	if in.HasTilt {
		w.player.ApplyTilt(in.Tilt)
	}
	for _, tap := range in.Taps {
		w.Fire(tap)
	}
	if in.Has(core.ActionFire) {
		w.FireAtNearest()
	}

	for _, f := range w.sched.Advance(w.arena, dt) {
		w.complete(f)
	}

	alive := w.player.Alive()
	if alive || w.cfg.Background.ScrollWhileDead {
		w.background.Tick()
	}
	if alive {
		w.player.Tick()
	}

	w.resolver.ResolveReport(w.detector.Detect(w.bodies()))
}

// complete applies the state transition attached to a finished move.
func (w *World) complete(f Finished) {
	switch f.Completion {
	case CompletionObstacleReachedEnd, CompletionObstacleFell:
		w.remove(f.ID, physics.CategoryObstacle)
		w.spawnObstacle()
	case CompletionCloudExited:
		w.remove(f.ID, physics.CategoryDecoration)
		w.spawnCloud()
	case CompletionProjectileArrived:
		w.remove(f.ID, physics.CategoryProjectile)
	case CompletionPlayerFell:
		old := w.player.ID()
		id := w.player.Respawn()
		w.emit(EventRemoved, old, physics.CategoryPlayer)
		w.emit(EventPlayerRespawned, id, physics.CategoryPlayer)
		w.logger.Debug("player respawned", "tick", w.ticks)
	}
}

func (w *World) spawnObstacle() EntityID {
	id, req := w.obstacles.SpawnOne()
	w.emit(EventSpawned, id, physics.CategoryObstacle)
	w.logger.Debug("obstacle spawned",
		"side", req.Side,
		"start_y", req.StartY,
		"end_y", req.EndY,
	)
	return id
}

func (w *World) spawnCloud() EntityID {
	id := w.clouds.SpawnOne()
	w.emit(EventSpawned, id, physics.CategoryDecoration)
	return id
}

func (w *World) remove(id EntityID, c physics.Category) {
	w.sched.Cancel(id)
	if w.arena.Remove(id) {
		w.emit(EventRemoved, id, c)
	}
}

func (w *World) emit(kind EventKind, id EntityID, c physics.Category) {
	if len(w.observers) == 0 {
		return
	}
	ev := Event{Kind: kind, Entity: id, Category: c, Tick: w.ticks}
	for _, o := range w.observers {
		o.Observe(ev)
	}
}

// bodies collects the collision shapes of every live entity.
func (w *World) bodies() []physics.Body {
	bodies := make([]physics.Body, 0, w.arena.Len())
	w.arena.Each(func(e *Entity) {
		if e.Radius <= 0 {
			return
		}
		bodies = append(bodies, physics.Body{
			Handle:   e.ID.Handle(),
			Category: e.Category,
			Center:   e.BodyCenter(),
			Radius:   e.Radius,
		})
	})
	return bodies
}

// Fire shoots a web from the player toward target. Ignored while the player
// is not alive.
func (w *World) Fire(target core.Vec2) (EntityID, bool) {
	if !w.player.Alive() {
		return NoEntity, false
	}
	shooter, _ := w.player.Entity()
	id := w.projectiles.Fire(EmissionPoint(shooter), target)
	w.emit(EventProjectileFired, id, physics.CategoryProjectile)
	return id, true
}

// FireAtNearest shoots at the closest flying bird, or straight ahead when
// the sky is empty.
func (w *World) FireAtNearest() (EntityID, bool) {
	shooter, ok := w.player.Entity()
	if !ok || !w.player.Alive() {
		return NoEntity, false
	}
	origin := EmissionPoint(shooter)

	target := core.V(w.viewport.X+w.cfg.Projectiles.Width, origin.Y)
	best := math.Inf(1)
	w.arena.Each(func(e *Entity) {
		if e.Category != physics.CategoryObstacle || e.Falling {
			return
		}
		if d := e.Center().Sub(origin).Len(); d < best {
			best = d
			target = e.Center()
		}
	})
	return w.Fire(target)
}

// KillPlayer starts the death sequence. No-op unless the player is alive.
func (w *World) KillPlayer() bool {
	id := w.player.ID()
	if !w.player.Kill() {
		return false
	}
	w.emit(EventPlayerDied, id, physics.CategoryPlayer)
	w.logger.Debug("player died", "tick", w.ticks)
	return true
}

// DestroyObstacle knocks a bird out of its flight: the flight is cancelled
// and it falls straight down out of the viewport, after which the spawn loop
// is re-armed. Absent or already falling birds are left alone.
func (w *World) DestroyObstacle(id EntityID) bool {
	e, ok := w.arena.Get(id)
	if !ok || e.Category != physics.CategoryObstacle || e.Falling {
		return false
	}

	e.Falling = true
	w.sched.Cancel(id)
	w.sched.Move(w.arena, id, core.V(e.Pos.X, -e.Size.Y), w.cfg.Obstacles.FallDuration, CompletionObstacleFell)
	w.emit(EventObstacleDestroyed, id, physics.CategoryObstacle)
	w.logger.Debug("obstacle destroyed", "tick", w.ticks)
	return true
}

// Resolve handles a contact reported by an external physics collaborator.
func (w *World) Resolve(catA, catB physics.Category, a, b EntityID) Resolution {
	return w.resolver.Resolve(catA, catB, a, b)
}

// ResolveReport handles a batch of contacts reported in one step.
func (w *World) ResolveReport(contacts []physics.Contact) []Resolution {
	return w.resolver.ResolveReport(contacts)
}

// Viewport returns the world size.
func (w *World) Viewport() core.Vec2 {
	return w.viewport
}

// Ticks returns the number of steps taken.
func (w *World) Ticks() int {
	return w.ticks
}

// Player returns the player controller.
func (w *World) Player() *PlayerController {
	return w.player
}

// Background returns the building scroller.
func (w *World) Background() *Scroller {
	return w.background
}

// Scheduler returns the move scheduler.
func (w *World) Scheduler() *Scheduler {
	return w.sched
}

// Entity looks up a live entity.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	return w.arena.Get(id)
}

// Entities returns copies of the live entities of a category in slot order.
func (w *World) Entities(c physics.Category) []Entity {
	var out []Entity
	w.arena.Each(func(e *Entity) {
		if e.Category == c {
			out = append(out, *e)
		}
	})
	return out
}

// Count returns the number of live entities of a category.
func (w *World) Count(c physics.Category) int {
	return w.arena.Count(c)
}
