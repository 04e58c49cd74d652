package game

import (
	"math/rand"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/physics"
)

// Side is the viewport edge an obstacle enters from.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// SpawnRequest holds the randomized parameters of one obstacle flight.
type SpawnRequest struct {
	Side     Side
	StartY   float64
	EndY     float64
	Duration float64
}

// NewSpawnRequest rolls a flight that always crosses the vertical midline:
// the end height is drawn from the half opposite to the start height.
// viewportH must be positive.
func NewSpawnRequest(rng *rand.Rand, viewportH, duration float64) SpawnRequest {
	side := SideLeft
	if rng.Intn(2) == 1 {
		side = SideRight
	}

	mid := viewportH / 2
	startY := rng.Float64() * viewportH

	var endY float64
	if startY <= mid {
		endY = mid + rng.Float64()*(viewportH-mid)
	} else {
		endY = rng.Float64() * mid
	}

	return SpawnRequest{
		Side:     side,
		StartY:   startY,
		EndY:     endY,
		Duration: duration,
	}
}

// Endpoints returns where an obstacle of the given width starts and ends:
// just outside the chosen edge, flying to the mirrored edge.
func (r SpawnRequest) Endpoints(viewportW, width float64) (from, to core.Vec2) {
	if r.Side == SideLeft {
		return core.V(-width, r.StartY), core.V(viewportW, r.EndY)
	}
	return core.V(viewportW, r.StartY), core.V(-width, r.EndY)
}

// ObstacleSpawner creates birds. Each spawned bird ends its life either by
// completing the flight or by falling after a hit; both paths call SpawnOne
// again, which keeps the spawn loop alive.
type ObstacleSpawner struct {
	arena    *Arena
	sched    *Scheduler
	rng      *rand.Rand
	viewport core.Vec2
	cfg      config.ObstacleConfig
}

// NewObstacleSpawner creates a spawner. It does not spawn anything yet.
func NewObstacleSpawner(arena *Arena, sched *Scheduler, rng *rand.Rand, viewport core.Vec2, cfg config.ObstacleConfig) *ObstacleSpawner {
	return &ObstacleSpawner{
		arena:    arena,
		sched:    sched,
		rng:      rng,
		viewport: viewport,
		cfg:      cfg,
	}
}

// SpawnOne rolls a request and launches one bird from it.
func (s *ObstacleSpawner) SpawnOne() (EntityID, SpawnRequest) {
	req := NewSpawnRequest(s.rng, s.viewport.Y, s.cfg.FlightDuration)
	return s.Spawn(req), req
}

// Spawn launches one bird along the given request.
func (s *ObstacleSpawner) Spawn(req SpawnRequest) EntityID {
	size := core.V(s.cfg.Width, s.cfg.Height)
	from, to := req.Endpoints(s.viewport.X, size.X)

	id := s.arena.Spawn(Entity{
		Category: physics.CategoryObstacle,
		Pos:      from,
		Size:     size,
		Scale:    1,
		Rotation: to.Sub(from).Angle(),
		Radius:   collisionRadius(size),
	})
	s.sched.Move(s.arena, id, to, req.Duration, CompletionObstacleReachedEnd)
	return id
}

// CloudSpawner drifts decorative clouds from the right edge to the left one.
// It ignores gameplay entirely and keeps running while the player is down.
type CloudSpawner struct {
	arena    *Arena
	sched    *Scheduler
	rng      *rand.Rand
	viewport core.Vec2
	cfg      config.CloudConfig
}

// NewCloudSpawner creates a spawner. It does not spawn anything yet.
func NewCloudSpawner(arena *Arena, sched *Scheduler, rng *rand.Rand, viewport core.Vec2, cfg config.CloudConfig) *CloudSpawner {
	return &CloudSpawner{
		arena:    arena,
		sched:    sched,
		rng:      rng,
		viewport: viewport,
		cfg:      cfg,
	}
}

// SpawnOne creates a cloud at a random height and scale just past the right
// edge and sends it just past the left edge.
func (s *CloudSpawner) SpawnOne() EntityID {
	y := s.rng.Float64() * s.viewport.Y
	scale := s.cfg.MinScale + s.rng.Float64()*(s.cfg.MaxScale-s.cfg.MinScale)
	size := core.V(s.cfg.Width*scale, s.cfg.Height*scale)

	id := s.arena.Spawn(Entity{
		Category: physics.CategoryDecoration,
		Pos:      core.V(s.viewport.X, y),
		Size:     size,
		Scale:    scale,
	})
	s.sched.Move(s.arena, id, core.V(-size.X, y), s.cfg.Duration, CompletionCloudExited)
	return id
}
