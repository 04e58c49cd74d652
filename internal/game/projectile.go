package game

import (
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/physics"
)

// ProjectileManager launches webs. A web flies straight to its target and
// disappears there whether or not it hit anything. There is no fire-rate
// limit.
type ProjectileManager struct {
	arena *Arena
	sched *Scheduler
	cfg   config.ProjectileConfig
}

// NewProjectileManager creates a manager.
func NewProjectileManager(arena *Arena, sched *Scheduler, cfg config.ProjectileConfig) *ProjectileManager {
	return &ProjectileManager{
		arena: arena,
		sched: sched,
		cfg:   cfg,
	}
}

// EmissionPoint returns where a web leaves the shooter.
func EmissionPoint(shooter *Entity) core.Vec2 {
	return core.V(shooter.Pos.X+shooter.Size.X/2, shooter.Pos.Y)
}

// Fire creates a web at origin facing target and sends it there.
func (m *ProjectileManager) Fire(origin, target core.Vec2) EntityID {
	id := m.arena.Spawn(Entity{
		Category: physics.CategoryProjectile,
		Pos:      origin,
		Size:     core.V(m.cfg.Width, m.cfg.Height),
		Scale:    1,
		Rotation: target.Sub(origin).Angle(),
		Radius:   m.cfg.Radius,
	})
	m.sched.Move(m.arena, id, target, m.cfg.Duration, CompletionProjectileArrived)
	return id
}
