package game

import (
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/physics"
)

// PlayerPhase is the player's lifecycle state.
type PlayerPhase int

const (
	PhaseAlive PlayerPhase = iota
	PhaseDying
)

// String returns a human-readable name for the phase.
func (p PlayerPhase) String() string {
	if p == PhaseAlive {
		return "alive"
	}
	return "dying"
}

// PlayerController maps the tilt-derived target into bounded horizontal
// motion and sequences death and respawn.
//
//	Alive --Kill--> Dying --PlayerFell--> (recreated) Alive
type PlayerController struct {
	arena    *Arena
	sched    *Scheduler
	viewport core.Vec2
	cfg      config.PlayerConfig

	id      EntityID
	phase   PlayerPhase
	targetX float64
}

// NewPlayerController creates a controller. Call Spawn to create the hero.
func NewPlayerController(arena *Arena, sched *Scheduler, viewport core.Vec2, cfg config.PlayerConfig) *PlayerController {
	return &PlayerController{
		arena:    arena,
		sched:    sched,
		viewport: viewport,
		cfg:      cfg,
	}
}

// Spawn creates a fresh player centered in the viewport and marks it alive.
func (p *PlayerController) Spawn() EntityID {
	size := core.V(p.cfg.Width, p.cfg.Height)
	pos := core.V((p.viewport.X-size.X)/2, (p.viewport.Y-size.Y)/2)

	p.id = p.arena.Spawn(Entity{
		Category: physics.CategoryPlayer,
		Pos:      pos,
		Size:     size,
		Scale:    1,
		Radius:   collisionRadius(size),
	})
	p.phase = PhaseAlive
	p.targetX = pos.X
	return p.id
}

// ID returns the current player entity.
func (p *PlayerController) ID() EntityID {
	return p.id
}

// Phase returns the lifecycle state.
func (p *PlayerController) Phase() PlayerPhase {
	return p.phase
}

// Alive reports whether the player is controllable.
func (p *PlayerController) Alive() bool {
	return p.phase == PhaseAlive && p.arena.Alive(p.id)
}

// TargetX returns the last derived horizontal target.
func (p *PlayerController) TargetX() float64 {
	return p.targetX
}

// Entity returns the player entity, if present.
func (p *PlayerController) Entity() (*Entity, bool) {
	return p.arena.Get(p.id)
}

// ApplyTilt derives the next target from an accelerometer sample. The last
// sample before a tick wins. Ignored unless alive.
func (p *PlayerController) ApplyTilt(accel float64) {
	if !p.Alive() {
		return
	}
	e, _ := p.arena.Get(p.id)
	p.targetX = e.Pos.X + accel*p.cfg.TiltGain
}

// SetTargetX overrides the horizontal target directly.
func (p *PlayerController) SetTargetX(x float64) {
	p.targetX = x
}

// Bounds returns the allowed range for the player's left edge.
func (p *PlayerController) Bounds() (lo, hi float64) {
	return p.viewport.X * p.cfg.MarginMin, p.viewport.X*p.cfg.MarginMax - p.cfg.Width
}

// Tick retargets the player. A target outside the safety margins is
// discarded in favour of the current position and nothing moves; otherwise a
// short move toward the target replaces the previous one.
// It reports whether a move was scheduled.
func (p *PlayerController) Tick() bool {
	if !p.Alive() {
		return false
	}
	e, _ := p.arena.Get(p.id)

	lo, hi := p.Bounds()
	if p.targetX < lo || p.targetX > hi {
		p.targetX = e.Pos.X
		return false
	}

	p.sched.Move(p.arena, p.id, core.V(p.targetX, e.Pos.Y), p.cfg.MoveDuration, CompletionNone)
	return true
}

// Kill moves an alive player into the Dying phase: the current move is
// cancelled and the hero drops below the bottom edge. Returns false when
// the player was not alive.
func (p *PlayerController) Kill() bool {
	if !p.Alive() {
		return false
	}
	e, _ := p.arena.Get(p.id)

	p.phase = PhaseDying
	p.sched.Cancel(p.id)
	p.sched.Move(p.arena, p.id, core.V(e.Pos.X, -e.Size.Y), p.cfg.DeathDuration, CompletionPlayerFell)
	return true
}

// Respawn removes the fallen player and creates a new one.
func (p *PlayerController) Respawn() EntityID {
	p.sched.Cancel(p.id)
	p.arena.Remove(p.id)
	return p.Spawn()
}
