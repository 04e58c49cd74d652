package game

import "github.com/vovakirdan/skyfall/internal/physics"

// EventKind classifies a world event.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventRemoved
	EventObstacleDestroyed
	EventPlayerDied
	EventPlayerRespawned
	EventProjectileFired
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventRemoved:
		return "removed"
	case EventObstacleDestroyed:
		return "obstacle_destroyed"
	case EventPlayerDied:
		return "player_died"
	case EventPlayerRespawned:
		return "player_respawned"
	case EventProjectileFired:
		return "projectile_fired"
	default:
		return "unknown"
	}
}

// Event is a notable state transition inside the world.
type Event struct {
	Kind     EventKind
	Entity   EntityID
	Category physics.Category
	Tick     int
}

// Observer receives world events synchronously on the simulation goroutine.
type Observer interface {
	Observe(ev Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev Event)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Event) {
	f(ev)
}
