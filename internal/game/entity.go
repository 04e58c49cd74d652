package game

import (
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/physics"
)

// EntityID is a stable reference into the Arena. A slot's generation is
// bumped every time it is freed, so IDs of removed entities never resolve
// again even after the slot is recycled. The zero value is never valid.
type EntityID struct {
	Index uint32
	Gen   uint32
}

// NoEntity is the zero EntityID.
var NoEntity = EntityID{}

// Handle packs the ID into an opaque physics handle.
func (id EntityID) Handle() physics.Handle {
	return physics.Handle(uint64(id.Index)<<32 | uint64(id.Gen))
}

func idFromHandle(h physics.Handle) EntityID {
	return EntityID{Index: uint32(uint64(h) >> 32), Gen: uint32(uint64(h))}
}

// Entity is a positioned visual object. Position is the bottom-left corner
// of its bounding box in world space.
type Entity struct {
	ID       EntityID
	Category physics.Category
	Pos      core.Vec2
	Size     core.Vec2 // Already multiplied by Scale
	Scale    float64
	Rotation float64 // Radians, counter-clockwise from +X
	Radius   float64 // Collision radius; 0 means no collision shape

	// Falling is set on obstacles that were shot and are dropping out.
	Falling bool
}

// Center returns the middle of the bounding box.
func (e *Entity) Center() core.Vec2 {
	return e.Pos.Add(e.Size.Scale(0.5))
}

// BodyCenter is the center of the collision circle. Projectiles collide at
// their tip, everything else at the middle of its box.
func (e *Entity) BodyCenter() core.Vec2 {
	if e.Category == physics.CategoryProjectile {
		return e.Pos
	}
	return e.Center()
}

// collisionRadius approximates a w×h box by the circle of its mean half-extent.
func collisionRadius(size core.Vec2) float64 {
	return (size.X + size.Y) / 4
}

type slot struct {
	gen    uint32
	live   bool
	entity Entity
}

// Arena owns every live entity in a dense slice of slots.
type Arena struct {
	slots []slot
	free  []uint32
	live  int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		slots: make([]slot, 0, 32),
	}
}

// Spawn stores e and returns its new ID. Any ID already set on e is replaced.
func (a *Arena) Spawn(e Entity) EntityID {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{gen: 0})
		idx = uint32(len(a.slots) - 1)
	}

	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1 // Skip the zero generation on wraparound so NoEntity stays invalid
	}
	s.live = true
	e.ID = EntityID{Index: idx, Gen: s.gen}
	s.entity = e
	a.live++
	return e.ID
}

// Get returns the entity for id, or false if it is no longer alive.
// The pointer stays valid until the next Spawn.
func (a *Arena) Get(id EntityID) (*Entity, bool) {
	if int(id.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[id.Index]
	if !s.live || s.gen != id.Gen {
		return nil, false
	}
	return &s.entity, true
}

// Alive reports whether id refers to a live entity.
func (a *Arena) Alive(id EntityID) bool {
	_, ok := a.Get(id)
	return ok
}

// Remove frees the entity. Removing an absent entity is a no-op that
// returns false.
func (a *Arena) Remove(id EntityID) bool {
	if _, ok := a.Get(id); !ok {
		return false
	}
	s := &a.slots[id.Index]
	s.live = false
	s.entity = Entity{}
	a.free = append(a.free, id.Index)
	a.live--
	return true
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.live
}

// Count returns the number of live entities of the given category.
func (a *Arena) Count(c physics.Category) int {
	n := 0
	for i := range a.slots {
		if a.slots[i].live && a.slots[i].entity.Category == c {
			n++
		}
	}
	return n
}

// Each calls fn for every live entity in slot order.
func (a *Arena) Each(fn func(e *Entity)) {
	for i := range a.slots {
		if a.slots[i].live {
			fn(&a.slots[i].entity)
		}
	}
}
