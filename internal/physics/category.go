// Package physics holds the collision vocabulary shared by the game core and
// the contact detector that stands in for a physics engine's broad-phase.
package physics

// Category tags an entity's role for collision filtering.
type Category uint8

const (
	CategoryPlayer Category = iota
	CategoryObstacle
	CategoryProjectile
	CategoryDecoration
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryObstacle:
		return "obstacle"
	case CategoryProjectile:
		return "projectile"
	case CategoryDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Mask is a bitset of categories.
type Mask uint32

// Bit returns the mask containing only c. Decorations never take part in
// collisions and map to the empty mask.
func (c Category) Bit() Mask {
	switch c {
	case CategoryPlayer, CategoryObstacle, CategoryProjectile:
		return 1 << Mask(c)
	default:
		return 0
	}
}

// Has reports whether c is in the mask.
func (m Mask) Has(c Category) bool {
	bit := c.Bit()
	return bit != 0 && m&bit == bit
}

// CollisionMask returns the categories c reacts to.
func CollisionMask(c Category) Mask {
	switch c {
	case CategoryPlayer:
		return CategoryObstacle.Bit()
	case CategoryObstacle:
		return CategoryPlayer.Bit() | CategoryProjectile.Bit()
	case CategoryProjectile:
		return CategoryObstacle.Bit()
	default:
		return 0
	}
}

// Collides reports whether bodies of categories a and b generate contacts.
// The relation is symmetric.
func Collides(a, b Category) bool {
	return CollisionMask(a).Has(b) && CollisionMask(b).Has(a)
}
