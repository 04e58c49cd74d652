package game

import "github.com/vovakirdan/skyfall/internal/physics"

// Reaction is what a contact between two categories does to the world.
type Reaction int

const (
	ReactionNone Reaction = iota
	ReactionPlayerDeath
	ReactionObstacleDestroyed
)

// String returns a human-readable name for the reaction.
func (r Reaction) String() string {
	switch r {
	case ReactionPlayerDeath:
		return "player_death"
	case ReactionObstacleDestroyed:
		return "obstacle_destroyed"
	default:
		return "none"
	}
}

type collisionRule struct {
	match    func(a, b physics.Category) bool
	reaction Reaction
}

// collisionRules is evaluated top to bottom; the first match wins.
var collisionRules = []collisionRule{
	{
		match: func(a, b physics.Category) bool {
			return a == physics.CategoryPlayer || b == physics.CategoryPlayer
		},
		reaction: ReactionPlayerDeath,
	},
	{
		match: func(a, b physics.Category) bool {
			return (a == physics.CategoryProjectile && b == physics.CategoryObstacle) ||
				(a == physics.CategoryObstacle && b == physics.CategoryProjectile)
		},
		reaction: ReactionObstacleDestroyed,
	},
}

// Classify returns the reaction for a contact between categories a and b.
// Pairs that are not collidable never react.
func Classify(a, b physics.Category) Reaction {
	if !physics.Collides(a, b) {
		return ReactionNone
	}
	for _, r := range collisionRules {
		if r.match(a, b) {
			return r.reaction
		}
	}
	return ReactionNone
}

// Reactor applies reactions to the world.
type Reactor interface {
	KillPlayer() bool
	DestroyObstacle(id EntityID) bool
}

// Resolution records one resolved contact.
type Resolution struct {
	A, B     EntityID
	Reaction Reaction
	Applied  bool // False when the reaction was a no-op (already dead, already falling)
}

// Resolver turns reported contacts into reactions.
type Resolver struct {
	reactor Reactor
}

// NewResolver creates a resolver applying reactions through r.
func NewResolver(r Reactor) *Resolver {
	return &Resolver{reactor: r}
}

// Resolve handles a single contact between two category-tagged entities.
func (r *Resolver) Resolve(catA, catB physics.Category, a, b EntityID) Resolution {
	res := Resolution{A: a, B: b, Reaction: Classify(catA, catB)}

	switch res.Reaction {
	case ReactionPlayerDeath:
		res.Applied = r.reactor.KillPlayer()
	case ReactionObstacleDestroyed:
		obstacle := b
		if catA == physics.CategoryObstacle {
			obstacle = a
		}
		res.Applied = r.reactor.DestroyObstacle(obstacle)
	}
	return res
}

// ResolveReport handles all contacts reported in one step. Player deaths
// are resolved first, and an obstacle that touched the player in this
// report is not destroyed by a projectile in the same report.
func (r *Resolver) ResolveReport(contacts []physics.Contact) []Resolution {
	var out []Resolution
	touchedPlayer := make(map[EntityID]bool)

	for _, c := range contacts {
		if Classify(c.A.Category, c.B.Category) != ReactionPlayerDeath {
			continue
		}
		a, b := idFromHandle(c.A.Handle), idFromHandle(c.B.Handle)
		touchedPlayer[a] = true
		touchedPlayer[b] = true
		out = append(out, r.Resolve(c.A.Category, c.B.Category, a, b))
	}

	for _, c := range contacts {
		if Classify(c.A.Category, c.B.Category) != ReactionObstacleDestroyed {
			continue
		}
		a, b := idFromHandle(c.A.Handle), idFromHandle(c.B.Handle)
		if touchedPlayer[a] || touchedPlayer[b] {
			out = append(out, Resolution{A: a, B: b, Reaction: ReactionNone})
			continue
		}
		out = append(out, r.Resolve(c.A.Category, c.B.Category, a, b))
	}

	return out
}
