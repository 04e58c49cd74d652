package physics

import "github.com/vovakirdan/skyfall/internal/core"

// Handle identifies a body to the code that registered it. The detector
// never interprets it.
type Handle uint64

// Body is a circular collision shape.
type Body struct {
	Handle   Handle
	Category Category
	Center   core.Vec2
	Radius   float64
}

// Contact reports that two bodies started overlapping.
type Contact struct {
	A, B Body
}

type pairKey struct {
	lo, hi Handle
}

func keyOf(a, b Handle) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Detector reports contact-begin events between collidable bodies.
// A pair that keeps overlapping is reported once and stays quiet until the
// bodies separate, matching how physics engines deliver begin-contact
// callbacks. Not safe for concurrent use.
type Detector struct {
	touching map[pairKey]bool
	next     map[pairKey]bool
}

// NewDetector creates an empty contact detector.
func NewDetector() *Detector {
	return &Detector{
		touching: make(map[pairKey]bool),
		next:     make(map[pairKey]bool),
	}
}

// Detect checks every collidable pair and returns the contacts that began
// since the previous call. Bodies with a non-positive radius are ignored.
func (d *Detector) Detect(bodies []Body) []Contact {
	var began []Contact

	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		if a.Radius <= 0 {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if b.Radius <= 0 || !Collides(a.Category, b.Category) {
				continue
			}
			if a.Center.Sub(b.Center).Len() > a.Radius+b.Radius {
				continue
			}

			key := keyOf(a.Handle, b.Handle)
			d.next[key] = true
			if !d.touching[key] {
				began = append(began, Contact{A: a, B: b})
			}
		}
	}

	// Swap generations and reuse the old map for the next call
	d.touching, d.next = d.next, d.touching
	for k := range d.next {
		delete(d.next, k)
	}

	return began
}

// Reset forgets all ongoing contacts.
func (d *Detector) Reset() {
	for k := range d.touching {
		delete(d.touching, k)
	}
}
