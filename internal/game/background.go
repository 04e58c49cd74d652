package game

import (
	"math"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
)

// Segment is one floor of the building.
type Segment struct {
	Y      float64 // Bottom edge
	Height float64
}

// Top returns the upper edge of the segment.
func (s Segment) Top() float64 {
	return s.Y + s.Height
}

// Scroller fakes the fall by moving a stack of building floors upwards and
// recycling floors that left the top of the viewport to the bottom of the
// stack.
type Scroller struct {
	segments []Segment
	viewport core.Vec2
	speed    float64
	x, width float64
}

// NewScroller tiles the viewport with floors. One extra floor sits below the
// bottom edge and one above the top so recycling never shows a seam.
func NewScroller(viewport core.Vec2, cfg config.BackgroundConfig) *Scroller {
	h := cfg.SegmentHeight
	floors := int(math.Floor(viewport.Y / h))

	s := &Scroller{
		segments: make([]Segment, 0, floors+3),
		viewport: viewport,
		speed:    cfg.ScrollSpeed,
		width:    viewport.X * cfg.WidthRatio,
	}
	s.x = (viewport.X - s.width) / 2

	for floor := -1; floor <= floors+1; floor++ {
		s.segments = append(s.segments, Segment{
			Y:      float64(floor) * h,
			Height: h,
		})
	}
	return s
}

// Tick advances every floor by the per-frame delta and recycles floors that
// scrolled fully past the top edge to sit directly below the lowest floor.
func (s *Scroller) Tick() {
	for i := range s.segments {
		s.segments[i].Y += s.speed
	}

	for i := range s.segments {
		if s.segments[i].Y > s.viewport.Y {
			s.segments[i].Y = s.lowest() - s.segments[i].Height
		}
	}
}

func (s *Scroller) lowest() float64 {
	low := math.Inf(1)
	for _, seg := range s.segments {
		low = math.Min(low, seg.Y)
	}
	return low
}

// Segments returns the floors in creation order.
func (s *Scroller) Segments() []Segment {
	return s.segments
}

// Bounds returns the horizontal extent of the building.
func (s *Scroller) Bounds() (x, width float64) {
	return s.x, s.width
}
