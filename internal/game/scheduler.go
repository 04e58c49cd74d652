package game

import "github.com/vovakirdan/skyfall/internal/core"

// Completion names the state transition a finished move triggers.
type Completion uint8

const (
	CompletionNone Completion = iota
	CompletionObstacleReachedEnd
	CompletionObstacleFell
	CompletionCloudExited
	CompletionProjectileArrived
	CompletionPlayerFell
)

// String returns a human-readable name for the completion.
func (c Completion) String() string {
	switch c {
	case CompletionNone:
		return "none"
	case CompletionObstacleReachedEnd:
		return "obstacle_reached_end"
	case CompletionObstacleFell:
		return "obstacle_fell"
	case CompletionCloudExited:
		return "cloud_exited"
	case CompletionProjectileArrived:
		return "projectile_arrived"
	case CompletionPlayerFell:
		return "player_fell"
	default:
		return "unknown"
	}
}

// completionEpsilon absorbs float drift from summing fixed tick durations.
const completionEpsilon = 1e-9

type move struct {
	id       EntityID
	from, to core.Vec2
	elapsed  float64
	duration float64
	done     Completion
}

// Finished is a move that reached its destination during Advance.
type Finished struct {
	ID         EntityID
	Completion Completion
}

// Scheduler runs timed linear moves. Each entity has at most one move in
// flight; finished moves are reported back instead of invoking callbacks.
type Scheduler struct {
	moves []move
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Move starts a linear move of id from its current position to `to` over
// duration seconds, replacing any move already in flight for that entity.
func (s *Scheduler) Move(a *Arena, id EntityID, to core.Vec2, duration float64, done Completion) {
	e, ok := a.Get(id)
	if !ok {
		return
	}
	s.Cancel(id)
	s.moves = append(s.moves, move{
		id:       id,
		from:     e.Pos,
		to:       to,
		duration: duration,
		done:     done,
	})
}

// Cancel drops the in-flight move of id, if any. The entity stays where it is.
func (s *Scheduler) Cancel(id EntityID) bool {
	for i := range s.moves {
		if s.moves[i].id == id {
			s.moves = append(s.moves[:i], s.moves[i+1:]...)
			return true
		}
	}
	return false
}

// Moving reports whether id has a move in flight.
func (s *Scheduler) Moving(id EntityID) bool {
	for i := range s.moves {
		if s.moves[i].id == id {
			return true
		}
	}
	return false
}

// Destination returns the target of id's in-flight move.
func (s *Scheduler) Destination(id EntityID) (core.Vec2, bool) {
	for i := range s.moves {
		if s.moves[i].id == id {
			return s.moves[i].to, true
		}
	}
	return core.Vec2{}, false
}

// Len returns the number of moves in flight.
func (s *Scheduler) Len() int {
	return len(s.moves)
}

// Advance progresses every move by dt seconds and writes the interpolated
// positions into the arena. Moves whose entity was removed are dropped.
// Moves that reached their duration are returned in scheduling order; the
// caller applies their transitions after Advance returns.
func (s *Scheduler) Advance(a *Arena, dt float64) []Finished {
	var finished []Finished
	kept := s.moves[:0]

	for _, m := range s.moves {
		e, ok := a.Get(m.id)
		if !ok {
			continue
		}

		m.elapsed += dt
		if m.duration <= 0 || m.elapsed >= m.duration-completionEpsilon {
			e.Pos = m.to
			finished = append(finished, Finished{ID: m.id, Completion: m.done})
			continue
		}

		e.Pos = core.Lerp(m.from, m.to, m.elapsed/m.duration)
		kept = append(kept, m)
	}

	// Clear the tail so dropped moves don't linger in the backing array
	for i := len(kept); i < len(s.moves); i++ {
		s.moves[i] = move{}
	}
	s.moves = kept
	return finished
}

// Reset drops every move.
func (s *Scheduler) Reset() {
	s.moves = s.moves[:0]
}
