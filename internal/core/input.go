package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionTiltLeft         // Left arrow, A - lean left
	ActionTiltRight        // Right arrow, D - lean right
	ActionFire             // Space - shoot at the nearest bird
	ActionRestart          // R - fresh world
	ActionQuit             // Q, Ctrl+C - exit
	ActionPause            // P, Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTiltLeft:
		return "TiltLeft"
	case ActionTiltRight:
		return "TiltRight"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the platform observed during one tick.
// Besides discrete actions it carries the latest accelerometer sample and
// the taps (in world coordinates) that arrived since the previous tick.
type InputFrame struct {
	Actions map[Action]bool

	// Tilt is the horizontal acceleration sample; valid only when HasTilt.
	Tilt    float64
	HasTilt bool

	Taps []Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetTilt records an accelerometer sample. Later samples overwrite earlier ones.
func (f *InputFrame) SetTilt(accel float64) {
	f.Tilt = accel
	f.HasTilt = true
}

// Tap queues a fire command at a world-space point.
func (f *InputFrame) Tap(p Vec2) {
	f.Taps = append(f.Taps, p)
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Tilt = 0
	f.HasTilt = false
	f.Taps = f.Taps[:0]
}
