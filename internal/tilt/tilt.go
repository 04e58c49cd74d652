// Package tilt provides accelerometer stand-ins for terminals, which have no
// motion sensor. A Sensor reports the horizontal acceleration once per tick;
// ok is false when no reading is available and the game keeps its previous
// target.
package tilt

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
)

// Sensor yields horizontal acceleration samples.
type Sensor interface {
	Sample() (accel float64, ok bool)
}

// None never has data.
type None struct{}

// Sample always reports no data.
func (None) Sample() (float64, bool) {
	return 0, false
}

// Keyboard turns discrete key presses into a decaying tilt. Each press leans
// the device a little further in that direction; with no presses the value
// relaxes back to level.
type Keyboard struct {
	step  float64
	decay float64
	max   float64

	value  float64
	active bool
}

// NewKeyboard creates a keyboard sensor from the input config.
func NewKeyboard(cfg config.InputConfig) *Keyboard {
	return &Keyboard{
		step:  cfg.TiltStep,
		decay: cfg.TiltDecay,
		max:   cfg.TiltMax,
	}
}

// Nudge leans left (dir < 0) or right (dir > 0).
func (k *Keyboard) Nudge(dir float64) {
	if dir == 0 {
		return
	}
	k.value = core.ClampF(k.value+math.Copysign(k.step, dir), -k.max, k.max)
	k.active = true
}

// Level drops any accumulated tilt.
func (k *Keyboard) Level() {
	k.value = 0
}

// Sample returns the current tilt and then decays it. There is no data until
// the first key press.
func (k *Keyboard) Sample() (float64, bool) {
	if !k.active {
		return 0, false
	}
	v := k.value
	k.value *= k.decay
	if math.Abs(k.value) < 1e-6 {
		k.value = 0
	}
	return v, true
}

// Perlin wanders smoothly left and right along a Perlin noise curve. It is
// the autopilot for demos and SSH spectators.
type Perlin struct {
	noise     *perlin.Perlin
	amplitude float64
	speed     float64
	t         float64
}

// NewPerlin creates an autopilot sensor. The same seed yields the same path.
func NewPerlin(seed int64, cfg config.InputConfig) *Perlin {
	alpha := 2.0  // Smoothness
	beta := 2.0   // Frequency
	n := int32(3) // Octaves
	return &Perlin{
		noise:     perlin.NewPerlin(alpha, beta, n, seed),
		amplitude: cfg.AutopilotAmplitude,
		speed:     cfg.AutopilotSpeed,
	}
}

// Sample returns the noise at the current position and advances along the
// curve.
func (p *Perlin) Sample() (float64, bool) {
	// Offset y so integer steps of t don't land on lattice zeros
	v := p.noise.Noise2D(p.t, 0.5)
	p.t += p.speed
	return core.ClampF(v, -1, 1) * p.amplitude, true
}

// Blend prefers the first sensor with data.
type Blend []Sensor

// Sample returns the first available reading. Every sensor is sampled each
// call so stateful sensors keep advancing.
func (b Blend) Sample() (float64, bool) {
	var (
		accel float64
		found bool
	)
	for _, s := range b {
		v, ok := s.Sample()
		if ok && !found {
			accel, found = v, true
		}
	}
	return accel, found
}
