package config

import (
	_ "embed"
)

//go:embed defaults/skyfall.yaml
var defaultSkyfallYAML []byte

// DefaultSkyfallConfig returns the built-in configuration. It mirrors
// defaults/skyfall.yaml and is used when the embedded file cannot be parsed.
func DefaultSkyfallConfig() SkyfallConfig {
	return SkyfallConfig{
		Background: BackgroundConfig{
			SegmentHeight:   6,
			WidthRatio:      0.8,
			ScrollSpeed:     0.25,
			ScrollWhileDead: true,
		},
		Player: PlayerConfig{
			Width:         3,
			Height:        2,
			MarginMin:     0.05,
			MarginMax:     0.95,
			MoveDuration:  0.1,
			DeathDuration: 1.0,
			TiltGain:      150,
		},
		Obstacles: ObstacleConfig{
			Width:          3,
			Height:         1,
			FlightDuration: 5.0,
			FallDuration:   1.5,
			Count:          1,
		},
		Clouds: CloudConfig{
			Width:    6,
			Height:   2,
			Duration: 15.0,
			MinScale: 0.5,
			MaxScale: 1.5,
			Count:    1,
		},
		Projectiles: ProjectileConfig{
			Width:    3,
			Height:   1,
			Radius:   0.5,
			Duration: 0.25,
		},
		Input: InputConfig{
			TiltStep:           0.02,
			TiltDecay:          0.9,
			TiltMax:            0.2,
			AutopilotAmplitude: 0.05,
			AutopilotSpeed:     0.01,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSkyfallYAML
}
