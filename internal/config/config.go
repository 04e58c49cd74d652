// Package config provides YAML-based game configuration loading for skyfall.
package config

// SkyfallConfig contains all tunables of the game. Durations are in seconds,
// sizes and speeds in world units (one unit is one terminal cell).
type SkyfallConfig struct {
	Background  BackgroundConfig `yaml:"background"`
	Player      PlayerConfig     `yaml:"player"`
	Obstacles   ObstacleConfig   `yaml:"obstacles"`
	Clouds      CloudConfig      `yaml:"clouds"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Input       InputConfig      `yaml:"input"`
}

// BackgroundConfig defines the scrolling building.
type BackgroundConfig struct {
	SegmentHeight   float64 `yaml:"segment_height"`
	WidthRatio      float64 `yaml:"width_ratio"`  // Building width as a share of the viewport
	ScrollSpeed     float64 `yaml:"scroll_speed"` // Units per tick
	ScrollWhileDead bool    `yaml:"scroll_while_dead"`
}

// PlayerConfig defines the hero.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MarginMin     float64 `yaml:"margin_min"` // Left safety margin as a share of the viewport width
	MarginMax     float64 `yaml:"margin_max"` // Right safety margin as a share of the viewport width
	MoveDuration  float64 `yaml:"move_duration"`
	DeathDuration float64 `yaml:"death_duration"`
	TiltGain      float64 `yaml:"tilt_gain"`
}

// ObstacleConfig defines the birds.
type ObstacleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	FlightDuration float64 `yaml:"flight_duration"`
	FallDuration   float64 `yaml:"fall_duration"`
	Count          int     `yaml:"count"` // Independent spawn loops
}

// CloudConfig defines the decorative clouds.
type CloudConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Duration float64 `yaml:"duration"`
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
	Count    int     `yaml:"count"`
}

// ProjectileConfig defines the web shots.
type ProjectileConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Radius   float64 `yaml:"radius"`
	Duration float64 `yaml:"duration"`
}

// InputConfig defines how keyboard presses and the autopilot emulate the
// accelerometer.
type InputConfig struct {
	TiltStep  float64 `yaml:"tilt_step"`  // Acceleration added per key press
	TiltDecay float64 `yaml:"tilt_decay"` // Fraction kept per tick
	TiltMax   float64 `yaml:"tilt_max"`

	AutopilotAmplitude float64 `yaml:"autopilot_amplitude"`
	AutopilotSpeed     float64 `yaml:"autopilot_speed"` // Noise distance travelled per sample
}
