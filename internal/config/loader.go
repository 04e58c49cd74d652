package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.skyfall/configs/skyfall.yaml -> ./configs/skyfall.yaml -> embedded default
func Load(customPath string) (SkyfallConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (SkyfallConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultSkyfallConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("skyfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultSkyfallConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "skyfall.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultSkyfallConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSkyfallYAML, &cfg); err != nil {
		return DefaultSkyfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfall", "configs", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg SkyfallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate reports every setting that would make the simulation degenerate.
func (c SkyfallConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: invalid %s: must be > 0, got %v", name, v))
		}
	}

	positive("background.segment_height", c.Background.SegmentHeight)
	positive("background.width_ratio", c.Background.WidthRatio)
	positive("background.scroll_speed", c.Background.ScrollSpeed)
	if c.Background.ScrollSpeed >= c.Background.SegmentHeight {
		errs = append(errs, errors.New("config: invalid background.scroll_speed: must be smaller than segment_height"))
	}

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.move_duration", c.Player.MoveDuration)
	positive("player.death_duration", c.Player.DeathDuration)
	if c.Player.MarginMin < 0 || c.Player.MarginMax > 1 || c.Player.MarginMin >= c.Player.MarginMax {
		errs = append(errs, fmt.Errorf("config: invalid player margins: need 0 <= margin_min < margin_max <= 1, got %v..%v",
			c.Player.MarginMin, c.Player.MarginMax))
	}

	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.height", c.Obstacles.Height)
	positive("obstacles.flight_duration", c.Obstacles.FlightDuration)
	positive("obstacles.fall_duration", c.Obstacles.FallDuration)
	if c.Obstacles.Count < 1 {
		errs = append(errs, fmt.Errorf("config: invalid obstacles.count: must be >= 1, got %d", c.Obstacles.Count))
	}

	positive("clouds.width", c.Clouds.Width)
	positive("clouds.height", c.Clouds.Height)
	positive("clouds.duration", c.Clouds.Duration)
	positive("clouds.min_scale", c.Clouds.MinScale)
	if c.Clouds.MaxScale < c.Clouds.MinScale {
		errs = append(errs, fmt.Errorf("config: invalid clouds scale range %v..%v", c.Clouds.MinScale, c.Clouds.MaxScale))
	}
	if c.Clouds.Count < 0 {
		errs = append(errs, fmt.Errorf("config: invalid clouds.count: must be >= 0, got %d", c.Clouds.Count))
	}

	positive("projectiles.width", c.Projectiles.Width)
	positive("projectiles.height", c.Projectiles.Height)
	positive("projectiles.radius", c.Projectiles.Radius)
	positive("projectiles.duration", c.Projectiles.Duration)

	if c.Input.TiltDecay < 0 || c.Input.TiltDecay > 1 {
		errs = append(errs, fmt.Errorf("config: invalid input.tilt_decay: must be within [0, 1], got %v", c.Input.TiltDecay))
	}
	positive("input.tilt_max", c.Input.TiltMax)
	if c.Input.AutopilotAmplitude < 0 {
		errs = append(errs, fmt.Errorf("config: invalid input.autopilot_amplitude: must be >= 0, got %v", c.Input.AutopilotAmplitude))
	}

	return errors.Join(errs...)
}
