package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local config directories.
const FileName = "desert.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.desert/configs/desert.yaml -> ./configs/desert.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets. Only an explicit customPath can produce an error.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultGameConfig and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable road.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Corridor.Left >= c.Corridor.Right {
		errs = append(errs, fmt.Errorf("corridor left (%g) must be less than right (%g)", c.Corridor.Left, c.Corridor.Right))
	}
	if span := (c.Corridor.Right - c.Corridor.SpawnInset) - (c.Corridor.Left + c.Corridor.SpawnInset); span < 1 {
		errs = append(errs, fmt.Errorf("spawn_inset %g leaves no room to spawn obstacles", c.Corridor.SpawnInset))
	}
	if c.Vehicle.Speed < 0 || c.Obstacles.Speed < 0 {
		errs = append(errs, errors.New("speeds must not be negative"))
	}
	if c.Obstacles.Scale <= 0 || c.Explosion.Scale <= 0 {
		errs = append(errs, errors.New("scales must be positive"))
	}
	if len(c.Obstacles.Kinds) == 0 {
		errs = append(errs, errors.New("at least one obstacle kind is required"))
	}
	for i, k := range c.Obstacles.Kinds {
		if k.Name == "" {
			errs = append(errs, fmt.Errorf("obstacle kind %d has no name", i))
		}
	}
	if w := c.Vehicle.Size.Width; w <= 0 || w >= c.Corridor.Right-c.Corridor.Left {
		errs = append(errs, fmt.Errorf("vehicle width %g must fit inside the corridor [%g, %g]", w, c.Corridor.Left, c.Corridor.Right))
	}
	if c.Terminal.KeyHoldMs <= 0 {
		errs = append(errs, fmt.Errorf("terminal key_hold_ms must be positive, got %d", c.Terminal.KeyHoldMs))
	}
	if c.Collision.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("collision threshold must be positive, got %g", c.Collision.Threshold))
	}

	return errors.Join(errs...)
}

// AssetPath resolves an asset file name against the configured directory.
func (a AssetConfig) AssetPath(name string) string {
	if a.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.Dir, name)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".desert", "configs", filename)
}
