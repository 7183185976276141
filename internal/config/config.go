// Package config provides YAML-based game configuration loading
// for Desert Dash.
package config

// GameConfig contains all configuration for a Desert Dash session.
type GameConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Corridor  CorridorConfig  `yaml:"corridor"`
	Vehicle   VehicleConfig   `yaml:"vehicle"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Collision CollisionConfig `yaml:"collision"`
	Explosion ExplosionConfig `yaml:"explosion"`
	HUD       HUDConfig       `yaml:"hud"`
	Assets    AssetConfig     `yaml:"assets"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// WindowConfig defines the visible area.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CorridorConfig defines the road the vehicle is confined to.
type CorridorConfig struct {
	Left       float64 `yaml:"left"`
	Right      float64 `yaml:"right"`
	SpawnInset float64 `yaml:"spawn_inset"` // Obstacles spawn this far inside each border
}

// VehicleConfig defines the player's car.
type VehicleConfig struct {
	Speed         float64 `yaml:"speed"`          // Units per second
	BottomMargin  float64 `yaml:"bottom_margin"`  // Gap between car and bottom edge at start
	ClampVertical bool    `yaml:"clamp_vertical"` // Keep the car inside the window vertically
	Size          Size    `yaml:"size"`           // Used when no texture is loaded
}

// ObstacleConfig defines the descending cars.
type ObstacleConfig struct {
	Speed    float64      `yaml:"speed"`     // Units per second, downward
	Scale    float64      `yaml:"scale"`     // Texture scale factor
	SpawnGap float64      `yaml:"spawn_gap"` // Last obstacle must pass this y before the next spawns
	Kinds    []KindConfig `yaml:"kinds"`
}

// KindConfig describes one obstacle variant.
type KindConfig struct {
	Name    string `yaml:"name"`
	Texture string `yaml:"texture"`
	Size    Size   `yaml:"size"`  // Unscaled size, used when no texture is loaded
	Glyph   string `yaml:"glyph"` // Terminal rendition
	Color   string `yaml:"color"` // Terminal rendition
}

// CollisionConfig defines the center-distance collision test.
type CollisionConfig struct {
	Threshold float64 `yaml:"threshold"`
}

// ExplosionConfig defines the crash visual.
type ExplosionConfig struct {
	Scale float64 `yaml:"scale"`
	Size  Size    `yaml:"size"` // Unscaled size, used when no texture is loaded
}

// HUDConfig defines where the score is drawn.
type HUDConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	FontSize float64 `yaml:"font_size"`
}

// AssetConfig lists the files loaded at startup, relative to Dir.
type AssetConfig struct {
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
	Vehicle    string `yaml:"vehicle"`
	Explosion  string `yaml:"explosion"`
	Music      string `yaml:"music"`
	Crash      string `yaml:"crash"`
	Font       string `yaml:"font"`
}

// TerminalConfig defines the terminal rendition.
type TerminalConfig struct {
	TickRate  int `yaml:"tick_rate"`   // Frames per second
	KeyHoldMs int `yaml:"key_hold_ms"` // How long a key press counts as held
}

// Size is a width/height pair in world units.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}
