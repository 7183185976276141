package config

import (
	_ "embed"
)

//go:embed defaults/desert.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
// Values mirror defaults/desert.yaml and are used if the embedded file
// cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Desert Dash",
		},
		Corridor: CorridorConfig{
			Left:       150,
			Right:      620,
			SpawnInset: 50,
		},
		Vehicle: VehicleConfig{
			Speed:         200,
			BottomMargin:  20,
			ClampVertical: false,
			Size:          Size{Width: 60, Height: 110},
		},
		Obstacles: ObstacleConfig{
			Speed:    200,
			Scale:    0.3,
			SpawnGap: 100,
			Kinds: []KindConfig{
				{Name: "sedan", Texture: "obstacle1.png", Size: Size{Width: 200, Height: 360}, Glyph: "▓", Color: "red"},
				{Name: "truck", Texture: "obstacle2.png", Size: Size{Width: 200, Height: 400}, Glyph: "█", Color: "cyan"},
			},
		},
		Collision: CollisionConfig{
			Threshold: 30,
		},
		Explosion: ExplosionConfig{
			Scale: 0.15,
			Size:  Size{Width: 500, Height: 500},
		},
		HUD: HUDConfig{
			X:        10,
			Y:        10,
			FontSize: 30,
		},
		Assets: AssetConfig{
			Dir:        ".",
			Background: "background.png",
			Vehicle:    "car.png",
			Explosion:  "explosion.png",
			Music:      "background_music.ogg",
			Crash:      "crash_sound.wav",
			Font:       "Oswald.ttf",
		},
		Terminal: TerminalConfig{
			TickRate:  60,
			KeyHoldMs: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
