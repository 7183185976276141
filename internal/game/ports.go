package game

import "github.com/vovakirdan/desert-dash/internal/core"

// Audio is the sound surface a session drives. Frontends implement it
// with whatever playback they have.
type Audio interface {
	// PlayMusic starts the looping background track.
	PlayMusic()
	// StopMusic stops the background track.
	StopMusic()
	// PlayCrash plays the one-shot crash clip.
	PlayCrash()
}

// Canvas is the drawing surface a session renders into.
// Positions are top-left corners in world units.
type Canvas interface {
	DrawBackground()
	DrawObstacle(kind ObstacleKind, pos core.Vec, scale float64)
	DrawVehicle(pos core.Vec)
	DrawExplosion(pos core.Vec, scale float64)
	DrawText(pos core.Vec, text string)
}

// Metrics carries the unscaled sprite sizes a session needs for
// layout and collision.
type Metrics struct {
	Vehicle   core.Vec
	Explosion core.Vec
	Obstacles []core.Vec // Indexed by ObstacleKind; missing entries fall back to config
}

// NopAudio discards every sound request.
type NopAudio struct{}

func (NopAudio) PlayMusic() {}
func (NopAudio) StopMusic() {}
func (NopAudio) PlayCrash() {}
