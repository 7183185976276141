package core

// RuntimeConfig contains configuration passed to a session at creation.
type RuntimeConfig struct {
	ScreenW float64 // Visible area width in world units
	ScreenH float64 // Visible area height in world units
	Seed    int64   // RNG seed for obstacle spawning
}

// DefaultConfig returns a RuntimeConfig for the standard 800x600 window.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 800,
		ScreenH: 600,
		Seed:    0, // 0 means the CLI picks one from the clock
	}
}

// GameState represents the current state of a session.
type GameState struct {
	Score    int  // Number of obstacles spawned so far
	GameOver bool // Whether a collision has ended the session
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventSpawn EventKind = iota // An obstacle entered the road
	EventCrash                  // The vehicle hit an obstacle
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Event is a notable transition reported by a step.
type Event struct {
	Kind  EventKind
	Index int // Obstacle index in spawn order at the time of the event
}

// StepResult is returned by Session.Step after each frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred in the step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
