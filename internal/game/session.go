// Package game implements the Desert Dash session: a car driving up a
// desert road, dodging obstacle cars that descend at constant speed.
// It has no graphics or audio dependencies; frontends supply a Canvas
// and an Audio implementation.
package game

import (
	"fmt"

	"github.com/vovakirdan/desert-dash/internal/config"
	"github.com/vovakirdan/desert-dash/internal/core"
)

// Session holds all mutable state of one run.
type Session struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	audio   Audio

	kinds         KindTable
	vehicleSize   core.Vec
	explosionSize core.Vec // Unscaled

	vehicle   core.Vec // Top-left of the player's car
	obstacles *ObstacleManager
	score     int
	gameOver  bool
	explosion core.Rect
	elapsed   float64 // Seconds of simulated play
	frames    int
	musicOn   bool
}

// New creates a session. Zero sizes in m fall back to the sizes in cfg,
// and a zero screen size in runtime falls back to the configured window.
func New(cfg config.GameConfig, m Metrics, runtime core.RuntimeConfig, audio Audio) *Session {
	if runtime.ScreenW <= 0 || runtime.ScreenH <= 0 {
		runtime.ScreenW = float64(cfg.Window.Width)
		runtime.ScreenH = float64(cfg.Window.Height)
	}
	if audio == nil {
		audio = NopAudio{}
	}

	vehicleSize := m.Vehicle
	if vehicleSize == (core.Vec{}) {
		vehicleSize = core.V(cfg.Vehicle.Size.Width, cfg.Vehicle.Size.Height)
	}
	explosionSize := m.Explosion
	if explosionSize == (core.Vec{}) {
		explosionSize = core.V(cfg.Explosion.Size.Width, cfg.Explosion.Size.Height)
	}

	s := &Session{
		cfg:           cfg,
		runtime:       runtime,
		audio:         audio,
		kinds:         KindsFromConfig(cfg.Obstacles.Kinds, m.Obstacles),
		vehicleSize:   vehicleSize,
		explosionSize: explosionSize,
	}
	s.obstacles = NewObstacleManager(runtime.Seed, s.kinds, &s.cfg)

	// Centered horizontally, just above the bottom edge
	s.vehicle = core.V(
		runtime.ScreenW/2-vehicleSize.X/2,
		runtime.ScreenH-vehicleSize.Y-cfg.Vehicle.BottomMargin,
	)
	return s
}

// Start begins the background music. Calling it again has no effect.
func (s *Session) Start() {
	if s.musicOn || s.gameOver {
		return
	}
	s.musicOn = true
	s.audio.PlayMusic()
}

// Step advances the session by dt seconds with the given held keys.
// A finished session is frozen: Step only reports its state.
func (s *Session) Step(dt float64, in core.InputFrame) core.StepResult {
	if s.gameOver {
		return core.StepResult{State: s.State()}
	}
	if dt < 0 {
		dt = 0
	}

	var events []core.Event
	s.frames++
	s.elapsed += dt

	s.steer(dt, in.Steering())
	s.obstacles.Advance(dt)

	if idx, hit := s.detectCollision(); hit {
		s.crash(s.obstacles.Obstacles()[idx])
		events = append(events, core.Event{Kind: core.EventCrash, Index: idx})
	}

	s.obstacles.Cull(s.runtime.ScreenH)

	// The crash frame does not spawn, so the score stops at the crash
	if !s.gameOver && s.obstacles.ShouldSpawn() {
		s.obstacles.Spawn()
		s.score++
		events = append(events, core.Event{Kind: core.EventSpawn, Index: s.obstacles.Len() - 1})
	}

	return core.StepResult{State: s.State(), Events: events}
}

// steer applies one direction of movement to the car.
// Horizontal movement is stopped at the corridor borders.
func (s *Session) steer(dt float64, dir core.Action) {
	step := s.cfg.Vehicle.Speed * dt
	left, right := s.cfg.Corridor.Left, s.cfg.Corridor.Right
	w, h := s.vehicleSize.X, s.vehicleSize.Y

	switch dir {
	case core.ActionLeft:
		if s.vehicle.X > 0 && s.vehicle.X > left {
			s.vehicle.X -= step
		}
	case core.ActionRight:
		if s.vehicle.X+w < s.runtime.ScreenW && s.vehicle.X+w < right {
			s.vehicle.X += step
		}
	case core.ActionUp:
		s.vehicle.Y -= step
	case core.ActionDown:
		s.vehicle.Y += step
	}

	// A long frame must not carry the car past a border
	s.vehicle.X = core.ClampF(s.vehicle.X, left, right-w)
	if s.cfg.Vehicle.ClampVertical {
		s.vehicle.Y = core.ClampF(s.vehicle.Y, 0, s.runtime.ScreenH-h)
	}
}

// detectCollision returns the index of the first obstacle whose center is
// within the threshold of the car's center on both axes.
func (s *Session) detectCollision() (int, bool) {
	center := s.Vehicle().Center()
	threshold := s.cfg.Collision.Threshold

	for i, o := range s.obstacles.Obstacles() {
		d := center.Sub(o.Rect().Center()).Abs()
		if d.X < threshold && d.Y < threshold {
			return i, true
		}
	}
	return -1, false
}

// crash ends the session on obstacle o.
func (s *Session) crash(o Obstacle) {
	s.gameOver = true
	s.explosion = core.CenteredOn(o.Rect().Center(), s.explosionSize.Scale(s.cfg.Explosion.Scale))

	if s.musicOn {
		s.audio.StopMusic()
		s.musicOn = false
	}
	s.audio.PlayCrash()
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.gameOver,
	}
}

// Vehicle returns the car's bounding box.
func (s *Session) Vehicle() core.Rect {
	return core.RectAt(s.vehicle, s.vehicleSize)
}

// Obstacles returns the active obstacles in spawn order.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles.Obstacles()
}

// Explosion returns the explosion box and whether it is showing.
func (s *Session) Explosion() (core.Rect, bool) {
	return s.explosion, s.gameOver
}

// Kinds returns the obstacle kinds table in use.
func (s *Session) Kinds() KindTable {
	return s.kinds
}

// Elapsed returns the simulated play time in seconds.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// Frames returns the number of frames simulated while playing.
func (s *Session) Frames() int {
	return s.frames
}

// ScoreText returns the HUD line.
func (s *Session) ScoreText() string {
	return fmt.Sprintf("Score: %d", s.score)
}

// Render draws the session back to front: background, obstacles, car,
// explosion once crashed, then the score.
func (s *Session) Render(c Canvas) {
	c.DrawBackground()

	for _, o := range s.obstacles.Obstacles() {
		c.DrawObstacle(o.Kind, o.Pos, o.Scale)
	}

	c.DrawVehicle(s.vehicle)

	if s.gameOver {
		c.DrawExplosion(core.V(s.explosion.X, s.explosion.Y), s.cfg.Explosion.Scale)
	}

	c.DrawText(core.V(s.cfg.HUD.X, s.cfg.HUD.Y), s.ScoreText())
}
