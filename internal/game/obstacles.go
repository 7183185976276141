package game

import (
	"math/rand"

	"github.com/vovakirdan/desert-dash/internal/config"
	"github.com/vovakirdan/desert-dash/internal/core"
)

// Obstacle is a car descending the road at constant velocity.
type Obstacle struct {
	Kind     ObstacleKind
	Pos      core.Vec // Top-left, world units
	Velocity core.Vec // Units per second
	Scale    float64  // Texture scale
	Size     core.Vec // Scaled size
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.Rect {
	return core.RectAt(o.Pos, o.Size)
}

// update moves the obstacle by its velocity over dt seconds.
func (o *Obstacle) update(dt float64) {
	o.Pos = o.Pos.Add(o.Velocity.Scale(dt))
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Obstacles are kept in spawn order.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	kinds     KindTable
	cfg       *config.GameConfig
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, kinds KindTable, cfg *config.GameConfig) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		kinds:     kinds,
		cfg:       cfg,
	}
	om.Reset(seed)
	return om
}

// Reset clears all obstacles and reseeds the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.obstacles = om.obstacles[:0]
	om.rng = rand.New(rand.NewSource(seed))
}

// Advance moves every obstacle down by its velocity.
func (om *ObstacleManager) Advance(dt float64) {
	for i := range om.obstacles {
		om.obstacles[i].update(dt)
	}
}

// Cull removes obstacles whose top edge is below screenH, keeping order.
// Returns the number removed.
func (om *ObstacleManager) Cull(screenH float64) int {
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.Pos.Y <= screenH {
			kept = append(kept, o)
		}
	}
	removed := len(om.obstacles) - len(kept)
	clear(om.obstacles[len(kept):])
	om.obstacles = kept
	return removed
}

// ShouldSpawn reports whether the road has room for the next obstacle:
// either it is empty or the most recent obstacle has passed the spawn gap.
func (om *ObstacleManager) ShouldSpawn() bool {
	last, ok := om.Last()
	if !ok {
		return true
	}
	return last.Pos.Y > om.cfg.Obstacles.SpawnGap
}

// Spawn adds an obstacle of a random kind at a random x inside the corridor.
func (om *ObstacleManager) Spawn() Obstacle {
	kind := ObstacleKind(om.rng.Intn(om.kinds.Len()))

	minX := om.cfg.Corridor.Left + om.cfg.Corridor.SpawnInset
	maxX := om.cfg.Corridor.Right - om.cfg.Corridor.SpawnInset
	x := minX + float64(om.rng.Intn(int(maxX-minX)))

	return om.SpawnAt(kind, x)
}

// SpawnAt adds an obstacle of the given kind at x, fully above the visible area.
func (om *ObstacleManager) SpawnAt(kind ObstacleKind, x float64) Obstacle {
	scale := om.cfg.Obstacles.Scale
	size := om.kinds.Spec(kind).Size.Scale(scale)

	o := Obstacle{
		Kind:     kind,
		Pos:      core.V(x, -size.Y),
		Velocity: core.V(0, om.cfg.Obstacles.Speed),
		Scale:    scale,
		Size:     size,
	}
	om.obstacles = append(om.obstacles, o)
	return o
}

// Obstacles returns the current obstacles in spawn order.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Len returns the number of active obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}

// Last returns the most recently spawned obstacle still on the road.
func (om *ObstacleManager) Last() (Obstacle, bool) {
	if len(om.obstacles) == 0 {
		return Obstacle{}, false
	}
	return om.obstacles[len(om.obstacles)-1], true
}
