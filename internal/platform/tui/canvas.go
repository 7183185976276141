package tui

import (
	"math"

	"github.com/vovakirdan/desert-dash/internal/config"
	"github.com/vovakirdan/desert-dash/internal/core"
	"github.com/vovakirdan/desert-dash/internal/game"
)

// glyph is the terminal look of one sprite.
type glyph struct {
	r     rune
	color core.Color
}

// canvas draws a session onto a character Screen, scaling the world
// so it always fills the screen.
type canvas struct {
	screen    *core.Screen
	worldW    float64
	worldH    float64
	corridor  config.CorridorConfig
	kinds     game.KindTable
	glyphs    []glyph // Indexed by ObstacleKind
	vehicle   core.Vec
	explosion core.Vec // Unscaled
}

func newCanvas(screen *core.Screen, cfg config.GameConfig, kinds game.KindTable) *canvas {
	c := &canvas{
		screen:    screen,
		worldW:    float64(cfg.Window.Width),
		worldH:    float64(cfg.Window.Height),
		corridor:  cfg.Corridor,
		kinds:     kinds,
		vehicle:   core.V(cfg.Vehicle.Size.Width, cfg.Vehicle.Size.Height),
		explosion: core.V(cfg.Explosion.Size.Width, cfg.Explosion.Size.Height),
	}
	for _, k := range cfg.Obstacles.Kinds {
		g := glyph{r: '█', color: core.ParseColor(k.Color)}
		for _, r := range k.Glyph {
			g.r = r
			break
		}
		c.glyphs = append(c.glyphs, g)
	}
	return c
}

// cellSize returns the world size of one character cell.
func (c *canvas) cellSize() core.Vec {
	cols := max(c.screen.Width(), 1)
	rows := max(c.screen.Height(), 1)
	return core.V(c.worldW/float64(cols), c.worldH/float64(rows))
}

// column maps a world x to a screen column.
func (c *canvas) column(x float64) int {
	return int(math.Floor(x / c.cellSize().X))
}

// cells maps a world box to the half-open cell range it covers.
// Any visible box covers at least one cell.
func (c *canvas) cells(r core.Rect) (x0, y0, x1, y1 int) {
	cell := c.cellSize()
	x0 = int(math.Floor(r.X / cell.X))
	y0 = int(math.Floor(r.Y / cell.Y))
	x1 = max(int(math.Ceil(r.Right()/cell.X)), x0+1)
	y1 = max(int(math.Ceil(r.Bottom()/cell.Y)), y0+1)
	return x0, y0, x1, y1
}

// DrawBackground paints desert sand outside the road and its two edges.
func (c *canvas) DrawBackground() {
	c.screen.Fill('░', core.ColorSand)

	left, right := c.column(c.corridor.Left), c.column(c.corridor.Right)
	c.screen.FillRect(left, 0, right, c.screen.Height(), ' ', core.ColorDefault)
	c.screen.DrawVLine(left, 0, c.screen.Height(), '│', core.ColorGray)
	c.screen.DrawVLine(right, 0, c.screen.Height(), '│', core.ColorGray)
}

func (c *canvas) DrawObstacle(kind game.ObstacleKind, pos core.Vec, scale float64) {
	if int(kind) < 0 || int(kind) >= c.kinds.Len() {
		return
	}
	g := glyph{r: '█', color: core.ColorRed}
	if int(kind) < len(c.glyphs) {
		g = c.glyphs[kind]
	}
	c.fill(core.RectAt(pos, c.kinds.Spec(kind).Size.Scale(scale)), g)
}

func (c *canvas) DrawVehicle(pos core.Vec) {
	c.fill(core.RectAt(pos, c.vehicle), glyph{r: '▲', color: core.ColorBrightYellow})
}

func (c *canvas) DrawExplosion(pos core.Vec, scale float64) {
	c.fill(core.RectAt(pos, c.explosion.Scale(scale)), glyph{r: '*', color: core.ColorOrange})
}

func (c *canvas) DrawText(pos core.Vec, text string) {
	x0, y0, _, _ := c.cells(core.RectAt(pos, core.Vec{}))
	// Keep the anchor on screen after a resize shrinks the grid
	x0 = core.Clamp(x0, 0, c.screen.Width()-1)
	y0 = core.Clamp(y0, 0, c.screen.Height()-1)
	c.screen.DrawText(x0, y0, text, core.ColorBrightWhite)
}

func (c *canvas) fill(r core.Rect, g glyph) {
	x0, y0, x1, y1 := c.cells(r)
	c.screen.FillRect(x0, y0, x1, y1, g.r, g.color)
}
