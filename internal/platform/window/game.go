package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/desert-dash/internal/core"
	"github.com/vovakirdan/desert-dash/internal/game"
)

// steeringKeys maps arrow keys to actions.
var steeringKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
}

// readInput builds the frame's input from whichever keys are held.
func readInput(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range steeringKeys {
		if pressed(k.key) {
			in.Set(k.action)
		}
	}
	return in
}

// windowGame adapts a session to ebiten's game loop.
type windowGame struct {
	session *game.Session
	canvas  *canvas
	overlay *overlay // Nil unless debugging
	logger  *log.Logger
	width   int
	height  int
	last    time.Time
	now     func() time.Time
}

func newWindowGame(s *game.Session, c *canvas, width, height int, logger *log.Logger) *windowGame {
	return &windowGame{
		session: s,
		canvas:  c,
		logger:  logger,
		width:   width,
		height:  height,
		now:     time.Now,
	}
}

// Update advances the session by the real time since the previous frame.
func (g *windowGame) Update() error {
	now := g.now()
	var dt float64
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	res := g.session.Step(dt, readInput(ebiten.IsKeyPressed))
	for _, ev := range res.Events {
		if ev.Kind == core.EventCrash {
			g.logger.Info("crashed", "score", res.State.Score, "played", g.session.Elapsed())
		}
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.session.Render(g.canvas)
	if g.overlay != nil {
		g.overlay.draw(screen, g.session)
	}
}

// Layout keeps the world at the configured size; ebiten scales it to the window.
func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
