package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/desert-dash/internal/game"
)

// overlay prints frame statistics in the bottom-left corner.
type overlay struct {
	face   text.Face
	height float64
}

func newOverlay(height int) *overlay {
	return &overlay{
		face:   text.NewGoXFace(bitmapfont.Face),
		height: float64(height),
	}
}

func (o *overlay) draw(screen *ebiten.Image, s *game.Session) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, o.height-20)
	op.ColorScale.ScaleWithColor(color.RGBA{255, 255, 0, 255})
	text.Draw(screen, overlayText(ebiten.ActualTPS(), ebiten.ActualFPS(), s), o.face, op)
}

func overlayText(tps, fps float64, s *game.Session) string {
	return fmt.Sprintf("TPS %.0f  FPS %.0f  obstacles %d  frames %d  t %.1fs",
		tps, fps, len(s.Obstacles()), s.Frames(), s.Elapsed())
}
