package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/desert-dash/internal/core"
	"github.com/vovakirdan/desert-dash/internal/game"
)

// canvas draws a session onto an ebiten frame.
type canvas struct {
	dst     *ebiten.Image
	assets  *Assets
	face    *text.GoTextFace
	screenW float64
	screenH float64
}

func newCanvas(a *Assets, fontSize, screenW, screenH float64) *canvas {
	return &canvas{
		assets:  a,
		face:    &text.GoTextFace{Source: a.Font, Size: fontSize},
		screenW: screenW,
		screenH: screenH,
	}
}

// DrawBackground stretches the background over the whole window.
func (c *canvas) DrawBackground() {
	size := imageSize(c.assets.Background)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.screenW/size.X, c.screenH/size.Y)
	c.dst.DrawImage(c.assets.Background, op)
}

func (c *canvas) DrawObstacle(kind game.ObstacleKind, pos core.Vec, scale float64) {
	img, ok := c.assets.Obstacles.Get(kind)
	if !ok {
		return
	}
	c.drawSprite(img, pos, scale)
}

func (c *canvas) DrawVehicle(pos core.Vec) {
	c.drawSprite(c.assets.Vehicle, pos, 1)
}

func (c *canvas) DrawExplosion(pos core.Vec, scale float64) {
	c.drawSprite(c.assets.Explosion, pos, scale)
}

func (c *canvas) DrawText(pos core.Vec, s string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(c.dst, s, c.face, op)
}

func (c *canvas) drawSprite(img *ebiten.Image, pos core.Vec, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	c.dst.DrawImage(img, op)
}
