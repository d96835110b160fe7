//go:build ebiten

package ui

import (
	"image/color"

	"lifepad/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional grid lines over the board view to help aim
// cell edits.
type Overlay struct {
	size  core.Size
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a board of the given size.
func NewOverlay(size core.Size, scale int) *Overlay {
	o := &Overlay{size: size, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the grid lines when G is pressed.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the grid lines onto the screen. Lines are skipped at
// scale 1 where they would cover the cells themselves.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.scale <= 1 {
		return
	}
	lineColor := color.RGBA{R: 70, G: 74, B: 84, A: 110}
	widthPx := float64(o.size.W * o.scale)
	heightPx := float64(o.size.H * o.scale)
	for x := 1; x < o.size.W; x++ {
		o.drawLine(screen, float64(x*o.scale), 0, 1, heightPx, lineColor)
	}
	for y := 1; y < o.size.H; y++ {
		o.drawLine(screen, 0, float64(y*o.scale), widthPx, 1, lineColor)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
