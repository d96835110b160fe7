//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifepad/internal/core"
)

// CellCanvas keeps an offscreen image in sync with board cell reports
// and blits it scaled. Pixels are uploaded only when a report changed
// them.
type CellCanvas struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	on    color.Color
	off   color.Color
	dirty bool
}

// NewCellCanvas allocates a canvas primed with the board's current
// cells. Attach SetCell through Board.SetCellFunc to keep it in sync.
func NewCellCanvas(b *core.Board, on, off color.Color) *CellCanvas {
	w, h := b.Width(), b.Height()
	c := &CellCanvas{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
		on:  on,
		off: off,
	}
	FillCells(c.buf, b.Cells(), on, off)
	c.dirty = true
	return c
}

// SetCell records one cell report.
func (c *CellCanvas) SetCell(x, y int, cell core.Cell) {
	PaintCell(c.buf, c.w, x, y, cell, c.on, c.off)
	c.dirty = true
}

// Blit draws the canvas onto dst scaled by the given integer factor,
// uploading pixels only when reports arrived since the last call.
func (c *CellCanvas) Blit(dst *ebiten.Image, scale int) {
	if c.dirty {
		c.img.ReplacePixels(c.buf)
		c.dirty = false
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(c.img, op)
}

// Size returns the canvas dimensions in cells.
func (c *CellCanvas) Size() (int, int) { return c.w, c.h }
