package render

import (
	"image"
	"image/color"

	"lifepad/internal/core"
)

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

// FillCells converts a full board of cells into RGBA pixels in buf, one
// pixel per cell in row-major order. buf must hold 4*len(cells) bytes.
func FillCells(buf []byte, cells []core.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := rgba8(on)
	rOff, gOff, bOff, aOff := rgba8(off)
	for i, c := range cells {
		base := i * 4
		if c.Live() {
			buf[base+0] = rOn
			buf[base+1] = gOn
			buf[base+2] = bOn
			buf[base+3] = aOn
			continue
		}
		buf[base+0] = rOff
		buf[base+1] = gOff
		buf[base+2] = bOff
		buf[base+3] = aOff
	}
}

// PaintCell writes a single cell's pixel into buf for a board w cells
// wide.
func PaintCell(buf []byte, w, x, y int, c core.Cell, on, off color.Color) {
	col := off
	if c.Live() {
		col = on
	}
	r, g, b, a := rgba8(col)
	base := (y*w + x) * 4
	buf[base+0] = r
	buf[base+1] = g
	buf[base+2] = b
	buf[base+3] = a
}

// Upscale returns src scaled up by an integer factor using nearest
// neighbor sampling. Factors below 2 return src unchanged.
func Upscale(src *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return src
	}
	sb := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx()*factor, sb.Dy()*factor))
	for y := 0; y < sb.Dy(); y++ {
		for x := 0; x < sb.Dx(); x++ {
			base := src.PixOffset(sb.Min.X+x, sb.Min.Y+y)
			r := src.Pix[base+0]
			g := src.Pix[base+1]
			b := src.Pix[base+2]
			a := src.Pix[base+3]
			for dy := 0; dy < factor; dy++ {
				row := dst.PixOffset(x*factor, y*factor+dy)
				for dx := 0; dx < factor; dx++ {
					o := row + dx*4
					dst.Pix[o+0] = r
					dst.Pix[o+1] = g
					dst.Pix[o+2] = b
					dst.Pix[o+3] = a
				}
			}
		}
	}
	return dst
}
