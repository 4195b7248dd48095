package render

import (
	"image/color"
	"math"
)

// TraceCurve rasterizes per-column sample heights into an RGBA buffer as a
// connected polyline: the buffer is cleared to bg, then each column is
// joined to its predecessor with a vertical span of fg pixels. Samples are
// clamped to the vertical range. buf must hold 4*w*h bytes and ys at least
// one sample per column; mismatched sizes leave the buffer untouched.
func TraceCurve(buf []byte, w, h int, ys []float64, fg, bg color.Color) {
	if w <= 0 || h <= 0 || len(buf) < 4*w*h || len(ys) < w {
		return
	}
	rf, gf, bf, af := rgba8(fg)
	rb, gb, bb, ab := rgba8(bg)

	for i := 0; i < w*h; i++ {
		base := i * 4
		buf[base+0] = rb
		buf[base+1] = gb
		buf[base+2] = bb
		buf[base+3] = ab
	}

	prev := h / 2
	for x := 0; x < w; x++ {
		y := clampRound(ys[x], h)
		top, bottom := y, prev
		if top > bottom {
			top, bottom = bottom, top
		}
		for yy := top; yy <= bottom; yy++ {
			base := (yy*w + x) * 4
			buf[base+0] = rf
			buf[base+1] = gf
			buf[base+2] = bf
			buf[base+3] = af
		}
		prev = y
	}
}

// clampRound rounds a sample to the nearest row and clamps it into [0, h).
func clampRound(y float64, h int) int {
	row := int(math.Round(y))
	if row < 0 {
		return 0
	}
	if row >= h {
		return h - 1
	}
	return row
}

func rgba8(c color.Color) (uint8, uint8, uint8, uint8) {
	r, g, b, a := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}
