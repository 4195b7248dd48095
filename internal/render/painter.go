//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// CurvePainter updates a single RGBA image from per-column curve samples.
type CurvePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewCurvePainter allocates a painter for a viewport of size w*h.
func NewCurvePainter(w, h int) *CurvePainter {
	cp := &CurvePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	cp.img = ebiten.NewImage(w, h)
	return cp
}

// Plot traces the samples into the painter image and draws it onto dst.
func (cp *CurvePainter) Plot(dst *ebiten.Image, ys []float64, fg, bg color.Color) {
	if len(ys) != cp.w {
		return
	}
	TraceCurve(cp.buf, cp.w, cp.h, ys, fg, bg)
	cp.img.ReplacePixels(cp.buf)
	dst.DrawImage(cp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (cp *CurvePainter) Size() (int, int) { return cp.w, cp.h }
