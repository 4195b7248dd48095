//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay renders queued lines of text on top of the curve view.
type Overlay struct {
	lines []string
}

// NewOverlay constructs an empty overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Print queues a line of text for the next draw.
func (o *Overlay) Print(line string) {
	o.lines = append(o.lines, line)
}

// Draw renders the queued lines, then clears the queue.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	y := textOriginY
	for _, line := range o.lines {
		text.Draw(screen, line, face, textOriginX, y, color.Black)
		y += lineAdvance
	}
	o.lines = o.lines[:0]
}

const (
	textOriginX = 20
	textOriginY = 20
	lineAdvance = 25
)
