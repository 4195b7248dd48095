//go:build ebiten

package app

import (
	"image/color"

	"perlin-toy/internal/core"
	"perlin-toy/internal/perlin"
	"perlin-toy/internal/render"
	"perlin-toy/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	persistenceStep = 0.1
	scaleStep       = 5
)

// Game adapts the noise generator to the ebiten.Game interface: it samples
// the source once per pixel column and traces the result as a curve.
type Game struct {
	cfg     Config
	source  core.Source
	painter *render.CurvePainter
	overlay *ui.Overlay
	clock   core.DeltaClock

	octaves     int
	persistence float64
	scale       int
	offset      float64

	samples []float64

	curveColor color.Color
	backColor  color.Color
}

// New constructs a Game around the provided noise source.
func New(cfg *Config, source core.Source) *Game {
	size := cfg.Viewport()
	return &Game{
		cfg:         *cfg,
		source:      source,
		painter:     render.NewCurvePainter(size.W, size.H),
		overlay:     ui.NewOverlay(),
		octaves:     cfg.Octaves,
		persistence: cfg.Persistence,
		scale:       cfg.Scale,
		samples:     make([]float64, size.W),
		curveColor:  color.Black,
		backColor:   color.White,
	}
}

// rebuild swaps in a fresh generator for the current octave and persistence
// settings. The generator itself is immutable, so parameter changes always
// go through a rebuild.
func (g *Game) rebuild() {
	gen, err := perlin.New(g.octaves, g.persistence, int32(g.cfg.Salt))
	if err != nil {
		return
	}
	g.source = gen
}

// Update handles key bindings and advances the pan offset.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.octaves++
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.octaves > 1 {
		g.octaves--
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.persistence += persistenceStep
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.persistence -= persistenceStep
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.adjustScale(scaleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		g.adjustScale(-scaleStep)
	}

	dt := g.clock.Tick()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.offset -= g.cfg.PanSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.offset += g.cfg.PanSpeed * dt
	}
	return nil
}

// adjustScale nudges the horizontal scale, skipping zero: a zero scale would
// collapse the sample spacing.
func (g *Game) adjustScale(diff int) {
	next := g.scale + diff
	if next == 0 {
		next += diff
	}
	g.scale = next
}

// Draw samples the noise once per pixel column and renders the curve plus
// the text overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	halfHeight := float64(g.cfg.Height) / 2
	span := 10 * float64(g.scale)
	for x := range g.samples {
		g.samples[x] = g.source.Noise((float64(x)+g.offset)/span)*halfHeight + halfHeight
	}
	g.painter.Plot(screen, g.samples, g.curveColor, g.backColor)

	g.overlay.Print("Escape: quit")
	g.overlay.Print("Up/down: more/fewer octaves")
	g.overlay.Print("PgUp/PgDn: raise/lower persistence by 0.1")
	g.overlay.Print("Home/end: increase/decrease horz. scale")
	g.overlay.Print("Left/right: pan left/right")
	for _, p := range settingsSnapshot(g.octaves, g.persistence, g.scale, g.offset).Params {
		g.overlay.Print(p.Label + ": " + p.Value)
	}
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
