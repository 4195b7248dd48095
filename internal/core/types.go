package core

// Size describes the viewport dimensions in pixels.
type Size struct {
	W int
	H int
}

// Source is the sampling contract the display harness consumes: a
// deterministic scalar signal over one spatial dimension.
type Source interface {
	Noise(x float64) float64
}
