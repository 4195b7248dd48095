package render

import (
	"image/color"
	"testing"
)

func pixelAt(buf []byte, w, x, y int) [4]byte {
	base := (y*w + x) * 4
	return [4]byte{buf[base], buf[base+1], buf[base+2], buf[base+3]}
}

func TestTraceCurveDrawsSpans(t *testing.T) {
	const w, h = 4, 4
	buf := make([]byte, 4*w*h)
	ys := []float64{2, 0, 3, 3}

	TraceCurve(buf, w, h, ys, color.Black, color.White)

	black := [4]byte{0, 0, 0, 255}
	white := [4]byte{255, 255, 255, 255}

	// Column 0 starts from the vertical midline (row 2), so it is a single dot.
	if got := pixelAt(buf, w, 0, 2); got != black {
		t.Fatalf("pixel (0,2) = %v, want curve color", got)
	}
	if got := pixelAt(buf, w, 0, 0); got != white {
		t.Fatalf("pixel (0,0) = %v, want background", got)
	}

	// Column 1 spans from the previous sample (2) up to 0.
	for y := 0; y <= 2; y++ {
		if got := pixelAt(buf, w, 1, y); got != black {
			t.Fatalf("pixel (1,%d) = %v, want curve color", y, got)
		}
	}
	if got := pixelAt(buf, w, 1, 3); got != white {
		t.Fatalf("pixel (1,3) = %v, want background", got)
	}

	// Column 2 spans the full drop from 0 to 3.
	for y := 0; y <= 3; y++ {
		if got := pixelAt(buf, w, 2, y); got != black {
			t.Fatalf("pixel (2,%d) = %v, want curve color", y, got)
		}
	}

	// Column 3 is flat at row 3.
	if got := pixelAt(buf, w, 3, 3); got != black {
		t.Fatalf("pixel (3,3) = %v, want curve color", got)
	}
	if got := pixelAt(buf, w, 3, 0); got != white {
		t.Fatalf("pixel (3,0) = %v, want background", got)
	}
}

func TestTraceCurveClampsSamples(t *testing.T) {
	const w, h = 3, 4
	buf := make([]byte, 4*w*h)
	ys := []float64{-25, 100, 1.4}

	TraceCurve(buf, w, h, ys, color.Black, color.White)

	black := [4]byte{0, 0, 0, 255}
	if got := pixelAt(buf, w, 0, 0); got != black {
		t.Fatalf("low sample must clamp to row 0, pixel (0,0) = %v", got)
	}
	if got := pixelAt(buf, w, 1, h-1); got != black {
		t.Fatalf("high sample must clamp to bottom row, pixel (1,%d) = %v", h-1, got)
	}
	if got := pixelAt(buf, w, 2, 1); got != black {
		t.Fatalf("1.4 must round to row 1, pixel (2,1) = %v", got)
	}
}

func TestTraceCurveIgnoresMismatchedSizes(t *testing.T) {
	buf := make([]byte, 8)
	TraceCurve(buf, 4, 4, []float64{1, 2, 3, 4}, color.Black, color.White)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("short buffer byte %d modified to %d", i, b)
		}
	}

	TraceCurve(make([]byte, 4*4*4), 4, 4, []float64{1}, color.Black, color.White)
	TraceCurve(nil, 0, 0, nil, color.Black, color.White)
}
