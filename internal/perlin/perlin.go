// Package perlin implements deterministic one-dimensional gradient noise
// using the 2002 permutation-table algorithm. Coordinates wrap at 255.
package perlin

import (
	"fmt"
	"math"
)

// perm is the fixed permutation table: 256 values in [0, 255] with the first
// entry repeated so index 256 stays valid. It is shared by every Generator
// and only ever indexed through &255, so any integer coordinate lands in
// bounds.
var perm = [257]uint8{
	151, 160, 137, 91, 90, 15,
	131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
	190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
	77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
	102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
	135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
	5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
	251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	151,
}

// Generator produces noise by summing octaves of increasing frequency and
// decaying amplitude over a shared permutation table. A Generator is
// immutable after construction and safe for concurrent use.
type Generator struct {
	octaves     int
	persistence float64
	hash        func(uint32) uint32
}

// New returns a Generator summing the given number of octaves with the given
// per-octave amplitude decay. octaves must be at least 1 and salt must be
// nonzero; a salt of 1 selects the unsalted hash path, any other value
// folds the salt into the gradient hash.
func New(octaves int, persistence float64, salt int32) (*Generator, error) {
	if octaves < 1 {
		return nil, fmt.Errorf("perlin: octaves must be at least 1, got %d", octaves)
	}
	if salt == 0 {
		return nil, fmt.Errorf("perlin: salt must be nonzero")
	}
	g := &Generator{octaves: octaves, persistence: persistence}
	if salt == 1 {
		g.hash = xs32
	} else {
		s := uint32(salt)
		g.hash = func(v uint32) uint32 { return xs32(v * s) }
	}
	return g, nil
}

// Octaves reports the number of frequency layers summed per sample.
func (g *Generator) Octaves() int { return g.octaves }

// Persistence reports the per-octave amplitude decay factor.
func (g *Generator) Persistence() float64 { return g.persistence }

// Noise returns the noise value at x. For persistence in (0, 1] and finite x
// the result lies in [-0.5, 0.5] regardless of the octave count, because the
// sum is normalized by the accumulated amplitude.
func (g *Generator) Noise(x float64) float64 {
	total := 0.0
	maxAmp := 0.0
	amp := 1.0
	freq := 1.0
	for i := 0; i < g.octaves; i++ {
		total += amp * g.octave(x*freq)
		maxAmp += amp
		freq *= 2
		amp *= g.persistence
	}
	return total / maxAmp
}

// octave evaluates a single frequency layer: a faded blend of the signed
// distances to the two lattice points straddling x.
func (g *Generator) octave(x float64) float64 {
	x0 := int(math.Floor(x))
	x1 := x0 + 1
	a := g.grad(perm[x0&255], x-float64(x0))
	b := g.grad(perm[x1&255], x-float64(x1))
	return lerp(a, b, fade(x-float64(x0)))
}

// grad applies the lattice gradient: in one dimension the gradient is a bare
// sign, keyed on the low bit of the hashed permutation entry.
func (g *Generator) grad(entry uint8, dist float64) float64 {
	if g.hash(uint32(entry))&1 == 1 {
		return dist
	}
	return -dist
}

// fade is the quintic smoothstep t^3*(t*(6t-15)+10). Its first and second
// derivatives are zero at both endpoints, so blended octaves stay smooth
// across integer lattice boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp blends a towards b. t is not clamped; fade keeps it inside [0, 1].
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// xs32 is the 13/17/5 xorshift scrambler over uint32. The left shift wraps
// at 32 bits, pinning the hash to fixed-width semantics.
func xs32(v uint32) uint32 {
	v ^= v >> 13
	v ^= v << 17
	v ^= v >> 5
	return v
}
