package main

import (
	"flag"
	"fmt"
	"log"

	"perlin-toy/internal/perlin"
)

func main() {
	from := flag.Float64("from", 0, "first coordinate to sample")
	to := flag.Float64("to", 10, "sampling stops before this coordinate")
	step := flag.Float64("step", 0.01, "coordinate increment between samples")
	octaves := flag.Int("octaves", 2, "number of octaves to sum")
	persistence := flag.Float64("persistence", 0.5, "per-octave amplitude decay")
	salt := flag.Int("salt", 1, "gradient hash salt, must be nonzero")
	flag.Parse()

	if *step <= 0 {
		log.Fatalf("step must be positive, got %g", *step)
	}

	gen, err := perlin.New(*octaves, *persistence, int32(*salt))
	if err != nil {
		log.Fatal(err)
	}

	for x := *from; x < *to; x += *step {
		fmt.Printf("%g\t%g\n", x, gen.Noise(x))
	}
}
