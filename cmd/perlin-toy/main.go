//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"perlin-toy/internal/app"
	"perlin-toy/internal/perlin"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gen, err := perlin.New(cfg.Octaves, cfg.Persistence, int32(cfg.Salt))
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg, gen)
	size := cfg.Viewport()

	ebiten.SetWindowTitle("perlin-toy")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W, size.H)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
