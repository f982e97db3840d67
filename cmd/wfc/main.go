//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wfc-chunk/internal/app"
	"wfc-chunk/internal/chunk"
	"wfc-chunk/internal/random"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	chunk.SetLogger(cfg.Logger())

	cc, err := cfg.ChunkConfig()
	if err != nil {
		log.Fatal(err)
	}
	c, err := chunk.New(cc)
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if cfg.Random {
		if seed, err = random.NewSeed(); err != nil {
			log.Fatal(err)
		}
	}

	game := app.New(c, cfg.Scale, cfg.Rate, seed)
	size := c.Size()

	ebiten.SetWindowTitle("wfc-chunk: " + c.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
