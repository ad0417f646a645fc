package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/render"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON config file (defaults apply when empty)")
	flag.Parse()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = flock.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	world := flock.NewWorld(cfg)

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids")

	if err := ebiten.RunGame(render.NewGame(world)); err != nil {
		log.Fatal(err)
	}
}
