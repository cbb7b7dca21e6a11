//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"cavemap/internal/app"
	"cavemap/internal/core"
	_ "cavemap/internal/sims/cave"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown generator %q", cfg.Sim)
	}

	sim := factory(map[string]string{
		"w":    strconv.Itoa(cfg.Width),
		"h":    strconv.Itoa(cfg.Height),
		"seed": strconv.FormatInt(cfg.Seed, 10),
	})
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.HUD, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("cavemap — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUD, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
