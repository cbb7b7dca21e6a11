package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"cavemap/internal/core"
	"cavemap/internal/sims/cave"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		width      = flag.Int("w", 0, "map width override")
		height     = flag.Int("h", 0, "map height override")
		seed       = flag.Int64("seed", 0, "seed override (0 keeps the configured seed)")
		iterations = flag.Int("iterations", -1, "iteration count override (-1 keeps the configured count)")
		tps        = flag.Int("tps", 0, "pace output at this many iterations per second (0 prints immediately)")
	)
	flag.Parse()

	cfg := cave.DefaultConfig()
	if *configPath != "" {
		loaded, err := cave.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *iterations >= 0 {
		cfg.Iterations = *iterations
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	world := cave.NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	fmt.Fprintf(out, "cave %dx%d seed=%d iterations=%d\n\ninitial map:\n", cfg.Width, cfg.Height, cfg.Seed, cfg.Iterations)
	writeGrid(out, world.Grid())

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	driver, err := cave.NewDriver(world, cfg.Iterations, func(g *core.Grid, iteration int) {
		if pacer != nil {
			out.Flush()
			// Poll at a tenth of the tick so slow rates do not spin.
			nap := pacer.Interval() / 10
			for !pacer.ShouldStep() {
				time.Sleep(nap)
			}
		}
		p := world.LastWalkParams()
		fmt.Fprintf(out, "\niteration %d: walks=%d steps=%d room=%dx%d probRoom=%.2f probTurn=%.2f\n",
			iteration+1, p.Walks, p.Steps, p.RoomW, p.RoomH, p.ProbRoom, p.ProbTurn)
		writeGrid(out, g)
	})
	if err != nil {
		log.Fatalf("driver: %v", err)
	}
	driver.Run()
}

// writeGrid prints the map one row per line, '#' for blocked cells and '.'
// for open ones.
func writeGrid(w io.Writer, g *core.Grid) {
	row := make([]byte, g.W+1)
	row[g.W] = '\n'
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) == core.CellBlocked {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		w.Write(row)
	}
}
