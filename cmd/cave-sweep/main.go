package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"cavemap/internal/core"
	"cavemap/internal/sims/cave"
)

type paramSet struct {
	radius    int
	threshold float64
	probRoom  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("radius=%d threshold=%.2f probRoom=%.2f", p.radius, p.threshold, p.probRoom)
}

type scenarioResult struct {
	params      paramSet
	meanDensity float64
	minDensity  float64
	maxDensity  float64
}

func main() {
	width := flag.Int("w", 64, "map width per scenario")
	height := flag.Int("h", 48, "map height per scenario")
	iterations := flag.Int("iterations", 5, "generation iterations per run")
	seeds := flag.Int("seeds", 8, "seeds per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	radiusOptions := []int{1, 2}
	thresholdOptions := []float64{0.4, 0.45, 0.5, 0.55, 0.6}
	probRoomOptions := []float64{0.1, 0.2, 0.3}

	var sets []paramSet
	for _, r := range radiusOptions {
		for _, u := range thresholdOptions {
			for _, pr := range probRoomOptions {
				sets = append(sets, paramSet{radius: r, threshold: u, probRoom: pr})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d seeds, %d iterations)\n",
		len(sets), *workers, *seeds, *iterations)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *width, *height, *iterations, *seeds)
			}
		}()
	}
	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].meanDensity < all[j].meanDensity })

	for _, res := range all {
		fmt.Printf("%s  density mean=%.3f min=%.3f max=%.3f\n",
			res.params, res.meanDensity, res.minDensity, res.maxDensity)
	}
}

// runScenario generates one map per seed and reports the blocked-cell
// density of the final iteration. Each generation run is single-threaded;
// only independent runs execute concurrently.
func runScenario(p paramSet, w, h, iterations, seeds int) scenarioResult {
	cfg := cave.DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Iterations = iterations
	cfg.Automaton.Radius = p.radius
	cfg.Automaton.Threshold = p.threshold
	cfg.Agent.ProbRoom.Max = p.probRoom
	if cfg.Agent.ProbRoom.Min > p.probRoom {
		cfg.Agent.ProbRoom.Min = p.probRoom
	}

	res := scenarioResult{params: p, minDensity: 1}
	total := float64(w * h)
	for seed := 1; seed <= seeds; seed++ {
		world := cave.NewWithConfig(cfg)
		world.Reset(int64(seed))
		driver, err := cave.NewDriver(world, iterations, nil)
		if err != nil {
			continue
		}
		driver.Run()

		density := float64(world.Grid().Count(core.CellBlocked)) / total
		res.meanDensity += density
		if density < res.minDensity {
			res.minDensity = density
		}
		if density > res.maxDensity {
			res.maxDensity = density
		}
	}
	if seeds > 0 {
		res.meanDensity /= float64(seeds)
	}
	return res
}
