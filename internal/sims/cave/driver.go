package cave

import (
	"errors"
	"fmt"

	"cavemap/internal/core"
)

// MapReadyFunc consumes the grid after each completed iteration. The
// driver makes no assumption about what the consumer does with it; the
// grid must not be retained past the call.
type MapReadyFunc func(g *core.Grid, iteration int)

// Driver runs the generator for a fixed number of iterations, handing the
// resulting map to the consumer after every one.
type Driver struct {
	world      *World
	iterations int
	onMapReady MapReadyFunc
}

// NewDriver wires a driver around the world. A nil onMapReady is allowed;
// the iterations still run.
func NewDriver(world *World, iterations int, onMapReady MapReadyFunc) (*Driver, error) {
	if world == nil {
		return nil, errors.New("driver requires a world")
	}
	if iterations < 0 {
		return nil, fmt.Errorf("iterations must be >= 0, got %d", iterations)
	}
	return &Driver{world: world, iterations: iterations, onMapReady: onMapReady}, nil
}

// Run executes every iteration to completion, synchronously.
func (d *Driver) Run() {
	for i := 0; i < d.iterations; i++ {
		d.world.Step()
		if d.onMapReady != nil {
			d.onMapReady(d.world.Grid(), i)
		}
	}
}

// World exposes the driven generator.
func (d *Driver) World() *World { return d.world }
