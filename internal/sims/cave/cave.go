package cave

import (
	"cavemap/internal/core"
	pcore "cavemap/pkg/core"
)

// World composes the two generation passes into an iterative cave map
// generator. Each Step smooths the whole grid, then lets the agent carve
// on top of the smoothed result. The agent position carries over between
// steps; everything else about the agent is redrawn per step.
type World struct {
	cfg Config

	grid    *core.Grid
	scratch []core.Cell
	agent   AgentPosition
	last    WalkParams

	rng *pcore.RNG
}

// New returns a cave generator with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a cave generator configured from the provided
// options. Callers reject invalid configs via Config.Validate first.
func NewWithConfig(cfg Config) *World {
	grid := core.NewGrid(cfg.Width, cfg.Height)
	w := &World{
		cfg:     cfg,
		grid:    grid,
		scratch: make([]core.Cell, len(grid.Cells())),
		rng:     pcore.NewRNG(cfg.Seed),
	}
	w.centerAgent()
	return w
}

// Name returns the generator identifier.
func (w *World) Name() string { return "cave" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the current map values.
func (w *World) Cells() []core.Cell { return w.grid.Cells() }

// Grid exposes the underlying map.
func (w *World) Grid() *core.Grid { return w.grid }

// Agent reports the carving agent's current position.
func (w *World) Agent() AgentPosition { return w.agent }

// AgentCell reports the cursor as raw coordinates for overlays.
func (w *World) AgentCell() (int, int) { return w.agent.X, w.agent.Y }

// LastWalkParams reports the parameter set drawn for the most recent Step.
func (w *World) LastWalkParams() WalkParams { return w.last }

// Reset rebuilds the initial map using deterministic randomness: a fair
// coin flip per cell, with the agent recentered. A zero seed means "use
// the configured seed", so Reset(0) replays the configured map rather
// than seeding the RNG with 0.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(effective)
	w.grid.Fill(w.rng.Source())
	w.centerAgent()
	w.last = WalkParams{}
}

// Step runs one full generation iteration: draw fresh agent parameters,
// smooth, then carve. Smoothing first is deliberate; carving afterwards
// keeps fresh corridors out of reach of the same iteration's erosion.
func (w *World) Step() {
	params := w.drawParams()
	smoothInto(w.scratch, w.grid.Cells(), w.grid.W, w.grid.H, w.cfg.Automaton.Radius, w.cfg.Automaton.Threshold)
	copy(w.grid.Cells(), w.scratch)
	Carve(w.grid, params, &w.agent, w.rng)
	w.last = params
}

// drawParams draws one iteration's agent parameters from the configured
// ranges. The draw happens here, not in the passes.
func (w *World) drawParams() WalkParams {
	a := w.cfg.Agent
	return WalkParams{
		Walks:        w.rng.IntBetween(a.Walks.Min, a.Walks.Max),
		Steps:        w.rng.IntBetween(a.Steps.Min, a.Steps.Max),
		RoomW:        w.rng.IntBetween(a.RoomW.Min, a.RoomW.Max),
		RoomH:        w.rng.IntBetween(a.RoomH.Min, a.RoomH.Max),
		ProbRoom:     w.rng.FloatBetween(a.ProbRoom.Min, a.ProbRoom.Max),
		ProbRoomRamp: w.rng.FloatBetween(a.ProbRoomRamp.Min, a.ProbRoomRamp.Max),
		ProbTurn:     w.rng.FloatBetween(a.ProbTurn.Min, a.ProbTurn.Max),
		ProbTurnRamp: w.rng.FloatBetween(a.ProbTurnRamp.Min, a.ProbTurnRamp.Max),
	}
}

func (w *World) centerAgent() {
	w.agent = AgentPosition{X: w.grid.W / 2, Y: w.grid.H / 2}
}

func init() {
	core.Register("cave", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
