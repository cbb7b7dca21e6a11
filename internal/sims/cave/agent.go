package cave

import (
	"cavemap/internal/core"
	pcore "cavemap/pkg/core"
)

// Direction enumerates the four unit moves available to the agent.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var dirOffsets = [4][2]int{
	DirUp:    {0, -1},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
}

// Offset returns the unit (dx, dy) for the direction.
func (d Direction) Offset() (int, int) {
	o := dirOffsets[d]
	return o[0], o[1]
}

func randomDirection(rng *pcore.RNG) Direction {
	return Direction(rng.IntN(4))
}

// AgentPosition is the carving agent's cursor. The driver owns it and it
// persists across iterations; it is the only agent state that does.
type AgentPosition struct {
	X, Y int
}

// WalkParams controls a single carving pass. The world draws a fresh set
// from the configured ranges at the start of every iteration.
type WalkParams struct {
	Walks int
	Steps int
	RoomW int
	RoomH int

	ProbRoom     float64
	ProbRoomRamp float64
	ProbTurn     float64
	ProbTurnRamp float64
}

// walkState holds the transient per-pass state: the current direction and
// both pity ramps. It is rebuilt from WalkParams on every Carve call and
// never survives it.
type walkState struct {
	dir      Direction
	roomProb float64
	turnProb float64
}

// Carve runs the drunk-agent pass over the grid, mutating it in place and
// advancing pos as a side effect. Each of the Walks paths draws its own
// starting direction. At every step the agent stamps its cell, may carve a
// room, may turn, then tries to move; stepping out of bounds redraws the
// direction instead of moving. Both probabilities ramp each time their
// event fails to fire and reset to the base value when it does; ramped
// values above 1 simply always trigger.
func Carve(g *core.Grid, p WalkParams, pos *AgentPosition, rng *pcore.RNG) {
	st := walkState{roomProb: p.ProbRoom, turnProb: p.ProbTurn}
	for walk := 0; walk < p.Walks; walk++ {
		st.dir = randomDirection(rng)
		for step := 0; step < p.Steps; step++ {
			carveStep(g, p, pos, &st, rng)
		}
	}
}

// carveStep advances the agent by one step: stamp, room roll, turn roll,
// then the move-or-bounce.
func carveStep(g *core.Grid, p WalkParams, pos *AgentPosition, st *walkState, rng *pcore.RNG) {
	g.Set(pos.X, pos.Y, core.CellBlocked)

	if roll(rng, &st.roomProb, p.ProbRoom, p.ProbRoomRamp) {
		carveRoom(g, pos.X, pos.Y, p.RoomW/2, p.RoomH/2)
	}

	if roll(rng, &st.turnProb, p.ProbTurn, p.ProbTurnRamp) {
		st.dir = randomDirection(rng)
	}

	dx, dy := st.dir.Offset()
	nx, ny := pos.X+dx, pos.Y+dy
	if g.InBounds(nx, ny) {
		pos.X, pos.Y = nx, ny
	} else {
		// Bounce off the wall by redrawing the direction; the agent
		// stays put for this step.
		st.dir = randomDirection(rng)
		st.turnProb = p.ProbTurn
	}
}

// roll draws once against the pity-ramped probability. A hit resets the
// ramp exactly to base; a miss grows it by ramp. Ramped values above 1
// always hit since the draw is in [0,1).
func roll(rng *pcore.RNG, prob *float64, base, ramp float64) bool {
	if rng.Float64() < *prob {
		*prob = base
		return true
	}
	*prob += ramp
	return false
}

// carveRoom stamps a rectangle of the given half-extents centered on
// (cx, cy), clamped to the grid bounds.
func carveRoom(g *core.Grid, cx, cy, halfW, halfH int) {
	for y := cy - halfH; y <= cy+halfH; y++ {
		if y < 0 || y >= g.H {
			continue
		}
		for x := cx - halfW; x <= cx+halfW; x++ {
			if x < 0 || x >= g.W {
				continue
			}
			g.Set(x, y, core.CellBlocked)
		}
	}
}
