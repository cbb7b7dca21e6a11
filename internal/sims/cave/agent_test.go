package cave

import (
	"slices"
	"testing"

	"cavemap/internal/core"
	pcore "cavemap/pkg/core"
)

func TestCarveAgentStaysInBounds(t *testing.T) {
	g := core.NewGrid(6, 4)
	pos := AgentPosition{X: 3, Y: 2}
	p := WalkParams{
		Walks: 20, Steps: 50,
		RoomW: 5, RoomH: 3,
		ProbRoom: 0.2, ProbRoomRamp: 0.05,
		ProbTurn: 0.3, ProbTurnRamp: 0.05,
	}

	Carve(g, p, &pos, pcore.NewRNG(42))

	if pos.X < 0 || pos.X >= g.W || pos.Y < 0 || pos.Y >= g.H {
		t.Fatalf("agent escaped the grid: (%d,%d)", pos.X, pos.Y)
	}
	for i, c := range g.Cells() {
		if c != core.CellOpen && c != core.CellBlocked {
			t.Fatalf("cell %d holds invalid value %d", i, c)
		}
	}
}

func TestCarveRoomClampedAtCorner(t *testing.T) {
	g := core.NewGrid(10, 10)
	pos := AgentPosition{X: 0, Y: 0}
	p := WalkParams{
		Walks: 1, Steps: 1,
		RoomW: 7, RoomH: 5,
		ProbRoom: 1.0,
	}

	Carve(g, p, &pos, pcore.NewRNG(1))

	// Half extents 3x2 centered at the corner clamp to x in [0,3],
	// y in [0,2]; nothing else is written in a single step.
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			inRoom := x <= 3 && y <= 2
			got := g.At(x, y)
			if inRoom && got != core.CellBlocked {
				t.Fatalf("room cell (%d,%d) not carved", x, y)
			}
			if !inRoom && got != core.CellOpen {
				t.Fatalf("cell (%d,%d) outside the clamped room was written", x, y)
			}
		}
	}
}

func TestCarveNoRoomsWithoutProbability(t *testing.T) {
	g := core.NewGrid(30, 30)
	pos := AgentPosition{X: 15, Y: 15}
	p := WalkParams{
		Walks: 1, Steps: 10,
		RoomW: 9, RoomH: 9,
		ProbRoom: 0, ProbRoomRamp: 0,
		ProbTurn: 0.2, ProbTurnRamp: 0.05,
	}

	Carve(g, p, &pos, pcore.NewRNG(5))

	// Only the path itself may be stamped: at most one cell per step.
	if n := g.Count(core.CellBlocked); n > p.Steps {
		t.Fatalf("%d cells carved with room probability pinned to zero", n)
	}
}

func TestCarvePityRampForcesRoom(t *testing.T) {
	// Base probability 0 with a 0.5 ramp reaches 1.0 by the third step, at
	// which point the roll cannot fail regardless of the RNG stream.
	g := core.NewGrid(21, 21)
	pos := AgentPosition{X: 10, Y: 10}
	p := WalkParams{
		Walks: 1, Steps: 3,
		RoomW: 5, RoomH: 5,
		ProbRoom: 0, ProbRoomRamp: 0.5,
	}

	Carve(g, p, &pos, pcore.NewRNG(99))

	// A 5x5 room dwarfs the at-most-3 path cells.
	if n := g.Count(core.CellBlocked); n < 20 {
		t.Fatalf("pity ramp never fired a room, only %d cells carved", n)
	}
}

func TestCarveNoTransientStateSurvives(t *testing.T) {
	// Direction and both ramps are rebuilt per call, so identical inputs
	// with identical RNG streams must replay identically.
	p := WalkParams{
		Walks: 4, Steps: 12,
		RoomW: 5, RoomH: 3,
		ProbRoom: 0.1, ProbRoomRamp: 0.05,
		ProbTurn: 0.2, ProbTurnRamp: 0.03,
	}

	g1 := core.NewGrid(16, 12)
	pos1 := AgentPosition{X: 8, Y: 6}
	Carve(g1, p, &pos1, pcore.NewRNG(1234))

	g2 := core.NewGrid(16, 12)
	pos2 := AgentPosition{X: 8, Y: 6}
	Carve(g2, p, &pos2, pcore.NewRNG(1234))

	if !slices.Equal(g1.Cells(), g2.Cells()) {
		t.Fatal("identical inputs carved different maps")
	}
	if pos1 != pos2 {
		t.Fatalf("identical inputs left the agent at %v vs %v", pos1, pos2)
	}
}

func TestCarveWalksDrawFreshDirections(t *testing.T) {
	// One step per walk with turning disabled: every stamped cell comes
	// from an independently drawn walk direction. An agent inheriting the
	// first walk's direction would stamp a straight line instead.
	g := core.NewGrid(201, 201)
	pos := AgentPosition{X: 100, Y: 100}
	p := WalkParams{
		Walks: 80, Steps: 1,
		ProbRoom: 0, ProbRoomRamp: 0,
		ProbTurn: 0, ProbTurnRamp: 0,
	}

	Carve(g, p, &pos, pcore.NewRNG(7))

	var xs, ys []int
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) == core.CellBlocked {
				xs = append(xs, x)
				ys = append(ys, y)
			}
		}
	}
	sameX := allEqual(xs)
	sameY := allEqual(ys)
	if sameX || sameY {
		t.Fatal("carved path is a straight line; walk directions look inherited")
	}
}

func allEqual(vals []int) bool {
	for _, v := range vals {
		if v != vals[0] {
			return false
		}
	}
	return true
}

func TestRollRampGrowsMonotonically(t *testing.T) {
	// With base 0 and a 0.1 ramp every miss grows the probability; the
	// eleventh draw sees 1.0 and cannot miss.
	rng := pcore.NewRNG(3)
	prob := 0.0
	prev := prob
	for i := 0; i < 64; i++ {
		hit := roll(rng, &prob, 0, 0.1)
		if hit {
			if prob != 0 {
				t.Fatalf("hit on draw %d left probability %v, want exact reset to base 0", i, prob)
			}
			prev = prob
			continue
		}
		if prob < prev {
			t.Fatalf("miss on draw %d shrank probability %v -> %v", i, prev, prob)
		}
		if prev >= 1 {
			t.Fatalf("draw %d missed with probability %v >= 1", i, prev)
		}
		prev = prob
	}
}

func TestRollResetsToBaseOnHit(t *testing.T) {
	rng := pcore.NewRNG(11)
	prob := 2.0 // above any draw in [0,1)
	if !roll(rng, &prob, 0.25, 0.5) {
		t.Fatal("roll missed with probability above 1")
	}
	if prob != 0.25 {
		t.Fatalf("hit left probability %v, want base 0.25", prob)
	}
	// The very next miss ramps from base, not from the pre-hit value.
	prob = 0.0
	roll(rng, &prob, 0.0, 0.5)
	if prob != 0.5 {
		t.Fatalf("miss after reset ramped to %v, want 0.5", prob)
	}
}

func TestCarveStepBounceResetsTurnRamp(t *testing.T) {
	// On a 1x1 grid every move is out of bounds, so the step always ends
	// in a bounce. The turn roll itself cannot fire (probability 0), so a
	// turn probability of base+ramp after the step means the bounce skipped
	// its reset.
	g := core.NewGrid(1, 1)
	pos := AgentPosition{X: 0, Y: 0}
	p := WalkParams{
		ProbRoom: 0, ProbRoomRamp: 0,
		ProbTurn: 0.1, ProbTurnRamp: 0.4,
	}
	st := walkState{dir: DirRight, roomProb: 0, turnProb: 0}

	carveStep(g, p, &pos, &st, pcore.NewRNG(17))

	if st.turnProb != p.ProbTurn {
		t.Fatalf("bounce left turn probability %v, want base %v", st.turnProb, p.ProbTurn)
	}
	if pos != (AgentPosition{X: 0, Y: 0}) {
		t.Fatalf("bounce moved the agent to %v", pos)
	}
}

func TestCarveStepRoomHitResetsRamp(t *testing.T) {
	g := core.NewGrid(9, 9)
	pos := AgentPosition{X: 4, Y: 4}
	p := WalkParams{
		RoomW: 3, RoomH: 3,
		ProbRoom: 0.05, ProbRoomRamp: 0.02,
		ProbTurn: 0, ProbTurnRamp: 0,
	}
	st := walkState{dir: DirRight, roomProb: 1.5, turnProb: 0}

	carveStep(g, p, &pos, &st, pcore.NewRNG(23))

	if g.Count(core.CellBlocked) < 9 {
		t.Fatal("ramped-past-1 room roll did not carve")
	}
	if st.roomProb != p.ProbRoom {
		t.Fatalf("room hit left probability %v, want base %v", st.roomProb, p.ProbRoom)
	}
}

func TestDirectionOffsetsAreUnit(t *testing.T) {
	for d := DirUp; d <= DirRight; d++ {
		dx, dy := d.Offset()
		if dx*dx+dy*dy != 1 {
			t.Fatalf("direction %d offset (%d,%d) is not a unit move", d, dx, dy)
		}
	}
}
