package core

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestGridAccessorsBoundsChecked(t *testing.T) {
	g := NewGrid(4, 3)

	g.Set(3, 2, CellBlocked)
	if g.At(3, 2) != CellBlocked {
		t.Fatal("in-bounds write lost")
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}}
	for _, c := range outside {
		g.Set(c[0], c[1], CellBlocked)
		if g.At(c[0], c[1]) != CellOpen {
			t.Fatalf("out-of-bounds access (%d,%d) not rejected", c[0], c[1])
		}
	}
	// Nothing outside leaked into the backing slice.
	if n := g.Count(CellBlocked); n != 1 {
		t.Fatalf("%d cells blocked after out-of-bounds writes, want 1", n)
	}
}

func TestGridConstructorClampsDimensions(t *testing.T) {
	g := NewGrid(-5, 0)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("got %dx%d, want 1x1", g.W, g.H)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("backing slice holds %d cells", len(g.Cells()))
	}
}

func TestGridFillDeterministic(t *testing.T) {
	a := NewGrid(16, 16)
	b := NewGrid(16, 16)
	a.Fill(rand.New(rand.NewPCG(9, 0)))
	b.Fill(rand.New(rand.NewPCG(9, 0)))

	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same source produced different fills")
	}
	open, blocked := a.Count(CellOpen), a.Count(CellBlocked)
	if open+blocked != 256 {
		t.Fatalf("fill produced values outside {0,1}: %d open, %d blocked", open, blocked)
	}
	if open == 0 || blocked == 0 {
		t.Fatal("fair coin fill produced a uniform grid")
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, CellBlocked)
	dup := g.Clone()
	dup.Set(0, 0, CellBlocked)

	if g.At(0, 0) != CellOpen {
		t.Fatal("clone shares the original backing slice")
	}
	if dup.At(1, 1) != CellBlocked {
		t.Fatal("clone lost existing cells")
	}
}
