package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(1234)
	b := NewRNG(1234)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
}

func TestIntBetweenInclusive(t *testing.T) {
	r := NewRNG(1)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := r.IntBetween(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("draw %d outside [3,7]", v)
		}
		seen[v] = true
	}
	for v := 3; v <= 7; v++ {
		if !seen[v] {
			t.Fatalf("value %d never drawn in 1000 tries", v)
		}
	}
	if r.IntBetween(5, 5) != 5 {
		t.Fatal("degenerate range must return its bound")
	}
}

func TestFloatBetweenHalfOpen(t *testing.T) {
	r := NewRNG(2)
	for i := 0; i < 1000; i++ {
		v := r.FloatBetween(0.05, 0.3)
		if v < 0.05 || v >= 0.3 {
			t.Fatalf("draw %g outside [0.05,0.3)", v)
		}
	}
	if r.FloatBetween(0.5, 0.5) != 0.5 {
		t.Fatal("degenerate range must return its bound")
	}
}
