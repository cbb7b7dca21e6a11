package core

import (
	"testing"
	"time"
)

func TestFixedStepInterval(t *testing.T) {
	fs := NewFixedStep(50)
	if got := fs.Interval(); got != 20*time.Millisecond {
		t.Fatalf("50 TPS interval = %v, want 20ms", got)
	}
	fs.SetTPS(4)
	if got := fs.Interval(); got != 250*time.Millisecond {
		t.Fatalf("4 TPS interval = %v, want 250ms", got)
	}
}

func TestFixedStepDefaultsBadRates(t *testing.T) {
	want := time.Second / 60
	if got := NewFixedStep(0).Interval(); got != want {
		t.Fatalf("zero TPS interval = %v, want %v", got, want)
	}
	fs := NewFixedStep(30)
	fs.SetTPS(-5)
	if got := fs.Interval(); got != want {
		t.Fatalf("negative TPS interval = %v, want %v", got, want)
	}
}

func TestFixedStepFirstTickImmediate(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first tick should fire immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("second tick fired before the interval elapsed")
	}
}
