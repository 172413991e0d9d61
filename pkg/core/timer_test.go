package core

import (
	"testing"
	"time"
)

func TestTimerJustFinishedOnce(t *testing.T) {
	timer := NewTimer(300 * time.Millisecond)

	edges := 0
	for i := 0; i < 10; i++ {
		timer.Tick(100 * time.Millisecond)
		if timer.JustFinished() {
			edges++
			if i != 2 {
				t.Errorf("finished on tick %d, want 2", i)
			}
		}
	}
	if edges != 1 {
		t.Fatalf("JustFinished was true %d times, want 1", edges)
	}
	if !timer.Finished() || timer.Remaining() != 0 || timer.Fraction() != 1 {
		t.Fatalf("unexpected final state: %+v", timer)
	}
}

func TestTimerOvershootClamps(t *testing.T) {
	timer := NewTimer(time.Second)
	timer.Tick(250 * time.Millisecond)
	if got := timer.Fraction(); got != 0.25 {
		t.Fatalf("Fraction = %v, want 0.25", got)
	}
	timer.Tick(5 * time.Second)
	if !timer.JustFinished() || timer.Elapsed != time.Second {
		t.Fatalf("overshoot not clamped: %+v", timer)
	}
}
