package core

import (
	"errors"
	"testing"
)

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic = %v, want %v", r, target)
		}
	}()
	fn()
}

func TestBombCounterBounds(t *testing.T) {
	c := NewBombCounter(2)
	c.Increment()
	c.Increment()
	if !c.Full() || c.Count() != 2 {
		t.Fatalf("counter = %d, full = %v", c.Count(), c.Full())
	}
	expectPanic(t, ErrBombCountOverflow, c.Increment)

	c.Decrement()
	c.Decrement()
	if c.Count() != 0 {
		t.Fatalf("counter = %d, want 0", c.Count())
	}
	expectPanic(t, ErrBombCountUnderflow, c.Decrement)
}
