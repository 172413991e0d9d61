package interp

import (
	"math"
	"testing"

	"bomby/pkg/core"
)

func at(x, y float64, moving bool) core.PlayerSnapshot {
	return core.PlayerSnapshot{Pos: core.Vec2{X: x, Y: y}, Direction: core.DirRight, IsMoving: moving}
}

func near(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestSmootherInterpolates(t *testing.T) {
	s := NewRemoteSmoother()
	s.Push(1000, at(0, 0, true))
	s.Push(1100, at(10, 0, true))
	s.Push(1200, at(20, 0, true))

	tests := []struct {
		name   string
		now    int64
		want   core.Vec2
		moving bool
	}{
		{"before buffer", 1050, core.Vec2{X: 0}, true},
		{"between first two", 1150, core.Vec2{X: 5}, true},
		{"on a snapshot", 1200, core.Vec2{X: 10}, true},
		{"between last two", 1275, core.Vec2{X: 17.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := core.PlayerSnapshot{}
			s.Apply(tt.now, &p)
			if !near(p.Pos, tt.want) {
				t.Errorf("pos = %+v, want %+v", p.Pos, tt.want)
			}
			if p.IsMoving != tt.moving {
				t.Errorf("moving = %v, want %v", p.IsMoving, tt.moving)
			}
		})
	}
}

func TestSmootherDeadReckoning(t *testing.T) {
	s := NewRemoteSmoother()
	s.Push(1000, at(0, 0, true))
	s.Push(1100, at(10, 0, true))

	// 渲染时间 1150，超出最新快照 50ms，按 0.1/ms 外推
	p := core.PlayerSnapshot{}
	s.Apply(1250, &p)
	if !near(p.Pos, core.Vec2{X: 15}) || !p.IsMoving {
		t.Errorf("extrapolated = %+v moving=%v, want x=15 moving", p.Pos, p.IsMoving)
	}

	// 超过航位推测上限后停在最后位置
	p = core.PlayerSnapshot{}
	s.Apply(1100+DefaultInterpolationDelayMs+DeadReckoningMaxMs+1, &p)
	if !near(p.Pos, core.Vec2{X: 10}) || p.IsMoving {
		t.Errorf("stale = %+v moving=%v, want x=10 stopped", p.Pos, p.IsMoving)
	}
}

func TestSmootherIgnoresOutOfOrder(t *testing.T) {
	s := NewRemoteSmoother()
	s.Push(1000, at(0, 0, false))
	s.Push(900, at(50, 50, false))
	s.Push(1000, at(60, 60, false))

	p := core.PlayerSnapshot{}
	s.Apply(1000+DefaultInterpolationDelayMs, &p)
	if !near(p.Pos, core.Vec2{}) {
		t.Errorf("pos = %+v, want origin", p.Pos)
	}
}

func TestSmootherEmpty(t *testing.T) {
	s := NewRemoteSmoother()
	p := at(3, 4, true)
	s.Apply(5000, &p)
	if !near(p.Pos, core.Vec2{X: 3, Y: 4}) {
		t.Errorf("empty smoother changed position to %+v", p.Pos)
	}
}

func TestSetInterpolationDelay(t *testing.T) {
	s := NewRemoteSmoother()
	tests := []struct{ in, want int64 }{
		{0, MinInterpolationDelayMs},
		{120, 120},
		{10_000, MaxInterpolationDelayMs},
	}
	for _, tt := range tests {
		s.SetInterpolationDelay(tt.in)
		if got := s.InterpolationDelay(); got != tt.want {
			t.Errorf("SetInterpolationDelay(%d) -> %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSmootherBufferBounded(t *testing.T) {
	s := NewRemoteSmoother()
	for i := range InterpolationBufferSize * 2 {
		s.Push(int64(i*10), at(float64(i), 0, true))
	}
	if len(s.buffer) != InterpolationBufferSize {
		t.Errorf("buffer = %d, want %d", len(s.buffer), InterpolationBufferSize)
	}
}
