package core

import "time"

// Timer 一次性计时器。JustFinished 只在到期的那一帧为 true
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration

	done         bool
	justFinished bool
}

// NewTimer 创建计时器
func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// Tick 推进计时器
func (t *Timer) Tick(dt time.Duration) {
	if t.done {
		t.justFinished = false
		return
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		t.done = true
		t.justFinished = true
	}
}

// Finished 是否已经到期
func (t *Timer) Finished() bool {
	return t.done
}

// JustFinished 是否在最近一次 Tick 中到期
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Remaining 剩余时间
func (t *Timer) Remaining() time.Duration {
	return t.Duration - t.Elapsed
}

// Fraction 已经过的比例，范围 [0, 1]
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return float64(t.Elapsed) / float64(t.Duration)
}
