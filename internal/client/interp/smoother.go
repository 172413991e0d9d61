// Package interp 联机模式下远端玩家的插值和航位推测，不依赖渲染
package interp

import "bomby/pkg/core"

// 远端玩家插值配置
const (
	// 插值延迟（毫秒）：远端玩家的渲染时间落后于最新状态
	DefaultInterpolationDelayMs int64 = 100
	MinInterpolationDelayMs     int64 = 50
	MaxInterpolationDelayMs     int64 = 300

	// 插值缓冲区最多保存的快照数
	InterpolationBufferSize = 30

	// 航位推测最大时长（毫秒），超过后停在最后已知位置
	DeadReckoningMaxMs int64 = 250
)

// stateSnapshot 远端玩家状态快照
type stateSnapshot struct {
	timestamp int64
	pos       core.Vec2
	direction core.Direction
	isMoving  bool
}

// RemoteSmoother 远端玩家插值与航位推测
type RemoteSmoother struct {
	buffer               []stateSnapshot
	velocity             core.Vec2 // 单位：世界坐标/毫秒
	interpolationDelayMs int64
}

// NewRemoteSmoother 创建插值缓冲器
func NewRemoteSmoother() *RemoteSmoother {
	return &RemoteSmoother{
		buffer:               make([]stateSnapshot, 0, InterpolationBufferSize),
		interpolationDelayMs: DefaultInterpolationDelayMs,
	}
}

// SetInterpolationDelay 设置插值延迟（毫秒），超出范围时取边界值
func (s *RemoteSmoother) SetInterpolationDelay(delayMs int64) {
	s.interpolationDelayMs = min(max(delayMs, MinInterpolationDelayMs), MaxInterpolationDelayMs)
}

// InterpolationDelay 当前插值延迟（毫秒）
func (s *RemoteSmoother) InterpolationDelay() int64 {
	return s.interpolationDelayMs
}

// Push 添加一个状态快照，时间戳必须递增，乱序的快照被丢弃
func (s *RemoteSmoother) Push(timestamp int64, p core.PlayerSnapshot) {
	if n := len(s.buffer); n > 0 {
		last := s.buffer[n-1]
		dt := timestamp - last.timestamp
		if dt <= 0 {
			return
		}
		s.velocity = p.Pos.Sub(last.pos).Scale(1 / float64(dt))
	}

	s.buffer = append(s.buffer, stateSnapshot{
		timestamp: timestamp,
		pos:       p.Pos,
		direction: p.Direction,
		isMoving:  p.IsMoving,
	})
	if len(s.buffer) > InterpolationBufferSize {
		s.buffer = s.buffer[1:]
	}
}

// Apply 用 nowMs 时刻的插值结果覆盖 p 的位置、朝向和移动状态。
// 缓冲区为空时 p 不变
func (s *RemoteSmoother) Apply(nowMs int64, p *core.PlayerSnapshot) {
	if len(s.buffer) == 0 {
		return
	}

	renderTime := nowMs - s.interpolationDelayMs

	// 找到 renderTime 两侧的快照
	for i := 0; i < len(s.buffer)-1; i++ {
		prev, next := s.buffer[i], s.buffer[i+1]
		if prev.timestamp <= renderTime && next.timestamp >= renderTime {
			alpha := float64(renderTime-prev.timestamp) / float64(next.timestamp-prev.timestamp)
			p.Pos = prev.pos.Add(next.pos.Sub(prev.pos).Scale(alpha))
			p.Direction = next.direction
			p.IsMoving = next.isMoving
			s.cleanup(renderTime)
			return
		}
	}

	first := s.buffer[0]
	if renderTime < first.timestamp {
		// 缓冲还不够，先停在最早的快照
		p.Pos, p.Direction, p.IsMoving = first.pos, first.direction, first.isMoving
		return
	}

	// 渲染时间超过了最新快照，航位推测
	last := s.buffer[len(s.buffer)-1]
	since := renderTime - last.timestamp
	p.Direction = last.direction
	if since <= DeadReckoningMaxMs {
		p.Pos = last.pos.Add(s.velocity.Scale(float64(since)))
		p.IsMoving = last.isMoving
	} else {
		p.Pos = last.pos
		p.IsMoving = false
	}
	s.cleanup(renderTime)
}

// cleanup 丢弃过期快照，保留 renderTime 之前的最后一个用于插值
func (s *RemoteSmoother) cleanup(renderTime int64) {
	cutoff := -1
	for i, snap := range s.buffer {
		if snap.timestamp > renderTime {
			break
		}
		cutoff = i
	}
	if cutoff > 0 {
		s.buffer = s.buffer[cutoff:]
	}
}
