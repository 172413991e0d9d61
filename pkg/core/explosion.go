package core

import "time"

// ExplosionMarker 爆炸效果，只用于显示，不影响游戏逻辑
type ExplosionMarker struct {
	Cell GridCell
	Pos  Vec2
	Life Timer
}

// Alpha 当前透明度，随时间从 1 线性衰减到 0
func (e *ExplosionMarker) Alpha() float64 {
	return 1 - e.Life.Fraction()
}

// decayExplosions 推进前 n 个爆炸效果并移除已结束的，其余的原样保留
func (g *Game) decayExplosions(dt time.Duration, n int) {
	alive := g.Explosions[:0]
	for i, e := range g.Explosions {
		if i < n {
			e.Life.Tick(dt)
		}
		if !e.Life.Finished() {
			alive = append(alive, e)
		}
	}
	clear(g.Explosions[len(alive):])
	g.Explosions = alive
}
