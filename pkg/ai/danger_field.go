package ai

import (
	"math"
	"time"

	"bomby/pkg/core"
)

// never 没有炸弹覆盖的格子的爆炸时间
const never = time.Duration(math.MaxInt64)

// DangerField 记录每个格子最早被炸到的剩余时间。
// 炸弹不会引爆其他炸弹，所以每个格子只取覆盖它的炸弹中最小的剩余引信
type DangerField struct {
	earliest map[core.GridCell]time.Duration
}

// Update 根据当前场上的炸弹重建危险场
func (df *DangerField) Update(game *core.Game) {
	clear(df.earliest)
	if df.earliest == nil {
		df.earliest = make(map[core.GridCell]time.Duration, len(game.Bombs)*5)
	}
	for _, b := range game.Bombs {
		df.AddBomb(b.Cell(), b.Fuse.Remaining(), game.BlastRadius)
	}
}

// AddBomb 加入一颗炸弹（也可以是假想的炸弹）
func (df *DangerField) AddBomb(cell core.GridCell, remaining time.Duration, radius int) {
	if df.earliest == nil {
		df.earliest = make(map[core.GridCell]time.Duration)
	}
	for _, c := range core.AffectedCells(cell, radius) {
		if prev, ok := df.earliest[c]; !ok || remaining < prev {
			df.earliest[c] = remaining
		}
	}
}

// Earliest 格子最早被炸到的剩余时间，不会被炸到时返回 never
func (df *DangerField) Earliest(cell core.GridCell) time.Duration {
	if t, ok := df.earliest[cell]; ok {
		return t
	}
	return never
}

// Threatened 格子是否在某颗炸弹的爆炸范围内
func (df *DangerField) Threatened(cell core.GridCell) bool {
	_, ok := df.earliest[cell]
	return ok
}

// SafeAt 经过 after 之后格子是否仍未爆炸
func (df *DangerField) SafeAt(cell core.GridCell, after time.Duration) bool {
	return after < df.Earliest(cell)
}

// Level 危险等级 0~1，引信越短越危险
func (df *DangerField) Level(cell core.GridCell, fuse time.Duration) float64 {
	t := df.Earliest(cell)
	switch {
	case t == never:
		return 0
	case t <= 0 || fuse <= 0:
		return 1
	case t >= fuse:
		return 0
	}
	return 1 - float64(t)/float64(fuse)
}

// Clone 复制危险场，用于假设推演
func (df *DangerField) Clone() *DangerField {
	out := &DangerField{earliest: make(map[core.GridCell]time.Duration, len(df.earliest)+5)}
	for c, t := range df.earliest {
		out.earliest[c] = t
	}
	return out
}
