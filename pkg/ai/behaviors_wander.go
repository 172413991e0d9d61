package ai

import (
	"bomby/pkg/ai/bt"
	"bomby/pkg/core"
)

// 游荡方向，与 neighbours 的下标对应
const (
	wanderNone = -1
	wanderUp   = iota - 1
	wanderDown
	wanderLeft
	wanderRight
)

func actWander(bb *Blackboard) bt.Status {
	if bb.RNG == nil {
		return bt.StatusFailure
	}
	cell := bb.Self.Cell()

	// 当前方向仍然可行就继续走
	if bb.WanderCells > 0 && bb.WanderDir != wanderNone {
		if next, ok := wanderStep(bb, cell, bb.WanderDir, true); ok {
			bb.WanderCells--
			bb.setGoal(next, true)
			return bt.StatusRunning
		}
	}

	safe := true
	dirs := wanderDirections(bb, cell, true)
	if len(dirs) == 0 {
		// 没有安全方向，退而求其次
		safe = false
		dirs = wanderDirections(bb, cell, false)
	}
	if len(dirs) == 0 {
		bb.WanderDir = wanderNone
		bb.Goal = nil
		return bt.StatusRunning // 完全被困，原地等待
	}

	bb.WanderDir = dirs[bb.RNG.Intn(len(dirs))]
	bb.WanderCells = max(bb.Config.WanderCells-1, 0)
	next, _ := wanderStep(bb, cell, bb.WanderDir, false)
	bb.setGoal(next, safe)
	return bt.StatusRunning
}

func wanderStep(bb *Blackboard, cell core.GridCell, dir int, safeOnly bool) (core.GridCell, bool) {
	d := neighbours[dir]
	next := cell.Add(d.dx, d.dy)
	if !bb.walkable(next) {
		return next, false
	}
	if safeOnly && bb.Danger.Threatened(next) {
		return next, false
	}
	return next, true
}

// wanderDirections 所有可行走的方向，safeOnly 时排除危险格子
func wanderDirections(bb *Blackboard, cell core.GridCell, safeOnly bool) []int {
	result := make([]int, 0, len(neighbours))
	for dir := range neighbours {
		if _, ok := wanderStep(bb, cell, dir, safeOnly); ok {
			result = append(result, dir)
		}
	}
	return result
}
