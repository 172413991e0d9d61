package ai

import (
	"bomby/pkg/ai/bt"
	"bomby/pkg/core"
)

func condInDanger(bb *Blackboard) bool {
	return bb.Danger.Threatened(bb.Self.Cell())
}

// actFindSafe 寻找最近的不受威胁的格子，逃跑时允许穿过危险格子
func actFindSafe(bb *Blackboard) bt.Status {
	path, ok := findNearestSafe(bb, bb.Self.Cell())
	if !ok || len(path) == 0 {
		return bt.StatusFailure
	}
	bb.setGoal(path[len(path)-1], false)
	return bt.StatusSuccess
}

func actMoveToSafe(bb *Blackboard) bt.Status {
	if bb.Goal == nil {
		return bt.StatusFailure
	}
	return bt.StatusRunning
}

func findNearestSafe(bb *Blackboard, start core.GridCell) ([]core.GridCell, bool) {
	safe := func(cell core.GridCell) bool { return !bb.Danger.Threatened(cell) }
	return searchPath(start, safe, bb.passable(false))
}
