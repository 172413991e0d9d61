package ai

import (
	"slices"

	"bomby/pkg/ai/bt"
	"bomby/pkg/core"
)

func condHasBombCapacity(bb *Blackboard) bool {
	return !bb.Self.Bombs.Full()
}

// actFindTarget 选出最近的能炸到敌人或砖块的格子
func actFindTarget(bb *Blackboard) bt.Status {
	finders := []func(*Blackboard, core.GridCell) *core.GridCell{findEnemyTarget, findBrickTarget}
	if bb.Config.PreferBricks {
		slices.Reverse(finders)
	}

	start := bb.Self.Cell()
	for _, find := range finders {
		if target := find(bb, start); target != nil {
			bb.Target = target
			return bt.StatusSuccess
		}
	}
	bb.Target = nil
	return bt.StatusFailure
}

// actPreCheckEscape 到达目标后，假设在脚下放一颗炸弹，确认还能逃出去
func actPreCheckEscape(bb *Blackboard) bt.Status {
	if bb.Target == nil {
		return bt.StatusFailure
	}
	cell := bb.Self.Cell()
	if *bb.Target != cell {
		return bt.StatusSuccess
	}

	temp := bb.Danger.Clone()
	temp.AddBomb(cell, bb.Game.FuseDuration, bb.Game.BlastRadius)
	if !canEscape(bb, temp, cell) {
		return bt.StatusFailure
	}
	return bt.StatusSuccess
}

func actMoveToTarget(bb *Blackboard) bt.Status {
	if bb.Target == nil {
		return bt.StatusFailure
	}
	if *bb.Target == bb.Self.Cell() {
		return bt.StatusSuccess
	}
	bb.setGoal(*bb.Target, true)
	return bt.StatusRunning
}

func actPlaceBomb(bb *Blackboard) bt.Status {
	if bb.Target == nil || *bb.Target != bb.Self.Cell() {
		return bt.StatusFailure
	}
	bb.PlaceBomb = true
	bb.Goal = nil
	return bt.StatusSuccess
}

// findEnemyTarget 沿安全路径搜索第一个爆炸范围能覆盖敌人的格子
func findEnemyTarget(bb *Blackboard, start core.GridCell) *core.GridCell {
	enemies := make(map[core.GridCell]bool)
	for _, p := range bb.Game.Players {
		if p.ID != bb.Self.ID {
			enemies[p.Cell()] = true
		}
	}
	if len(enemies) == 0 {
		return nil
	}
	return searchTarget(bb, start, func(cell core.GridCell) bool {
		return enemies[cell]
	})
}

// findBrickTarget 沿安全路径搜索第一个爆炸范围能覆盖砖块的格子
func findBrickTarget(bb *Blackboard, start core.GridCell) *core.GridCell {
	return searchTarget(bb, start, func(cell core.GridCell) bool {
		tile, err := bb.Game.Tiles.Classify(cell)
		return err == nil && tile == core.TileBrick
	})
}

func searchTarget(bb *Blackboard, start core.GridCell, hit func(core.GridCell) bool) *core.GridCell {
	radius := bb.Game.BlastRadius
	covers := func(cell core.GridCell) bool {
		// 已有炸弹的格子无法再放
		if bb.Game.BombAt(cell) != nil {
			return false
		}
		for _, c := range core.AffectedCells(cell, radius)[1:] {
			if hit(c) {
				return true
			}
		}
		return false
	}

	path, ok := searchPath(start, covers, bb.passable(true))
	if !ok {
		return nil
	}
	if len(path) == 0 {
		return &start
	}
	return &path[len(path)-1]
}
