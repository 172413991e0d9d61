package ai

import (
	"math/rand"

	"bomby/pkg/core"
)

type Blackboard struct {
	Game    *core.Game
	Self    *core.Player
	Blocked *core.BlockedCells
	Width   int
	Height  int
	RNG     *rand.Rand
	Danger  *DangerField
	Config  *Config

	Target    *core.GridCell // 准备放炸弹的格子
	Goal      *core.GridCell // 每帧跟随的移动目标
	Avoid     bool           // 去往 Goal 的路上是否绕开危险格子
	PlaceBomb bool

	LastInDanger bool
	LastBombs    int

	// 游荡方向，跨帧保持
	WanderDir   int
	WanderCells int
}

// ResetFrame 刷新本帧的游戏引用和阻挡快照，移动目标跨帧保留
func (bb *Blackboard) ResetFrame(game *core.Game, self *core.Player) {
	bb.Game = game
	bb.Self = self
	bb.Blocked = game.BlockedCells()
	bb.Width, bb.Height = core.MapWidth, core.MapHeight
	if game.Map != nil {
		bb.Width, bb.Height = game.Map.Width, game.Map.Height
	}
	bb.PlaceBomb = false
}

func (bb *Blackboard) walkable(cell core.GridCell) bool {
	return cell.InBounds(bb.Width, bb.Height) && !bb.Blocked.Blocked(cell)
}

// passable 规划路径时可以经过的格子
func (bb *Blackboard) passable(avoid bool) func(core.GridCell) bool {
	return func(cell core.GridCell) bool {
		if !bb.walkable(cell) {
			return false
		}
		return !avoid || !bb.Danger.Threatened(cell)
	}
}

func (bb *Blackboard) setGoal(cell core.GridCell, avoid bool) {
	bb.Goal = &cell
	bb.Avoid = avoid
}
