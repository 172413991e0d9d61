package ai

import (
	"container/list"
	"math"
	"time"

	"bomby/pkg/core"
)

// 上下左右，与 core.Direction 的顺序无关
var neighbours = []struct{ dx, dy int }{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// alignTolerance 与格子中心的距离小于该值视为已对齐（世界单位）
const alignTolerance = 2.0

type stepNode struct {
	Cell  core.GridCell
	Prev  *stepNode
	Depth int
}

// searchPath 从 start 广度优先搜索第一个满足 goal 的格子，返回不含 start 的路径。
// start 本身满足 goal 时返回空路径
func searchPath(start core.GridCell, goal, pass func(core.GridCell) bool) ([]core.GridCell, bool) {
	queue := list.New()
	visited := map[core.GridCell]bool{start: true}
	queue.PushBack(&stepNode{Cell: start})

	for queue.Len() > 0 {
		n := queue.Remove(queue.Front()).(*stepNode)
		if goal(n.Cell) {
			return unwind(n), true
		}
		for _, d := range neighbours {
			next := n.Cell.Add(d.dx, d.dy)
			if visited[next] || !pass(next) {
				continue
			}
			visited[next] = true
			queue.PushBack(&stepNode{Cell: next, Prev: n, Depth: n.Depth + 1})
		}
	}
	return nil, false
}

func unwind(n *stepNode) []core.GridCell {
	path := make([]core.GridCell, n.Depth)
	for i := n.Depth - 1; n.Prev != nil; i-- {
		path[i] = n.Cell
		n = n.Prev
	}
	return path
}

// stepDuration 走完一个格子需要的时间
func stepDuration(p *core.Player) time.Duration {
	if p.Speed <= 0 {
		return never
	}
	return time.Duration(float64(core.TileSize) / p.Speed * float64(time.Second))
}

// canEscape 放下炸弹后能否在爆炸前走到不受任何炸弹威胁的格子。
// 途经的格子必须在完全离开之前保持安全
func canEscape(bb *Blackboard, danger *DangerField, start core.GridCell) bool {
	step := stepDuration(bb.Self)
	queue := list.New()
	visited := map[core.GridCell]bool{start: true}
	queue.PushBack(&stepNode{Cell: start})

	for queue.Len() > 0 {
		n := queue.Remove(queue.Front()).(*stepNode)
		if !danger.Threatened(n.Cell) {
			return true
		}
		for _, d := range neighbours {
			next := n.Cell.Add(d.dx, d.dy)
			if visited[next] || !bb.walkable(next) {
				continue
			}
			leave := time.Duration(n.Depth+2) * step
			if !danger.SafeAt(next, leave) {
				continue
			}
			visited[next] = true
			queue.PushBack(&stepNode{Cell: next, Prev: n, Depth: n.Depth + 1})
		}
	}
	return false
}

// steer 朝格子中心移动。偏离移动轴的分量同时修正，避免卡在墙角
func steer(p *core.Player, cell core.GridCell) core.Input {
	d := core.ToWorld(cell).Sub(p.Pos)
	return core.Input{
		Left:  d.X < -alignTolerance,
		Right: d.X > alignTolerance,
		Up:    d.Y < -alignTolerance,
		Down:  d.Y > alignTolerance,
	}
}

// centred 是否已经站在格子中心
func centred(p *core.Player, cell core.GridCell) bool {
	d := core.ToWorld(cell).Sub(p.Pos)
	return math.Abs(d.X) <= alignTolerance && math.Abs(d.Y) <= alignTolerance
}
