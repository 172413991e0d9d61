package core

// AABB 轴对齐碰撞盒，Min/Max 是相对于位置的偏移
type AABB struct {
	Min, Max Vec2
}

// SquareBox 以位置为中心、半边长为 half 的碰撞盒
func SquareBox(half float64) AABB {
	return AABB{Min: Vec2{X: -half, Y: -half}, Max: Vec2{X: half, Y: half}}
}

// Blocker 查询格子是否阻挡移动
type Blocker interface {
	Blocked(cell GridCell) bool
}

// BlockedCells 一帧内阻挡格子的快照：墙壁、砖块和炸弹所在格子，地图外的格子全部阻挡
type BlockedCells struct {
	cells  map[GridCell]struct{}
	width  int
	height int
}

// NewBlockedCells 创建快照，width 或 height 为 0 时不做边界限制
func NewBlockedCells(width, height int) *BlockedCells {
	return &BlockedCells{
		cells:  make(map[GridCell]struct{}),
		width:  width,
		height: height,
	}
}

func (b *BlockedCells) Add(cell GridCell) {
	b.cells[cell] = struct{}{}
}

// Blocked 实现 Blocker
func (b *BlockedCells) Blocked(cell GridCell) bool {
	if b.width > 0 && b.height > 0 && !cell.InBounds(b.width, b.height) {
		return true
	}
	_, ok := b.cells[cell]
	return ok
}

// Len 快照中显式记录的格子数
func (b *BlockedCells) Len() int {
	return len(b.cells)
}

// ResolveDisplacement 按轴独立检测本帧位移，返回修正后的位移。
// 每个轴只检查运动方向前沿的两个角；投影格子被阻挡且不是角色当前所在格子时，该轴位移清零。
// 两个轴互不影响，斜向撞墙时另一轴可以继续滑动。
func ResolveDisplacement(delta, pos Vec2, box AABB, blocked Blocker) Vec2 {
	current := ToGrid(pos)
	out := delta

	if delta.X != 0 {
		edge := box.Max.X
		if delta.X < 0 {
			edge = box.Min.X
		}
		x := pos.X + edge + delta.X
		if leadingEdgeBlocked(blocked, current,
			Vec2{X: x, Y: pos.Y + box.Min.Y},
			Vec2{X: x, Y: pos.Y + box.Max.Y}) {
			out.X = 0
		}
	}

	if delta.Y != 0 {
		edge := box.Max.Y
		if delta.Y < 0 {
			edge = box.Min.Y
		}
		y := pos.Y + edge + delta.Y
		if leadingEdgeBlocked(blocked, current,
			Vec2{X: pos.X + box.Min.X, Y: y},
			Vec2{X: pos.X + box.Max.X, Y: y}) {
			out.Y = 0
		}
	}

	return out
}

func leadingEdgeBlocked(blocked Blocker, current GridCell, corners ...Vec2) bool {
	for _, corner := range corners {
		cell := ToGrid(corner)
		if cell != current && blocked.Blocked(cell) {
			return true
		}
	}
	return false
}
