package core

// Direction 朝向
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// Player 玩家（纯逻辑，不包含渲染）
type Player struct {
	ID        int
	Pos       Vec2 // 碰撞盒中心
	Box       AABB
	Velocity  Vec2 // 本帧实际速度
	Speed     float64
	Direction Direction
	IsMoving  bool
	Character CharacterType
	Bombs     BombCounter
}

// NewPlayer 在格子中心创建玩家
func NewPlayer(id int, cell GridCell, charType CharacterType) *Player {
	return &Player{
		ID:        id,
		Pos:       ToWorld(cell),
		Box:       SquareBox(PlayerHalfExtent),
		Speed:     PlayerSpeed,
		Direction: DirDown,
		Character: charType,
		Bombs:     NewBombCounter(MaxBombsPerPlayer),
	}
}

// Cell 玩家当前所在格子
func (p *Player) Cell() GridCell {
	return ToGrid(p.Pos)
}

// updateDirection 根据位移更新朝向，水平方向优先
func (p *Player) updateDirection(d Vec2) {
	switch {
	case d.X > 0:
		p.Direction = DirRight
	case d.X < 0:
		p.Direction = DirLeft
	case d.Y > 0:
		p.Direction = DirDown
	case d.Y < 0:
		p.Direction = DirUp
	}
}
