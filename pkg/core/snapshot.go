package core

import "time"

// PlayerSnapshot 玩家状态副本
type PlayerSnapshot struct {
	ID        int
	Pos       Vec2
	Direction Direction
	IsMoving  bool
	Character CharacterType
	BombsOut  int
}

// BombSnapshot 炸弹状态副本
type BombSnapshot struct {
	ID       int
	Owner    int
	Cell     GridCell
	FuseLeft time.Duration
	FuseTime time.Duration // 引信总时长
	Fraction float64       // 引信已燃烧比例
}

// ExplosionSnapshot 爆炸效果副本
type ExplosionSnapshot struct {
	Cell  GridCell
	Alpha float64
}

// Snapshot 某一帧的完整状态副本，可以安全地交给其他 goroutine
type Snapshot struct {
	Frame      int32
	Map        *GameMap
	Players    []PlayerSnapshot
	Bombs      []BombSnapshot
	Explosions []ExplosionSnapshot
	Eliminated []int
}

// Snapshot 复制当前状态
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:      g.CurrentFrame,
		Players:    make([]PlayerSnapshot, 0, len(g.Players)),
		Bombs:      make([]BombSnapshot, 0, len(g.Bombs)),
		Explosions: make([]ExplosionSnapshot, 0, len(g.Explosions)),
		Eliminated: append([]int(nil), g.Eliminated...),
	}
	if g.Map != nil {
		s.Map = g.Map.Clone()
	}
	for _, p := range g.Players {
		s.Players = append(s.Players, PlayerSnapshot{
			ID:        p.ID,
			Pos:       p.Pos,
			Direction: p.Direction,
			IsMoving:  p.IsMoving,
			Character: p.Character,
			BombsOut:  p.Bombs.Count(),
		})
	}
	for _, b := range g.Bombs {
		s.Bombs = append(s.Bombs, BombSnapshot{
			ID:       b.ID,
			Owner:    b.Owner,
			Cell:     b.Cell(),
			FuseLeft: b.Fuse.Remaining(),
			FuseTime: b.Fuse.Duration,
			Fraction: b.Fuse.Fraction(),
		})
	}
	for _, e := range g.Explosions {
		s.Explosions = append(s.Explosions, ExplosionSnapshot{Cell: e.Cell, Alpha: e.Alpha()})
	}
	return s
}
