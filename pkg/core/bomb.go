package core

import (
	"errors"
	"time"
)

var (
	// ErrBombCapacity 玩家场上炸弹已达上限
	ErrBombCapacity = errors.New("炸弹数量已达上限")
	// ErrCellOccupied 目标格子已有炸弹
	ErrCellOccupied = errors.New("格子已有炸弹")
	// ErrPlayerNotFound 玩家不存在
	ErrPlayerNotFound = errors.New("玩家不存在")
)

// Bomb 场上未爆炸的炸弹
type Bomb struct {
	ID    int
	Owner int  // 放置者 ID，只用于计数，放置者可能已被淘汰
	Pos   Vec2 // 格子中心
	Fuse  Timer
}

// Cell 炸弹所在格子
func (b *Bomb) Cell() GridCell {
	return ToGrid(b.Pos)
}

// PlaceBomb 玩家在 pos 所在格子放置炸弹。
// 超过上限或格子已有炸弹时返回错误且不产生任何副作用。
func (g *Game) PlaceBomb(playerID int, pos Vec2) (int, error) {
	player := g.Player(playerID)
	if player == nil {
		return 0, ErrPlayerNotFound
	}
	if player.Bombs.Full() {
		return 0, ErrBombCapacity
	}

	cell := ToGrid(pos)
	if g.BombAt(cell) != nil {
		return 0, ErrCellOccupied
	}

	g.nextBombID++
	bomb := &Bomb{
		ID:    g.nextBombID,
		Owner: playerID,
		Pos:   GridNormalize(pos),
		Fuse:  NewTimer(g.FuseDuration),
	}
	g.Bombs = append(g.Bombs, bomb)
	player.Bombs.Increment()

	g.Feedback.EmitCue(CueBombFuse)
	return bomb.ID, nil
}

// BombAt 返回格子上的炸弹，没有时返回 nil
func (g *Game) BombAt(cell GridCell) *Bomb {
	for _, b := range g.Bombs {
		if b.Cell() == cell {
			return b
		}
	}
	return nil
}

// spawnBombs 处理本帧按下放置键的玩家
func (g *Game) spawnBombs(input InputProvider) {
	for _, p := range g.Players {
		if !input.BombJustPressed(p.ID) {
			continue
		}
		// 放置失败是正常情况，玩家可以下一帧重试
		_, _ = g.PlaceBomb(p.ID, p.Pos)
	}
}

// updateBombs 推进所有引信，到期的炸弹立即爆炸
func (g *Game) updateBombs(dt time.Duration) {
	var ready []*Bomb
	for _, b := range g.Bombs {
		b.Fuse.Tick(dt)
		if b.Fuse.JustFinished() {
			ready = append(ready, b)
		}
	}
	for _, b := range ready {
		g.detonate(b)
	}
}

func (g *Game) removeBomb(bomb *Bomb) {
	for i, b := range g.Bombs {
		if b == bomb {
			g.Bombs = append(g.Bombs[:i], g.Bombs[i+1:]...)
			return
		}
	}
}
