package core

import "log"

// AffectedCells 返回爆炸影响的格子：与中心位移满足 dx²+dy² <= radius² 的所有格子。
// radius 为 1 时是中心加上下左右四格的十字。中心格子总是第一个。
func AffectedCells(center GridCell, radius int) []GridCell {
	cells := []GridCell{center}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if dx*dx+dy*dy <= radius*radius {
				cells = append(cells, center.Add(dx, dy))
			}
		}
	}
	return cells
}

// detonate 炸弹爆炸。步骤顺序不能调换：
// 先移除炸弹和归还计数，再用同一份受影响格子摧毁砖块、淘汰玩家，最后发送一次反馈。
// 爆炸不会被墙壁遮挡，墙壁只是不会被摧毁。
func (g *Game) detonate(bomb *Bomb) {
	g.removeBomb(bomb)

	if owner := g.Player(bomb.Owner); owner != nil {
		owner.Bombs.Decrement()
	}

	cells := AffectedCells(bomb.Cell(), g.BlastRadius)
	affected := make(map[GridCell]struct{}, len(cells))
	for _, cell := range cells {
		affected[cell] = struct{}{}

		if g.classify(cell) != TileBrick {
			continue
		}
		g.Tiles.DestroyTile(cell)
		g.tileChanges = append(g.tileChanges, TileChange{Cell: cell, OldType: TileBrick, NewType: TileEmpty})
		g.Explosions = append(g.Explosions, &ExplosionMarker{
			Cell: cell,
			Pos:  ToWorld(cell),
			Life: NewTimer(ExplosionMarkerDuration),
		})
	}

	var victims []int
	for _, p := range g.Players {
		if _, hit := affected[p.Cell()]; hit {
			victims = append(victims, p.ID)
		}
	}
	for _, id := range victims {
		g.eliminate(id)
		g.Feedback.EmitCue(CuePlayerDeath)
	}

	g.Feedback.EmitCue(CueBombExplosion)
	g.Feedback.EmitTrauma(BombTrauma)
}

// classify 查询格子类型。无法分类的地图块按空地处理，每个格子只警告一次
func (g *Game) classify(cell GridCell) TileType {
	tile, err := g.Tiles.Classify(cell)
	if err != nil {
		g.warnUnclassified(cell, err)
		return TileEmpty
	}
	return tile
}

func (g *Game) warnUnclassified(cell GridCell, err error) {
	if _, seen := g.warned[cell]; seen {
		return
	}
	g.warned[cell] = struct{}{}
	log.Printf("警告: 格子 (%d, %d) 按空地处理: %v", cell.X, cell.Y, err)
}
