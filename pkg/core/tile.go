package core

import (
	"errors"
	"iter"
)

// TileType 地图块类型
type TileType int

const (
	TileEmpty   TileType = iota // 空地
	TileBrick                   // 砖块，可被炸毁
	TileWall                    // 墙壁，永久存在
	TileUnknown                 // 无法分类的地图块（关卡数据损坏）
)

func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileBrick:
		return "brick"
	case TileWall:
		return "wall"
	}
	return "unknown"
}

// Blocking 是否阻挡移动
func (t TileType) Blocking() bool {
	return t == TileBrick || t == TileWall
}

// Destructible 是否能被爆炸摧毁
func (t TileType) Destructible() bool {
	return t == TileBrick
}

// ErrUnclassifiedTile 地图块没有所属图层，无法判断类型
var ErrUnclassifiedTile = errors.New("地图块无法分类")

// TileProvider 关卡数据提供者。核心逻辑只查询和请求摧毁，不创建地图块
type TileProvider interface {
	// Classify 返回格子的类型；无法分类时返回 ErrUnclassifiedTile
	Classify(cell GridCell) (TileType, error)
	// DestroyTile 摧毁格子上的可破坏地图块，格子为空时什么都不做
	DestroyTile(cell GridCell)
	// AllTiles 遍历所有存在地图块的格子，损坏的地图块以 TileUnknown 给出
	AllTiles() iter.Seq2[GridCell, TileType]
}

// TileChange 地图变化记录（用于客户端同步）
type TileChange struct {
	Cell    GridCell
	OldType TileType
	NewType TileType
}
