package fx

import (
	"cmp"
	"slices"
)

// Layer 绘制层，小的先画
type Layer int

const (
	LayerGround Layer = iota // 爆炸火焰
	LayerActors              // 玩家和炸弹
	LayerOverlay
)

// Sprite 一个待绘制对象
type Sprite[T any] struct {
	Layer Layer
	Y     float64 // 世界坐标 Y，越靠下越后画
	Item  T
}

// SortByDepth 按层排序，同层内按 Y 升序。相同 Y 保持原顺序
func SortByDepth[T any](sprites []Sprite[T]) {
	slices.SortStableFunc(sprites, func(a, b Sprite[T]) int {
		if c := cmp.Compare(a.Layer, b.Layer); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
}
