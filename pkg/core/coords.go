package core

import "math"

// GridCell 格子坐标，x 轴向右，y 轴向下，原点在左上角
type GridCell struct {
	X, Y int
}

// Add 返回偏移后的格子
func (c GridCell) Add(dx, dy int) GridCell {
	return GridCell{X: c.X + dx, Y: c.Y + dy}
}

// InBounds 检查格子是否在 width x height 的地图内
func (c GridCell) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Vec2 世界坐标（像素单位）
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize 返回单位向量，零向量保持不变
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// ToGrid 世界坐标转换为所在格子（按 TileSize 向下取整）
func ToGrid(p Vec2) GridCell {
	return GridCell{
		X: int(math.Floor(p.X / TileSize)),
		Y: int(math.Floor(p.Y / TileSize)),
	}
}

// ToWorld 格子坐标转换为格子中心的世界坐标
func ToWorld(c GridCell) Vec2 {
	return Vec2{
		X: float64(c.X*TileSize) + TileSize/2,
		Y: float64(c.Y*TileSize) + TileSize/2,
	}
}

// GridNormalize 把世界坐标吸附到所在格子的中心
func GridNormalize(p Vec2) Vec2 {
	return ToWorld(ToGrid(p))
}
