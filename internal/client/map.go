package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bomby/pkg/core"
)

var (
	grassColor     = color.RGBA{34, 139, 34, 255}
	wallColor      = color.RGBA{80, 80, 80, 255}
	wallMarkColor  = color.RGBA{60, 60, 60, 255}
	brickColor     = color.RGBA{205, 133, 63, 255}
	brickLineColor = color.RGBA{180, 118, 53, 255}
	gridLineColor  = color.RGBA{0, 0, 0, 100}
	unknownColor   = color.RGBA{255, 0, 255, 255}
)

// drawMap 绘制整张地图，m 可以是任意尺寸
func drawMap(dst *ebiten.Image, m *core.GameMap) {
	const ts = float32(core.TileSize)

	for cell, tile := range m.AllTiles() {
		px := float32(cell.X) * ts
		py := float32(cell.Y) * ts

		switch tile {
		case core.TileEmpty:
			vector.FillRect(dst, px, py, ts, ts, grassColor, false)

		case core.TileWall:
			vector.FillRect(dst, px, py, ts, ts, wallColor, false)
			// 十字纹理
			vector.StrokeLine(dst, px+ts/2, py+5, px+ts/2, py+ts-5, 2, wallMarkColor, false)
			vector.StrokeLine(dst, px+5, py+ts/2, px+ts-5, py+ts/2, 2, wallMarkColor, false)

		case core.TileBrick:
			vector.FillRect(dst, px, py, ts, ts, brickColor, false)
			for i := range 3 {
				y := py + float32(i*10+5)
				vector.StrokeLine(dst, px+2, y, px+ts-2, y, 1, brickLineColor, false)
			}

		default:
			// 关卡数据损坏的格子，显眼一点方便发现
			vector.FillRect(dst, px, py, ts, ts, unknownColor, false)
		}

		vector.StrokeRect(dst, px, py, ts, ts, 1, gridLineColor, false)
	}
}
