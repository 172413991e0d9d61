package server

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"bomby/pkg/core"
)

// boardCell 俯视图中每个格子的像素边长
const boardCell = 16

var (
	colorFloor     = color.RGBA{70, 120, 60, 255}
	colorWall      = color.RGBA{90, 90, 100, 255}
	colorBrick     = color.RGBA{170, 100, 50, 255}
	colorBomb      = color.RGBA{20, 20, 20, 255}
	colorExplosion = color.NRGBA{255, 160, 30, 255}
)

var playerColors = []color.RGBA{
	{230, 60, 60, 255},
	{60, 120, 230, 255},
	{240, 220, 60, 255},
	{200, 80, 220, 255},
}

// RenderBoard 把快照画成一张俯视图
func RenderBoard(snap core.Snapshot) *gg.Context {
	w, h := core.MapWidth, core.MapHeight
	if snap.Map != nil {
		w, h = snap.Map.Width, snap.Map.Height
	}
	dc := gg.NewContext(w*boardCell, h*boardCell)

	dc.SetColor(colorFloor)
	dc.DrawRectangle(0, 0, float64(w*boardCell), float64(h*boardCell))
	dc.Fill()

	if snap.Map != nil {
		for cell, tile := range snap.Map.AllTiles() {
			switch tile {
			case core.TileWall:
				dc.SetColor(colorWall)
			case core.TileBrick:
				dc.SetColor(colorBrick)
			default:
				continue
			}
			dc.DrawRectangle(float64(cell.X*boardCell), float64(cell.Y*boardCell), boardCell, boardCell)
			dc.Fill()
		}
	}

	for _, e := range snap.Explosions {
		dc.SetColor(explosionColor(e.Alpha))
		dc.DrawRectangle(float64(e.Cell.X*boardCell), float64(e.Cell.Y*boardCell), boardCell, boardCell)
		dc.Fill()
	}

	half := float64(boardCell) / 2
	for _, b := range snap.Bombs {
		dc.SetColor(colorBomb)
		dc.DrawCircle(float64(b.Cell.X*boardCell)+half, float64(b.Cell.Y*boardCell)+half, half*0.7)
		dc.Fill()
	}

	scale := float64(boardCell) / core.TileSize
	for _, p := range snap.Players {
		dc.SetColor(playerColors[p.ID%len(playerColors)])
		dc.DrawCircle(p.Pos.X*scale, p.Pos.Y*scale, half*0.8)
		dc.Fill()
	}
	return dc
}

// explosionColor 按透明度淡出的爆炸颜色（非预乘）
func explosionColor(alpha float64) color.NRGBA {
	c := colorExplosion
	c.A = uint8(255 * min(max(alpha, 0), 1))
	return c
}

// WriteBoardPNG 渲染快照并编码为 PNG
func WriteBoardPNG(w io.Writer, snap core.Snapshot) error {
	return RenderBoard(snap).EncodePNG(w)
}
