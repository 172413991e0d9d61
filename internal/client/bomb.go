package client

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bomby/pkg/core"
)

const bombRadius = float32(12)

// drawBomb 绘制炸弹。引线随燃烧比例变短，快爆炸时出现红色警告圈
func drawBomb(dst *ebiten.Image, b core.BombSnapshot) {
	center := core.ToWorld(b.Cell)
	cx, cy := float32(center.X), float32(center.Y)
	ratio := min(max(b.Fraction, 0), 1)

	burnt := (b.FuseTime - b.FuseLeft).Seconds()
	blink := math.Sin(burnt * 6) // 约每秒闪一次
	alpha := uint8(200 + 55*blink)

	vector.FillCircle(dst, cx, cy, bombRadius, color.RGBA{0, 0, 0, alpha}, true)
	vector.StrokeCircle(dst, cx, cy, bombRadius, 2, color.RGBA{50, 50, 50, 255}, true)

	fuseLen := float32(15 * (1 - ratio))
	if fuseLen > 0 {
		fuseX := cx - bombRadius*0.5
		fuseY := cy - bombRadius
		tipX, tipY := fuseX-fuseLen*0.5, fuseY-fuseLen
		vector.StrokeLine(dst, fuseX, fuseY, tipX, tipY, 2, color.RGBA{139, 69, 19, 255}, true)
		if blink > 0 {
			vector.FillCircle(dst, tipX, tipY, 3, color.RGBA{255, uint8(100 + 155*blink), 0, 255}, true)
		}
	}

	if ratio > 0.7 {
		k := (ratio - 0.7) / 0.3
		vector.StrokeCircle(dst, cx, cy, bombRadius+float32(10*k), 2, color.RGBA{255, 0, 0, uint8(100 * k)}, true)
	}
}

// drawExplosion 绘制一个爆炸格子。Alpha 从 1 衰减到 0
func drawExplosion(dst *ebiten.Image, e core.ExplosionSnapshot) {
	const ts = float32(core.TileSize)
	px := float32(e.Cell.X) * ts
	py := float32(e.Cell.Y) * ts

	progress := 1 - min(max(e.Alpha, 0), 1)
	alpha := uint8(255 * e.Alpha)

	// 从中心扩散
	scale := float32(0.3 + 0.7*math.Min(progress*2, 1))
	offset := ts * (1 - scale) / 2

	var fire color.RGBA
	switch {
	case progress < 0.3:
		fire = color.RGBA{255, 255, 0, alpha}
	case progress < 0.6:
		fire = color.RGBA{255, 165, 0, alpha}
	default:
		fire = color.RGBA{255, 0, 0, alpha}
	}
	vector.FillRect(dst, px+offset, py+offset, ts*scale, ts*scale, fire, false)

	if progress < 0.5 {
		inner := scale * 0.6
		innerOffset := ts * (1 - inner) / 2
		vector.FillRect(dst, px+innerOffset, py+innerOffset, ts*inner, ts*inner,
			color.RGBA{255, 255, 255, uint8(200 * (1 - progress*2))}, false)
	}

	vector.StrokeRect(dst, px+offset, py+offset, ts*scale, ts*scale, 2, color.RGBA{255, 100, 0, alpha}, false)
}
