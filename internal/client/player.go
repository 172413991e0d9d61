package client

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bomby/pkg/core"
)

const animStep = 150 * time.Millisecond // 走路动画每帧时长

// walkAnimator 记录每个玩家的走路动画帧，只在渲染端使用
type walkAnimator struct {
	elapsed map[int]time.Duration
}

func newWalkAnimator() *walkAnimator {
	return &walkAnimator{elapsed: make(map[int]time.Duration)}
}

// Update 推进动画，不在快照中的玩家被丢弃
func (a *walkAnimator) Update(players []core.PlayerSnapshot, dt time.Duration) {
	seen := make(map[int]struct{}, len(players))
	for _, p := range players {
		seen[p.ID] = struct{}{}
		if p.IsMoving {
			a.elapsed[p.ID] += dt
		} else {
			a.elapsed[p.ID] = 0
		}
	}
	for id := range a.elapsed {
		if _, ok := seen[id]; !ok {
			delete(a.elapsed, id)
		}
	}
}

// Frame 当前动画帧（0 或 1）
func (a *walkAnimator) Frame(id int) int {
	return int(a.elapsed[id]/animStep) % 2
}

var (
	eyeWhite = color.RGBA{255, 255, 255, 255}
	eyeBlack = color.RGBA{0, 0, 0, 255}
)

// drawPlayer 以碰撞盒中心为基准绘制玩家
func drawPlayer(dst *ebiten.Image, p core.PlayerSnapshot, frame int, local bool) {
	style := StyleFor(p.Character)

	size := float32(core.PlayerHalfExtent * 2)
	body := size * 0.8
	x := float32(p.Pos.X) - body/2
	y := float32(p.Pos.Y) - body/2

	// 本地玩家脚下画一个标记
	if local {
		vector.StrokeCircle(dst, float32(p.Pos.X), float32(p.Pos.Y)+body/2+2, body/2, 1.5, color.RGBA{255, 255, 0, 180}, true)
	}

	vector.FillRect(dst, x, y, body, body, style.Body, false)
	vector.StrokeRect(dst, x, y, body, body, 2, style.Outline, false)

	swing := float32(0)
	if frame == 1 {
		swing = 2
	}

	hand := body * 0.25
	vector.FillCircle(dst, x-swing-2, y+body*0.6, hand, style.Hand, true)
	vector.FillCircle(dst, x+body+swing+2, y+body*0.6, hand, style.Hand, true)

	foot := body * 0.3
	vector.FillRect(dst, x+body*0.2-swing, y+body, foot, foot*0.6, style.Shoe, false)
	vector.FillRect(dst, x+body*0.6+swing, y+body, foot, foot*0.6, style.Shoe, false)

	// 眼睛朝向移动方向
	eye := body * 0.15
	ey := y + body*0.3
	lx, rx := x+body*0.3, x+body*0.7
	switch p.Direction {
	case core.DirUp:
		ey -= 2
	case core.DirDown:
		ey += 2
	case core.DirLeft:
		lx, rx = lx-body*0.1, rx-body*0.3
	case core.DirRight:
		lx, rx = lx+body*0.3, rx+body*0.1
	}
	for _, ex := range []float32{lx, rx} {
		vector.FillCircle(dst, ex, ey, eye, eyeWhite, true)
		vector.FillCircle(dst, ex, ey, eye*0.5, eyeBlack, true)
	}
}
