package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bomby/pkg/core"
)

// ControlScheme 按键方案
type ControlScheme int

const (
	ControlWASD  ControlScheme = iota // WASD + 空格
	ControlArrow                      // 方向键 + 回车
)

func (c ControlScheme) String() string {
	switch c {
	case ControlWASD:
		return "WASD+空格"
	case ControlArrow:
		return "方向键+回车"
	}
	return "未知"
}

type keyBinding struct {
	up, down, left, right, bomb ebiten.Key
}

var bindings = map[ControlScheme]keyBinding{
	ControlWASD:  {ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD, ebiten.KeySpace},
	ControlArrow: {ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyEnter},
}

// ReadInput 读取某个按键方案当前的按键状态。炸弹键是电平，按下沿由 core.InputState 判断
func ReadInput(scheme ControlScheme) core.Input {
	b := bindings[scheme]
	return core.Input{
		Up:    ebiten.IsKeyPressed(b.up),
		Down:  ebiten.IsKeyPressed(b.down),
		Left:  ebiten.IsKeyPressed(b.left),
		Right: ebiten.IsKeyPressed(b.right),
		Bomb:  ebiten.IsKeyPressed(b.bomb),
	}
}

// restartPressed 结算画面按 R 重开
func restartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
