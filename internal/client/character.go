package client

import (
	"image/color"

	"bomby/pkg/core"
)

// CharacterStyle 角色的配色
type CharacterStyle struct {
	Name    string
	Body    color.RGBA
	Outline color.RGBA
	Hand    color.RGBA
	Shoe    color.RGBA
}

var characterStyles = map[core.CharacterType]CharacterStyle{
	core.CharacterWhite: {
		Name:    "经典白",
		Body:    color.RGBA{255, 255, 255, 255},
		Outline: color.RGBA{0, 0, 0, 255},
		Hand:    color.RGBA{255, 150, 150, 255},
		Shoe:    color.RGBA{50, 50, 50, 255},
	},
	core.CharacterBlack: {
		Name:    "暗夜黑",
		Body:    color.RGBA{40, 40, 40, 255},
		Outline: color.RGBA{200, 200, 200, 255},
		Hand:    color.RGBA{80, 80, 120, 255},
		Shoe:    color.RGBA{180, 180, 180, 255},
	},
	core.CharacterRed: {
		Name:    "烈焰红",
		Body:    color.RGBA{255, 80, 80, 255},
		Outline: color.RGBA{150, 0, 0, 255},
		Hand:    color.RGBA{255, 200, 100, 255},
		Shoe:    color.RGBA{100, 0, 0, 255},
	},
	core.CharacterBlue: {
		Name:    "冰霜蓝",
		Body:    color.RGBA{100, 180, 255, 255},
		Outline: color.RGBA{0, 50, 150, 255},
		Hand:    color.RGBA{150, 220, 255, 255},
		Shoe:    color.RGBA{0, 30, 100, 255},
	},
}

// StyleFor 角色配色，未知角色使用白色
func StyleFor(c core.CharacterType) CharacterStyle {
	if s, ok := characterStyles[c]; ok {
		return s
	}
	return characterStyles[core.CharacterWhite]
}
