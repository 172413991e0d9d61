package core

import (
	"fmt"
	"strings"
)

// CharacterType 角色外观
type CharacterType int

const (
	CharacterWhite CharacterType = iota // 经典白色炸弹人
	CharacterBlack                      // 黑色炸弹人
	CharacterRed                        // 红色炸弹人
	CharacterBlue                       // 蓝色炸弹人
)

// Characters 所有角色，按出生点顺序轮流分配
var Characters = []CharacterType{CharacterWhite, CharacterBlack, CharacterRed, CharacterBlue}

// String 返回角色类型的字符串表示
func (c CharacterType) String() string {
	switch c {
	case CharacterWhite:
		return "white"
	case CharacterBlack:
		return "black"
	case CharacterRed:
		return "red"
	case CharacterBlue:
		return "blue"
	}
	return "unknown"
}

// ParseCharacter 解析命令行中的角色名
func ParseCharacter(name string) (CharacterType, error) {
	for _, c := range Characters {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return CharacterWhite, fmt.Errorf("未知角色: %q", name)
}
