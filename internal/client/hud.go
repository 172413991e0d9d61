package client

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bomby/pkg/core"
)

const hudHeight = 20

var (
	hudFace       = text.NewGoXFace(basicfont.Face7x13)
	hudBackground = color.RGBA{20, 20, 30, 255}
	hudText       = color.RGBA{230, 230, 230, 255}
	overlayColor  = color.RGBA{0, 0, 0, 140}
)

// drawHUD 顶部状态栏：每个玩家剩余的炸弹数，右侧是额外信息
func drawHUD(screen *ebiten.Image, snap core.Snapshot, extra string) {
	w := float32(screen.Bounds().Dx())
	vector.FillRect(screen, 0, 0, w, hudHeight, hudBackground, false)

	parts := make([]string, 0, len(snap.Players))
	for _, p := range snap.Players {
		left := core.MaxBombsPerPlayer - p.BombsOut
		parts = append(parts, fmt.Sprintf("P%d %s bombs:%d", p.ID, p.Character, left))
	}
	drawText(screen, strings.Join(parts, "  "), 6, 4)

	if extra != "" {
		width, _ := text.Measure(extra, hudFace, 0)
		drawText(screen, extra, float64(w)-width-6, 4)
	}
}

// drawBanner 半透明遮罩加居中文字，用于结算和连接状态
func drawBanner(screen *ebiten.Image, lines ...string) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, hudHeight, float32(b.Dx()), float32(b.Dy()-hudHeight), overlayColor, false)

	lineHeight := hudFace.Metrics().HAscent + hudFace.Metrics().HDescent + 4
	y := float64(b.Dy())/2 - lineHeight*float64(len(lines))/2
	for _, line := range lines {
		width, _ := text.Measure(line, hudFace, 0)
		drawText(screen, line, (float64(b.Dx())-width)/2, y)
		y += lineHeight
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudText)
	text.Draw(screen, s, hudFace, op)
}

// gameOverText 结算文字
func gameOverText(winnerID int) string {
	if winnerID < 0 {
		return "DRAW"
	}
	return fmt.Sprintf("PLAYER %d WINS", winnerID)
}
