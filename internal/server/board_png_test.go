package server

import (
	"image/color"
	"testing"

	"bomby/pkg/core"
)

func TestExplosionColor(t *testing.T) {
	for _, alpha := range []float64{0, 0.25, 0.5, 1, 1.5} {
		r, g, b, a := explosionColor(alpha).RGBA()
		if r > a || g > a || b > a {
			t.Errorf("alpha %v: premultiplied (%d,%d,%d,%d) exceeds alpha", alpha, r, g, b, a)
		}
	}
}

func TestRenderBoardFadingExplosion(t *testing.T) {
	snap := core.Snapshot{
		Map:        core.NewEmptyMap(3, 3),
		Explosions: []core.ExplosionSnapshot{{Cell: core.GridCell{X: 1, Y: 1}, Alpha: 0.5}},
	}
	img := RenderBoard(snap).Image()

	near := func(got, want uint8) bool {
		d := int(got) - int(want)
		return d >= -8 && d <= 8
	}
	// 半透明的橙色叠在草地上
	got := color.RGBAModel.Convert(img.At(boardCell+boardCell/2, boardCell+boardCell/2)).(color.RGBA)
	if !near(got.R, 162) || !near(got.G, 140) || !near(got.B, 45) {
		t.Errorf("explosion pixel = %v, want about {162 140 45}", got)
	}

	floor := color.RGBAModel.Convert(img.At(boardCell/2, boardCell/2)).(color.RGBA)
	if floor != colorFloor {
		t.Errorf("floor pixel = %v, want %v", floor, colorFloor)
	}
}
