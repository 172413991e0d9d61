package core

import (
	"errors"
	"testing"
	"time"
)

func newTestGame(players ...GridCell) *Game {
	g := NewGame(NewEmptyMap(10, 10))
	for i, cell := range players {
		g.AddPlayer(NewPlayer(i+1, cell, CharacterWhite))
	}
	return g
}

func TestPlaceBombCapacity(t *testing.T) {
	g := newTestGame(GridCell{X: 5, Y: 5})

	for _, cell := range []GridCell{{X: 5, Y: 5}, {X: 6, Y: 5}} {
		if _, err := g.PlaceBomb(1, ToWorld(cell)); err != nil {
			t.Fatalf("PlaceBomb(%v): %v", cell, err)
		}
	}
	_, err := g.PlaceBomb(1, ToWorld(GridCell{X: 7, Y: 5}))
	if !errors.Is(err, ErrBombCapacity) {
		t.Fatalf("third bomb err = %v, want %v", err, ErrBombCapacity)
	}
	if len(g.Bombs) != 2 || g.Player(1).Bombs.Count() != 2 {
		t.Fatalf("bombs = %d, count = %d", len(g.Bombs), g.Player(1).Bombs.Count())
	}
}

func TestPlaceBombNoStacking(t *testing.T) {
	g := newTestGame(GridCell{X: 5, Y: 5})

	if _, err := g.PlaceBomb(1, Vec2{X: 170, Y: 170}); err != nil {
		t.Fatal(err)
	}
	_, err := g.PlaceBomb(1, Vec2{X: 185, Y: 161})
	if !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("stacked bomb err = %v, want %v", err, ErrCellOccupied)
	}
	if len(g.Bombs) != 1 || g.Player(1).Bombs.Count() != 1 {
		t.Fatalf("rejected placement had side effects: bombs = %d, count = %d",
			len(g.Bombs), g.Player(1).Bombs.Count())
	}

	cues, _ := countCues(g.DrainEvents())
	if cues[CueBombFuse] != 1 {
		t.Fatalf("fuse cues = %d, want 1", cues[CueBombFuse])
	}
}

func TestPlaceBombSnapsToCellCenter(t *testing.T) {
	g := newTestGame(GridCell{X: 5, Y: 5})

	if _, err := g.PlaceBomb(1, Vec2{X: 170.3, Y: 181.9}); err != nil {
		t.Fatal(err)
	}
	if got, want := g.Bombs[0].Pos, ToWorld(GridCell{X: 5, Y: 5}); got != want {
		t.Fatalf("bomb pos = %v, want %v", got, want)
	}
}

func TestPlaceBombUnknownPlayer(t *testing.T) {
	g := newTestGame()
	if _, err := g.PlaceBomb(42, Vec2{}); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrPlayerNotFound)
	}
}

func TestBombDetonatesExactlyOnce(t *testing.T) {
	g := newTestGame(GridCell{X: 0, Y: 0})
	if _, err := g.PlaceBomb(1, ToWorld(GridCell{X: 5, Y: 5})); err != nil {
		t.Fatal(err)
	}
	g.DrainEvents()

	events := runFor(g, 4*time.Second, 100*time.Millisecond, idle)
	cues, trauma := countCues(events)
	if cues[CueBombExplosion] != 1 || len(trauma) != 1 {
		t.Fatalf("explosion cues = %d, trauma events = %d, want 1 and 1", cues[CueBombExplosion], len(trauma))
	}
	if len(g.Bombs) != 0 {
		t.Fatalf("bombs left = %d", len(g.Bombs))
	}
	if g.Player(1).Bombs.Count() != 0 {
		t.Fatalf("count = %d, want 0", g.Player(1).Bombs.Count())
	}
}

func TestBombFuseTiming(t *testing.T) {
	g := newTestGame(GridCell{X: 0, Y: 0})
	if _, err := g.PlaceBomb(1, ToWorld(GridCell{X: 5, Y: 5})); err != nil {
		t.Fatal(err)
	}

	runFor(g, 1400*time.Millisecond, 100*time.Millisecond, idle)
	if len(g.Bombs) != 1 {
		t.Fatalf("bomb exploded early at 1.4s")
	}
	g.Step(100*time.Millisecond, idle)
	if len(g.Bombs) != 0 {
		t.Fatalf("bomb still alive at 1.5s")
	}
}

func TestBombKeyHeldPlacesOnce(t *testing.T) {
	g := newTestGame(GridCell{X: 5, Y: 5})
	input := NewInputState()

	for i := 0; i < 5; i++ {
		input.Set(1, Input{Bomb: true})
		g.Step(10*time.Millisecond, input)
		input.Advance()
	}
	if len(g.Bombs) != 1 {
		t.Fatalf("holding the key placed %d bombs, want 1", len(g.Bombs))
	}

	input.Set(1, Input{})
	g.Step(10*time.Millisecond, input)
	input.Advance()
	input.Set(1, Input{Bomb: true})
	g.Step(10*time.Millisecond, input)

	// 同一格子已有炸弹，第二次按键被静默拒绝
	if len(g.Bombs) != 1 {
		t.Fatalf("bombs = %d, want 1", len(g.Bombs))
	}
}
