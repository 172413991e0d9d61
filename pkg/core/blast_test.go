package core

import (
	"slices"
	"testing"
	"time"
)

func TestAffectedCells(t *testing.T) {
	center := GridCell{X: 5, Y: 5}

	tests := []struct {
		radius int
		want   []GridCell
	}{
		{0, []GridCell{center}},
		{1, []GridCell{center, {X: 5, Y: 4}, {X: 4, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 6}}},
	}
	for _, tt := range tests {
		got := AffectedCells(center, tt.radius)
		if !slices.Equal(got, tt.want) {
			t.Errorf("AffectedCells(r=%d) = %v, want %v", tt.radius, got, tt.want)
		}
	}

	if got := len(AffectedCells(center, 2)); got != 13 {
		t.Errorf("radius 2 covers %d cells, want 13", got)
	}
	for _, c := range AffectedCells(center, 1) {
		if c == (GridCell{X: 4, Y: 4}) {
			t.Error("diagonal cell inside radius 1")
		}
	}
}

func detonateAt(g *Game, owner int, cell GridCell) {
	if _, err := g.PlaceBomb(owner, ToWorld(cell)); err != nil {
		panic(err)
	}
	g.Step(g.FuseDuration, idle)
}

func TestBlastTileSelectivity(t *testing.T) {
	tiles := newFakeTiles()
	tiles.tiles[GridCell{X: 5, Y: 5}] = TileWall
	tiles.tiles[GridCell{X: 5, Y: 4}] = TileWall
	tiles.tiles[GridCell{X: 6, Y: 5}] = TileBrick
	tiles.tiles[GridCell{X: 4, Y: 5}] = TileUnknown
	tiles.tiles[GridCell{X: 7, Y: 5}] = TileBrick

	g := NewGameWithTiles(tiles)
	g.AddPlayer(NewPlayer(1, GridCell{X: 0, Y: 0}, CharacterWhite))
	detonateAt(g, 1, GridCell{X: 5, Y: 5})

	if want := []GridCell{{X: 6, Y: 5}}; !slices.Equal(tiles.destroyed, want) {
		t.Fatalf("destroyed = %v, want %v", tiles.destroyed, want)
	}
	if tiles.tiles[GridCell{X: 7, Y: 5}] != TileBrick {
		t.Error("brick outside the blast was destroyed")
	}
	if tiles.tiles[GridCell{X: 4, Y: 5}] != TileUnknown {
		t.Error("unclassified tile was modified")
	}
	if _, warned := g.warned[GridCell{X: 4, Y: 5}]; !warned {
		t.Error("unclassified tile was not reported")
	}

	if len(g.Explosions) != 1 || g.Explosions[0].Cell != (GridCell{X: 6, Y: 5}) {
		t.Fatalf("explosion markers = %+v", g.Explosions)
	}
	changes := g.DrainTileChanges()
	if len(changes) != 1 || changes[0].Cell != (GridCell{X: 6, Y: 5}) || changes[0].NewType != TileEmpty {
		t.Fatalf("tile changes = %+v", changes)
	}
	if g.DrainTileChanges() != nil {
		t.Error("tile changes not drained")
	}
}

func TestBlastEliminatesActorsInCross(t *testing.T) {
	g := newTestGame(
		GridCell{X: 0, Y: 0}, // 1: 放置者
		GridCell{X: 4, Y: 5}, // 2: 十字内
		GridCell{X: 4, Y: 4}, // 3: 对角线
	)
	g.DrainEvents()
	detonateAt(g, 1, GridCell{X: 5, Y: 5})

	if g.Player(2) != nil {
		t.Error("actor inside the blast survived")
	}
	if g.Player(3) == nil {
		t.Error("actor on the diagonal was eliminated")
	}
	if !slices.Equal(g.Eliminated, []int{2}) {
		t.Errorf("eliminated = %v, want [2]", g.Eliminated)
	}

	cues, trauma := countCues(g.DrainEvents())
	if cues[CuePlayerDeath] != 1 || cues[CueBombExplosion] != 1 {
		t.Errorf("cues = %v", cues)
	}
	if len(trauma) != 1 || trauma[0] != BombTrauma {
		t.Errorf("trauma = %v, want [%v]", trauma, BombTrauma)
	}
}

func TestBlastReturnsBombToOwner(t *testing.T) {
	g := newTestGame(GridCell{X: 0, Y: 0})
	if _, err := g.PlaceBomb(1, ToWorld(GridCell{X: 5, Y: 5})); err != nil {
		t.Fatal(err)
	}
	if g.Player(1).Bombs.Count() != 1 {
		t.Fatalf("count after placement = %d", g.Player(1).Bombs.Count())
	}
	g.Step(g.FuseDuration, idle)
	if g.Player(1).Bombs.Count() != 0 {
		t.Fatalf("count after detonation = %d", g.Player(1).Bombs.Count())
	}
}

func TestBlastOwnerCaughtInOwnBomb(t *testing.T) {
	g := newTestGame(GridCell{X: 5, Y: 5}, GridCell{X: 0, Y: 0})
	owner := g.Player(1)

	detonateAt(g, 1, GridCell{X: 5, Y: 5})

	if g.Player(1) != nil {
		t.Fatal("owner standing on the bomb survived")
	}
	if owner.Bombs.Count() != 0 {
		t.Fatalf("owner count = %d, want 0", owner.Bombs.Count())
	}
	over, winner := g.IsGameOver()
	if !over || winner != 2 {
		t.Fatalf("IsGameOver = %v, %d, want true, 2", over, winner)
	}
}

func TestBlastOwnerGoneBeforeDetonation(t *testing.T) {
	g := newTestGame(GridCell{X: 0, Y: 0}, GridCell{X: 9, Y: 9})
	if _, err := g.PlaceBomb(1, ToWorld(GridCell{X: 5, Y: 5})); err != nil {
		t.Fatal(err)
	}
	g.RemovePlayer(1)

	g.Step(g.FuseDuration, idle)
	if len(g.Bombs) != 0 {
		t.Fatal("orphaned bomb did not detonate")
	}
}

// 爆炸效果从产生的下一帧开始衰减，完整显示 ExplosionMarkerDuration
func TestExplosionMarkerLifetime(t *testing.T) {
	tests := []struct {
		name string
		step time.Duration
	}{
		{"fuse tick", BombFuseDuration},
		{"step longer than marker", BombFuseDuration + ExplosionMarkerDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewEmptyMap(10, 10)
			m.SetTile(3, 2, TileBrick)
			g := NewGame(m)
			g.AddPlayer(NewPlayer(1, GridCell{X: 0, Y: 0}, CharacterWhite))
			if _, err := g.PlaceBomb(1, ToWorld(GridCell{X: 2, Y: 2})); err != nil {
				t.Fatal(err)
			}
			g.Step(tt.step, idle)

			if m.GetTile(3, 2) != TileEmpty {
				t.Fatalf("brick not destroyed")
			}
			if len(g.Explosions) != 1 {
				t.Fatalf("markers = %d, want 1", len(g.Explosions))
			}
			if a := g.Explosions[0].Alpha(); a != 1 {
				t.Errorf("alpha on detonation frame = %v, want 1", a)
			}

			g.Step(ExplosionMarkerDuration-time.Millisecond, idle)
			if len(g.Explosions) != 1 {
				t.Fatal("marker expired early")
			}
			g.Step(time.Millisecond, idle)
			if len(g.Explosions) != 0 {
				t.Errorf("marker still alive after %v", ExplosionMarkerDuration)
			}
		})
	}
}
