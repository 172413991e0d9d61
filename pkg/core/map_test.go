package core

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"blank first row", []string{""}},
		{"ragged", []string{"W.W", "W."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevel(tt.rows); !errors.Is(err, ErrInvalidLevel) {
				t.Fatalf("err = %v, want %v", err, ErrInvalidLevel)
			}
		})
	}
}

func TestLoadLevel(t *testing.T) {
	src := "WWWW\n\nWP?W\r\nWBPW\nWWWW\n"
	m, err := LoadLevel(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if m.Width != 4 || m.Height != 4 {
		t.Fatalf("size = %dx%d", m.Width, m.Height)
	}
	if len(m.Spawns) != 2 || m.Spawns[0] != (GridCell{X: 1, Y: 1}) || m.Spawns[1] != (GridCell{X: 2, Y: 2}) {
		t.Fatalf("spawns = %v", m.Spawns)
	}

	if _, err := m.Classify(GridCell{X: 2, Y: 1}); !errors.Is(err, ErrUnclassifiedTile) {
		t.Errorf("unknown rune classify err = %v", err)
	}
	if tile, err := m.Classify(GridCell{X: 1, Y: 2}); err != nil || tile != TileBrick {
		t.Errorf("Classify brick = %v, %v", tile, err)
	}
	if got := m.String(); got != "WWWW\nW.?W\nWB.W\nWWWW\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestGameMapDestroyTile(t *testing.T) {
	m, err := ParseLevel([]string{"WB."})
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 3; x++ {
		m.DestroyTile(GridCell{X: x, Y: 0})
	}
	if m.GetTile(0, 0) != TileWall || m.GetTile(1, 0) != TileEmpty {
		t.Fatalf("after destroy: %q", m.String())
	}
	if m.GetTile(-1, 0) != TileWall || m.GetTile(3, 0) != TileWall {
		t.Error("out-of-bounds tiles should read as walls")
	}
}

func TestDefaultLevel(t *testing.T) {
	m := NewGameMap()
	if m.Width != MapWidth || m.Height != MapHeight {
		t.Fatalf("default level is %dx%d, want %dx%d", m.Width, m.Height, MapWidth, MapHeight)
	}
	if len(m.Spawns) != 4 {
		t.Fatalf("spawns = %v", m.Spawns)
	}
	for _, s := range m.Spawns {
		if m.GetTile(s.X, s.Y) != TileEmpty {
			t.Errorf("spawn %v is not empty", s)
		}
	}
	for cell, tile := range m.AllTiles() {
		if tile == TileEmpty || tile == TileUnknown {
			t.Fatalf("AllTiles yielded %v at %v", tile, cell)
		}
	}
}
