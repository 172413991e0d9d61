package core

import "testing"

func blockedAt(cells ...GridCell) *BlockedCells {
	b := NewBlockedCells(0, 0)
	for _, c := range cells {
		b.Add(c)
	}
	return b
}

func TestResolveDisplacement(t *testing.T) {
	box := SquareBox(PlayerHalfExtent)
	center := ToWorld(GridCell{X: 5, Y: 5})

	tests := []struct {
		name    string
		pos     Vec2
		delta   Vec2
		blocked []GridCell
		want    Vec2
	}{
		{
			name:  "free movement",
			pos:   center,
			delta: Vec2{X: 3, Y: -2},
			want:  Vec2{X: 3, Y: -2},
		},
		{
			name:    "wall slide keeps the free axis",
			pos:     center,
			delta:   Vec2{X: 10, Y: 10},
			blocked: []GridCell{{X: 6, Y: 5}},
			want:    Vec2{X: 0, Y: 10},
		},
		{
			name:    "blocked both axes",
			pos:     center,
			delta:   Vec2{X: 10, Y: 10},
			blocked: []GridCell{{X: 6, Y: 5}, {X: 5, Y: 6}},
			want:    Vec2{X: 0, Y: 0},
		},
		{
			name:    "moving left into a wall",
			pos:     center,
			delta:   Vec2{X: -5, Y: 0},
			blocked: []GridCell{{X: 4, Y: 5}},
			want:    Vec2{X: 0, Y: 0},
		},
		{
			name:    "edge stays inside own cell",
			pos:     center,
			delta:   Vec2{X: 2, Y: 0},
			blocked: []GridCell{{X: 6, Y: 5}},
			want:    Vec2{X: 2, Y: 0},
		},
		{
			name:    "standing on a bomb does not trap the actor",
			pos:     center,
			delta:   Vec2{X: 0, Y: 10},
			blocked: []GridCell{{X: 5, Y: 5}},
			want:    Vec2{X: 0, Y: 10},
		},
		{
			name:    "only the leading edge is checked",
			pos:     center,
			delta:   Vec2{X: 10, Y: 0},
			blocked: []GridCell{{X: 4, Y: 5}},
			want:    Vec2{X: 10, Y: 0},
		},
		{
			name:    "corner straddling two rows",
			pos:     Vec2{X: 176, Y: 186},
			delta:   Vec2{X: 10, Y: 0},
			blocked: []GridCell{{X: 6, Y: 6}},
			want:    Vec2{X: 0, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDisplacement(tt.delta, tt.pos, box, blockedAt(tt.blocked...))
			if got != tt.want {
				t.Errorf("ResolveDisplacement = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlockedCellsBounds(t *testing.T) {
	b := NewBlockedCells(4, 3)
	if !b.Blocked(GridCell{X: -1, Y: 0}) || !b.Blocked(GridCell{X: 4, Y: 2}) {
		t.Error("out-of-bounds cells should be blocked")
	}
	if b.Blocked(GridCell{X: 3, Y: 2}) {
		t.Error("empty in-bounds cell reported blocked")
	}
	b.Add(GridCell{X: 1, Y: 1})
	if !b.Blocked(GridCell{X: 1, Y: 1}) || b.Len() != 1 {
		t.Errorf("added cell missing, len = %d", b.Len())
	}

	unbounded := NewBlockedCells(0, 0)
	if unbounded.Blocked(GridCell{X: -10, Y: 99}) {
		t.Error("unbounded snapshot should not block by position")
	}
}
