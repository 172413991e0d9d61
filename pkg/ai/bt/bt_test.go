package bt

import "testing"

type trace struct {
	visited []string
}

func leaf(name string, st Status) Node[*trace] {
	return &Action[*trace]{Do: func(t *trace) Status {
		t.visited = append(t.visited, name)
		return st
	}}
}

func TestComposites(t *testing.T) {
	tests := []struct {
		name    string
		node    Node[*trace]
		want    Status
		visited []string
	}{
		{
			name:    "selector stops at first success",
			node:    &Selector[*trace]{Children: []Node[*trace]{leaf("a", StatusFailure), leaf("b", StatusSuccess), leaf("c", StatusSuccess)}},
			want:    StatusSuccess,
			visited: []string{"a", "b"},
		},
		{
			name:    "selector stops at running",
			node:    &Selector[*trace]{Children: []Node[*trace]{leaf("a", StatusRunning), leaf("b", StatusSuccess)}},
			want:    StatusRunning,
			visited: []string{"a"},
		},
		{
			name:    "selector all fail",
			node:    &Selector[*trace]{Children: []Node[*trace]{leaf("a", StatusFailure), leaf("b", StatusFailure)}},
			want:    StatusFailure,
			visited: []string{"a", "b"},
		},
		{
			name:    "sequence stops at failure",
			node:    &Sequence[*trace]{Children: []Node[*trace]{leaf("a", StatusSuccess), leaf("b", StatusFailure), leaf("c", StatusSuccess)}},
			want:    StatusFailure,
			visited: []string{"a", "b"},
		},
		{
			name:    "sequence all succeed",
			node:    &Sequence[*trace]{Children: []Node[*trace]{leaf("a", StatusSuccess), leaf("b", StatusSuccess)}},
			want:    StatusSuccess,
			visited: []string{"a", "b"},
		},
		{
			name:    "inverter",
			node:    &Inverter[*trace]{Child: leaf("a", StatusSuccess)},
			want:    StatusFailure,
			visited: []string{"a"},
		},
		{
			name:    "nil condition fails",
			node:    &Condition[*trace]{},
			want:    StatusFailure,
			visited: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &trace{}
			if got := tt.node.Tick(tr); got != tt.want {
				t.Fatalf("Tick() = %v, want %v", got, tt.want)
			}
			if len(tr.visited) != len(tt.visited) {
				t.Fatalf("visited %v, want %v", tr.visited, tt.visited)
			}
			for i := range tt.visited {
				if tr.visited[i] != tt.visited[i] {
					t.Fatalf("visited %v, want %v", tr.visited, tt.visited)
				}
			}
		})
	}
}
