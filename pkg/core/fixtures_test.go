package core

import (
	"iter"
	"maps"
	"time"
)

// fakeTiles 最小的关卡提供者，记录被摧毁的格子
type fakeTiles struct {
	tiles     map[GridCell]TileType
	destroyed []GridCell
}

func newFakeTiles() *fakeTiles {
	return &fakeTiles{tiles: make(map[GridCell]TileType)}
}

func (f *fakeTiles) Classify(cell GridCell) (TileType, error) {
	tile, ok := f.tiles[cell]
	if !ok {
		return TileEmpty, nil
	}
	if tile == TileUnknown {
		return TileUnknown, ErrUnclassifiedTile
	}
	return tile, nil
}

func (f *fakeTiles) DestroyTile(cell GridCell) {
	f.destroyed = append(f.destroyed, cell)
	if f.tiles[cell] == TileBrick {
		delete(f.tiles, cell)
	}
}

func (f *fakeTiles) AllTiles() iter.Seq2[GridCell, TileType] {
	return maps.All(f.tiles)
}

// idle 没有任何输入
var idle = NewInputState()

// countCues 统计事件中的音效次数和震动总量
func countCues(events []FeedbackEvent) (map[Cue]int, []float32) {
	cues := make(map[Cue]int)
	var trauma []float32
	for _, e := range events {
		if e.IsTrauma() {
			trauma = append(trauma, e.Trauma)
			continue
		}
		cues[e.Cue]++
	}
	return cues, trauma
}

// runFor 以 step 为步长推进 total 时间，收集期间的反馈事件
func runFor(g *Game, total, step time.Duration, input InputProvider) []FeedbackEvent {
	var events []FeedbackEvent
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		g.Step(step, input)
		events = append(events, g.DrainEvents()...)
	}
	return events
}
