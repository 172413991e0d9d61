package protocol

import (
	"fmt"
	"time"

	bombyv1 "bomby/api/gen/bomby/v1"
	"bomby/pkg/core"
)

// ========== Direction 转换 ==========

// Proto 方向索引：UP=1, DOWN=2, LEFT=3, RIGHT=4
// Core 方向索引：DirDown=0, DirUp=1, DirLeft=2, DirRight=3

// CoreDirectionToProto 将 core.Direction 转换为线上格式
func CoreDirectionToProto(dir core.Direction) bombyv1.Direction {
	switch dir {
	case core.DirUp:
		return bombyv1.Direction_DIRECTION_UP
	case core.DirDown:
		return bombyv1.Direction_DIRECTION_DOWN
	case core.DirLeft:
		return bombyv1.Direction_DIRECTION_LEFT
	case core.DirRight:
		return bombyv1.Direction_DIRECTION_RIGHT
	default:
		return bombyv1.Direction_DIRECTION_UNSPECIFIED
	}
}

// ProtoDirectionToCore 将线上的朝向转换为 core.Direction
func ProtoDirectionToCore(dir bombyv1.Direction) core.Direction {
	switch dir {
	case bombyv1.Direction_DIRECTION_UP:
		return core.DirUp
	case bombyv1.Direction_DIRECTION_LEFT:
		return core.DirLeft
	case bombyv1.Direction_DIRECTION_RIGHT:
		return core.DirRight
	default:
		return core.DirDown // 默认向下
	}
}

// ========== CharacterType 转换 ==========

// Proto: WHITE=1, BLACK=2, RED=3, BLUE=4
// Core: White=0, Black=1, Red=2, Blue=3

// CoreCharacterTypeToProto 将 core.CharacterType 转换为线上格式
func CoreCharacterTypeToProto(char core.CharacterType) bombyv1.CharacterType {
	return bombyv1.CharacterType(char + 1)
}

// ProtoCharacterTypeToCore 将线上的角色转换为 core.CharacterType，未设置或越界时为白色
func ProtoCharacterTypeToCore(char bombyv1.CharacterType) core.CharacterType {
	if char <= bombyv1.CharacterType_CHARACTER_TYPE_UNSPECIFIED || char > bombyv1.CharacterType_CHARACTER_TYPE_BLUE {
		return core.CharacterWhite
	}
	return core.CharacterType(char - 1)
}

// ========== 地图 ==========

// CoreMapToProto 将地图编码为每格一个字节
func CoreMapToProto(m *core.GameMap) *bombyv1.MapState {
	if m == nil {
		return nil
	}
	tiles := make([]byte, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tiles = append(tiles, byte(m.GetTile(x, y)))
		}
	}
	return &bombyv1.MapState{Width: int32(m.Width), Height: int32(m.Height), Tiles: tiles}
}

// ProtoMapToCore 还原地图。无法识别的格子值会变成无法分类的地图块
func ProtoMapToCore(ms *bombyv1.MapState) (*core.GameMap, error) {
	if ms == nil {
		return nil, fmt.Errorf("%w: 缺少地图", ErrMalformed)
	}
	w, h := int(ms.Width), int(ms.Height)
	if w <= 0 || h <= 0 || len(ms.Tiles) != w*h {
		return nil, fmt.Errorf("%w: 地图尺寸 %dx%d 与数据长度 %d 不符", ErrMalformed, w, h, len(ms.Tiles))
	}

	m := core.NewEmptyMap(w, h)
	for i, b := range ms.Tiles {
		m.SetTile(i%w, i/w, tileFromWire(int32(b)))
	}
	return m, nil
}

func tileFromWire(v int32) core.TileType {
	t := core.TileType(v)
	if t < core.TileEmpty || t > core.TileUnknown {
		return core.TileUnknown
	}
	return t
}

// TileChangesToProto 转换本帧的地图变化
func TileChangesToProto(changes []core.TileChange) []*bombyv1.TileUpdate {
	result := make([]*bombyv1.TileUpdate, 0, len(changes))
	for _, c := range changes {
		result = append(result, &bombyv1.TileUpdate{GridX: int32(c.Cell.X), GridY: int32(c.Cell.Y), Tile: int32(c.NewType)})
	}
	return result
}

// ApplyTileUpdates 把服务器发来的地图变化应用到本地地图
func ApplyTileUpdates(m *core.GameMap, updates []*bombyv1.TileUpdate) {
	for _, u := range updates {
		m.SetTile(int(u.GridX), int(u.GridY), tileFromWire(u.Tile))
	}
}

// ========== 反馈事件 ==========

// FeedbackToProto 转换反馈事件
func FeedbackToProto(events []core.FeedbackEvent) []*bombyv1.FeedbackEvent {
	result := make([]*bombyv1.FeedbackEvent, 0, len(events))
	for _, e := range events {
		result = append(result, &bombyv1.FeedbackEvent{Cue: int32(e.Cue), Trauma: e.Trauma})
	}
	return result
}

// ProtoFeedbackToCore 转换反馈事件，可以直接交给 core.Replay
func ProtoFeedbackToCore(events []*bombyv1.FeedbackEvent) []core.FeedbackEvent {
	result := make([]core.FeedbackEvent, 0, len(events))
	for _, e := range events {
		result = append(result, core.FeedbackEvent{Cue: core.Cue(e.Cue), Trauma: e.Trauma})
	}
	return result
}

// ========== 快照 ==========

// SnapshotToProto 把一帧快照转换为广播状态。地图本身不随状态发送
func SnapshotToProto(s core.Snapshot, phase bombyv1.RoomPhase) *bombyv1.ServerState {
	state := &bombyv1.ServerState{
		FrameId:    s.Frame,
		Phase:      phase,
		Players:    make([]*bombyv1.PlayerState, 0, len(s.Players)),
		Bombs:      make([]*bombyv1.BombState, 0, len(s.Bombs)),
		Explosions: make([]*bombyv1.ExplosionState, 0, len(s.Explosions)),
		Eliminated: make([]int32, 0, len(s.Eliminated)),
	}
	for _, p := range s.Players {
		state.Players = append(state.Players, &bombyv1.PlayerState{
			Id:        int32(p.ID),
			X:         p.Pos.X,
			Y:         p.Pos.Y,
			Direction: CoreDirectionToProto(p.Direction),
			IsMoving:  p.IsMoving,
			Character: CoreCharacterTypeToProto(p.Character),
			BombsOut:  int32(p.BombsOut),
		})
	}
	for _, b := range s.Bombs {
		state.Bombs = append(state.Bombs, &bombyv1.BombState{
			Id:          int32(b.ID),
			OwnerId:     int32(b.Owner),
			GridX:       int32(b.Cell.X),
			GridY:       int32(b.Cell.Y),
			FuseLeftMs:  int32(b.FuseLeft.Milliseconds()),
			FuseTotalMs: int32(b.FuseTime.Milliseconds()),
		})
	}
	for _, e := range s.Explosions {
		state.Explosions = append(state.Explosions, &bombyv1.ExplosionState{
			GridX: int32(e.Cell.X),
			GridY: int32(e.Cell.Y),
			Alpha: float32(e.Alpha),
		})
	}
	for _, id := range s.Eliminated {
		state.Eliminated = append(state.Eliminated, int32(id))
	}
	return state
}

// ProtoStateToSnapshot 把服务器状态还原为快照，m 是客户端维护的地图
func ProtoStateToSnapshot(state *bombyv1.ServerState, m *core.GameMap) core.Snapshot {
	s := core.Snapshot{
		Frame:      state.FrameId,
		Map:        m,
		Players:    make([]core.PlayerSnapshot, 0, len(state.Players)),
		Bombs:      make([]core.BombSnapshot, 0, len(state.Bombs)),
		Explosions: make([]core.ExplosionSnapshot, 0, len(state.Explosions)),
		Eliminated: make([]int, 0, len(state.Eliminated)),
	}
	for _, p := range state.Players {
		s.Players = append(s.Players, core.PlayerSnapshot{
			ID:        int(p.Id),
			Pos:       core.Vec2{X: p.X, Y: p.Y},
			Direction: ProtoDirectionToCore(p.Direction),
			IsMoving:  p.IsMoving,
			Character: ProtoCharacterTypeToCore(p.Character),
			BombsOut:  int(p.BombsOut),
		})
	}
	for _, b := range state.Bombs {
		left := time.Duration(b.FuseLeftMs) * time.Millisecond
		total := time.Duration(b.FuseTotalMs) * time.Millisecond
		fraction := 0.0
		if total > 0 {
			fraction = 1 - float64(left)/float64(total)
		}
		s.Bombs = append(s.Bombs, core.BombSnapshot{
			ID:       int(b.Id),
			Owner:    int(b.OwnerId),
			Cell:     core.GridCell{X: int(b.GridX), Y: int(b.GridY)},
			FuseLeft: left,
			FuseTime: total,
			Fraction: fraction,
		})
	}
	for _, e := range state.Explosions {
		s.Explosions = append(s.Explosions, core.ExplosionSnapshot{
			Cell:  core.GridCell{X: int(e.GridX), Y: int(e.GridY)},
			Alpha: float64(e.Alpha),
		})
	}
	for _, id := range state.Eliminated {
		s.Eliminated = append(s.Eliminated, int(id))
	}
	return s
}
