package protocol

import (
	"errors"
	"testing"
	"time"

	bombyv1 "bomby/api/gen/bomby/v1"
	"bomby/pkg/core"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func mustMarshal(t *testing.T, m proto.Message) []byte {
	t.Helper()
	data, err := Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestServerStateRoundTrip(t *testing.T) {
	in := &bombyv1.ServerState{
		FrameId: 120,
		Phase:   bombyv1.RoomPhase_ROOM_PHASE_RUNNING,
		Players: []*bombyv1.PlayerState{
			{Id: 1, X: 48.5, Y: -16, Direction: bombyv1.Direction_DIRECTION_LEFT, IsMoving: true, Character: bombyv1.CharacterType_CHARACTER_TYPE_RED, BombsOut: 2},
			{Id: 0}, // 全零值也必须保留
		},
		Bombs:       []*bombyv1.BombState{{Id: 7, OwnerId: 1, GridX: 3, GridY: 4, FuseLeftMs: 900, FuseTotalMs: 1500}},
		Explosions:  []*bombyv1.ExplosionState{{GridX: 5, GridY: 6, Alpha: 0.5}},
		TileUpdates: []*bombyv1.TileUpdate{{GridX: 5, GridY: 6, Tile: int32(core.TileEmpty)}},
		Events:      []*bombyv1.FeedbackEvent{{Cue: int32(core.CueBombExplosion)}, {Trauma: 0.3}},
		Eliminated:  []int32{3, -1},
	}

	pkt, err := UnmarshalPacket(mustMarshal(t, in))
	if err != nil {
		t.Fatal(err)
	}
	if pkt.Type != bombyv1.MessageType_MESSAGE_TYPE_SERVER_STATE {
		t.Fatalf("packet type = %v", pkt.Type)
	}
	out, err := ParseServerState(pkt)
	if err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(in, out) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", out, in)
	}
	if len(out.Players) != 2 {
		t.Errorf("empty player dropped: %d players", len(out.Players))
	}
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	ping, err := proto.Marshal(&bombyv1.Ping{ClientTime: 1234})
	if err != nil {
		t.Fatal(err)
	}
	var b []byte
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "added later")
	b = append(b, ping...)
	b = protowire.AppendTag(b, 100, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)

	out, err := ParsePing(&bombyv1.Packet{Type: bombyv1.MessageType_MESSAGE_TYPE_PING, Payload: b})
	if err != nil {
		t.Fatal(err)
	}
	if out.ClientTime != 1234 {
		t.Fatalf("ClientTime = %d", out.ClientTime)
	}
}

func TestWrongWireTypeIsSkipped(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "not a number")

	out, err := ParsePlayerLeave(&bombyv1.Packet{Type: bombyv1.MessageType_MESSAGE_TYPE_PLAYER_LEAVE, Payload: b})
	if err != nil {
		t.Fatal(err)
	}
	if out.PlayerId != 0 {
		t.Fatalf("PlayerId = %d", out.PlayerId)
	}
}

func TestMalformedData(t *testing.T) {
	data := mustMarshal(t, &bombyv1.JoinRequest{PlayerName: "alice", RoomId: "r1"})
	if _, err := UnmarshalPacket(data[:len(data)-3]); !errors.Is(err, ErrMalformed) {
		t.Errorf("truncated: err = %v, want %v", err, ErrMalformed)
	}

	// proto3 的字符串必须是合法的 UTF-8
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{0xff, 0xfe})
	pkt := &bombyv1.Packet{Type: bombyv1.MessageType_MESSAGE_TYPE_JOIN_REQUEST, Payload: b}
	if _, err := ParseJoinRequest(pkt); !errors.Is(err, ErrMalformed) {
		t.Errorf("invalid utf-8: err = %v, want %v", err, ErrMalformed)
	}
	if _, err := Marshal(&bombyv1.JoinRequest{PlayerName: "\xff"}); err == nil {
		t.Error("encoding an invalid utf-8 name succeeded")
	}
}

func TestParseWrongType(t *testing.T) {
	pkt, err := NewPingPacket(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseJoinRequest(pkt); !errors.Is(err, ErrUnexpectedType) {
		t.Fatalf("err = %v, want %v", err, ErrUnexpectedType)
	}
	if _, err := NewPacket(&bombyv1.InputData{}); !errors.Is(err, ErrUnexpectedType) {
		t.Fatalf("bare InputData err = %v, want %v", err, ErrUnexpectedType)
	}
}

func TestJoinResponseNested(t *testing.T) {
	in := &bombyv1.JoinResponse{
		Success:      true,
		PlayerId:     3,
		Tps:          60,
		SessionToken: "tok",
		RoomId:       "default",
		Map:          &bombyv1.MapState{Width: 2, Height: 1, Tiles: []byte{2, 1}},
		State:        &bombyv1.ServerState{FrameId: 9},
	}
	pkt, err := UnmarshalPacket(mustMarshal(t, in))
	if err != nil {
		t.Fatal(err)
	}
	out, err := ParseJoinResponse(pkt)
	if err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("out = %v", out)
	}
}

func TestMapConversion(t *testing.T) {
	m, err := core.ParseLevel([]string{"WB.", ".?W"})
	if err != nil {
		t.Fatal(err)
	}
	back, err := ProtoMapToCore(CoreMapToProto(m))
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != m.String() {
		t.Fatalf("map = %q, want %q", back.String(), m.String())
	}

	if _, err := ProtoMapToCore(&bombyv1.MapState{Width: 3, Height: 3, Tiles: []byte{0}}); !errors.Is(err, ErrMalformed) {
		t.Fatalf("short map err = %v", err)
	}

	ApplyTileUpdates(back, []*bombyv1.TileUpdate{{GridX: 1, GridY: 0, Tile: int32(core.TileEmpty)}, {GridX: 0, GridY: 1, Tile: 42}})
	if back.GetTile(1, 0) != core.TileEmpty || back.GetTile(0, 1) != core.TileUnknown {
		t.Fatalf("after updates: %q", back.String())
	}
}

func TestSnapshotConversion(t *testing.T) {
	g := core.NewGame(core.NewEmptyMap(8, 8))
	g.AddPlayer(core.NewPlayer(1, core.GridCell{X: 1, Y: 1}, core.CharacterBlue))
	if _, err := g.PlaceBomb(1, core.ToWorld(core.GridCell{X: 2, Y: 2})); err != nil {
		t.Fatal(err)
	}
	g.Step(500*time.Millisecond, core.NewInputState())

	snap := ProtoStateToSnapshot(SnapshotToProto(g.Snapshot(), bombyv1.RoomPhase_ROOM_PHASE_RUNNING), g.Map)
	if len(snap.Players) != 1 || snap.Players[0].Character != core.CharacterBlue || snap.Players[0].BombsOut != 1 {
		t.Fatalf("players = %+v", snap.Players)
	}
	b := snap.Bombs[0]
	if b.Cell != (core.GridCell{X: 2, Y: 2}) || b.FuseLeft != time.Second || b.FuseTime != core.BombFuseDuration {
		t.Fatalf("bomb = %+v", b)
	}
	if b.Fraction < 0.33 || b.Fraction > 0.34 {
		t.Fatalf("fraction = %v", b.Fraction)
	}
}

func TestCharacterConversion(t *testing.T) {
	for _, c := range core.Characters {
		if got := ProtoCharacterTypeToCore(CoreCharacterTypeToProto(c)); got != c {
			t.Errorf("character %v -> %v", c, got)
		}
	}
	if ProtoCharacterTypeToCore(bombyv1.CharacterType_CHARACTER_TYPE_UNSPECIFIED) != core.CharacterWhite || ProtoCharacterTypeToCore(17) != core.CharacterWhite {
		t.Error("unknown characters should fall back to white")
	}
}
