package server

import (
	"testing"

	bombyv1 "bomby/api/gen/bomby/v1"
	"bomby/pkg/protocol"
)

// mustEncode 编码测试用的消息包，构造失败说明测试本身写错了
func mustEncode(pkt *bombyv1.Packet, err error) []byte {
	if err != nil {
		panic(err)
	}
	data, err := protocol.MarshalPacket(pkt)
	if err != nil {
		panic(err)
	}
	return data
}

func TestDecodePacket(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		kind  EventKind
		check func(t *testing.T, ev *ServerEvent)
	}{
		{
			name: "join",
			data: mustEncode(protocol.NewJoinRequestPacket("alice", bombyv1.CharacterType_CHARACTER_TYPE_BLACK, "r1")),
			kind: EventJoin,
			check: func(t *testing.T, ev *ServerEvent) {
				if ev.Join.PlayerName != "alice" || ev.Join.Character != bombyv1.CharacterType_CHARACTER_TYPE_BLACK || ev.Join.RoomID != "r1" {
					t.Errorf("join = %+v", ev.Join)
				}
			},
		},
		{
			name: "input",
			data: mustEncode(protocol.NewClientInputPacket(9, 120, true, false, false, true, true)),
			kind: EventInput,
			check: func(t *testing.T, ev *ServerEvent) {
				if ev.Input.Seq != 9 || len(ev.Input.Inputs) != 1 {
					t.Fatalf("input = %+v", ev.Input)
				}
				in := ev.Input.Inputs[0]
				if in.FrameID != 120 || !in.Up || in.Down || in.Left || !in.Right || !in.Bomb {
					t.Errorf("input data = %+v", in)
				}
			},
		},
		{
			name: "ping",
			data: mustEncode(protocol.NewPingPacket(12345)),
			kind: EventPing,
			check: func(t *testing.T, ev *ServerEvent) {
				if ev.Ping.ClientTime != 12345 {
					t.Errorf("ping = %+v", ev.Ping)
				}
			},
		},
		{
			name: "pong",
			data: mustEncode(protocol.NewPongPacket(1, 2, 3)),
			kind: EventPong,
			check: func(t *testing.T, ev *ServerEvent) {
				if ev.Pong.ClientTime != 1 || ev.Pong.ServerTime != 2 || ev.Pong.ServerFrame != 3 {
					t.Errorf("pong = %+v", ev.Pong)
				}
			},
		},
		{
			name: "reconnect",
			data: mustEncode(protocol.NewReconnectRequestPacket("tok")),
			kind: EventReconnect,
			check: func(t *testing.T, ev *ServerEvent) {
				if ev.Reconnect.SessionToken != "tok" {
					t.Errorf("reconnect = %+v", ev.Reconnect)
				}
			},
		},
		{
			name: "server-only message",
			data: mustEncode(protocol.NewGameOverPacket(1, 2)),
			kind: EventUnknown,
			check: func(t *testing.T, ev *ServerEvent) {
				if ev.Type != bombyv1.MessageType_MESSAGE_TYPE_GAME_OVER {
					t.Errorf("type = %v", ev.Type)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := DecodePacket(tt.data)
			if err != nil {
				t.Fatal(err)
			}
			if ev.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", ev.Kind, tt.kind)
			}
			tt.check(t, ev)
		})
	}
}

func TestDecodePacketTruncated(t *testing.T) {
	data := mustEncode(protocol.NewJoinRequestPacket("alice", 0, ""))
	if _, err := DecodePacket(data[:len(data)-2]); err == nil {
		t.Error("expected error for truncated packet")
	}
}
