package server

import (
	"context"
	"errors"
	"testing"
	"time"

	bombyv1 "bomby/api/gen/bomby/v1"
	"bomby/pkg/protocol"
)

func newTestManager(t *testing.T) *RoomManager {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	m := NewRoomManager(ctx, RoomConfig{Level: testLevel(t), Tokens: NewTokenIssuer("secret", time.Minute)})
	m.Run()
	t.Cleanup(func() {
		cancel()
		m.Shutdown()
	})
	return m
}

func TestRoomManagerJoinAndReconnect(t *testing.T) {
	m := newTestManager(t)

	a := newFakeSession()
	if err := m.Join(a, &JoinEvent{PlayerName: "a"}); err != nil {
		t.Fatal(err)
	}
	if a.RoomID() != DefaultRoomID {
		t.Fatalf("room = %q, want default", a.RoomID())
	}
	resp, err := protocol.ParseJoinResponse(a.last(bombyv1.MessageType_MESSAGE_TYPE_JOIN_RESPONSE))
	if err != nil {
		t.Fatal(err)
	}

	m.Disconnect(a)

	b := newFakeSession()
	id, err := m.Reconnect(b, resp.SessionToken)
	if err != nil {
		t.Fatal(err)
	}
	if id != resp.PlayerId || b.ID() != id || b.RoomID() != DefaultRoomID {
		t.Errorf("reconnected as %d in %q, want %d", b.ID(), b.RoomID(), resp.PlayerId)
	}

	if _, err := m.Reconnect(newFakeSession(), "bogus"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRoomManagerNamedRoom(t *testing.T) {
	m := newTestManager(t)

	s := newFakeSession()
	if err := m.Join(s, &JoinEvent{RoomID: "arena"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Room("arena"); !ok {
		t.Fatal("room not created on join")
	}
	if got := len(m.GetRoomStats()); got != 2 {
		t.Errorf("rooms = %d, want 2", got)
	}
}

func TestRoomManagerCleanup(t *testing.T) {
	m := newTestManager(t)

	id, err := m.CreateRoom()
	if err != nil {
		t.Fatal(err)
	}
	if removed := m.cleanupEmptyRooms(); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, ok := m.Room(id); ok {
		t.Error("empty room survived cleanup")
	}
	if _, ok := m.Room(DefaultRoomID); !ok {
		t.Error("default room removed")
	}
}
