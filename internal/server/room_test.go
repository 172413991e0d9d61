package server

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	bombyv1 "bomby/api/gen/bomby/v1"
	"bomby/pkg/core"
	"bomby/pkg/protocol"
)

// fakeSession 记录发给它的数据包
type fakeSession struct {
	mu       sync.Mutex
	id       int32
	roomID   string
	packets  []*bombyv1.Packet
	closed   bool
	notified bool
	sendErr  error
}

func newFakeSession() *fakeSession { return &fakeSession{id: -1} }

func (s *fakeSession) ID() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *fakeSession) Send(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	pkt, err := protocol.UnmarshalPacket(data)
	if err != nil {
		return err
	}
	s.packets = append(s.packets, pkt)
	return nil
}

func (s *fakeSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed, s.notified = true, true
}

func (s *fakeSession) CloseWithoutNotify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *fakeSession) SetPlayerID(id int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
}

func (s *fakeSession) RoomID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomID
}

func (s *fakeSession) SetRoomID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomID = id
}

func (s *fakeSession) count(t bombyv1.MessageType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.packets {
		if p.Type == t {
			n++
		}
	}
	return n
}

func (s *fakeSession) last(t bombyv1.MessageType) *bombyv1.Packet {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.packets) - 1; i >= 0; i-- {
		if s.packets[i].Type == t {
			return s.packets[i]
		}
	}
	return nil
}

func testLevel(t *testing.T) *core.GameMap {
	t.Helper()
	m, err := core.ParseLevel([]string{
		"P.....",
		"......",
		"......",
		".....P",
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// newTestRoom 不启动房间循环，测试直接调用处理函数
func newTestRoom(t *testing.T, cfg RoomConfig) *Room {
	t.Helper()
	if cfg.Level == nil {
		cfg.Level = testLevel(t)
	}
	r := NewRoom(context.Background(), "test", cfg)
	t.Cleanup(r.Shutdown)
	return r
}

func mustJoin(t *testing.T, r *Room) *fakeSession {
	t.Helper()
	s := newFakeSession()
	if err := r.join(s, &JoinEvent{PlayerName: "tester", Character: bombyv1.CharacterType_CHARACTER_TYPE_UNSPECIFIED}); err != nil {
		t.Fatalf("join: %v", err)
	}
	return s
}

func TestRoomJoin(t *testing.T) {
	r := newTestRoom(t, RoomConfig{Tokens: NewTokenIssuer("secret", time.Minute)})
	s := mustJoin(t, r)

	if s.ID() != 1 || s.RoomID() != "test" {
		t.Fatalf("session bound to player %d room %q", s.ID(), s.RoomID())
	}
	if r.state != StateRunning {
		t.Errorf("state = %v, want running", r.state)
	}

	pkt := s.last(bombyv1.MessageType_MESSAGE_TYPE_JOIN_RESPONSE)
	if pkt == nil {
		t.Fatal("no join response")
	}
	resp, err := protocol.ParseJoinResponse(pkt)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.PlayerId != 1 || resp.Tps != ServerTPS || resp.Map == nil || resp.State == nil {
		t.Errorf("resp = %+v", resp)
	}
	id, room, err := r.cfg.Tokens.Verify(resp.SessionToken)
	if err != nil || id != 1 || room != "test" {
		t.Errorf("token = (%d, %q, %v)", id, room, err)
	}

	stats := r.Stats()
	if stats.Humans != 1 || stats.Alive != 1 || stats.State != "running" {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRoomJoinRejected(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		r := newTestRoom(t, RoomConfig{})
		mustJoin(t, r)
		mustJoin(t, r)
		// 地图只有两个出生点
		err := r.join(newFakeSession(), &JoinEvent{})
		if !errors.Is(err, ErrRoomFull) {
			t.Errorf("err = %v, want ErrRoomFull", err)
		}
	})

	t.Run("ending", func(t *testing.T) {
		r := newTestRoom(t, RoomConfig{})
		r.state = StateEnding
		if err := r.join(newFakeSession(), &JoinEvent{}); !errors.Is(err, ErrRoomEnding) {
			t.Errorf("err = %v, want ErrRoomEnding", err)
		}
	})

	t.Run("send failure rolls back", func(t *testing.T) {
		r := newTestRoom(t, RoomConfig{})
		s := newFakeSession()
		s.sendErr = ErrSendQueueFull
		if err := r.join(s, &JoinEvent{}); !errors.Is(err, ErrSendQueueFull) {
			t.Errorf("err = %v", err)
		}
		if len(r.game.Players) != 0 || len(r.sessions) != 0 {
			t.Errorf("players=%d sessions=%d after rollback", len(r.game.Players), len(r.sessions))
		}
	})
}

func TestRoomStartsWithBots(t *testing.T) {
	r := newTestRoom(t, RoomConfig{Bots: 3})
	mustJoin(t, r)

	// 只剩一个出生点
	if len(r.bots) != 1 || len(r.game.Players) != 2 {
		t.Fatalf("bots=%d players=%d", len(r.bots), len(r.game.Players))
	}
	r.tick()
	if r.Stats().Bots != 1 {
		t.Errorf("stats = %+v", r.Stats())
	}
}

func TestRoomBombPressWithinTick(t *testing.T) {
	r := newTestRoom(t, RoomConfig{})
	s := mustJoin(t, r)

	// 同一个 tick 内按下又松开，炸弹仍然要放下
	r.handleInput(&InputEvent{PlayerID: s.ID(), Inputs: []InputData{{Bomb: true}, {Bomb: false}}})
	r.tick()
	if len(r.game.Bombs) != 1 {
		t.Fatalf("bombs = %d, want 1", len(r.game.Bombs))
	}

	// 松开后的状态被保持，不会再放
	r.tick()
	r.tick()
	if len(r.game.Bombs) != 1 {
		t.Errorf("bombs = %d after idle ticks", len(r.game.Bombs))
	}
	if s.count(bombyv1.MessageType_MESSAGE_TYPE_SERVER_STATE) != 3 {
		t.Errorf("state broadcasts = %d, want 3", s.count(bombyv1.MessageType_MESSAGE_TYPE_SERVER_STATE))
	}
}

func TestRoomHeldMovement(t *testing.T) {
	r := newTestRoom(t, RoomConfig{})
	s := mustJoin(t, r)
	start := r.game.Player(int(s.ID())).Pos

	r.handleInput(&InputEvent{PlayerID: s.ID(), Inputs: []InputData{{Right: true}}})
	for range 10 {
		r.tick()
	}
	moved := r.game.Player(int(s.ID())).Pos.X - start.X
	want := core.PlayerSpeed * TickDuration.Seconds() * 10
	if moved < want-0.01 {
		t.Errorf("moved %.2f, want %.2f", moved, want)
	}
}

func TestRoomIgnoresUnknownInput(t *testing.T) {
	r := newTestRoom(t, RoomConfig{})
	mustJoin(t, r)
	r.handleInput(&InputEvent{PlayerID: 42, Inputs: []InputData{{Bomb: true}}})
	if len(r.pending) != 0 {
		t.Errorf("pending = %v", r.pending)
	}
}

func TestRoomGameOver(t *testing.T) {
	r := newTestRoom(t, RoomConfig{})
	s := mustJoin(t, r)

	r.handleInput(&InputEvent{PlayerID: s.ID(), Inputs: []InputData{{Bomb: true}}})
	frames := int(core.BombFuseDuration/TickDuration) + 5
	for range frames {
		r.tick()
		if r.state == StateEnding {
			break
		}
	}

	if r.state != StateEnding {
		t.Fatalf("state = %v, want ending", r.state)
	}
	pkt := s.last(bombyv1.MessageType_MESSAGE_TYPE_GAME_OVER)
	if pkt == nil {
		t.Fatal("no game over packet")
	}
	over, err := protocol.ParseGameOver(pkt)
	if err != nil {
		t.Fatal(err)
	}
	if over.WinnerId != -1 {
		t.Errorf("winner = %d, want -1", over.WinnerId)
	}

	// 结算结束后房间重置
	now := time.Now()
	r.now = func() time.Time { return now.Add(endingDelay + time.Second) }
	r.tick()
	if r.state != StateWaiting || len(r.game.Players) != 0 {
		t.Errorf("after reset state=%v players=%d", r.state, len(r.game.Players))
	}
	if !s.closed {
		t.Error("session not closed on reset")
	}
}

func TestRoomReconnect(t *testing.T) {
	now := time.Now()
	r := newTestRoom(t, RoomConfig{})
	r.now = func() time.Time { return now }
	a := mustJoin(t, r)
	mustJoin(t, r)
	id := a.ID()

	r.handleLeave(leaveRequest{playerID: id, session: a})
	if _, ok := r.disconnected[id]; !ok {
		t.Fatal("player not kept after disconnect")
	}
	if r.game.Player(int(id)) == nil {
		t.Fatal("player removed from game")
	}

	b := newFakeSession()
	if err := r.reconnect(b, id); err != nil {
		t.Fatal(err)
	}
	if b.ID() != id || r.sessions[id] != Session(b) {
		t.Fatalf("session not rebound")
	}
	resp, err := protocol.ParseReconnectResponse(b.last(bombyv1.MessageType_MESSAGE_TYPE_RECONNECT_RESPONSE))
	if err != nil || !resp.Success || resp.PlayerId != id {
		t.Errorf("resp = %+v, err = %v", resp, err)
	}

	// 旧连接的断开通知不能影响新连接
	r.handleLeave(leaveRequest{playerID: id, session: a})
	if r.sessions[id] != Session(b) {
		t.Error("stale leave removed the new session")
	}
}

func TestRoomReconnectExpires(t *testing.T) {
	now := time.Now()
	r := newTestRoom(t, RoomConfig{})
	r.now = func() time.Time { return now }
	a := mustJoin(t, r)
	id := a.ID()

	r.handleLeave(leaveRequest{playerID: id, session: a})
	now = now.Add(reconnectGrace + time.Second)
	r.tick()

	if r.game.Player(int(id)) != nil {
		t.Error("player kept after grace period")
	}
	if r.state != StateEnding {
		t.Errorf("state = %v, want ending once everybody left", r.state)
	}
	if err := r.reconnect(newFakeSession(), id); !errors.Is(err, ErrPlayerGone) {
		t.Errorf("err = %v, want ErrPlayerGone", err)
	}
}

func TestRoomOpponentLeavesEndsRound(t *testing.T) {
	now := time.Now()
	r := newTestRoom(t, RoomConfig{})
	r.now = func() time.Time { return now }
	a := mustJoin(t, r)
	b := mustJoin(t, r)

	r.handleLeave(leaveRequest{playerID: b.ID(), session: b})
	r.tick()
	if r.state != StateRunning {
		t.Fatalf("state = %v during reconnect grace, want running", r.state)
	}

	now = now.Add(reconnectGrace + time.Second)
	r.tick()

	if r.state != StateEnding {
		t.Fatalf("state = %v, want ending", r.state)
	}
	over, err := protocol.ParseGameOver(a.last(bombyv1.MessageType_MESSAGE_TYPE_GAME_OVER))
	if err != nil {
		t.Fatal(err)
	}
	if over.WinnerId != a.ID() {
		t.Errorf("winner = %d, want %d", over.WinnerId, a.ID())
	}
	if a.count(bombyv1.MessageType_MESSAGE_TYPE_PLAYER_LEAVE) != 1 {
		t.Errorf("leave broadcasts = %d, want 1", a.count(bombyv1.MessageType_MESSAGE_TYPE_PLAYER_LEAVE))
	}
}

func TestRoomLoop(t *testing.T) {
	r := NewRoom(context.Background(), "loop", RoomConfig{Level: testLevel(t)})
	t.Cleanup(r.Shutdown)
	var wg sync.WaitGroup
	wg.Add(1)
	go r.Run(&wg)
	s := newFakeSession()
	if err := r.Join(s, &JoinEvent{PlayerName: "loop"}); err != nil {
		t.Fatal(err)
	}
	r.EnqueueInput(&InputEvent{PlayerID: s.ID(), Inputs: []InputData{{Bomb: true}}})

	deadline := time.After(2 * time.Second)
	for {
		if snap, ok := r.Snapshot(); ok && len(snap.Bombs) == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("bomb never appeared in snapshot")
		case <-time.After(5 * time.Millisecond):
		}
	}

	r.Shutdown()
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("room loop did not exit")
	}
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if !closed {
		t.Error("session still open after Done")
	}
	wg.Wait()
}
