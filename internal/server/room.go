package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	bombyv1 "bomby/api/gen/bomby/v1"
	"bomby/pkg/ai"
	"bomby/pkg/core"
	"bomby/pkg/protocol"
)

const (
	MaxPlayers   = 4        // 最大玩家数（含电脑玩家）
	ServerTPS    = core.TPS // 服务器每秒更新次数
	TickDuration = core.FrameDuration

	endingDelay    = 3 * time.Second  // 结算画面停留时间
	reconnectGrace = 10 * time.Second // 掉线玩家保留的时间
)

var (
	ErrRoomClosed = errors.New("房间已关闭")
	ErrRoomFull   = errors.New("房间已满")
	ErrRoomEnding = errors.New("房间结算中，暂时无法加入")
	ErrPlayerGone = errors.New("玩家不在房间中")
)

// GameState 服务端房间状态
type GameState int

const (
	StateWaiting GameState = iota
	StateRunning
	StateEnding
)

func (s GameState) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateRunning:
		return "running"
	case StateEnding:
		return "ending"
	}
	return "unknown"
}

func (s GameState) phase() bombyv1.RoomPhase {
	switch s {
	case StateRunning:
		return bombyv1.RoomPhase_ROOM_PHASE_RUNNING
	case StateEnding:
		return bombyv1.RoomPhase_ROOM_PHASE_ENDING
	}
	return bombyv1.RoomPhase_ROOM_PHASE_WAITING
}

// RoomConfig 房间参数
type RoomConfig struct {
	Bots      int
	BotConfig *ai.Config
	Level     *core.GameMap // 关卡模板，每局复制一份；nil 时使用默认关卡
	Tokens    *TokenIssuer
	Metrics   *Metrics
}

// RoomStats 房间统计信息，由房间循环发布，其他 goroutine 只读
type RoomStats struct {
	ID           string `json:"id"`
	State        string `json:"state"`
	Frame        int32  `json:"frame"`
	Humans       int    `json:"humans"`
	Bots         int    `json:"bots"`
	Alive        int    `json:"alive"`
	Bombs        int    `json:"bombs"`
	Disconnected int    `json:"disconnected"`
}

// Room 一局游戏。game 只在 Run 所在的 goroutine 中访问，其他 goroutine 通过通道和快照交互
type Room struct {
	ID     string
	ctx    context.Context
	cancel context.CancelFunc
	cfg    RoomConfig

	game    *core.Game
	input   *core.InputState
	pending map[int32]pendingInput
	held    map[int32]core.Input
	state   GameState
	resetAt time.Time

	sessions     map[int32]Session
	disconnected map[int32]time.Time
	bots         []*ai.Controller
	nextPlayerID int32

	joinCh      chan joinRequest
	inputCh     chan *InputEvent
	leaveCh     chan leaveRequest
	reconnectCh chan reconnectRequest
	exited      chan struct{}

	snapshot atomic.Pointer[core.Snapshot]
	stats    atomic.Pointer[RoomStats]
	now      func() time.Time
}

// pendingInput 一个 tick 内收到的输入：移动取最后一条，炸弹键取或
type pendingInput struct {
	latest core.Input
	bomb   bool
}

type joinRequest struct {
	session Session
	req     *JoinEvent
	respCh  chan error
}

type leaveRequest struct {
	playerID int32
	session  Session // 只有当前绑定的连接才能让玩家掉线
}

type reconnectRequest struct {
	session  Session
	playerID int32
	respCh   chan error
}

func NewRoom(parent context.Context, id string, cfg RoomConfig) *Room {
	ctx, cancel := context.WithCancel(parent)

	r := &Room{
		ID:          id,
		ctx:         ctx,
		cancel:      cancel,
		cfg:         cfg,
		joinCh:      make(chan joinRequest),
		inputCh:     make(chan *InputEvent, 256),
		leaveCh:     make(chan leaveRequest, 16),
		reconnectCh: make(chan reconnectRequest),
		exited:      make(chan struct{}),
		now:         time.Now,
	}
	r.resetGame()
	return r
}

func (r *Room) Run(wg *sync.WaitGroup) {
	defer wg.Done()
	defer close(r.exited)

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	log.Printf("房间 %s 循环启动: %d TPS", r.ID, ServerTPS)

	for {
		select {
		case <-r.ctx.Done():
			r.closeAllSessions()
			log.Printf("房间 %s 循环停止", r.ID)
			return

		case req := <-r.joinCh:
			r.handleJoin(req)

		case req := <-r.reconnectCh:
			r.handleReconnect(req)

		case ev := <-r.inputCh:
			r.handleInput(ev)

		case req := <-r.leaveCh:
			r.handleLeave(req)

		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *Room) Shutdown() {
	r.cancel()
}

// Done 房间循环退出并断开所有连接后关闭
func (r *Room) Done() <-chan struct{} {
	return r.exited
}

func (r *Room) Join(session Session, req *JoinEvent) error {
	respCh := make(chan error, 1)

	select {
	case <-r.ctx.Done():
		return ErrRoomClosed
	case r.joinCh <- joinRequest{session: session, req: req, respCh: respCh}:
	}

	select {
	case <-r.ctx.Done():
		return ErrRoomClosed
	case err := <-respCh:
		return err
	}
}

// Reconnect 把新连接绑定到房间中已有的玩家
func (r *Room) Reconnect(session Session, playerID int32) error {
	respCh := make(chan error, 1)

	select {
	case <-r.ctx.Done():
		return ErrRoomClosed
	case r.reconnectCh <- reconnectRequest{session: session, playerID: playerID, respCh: respCh}:
	}

	select {
	case <-r.ctx.Done():
		return ErrRoomClosed
	case err := <-respCh:
		return err
	}
}

func (r *Room) EnqueueInput(input *InputEvent) {
	select {
	case <-r.ctx.Done():
	case r.inputCh <- input:
	}
}

// Disconnect 连接断开，玩家保留 reconnectGrace 后才离开
func (r *Room) Disconnect(playerID int32, session Session) {
	select {
	case <-r.ctx.Done():
	case r.leaveCh <- leaveRequest{playerID: playerID, session: session}:
	}
}

// Snapshot 最近一帧的状态副本
func (r *Room) Snapshot() (core.Snapshot, bool) {
	s := r.snapshot.Load()
	if s == nil {
		return core.Snapshot{}, false
	}
	return *s, true
}

// Stats 最近发布的统计信息
func (r *Room) Stats() RoomStats {
	if s := r.stats.Load(); s != nil {
		return *s
	}
	return RoomStats{ID: r.ID, State: StateWaiting.String()}
}

func (r *Room) tick() {
	now := r.now()

	if r.state == StateEnding && !r.resetAt.IsZero() && now.After(r.resetAt) {
		r.resetRoom()
		return
	}

	r.expireDisconnected(now)
	if r.state != StateRunning {
		return
	}

	r.applyInputs()

	start := time.Now()
	r.game.Step(TickDuration, r.input)
	r.input.Advance()

	events := r.game.DrainEvents()
	changes := r.game.DrainTileChanges()
	r.cfg.Metrics.RecordTick(time.Since(start), events)
	r.recordDeaths(events)

	over, winnerID := r.game.IsGameOver()
	if over {
		r.state = StateEnding
		r.resetAt = now.Add(endingDelay)
	}

	snap := r.publish()
	state := protocol.SnapshotToProto(snap, r.state.phase())
	state.TileUpdates = protocol.TileChangesToProto(changes)
	state.Events = protocol.FeedbackToProto(events)
	r.broadcast(protocol.Marshal(state))

	if over {
		r.handleGameOver(winnerID)
	}
}

// applyInputs 把本 tick 收到的输入和电脑玩家的决策写入输入状态
func (r *Room) applyInputs() {
	// 没有新输入的玩家保持上一条按键状态
	for id, in := range r.held {
		if _, fresh := r.pending[id]; !fresh {
			r.input.Set(int(id), in)
		}
	}
	for id, p := range r.pending {
		in := p.latest
		in.Bomb = p.bomb
		r.input.Set(int(id), in)
		r.held[id] = p.latest
	}
	clear(r.pending)

	for _, bot := range r.bots {
		r.input.Set(bot.PlayerID, bot.Decide(r.game))
	}
}

func (r *Room) handleInput(ev *InputEvent) {
	if r.state != StateRunning || ev == nil || len(ev.Inputs) == 0 {
		return
	}
	if _, ok := r.sessions[ev.PlayerID]; !ok {
		return
	}

	p := r.pending[ev.PlayerID]
	for _, in := range ev.Inputs {
		p.latest = core.Input{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right, Bomb: in.Bomb}
		p.bomb = p.bomb || in.Bomb
	}
	r.pending[ev.PlayerID] = p
}

func (r *Room) handleJoin(req joinRequest) {
	err := r.join(req.session, req.req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoomFull):
			r.cfg.Metrics.RecordRejected("full")
		case errors.Is(err, ErrRoomEnding):
			r.cfg.Metrics.RecordRejected("ending")
		}
	}
	req.respCh <- err
}

func (r *Room) join(session Session, req *JoinEvent) error {
	if r.state == StateEnding {
		return ErrRoomEnding
	}
	if len(r.game.Players) >= MaxPlayers {
		return fmt.Errorf("%w (%d/%d)", ErrRoomFull, len(r.game.Players), MaxPlayers)
	}

	character := protocol.ProtoCharacterTypeToCore(req.Character)
	playerID := r.nextPlayerID
	if _, err := r.game.SpawnPlayer(int(playerID), character); err != nil {
		return fmt.Errorf("%w: %w", ErrRoomFull, err)
	}
	r.nextPlayerID++

	if r.state == StateWaiting {
		r.start()
	}

	rollback := func() {
		r.game.CancelSpawn(int(playerID))
		r.input.Remove(int(playerID))
	}

	token := ""
	if r.cfg.Tokens != nil {
		t, err := r.cfg.Tokens.Issue(playerID, r.ID)
		if err != nil {
			rollback()
			return fmt.Errorf("生成会话 Token 失败: %w", err)
		}
		token = t
	}

	resp := &bombyv1.JoinResponse{
		Success:      true,
		PlayerId:     playerID,
		Tps:          ServerTPS,
		SessionToken: token,
		RoomId:       r.ID,
		Map:          protocol.CoreMapToProto(r.game.Map),
		State:        protocol.SnapshotToProto(r.game.Snapshot(), r.state.phase()),
	}
	data, err := protocol.Marshal(resp)
	if err != nil {
		rollback()
		return fmt.Errorf("编码加入响应失败: %w", err)
	}
	if err := session.Send(data); err != nil {
		rollback()
		return fmt.Errorf("发送加入响应失败: %w", err)
	}

	session.SetPlayerID(playerID)
	session.SetRoomID(r.ID)
	r.sessions[playerID] = session
	r.cfg.Metrics.AddPlayers(1)

	log.Printf("玩家 %d 加入房间 %s，角色: %s，名字: %q", playerID, r.ID, character, req.PlayerName)
	r.publish()
	return nil
}

// start 第一个玩家加入时开局，并补上电脑玩家
func (r *Room) start() {
	r.state = StateRunning
	for range r.cfg.Bots {
		if len(r.game.Players) >= MaxPlayers {
			break
		}
		id := r.nextPlayerID
		character := core.Characters[int(id)%len(core.Characters)]
		if _, err := r.game.SpawnPlayer(int(id), character); err != nil {
			log.Printf("警告: 房间 %s 无法放置电脑玩家: %v", r.ID, err)
			break
		}
		r.nextPlayerID++
		r.bots = append(r.bots, ai.NewController(int(id), r.cfg.BotConfig))
		r.cfg.Metrics.AddPlayers(1)
	}
	log.Printf("房间 %s 开局，电脑玩家: %d", r.ID, len(r.bots))
}

func (r *Room) handleReconnect(req reconnectRequest) {
	err := r.reconnect(req.session, req.playerID)
	if err != nil {
		r.cfg.Metrics.RecordRejected("token")
	}
	req.respCh <- err
}

func (r *Room) reconnect(session Session, playerID int32) error {
	_, online := r.sessions[playerID]
	_, waiting := r.disconnected[playerID]
	if !online && !waiting {
		return fmt.Errorf("%w: %d", ErrPlayerGone, playerID)
	}

	resp := &bombyv1.ReconnectResponse{
		Success:  true,
		PlayerId: playerID,
		Map:      protocol.CoreMapToProto(r.game.Map),
		State:    protocol.SnapshotToProto(r.game.Snapshot(), r.state.phase()),
	}
	data, err := protocol.Marshal(resp)
	if err != nil {
		return fmt.Errorf("编码重连响应失败: %w", err)
	}
	if err := session.Send(data); err != nil {
		return fmt.Errorf("发送重连响应失败: %w", err)
	}

	// 旧连接可能还没发现自己已断开
	if old, ok := r.sessions[playerID]; ok && old != session {
		old.CloseWithoutNotify()
	}
	delete(r.disconnected, playerID)
	session.SetPlayerID(playerID)
	session.SetRoomID(r.ID)
	r.sessions[playerID] = session

	log.Printf("玩家 %d 重连房间 %s", playerID, r.ID)
	r.publish()
	return nil
}

func (r *Room) handleLeave(req leaveRequest) {
	current, ok := r.sessions[req.playerID]
	if !ok || (req.session != nil && current != req.session) {
		return
	}

	delete(r.sessions, req.playerID)
	delete(r.pending, req.playerID)
	delete(r.held, req.playerID)
	r.input.Set(int(req.playerID), core.Input{})

	if r.state == StateRunning && r.game.Player(int(req.playerID)) != nil {
		r.disconnected[req.playerID] = r.now()
		log.Printf("玩家 %d 掉线，保留 %v 等待重连", req.playerID, reconnectGrace)
	} else {
		r.removePlayer(req.playerID)
	}
	r.publish()
}

// expireDisconnected 移除超过保留时间仍未重连的玩家
func (r *Room) expireDisconnected(now time.Time) {
	for id, since := range r.disconnected {
		if now.Sub(since) < reconnectGrace {
			continue
		}
		delete(r.disconnected, id)
		r.removePlayer(id)
	}
}

func (r *Room) removePlayer(playerID int32) {
	if r.game.RemovePlayer(int(playerID)) {
		r.cfg.Metrics.AddPlayers(-1)
	}
	r.input.Remove(int(playerID))

	log.Printf("玩家 %d 离开房间 %s，当前连接数: %d", playerID, r.ID, len(r.sessions))
	r.broadcast(encodePacket(protocol.NewPlayerLeavePacket(playerID)))

	if len(r.sessions) == 0 && len(r.disconnected) == 0 && r.state == StateRunning {
		r.state = StateEnding
		r.resetAt = r.now().Add(endingDelay)
		r.handleGameOver(-1)
	}
}

func (r *Room) recordDeaths(events []core.FeedbackEvent) {
	for _, e := range events {
		if e.Cue == core.CuePlayerDeath {
			r.cfg.Metrics.AddPlayers(-1)
		}
	}
}

func (r *Room) handleGameOver(winnerID int) {
	log.Printf("房间 %s 游戏结束，获胜者: %d", r.ID, winnerID)
	r.cfg.Metrics.RecordGameOver(winnerID)
	r.broadcast(encodePacket(protocol.NewGameOverPacket(r.game.CurrentFrame, int32(winnerID))))
	r.publish()
}

// resetRoom 结算结束后断开所有连接，房间回到等待状态
func (r *Room) resetRoom() {
	r.closeAllSessions()
	r.cfg.Metrics.AddPlayers(-len(r.game.Players))
	r.resetGame()
	log.Printf("房间 %s 已重置", r.ID)
}

func (r *Room) resetGame() {
	var m *core.GameMap
	if r.cfg.Level != nil {
		m = r.cfg.Level.Clone()
	}
	r.game = core.NewGame(m)
	r.input = core.NewInputState()
	r.pending = make(map[int32]pendingInput)
	r.held = make(map[int32]core.Input)
	r.state = StateWaiting
	r.resetAt = time.Time{}
	r.sessions = make(map[int32]Session)
	r.disconnected = make(map[int32]time.Time)
	r.bots = nil
	r.nextPlayerID = 1
	r.publish()
}

func (r *Room) closeAllSessions() {
	for _, s := range r.sessions {
		s.CloseWithoutNotify()
	}
}

func (r *Room) broadcast(data []byte, err error) {
	if err != nil {
		log.Printf("错误: 房间 %s 编码广播消息失败: %v", r.ID, err)
		return
	}
	for id, s := range r.sessions {
		if err := s.Send(data); err != nil {
			log.Printf("发送到玩家 %d 失败: %v", id, err)
		}
	}
}

// publish 发布快照和统计信息给其他 goroutine
func (r *Room) publish() core.Snapshot {
	snap := r.game.Snapshot()
	r.snapshot.Store(&snap)
	r.stats.Store(&RoomStats{
		ID:           r.ID,
		State:        r.state.String(),
		Frame:        r.game.CurrentFrame,
		Humans:       len(r.sessions) + len(r.disconnected),
		Bots:         len(r.bots),
		Alive:        len(r.game.Players),
		Bombs:        len(r.game.Bombs),
		Disconnected: len(r.disconnected),
	})
	return snap
}
