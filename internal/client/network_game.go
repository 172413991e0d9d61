package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	bombyv1 "bomby/api/gen/bomby/v1"
	"bomby/internal/client/fx"
	"bomby/internal/client/interp"
	"bomby/internal/client/remote"
	"bomby/pkg/core"
	"bomby/pkg/protocol"
)

const (
	maxReconnectAttempts = 5
	reconnectBackoff     = 500 * time.Millisecond
	connectTimeout       = 10 * time.Second
)

type connectResult struct {
	session *remote.Session
	err     error
	fresh   bool
}

// NetworkGame 联机游戏：发送本地输入，渲染服务器状态。
// 服务器是权威的，客户端只对远端玩家做插值
type NetworkGame struct {
	client   *remote.Client
	scheme   ControlScheme
	renderer *Renderer
	audio    *CuePlayer
	feedback core.Fanout

	level     *core.GameMap
	state     *bombyv1.ServerState
	snap      core.Snapshot
	smoothers map[int]*interp.RemoteSmoother
	localID   int
	roomID    string

	pending  chan connectResult
	status   string
	gameOver bool
	winnerID int
	retries  int
	retryAt  time.Time

	lastUpdate time.Time
}

// NewNetworkGame 用已经加入成功的会话创建联机游戏
func NewNetworkGame(client *remote.Client, session *remote.Session, scheme ControlScheme, audio *CuePlayer) *NetworkGame {
	g := &NetworkGame{
		client:   client,
		scheme:   scheme,
		audio:    audio,
		renderer: NewRenderer(fx.NewCamera(time.Now().UnixNano())),
	}
	g.feedback = core.Fanout{g.renderer.Camera}
	if audio != nil {
		g.feedback = append(g.feedback, audio)
	}
	g.adopt(session, true)
	return g
}

// adopt 切换到新的会话。fresh 表示重新加入（新的一局），此时丢弃旧连接残留的消息
func (g *NetworkGame) adopt(s *remote.Session, fresh bool) {
	if fresh {
		g.discardInbox()
		g.gameOver = false
		g.winnerID = -1
		g.roomID = s.RoomID
	}
	g.level = s.Map
	g.state = s.State
	if g.state == nil {
		g.state = &bombyv1.ServerState{}
	}
	g.localID = s.PlayerID
	g.smoothers = make(map[int]*interp.RemoteSmoother)
	g.renderer.SetLocal(s.PlayerID)
	g.status = ""
	g.retries = 0
	g.lastUpdate = time.Now()
	g.rebuild(time.Now().UnixMilli())
}

func (g *NetworkGame) discardInbox() {
	for {
		select {
		case <-g.client.Inbox():
		default:
			return
		}
	}
}

// Update 每帧处理连接状态、服务器消息和本地输入
func (g *NetworkGame) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate)
	g.lastUpdate = now
	nowMs := now.UnixMilli()

	if g.audio != nil {
		g.audio.Update()
	}

	g.pollConnect()
	g.drainInbox(nowMs)

	if g.connected() {
		if !g.gameOver {
			if err := g.client.SendInput(ReadInput(g.scheme), g.state.FrameId); err != nil && !errors.Is(err, remote.ErrNotConnected) {
				log.Printf("发送输入失败: %v", err)
			}
		}
	} else if g.pending == nil {
		g.handleDisconnect(now)
	}

	g.rebuild(nowMs)
	g.renderer.Update(g.snap, dt)
	return nil
}

func (g *NetworkGame) connected() bool {
	if g.pending != nil {
		return false
	}
	select {
	case <-g.client.Done():
		return false
	default:
		return true
	}
}

// handleDisconnect 连接断开后：对局进行中自动重连，结束后等玩家按 R 加入下一局
func (g *NetworkGame) handleDisconnect(now time.Time) {
	if !g.gameOver && g.client.CanReconnect() && g.retries < maxReconnectAttempts {
		if now.Before(g.retryAt) {
			return
		}
		g.retries++
		g.retryAt = now.Add(reconnectBackoff * time.Duration(g.retries))
		g.status = fmt.Sprintf("reconnecting (%d/%d)", g.retries, maxReconnectAttempts)
		log.Printf("连接断开 (%v)，第 %d 次重连", g.client.Err(), g.retries)
		g.startConnect(g.client.Reconnect, false)
		return
	}

	if g.status == "" || g.gameOver {
		g.status = "disconnected, press R to join"
	}
	if restartPressed() {
		g.client.ForgetSession()
		g.status = "joining..."
		g.startConnect(g.client.Join, true)
	}
}

// startConnect 在后台建立连接，结果由 pollConnect 取回
func (g *NetworkGame) startConnect(connect func(context.Context) (*remote.Session, error), fresh bool) {
	ch := make(chan connectResult, 1)
	g.pending = ch
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		s, err := connect(ctx)
		ch <- connectResult{session: s, err: err, fresh: fresh}
	}()
}

func (g *NetworkGame) pollConnect() {
	if g.pending == nil {
		return
	}
	select {
	case res := <-g.pending:
		g.pending = nil
		if res.err != nil {
			log.Printf("连接失败: %v", res.err)
			if res.fresh || !g.client.CanReconnect() || g.retries >= maxReconnectAttempts {
				g.status = "connection failed, press R to retry"
			}
			return
		}
		g.adopt(res.session, res.fresh)
	default:
	}
}

// drainInbox 处理所有已收到的服务器消息
func (g *NetworkGame) drainInbox(nowMs int64) {
	for {
		select {
		case in := <-g.client.Inbox():
			g.receive(in, nowMs)
		default:
			return
		}
	}
}

func (g *NetworkGame) receive(in remote.Incoming, nowMs int64) {
	switch {
	case in.State != nil:
		st := in.State
		protocol.ApplyTileUpdates(g.level, st.TileUpdates)
		core.Replay(protocol.ProtoFeedbackToCore(st.Events), g.feedback)
		g.state = st

		snap := protocol.ProtoStateToSnapshot(st, g.level)
		for _, p := range snap.Players {
			if p.ID == g.localID {
				continue
			}
			s, ok := g.smoothers[p.ID]
			if !ok {
				s = interp.NewRemoteSmoother()
				g.smoothers[p.ID] = s
			}
			s.Push(nowMs, p)
		}

	case in.GameOver != nil:
		g.gameOver = true
		g.winnerID = int(in.GameOver.WinnerId)
		log.Printf("游戏结束: %s", gameOverText(g.winnerID))

	case in.Leave != nil:
		delete(g.smoothers, int(in.Leave.PlayerId))
	}
}

// rebuild 由最新状态生成渲染快照，远端玩家使用插值后的位置
func (g *NetworkGame) rebuild(nowMs int64) {
	g.snap = protocol.ProtoStateToSnapshot(g.state, g.level)
	for i := range g.snap.Players {
		p := &g.snap.Players[i]
		if s, ok := g.smoothers[p.ID]; ok {
			s.Apply(nowMs, p)
		}
	}
}

// Draw 绘制游戏画面
func (g *NetworkGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snap)

	extra := fmt.Sprintf("room %s  rtt %dms", g.roomID, g.client.RTT().Milliseconds())
	drawHUD(screen, g.snap, extra)

	switch {
	case g.gameOver && g.status != "":
		drawBanner(screen, gameOverText(g.winnerID), g.status)
	case g.gameOver:
		drawBanner(screen, gameOverText(g.winnerID), "next round starts soon")
	case g.status != "":
		drawBanner(screen, g.status)
	case g.state.Phase == bombyv1.RoomPhase_ROOM_PHASE_WAITING:
		drawBanner(screen, "waiting for players")
	}
}

// Layout 逻辑尺寸跟随服务器地图
func (g *NetworkGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.level)
}

// Close 断开连接
func (g *NetworkGame) Close() {
	g.client.Close()
}
