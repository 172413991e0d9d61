// Package remote 联机客户端：建立连接、加入房间、断线重连，
// 并把服务器消息转交给游戏循环
package remote

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	kcp "github.com/xtaci/kcp-go/v5"

	bombyv1 "bomby/api/gen/bomby/v1"
	"bomby/pkg/core"
	"bomby/pkg/protocol"
)

const (
	MaxPacketSize    = 4096
	dialTimeout      = 5 * time.Second
	handshakeTimeout = 10 * time.Second
	readTimeout      = 15 * time.Second // 服务器每 5 秒发一次心跳
	writeTimeout     = time.Second
	pingInterval     = 2 * time.Second
	sendQueueSize    = 256
	inboxSize        = 256
)

// wsPath 服务器 WebSocket 升级路径
const wsPath = "/ws"

var (
	ErrJoinRejected   = errors.New("服务器拒绝加入")
	ErrNoSession      = errors.New("没有可用于重连的会话")
	ErrNotConnected   = errors.New("未连接")
	ErrSendQueueFull  = errors.New("发送队列满")
	ErrPacketTooLarge = errors.New("消息过大")
	ErrUnsupported    = errors.New("不支持的协议")
)

// Session 加入或重连成功后服务器下发的信息
type Session struct {
	PlayerID int
	RoomID   string
	Map      *core.GameMap
	State    *bombyv1.ServerState
}

// Incoming 转交给游戏循环的消息，每次只有一个字段非空
type Incoming struct {
	State    *bombyv1.ServerState
	GameOver *bombyv1.GameOver
	Leave    *bombyv1.PlayerLeave
}

// Options 连接参数
type Options struct {
	Addr      string
	Proto     string // tcp | kcp | ws
	Name      string
	Character core.CharacterType
	RoomID    string
}

// Dialer 建立到服务器的连接，测试时可以替换
type Dialer func(ctx context.Context, proto, addr string) (net.Conn, error)

// Client 联机客户端。一个 Client 可以先后使用多条连接，
// 重连时沿用加入时拿到的会话 Token
type Client struct {
	opts Options
	dial Dialer

	mu       sync.Mutex
	link     *link
	token    string
	roomID   string
	playerID int32

	inputSeq atomic.Int32
	rtt      atomic.Int64 // 毫秒
	inbox    chan Incoming
}

// New 创建客户端，dial 为 nil 时使用 Dial
func New(opts Options, dial Dialer) *Client {
	if dial == nil {
		dial = Dial
	}
	return &Client{
		opts:     opts,
		dial:     dial,
		playerID: -1,
		inbox:    make(chan Incoming, inboxSize),
	}
}

// Dial 按协议建立连接。ws 连接被包装成按字节流读写的 net.Conn
func Dial(ctx context.Context, proto, addr string) (net.Conn, error) {
	switch proto {
	case "", "tcp":
		d := net.Dialer{Timeout: dialTimeout}
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, err
		}
		if tcpConn, ok := conn.(*net.TCPConn); ok {
			_ = tcpConn.SetNoDelay(true)
		}
		return conn, nil
	case "kcp":
		conn, err := kcp.DialWithOptions(addr, nil, 0, 0)
		if err != nil {
			return nil, err
		}
		conn.SetStreamMode(true)
		return conn, nil
	case "ws":
		ctx, cancel := context.WithTimeout(ctx, dialTimeout)
		defer cancel()
		c, _, err := websocket.Dial(ctx, "ws://"+addr+wsPath, nil)
		if err != nil {
			return nil, err
		}
		c.SetReadLimit(MaxPacketSize + 4)
		return websocket.NetConn(context.Background(), c, websocket.MessageBinary), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, proto)
	}
}

// Join 连接服务器并加入房间
func (c *Client) Join(ctx context.Context) (*Session, error) {
	log.Printf("连接到服务器: %s (%s)", c.opts.Addr, c.opts.Proto)
	req, err := protocol.NewJoinRequestPacket(c.opts.Name, protocol.CoreCharacterTypeToProto(c.opts.Character), c.opts.RoomID)
	if err != nil {
		return nil, err
	}
	conn, pkt, err := c.handshake(ctx, req, bombyv1.MessageType_MESSAGE_TYPE_JOIN_RESPONSE)
	if err != nil {
		return nil, err
	}

	resp, err := protocol.ParseJoinResponse(pkt)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if !resp.Success {
		conn.Close()
		return nil, fmt.Errorf("%w: %s", ErrJoinRejected, resp.ErrorMessage)
	}
	m, err := protocol.ProtoMapToCore(resp.Map)
	if err != nil {
		conn.Close()
		return nil, err
	}

	c.mu.Lock()
	c.token = resp.SessionToken
	c.roomID = resp.RoomId
	c.playerID = resp.PlayerId
	c.mu.Unlock()

	c.start(conn)
	log.Printf("已加入房间 %s，玩家 ID: %d", resp.RoomId, resp.PlayerId)
	return &Session{PlayerID: int(resp.PlayerId), RoomID: resp.RoomId, Map: m, State: resp.State}, nil
}

// Reconnect 用会话 Token 建立新连接，回到原来的玩家
func (c *Client) Reconnect(ctx context.Context) (*Session, error) {
	c.mu.Lock()
	token, roomID := c.token, c.roomID
	c.mu.Unlock()
	if token == "" {
		return nil, ErrNoSession
	}

	req, err := protocol.NewReconnectRequestPacket(token)
	if err != nil {
		return nil, err
	}
	conn, pkt, err := c.handshake(ctx, req, bombyv1.MessageType_MESSAGE_TYPE_RECONNECT_RESPONSE)
	if err != nil {
		return nil, err
	}
	resp, err := protocol.ParseReconnectResponse(pkt)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if !resp.Success {
		conn.Close()
		c.ForgetSession()
		return nil, fmt.Errorf("%w: %s", ErrJoinRejected, resp.ErrorMessage)
	}
	m, err := protocol.ProtoMapToCore(resp.Map)
	if err != nil {
		conn.Close()
		return nil, err
	}

	c.mu.Lock()
	c.playerID = resp.PlayerId
	c.mu.Unlock()

	c.start(conn)
	log.Printf("已重连，玩家 ID: %d", resp.PlayerId)
	return &Session{PlayerID: int(resp.PlayerId), RoomID: roomID, Map: m, State: resp.State}, nil
}

// handshake 建立连接、发送请求并等待指定类型的响应。期间收到的其他消息被丢弃
func (c *Client) handshake(ctx context.Context, req *bombyv1.Packet, want bombyv1.MessageType) (net.Conn, *bombyv1.Packet, error) {
	data, err := protocol.MarshalPacket(req)
	if err != nil {
		return nil, nil, fmt.Errorf("编码 %s 失败: %w", req.Type, err)
	}
	conn, err := c.dial(ctx, c.opts.Proto, c.opts.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("连接服务器失败: %w", err)
	}

	deadline := time.Now().Add(handshakeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	if err := writeFrame(conn, data); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("发送 %s 失败: %w", req.Type, err)
	}
	for {
		data, err := readFrame(conn)
		if err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("等待 %s 失败: %w", want, err)
		}
		if data == nil {
			continue
		}
		pkt, err := protocol.UnmarshalPacket(data)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		if pkt.Type == want {
			_ = conn.SetDeadline(time.Time{})
			return conn, pkt, nil
		}
	}
}

// start 启动新连接的收发循环，旧连接被关闭
func (c *Client) start(conn net.Conn) {
	l := &link{
		conn:   conn,
		sendCh: make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
	}

	c.mu.Lock()
	old := c.link
	c.link = l
	c.mu.Unlock()
	if old != nil {
		old.close(nil)
	}

	go l.sendLoop()
	go c.receiveLoop(l)
	go c.pingLoop(l)
}

// Inbox 服务器消息。连接断开后不会关闭，重连后继续使用
func (c *Client) Inbox() <-chan Incoming {
	return c.inbox
}

// Done 当前连接断开时关闭。没有连接时返回已关闭的通道
func (c *Client) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.link == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return c.link.done
}

// Err 当前连接断开的原因
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.link == nil {
		return ErrNotConnected
	}
	return c.link.reason()
}

// CanReconnect 是否持有会话 Token
func (c *Client) CanReconnect() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != ""
}

// ForgetSession 丢弃会话 Token，之后只能重新加入
func (c *Client) ForgetSession() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// PlayerID 当前玩家 ID，未加入时为 -1
func (c *Client) PlayerID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.playerID)
}

// RTT 最近一次心跳测得的往返时间
func (c *Client) RTT() time.Duration {
	return time.Duration(c.rtt.Load()) * time.Millisecond
}

// SendInput 发送一帧按键，frameID 是客户端最近看到的服务器帧
func (c *Client) SendInput(in core.Input, frameID int32) error {
	seq := c.inputSeq.Add(1)
	return c.send(protocol.NewClientInputPacket(seq, frameID, in.Up, in.Down, in.Left, in.Right, in.Bomb))
}

func (c *Client) send(pkt *bombyv1.Packet, err error) error {
	data, err := encode(pkt, err)
	if err != nil {
		return err
	}
	c.mu.Lock()
	l := c.link
	c.mu.Unlock()
	if l == nil {
		return ErrNotConnected
	}
	return l.send(data)
}

// Close 关闭当前连接
func (c *Client) Close() {
	c.mu.Lock()
	l := c.link
	c.mu.Unlock()
	if l != nil {
		l.close(nil)
	}
}

// ========== 收发循环 ==========

func (c *Client) receiveLoop(l *link) {
	for {
		_ = l.conn.SetReadDeadline(time.Now().Add(readTimeout))
		data, err := readFrame(l.conn)
		if err != nil {
			l.close(err)
			return
		}
		if data == nil {
			continue
		}
		if err := c.handleMessage(l, data); err != nil {
			log.Printf("处理消息失败: %v", err)
		}
	}
}

func (c *Client) handleMessage(l *link, data []byte) error {
	pkt, err := protocol.UnmarshalPacket(data)
	if err != nil {
		return fmt.Errorf("反序列化失败: %w", err)
	}

	var in Incoming
	switch pkt.Type {
	case bombyv1.MessageType_MESSAGE_TYPE_SERVER_STATE:
		if in.State, err = protocol.ParseServerState(pkt); err != nil {
			return err
		}
	case bombyv1.MessageType_MESSAGE_TYPE_GAME_OVER:
		if in.GameOver, err = protocol.ParseGameOver(pkt); err != nil {
			return err
		}
	case bombyv1.MessageType_MESSAGE_TYPE_PLAYER_LEAVE:
		if in.Leave, err = protocol.ParsePlayerLeave(pkt); err != nil {
			return err
		}
	case bombyv1.MessageType_MESSAGE_TYPE_PING:
		ping, err := protocol.ParsePing(pkt)
		if err != nil {
			return err
		}
		data, err := encode(protocol.NewPongPacket(ping.ClientTime, time.Now().UnixMilli(), 0))
		if err != nil {
			return err
		}
		return l.send(data)
	case bombyv1.MessageType_MESSAGE_TYPE_PONG:
		pong, err := protocol.ParsePong(pkt)
		if err != nil {
			return err
		}
		if pong.ClientTime > 0 {
			c.rtt.Store(time.Now().UnixMilli() - pong.ClientTime)
		}
		return nil
	default:
		return fmt.Errorf("未知消息类型: %s", pkt.Type)
	}

	// 状态里带着地图变化和反馈事件，不能丢，游戏循环跟不上时在这里等
	select {
	case c.inbox <- in:
	case <-l.done:
	}
	return nil
}

func (c *Client) pingLoop(l *link) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			if data, err := encode(protocol.NewPingPacket(time.Now().UnixMilli())); err == nil {
				_ = l.send(data)
			}
		}
	}
}

// link 一条连接及其发送队列
type link struct {
	conn   net.Conn
	sendCh chan []byte
	done   chan struct{}
	once   sync.Once
	mu     sync.Mutex
	err    error
}

func (l *link) send(data []byte) error {
	select {
	case <-l.done:
		return ErrNotConnected
	default:
	}
	select {
	case l.sendCh <- data:
		return nil
	default:
		return ErrSendQueueFull
	}
}

func (l *link) sendLoop() {
	for {
		select {
		case <-l.done:
			return
		case data := <-l.sendCh:
			_ = l.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := writeFrame(l.conn, data); err != nil {
				l.close(err)
				return
			}
		}
	}
}

// close 关闭连接，只记录第一次的原因
func (l *link) close(err error) {
	l.once.Do(func() {
		if err == nil {
			err = net.ErrClosed
		} else if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
			log.Printf("连接断开: %v", err)
		}
		l.mu.Lock()
		l.err = err
		l.mu.Unlock()
		close(l.done)
		l.conn.Close()
	})
}

func (l *link) reason() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// ========== 分帧 ==========

// readFrame 读取 4 字节大端长度前缀的一帧，空帧返回 nil
func readFrame(r io.Reader) ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint32(header[:])
	if length > MaxPacketSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPacketTooLarge, length)
	}
	if length == 0 {
		return nil, nil
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}

func writeFrame(w io.Writer, data []byte) error {
	buf := make([]byte, 4, 4+len(data))
	binary.BigEndian.PutUint32(buf, uint32(len(data)))
	_, err := w.Write(append(buf, data...))
	return err
}

// encode 编码构造好的消息包
func encode(pkt *bombyv1.Packet, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return protocol.MarshalPacket(pkt)
}
