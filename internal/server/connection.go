package server

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

	"golang.org/x/time/rate"

	"bomby/pkg/protocol"
)

const (
	MaxPacketSize = 4096            // 最大消息大小
	readTimeout   = 5 * time.Second // 读取超时
	writeTimeout  = 1 * time.Second // 写入超时
	sendQueueSize = 256
)

var (
	ErrSendQueueFull    = errors.New("发送队列满")
	ErrConnectionClosed = errors.New("连接已关闭")
	ErrAlreadyJoined    = errors.New("玩家已加入")
	ErrUnknownMessage   = errors.New("未知消息类型")
)

// connHandler 连接收到的请求交给它处理，由 GameServer 实现
type connHandler interface {
	handleJoin(c *Connection, req *JoinEvent) error
	handleReconnect(c *Connection, req *ReconnectEvent) error
	handleInput(c *Connection, in *InputEvent)
	handleDisconnect(c *Connection)
	currentFrame(c *Connection) int32
}

// Connection 表示一个客户端连接，实现 Session
type Connection struct {
	conn     net.Conn
	handler  connHandler
	playerID atomic.Int32
	roomID   atomic.Value // string
	limiter  *rate.Limiter

	// 发送队列
	sendChan chan []byte
	closeCh  chan struct{}
	closed   bool
	closeMu  sync.Mutex

	lastRecvTime atomic.Value
	rtt          atomic.Int64
	dropped      atomic.Int64 // 被限流丢弃的输入消息数
}

// NewConnection 创建新连接。inputRate/inputBurst 限制每秒可处理的输入消息数
func NewConnection(conn net.Conn, handler connHandler, inputRate float64, inputBurst int) *Connection {
	c := &Connection{
		conn:     conn,
		handler:  handler,
		limiter:  rate.NewLimiter(rate.Limit(inputRate), inputBurst),
		sendChan: make(chan []byte, sendQueueSize),
		closeCh:  make(chan struct{}),
	}
	c.playerID.Store(-1) // -1 表示未分配
	c.roomID.Store("")
	c.lastRecvTime.Store(time.Now())
	return c
}

// Handle 处理连接，直到上下文取消或连接关闭
func (c *Connection) Handle(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	wg.Add(3)
	go c.startHeartbeat(ctx, wg)
	go c.sendLoop(ctx, wg)
	go c.receiveLoop(ctx, wg)

	select {
	case <-ctx.Done():
	case <-c.closeCh:
	}

	c.Close()
}

// Close 关闭连接，并通知房间玩家掉线
func (c *Connection) Close() {
	c.closeWithNotify(true)
}

// CloseWithoutNotify 关闭连接但不触发移除玩家逻辑
func (c *Connection) CloseWithoutNotify() {
	c.closeWithNotify(false)
}

func (c *Connection) closeWithNotify(notify bool) {
	c.closeMu.Lock()
	if c.closed {
		c.closeMu.Unlock()
		return
	}
	c.closed = true
	close(c.closeCh)
	close(c.sendChan)
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.closeMu.Unlock()

	// 通知放在锁外，房间可能在同一时间向本连接发送数据
	if notify && c.ID() >= 0 {
		c.handler.handleDisconnect(c)
	}

	log.Printf("玩家 %d: 连接已关闭", c.ID())
}

// Send 发送数据（异步）
func (c *Connection) Send(data []byte) error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if c.closed {
		return ErrConnectionClosed
	}

	select {
	case c.sendChan <- data:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// sendLoop 发送循环：4 字节大端长度前缀 + 数据体
func (c *Connection) sendLoop(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	var header [4]byte
	for {
		select {
		case <-ctx.Done():
			return

		case data, ok := <-c.sendChan:
			if !ok {
				return
			}

			binary.BigEndian.PutUint32(header[:], uint32(len(data)))
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if _, err := c.conn.Write(header[:]); err != nil {
				log.Printf("玩家 %d: 发送长度失败: %v", c.ID(), err)
				c.Close()
				return
			}

			if _, err := c.conn.Write(data); err != nil {
				log.Printf("玩家 %d: 发送数据失败: %v", c.ID(), err)
				c.Close()
				return
			}
		}
	}
}

// receiveLoop 接收循环
func (c *Connection) receiveLoop(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.closeCh:
			return
		default:
		}

		data, err := readFrame(c.conn)
		if err != nil {
			var netErr net.Error
			switch {
			case errors.As(err, &netErr) && netErr.Timeout():
				log.Printf("玩家 %d: 读取超时", c.ID())
			case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
			default:
				log.Printf("玩家 %d: 读取失败: %v", c.ID(), err)
			}
			c.Close()
			return
		}
		if data == nil {
			continue
		}

		c.lastRecvTime.Store(time.Now())
		if err := c.handleMessage(data); err != nil {
			log.Printf("玩家 %d: 处理消息失败: %v", c.ID(), err)
		}
	}
}

// ErrPacketTooLarge 消息超过 MaxPacketSize
var ErrPacketTooLarge = errors.New("消息过大")

// readFrame 读取一帧，空消息返回 nil
func readFrame(conn net.Conn) ([]byte, error) {
	var header [4]byte
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	if _, err := io.ReadFull(conn, header[:]); err != nil {
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
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	if _, err := io.ReadFull(conn, data); err != nil {
		return nil, err
	}
	return data, nil
}

// handleMessage 处理接收到的消息
func (c *Connection) handleMessage(data []byte) error {
	event, err := DecodePacket(data)
	if err != nil {
		return fmt.Errorf("反序列化失败: %w", err)
	}

	switch event.Kind {
	case EventJoin:
		if c.ID() >= 0 {
			return ErrAlreadyJoined
		}
		if err := c.handler.handleJoin(c, event.Join); err != nil {
			return fmt.Errorf("处理加入请求失败: %w", err)
		}
		log.Printf("玩家 %d: 加入房间 %s", c.ID(), c.RoomID())

	case EventReconnect:
		if c.ID() >= 0 {
			return ErrAlreadyJoined
		}
		if err := c.handler.handleReconnect(c, event.Reconnect); err != nil {
			return fmt.Errorf("处理重连请求失败: %w", err)
		}

	case EventInput:
		if c.ID() < 0 {
			return nil
		}
		if !c.limiter.Allow() {
			c.dropped.Add(1)
			return nil
		}
		event.Input.PlayerID = c.ID()
		c.handler.handleInput(c, event.Input)

	case EventPing:
		data, err := encodePacket(protocol.NewPongPacket(event.Ping.ClientTime, time.Now().UnixMilli(), c.handler.currentFrame(c)))
		if err != nil {
			return err
		}
		return c.Send(data)

	case EventPong:
		c.handlePong(event.Pong)

	default:
		return fmt.Errorf("%w: %v", ErrUnknownMessage, event.Type)
	}

	return nil
}

// String 返回连接的字符串表示
func (c *Connection) String() string {
	if c.ID() >= 0 {
		return fmt.Sprintf("Connection{%d, %s}", c.ID(), c.conn.RemoteAddr())
	}
	return fmt.Sprintf("Connection{%s}", c.conn.RemoteAddr())
}

func (c *Connection) ID() int32 {
	return c.playerID.Load()
}

func (c *Connection) SetPlayerID(playerID int32) {
	c.playerID.Store(playerID)
}

func (c *Connection) RoomID() string {
	id, _ := c.roomID.Load().(string)
	return id
}

func (c *Connection) SetRoomID(roomID string) {
	c.roomID.Store(roomID)
}

// RTT 最近一次心跳测得的往返时间
func (c *Connection) RTT() time.Duration {
	return time.Duration(c.rtt.Load()) * time.Millisecond
}

const (
	heartbeatInterval = 5 * time.Second
	heartbeatTimeout  = 15 * time.Second
)

func (c *Connection) startHeartbeat(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.closeCh:
			return
		case <-ticker.C:
			lastRecv, _ := c.lastRecvTime.Load().(time.Time)
			if !lastRecv.IsZero() && time.Since(lastRecv) > heartbeatTimeout {
				log.Printf("玩家 %d: 心跳超时", c.ID())
				c.Close()
				return
			}
			c.sendPing()
		}
	}
}

func (c *Connection) sendPing() {
	if data, err := encodePacket(protocol.NewPingPacket(time.Now().UnixMilli())); err == nil {
		_ = c.Send(data)
	}
}

func (c *Connection) handlePong(pong *PongEvent) {
	if pong == nil || pong.ClientTime <= 0 {
		return
	}
	c.rtt.Store(time.Now().UnixMilli() - pong.ClientTime)
}
