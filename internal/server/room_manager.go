package server

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultRoomID   = "default"        // 默认房间 ID
	MaxRooms        = 100              // 最大房间数
	cleanupInterval = 30 * time.Second // 空房间清理周期
)

var (
	ErrTooManyRooms = errors.New("房间数量已达上限")
	ErrRoomNotFound = errors.New("房间不存在")
)

type RoomManager struct {
	ctx       context.Context
	cfg       RoomConfig
	rooms     map[string]*Room // 房间 ID -> 房间
	roomMutex sync.RWMutex     // 保护 rooms map
	wg        sync.WaitGroup
	shutdown  chan struct{}
	once      sync.Once
}

// NewRoomManager 创建房间管理器，cfg 是每个新房间使用的参数
func NewRoomManager(ctx context.Context, cfg RoomConfig) *RoomManager {
	return &RoomManager{
		ctx:      ctx,
		cfg:      cfg,
		rooms:    make(map[string]*Room),
		shutdown: make(chan struct{}),
	}
}

// Run 创建默认房间并启动清理协程
func (m *RoomManager) Run() {
	m.wg.Add(1)
	go m.cleanupLoop()

	if _, err := m.getOrCreateRoom(DefaultRoomID); err != nil {
		log.Printf("警告: 创建默认房间失败: %v", err)
	}
}

// cleanupLoop 定期清理空房间
func (m *RoomManager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-m.shutdown:
			return
		case <-ticker.C:
			m.cleanupEmptyRooms()
		}
	}
}

// cleanupEmptyRooms 清理没有玩家且不在进行中的房间（保留默认房间）
func (m *RoomManager) cleanupEmptyRooms() int {
	m.roomMutex.Lock()
	defer m.roomMutex.Unlock()

	removed := 0
	for roomID, room := range m.rooms {
		if roomID == DefaultRoomID {
			continue
		}
		stats := room.Stats()
		if stats.Humans == 0 && stats.State != StateRunning.String() {
			log.Printf("清理空房间: %s", roomID)
			room.Shutdown()
			delete(m.rooms, roomID)
			removed++
		}
	}
	m.cfg.Metrics.AddRooms(-removed)
	return removed
}

// getOrCreateRoom 获取或创建房间
func (m *RoomManager) getOrCreateRoom(roomID string) (*Room, error) {
	m.roomMutex.Lock()
	defer m.roomMutex.Unlock()

	if room, exists := m.rooms[roomID]; exists {
		return room, nil
	}
	if len(m.rooms) >= MaxRooms {
		return nil, fmt.Errorf("%w (%d)", ErrTooManyRooms, MaxRooms)
	}

	log.Printf("创建新房间: %s", roomID)
	room := NewRoom(m.ctx, roomID, m.cfg)
	m.rooms[roomID] = room
	m.cfg.Metrics.AddRooms(1)

	m.wg.Add(1)
	go room.Run(&m.wg)

	return room, nil
}

// Room 查找房间
func (m *RoomManager) Room(roomID string) (*Room, bool) {
	m.roomMutex.RLock()
	defer m.roomMutex.RUnlock()
	room, ok := m.rooms[roomID]
	return room, ok
}

// Join 玩家加入房间，房间不存在时自动创建
func (m *RoomManager) Join(session Session, req *JoinEvent) error {
	roomID := req.RoomID
	if roomID == "" {
		roomID = DefaultRoomID
	}

	room, err := m.getOrCreateRoom(roomID)
	if err != nil {
		return err
	}
	return room.Join(session, req)
}

// Reconnect 校验会话 Token，把新连接绑定回原来的玩家
func (m *RoomManager) Reconnect(session Session, token string) (int32, error) {
	if m.cfg.Tokens == nil {
		return 0, ErrInvalidToken
	}
	playerID, roomID, err := m.cfg.Tokens.Verify(token)
	if err != nil {
		m.cfg.Metrics.RecordRejected("token")
		return 0, err
	}

	room, ok := m.Room(roomID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}
	if err := room.Reconnect(session, playerID); err != nil {
		return 0, err
	}
	return playerID, nil
}

// EnqueueInput 将输入放入会话所在房间的队列
func (m *RoomManager) EnqueueInput(session Session, input *InputEvent) {
	room, ok := m.Room(session.RoomID())
	if !ok {
		log.Printf("警告: 房间 %s 不存在，玩家 %d 的输入被丢弃", session.RoomID(), session.ID())
		return
	}
	room.EnqueueInput(input)
}

// Disconnect 会话断开
func (m *RoomManager) Disconnect(session Session) {
	room, ok := m.Room(session.RoomID())
	if !ok {
		return
	}
	room.Disconnect(session.ID(), session)
}

// CurrentFrame 会话所在房间的当前帧号
func (m *RoomManager) CurrentFrame(session Session) int32 {
	if room, ok := m.Room(session.RoomID()); ok {
		return room.Stats().Frame
	}
	return 0
}

// CreateRoom 创建新房间（返回房间 ID）
func (m *RoomManager) CreateRoom() (string, error) {
	roomID := uuid.NewString()
	if _, err := m.getOrCreateRoom(roomID); err != nil {
		return "", err
	}
	return roomID, nil
}

// GetRoomStats 所有房间的统计信息，按房间 ID 排序
func (m *RoomManager) GetRoomStats() []RoomStats {
	m.roomMutex.RLock()
	defer m.roomMutex.RUnlock()

	stats := make([]RoomStats, 0, len(m.rooms))
	for _, room := range m.rooms {
		stats = append(stats, room.Stats())
	}
	slices.SortFunc(stats, func(a, b RoomStats) int { return cmp.Compare(a.ID, b.ID) })
	return stats
}

// Shutdown 关闭所有房间并等待房间循环退出
func (m *RoomManager) Shutdown() {
	m.once.Do(func() { close(m.shutdown) })

	m.roomMutex.Lock()
	log.Printf("关闭 %d 个房间...", len(m.rooms))
	for _, room := range m.rooms {
		room.Shutdown()
	}
	m.roomMutex.Unlock()

	m.wg.Wait()
	log.Println("所有房间已关闭")
}
