package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	bombyv1 "bomby/api/gen/bomby/v1"
	"bomby/internal/config"
	"bomby/pkg/ai"
	"bomby/pkg/core"
	"bomby/pkg/protocol"
)

// GameServer 游戏服务器：接受连接、把请求转给房间管理器，并提供管理接口
type GameServer struct {
	cfg     config.ServerConfig
	rooms   *RoomManager
	metrics *Metrics
	reg     *prometheus.Registry

	listener ServerListener
	admin    *http.Server
	ready    chan struct{}

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewGameServer 创建新的游戏服务器
func NewGameServer(cfg config.ServerConfig) (*GameServer, error) {
	level, err := core.LoadLevelFile(cfg.LevelFile)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	s := &GameServer{
		cfg:      cfg,
		metrics:  metrics,
		reg:      reg,
		ready:    make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
		shutdown: make(chan struct{}),
	}
	s.rooms = NewRoomManager(ctx, RoomConfig{
		Bots:      cfg.Bots,
		BotConfig: &ai.ConfigNormal,
		Level:     level,
		Tokens:    NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL),
		Metrics:   metrics,
	})
	return s, nil
}

// Start 启动服务器，阻塞直到 Shutdown
func (s *GameServer) Start() error {
	listener, err := newListener(s.cfg.Proto, s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("监听失败: %w", err)
	}
	s.listener = listener
	log.Printf("服务器监听中: %s (%s)", listener.Addr(), s.cfg.Proto)

	s.rooms.Run()

	if s.cfg.AdminAddr != "" {
		s.admin = &http.Server{
			Addr:              s.cfg.AdminAddr,
			Handler:           NewAdminRouter(s.rooms, s.reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Printf("管理接口: http://%s", s.cfg.AdminAddr)
			if err := s.admin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("警告: 管理接口异常退出: %v", err)
			}
		}()
	}

	s.wg.Add(1)
	go s.acceptLoop()
	close(s.ready)

	<-s.shutdown
	log.Println("服务器正在关闭...")
	return nil
}

// Addr 实际监听地址，Start 之后可用
func (s *GameServer) Addr() net.Addr {
	<-s.ready
	return s.listener.Addr()
}

// Shutdown 优雅关闭服务器
func (s *GameServer) Shutdown() {
	s.once.Do(func() {
		s.cancel()
		s.rooms.Shutdown()

		if s.listener != nil {
			_ = s.listener.Close()
		}
		if s.admin != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			_ = s.admin.Shutdown(ctx)
			cancel()
		}

		close(s.shutdown)
		s.wg.Wait()
		log.Println("服务器已关闭")
	})
}

// acceptLoop 接受客户端连接
func (s *GameServer) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.ctx.Done():
				log.Println("停止接受新连接")
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Printf("接受连接失败: %v", err)
			continue
		}

		log.Printf("新连接来自: %s", conn.RemoteAddr())
		s.metrics.AddConnections(1)

		connection := NewConnection(conn, s, s.cfg.InputRate, s.cfg.InputBurst)
		s.wg.Add(1)
		go func() {
			defer s.metrics.AddConnections(-1)
			connection.Handle(s.ctx, &s.wg)
		}()
	}
}

func (s *GameServer) handleJoin(c *Connection, req *JoinEvent) error {
	if err := s.rooms.Join(c, req); err != nil {
		if data, encErr := encodePacket(protocol.NewJoinFailedPacket(err.Error())); encErr == nil {
			_ = c.Send(data)
		}
		return err
	}
	return nil
}

func (s *GameServer) handleReconnect(c *Connection, req *ReconnectEvent) error {
	playerID, err := s.rooms.Reconnect(c, req.SessionToken)
	if err != nil {
		resp := &bombyv1.ReconnectResponse{Success: false, PlayerId: -1, ErrorMessage: err.Error()}
		if data, encErr := protocol.Marshal(resp); encErr == nil {
			_ = c.Send(data)
		}
		return err
	}
	log.Printf("玩家 %d: 重连成功", playerID)
	return nil
}

func (s *GameServer) handleInput(c *Connection, in *InputEvent) {
	s.rooms.EnqueueInput(c, in)
}

func (s *GameServer) handleDisconnect(c *Connection) {
	s.rooms.Disconnect(c)
}

func (s *GameServer) currentFrame(c *Connection) int32 {
	return s.rooms.CurrentFrame(c)
}
