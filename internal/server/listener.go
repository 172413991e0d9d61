package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	kcp "github.com/xtaci/kcp-go/v5"
)

// ErrUnsupportedProto 不支持的传输协议
var ErrUnsupportedProto = errors.New("不支持的协议")

// wsPath WebSocket 传输的升级路径
const wsPath = "/ws"

type ServerListener interface {
	Accept() (net.Conn, error)
	Close() error
	Addr() net.Addr
}

func newListener(proto, addr string) (ServerListener, error) {
	switch proto {
	case "tcp":
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			return nil, err
		}
		return &tcpListener{listener: listener}, nil
	case "kcp":
		listener, err := kcp.ListenWithOptions(addr, nil, 0, 0)
		if err != nil {
			return nil, err
		}
		return &kcpListener{listener: listener}, nil
	case "ws":
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			return nil, err
		}
		return newWSListener(listener), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProto, proto)
	}
}

type tcpListener struct {
	listener net.Listener
}

func (l *tcpListener) Accept() (net.Conn, error) {
	conn, err := l.listener.Accept()
	if err != nil {
		return nil, err
	}
	// 开启 TCP_NODELAY，禁用 Nagle 算法以减少延迟
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}
	return conn, nil
}

func (l *tcpListener) Close() error {
	return l.listener.Close()
}

func (l *tcpListener) Addr() net.Addr {
	return l.listener.Addr()
}

type kcpListener struct {
	listener *kcp.Listener
}

func (l *kcpListener) Accept() (net.Conn, error) {
	session, err := l.listener.AcceptKCP()
	if err != nil {
		return nil, err
	}
	// 不需要 SetStreamMode，我们使用长度前缀协议处理消息边界
	return session, nil
}

func (l *kcpListener) Close() error {
	return l.listener.Close()
}

func (l *kcpListener) Addr() net.Addr {
	return l.listener.Addr()
}

// wsListener 在 HTTP 服务上接受 WebSocket 升级，并把每个连接包装成 net.Conn。
// 二进制消息按字节流读取，长度前缀协议不需要改动
type wsListener struct {
	listener net.Listener
	srv      *http.Server
	conns    chan net.Conn
	done     chan struct{}
	once     sync.Once
}

func newWSListener(listener net.Listener) *wsListener {
	l := &wsListener{
		listener: listener,
		conns:    make(chan net.Conn),
		done:     make(chan struct{}),
	}
	l.srv = &http.Server{Handler: newWSRouter(l.upgrade)}

	go func() {
		if err := l.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("WebSocket 服务异常退出: %v", err)
		}
	}()
	return l
}

// newWSRouter 只暴露升级路径，其余请求返回 404
func newWSRouter(upgrade http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(wsPath, upgrade)
	return r
}

func (l *wsListener) upgrade(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}
	c.SetReadLimit(MaxPacketSize + 4)

	// NetConn 的生命周期绑定到这个 context，处理函数返回前连接必须保持打开
	ctx, cancel := context.WithCancel(context.Background())
	conn := &closeNotifyConn{Conn: websocket.NetConn(ctx, c, websocket.MessageBinary), closed: make(chan struct{})}

	select {
	case l.conns <- conn:
	case <-l.done:
		cancel()
		_ = c.Close(websocket.StatusGoingAway, "服务器关闭")
		return
	}

	select {
	case <-conn.closed:
	case <-l.done:
	}
	cancel()
}

func (l *wsListener) Accept() (net.Conn, error) {
	select {
	case conn := <-l.conns:
		return conn, nil
	case <-l.done:
		return nil, net.ErrClosed
	}
}

func (l *wsListener) Close() error {
	var err error
	l.once.Do(func() {
		close(l.done)
		err = l.srv.Close()
	})
	return err
}

func (l *wsListener) Addr() net.Addr {
	return l.listener.Addr()
}

// closeNotifyConn 在 Close 时通知升级处理函数退出
type closeNotifyConn struct {
	net.Conn
	once   sync.Once
	closed chan struct{}
}

func (c *closeNotifyConn) Close() error {
	err := c.Conn.Close()
	c.once.Do(func() { close(c.closed) })
	return err
}
