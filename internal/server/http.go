package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewAdminRouter 管理接口：健康检查、指标、房间列表和棋盘截图。
// 不启动任何 goroutine，可以直接交给 httptest
func NewAdminRouter(rooms *RoomManager, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	h := &adminHandlers{rooms: rooms}
	r.Route("/rooms", func(r chi.Router) {
		r.Use(middleware.Logger)
		r.Get("/", h.listRooms)
		r.Post("/", h.createRoom)
		r.Get("/{id}", h.getRoom)
		r.Get("/{id}/board.png", h.boardPNG)
	})
	return r
}

type adminHandlers struct {
	rooms *RoomManager
}

func (h *adminHandlers) listRooms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.rooms.GetRoomStats())
}

func (h *adminHandlers) createRoom(w http.ResponseWriter, _ *http.Request) {
	id, err := h.rooms.CreateRoom()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrTooManyRooms) {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *adminHandlers) getRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := h.rooms.Room(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": ErrRoomNotFound.Error()})
		return
	}
	writeJSON(w, http.StatusOK, room.Stats())
}

func (h *adminHandlers) boardPNG(w http.ResponseWriter, r *http.Request) {
	room, ok := h.rooms.Room(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, ErrRoomNotFound.Error(), http.StatusNotFound)
		return
	}
	snap, ok := room.Snapshot()
	if !ok {
		http.Error(w, "房间尚未开始", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := WriteBoardPNG(w, snap); err != nil {
		log.Printf("渲染棋盘失败: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("写入响应失败: %v", err)
	}
}
