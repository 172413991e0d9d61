package server

import (
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestAdmin(t *testing.T) (*httptest.Server, *RoomManager) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	reg := prometheus.NewRegistry()
	m := NewRoomManager(ctx, RoomConfig{Level: testLevel(t), Metrics: NewMetrics(reg)})
	m.Run()

	ts := httptest.NewServer(NewAdminRouter(m, reg))
	t.Cleanup(func() {
		ts.Close()
		cancel()
		m.Shutdown()
	})
	return ts, m
}

func TestAdminHealthAndMetrics(t *testing.T) {
	ts, _ := newTestAdmin(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "bomby_rooms 1") {
		t.Errorf("metrics missing room gauge:\n%s", body)
	}
}

func TestAdminRooms(t *testing.T) {
	ts, m := newTestAdmin(t)

	resp, err := http.Post(ts.URL+"/rooms", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	var created struct{ ID string }
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated || created.ID == "" {
		t.Fatalf("create status=%d id=%q", resp.StatusCode, created.ID)
	}
	if _, ok := m.Room(created.ID); !ok {
		t.Fatal("created room not registered")
	}

	resp, err = http.Get(ts.URL + "/rooms")
	if err != nil {
		t.Fatal(err)
	}
	var stats []RoomStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(stats) != 2 {
		t.Errorf("rooms = %+v, want default and created", stats)
	}

	resp, err = http.Get(ts.URL + "/rooms/missing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing room status = %d", resp.StatusCode)
	}
}

func TestAdminBoardPNG(t *testing.T) {
	ts, _ := newTestAdmin(t)

	resp, err := http.Get(ts.URL + "/rooms/" + DefaultRoomID + "/board.png")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	// 测试关卡 6x4
	if b := img.Bounds(); b.Dx() != 6*boardCell || b.Dy() != 4*boardCell {
		t.Errorf("bounds = %v", b)
	}
}
