package server

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"bomby/pkg/core"
)

func TestMetricsRecordTick(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.RecordTick(time.Millisecond, []core.FeedbackEvent{
		{Cue: core.CueBombFuse},
		{Cue: core.CueBombFuse},
		{Cue: core.CueBombExplosion},
		{Cue: core.CuePlayerDeath},
		{Trauma: core.BombTrauma},
	})

	if got := testutil.ToFloat64(m.bombsPlaced); got != 2 {
		t.Errorf("bombs placed = %v", got)
	}
	if got := testutil.ToFloat64(m.detonations); got != 1 {
		t.Errorf("detonations = %v", got)
	}
	if got := testutil.ToFloat64(m.deaths); got != 1 {
		t.Errorf("deaths = %v", got)
	}
}

func TestMetricsGameOver(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.RecordGameOver(3)
	m.RecordGameOver(-1)
	m.RecordGameOver(-1)

	if got := testutil.ToFloat64(m.games.WithLabelValues("winner")); got != 1 {
		t.Errorf("winner = %v", got)
	}
	if got := testutil.ToFloat64(m.games.WithLabelValues("draw")); got != 2 {
		t.Errorf("draw = %v", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.RecordTick(time.Millisecond, nil)
	m.RecordGameOver(1)
	m.RecordRejected("full")
	m.AddPlayers(1)
	m.AddRooms(1)
	m.AddConnections(1)
}
