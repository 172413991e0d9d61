package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bomby/pkg/core"
)

// Metrics 服务器指标。标签只用有限取值，不按玩家区分
type Metrics struct {
	tickDuration prometheus.Histogram
	rooms        prometheus.Gauge
	players      prometheus.Gauge
	connections  prometheus.Gauge
	bombsPlaced  prometheus.Counter
	detonations  prometheus.Counter
	deaths       prometheus.Counter
	games        *prometheus.CounterVec
	rejected     *prometheus.CounterVec
}

// NewMetrics 在 reg 上注册所有指标，测试中传入新的 Registry 避免重复注册
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bomby_tick_duration_seconds",
			Help:    "Time spent in one room tick",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.0167},
		}),
		rooms: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bomby_rooms",
			Help: "Number of open rooms",
		}),
		players: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bomby_players",
			Help: "Players alive across all rooms, bots included",
		}),
		connections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bomby_connections_active",
			Help: "Currently open client connections",
		}),
		bombsPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "bomby_bombs_placed_total",
			Help: "Bombs placed",
		}),
		detonations: factory.NewCounter(prometheus.CounterOpts{
			Name: "bomby_detonations_total",
			Help: "Bombs detonated",
		}),
		deaths: factory.NewCounter(prometheus.CounterOpts{
			Name: "bomby_player_deaths_total",
			Help: "Players eliminated by blasts",
		}),
		games: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bomby_games_total",
			Help: "Finished games",
		}, []string{"result"}), // "winner", "draw"
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bomby_joins_rejected_total",
			Help: "Rejected join or reconnect requests",
		}, []string{"reason"}), // "full", "ending", "token", "closed"
	}
}

// RecordTick 记录一次房间 tick 的耗时和本帧产生的反馈事件
func (m *Metrics) RecordTick(d time.Duration, events []core.FeedbackEvent) {
	if m == nil {
		return
	}
	m.tickDuration.Observe(d.Seconds())
	for _, e := range events {
		if e.IsTrauma() {
			continue
		}
		switch e.Cue {
		case core.CueBombFuse:
			m.bombsPlaced.Inc()
		case core.CueBombExplosion:
			m.detonations.Inc()
		case core.CuePlayerDeath:
			m.deaths.Inc()
		}
	}
}

func (m *Metrics) RecordGameOver(winnerID int) {
	if m == nil {
		return
	}
	result := "winner"
	if winnerID < 0 {
		result = "draw"
	}
	m.games.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordRejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) AddPlayers(delta int) {
	if m == nil {
		return
	}
	m.players.Add(float64(delta))
}

func (m *Metrics) AddRooms(delta int) {
	if m == nil {
		return
	}
	m.rooms.Add(float64(delta))
}

func (m *Metrics) AddConnections(delta int) {
	if m == nil {
		return
	}
	m.connections.Add(float64(delta))
}
