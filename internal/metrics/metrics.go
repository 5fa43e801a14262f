// Package metrics exposes Prometheus collectors for the SSH server and an
// HTTP endpoint to scrape them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values are bounded: no per-user or per-address labels.
var (
	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "snake_sessions_active",
		Help: "Currently connected SSH sessions",
	})

	sessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snake_sessions_total",
		Help: "SSH sessions started",
	})

	connectionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snake_connections_rejected_total",
		Help: "SSH connections refused before a game started",
	}, []string{"reason"}) // "rate_limit", "no_pty"

	gamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snake_games_finished_total",
		Help: "Runs that reached a terminal state",
	}, []string{"outcome"}) // "self", "wall", "grid_full"

	finalScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "snake_final_score",
		Help:    "Score at the end of a run",
		Buckets: []float64{0, 3, 6, 10, 14, 18, 22, 32, 64, 128},
	})

	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "snake_tick_duration_seconds",
		Help:    "Time spent simulating and rendering one tick",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})
)

// SessionStarted records a new SSH session.
func SessionStarted() {
	sessionsActive.Inc()
	sessionsTotal.Inc()
}

// SessionEnded records a closed SSH session.
func SessionEnded() {
	sessionsActive.Dec()
}

// RecordConnectionRejected increments the rejection counter.
// reason must be one of: "rate_limit", "no_pty"
func RecordConnectionRejected(reason string) {
	connectionsRejected.WithLabelValues(reason).Inc()
}

// RecordGameFinished records how a run ended and its score.
func RecordGameFinished(outcome string, score int) {
	gamesFinished.WithLabelValues(outcome).Inc()
	finalScore.Observe(float64(score))
}

// RecordTick records tick timing.
func RecordTick(duration time.Duration) {
	tickDuration.Observe(duration.Seconds())
}
