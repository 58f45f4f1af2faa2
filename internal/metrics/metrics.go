// Package metrics holds the Prometheus collectors shared by the solver and
// the HTTP adapter.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solveTotal counts solver runs by outcome.
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "watersort_solve_total",
		Help: "Total solver runs by result (solved, unsolved, canceled)",
	}, []string{"result"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "watersort_solve_duration_seconds",
		Help:    "Solver run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
	})

	solveNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "watersort_solve_nodes",
		Help:    "Boards visited per solver run",
		Buckets: prometheus.ExponentialBuckets(1, 10, 8),
	})

	// pourTotal counts pour commands by whether any unit moved.
	pourTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "watersort_pour_total",
		Help: "Total pour commands by result (moved, noop, invalid)",
	}, []string{"result"})

	gamesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "watersort_games_active",
		Help: "Game sessions currently held by the server",
	})
)

// ObserveSolve records one solver run.
func ObserveSolve(result string, nodes int, d time.Duration) {
	solveTotal.WithLabelValues(result).Inc()
	solveNodes.Observe(float64(nodes))
	solveDuration.Observe(d.Seconds())
}

// ObservePour records one pour command.
func ObservePour(result string) {
	pourTotal.WithLabelValues(result).Inc()
}

// SetGamesActive reports the session count.
func SetGamesActive(n int) {
	gamesActive.Set(float64(n))
}
