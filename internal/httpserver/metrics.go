package httpserver

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce      sync.Once
	verdictsTotal     *prometheus.CounterVec
	exhaustedSessions prometheus.Counter
)

// registerMetrics initialises the collectors exported on /metrics.
func registerMetrics() {
	registerOnce.Do(func() {
		verdictsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shapeguess_verdicts_total",
			Help: "Total number of evaluated guesses by outcome.",
		}, []string{"outcome"})

		exhaustedSessions = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shapeguess_sessions_exhausted_total",
			Help: "Sessions ended after too many bad shape guesses.",
		})

		prometheus.MustRegister(verdictsTotal, exhaustedSessions)
	})
}
