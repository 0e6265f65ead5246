package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for the /metrics endpoint. Registered on the default registry.
var (
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sgm_simulations_total",
		Help: "Simulation runs, by outcome.",
	}, []string{"outcome"})

	SimulationPeriods = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sgm_simulation_periods",
		Help:    "Period counts of completed simulation runs.",
		Buckets: prometheus.ExponentialBuckets(10, 4, 6),
	})
)
