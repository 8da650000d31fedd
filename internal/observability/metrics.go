package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "walktrack_sessions_started_total",
		Help: "Total tracking sessions started",
	})
	SessionsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "walktrack_sessions_completed_total",
		Help: "Total tracking sessions completed",
	})
	StepsDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "walktrack_steps_detected_total",
		Help: "Total steps registered by the detector",
	})
	SampleBatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "walktrack_sample_batches_total",
		Help: "Total accelerometer sample batches ingested",
	})
	LocationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "walktrack_location_failures_total",
		Help: "Location fix failures by reason",
	}, []string{"reason"})
	CollectorReadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "walktrack_collector_read_errors_total",
		Help: "Background collector sensor read failures",
	})
	SessionDistanceKm = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "walktrack_session_distance_km",
		Help:    "Distance per completed session in kilometers",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	})
)
