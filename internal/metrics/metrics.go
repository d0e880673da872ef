package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess labels predictions that produced a 200 envelope.
	OutcomeSuccess = "success"
	// OutcomeError labels predictions rejected by validation or failed internally.
	OutcomeError = "error"
)

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exoplanet_api",
			Name:      "predictions_total",
			Help:      "Total number of prediction requests handled, partitioned by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	predictionDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "exoplanet_api",
			Name:      "prediction_seconds",
			Help:      "Prediction request latency in seconds.",
			Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"endpoint"},
	)
)

// Register attaches the API collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		predictionsTotal,
		predictionDurationSeconds,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObservePrediction records one prediction request's duration and outcome.
func ObservePrediction(endpoint string, duration time.Duration, outcome string) {
	label := outcome
	if label != OutcomeError {
		label = OutcomeSuccess
	}
	predictionsTotal.WithLabelValues(endpoint, label).Inc()
	if duration < 0 {
		duration = 0
	}
	predictionDurationSeconds.WithLabelValues(endpoint).Observe(duration.Seconds())
}
