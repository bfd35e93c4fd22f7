package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Batch-processing counters exposed on /metrics. Everything here is
// monotonic; rates and ratios are derived in dashboards.
var (
	RatingUpdatesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_rating_updates_applied_total",
		Help: "Finished matches applied to the rating store",
	})

	PredictionsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictor_predictions_created_total",
		Help: "Pending predictions created, by model variant",
	}, []string{"model"})

	PredictionsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictor_predictions_resolved_total",
		Help: "Predictions resolved against final results, by model variant and correctness",
	}, []string{"model", "correct"})

	SweepItemFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_sweep_item_failures_total",
		Help: "Per-item failures skipped during batch sweeps",
	})
)
