package layout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	invalidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arbor_layout_invalidations_total",
		Help: "Layout invalidations by kind (measure, arrange).",
	}, []string{"kind"})

	passesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arbor_layout_passes_total",
		Help: "Measure and arrange computations that missed the cache.",
	}, []string{"phase"})

	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arbor_layout_pass_duration_seconds",
		Help:    "Duration of queued layout passes.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
)
