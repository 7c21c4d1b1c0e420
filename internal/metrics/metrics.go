package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readiness_assessments_scored_total",
			Help: "Total number of assessments scored, by verdict",
		},
		[]string{"verdict"},
	)

	OverallScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "readiness_overall_score",
			Help:    "Distribution of overall readiness scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	ValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "readiness_validation_failures_total",
			Help: "Total number of submissions rejected for out-of-range answers",
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readiness_cache_lookups_total",
			Help: "Report cache lookups, by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

// ObserveReport records a scored assessment.
func ObserveReport(verdict string, overall int) {
	AssessmentsScored.WithLabelValues(verdict).Inc()
	OverallScore.Observe(float64(overall))
}
