package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	SubmissionCount    prometheus.Counter
	AcceptedCount      prometheus.Counter
	RejectedCount      prometheus.Counter
	ModerationFailures prometheus.Counter
	ModerationTime     prometheus.Histogram
}

// NewMetrics creates new Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		SubmissionCount: promauto.NewCounter(prometheus.CounterOpts{
			Name: "problem_board_submissions_total",
			Help: "Total number of problem submissions received",
		}),
		AcceptedCount: promauto.NewCounter(prometheus.CounterOpts{
			Name: "problem_board_submissions_accepted",
			Help: "Total number of submissions accepted and stored",
		}),
		RejectedCount: promauto.NewCounter(prometheus.CounterOpts{
			Name: "problem_board_submissions_rejected",
			Help: "Total number of submissions rejected by the moderation gate",
		}),
		ModerationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "problem_board_moderation_failures",
			Help: "Total number of failed moderation service calls",
		}),
		ModerationTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "problem_board_moderation_duration_seconds",
			Help:    "Time spent waiting on the moderation service",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
