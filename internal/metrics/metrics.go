package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes.
const (
	OutcomeAccepted   = "accepted"
	OutcomeIncomplete = "incomplete"
	OutcomeDuplicate  = "duplicate"
	OutcomeClosed     = "closed"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "classroom",
		Name:      "submissions_total",
		Help:      "Evaluation submissions by outcome.",
	}, []string{"outcome"})

	SubmissionScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "classroom",
		Name:      "submission_score",
		Help:      "Final score of accepted submissions.",
		Buckets:   []float64{1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5},
	})

	CodeRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "classroom",
		Name:      "code_runs_total",
		Help:      "Code editor executions by provider and result.",
	}, []string{"provider", "result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "classroom",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Handler exposes the default registry for scraping.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
