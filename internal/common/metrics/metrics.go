// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	AssessmentsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_scored_total",
			Help: "Assessments scored, by assessment type",
		},
		[]string{"assessment_type"},
	)

	ResponseValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_validation_failures_total",
			Help: "Response sets that failed validation, by assessment type",
		},
		[]string{"assessment_type"},
	)

	CompatibilityLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compatibility_lookups_total",
			Help: "Compatibility lookups, by whether the pair was in the table",
		},
		[]string{"source"},
	)

	RemindersSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reassessment_reminders_total",
			Help: "Reassessment reminders, by channel and status",
		},
		[]string{"channel", "status"},
	)

	ResultCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_result_cache_requests_total",
			Help: "Result cache lookups, by outcome",
		},
		[]string{"outcome"},
	)
)
