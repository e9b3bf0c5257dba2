// Package metrics defines and registers all custom Prometheus metrics for
// the todo API. It is the single source of truth for metric names, labels,
// and help strings; registration happens implicitly through promauto at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todo"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure covers unknown email and wrong
//     password alike; the label never distinguishes them)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts newly created tasks.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created.",
	},
)

// TaskTogglesTotal counts completion toggles.
// Label:
//   - action: "completed" or "reopened"
var TaskTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_toggles_total",
		Help:      "Total number of completion toggles, labelled by resulting action.",
	},
	[]string{"action"},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivityProcessedTotal counts activity entries persisted by the workers.
// Label:
//   - action: task action recorded ("created", "completed", ...)
var ActivityProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_processed_total",
		Help:      "Total number of activity entries successfully persisted.",
	},
	[]string{"action"},
)

// ActivityErrorsTotal counts activity entries that failed processing.
// Label:
//   - reason: short failure description (e.g. "insert_failed", "queue_full")
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity entries that failed processing.",
	},
	[]string{"reason"},
)

// ActivityQueueDepth tracks entries waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of entries pending in each activity worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityProcessingDuration measures per-entry persistence latency.
// Label:
//   - action: task action recorded
var ActivityProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_processing_duration_seconds",
		Help:      "Duration of activity entry processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"action"},
)
