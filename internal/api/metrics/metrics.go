// Package metrics defines and registers all custom Prometheus metrics for the
// admin system. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome ("success" or "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// TokenRejectionsTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing_header", "bad_header", "invalid_token", "revoked"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected for credential problems.",
	},
	[]string{"reason"},
)

// ── Mutation metrics ──────────────────────────────────────────────────────────

// MutationsTotal counts successful create/update/delete operations.
// Labels:
//   - entity: "user" or "department"
//   - action: "create", "update", "delete", "status", "reset-password"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of successful entity mutations.",
	},
	[]string{"entity", "action"},
)

// ── Audit trail metrics ───────────────────────────────────────────────────────

// AuditProcessedTotal counts audit entries persisted successfully.
var AuditProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_processed_total",
		Help:      "Total number of audit entries successfully persisted.",
	},
	[]string{"entity", "action"},
)

// AuditErrorsTotal counts audit entries that failed to persist.
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit entries that failed processing.",
	},
	[]string{"reason"},
)

// AuditQueueDepth tracks the number of entries waiting in each worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditProcessingDuration measures how long a single entry takes from dequeue
// to persistence.
var AuditProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_processing_duration_seconds",
		Help:      "Duration of audit entry processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"entity"},
)
