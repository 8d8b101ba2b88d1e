// Package metrics defines and registers all custom Prometheus metrics for
// the playground API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto
// at package init; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "playground"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "rate_limited"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts successful registrations.
// Label:
//   - role: "admin" or "user"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// PasswordChangesTotal counts password change attempts by outcome.
// Label:
//   - result: "success" or "rejected"
var PasswordChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of password change attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditEventsProcessedTotal counts audit events persisted successfully.
// Label:
//   - kind: audit event kind (e.g. "login_failure")
var AuditEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_processed_total",
		Help:      "Total number of audit events successfully persisted.",
	},
	[]string{"kind"},
)

// AuditEventsFailedTotal counts audit events whose persistence failed.
var AuditEventsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_failed_total",
		Help:      "Total number of audit events that failed to persist.",
	},
)

// AuditEventsDroppedTotal counts audit events dropped because a worker
// channel was full.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped due to backpressure.",
	},
)

// AuditQueueDepth tracks the current number of events waiting in each worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
