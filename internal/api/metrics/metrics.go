// Package metrics defines all custom Prometheus metrics for the badge
// issuing API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "badgeforge"

// ── Issuing metrics ───────────────────────────────────────────────────────────

// AssertionsIssuedTotal counts badges awarded.
// Label:
//   - recipient_type: "email", "url", "id", or "telephone"
var AssertionsIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assertions_issued_total",
		Help:      "Total number of badge assertions issued, by recipient type.",
	},
	[]string{"recipient_type"},
)

// AssertionsRevokedTotal counts revocations.
var AssertionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assertions_revoked_total",
		Help:      "Total number of badge assertions revoked.",
	},
)

// ValidationRejectionsTotal counts field-keyed validation failures.
// Label:
//   - field: the rejected field path (e.g. "issuer", "recipient.identity")
var ValidationRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Total number of requests rejected by field validation.",
	},
	[]string{"field"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// EventsProcessedTotal counts audit events that completed processing.
// Label:
//   - action: "issued" or "revoked"
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of badge audit events successfully processed.",
	},
	[]string{"action"},
)

// EventsErrorsTotal counts audit events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of badge audit events that failed processing.",
	},
	[]string{"reason"},
)

// EventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// EventsQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventProcessingDuration measures how long a single audit event takes to
// process end-to-end.
// Label:
//   - action: "issued" or "revoked", or "error" on failure
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of audit event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"action"},
)
