// Package metrics defines and registers all custom Prometheus metrics for the
// UZEED marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "uzeed"

// ── Realtime metrics ──────────────────────────────────────────────────────────

// RealtimeConnections tracks the number of currently open live-update streams.
var RealtimeConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "realtime_connections",
		Help:      "Number of currently open live-update connections.",
	},
)

// RealtimeConnectionsRejectedTotal counts stream opens refused by the
// per-user connection cap.
var RealtimeConnectionsRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "realtime_connections_rejected_total",
		Help:      "Total number of stream opens rejected by the per-user cap.",
	},
)

// EventsEmittedTotal counts realtime events pushed through the hub.
// Labels:
//   - type: event type (e.g. "presence:update", "message:new")
//   - mode: "targeted" or "broadcast"
var EventsEmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "realtime_events_emitted_total",
		Help:      "Total number of realtime events emitted, by type and delivery mode.",
	},
	[]string{"type", "mode"},
)

// PresenceFlipsTotal counts presence transitions persisted and announced.
// Label:
//   - state: "online" or "offline"
var PresenceFlipsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "presence_flips_total",
		Help:      "Total number of presence transitions, by resulting state.",
	},
	[]string{"state"},
)

// PresencePersistErrorsTotal counts storage failures while flipping the
// isOnline flag. These are logged and non-fatal.
var PresencePersistErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "presence_persist_errors_total",
		Help:      "Total number of failed presence flag writes.",
	},
)

// ── Profile-view pipeline metrics ─────────────────────────────────────────────

// ViewsQueueDepth tracks the events waiting in each view-recorder worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ViewsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "views_queue_depth",
		Help:      "Current number of profile views pending in each recorder worker channel.",
	},
	[]string{"worker_id"},
)

// ViewsDedupTotal counts view-dedup decisions.
// Label:
//   - result: "hit" (recent duplicate, skipped) or "miss" (recorded)
var ViewsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_dedup_total",
		Help:      "Total number of profile-view dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ViewsRecordedTotal counts profile views persisted to storage.
var ViewsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_recorded_total",
		Help:      "Total number of profile views persisted.",
	},
)

// ── Directory metrics ─────────────────────────────────────────────────────────

// DirectorySearchDuration measures directory search latency end-to-end.
// Label:
//   - kind: "professionals" or "establishments"
var DirectorySearchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "directory_search_duration_seconds",
		Help:      "Duration of directory searches from query to enriched result set.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"kind"},
)
