// Package metrics defines and registers all custom Prometheus metrics for
// the CraftLink community API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at import time via promauto;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "craftlink"

// ── Request ledger metrics ────────────────────────────────────────────────────

// RequestsCreatedTotal counts newly opened requests.
// Label:
//   - kind: "collaboration" or "mentorship"
var RequestsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of collaboration/mentorship requests created, by kind.",
	},
	[]string{"kind"},
)

// RequestResponsesTotal counts recipient decisions on pending requests.
// Label:
//   - decision: "accept" or "reject"
var RequestResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_responses_total",
		Help:      "Total number of request responses applied, by decision.",
	},
	[]string{"decision"},
)

// ── Conversation metrics ──────────────────────────────────────────────────────

// MessagesSentTotal counts stored chat messages.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of chat messages persisted.",
	},
)

// ChatStreamSessions tracks currently open websocket chat streams.
var ChatStreamSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "chat_stream_sessions",
		Help:      "Number of websocket chat subscriptions currently open.",
	},
)

// ── AI tool metrics ───────────────────────────────────────────────────────────

// AIToolDuration measures provider round-trip time per tool.
// Labels:
//   - tool: "image", "speech_to_text", "text_to_speech", "ideas"
//   - outcome: "ok" or "error"
var AIToolDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_tool_duration_seconds",
		Help:      "Duration of AI provider calls from request to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"tool", "outcome"},
)
