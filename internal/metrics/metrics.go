package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mentor_relay"

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route and status code",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request handling duration",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "route"})

	// Webhook
	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "webhook",
		Name:      "events_total",
		Help:      "Relayer webhook deliveries by outcome",
	}, []string{"result"})

	RateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the rate limiter",
	}, []string{"route"})

	// Relay
	RelaySubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "relay",
		Name:      "submissions_total",
		Help:      "Relayer submissions by outcome",
	}, []string{"result"})

	RelayPollAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "relay",
		Name:      "poll_attempts",
		Help:      "Relayer fetches needed until a transaction hash was available",
		Buckets:   []float64{1, 2, 3, 4, 5},
	})

	// Reconciler
	ReconcilerCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "cycles_total",
		Help:      "Total reconciliation cycles",
	})

	ReconcilerTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "transactions_total",
		Help:      "Reconciled transactions by outcome",
	}, []string{"result"})

	ReconcilerCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "cycle_duration_seconds",
		Help:      "Reconciliation cycle duration",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	})

	// Messaging
	StatusPublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "messaging",
		Name:      "publish_errors_total",
		Help:      "Status events that failed to publish",
	})
)

// Outcome labels
const (
	ResultProcessed        = "processed"
	ResultIgnored          = "ignored"
	ResultMalformed        = "malformed"
	ResultOversized        = "oversized"
	ResultInvalidSignature = "invalid_signature"
	ResultFailed           = "failed"
	ResultSuccess          = "success"
	ResultUnchanged        = "unchanged"
	ResultUpdated          = "updated"
)
