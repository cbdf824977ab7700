// Package metrics provides Prometheus metrics for the avatar cockpit gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GrantsIssued tracks the total number of LiveKit grants issued.
	GrantsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cockpit_grants_issued_total",
			Help: "Total number of LiveKit access grants issued",
		},
	)

	// GrantFailures tracks grant requests that did not produce a token.
	GrantFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cockpit_grant_failures_total",
			Help: "Total number of failed grant requests by reason",
		},
		[]string{"reason"},
	)

	// TokenGenerationDuration tracks token signing time.
	TokenGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cockpit_token_generation_duration_seconds",
			Help:    "Duration of LiveKit token signing",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// AvatarFetches tracks avatar fetches by outcome.
	AvatarFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cockpit_avatar_fetches_total",
			Help: "Total number of avatar fetches by outcome",
		},
		[]string{"outcome"},
	)

	// AvatarFetchDuration tracks the latency of remote avatar fetches.
	AvatarFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cockpit_avatar_fetch_duration_seconds",
			Help:    "Duration of remote avatar render requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	// HTTPRequests tracks HTTP requests by route and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cockpit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cockpit_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Avatar fetch outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeNotConfigured = "not_configured"
	OutcomeNotFound      = "not_found"
	OutcomeUpstreamError = "upstream_error"
)

// RecordGrantIssued increments the issued grant counter.
func RecordGrantIssued() {
	GrantsIssued.Inc()
}

// RecordGrantFailure increments the failed grant counter for reason.
func RecordGrantFailure(reason string) {
	GrantFailures.WithLabelValues(reason).Inc()
}

// RecordAvatarFetch increments the avatar fetch counter for outcome.
func RecordAvatarFetch(outcome string) {
	AvatarFetches.WithLabelValues(outcome).Inc()
}
