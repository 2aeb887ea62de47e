package metrics

import (
	"sync"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is the interface services record through.
type Recorder = core.Recorder

// Ensure Metrics implements Recorder interface at compile time
var _ Recorder = (*Metrics)(nil)

// Session lookup results
const (
	LookupFound   = "found"
	LookupMissing = "missing"
	LookupError   = "error"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// Authentication Metrics
	SignInTotal            *prometheus.CounterVec
	SignInDuration         *prometheus.HistogramVec
	SignUpTotal            *prometheus.CounterVec
	SignUpDuration         *prometheus.HistogramVec
	SignOutTotal           *prometheus.CounterVec
	OAuthCallbackTotal     *prometheus.CounterVec
	ValidationFailureTotal *prometheus.CounterVec

	// Session Metrics
	SessionLookupTotal    *prometheus.CounterVec
	SessionLookupDuration prometheus.Histogram
	SessionsActive        prometheus.Gauge

	// HTTP Request Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Database Query Metrics
	DatabaseQueryErrorsTotal *prometheus.CounterVec
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Init initializes metrics based on enabled flag
// If enabled=true, returns Prometheus-based Metrics
// If enabled=false, returns NoopMetrics (zero overhead)
// Uses sync.Once to ensure Prometheus metrics are only registered once
func Init(enabled bool) Recorder {
	if !enabled {
		return NewNoopMetrics()
	}

	once.Do(func() {
		defaultMetrics = initMetrics()
	})
	return defaultMetrics
}

// GetMetrics returns the registered Prometheus metrics, initializing them
// on first use.
func GetMetrics() *Metrics {
	once.Do(func() {
		defaultMetrics = initMetrics()
	})
	return defaultMetrics
}

// initMetrics creates and registers all Prometheus metrics
func initMetrics() *Metrics {
	return &Metrics{
		SignInTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vitta_auth_sign_in_total",
				Help: "Total number of email sign-in attempts",
			},
			[]string{"provider", "result"}, // result: success, failure
		),
		SignInDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vitta_auth_sign_in_duration_seconds",
				Help:    "Time taken by the provider to answer a sign-in",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		SignUpTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vitta_auth_sign_up_total",
				Help: "Total number of sign-up attempts",
			},
			[]string{"provider", "result"}, // result: success, already_exists, failure
		),
		SignUpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vitta_auth_sign_up_duration_seconds",
				Help:    "Time taken by the provider to answer a sign-up",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		SignOutTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vitta_auth_sign_out_total",
				Help: "Total number of sign-outs",
			},
			[]string{"result"},
		),
		OAuthCallbackTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vitta_auth_oauth_callback_total",
				Help: "Total number of OAuth callback attempts",
			},
			[]string{"provider", "result"}, // result: success, error
		),
		ValidationFailureTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vitta_form_validation_failures_total",
				Help: "Total number of rejected form submissions",
			},
			[]string{"form"}, // sign_in, sign_up
		),
		SessionLookupTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vitta_session_lookup_total",
				Help: "Total number of session lookups by guarded pages",
			},
			[]string{"result"}, // found, missing, error
		),
		SessionLookupDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vitta_session_lookup_duration_seconds",
				Help:    "Time taken to resolve a session",
				Buckets: prometheus.DefBuckets,
			},
		),
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "vitta_sessions_active",
				Help: "Current number of unexpired sessions",
			},
		),
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
		DatabaseQueryErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "database_query_errors_total",
				Help: "Total number of database query errors during metric collection",
			},
			[]string{"operation"},
		),
	}
}

func successLabel(success bool, failure string) string {
	if success {
		return resultSuccess
	}
	return failure
}

// RecordSignIn records an email sign-in attempt
func (m *Metrics) RecordSignIn(provider string, success bool, duration time.Duration) {
	m.SignInTotal.WithLabelValues(provider, successLabel(success, resultFailure)).Inc()
	m.SignInDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordSignUp records a sign-up attempt; result is success, already_exists or failure
func (m *Metrics) RecordSignUp(provider, result string, duration time.Duration) {
	m.SignUpTotal.WithLabelValues(provider, result).Inc()
	m.SignUpDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *Metrics) RecordSignOut(success bool) {
	m.SignOutTotal.WithLabelValues(successLabel(success, resultError)).Inc()
}

// RecordOAuthCallback records OAuth callback
func (m *Metrics) RecordOAuthCallback(provider string, success bool) {
	m.OAuthCallbackTotal.WithLabelValues(provider, successLabel(success, resultError)).Inc()
}

// RecordSessionLookup records a guard lookup; result is found, missing or error
func (m *Metrics) RecordSessionLookup(result string, duration time.Duration) {
	m.SessionLookupTotal.WithLabelValues(result).Inc()
	m.SessionLookupDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordValidationFailure(form string) {
	m.ValidationFailureTotal.WithLabelValues(form).Inc()
}

// SetActiveSessionsCount sets the current count of active sessions (for periodic updates)
func (m *Metrics) SetActiveSessionsCount(count int64) {
	m.SessionsActive.Set(float64(count))
}

// RecordDatabaseQueryError records a database query error during metric collection
func (m *Metrics) RecordDatabaseQueryError(operation string) {
	m.DatabaseQueryErrorsTotal.WithLabelValues(operation).Inc()
}
