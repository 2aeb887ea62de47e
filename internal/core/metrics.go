package core

import "time"

// Recorder defines the interface for recording application metrics.
// Implementations include Metrics (Prometheus-based) and NoopMetrics (no-op).
type Recorder interface {
	// Email/password flows
	RecordSignIn(provider string, success bool, duration time.Duration)
	RecordSignUp(provider, result string, duration time.Duration)
	RecordSignOut(success bool)

	// Social sign-in
	RecordOAuthCallback(provider string, success bool)

	// Session guard
	RecordSessionLookup(result string, duration time.Duration)

	// Form validation
	RecordValidationFailure(form string)

	// Periodic gauges
	SetActiveSessionsCount(count int64)
	RecordDatabaseQueryError(operation string)
}
