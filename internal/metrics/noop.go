package metrics

import "time"

// NoopMetrics is a no-operation implementation of Recorder
// All methods are empty and do nothing, providing zero overhead when metrics are disabled
type NoopMetrics struct{}

var _ Recorder = (*NoopMetrics)(nil)

func NewNoopMetrics() Recorder {
	return &NoopMetrics{}
}

func (n *NoopMetrics) RecordSignIn(provider string, success bool, duration time.Duration) {}
func (n *NoopMetrics) RecordSignUp(provider, result string, duration time.Duration)       {}
func (n *NoopMetrics) RecordSignOut(success bool)                                         {}
func (n *NoopMetrics) RecordOAuthCallback(provider string, success bool)                  {}
func (n *NoopMetrics) RecordSessionLookup(result string, duration time.Duration)          {}
func (n *NoopMetrics) RecordValidationFailure(form string)                                {}
func (n *NoopMetrics) SetActiveSessionsCount(count int64)                                 {}
func (n *NoopMetrics) RecordDatabaseQueryError(operation string)                          {}
