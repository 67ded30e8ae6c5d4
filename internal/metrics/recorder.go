package metrics

import "time"

// OutcomeLabel enumerates load outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for definition loads. All methods must be
// safe to call on the zero value of an implementation.
type Recorder interface {
	ObserveLoadDuration(d time.Duration)
	IncLoadOutcome(outcome OutcomeLabel, category string)
	SetPluginsResolved(kind string, n int)
	SetDocsVersions(instance string, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveLoadDuration(time.Duration) {}
func (NoopRecorder) IncLoadOutcome(OutcomeLabel, string) {}
func (NoopRecorder) SetPluginsResolved(string, int) {}
func (NoopRecorder) SetDocsVersions(string, int) {}
