package metrics

import "time"

// ResultLabel enumerates per-directory barrel outcomes for counters.
type ResultLabel string

const (
	ResultWritten ResultLabel = "written"
	ResultEmpty   ResultLabel = "empty"
	ResultFailed  ResultLabel = "failed"
)

// OutcomeLabel enumerates whole-run outcomes.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for generation runs. Implementations
// may forward to Prometheus or elsewhere.
type Recorder interface {
	ObserveGenerationDuration(strategy string, d time.Duration)
	IncRunOutcome(outcome OutcomeLabel)
	IncBarrelResult(result ResultLabel)
	ObserveExportCount(n int)
	IncChildFailure()
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGenerationDuration(string, time.Duration) {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)                      {}
func (NoopRecorder) IncBarrelResult(ResultLabel)                     {}
func (NoopRecorder) ObserveExportCount(int)                          {}
func (NoopRecorder) IncChildFailure()                                {}
