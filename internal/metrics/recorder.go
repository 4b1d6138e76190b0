package metrics

import "time"

// BuildOutcome enumerates final build states for counters.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeWarning  BuildOutcome = "warning" // built, but with duplicate references
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// Recorder defines observability hooks for navigation builds.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome BuildOutcome)
	AddIssues(severity string, n int)
	SetTreeNodes(sidebar string, n int)
	IncFilesWritten(format string)
	IncFilesSkipped(format string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncBuildOutcome(BuildOutcome)       {}
func (NoopRecorder) AddIssues(string, int)              {}
func (NoopRecorder) SetTreeNodes(string, int)           {}
func (NoopRecorder) IncFilesWritten(string)             {}
func (NoopRecorder) IncFilesSkipped(string)             {}
