package metrics

import (
	"testing"
	"time"
)

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestNoopRecorder(_ *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome(OutcomeCanceled)
	r.AddIssues("warning", 2)
	r.SetTreeNodes("docs", 3)
	r.IncFilesWritten("yaml")
	r.IncFilesSkipped("yaml")
}
