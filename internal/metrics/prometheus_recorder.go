package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "navbuilder"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration prom.Histogram
	buildOutcome  *prom.CounterVec
	issues        *prom.CounterVec
	treeNodes     *prom.GaugeVec
	filesWritten  *prom.CounterVec
	filesSkipped  *prom.CounterVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil registry gets a private one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Total navigation build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		issues: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "issues_total",
			Help:      "Diagnostics reported by builds, by severity",
		}, []string{"severity"}),
		treeNodes: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_nodes",
			Help:      "Node count of each sidebar in the last successful build",
		}, []string{"sidebar"}),
		filesWritten: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "files_written_total",
			Help:      "Export files written, by format",
		}, []string{"format"}),
		filesSkipped: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "files_skipped_total",
			Help:      "Export files left untouched because their fingerprint matched, by format",
		}, []string{"format"}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.issues, pr.treeNodes, pr.filesWritten, pr.filesSkipped)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome BuildOutcome) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddIssues(severity string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.issues.WithLabelValues(severity).Add(float64(n))
}

func (p *PrometheusRecorder) SetTreeNodes(sidebar string, n int) {
	if p == nil {
		return
	}
	p.treeNodes.WithLabelValues(sidebar).Set(float64(n))
}

func (p *PrometheusRecorder) IncFilesWritten(format string) {
	if p == nil {
		return
	}
	p.filesWritten.WithLabelValues(format).Inc()
}

func (p *PrometheusRecorder) IncFilesSkipped(format string) {
	if p == nil {
		return
	}
	p.filesSkipped.WithLabelValues(format).Inc()
}
