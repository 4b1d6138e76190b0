package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherFamilies(t *testing.T, reg *prom.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		out[mf.GetName()] = mf
	}
	return out
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.AddIssues("warning", 3)
	pr.AddIssues("error", 0)
	pr.SetTreeNodes("docs", 12)
	pr.SetTreeNodes("docs", 14)
	pr.IncFilesWritten("json")
	pr.IncFilesSkipped("hugo")

	mfs := gatherFamilies(t, reg)

	outcomes := mfs["navbuilder_build_outcomes_total"]
	require.NotNil(t, outcomes)
	assert.InDelta(t, 2, outcomes.GetMetric()[0].GetCounter().GetValue(), 0)

	issues := mfs["navbuilder_issues_total"]
	require.NotNil(t, issues)
	require.Len(t, issues.GetMetric(), 1, "zero additions must not create a series")
	assert.InDelta(t, 3, issues.GetMetric()[0].GetCounter().GetValue(), 0)

	nodes := mfs["navbuilder_tree_nodes"]
	require.NotNil(t, nodes)
	assert.InDelta(t, 14, nodes.GetMetric()[0].GetGauge().GetValue(), 0)

	hist := mfs["navbuilder_build_duration_seconds"]
	require.NotNil(t, hist)
	assert.Equal(t, uint64(1), hist.GetMetric()[0].GetHistogram().GetSampleCount())

	assert.Contains(t, mfs, "navbuilder_files_written_total")
	assert.Contains(t, mfs, "navbuilder_files_skipped_total")
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveBuildDuration(time.Second)
		pr.IncBuildOutcome(OutcomeFailed)
		pr.AddIssues("error", 1)
		pr.SetTreeNodes("docs", 1)
		pr.IncFilesWritten("json")
		pr.IncFilesSkipped("json")
	})
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncBuildOutcome(OutcomeWarning)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `navbuilder_build_outcomes_total{outcome="warning"} 1`)
}
