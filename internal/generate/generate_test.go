package generate

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/diagnostics"
	naverrors "git.home.luguber.info/inful/navbuilder/internal/errors"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
)

type recordingRecorder struct {
	outcomes []metrics.BuildOutcome
	issues   map[string]int
	nodes    map[string]int
	written  int
	skipped  int
}

func newRecordingRecorder() *recordingRecorder {
	return &recordingRecorder{issues: map[string]int{}, nodes: map[string]int{}}
}

func (r *recordingRecorder) ObserveBuildDuration(time.Duration)     {}
func (r *recordingRecorder) IncBuildOutcome(o metrics.BuildOutcome) { r.outcomes = append(r.outcomes, o) }
func (r *recordingRecorder) AddIssues(sev string, n int)            { r.issues[sev] += n }
func (r *recordingRecorder) SetTreeNodes(s string, n int)           { r.nodes[s] = n }
func (r *recordingRecorder) IncFilesWritten(string)                 { r.written++ }
func (r *recordingRecorder) IncFilesSkipped(string)                 { r.skipped++ }

const siteSidebars = `docs:
  - type: autogenerated
    dirName: .
`

func writeSite(t *testing.T, sidebars string) *config.Config {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"docs/intro.md":          "---\ntitle: Introduction\nsidebar_position: 1\n---\nHello.\n",
		"docs/guides/index.md":   "# Guides\n",
		"docs/guides/install.md": "---\nsidebar_position: 1\n---\n# Installing\n",
		"docs/guides/upgrade.md": "---\nsidebar_position: 2\n---\n# Upgrading\n",
		"sidebars.yaml":          sidebars,
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return &config.Config{
		Version:  config.CurrentVersion,
		Sidebars: filepath.Join(root, "sidebars.yaml"),
		Docs:     filepath.Join(root, "docs"),
		Output: config.OutputConfig{
			Directory: filepath.Join(root, "out"),
			Formats:   []config.Format{config.FormatJSON, config.FormatHugo},
		},
		Validation: config.ValidationConfig{RequireResolvable: true},
	}
}

func fixedRunID() Option {
	return WithRunIDFunc(func() string { return "run-test" })
}

func TestRun_WritesExports(t *testing.T) {
	cfg := writeSite(t, siteSidebars)
	rec := newRecordingRecorder()

	result, err := New(cfg, WithRecorder(rec), fixedRunID()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "run-test", result.RunID)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, []TreeSummary{{Name: "docs", Nodes: 4}}, result.Trees)
	require.Len(t, result.Files, 2)
	assert.Equal(t, 2, result.WrittenCount())
	assert.Equal(t, filepath.Join(cfg.Output.Directory, "sidebars.json"), result.Files[0].Path)
	assert.NotEmpty(t, result.Files[0].Fingerprint)
	assert.Equal(t, "hugo", result.Files[1].Format)

	data, err := os.ReadFile(result.Files[0].Path)
	require.NoError(t, err)
	var doc struct {
		Sidebars []struct {
			Items []struct {
				Label string `json:"label"`
				Items []struct {
					ID    string `json:"id"`
					Label string `json:"label"`
				} `json:"items"`
			} `json:"items"`
		} `json:"sidebars"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	items := doc.Sidebars[0].Items
	assert.Equal(t, "Introduction", items[0].Label)
	require.Len(t, items[1].Items, 2, "index is the category link, not a child")
	assert.Equal(t, "guides/install", items[1].Items[0].ID)
	assert.Equal(t, "Installing", items[1].Items[0].Label)
	assert.Equal(t, "guides/upgrade", items[1].Items[1].ID)

	assert.Equal(t, []metrics.BuildOutcome{metrics.OutcomeSuccess}, rec.outcomes)
	assert.Equal(t, 4, rec.nodes["docs"])
	assert.Equal(t, 2, rec.written)
}

func TestRun_SkipsUnchangedFiles(t *testing.T) {
	cfg := writeSite(t, siteSidebars)
	rec := newRecordingRecorder()
	gen := New(cfg, WithRecorder(rec))

	first, err := gen.Run(context.Background())
	require.NoError(t, err)
	second, err := gen.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, second.WrittenCount())
	assert.Equal(t, first.Files[0].Fingerprint, second.Files[0].Fingerprint)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, 2, rec.skipped)

	// A label change alters the export and is written again.
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Docs, "intro.md"), []byte("# Intro v2\n"), 0o600))
	third, err := gen.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, third.WrittenCount())
	assert.NotEqual(t, first.Files[0].Fingerprint, third.Files[0].Fingerprint)
}

func TestRun_UnresolvedReferencesFail(t *testing.T) {
	cfg := writeSite(t, "docs:\n  - intro\n  - ghost\n")
	rec := newRecordingRecorder()

	result, err := New(cfg, WithRecorder(rec)).Run(context.Background())
	require.Error(t, err)
	assert.True(t, naverrors.IsCategory(err, naverrors.CategoryReference))
	assert.Equal(t, StatusFailed, result.Status)
	require.Len(t, result.Diagnostics.Issues, 1)
	assert.Equal(t, diagnostics.RuleUnresolvedReference, result.Diagnostics.Issues[0].Rule)
	assert.Equal(t, "docs[1]", result.Diagnostics.Issues[0].Path)
	assert.Empty(t, result.Files)
	assert.NoDirExists(t, cfg.Output.Directory)
	assert.Equal(t, 1, rec.issues["error"])
}

func TestRun_UnresolvedReferencesWarnWhenNotRequired(t *testing.T) {
	cfg := writeSite(t, "docs:\n  - intro\n  - ghost\n")
	cfg.Validation.RequireResolvable = false

	result, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusWarning, result.Status)
	assert.True(t, result.Status.IsSuccess())
	assert.Equal(t, 1, result.Diagnostics.WarningCount())
	assert.Equal(t, 2, result.WrittenCount())
}

func TestRun_DuplicateReferences(t *testing.T) {
	cfg := writeSite(t, "docs:\n  - intro\n  - intro\n")

	result, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusWarning, result.Status)
	require.Len(t, result.Warnings, 1)

	cfg.Validation.StrictDuplicates = true
	_, err = New(cfg).Run(context.Background())
	require.Error(t, err)
	assert.True(t, naverrors.IsCategory(err, naverrors.CategoryValidation))
}

func TestRun_MalformedDescription(t *testing.T) {
	cfg := writeSite(t, "docs:\n  - intro\n  - type: category\n    items: [intro]\n")

	result, err := New(cfg).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, naverrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
	require.Len(t, result.Diagnostics.Issues, 1)
	assert.Equal(t, diagnostics.RuleMalformedNode, result.Diagnostics.Issues[0].Rule)
	assert.Equal(t, "docs[1]", result.Diagnostics.Issues[0].Path)
	assert.Nil(t, result.Sidebars)
}

func TestRun_WithoutDocsDirectory(t *testing.T) {
	cfg := writeSite(t, "docs:\n  - anything\n")
	cfg.Docs = ""
	cfg.Validation.RequireResolvable = false

	result, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status)
}

func TestCheck_DoesNotWrite(t *testing.T) {
	cfg := writeSite(t, siteSidebars)

	result, err := New(cfg).Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 1, result.Diagnostics.Sidebars)
	assert.Equal(t, 4, result.Diagnostics.Nodes)
	assert.Empty(t, result.Files)
	assert.NoDirExists(t, cfg.Output.Directory)
}

func TestRun_Canceled(t *testing.T) {
	cfg := writeSite(t, siteSidebars)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(cfg).Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, StatusCanceled, result.Status)
}

// stageContext reports cancellation after the first live calls to Err.
type stageContext struct {
	context.Context
	live  int
	calls int
}

func (c *stageContext) Err() error {
	c.calls++
	if c.calls > c.live {
		return context.Canceled
	}
	return nil
}

func TestCheck_CanceledBeforeVerify(t *testing.T) {
	cfg := writeSite(t, "docs:\n  - intro\n  - missing\n")
	rec := newRecordingRecorder()
	// load and build see a live context, verify does not
	ctx := &stageContext{Context: context.Background(), live: 2}

	result, err := New(cfg, WithRecorder(rec)).Check(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, naverrors.CategoryRuntime, naverrors.GetCategory(err))
	assert.Equal(t, StatusCanceled, result.Status)
	assert.Len(t, result.Trees, 1)
	assert.Zero(t, result.Diagnostics.ErrorCount())
	assert.Equal(t, []metrics.BuildOutcome{metrics.OutcomeCanceled}, rec.outcomes)
}

func TestRun_MissingDescription(t *testing.T) {
	cfg := writeSite(t, siteSidebars)
	cfg.Sidebars = filepath.Join(t.TempDir(), "missing.yaml")

	result, err := New(cfg).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusFailed, result.Status)
	assert.True(t, result.Diagnostics.HasErrors())
}
