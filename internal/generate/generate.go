// Package generate runs one navigation generation: load the sidebar
// description, build and verify it, then export every configured format.
// The CLI build and validate commands and watch mode all route through
// Generator.
package generate

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/diagnostics"
	"git.home.luguber.info/inful/navbuilder/internal/docstore"
	naverrors "git.home.luguber.info/inful/navbuilder/internal/errors"
	"git.home.luguber.info/inful/navbuilder/internal/export"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
	"git.home.luguber.info/inful/navbuilder/internal/navtree"
	"git.home.luguber.info/inful/navbuilder/internal/observability"
	"git.home.luguber.info/inful/navbuilder/internal/sidebarfile"
)

// Generator executes generation runs for one configuration. It holds no
// state between runs and is safe to reuse.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
	newRunID func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder (default NoopRecorder).
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithRunIDFunc overrides run id generation (tests).
func WithRunIDFunc(fn func() string) Option {
	return func(g *Generator) { g.newRunID = fn }
}

// New returns a Generator for cfg.
func New(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run builds, verifies and exports the configured sidebars. The returned
// Result is non-nil even when err is set and carries the diagnostics
// gathered so far.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	return g.run(ctx, true)
}

// Check builds and verifies the configured sidebars without writing
// anything.
func (g *Generator) Check(ctx context.Context) (*Result, error) {
	return g.run(ctx, false)
}

func (g *Generator) run(ctx context.Context, write bool) (*Result, error) {
	start := time.Now()
	result := &Result{
		RunID:       g.newRunID(),
		StartTime:   start,
		Diagnostics: &diagnostics.Result{},
	}
	ctx = observability.WithRunID(ctx, result.RunID)

	if g.cfg == nil {
		return g.finish(ctx, result, naverrors.InternalError("generator has no configuration", nil))
	}
	result.Diagnostics.Source = g.cfg.Sidebars

	// Stage 1: load the description and the docs directory
	ctx = observability.WithStage(ctx, "load")
	if err := ctx.Err(); err != nil {
		return g.finish(ctx, result, naverrors.Canceled(err))
	}
	desc, err := sidebarfile.Load(g.cfg.Sidebars)
	if err != nil {
		result.Diagnostics.Add(diagnostics.FromError(err)...)
		return g.finish(ctx, result, naverrors.DescriptionInvalid(g.cfg.Sidebars, err))
	}

	var store *docstore.Store
	if g.cfg.Docs != "" {
		store, err = docstore.Open(g.cfg.Docs)
		if err != nil {
			return g.finish(ctx, result, naverrors.FileSystem("index docs", g.cfg.Docs, err))
		}
		observability.DebugContext(ctx, "Indexed docs directory",
			logfields.Path(store.Root()), logfields.Count(store.Len()))
	}

	// Stage 2: build
	ctx = observability.WithStage(ctx, "build")
	if err := ctx.Err(); err != nil {
		return g.finish(ctx, result, naverrors.Canceled(err))
	}
	sidebars, warnings, err := g.builder(store).BuildAll(desc)
	if err != nil {
		result.Diagnostics.Add(diagnostics.FromError(err)...)
		return g.finish(ctx, result, naverrors.SidebarInvalid(err))
	}
	result.Sidebars = sidebars
	result.Warnings = warnings
	result.Diagnostics.Add(diagnostics.FromWarnings(warnings)...)
	for _, w := range warnings {
		observability.WarnContext(ctx, "Duplicate document reference",
			logfields.NodePath(w.Path.String()), logfields.DocID(string(w.Ref)))
	}
	for _, t := range sidebars.Trees() {
		result.Trees = append(result.Trees, TreeSummary{Name: t.Name(), Nodes: t.Count()})
		result.Diagnostics.Sidebars++
		result.Diagnostics.Nodes += t.Count()
	}

	// Stage 3: verify references
	if store != nil {
		ctx = observability.WithStage(ctx, "verify")
		if err := ctx.Err(); err != nil {
			return g.finish(ctx, result, naverrors.Canceled(err))
		}
		if err := g.verify(result, sidebars, store); err != nil {
			return g.finish(ctx, result, err)
		}
	}

	if !write {
		return g.finish(ctx, result, nil)
	}

	// Stage 4: export
	ctx = observability.WithStage(ctx, "export")
	if err := ctx.Err(); err != nil {
		return g.finish(ctx, result, naverrors.Canceled(err))
	}
	var labeler export.Labeler
	if store != nil {
		labeler = store
	}
	if err := g.export(ctx, result, sidebars, labeler); err != nil {
		return g.finish(ctx, result, err)
	}

	return g.finish(ctx, result, nil)
}

func (g *Generator) builder(store *docstore.Store) *navtree.Builder {
	opts := []navtree.Option{
		navtree.WithAllowEmptyCategories(g.cfg.Validation.AllowEmptyCategories),
		navtree.WithStrictDuplicates(g.cfg.Validation.StrictDuplicates),
	}
	if store != nil {
		opts = append(opts, navtree.WithExpander(store))
	}
	return navtree.NewBuilder(opts...)
}

// verify checks references against the store. Unresolved references are
// errors when resolvability is required and warnings otherwise.
func (g *Generator) verify(result *Result, sidebars *navtree.Sidebars, store *docstore.Store) error {
	err := navtree.VerifyAll(sidebars, store)
	if err == nil {
		return nil
	}
	issues := diagnostics.FromError(err)
	if !g.cfg.Validation.RequireResolvable {
		for i := range issues {
			issues[i].Severity = diagnostics.SeverityWarning
		}
		result.Diagnostics.Add(issues...)
		return nil
	}
	result.Diagnostics.Add(issues...)
	return naverrors.UnresolvedReferences(len(navtree.UnresolvedRefs(err)), err)
}

func (g *Generator) finish(ctx context.Context, result *Result, err error) (*Result, error) {
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	switch {
	case err != nil && ctx.Err() != nil:
		result.Status = StatusCanceled
	case err != nil:
		result.Status = StatusFailed
	case result.Diagnostics.WarningCount() > 0:
		result.Status = StatusWarning
	default:
		result.Status = StatusSuccess
	}

	g.recorder.ObserveBuildDuration(result.Duration)
	g.recorder.IncBuildOutcome(result.Status.outcome())
	for _, sev := range []diagnostics.Severity{diagnostics.SeverityError, diagnostics.SeverityWarning, diagnostics.SeverityInfo} {
		g.recorder.AddIssues(sev.Label(), countSeverity(result.Diagnostics, sev))
	}
	if err == nil {
		for _, t := range result.Trees {
			g.recorder.SetTreeNodes(t.Name, t.Nodes)
		}
	}

	attrs := []slog.Attr{
		logfields.Outcome(string(result.Status)),
		logfields.DurationMS(float64(result.Duration)/float64(time.Millisecond)),
		logfields.Count(len(result.Trees)),
	}
	if err != nil {
		observability.ErrorContext(ctx, "Navigation generation failed", append(attrs, logfields.Error(err))...)
		return result, err
	}
	observability.InfoContext(ctx, "Navigation generation complete", attrs...)
	return result, nil
}

func countSeverity(r *diagnostics.Result, sev diagnostics.Severity) int {
	switch sev {
	case diagnostics.SeverityError:
		return r.ErrorCount()
	case diagnostics.SeverityWarning:
		return r.WarningCount()
	default:
		return r.InfoCount()
	}
}
