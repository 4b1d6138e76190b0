// Package watch rebuilds navigation whenever the sidebar description or the
// docs directory changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/docstore"
	"git.home.luguber.info/inful/navbuilder/internal/generate"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
)

// Runner performs one generation run.
type Runner interface {
	Run(ctx context.Context) (*generate.Result, error)
}

// ResultHandler receives the outcome of every run.
type ResultHandler func(*generate.Result, error)

// Watcher monitors the description file and the docs tree and triggers
// debounced rebuilds. Rebuilds run on the goroutine that called Run, one
// at a time.
type Watcher struct {
	sidebarsPath string
	docsDir      string
	outputDir    string
	runner       Runner
	debounce     time.Duration
	onResult     ResultHandler
	watcher      *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce interval from the configuration.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithResultHandler registers a callback invoked after every run.
func WithResultHandler(h ResultHandler) Option {
	return func(w *Watcher) { w.onResult = h }
}

// New creates a watcher for the paths in cfg.
func New(cfg *config.Config, runner Runner, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	sidebars, err := filepath.Abs(cfg.Sidebars)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve sidebars path: %w", err)
	}
	w := &Watcher{
		sidebarsPath: sidebars,
		runner:       runner,
		debounce:     cfg.Watch.DebounceDuration(),
		watcher:      fw,
	}
	if cfg.Docs != "" {
		if w.docsDir, err = filepath.Abs(cfg.Docs); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to resolve docs path: %w", err)
		}
	}
	if cfg.Output.Directory != "" {
		if w.outputDir, err = filepath.Abs(cfg.Output.Directory); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to resolve output path: %w", err)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run performs an initial build, then rebuilds after changes until ctx is
// canceled. Build failures are reported to the result handler and logged;
// they do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	// Watch the directory containing the description (more reliable than
	// watching the file, editors replace files on save).
	if err := w.watcher.Add(filepath.Dir(w.sidebarsPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.sidebarsPath), err)
	}
	if w.docsDir != "" {
		if err := w.addTree(w.docsDir); err != nil {
			return err
		}
	}

	slog.Info("Watching for changes",
		logfields.File(w.sidebarsPath), logfields.Path(w.docsDir),
		slog.Duration("debounce", w.debounce))

	w.rebuild(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watcher")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
			if event.Has(fsnotify.Create) {
				w.maybeAddDir(event.Name)
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", logfields.Error(err))

		case <-timer.C:
			w.rebuild(ctx)
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context) {
	result, err := w.runner.Run(ctx)
	if err != nil && ctx.Err() == nil {
		slog.Warn("Rebuild failed, waiting for further changes", logfields.Error(err))
	}
	if w.onResult != nil {
		w.onResult(result, err)
	}
}

// relevant reports whether event can change the generated navigation.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	if name == w.sidebarsPath {
		return true
	}
	if w.outputDir != "" && within(w.outputDir, name) {
		return false
	}
	if w.docsDir == "" || !within(w.docsDir, name) {
		return false
	}
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	// Removed or renamed paths can no longer be inspected, directories
	// included, so any of them counts.
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		return true
	}
	return docstore.IsDocFile(base) || strings.HasPrefix(base, "_category_") || filepath.Ext(base) == ""
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if w.outputDir != "" && within(w.outputDir, p) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}

// maybeAddDir starts watching a directory created inside the docs tree.
func (w *Watcher) maybeAddDir(name string) {
	if w.docsDir == "" || !within(w.docsDir, name) {
		return
	}
	if err := w.addTree(name); err != nil {
		slog.Debug("Not watching new path", logfields.Path(name), logfields.Error(err))
	}
}

func within(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
