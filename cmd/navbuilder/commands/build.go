package commands

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/diagnostics"
	naverrors "git.home.luguber.info/inful/navbuilder/internal/errors"
	"git.home.luguber.info/inful/navbuilder/internal/generate"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string   `short:"o" help:"Override output.directory"`
	Format []string `short:"f" help:"Override output.formats (json, yaml, hugo)" sep:","`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if err := b.applyOverrides(cfg); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	result, err := generate.New(cfg).Run(ctx)
	if err != nil {
		if result != nil && len(result.Diagnostics.Issues) > 0 {
			_ = diagnostics.NewTextFormatter().Format(g.stderr(), result.Diagnostics)
		}
		return err
	}
	printSummary(g.stdout(), result)
	return nil
}

// applyOverrides applies flag overrides and validates the result.
func (b *BuildCmd) applyOverrides(cfg *config.Config) error {
	if b.Output != "" {
		abs, err := filepath.Abs(b.Output)
		if err != nil {
			return fmt.Errorf("resolve output: %w", err)
		}
		cfg.Output.Directory = abs
		slog.Info("Output directory overridden via CLI flag", "path", abs)
	}
	if len(b.Format) > 0 {
		formats := make([]config.Format, 0, len(b.Format))
		for _, f := range b.Format {
			n := config.NormalizeFormat(f)
			if n == "" {
				return naverrors.ValidationFailed("format", fmt.Sprintf("unknown format %q (supported: json, yaml, hugo)", f))
			}
			formats = append(formats, n)
		}
		cfg.Output.Formats = formats
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return naverrors.ConfigInvalid("command line overrides", err)
	}
	return nil
}

// printSummary writes a short human-readable report of a successful run.
func printSummary(w io.Writer, result *generate.Result) {
	for _, t := range result.Trees {
		_, _ = fmt.Fprintf(w, "Built sidebar %q (%d nodes)\n", t.Name, t.Nodes)
	}
	for _, issue := range result.Diagnostics.Issues {
		_, _ = fmt.Fprintf(w, "  %s %s: %s\n", issue.Severity, issue.Path, issue.Message)
	}
	for _, f := range result.Files {
		state := "unchanged"
		if f.Written {
			state = "written"
		}
		_, _ = fmt.Fprintf(w, "  %-5s %s (%s)\n", f.Format, f.Path, state)
	}
	_, _ = fmt.Fprintf(w, "Done in %s [%s]\n", result.Duration.Round(time.Millisecond), result.Status)
}
