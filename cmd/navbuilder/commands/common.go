package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	naverrors "git.home.luguber.info/inful/navbuilder/internal/errors"
)

// Global carries process-wide writers into subcommands.
type Global struct {
	Out io.Writer
	Err io.Writer
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Global) stderr() io.Writer {
	if g == nil || g.Err == nil {
		return os.Stderr
	}
	return g.Err
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"navbuilder.yaml" env:"NAVBUILDER_CONFIG"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" help:"Build sidebars and write the configured exports"`
	Validate ValidateCmd `cmd:"" help:"Check sidebars and references without writing output"`
	Init     InitCmd     `cmd:"" help:"Initialize a configuration and an example sidebar file"`
	Watch    WatchCmd    `cmd:"" help:"Rebuild sidebars whenever the description or docs change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the configuration and classifies failures for exit codes.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return nil, naverrors.ConfigNotFound(path)
		}
		return nil, naverrors.ConfigInvalid(path, err)
	}
	return cfg, nil
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
