package commands

import (
	"fmt"

	"git.home.luguber.info/inful/navbuilder/internal/diagnostics"
	"git.home.luguber.info/inful/navbuilder/internal/generate"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Strict bool   `help:"Treat duplicate references as errors"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if v.Strict {
		cfg.Validation.StrictDuplicates = true
	}

	ctx, cancel := signalContext()
	defer cancel()

	result, runErr := generate.New(cfg).Check(ctx)
	if result != nil {
		formatter := diagnostics.NewFormatter(v.Format)
		if err := formatter.Format(g.stdout(), result.Diagnostics); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}
	return runErr
}
