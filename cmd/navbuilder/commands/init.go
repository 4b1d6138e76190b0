package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/sidebarfile"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing files"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	out := g.stdout()
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}

	sidebars := filepath.Join(filepath.Dir(root.Config), "sidebars.yaml")
	if _, err := os.Stat(sidebars); err == nil && !i.Force {
		_, _ = fmt.Fprintf(out, "Keeping existing %s\n", sidebars)
	} else {
		_, _ = fmt.Fprintf(out, "Writing example sidebars to %s\n", sidebars)
		if err := os.WriteFile(sidebars, []byte(sidebarfile.Example), 0o644); err != nil {
			return fmt.Errorf("failed to write sidebars file: %w", err)
		}
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
