package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/navbuilder/cmd/navbuilder/commands"
	naverrors "git.home.luguber.info/inful/navbuilder/internal/errors"
	"git.home.luguber.info/inful/navbuilder/internal/version"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{Out: os.Stdout, Err: os.Stderr}

	ctx := kong.Parse(&cli,
		kong.Name("navbuilder"),
		kong.Description("Validate documentation sidebars and export them for static-site generators."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)

	if err := ctx.Run(global, &cli); err != nil {
		naverrors.NewCLIErrorAdapter(cli.Verbose, nil).HandleError(err)
	}
}
