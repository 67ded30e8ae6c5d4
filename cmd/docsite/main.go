package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/cmd/docsite/commands"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("docsite"),
		kong.Description("Load, validate and inspect documentation site definitions."),
		kong.Vars{"version": version.String()},
		commands.DefaultVars,
		kong.UsageOnError(),
	)

	// AfterApply has installed the default logger by now.
	err := parser.Run(commands.NewGlobal(slog.Default()))
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
