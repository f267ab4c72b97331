package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ShafSpecs/testregen/cmd/testregen/commands"
	"github.com/ShafSpecs/testregen/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("testregen"),
		kong.Description("Regenerate embedded test regions from a fixture corpus."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()})
	ctx.FatalIfErrorf(err)
}
