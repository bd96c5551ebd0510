package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogsmith/cmd/blogsmith/commands"
	"git.home.luguber.info/inful/blogsmith/internal/version"
)

func main() {
	cli := commands.CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("blogsmith"),
		kong.Description("Deterministic blog compiler: dated documents in, ordered page set out."),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
