package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("trustc"),
		kong.Description("Trust to C compiler"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Build   BuildCmd   `cmd:"" help:"Build the project." aliases:"compile"`
	Check   CheckCmd   `cmd:"" help:"Report diagnostics without generating code."`
	Emit    EmitCmd    `cmd:"" help:"Compile a single file to C."`
	New     NewCmd     `cmd:"" help:"Create a new project."`
	Lsp     LspCmd     `cmd:"" help:"Run the LSP server."`
	Version VersionCmd `cmd:"" help:"Show version."`
}
