package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lepinkainen/dupefinder/cmd"
	"github.com/lepinkainen/dupefinder/types"
	"github.com/lepinkainen/dupefinder/utils"
)

var Version = "dev"

type CLI struct {
	LogFile string           `name:"log-file" help:"Write diagnostics to this file (rotated)" env:"DUPEFINDER_LOG_FILE" type:"path"`
	Verbose bool             `short:"v" help:"Log diagnostics to stderr"`
	Ver     kong.VersionFlag `name:"version" help:"Print version and exit"`

	Resolutions cmd.ResolutionsCmd `cmd:"" help:"List image resolutions in a directory"`
	Scan        cmd.ScanCmd        `cmd:"" help:"Find near-duplicate images and pick which to keep"`
	Export      cmd.ExportCmd      `cmd:"" help:"Export the largest image of every duplicate group"`
}

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dupefinder"),
		kong.Description("Find near-duplicate images by comparing shrunken thumbnails."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)

	appCtx := &types.AppContext{
		Version: Version,
		Logger:  utils.NewLogger(cli.LogFile, cli.Verbose),
	}

	err := ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}
