package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"patgen/bars"
	"patgen/checker"
	"patgen/colors"
	"patgen/gradient"
	"patgen/halftone"
	"patgen/palette"
	"patgen/parallel"
	"patgen/polygon"
	"patgen/starburst"
)

type listCmd struct {
	Palettes struct{} `cmd:"" help:"List built-in palette names"`
	Colors   struct{} `cmd:"" help:"List named colors"`
}

func (c *listCmd) Run(kctx *kong.Context) error {
	var names []string
	switch kctx.Selected().Name {
	case "palettes":
		names = palette.Names()
	case "colors":
		names = colors.Names()
	}
	_, err := fmt.Fprintln(kctx.Stdout, strings.Join(names, "\n"))
	return err
}

type CLI struct {
	Verbose bool `help:"Log debug messages" short:"v"`
	Workers int  `help:"Rows rendered in parallel, 0 uses one worker per CPU" default:"0"`

	Bars      bars.CLICmd       `cmd:"" help:"Two-color bars, vertical, horizontal or diagonal"`
	StyleBars bars.StyleCLICmd  `cmd:"" help:"Palette bars shaped as bands, a sine or a sawtooth"`
	Checker   checker.CLICmd    `cmd:"" help:"Regular or stepped checkerboard"`
	Gradient  gradient.CLICmd   `cmd:"" help:"Linear or radial two-color gradient"`
	Halftone  halftone.CLICmd   `cmd:"" help:"Dot lattice colored by distance to a focus point"`
	Polygons  polygon.CLICmd    `cmd:"" help:"Staggered hexagon or triangle tiling"`
	Starburst starburst.CLICmd  `cmd:"" help:"Radial spokes or wedges"`
	Export    palette.ExportCmd `cmd:"" name:"export-palette" help:"Sample a palette into a RIFF PAL file"`
	List      listCmd           `cmd:"" help:"List palette or color names"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("patgen"),
		kong.Description("Procedural pattern generator."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("running", "command", kctx.Command(), "workers", cli.Workers)

	if err := kctx.Run(parallel.Workers(cli.Workers)); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
