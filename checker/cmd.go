package checker

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"patgen/colors"
	"patgen/param"
	"patgen/parallel"
	"patgen/raster"
)

type CLICmd struct {
	param.Dims
	raster.Output

	Mode          string `help:"Tiling rule" enum:"regular,stepped" default:"regular"`
	Color1        string `name:"color1" help:"First cell color, a color name or #RRGGBB" default:"white"`
	Color2        string `name:"color2" help:"Second cell color, a color name or #RRGGBB" default:"black"`
	GridFrequency int    `help:"Number of cells across the canvas width" default:"8"`
	Step          int    `help:"Index modulus for the stepped rule" default:"2"`

	params Params
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Dims.Check(); err != nil {
		return err
	}
	if err := param.Int("grid-frequency", c.GridFrequency, 1, 200); err != nil {
		return err
	}
	if err := param.Int("step", c.Step, 2, 200); err != nil {
		return err
	}
	for _, s := range []string{c.Color1, c.Color2} {
		if err := colors.Check(s); err != nil {
			return err
		}
	}
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return err
	}
	if _, err := c.Output.Resolve(); err != nil {
		return err
	}

	c.params = Params{
		Width:         c.Width,
		Height:        c.Height,
		Color1:        colors.Resolve(c.Color1, colors.White),
		Color2:        colors.Resolve(c.Color2, colors.Black),
		GridFrequency: c.GridFrequency,
		Step:          c.Step,
		Mode:          mode,
	}
	return nil
}

func (c *CLICmd) Run(workers parallel.Workers) error {
	logger := slog.Default().With("pattern", "checker")
	logger.Info("generating", "width", c.Width, "height", c.Height, "mode", c.params.Mode,
		"grid_frequency", c.GridFrequency)

	if err := c.Output.Write(Draw(c.params, workers)); err != nil {
		return fmt.Errorf("could not save checker: %w", err)
	}
	logger.Info("saved", "file", c.Out)
	return nil
}
