package gradient

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

	Mode        string `help:"Gradient shape" enum:"linear,radial" default:"linear"`
	StartColor  string `help:"Color at the start of the axis or at the center, a color name or #RRGGBB" default:"white"`
	EndColor    string `help:"Color at the end of the axis or at the corners, a color name or #RRGGBB" default:"black"`
	Orientation string `help:"Axis of a linear gradient" enum:"vertical,horizontal" default:"vertical"`

	params Params
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Dims.Check(); err != nil {
		return err
	}
	for _, s := range []string{c.StartColor, c.EndColor} {
		if err := colors.Check(s); err != nil {
			return err
		}
	}
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return err
	}
	orientation, err := ParseOrientation(c.Orientation)
	if err != nil {
		return err
	}
	if _, err := c.Output.Resolve(); err != nil {
		return err
	}

	c.params = Params{
		Width:       c.Width,
		Height:      c.Height,
		Start:       colors.Resolve(c.StartColor, colors.White),
		End:         colors.Resolve(c.EndColor, colors.Black),
		Mode:        mode,
		Orientation: orientation,
	}
	return nil
}

func (c *CLICmd) Run(workers parallel.Workers) error {
	logger := slog.Default().With("pattern", "gradient")
	logger.Info("generating", "width", c.Width, "height", c.Height, "mode", c.params.Mode,
		"orientation", c.params.Orientation)

	if err := c.Output.Write(Draw(c.params, workers)); err != nil {
		return fmt.Errorf("could not save gradient: %w", err)
	}
	logger.Info("saved", "file", c.Out)
	return nil
}
