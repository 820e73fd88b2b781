package bars

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"patgen/colors"
	"patgen/palette"
	"patgen/param"
	"patgen/parallel"
	"patgen/raster"
)

type CLICmd struct {
	param.Dims
	raster.Output

	Color1      string `name:"color1" help:"First bar color, a color name or #RRGGBB" default:"white"`
	Color2      string `name:"color2" help:"Second bar color, a color name or #RRGGBB" default:"black"`
	Orientation string `help:"Bar orientation" enum:"vertical,horizontal,diagonal" default:"vertical"`
	Frequency   int    `help:"Number of bars across the canvas" default:"5"`

	params ColorParams
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Dims.Check(); err != nil {
		return err
	}
	if err := param.Int("frequency", c.Frequency, 1, 200); err != nil {
		return err
	}
	for _, s := range []string{c.Color1, c.Color2} {
		if err := colors.Check(s); err != nil {
			return err
		}
	}
	orientation, err := ParseOrientation(c.Orientation)
	if err != nil {
		return err
	}
	if _, err := c.Output.Resolve(); err != nil {
		return err
	}

	c.params = ColorParams{
		Width:       c.Width,
		Height:      c.Height,
		Color1:      colors.Resolve(c.Color1, colors.White),
		Color2:      colors.Resolve(c.Color2, colors.Black),
		Orientation: orientation,
		Frequency:   c.Frequency,
	}
	return nil
}

func (c *CLICmd) Run(workers parallel.Workers) error {
	logger := slog.Default().With("pattern", "bars")
	logger.Info("generating", "width", c.Width, "height", c.Height,
		"orientation", c.params.Orientation, "frequency", c.Frequency)

	if err := c.Output.Write(ColorBars(c.params, workers)); err != nil {
		return fmt.Errorf("could not save bars: %w", err)
	}
	logger.Info("saved", "file", c.Out)
	return nil
}

type StyleCLICmd struct {
	param.Dims
	raster.Output

	Mode        string `help:"Bar profile" enum:"color-bars,sin-wave,gradient-bars" default:"color-bars"`
	BarStyle    string `help:"Palette name, a trailing _r reverses it" default:"viridis"`
	PaletteFile string `help:"RIFF PAL file to use as the palette instead of --bar-style" type:"path"`
	Orientation string `help:"Bar orientation" enum:"vertical,horizontal" default:"vertical"`
	Frequency   int    `help:"Number of bar periods across the canvas" default:"5"`

	params StyleParams
}

func (c *StyleCLICmd) Validate(kctx *kong.Context) error {
	if err := c.Dims.Check(); err != nil {
		return err
	}
	if err := param.Int("frequency", c.Frequency, 1, 200); err != nil {
		return err
	}
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return err
	}
	orientation, err := ParseOrientation(c.Orientation)
	if err != nil {
		return err
	}
	if orientation == Diagonal {
		return param.Enum("orientation", c.Orientation, "vertical", "horizontal")
	}
	ramp, err := palette.Resolve(c.BarStyle, c.PaletteFile)
	if err != nil {
		return err
	}
	if _, err := c.Output.Resolve(); err != nil {
		return err
	}

	c.params = StyleParams{
		Width:       c.Width,
		Height:      c.Height,
		Ramp:        ramp,
		Orientation: orientation,
		Frequency:   c.Frequency,
		Mode:        mode,
	}
	return nil
}

func (c *StyleCLICmd) Run(workers parallel.Workers) error {
	logger := slog.Default().With("pattern", "style-bars")
	logger.Info("generating", "width", c.Width, "height", c.Height, "mode", c.params.Mode,
		"palette", c.params.Ramp.Name, "orientation", c.params.Orientation, "frequency", c.Frequency)

	if err := c.Output.Write(StyleBars(c.params, workers)); err != nil {
		return fmt.Errorf("could not save style bars: %w", err)
	}
	logger.Info("saved", "file", c.Out)
	return nil
}
