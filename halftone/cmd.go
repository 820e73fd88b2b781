package halftone

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/alecthomas/kong"

	"patgen/colors"
	"patgen/palette"
	"patgen/param"
	"patgen/raster"
)

// customBackground selects the --background-r/g/b channels.
const customBackground = "custom"

type CLICmd struct {
	param.Dims
	raster.Output

	DotStyle     string  `help:"Palette name, a trailing _r reverses it" default:"viridis"`
	PaletteFile  string  `help:"RIFF PAL file to use as the palette instead of --dot-style" type:"path"`
	Reverse      bool    `help:"Reverse the palette" default:"false"`
	DotFrequency int     `help:"Dots per lattice row and column" default:"50"`
	Background   string  `help:"Background color name, #RRGGBB, or custom to use the channel flags" default:"custom"`
	BackgroundR  uint8   `name:"background-r" help:"Red channel of a custom background" default:"255" group:"custom background"`
	BackgroundG  uint8   `name:"background-g" help:"Green channel of a custom background" default:"255" group:"custom background"`
	BackgroundB  uint8   `name:"background-b" help:"Blue channel of a custom background" default:"255" group:"custom background"`
	XPos         float64 `help:"Horizontal focus position in [0,1]" default:"0.5"`
	YPos         float64 `help:"Vertical focus position in [0,1], measured upwards" default:"0.5"`

	params Params
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Dims.Check(); err != nil {
		return err
	}
	if err := param.Int("dot-frequency", c.DotFrequency, 1, 200); err != nil {
		return err
	}
	if err := param.Float("x-pos", c.XPos, 0, 1); err != nil {
		return err
	}
	if err := param.Float("y-pos", c.YPos, 0, 1); err != nil {
		return err
	}

	bg := color.RGBA{R: c.BackgroundR, G: c.BackgroundG, B: c.BackgroundB, A: 0xFF}
	if c.Background != customBackground {
		if err := colors.Check(c.Background); err != nil {
			return err
		}
		bg = colors.Resolve(c.Background, colors.White)
	}

	ramp, err := palette.Resolve(c.DotStyle, c.PaletteFile)
	if err != nil {
		return err
	}
	if _, err := c.Output.Resolve(); err != nil {
		return err
	}

	c.params = Params{
		Width:        c.Width,
		Height:       c.Height,
		Ramp:         ramp,
		Reverse:      c.Reverse,
		DotFrequency: c.DotFrequency,
		XPos:         c.XPos,
		YPos:         c.YPos,
		Background:   bg,
	}
	return nil
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("pattern", "halftone")
	logger.Info("generating", "width", c.Width, "height", c.Height, "palette", c.params.Ramp.Name,
		"reverse", c.Reverse, "dots", c.DotFrequency*c.DotFrequency)

	if err := c.Output.Write(Draw(c.params)); err != nil {
		return fmt.Errorf("could not save halftone: %w", err)
	}
	logger.Info("saved", "file", c.Out)
	return nil
}
