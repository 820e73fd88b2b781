package starburst

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"patgen/colors"
	"patgen/param"
	"patgen/raster"
)

type LinesCmd struct {
	param.Dims
	raster.Output

	NumLines        int    `help:"Number of spokes" default:"6"`
	LineLength      int    `help:"Spoke length in data units, the canvas being 2·width/100 wide" default:"256"`
	LineWidth       int    `help:"Spoke width in points" default:"5"`
	LineColor       string `help:"Spoke color, a color name or #RRGGBB" default:"black"`
	BackgroundColor string `help:"Background color, a color name or #RRGGBB" default:"white"`
	CenterX         int    `help:"Center offset to the right, in hundredths of a data unit" default:"0"`
	CenterY         int    `help:"Center offset upwards, in hundredths of a data unit" default:"0"`

	params LinesParams
}

type ColorsCmd struct {
	param.Dims
	raster.Output

	NumTriangles int     `help:"Number of wedges" default:"6"`
	Color1       string  `name:"color1" help:"Color of even wedges, a color name or #RRGGBB" default:"white"`
	Color2       string  `name:"color2" help:"Color of odd wedges, a color name or #RRGGBB" default:"black"`
	CenterX      int     `help:"Center offset to the right, in hundredths of a data unit" default:"0"`
	CenterY      int     `help:"Center offset upwards, in hundredths of a data unit" default:"0"`
	BBoxFactor   float64 `name:"bbox-factor" help:"Wedge reach relative to the canvas half-size" default:"2"`

	params ColorsParams
}

type CLICmd struct {
	Lines  LinesCmd  `cmd:"" help:"Radial spokes around a center point"`
	Colors ColorsCmd `cmd:"" help:"Fan of triangles alternating between two colors"`
}

func (c *LinesCmd) Validate(kctx *kong.Context) error {
	if err := c.Dims.Check(); err != nil {
		return err
	}
	checks := []struct {
		name     string
		v        int
		min, max int
	}{
		{"num-lines", c.NumLines, 1, 2048},
		{"line-length", c.LineLength, 1, 512},
		{"line-width", c.LineWidth, 1, 512},
		{"center-x", c.CenterX, 0, 1024},
		{"center-y", c.CenterY, 0, 1024},
	}
	for _, ch := range checks {
		if err := param.Int(ch.name, ch.v, ch.min, ch.max); err != nil {
			return err
		}
	}
	for _, s := range []string{c.LineColor, c.BackgroundColor} {
		if err := colors.Check(s); err != nil {
			return err
		}
	}
	if _, err := c.Output.Resolve(); err != nil {
		return err
	}

	c.params = LinesParams{
		Width:      c.Width,
		Height:     c.Height,
		NumLines:   c.NumLines,
		LineLength: float64(c.LineLength),
		LineWidth:  float64(c.LineWidth),
		Line:       colors.Resolve(c.LineColor, colors.Black),
		Background: colors.Resolve(c.BackgroundColor, colors.White),
		CenterX:    float64(c.CenterX),
		CenterY:    float64(c.CenterY),
	}
	return nil
}

func (c *LinesCmd) Run() error {
	logger := slog.Default().With("pattern", "starburst-lines")
	logger.Info("generating", "width", c.Width, "height", c.Height, "lines", c.NumLines,
		"length", c.LineLength)

	if err := c.Output.Write(Lines(c.params)); err != nil {
		return fmt.Errorf("could not save starburst lines: %w", err)
	}
	logger.Info("saved", "file", c.Out)
	return nil
}

func (c *ColorsCmd) Validate(kctx *kong.Context) error {
	if err := c.Dims.Check(); err != nil {
		return err
	}
	if err := param.Int("num-triangles", c.NumTriangles, 1, 512); err != nil {
		return err
	}
	if err := param.Int("center-x", c.CenterX, 0, 512); err != nil {
		return err
	}
	if err := param.Int("center-y", c.CenterY, 0, 512); err != nil {
		return err
	}
	if err := param.Float("bbox-factor", c.BBoxFactor, 0, 2); err != nil {
		return err
	}
	for _, s := range []string{c.Color1, c.Color2} {
		if err := colors.Check(s); err != nil {
			return err
		}
	}
	if _, err := c.Output.Resolve(); err != nil {
		return err
	}

	c.params = ColorsParams{
		Width:        c.Width,
		Height:       c.Height,
		NumTriangles: c.NumTriangles,
		Color1:       colors.Resolve(c.Color1, colors.White),
		Color2:       colors.Resolve(c.Color2, colors.Black),
		CenterX:      float64(c.CenterX),
		CenterY:      float64(c.CenterY),
		BBoxFactor:   c.BBoxFactor,
	}
	return nil
}

func (c *ColorsCmd) Run() error {
	logger := slog.Default().With("pattern", "starburst-colors")
	logger.Info("generating", "width", c.Width, "height", c.Height, "triangles", c.NumTriangles,
		"bbox_factor", c.BBoxFactor)

	if err := c.Output.Write(Colors(c.params)); err != nil {
		return fmt.Errorf("could not save starburst colors: %w", err)
	}
	logger.Info("saved", "file", c.Out)
	return nil
}
