package polygon

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"patgen/colors"
	"patgen/param"
	"patgen/raster"
)

type CLICmd struct {
	param.Dims
	raster.Output

	Mode      string `help:"Polygon shape" enum:"hexagons,triangles" default:"hexagons"`
	Rows      int    `help:"Number of rows" default:"5"`
	Columns   int    `help:"Number of columns" default:"5"`
	FaceColor string `help:"Fill color, a color name or #RRGGBB" default:"white"`
	LineColor string `help:"Outline color, a color name or #RRGGBB" default:"black"`
	LineWidth int    `help:"Outline width in points, 0 disables it" default:"2"`

	params Params
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Dims.Check(); err != nil {
		return err
	}
	if err := param.Int("rows", c.Rows, 1, 512); err != nil {
		return err
	}
	if err := param.Int("columns", c.Columns, 1, 512); err != nil {
		return err
	}
	if err := param.Int("line-width", c.LineWidth, 0, 512); err != nil {
		return err
	}
	for _, s := range []string{c.FaceColor, c.LineColor} {
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
		Width:     c.Width,
		Height:    c.Height,
		Mode:      mode,
		Rows:      c.Rows,
		Columns:   c.Columns,
		Face:      colors.Resolve(c.FaceColor, colors.White),
		Line:      colors.Resolve(c.LineColor, colors.Black),
		LineWidth: float64(c.LineWidth),
	}
	return nil
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("pattern", "polygons")
	logger.Info("generating", "width", c.Width, "height", c.Height, "mode", c.params.Mode,
		"rows", c.Rows, "columns", c.Columns)
	logger.Debug("layout", "placements", (c.Rows+2)*(c.Columns+2))

	if err := c.Output.Write(Draw(c.params)); err != nil {
		return fmt.Errorf("could not save polygons: %w", err)
	}
	logger.Info("saved", "file", c.Out)
	return nil
}
