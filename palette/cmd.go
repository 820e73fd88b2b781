package palette

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"patgen/param"
)

// ExportCmd samples a palette into a RIFF PAL file that --palette-file
// options, and other tools, can read back.
type ExportCmd struct {
	Name   string `arg:"" help:"Palette name, a trailing _r reverses it"`
	Colors int    `help:"Number of colors to sample" default:"16"`
	Out    string `help:"Destination PAL file, defaults to <name>.pal" short:"o" type:"path"`

	ramp Ramp
}

func (c *ExportCmd) Validate(kctx *kong.Context) error {
	if err := param.Int("colors", c.Colors, 2, 256); err != nil {
		return err
	}
	ramp, err := Lookup(c.Name)
	if err != nil {
		return err
	}
	c.ramp = ramp
	if c.Out == "" {
		c.Out = c.Name + ".pal"
	}
	return nil
}

func (c *ExportCmd) Run() (err error) {
	logger := slog.Default().With("palette", c.Name, "file", c.Out)

	outFile, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", c.Out, err)
	}
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close palette file %q: %w", c.Out, defErr)
		}
	}()

	if _, err = WriteTo(outFile, []color.Palette{c.ramp.Sample(c.Colors)}); err != nil {
		return fmt.Errorf("could not write palette file %q: %w", c.Out, err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush palette file %q: %w", c.Out, err)
	}

	logger.Info("exported", "colors", c.Colors)
	return nil
}
