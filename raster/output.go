package raster

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"patgen/palette"
	"patgen/param"
)

// Output holds the destination flags shared by every command.
type Output struct {
	Out    string `help:"Destination file" short:"o" type:"path" default:"pattern.png"`
	Format string `help:"Output format, auto derives it from the file extension" enum:"auto,png,jpeg,gif,bmp,tiff" default:"auto"`
	Reduce string `help:"RIFF PAL file whose colors the image is reduced to before encoding" type:"path" group:"reduce"`
	Dither bool   `help:"Apply dithering when reducing colors" default:"false" group:"reduce"`
	Match  string `help:"Color distance used when reducing colors" enum:"rgb,oklab" default:"rgb" group:"reduce"`
}

// Resolve returns the concrete format to encode with.
func (o *Output) Resolve() (Format, error) {
	f, err := ParseFormat(o.Format)
	if err != nil {
		return Auto, err
	}
	if f == Auto {
		return FormatOf(o.Out)
	}
	return f, nil
}

// Write encodes img into a temporary file next to the destination and renames
// it into place once encoding succeeded.
func (o *Output) Write(img image.Image) (err error) {
	format, err := o.Resolve()
	if err != nil {
		return err
	}

	if o.Reduce != "" {
		pal, err := palette.ReadFile(o.Reduce)
		if err != nil {
			return err
		}
		if len(pal) > 256 {
			return fmt.Errorf("%w: palette %q holds %d colors, at most 256 can be used", param.ErrInvalid, o.Reduce, len(pal))
		}
		slog.Debug("reducing colors", "palette", o.Reduce, "colors", len(pal), "dither", o.Dither, "match", o.Match)
		if o.Match == "oklab" {
			img = QuantizeLab(img, pal, o.Dither)
		} else {
			img = Quantize(img, pal, o.Dither)
		}
	}

	destDir, destName := filepath.Split(o.Out)
	if destDir == "" {
		destDir = "."
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", destDir, err)
	}

	outFile, err := os.CreateTemp(destDir, "."+destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), o.Out); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	if err = outFile.Chmod(0o644); err != nil {
		return fmt.Errorf("could not set mode of %q: %w", destName, err)
	}
	if err = Encode(outFile, img, format); err != nil {
		return fmt.Errorf("could not write destination %q: %w", destName, err)
	}

	canRename = true
	return nil
}
