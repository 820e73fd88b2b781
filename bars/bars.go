// Package bars draws banded patterns: two-color bars along an axis or a 45°
// diagonal, and palette bars whose scalar profile is a square wave, a sine or
// a sawtooth.
package bars

import (
	"image"
	"image/color"
	"math"

	"patgen/palette"
	"patgen/param"
	"patgen/parallel"
	"patgen/raster"
)

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
	Diagonal
)

var orientationNames = []string{"vertical", "horizontal", "diagonal"}

func (o Orientation) String() string {
	return orientationNames[o]
}

func ParseOrientation(s string) (Orientation, error) {
	for i, n := range orientationNames {
		if s == n {
			return Orientation(i), nil
		}
	}
	return 0, param.Enum("orientation", s, orientationNames...)
}

type Mode int

const (
	ColorBands Mode = iota
	SineWave
	GradientBars
)

var modeNames = []string{"color-bars", "sin-wave", "gradient-bars"}

func (m Mode) String() string {
	return modeNames[m]
}

func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if s == n {
			return Mode(i), nil
		}
	}
	return 0, param.Enum("mode", s, modeNames...)
}

// ColorParams describe two-color bars. Frequency is the number of bands
// across the canvas.
type ColorParams struct {
	Width, Height  int
	Color1, Color2 color.RGBA
	Orientation    Orientation
	Frequency      int
}

// ColorBars paints alternating Color1/Color2 bands, Color1 first.
func ColorBars(p ColorParams, workers parallel.Workers) *image.RGBA {
	barWidth := float64(p.Width) / float64(p.Frequency)
	barHeight := float64(p.Height) / float64(p.Frequency)

	var band func(col, row int) int
	switch p.Orientation {
	case Vertical:
		band = func(col, _ int) int { return int(math.Floor(float64(col) / barWidth)) }
	case Horizontal:
		band = func(_, row int) int { return int(math.Floor(float64(row) / barHeight)) }
	case Diagonal:
		diag := DiagonalWidth(barHeight)
		band = func(col, row int) int { return (col + row) / diag }
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	raster.Fill(img, workers, func(col, row int) color.RGBA {
		if band(col, row)%2 == 0 {
			return p.Color1
		}
		return p.Color2
	})
	return img
}

// DiagonalWidth is the width, measured along a row, of a 45° band whose
// vertical spacing is barHeight. It is never below one pixel.
func DiagonalWidth(barHeight float64) int {
	return max(1, int(barHeight/math.Tan(math.Pi/4))*2)
}

// StyleParams describe palette bars. Orientation must be Vertical or
// Horizontal.
type StyleParams struct {
	Width, Height int
	Ramp          palette.Ramp
	Orientation   Orientation
	Frequency     int
	Mode          Mode
}

// StyleField samples the bar profile for every pixel. Vertical bars vary
// along x, horizontal bars along y.
func StyleField(p StyleParams, workers parallel.Workers) *raster.Field {
	f := raster.NewField(p.Width, p.Height)
	freq := float64(p.Frequency)
	bandWidth := 1 / freq

	var profile func(coord float64) float64
	switch p.Mode {
	case ColorBands:
		profile = func(coord float64) float64 { return math.Mod(math.Floor(coord/bandWidth), 2) }
	case SineWave:
		profile = func(coord float64) float64 { return math.Sin(2 * math.Pi * freq * coord) }
	case GradientBars:
		profile = func(coord float64) float64 { return math.Mod(coord*freq*2, 2) }
	}

	parallel.Rows(workers, p.Height, func(row int) {
		for col := range p.Width {
			var coord float64
			if p.Orientation == Horizontal {
				coord = raster.Axis(row, p.Height)
			} else {
				coord = raster.Axis(col, p.Width)
			}
			f.Set(col, row, profile(coord))
		}
	})
	return f
}

// StyleBars maps StyleField through the ramp, normalized by the field's own
// range.
func StyleBars(p StyleParams, workers parallel.Workers) *image.RGBA {
	return StyleField(p, workers).Colorize(p.Ramp, workers)
}
