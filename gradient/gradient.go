// Package gradient interpolates between two colors along an axis or outward
// from the canvas center.
package gradient

import (
	"image"
	"image/color"
	"math"

	"patgen/param"
	"patgen/parallel"
	"patgen/raster"
)

type Mode int

const (
	Linear Mode = iota
	Radial
)

var modeNames = []string{"linear", "radial"}

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

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

var orientationNames = []string{"vertical", "horizontal"}

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

// Params describe a gradient. Orientation only applies to Linear.
type Params struct {
	Width, Height int
	Start, End    color.RGBA
	Mode          Mode
	Orientation   Orientation
}

func Draw(p Params, workers parallel.Workers) *image.RGBA {
	var position func(col, row int) float64
	switch p.Mode {
	case Linear:
		if p.Orientation == Horizontal {
			position = func(col, _ int) float64 { return raster.Axis(col, p.Width) }
		} else {
			position = func(_, row int) float64 { return raster.Axis(row, p.Height) }
		}
	case Radial:
		cx, cy := p.Width/2, p.Height/2
		reach := math.Hypot(float64(cx), float64(cy))
		position = func(col, row int) float64 {
			return math.Hypot(float64(col-cx), float64(row-cy)) / reach
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	raster.Fill(img, workers, func(col, row int) color.RGBA {
		return Interpolate(p.Start, p.End, position(col, row))
	})
	return img
}

// Interpolate blends each channel as (1-t)·a + t·b, truncated toward zero.
// t is not clamped; channels leaving [0,255] saturate.
func Interpolate(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: channel(a.R, b.R, t),
		G: channel(a.G, b.G, t),
		B: channel(a.B, b.B, t),
		A: 0xFF,
	}
}

func channel(a, b uint8, t float64) uint8 {
	v := math.Trunc((1-t)*float64(a) + t*float64(b))
	return uint8(min(max(v, 0), 255))
}
