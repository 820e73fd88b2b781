package raster

import (
	"image"
	"image/color"
	"math"

	"patgen/palette"
	"patgen/parallel"
)

// Field is a row-major grid of scalars awaiting palette mapping.
type Field struct {
	Width, Height int
	V             []float64
}

func NewField(width, height int) *Field {
	return &Field{Width: width, Height: height, V: make([]float64, width*height)}
}

func (f *Field) At(col, row int) float64 {
	return f.V[row*f.Width+col]
}

func (f *Field) Set(col, row int, v float64) {
	f.V[row*f.Width+col] = v
}

// Range returns the smallest and largest finite value in the field.
func (f *Field) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.V {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// Normalizer maps [lo,hi] onto [0,1]. An empty range maps everything to 0.
func Normalizer(lo, hi float64) func(float64) float64 {
	if hi <= lo {
		return func(float64) float64 { return 0 }
	}
	scale := 1 / (hi - lo)
	return func(v float64) float64 { return (v - lo) * scale }
}

// Colorize normalizes the field by its own range and maps it through r.
func (f *Field) Colorize(r palette.Ramp, workers parallel.Workers) *image.RGBA {
	norm := Normalizer(f.Range())
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	Fill(img, workers, func(col, row int) color.RGBA {
		return r.At(norm(f.At(col, row)))
	})
	return img
}
