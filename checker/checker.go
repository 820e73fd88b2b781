// Package checker tiles the canvas with square cells in two colors.
package checker

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
	// Regular is the classic checkerboard.
	Regular Mode = iota
	// Stepped compares cell indices modulo Step, giving diagonal bands.
	Stepped
)

var modeNames = []string{"regular", "stepped"}

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

// Params describe a checker pattern. Cells are width/GridFrequency pixels
// wide, a fractional size included, and Step is only used by Stepped.
type Params struct {
	Width, Height  int
	Color1, Color2 color.RGBA
	GridFrequency  int
	Step           int
	Mode           Mode
}

func Draw(p Params, workers parallel.Workers) *image.RGBA {
	gridSize := float64(p.Width) / float64(p.GridFrequency)
	cell := func(i int) int {
		return int(math.Floor(float64(i) / gridSize))
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	raster.Fill(img, workers, func(col, row int) color.RGBA {
		ci, cj := cell(col), cell(row)

		var first bool
		switch p.Mode {
		case Regular:
			first = ci%2 == cj%2
		case Stepped:
			first = ci%p.Step != cj%p.Step
		}
		if first {
			return p.Color1
		}
		return p.Color2
	})
	return img
}
