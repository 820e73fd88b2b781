// Package halftone scatters a square lattice of colored dots whose color is
// the distance from a focus point, mapped through a palette.
package halftone

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"patgen/palette"
	"patgen/raster"
)

// DotRadius is the pixel radius of one dot: a 6pt marker plus half of its
// 1.5pt edge.
var DotRadius = raster.Points(3 + 0.75)

// Params describe a halftone grid. The lattice lives in the unit square with
// y pointing up; XPos and YPos place the focus in the same space.
type Params struct {
	Width, Height int
	Ramp          palette.Ramp
	Reverse       bool
	DotFrequency  int
	XPos, YPos    float64
	Background    color.RGBA
}

type Dot struct {
	Pos   vec.Vec2
	Value float64
	Color color.RGBA
}

// Lattice returns DotFrequency² dots in row-major order, bottom row first.
// Values are distances to the focus normalized by their own range.
func Lattice(p Params) []Dot {
	ramp := p.Ramp
	if p.Reverse {
		ramp = ramp.Reversed()
	}

	n := p.DotFrequency
	focus := vec.Vec2{X: p.XPos, Y: p.YPos}
	dots := make([]Dot, 0, n*n)
	lo, hi := math.Inf(1), math.Inf(-1)
	for j := range n {
		for i := range n {
			pos := vec.Vec2{X: linspace(i, n), Y: linspace(j, n)}
			d := pos.Sub(focus).Length()
			lo, hi = min(lo, d), max(hi, d)
			dots = append(dots, Dot{Pos: pos, Value: d})
		}
	}

	norm := raster.Normalizer(lo, hi)
	for k := range dots {
		dots[k].Color = ramp.At(norm(dots[k].Value))
	}
	return dots
}

// linspace is the i-th of n evenly spaced samples of [0,1].
func linspace(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func Draw(p Params) *image.RGBA {
	img := raster.NewCanvas(p.Width, p.Height, p.Background)
	painter := raster.NewPainter(img, raster.Viewport{
		XMax: 1, YMax: 1,
		Width: p.Width, Height: p.Height,
	})
	for _, d := range Lattice(p) {
		painter.Disc(d.Pos, DotRadius, d.Color)
	}
	return img
}
