// Package polygon tiles the canvas with regular hexagons or triangles in a
// staggered grid.
package polygon

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"patgen/param"
	"patgen/raster"
)

type Mode int

const (
	Hexagons Mode = iota
	Triangles
)

var modeNames = []string{"hexagons", "triangles"}

func (m Mode) String() string {
	return modeNames[m]
}

// Vertices is the number of corners of the tiled polygon.
func (m Mode) Vertices() int {
	if m == Triangles {
		return 3
	}
	return 6
}

func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if s == n {
			return Mode(i), nil
		}
	}
	return 0, param.Enum("mode", s, modeNames...)
}

// Params describe a tiling. LineWidth is in points; zero disables the
// outline.
type Params struct {
	Width, Height int
	Mode          Mode
	Rows, Columns int
	Face, Line    color.RGBA
	LineWidth     float64
}

// Placement is one polygon of the tiling, in data units with 100 pixels per
// unit and y pointing up.
type Placement struct {
	Row, Col int
	Center   vec.Vec2
	Radius   float64
}

// Cell returns the horizontal and vertical spacing of polygon centers.
func Cell(p Params) (width, height float64) {
	w, h := float64(p.Width)/raster.DPI, float64(p.Height)/raster.DPI
	width = w / float64(p.Columns)
	height = (w / h) * math.Sqrt(3) * h / (2 * float64(p.Columns))
	return width, height
}

// Layout returns (Rows+2)·(Columns+2) placements in paint order. Odd rows are
// shifted right by half a cell.
func Layout(p Params) []Placement {
	cellWidth, cellHeight := Cell(p)
	radius := cellWidth / 1.732

	res := make([]Placement, 0, (p.Rows+2)*(p.Columns+2))
	for row := range p.Rows + 2 {
		for col := range p.Columns + 2 {
			x := float64(col) * cellWidth
			if row%2 == 1 {
				x += cellWidth / 2
			}
			res = append(res, Placement{
				Row:    row,
				Col:    col,
				Center: vec.Vec2{X: x, Y: float64(row) * cellHeight},
				Radius: radius,
			})
		}
	}
	return res
}

// Outline returns the n corners of a regular polygon with the first corner
// straight above center, counter-clockwise.
func Outline(center vec.Vec2, radius float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for k := range n {
		a := math.Pi/2 + 2*math.Pi*float64(k)/float64(n)
		pts[k] = center.Add(vec.Vec2{X: math.Cos(a), Y: math.Sin(a)}.Mul(radius))
	}
	return pts
}

// Draw fills every placement with Face and strokes it with Line, centered on
// the outline with mitered corners. Each polygon is filled and stroked before
// the next one is painted.
func Draw(p Params) *image.RGBA {
	img := raster.NewCanvas(p.Width, p.Height, color.White)
	painter := raster.NewPainter(img, raster.Viewport{
		XMax:  float64(p.Width) / raster.DPI,
		YMax:  float64(p.Height) / raster.DPI,
		Width: p.Width, Height: p.Height,
	})

	n := p.Mode.Vertices()
	// A miter corner sits half a line width from both edges, which is
	// half/cos(π/n) along the corner's radius.
	miter := raster.Points(p.LineWidth) / raster.DPI / 2 / math.Cos(math.Pi/float64(n))

	for _, pl := range Layout(p) {
		painter.Polygon(Outline(pl.Center, pl.Radius, n), p.Face)
		if p.LineWidth <= 0 {
			continue
		}

		outer := Outline(pl.Center, pl.Radius+miter, n)
		var inner []vec.Vec2
		if pl.Radius > miter {
			inner = Outline(pl.Center, pl.Radius-miter, n)
		}
		painter.Ring(outer, inner, p.Line)
	}
	return img
}
