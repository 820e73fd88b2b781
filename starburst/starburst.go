// Package starburst draws radial patterns around a center point: evenly
// spaced spokes, or a fan of triangles alternating between two colors.
package starburst

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"patgen/colors"
	"patgen/raster"
)

// LinesParams describe a spoke pattern. The canvas spans [-width/100,
// width/100] horizontally; LineLength is in those data units while CenterX
// and CenterY are in hundredths of one. LineWidth is in points.
type LinesParams struct {
	Width, Height    int
	NumLines         int
	LineLength       float64
	LineWidth        float64
	Line, Background color.RGBA
	CenterX, CenterY float64
}

type Segment struct {
	From, To vec.Vec2
}

// Spokes returns the NumLines segments, spoke i at i·360/NumLines degrees
// counter-clockwise from the positive x axis.
func Spokes(p LinesParams) []Segment {
	center := vec.Vec2{X: p.CenterX / 100, Y: p.CenterY / 100}
	step := 360 / float64(p.NumLines)

	res := make([]Segment, p.NumLines)
	for i := range res {
		res[i] = Segment{From: center, To: center.Add(polar(float64(i)*step, p.LineLength, p.LineLength))}
	}
	return res
}

func Lines(p LinesParams) *image.RGBA {
	img := raster.NewCanvas(p.Width, p.Height, p.Background)
	w, h := float64(p.Width)/100, float64(p.Height)/100
	painter := raster.NewPainter(img, raster.Viewport{
		XMin: -w, XMax: w,
		YMin: -h, YMax: h,
		Width: p.Width, Height: p.Height,
	})

	width := raster.Points(p.LineWidth)
	for _, s := range Spokes(p) {
		painter.Segment(s.From, s.To, width, p.Line)
	}
	return img
}

// ColorsParams describe a wedge fan. The canvas spans [-width/200, width/200]
// horizontally; the wedge tips lie on an ellipse BBoxFactor times the canvas
// half-extent.
type ColorsParams struct {
	Width, Height    int
	NumTriangles     int
	Color1, Color2   color.RGBA
	CenterX, CenterY float64
	BBoxFactor       float64
}

// Wedge is a triangle from the center to two consecutive ellipse points.
type Wedge struct {
	Points [3]vec.Vec2
	Color  color.RGBA
}

// Wedges returns the triangles in paint order, even indices in Color1.
func Wedges(p ColorsParams) []Wedge {
	center := vec.Vec2{X: p.CenterX / 100, Y: p.CenterY / 100}
	rx := p.BBoxFactor * float64(p.Width) / 200
	ry := p.BBoxFactor * float64(p.Height) / 200
	n := float64(p.NumTriangles)

	res := make([]Wedge, p.NumTriangles)
	for i := range res {
		c := p.Color1
		if i%2 == 1 {
			c = p.Color2
		}
		res[i] = Wedge{
			Points: [3]vec.Vec2{
				center,
				polar(float64(i)*360/n, rx, ry),
				polar(float64(i+1)*360/n, rx, ry),
			},
			Color: c,
		}
	}
	return res
}

// Colors paints the wedge fan over white.
func Colors(p ColorsParams) *image.RGBA {
	img := raster.NewCanvas(p.Width, p.Height, colors.White)
	w, h := float64(p.Width)/200, float64(p.Height)/200
	painter := raster.NewPainter(img, raster.Viewport{
		XMin: -w, XMax: w,
		YMin: -h, YMax: h,
		Width: p.Width, Height: p.Height,
	})

	for _, wd := range Wedges(p) {
		painter.Polygon(wd.Points[:], wd.Color)
	}
	return img
}

// polar returns the point at deg degrees on the ellipse with half-axes rx, ry.
func polar(deg, rx, ry float64) vec.Vec2 {
	a := deg * math.Pi / 180
	return vec.Vec2{X: rx * math.Cos(a), Y: ry * math.Sin(a)}
}
