package raster

import (
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/vec"
)

// DPI ties data units and point sizes to pixels: shape patterns place one
// data unit every DPI pixels and measure line widths in points.
const DPI = 100

// Points converts a length in points to pixels.
func Points(pt float64) float64 {
	return pt * DPI / 72
}

// Viewport maps a data rectangle with y pointing up onto a canvas with row 0
// at the top.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
	Width      int
	Height     int
}

// Transform returns the data to pixel affine map.
func (v Viewport) Transform() f64.Aff3 {
	sx := float64(v.Width) / (v.XMax - v.XMin)
	sy := float64(v.Height) / (v.YMax - v.YMin)
	return f64.Aff3{
		sx, 0, -v.XMin * sx,
		0, -sy, v.YMax * sy,
	}
}

// Apply maps a data point to pixel coordinates.
func (v Viewport) Apply(p vec.Vec2) vec.Vec2 {
	return apply(v.Transform(), p)
}

func apply(m f64.Aff3, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}
