package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// Painter fills shapes given in data coordinates onto a canvas. Every call
// paints over what is already there, so call order is paint order.
//
// Each shape is rasterized only over its own pixel bounding box, clipped to
// the canvas.
type Painter struct {
	dst *image.RGBA
	m   f64.Aff3
	r   *vector.Rasterizer
}

func NewPainter(dst *image.RGBA, view Viewport) *Painter {
	return &Painter{
		dst: dst,
		m:   view.Transform(),
		r:   vector.NewRasterizer(0, 0),
	}
}

// Polygon fills the closed polygon through pts.
func (p *Painter) Polygon(pts []vec.Vec2, c color.Color) {
	if len(pts) < 3 {
		return
	}
	p.fill(c, p.project(pts, false))
}

// Ring fills the area between two closed outlines, inner lying inside outer.
func (p *Painter) Ring(outer, inner []vec.Vec2, c color.Color) {
	if len(outer) < 3 {
		return
	}
	if len(inner) < 3 {
		p.fill(c, p.project(outer, false))
		return
	}
	p.fill(c, p.project(outer, false), p.project(inner, true))
}

// Segment strokes the line from a to b with a projecting cap at both ends.
// width is in pixels.
func (p *Painter) Segment(a, b vec.Vec2, width float64, c color.Color) {
	a, b = apply(p.m, a), apply(p.m, b)
	d := b.Sub(a)
	if d.Length() == 0 || width <= 0 {
		return
	}

	u := d.Normalize().Mul(width / 2)
	n := u.Rot90()
	a, b = a.Sub(u), b.Add(u)
	p.fill(c, []vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// Disc fills a circle around center; radius is in pixels.
func (p *Painter) Disc(center vec.Vec2, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	o := apply(p.m, center)
	box := pixelBox(o.X-radius, o.Y-radius, o.X+radius, o.Y+radius).Intersect(p.dst.Bounds())
	if box.Empty() {
		return
	}

	p.begin(box)
	x, y := float32(o.X-float64(box.Min.X)), float32(o.Y-float64(box.Min.Y))
	r, k := float32(radius), float32(radius*kappa)
	p.r.MoveTo(x+r, y)
	p.r.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	p.r.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	p.r.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	p.r.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	p.r.ClosePath()
	p.flush(box, c)
}

// project maps pts to pixel space, optionally walking them backwards so that
// the winding cancels an enclosing subpath.
func (p *Painter) project(pts []vec.Vec2, reverse bool) []vec.Vec2 {
	n := len(pts)
	res := make([]vec.Vec2, n)
	for i, q := range pts {
		if reverse {
			i = n - 1 - i
		}
		res[i] = apply(p.m, q)
	}
	return res
}

// fill clips the closed pixel-space subpaths to the canvas and fills them
// with nonzero winding.
func (p *Painter) fill(c color.Color, subpaths ...[]vec.Vec2) {
	bounds := p.dst.Bounds()

	var clipped [][]vec.Vec2
	lo := vec.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	hi := vec.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, sp := range subpaths {
		q := clipPolygon(sp, bounds)
		if len(q) < 3 {
			continue
		}
		for _, pt := range q {
			lo.X, lo.Y = min(lo.X, pt.X), min(lo.Y, pt.Y)
			hi.X, hi.Y = max(hi.X, pt.X), max(hi.Y, pt.Y)
		}
		clipped = append(clipped, q)
	}
	if len(clipped) == 0 {
		return
	}
	box := pixelBox(lo.X, lo.Y, hi.X, hi.Y).Intersect(bounds)
	if box.Empty() {
		return
	}

	p.begin(box)
	off := vec.Vec2{X: float64(box.Min.X), Y: float64(box.Min.Y)}
	for _, q := range clipped {
		first := q[0].Sub(off)
		p.r.MoveTo(float32(first.X), float32(first.Y))
		for _, pt := range q[1:] {
			pt = pt.Sub(off)
			p.r.LineTo(float32(pt.X), float32(pt.Y))
		}
		p.r.ClosePath()
	}
	p.flush(box, c)
}

func (p *Painter) begin(box image.Rectangle) {
	p.r.Reset(box.Dx(), box.Dy())
	p.r.DrawOp = draw.Over
}

func (p *Painter) flush(box image.Rectangle, c color.Color) {
	p.r.Draw(p.dst, box, image.NewUniform(c), image.Point{})
}

// pixelBox returns the smallest integer rectangle covering the given extent.
func pixelBox(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}

// clipPolygon cuts a closed polygon to the rectangle r (Sutherland-Hodgman).
// The part of the polygon inside r keeps its winding, so rings stay rings.
func clipPolygon(pts []vec.Vec2, r image.Rectangle) []vec.Vec2 {
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)

	inside := true
	for _, q := range pts {
		if q.X < x0 || q.X > x1 || q.Y < y0 || q.Y > y1 {
			inside = false
			break
		}
	}
	if inside {
		return pts
	}

	edges := []struct {
		in  func(vec.Vec2) bool
		cut func(a, b vec.Vec2) vec.Vec2
	}{
		{func(q vec.Vec2) bool { return q.X >= x0 }, func(a, b vec.Vec2) vec.Vec2 { return atX(a, b, x0) }},
		{func(q vec.Vec2) bool { return q.X <= x1 }, func(a, b vec.Vec2) vec.Vec2 { return atX(a, b, x1) }},
		{func(q vec.Vec2) bool { return q.Y >= y0 }, func(a, b vec.Vec2) vec.Vec2 { return atY(a, b, y0) }},
		{func(q vec.Vec2) bool { return q.Y <= y1 }, func(a, b vec.Vec2) vec.Vec2 { return atY(a, b, y1) }},
	}

	res := pts
	for _, e := range edges {
		if len(res) == 0 {
			return nil
		}
		in := res
		res = make([]vec.Vec2, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.in(cur) && e.in(prev):
				res = append(res, cur)
			case e.in(cur):
				res = append(res, e.cut(prev, cur), cur)
			case e.in(prev):
				res = append(res, e.cut(prev, cur))
			}
			prev = cur
		}
	}
	return res
}

func atX(a, b vec.Vec2, x float64) vec.Vec2 {
	t := (x - a.X) / (b.X - a.X)
	return vec.Vec2{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func atY(a, b vec.Vec2, y float64) vec.Vec2 {
	t := (y - a.Y) / (b.Y - a.Y)
	return vec.Vec2{X: a.X + t*(b.X-a.X), Y: y}
}
