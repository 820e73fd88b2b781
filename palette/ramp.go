// Package palette resolves palette names to color ramps: functions from a
// scalar in [0,1] to a color.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	clr "github.com/lucasb-eyer/go-colorful"

	"patgen/okcolor"
	"patgen/param"
)

// Space selects the color space stops are interpolated in.
type Space int

const (
	SRGB Space = iota
	OKLab
)

type Stop struct {
	Pos   float64
	Color color.RGBA
}

// Ramp is either continuous (interpolated between stops) or discrete, in
// which case [0,1] is cut into len(Stops) equal bins and positions are
// ignored.
type Ramp struct {
	Name     string
	Stops    []Stop
	Discrete bool
	Space    Space
}

// reverseSuffix is appended to a palette name to select the mirrored ramp.
const reverseSuffix = "_r"

// Lookup resolves a palette name. A trailing "_r" selects the reversed ramp.
func Lookup(name string) (Ramp, error) {
	if r, ok := builtin[name]; ok {
		return r, nil
	}
	if base, ok := strings.CutSuffix(name, reverseSuffix); ok {
		if r, ok := builtin[base]; ok {
			return r.Reversed(), nil
		}
	}
	return Ramp{}, fmt.Errorf("%w: unknown palette %q", param.ErrInvalid, name)
}

// Names lists the built-in palettes, sorted case-insensitively.
func Names() []string {
	res := make([]string, 0, len(builtin))
	for n := range builtin {
		res = append(res, n)
	}
	slices.SortFunc(res, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return res
}

// Reversed returns the mirrored ramp: At(t) of the result is At(1-t) of r.
func (r Ramp) Reversed() Ramp {
	stops := make([]Stop, len(r.Stops))
	for i, s := range r.Stops {
		stops[len(stops)-1-i] = Stop{Pos: 1 - s.Pos, Color: s.Color}
	}

	name := r.Name + reverseSuffix
	if base, ok := strings.CutSuffix(r.Name, reverseSuffix); ok {
		name = base
	}
	return Ramp{Name: name, Stops: stops, Discrete: r.Discrete, Space: r.Space}
}

// At maps t to a color. t is clamped to [0,1]; NaN maps to 0.
func (r Ramp) At(t float64) color.RGBA {
	n := len(r.Stops)
	switch {
	case n == 0:
		return color.RGBA{A: 0xFF}
	case n == 1:
		return r.Stops[0].Color
	}

	if t != t || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	if r.Discrete {
		return r.Stops[min(int(t*float64(n)), n-1)].Color
	}

	i, _ := slices.BinarySearchFunc(r.Stops, t, func(s Stop, t float64) int {
		switch {
		case s.Pos < t:
			return -1
		case s.Pos > t:
			return 1
		}
		return 0
	})
	if i == 0 {
		return r.Stops[0].Color
	}
	if i == n {
		return r.Stops[n-1].Color
	}

	lo, hi := r.Stops[i-1], r.Stops[i]
	if hi.Pos == t {
		return hi.Color
	}
	f := (t - lo.Pos) / (hi.Pos - lo.Pos)
	return r.blend(lo.Color, hi.Color, f)
}

func (r Ramp) blend(c1, c2 color.RGBA, f float64) color.RGBA {
	if r.Space == OKLab {
		return okcolor.Mix(c1, c2, f)
	}

	a, _ := clr.MakeColor(c1)
	b, _ := clr.MakeColor(c2)
	m := a.BlendRgb(b, f).Clamped()
	return color.RGBA{R: to8(m.R), G: to8(m.G), B: to8(m.B), A: 0xFF}
}

func to8(x float64) uint8 {
	return uint8(math.Round(x * 255))
}

// Resolve picks the ramp for a command: a RIFF PAL file when file is set,
// the named built-in otherwise.
func Resolve(name, file string) (Ramp, error) {
	if file != "" {
		return LoadFile(file)
	}
	return Lookup(name)
}

// Sample returns n colors taken at even steps over [0,1].
func (r Ramp) Sample(n int) color.Palette {
	pal := make(color.Palette, n)
	for i := range pal {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		pal[i] = r.At(t)
	}
	return pal
}
