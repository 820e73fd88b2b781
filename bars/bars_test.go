package bars

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"patgen/colors"
	"patgen/palette"
	"patgen/param"
)

var red = color.RGBA{R: 255, A: 255}

func TestColorBars(t *testing.T) {
	type probe struct {
		x, y int
		want color.RGBA
	}
	testCases := []struct {
		name   string
		p      ColorParams
		probes []probe
	}{
		{
			name: "vertical",
			p:    ColorParams{Width: 100, Height: 64, Color1: red, Color2: colors.Black, Orientation: Vertical, Frequency: 5},
			probes: []probe{
				{0, 0, red}, {19, 63, red}, {20, 0, colors.Black}, {39, 10, colors.Black}, {40, 0, red}, {60, 0, colors.Black}, {99, 0, red},
			},
		},
		{
			name: "horizontal",
			p:    ColorParams{Width: 64, Height: 100, Color1: red, Color2: colors.Black, Orientation: Horizontal, Frequency: 5},
			probes: []probe{
				{63, 0, red}, {0, 19, red}, {0, 20, colors.Black}, {0, 40, red},
			},
		},
		{
			name: "diagonal",
			p:    ColorParams{Width: 100, Height: 100, Color1: red, Color2: colors.Black, Orientation: Diagonal, Frequency: 5},
			probes: []probe{
				{0, 0, red}, {39, 0, red}, {40, 0, colors.Black}, {20, 20, colors.Black}, {0, 39, red}, {40, 40, red},
			},
		},
		{
			name: "diagonal narrower than a pixel",
			p:    ColorParams{Width: 64, Height: 64, Color1: red, Color2: colors.Black, Orientation: Diagonal, Frequency: 200},
			probes: []probe{
				{0, 0, red}, {1, 0, colors.Black}, {1, 1, red}, {0, 3, colors.Black},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := ColorBars(tc.p, 1)
			if b := img.Bounds(); b.Dx() != tc.p.Width || b.Dy() != tc.p.Height {
				t.Fatalf("bounds %v, want %dx%d", b, tc.p.Width, tc.p.Height)
			}
			for _, pr := range tc.probes {
				if got := img.RGBAAt(pr.x, pr.y); got != pr.want {
					t.Errorf("pixel (%d,%d) = %v, want %v", pr.x, pr.y, got, pr.want)
				}
			}
		})
	}
}

func TestDiagonalWidth(t *testing.T) {
	testCases := []struct {
		barHeight float64
		want      int
	}{
		{20, 40},
		{102.4, 204},
		{0.5, 1},
		{0.32, 1},
	}
	for _, tc := range testCases {
		if got := DiagonalWidth(tc.barHeight); got != tc.want {
			t.Errorf("DiagonalWidth(%g) = %d, want %d", tc.barHeight, got, tc.want)
		}
	}
}

func TestColorBarsWorkersAgree(t *testing.T) {
	p := ColorParams{Width: 300, Height: 211, Color1: red, Color2: colors.White, Orientation: Diagonal, Frequency: 7}
	one := ColorBars(p, 1)
	four := ColorBars(p, 4)
	if diff := cmp.Diff(one.Pix, four.Pix); diff != "" {
		t.Errorf("worker count changed the output (-1 +4):\n%s", diff)
	}
}

func TestStyleField(t *testing.T) {
	gray, err := palette.Lookup("gray")
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name  string
		p     StyleParams
		col   int
		row   int
		want  float64
		exact bool
	}{
		{"bands start low", StyleParams{Width: 101, Height: 64, Orientation: Vertical, Frequency: 5, Mode: ColorBands}, 0, 0, 0, true},
		{"bands boundary belongs to next band", StyleParams{Width: 101, Height: 64, Orientation: Vertical, Frequency: 5, Mode: ColorBands}, 20, 5, 1, true},
		{"bands before boundary", StyleParams{Width: 101, Height: 64, Orientation: Vertical, Frequency: 5, Mode: ColorBands}, 19, 5, 0, true},
		{"horizontal bands follow rows", StyleParams{Width: 64, Height: 101, Orientation: Horizontal, Frequency: 5, Mode: ColorBands}, 63, 20, 1, true},
		{"sine at origin", StyleParams{Width: 65, Height: 64, Orientation: Vertical, Frequency: 1, Mode: SineWave}, 0, 0, 0, true},
		{"sine quarter period", StyleParams{Width: 65, Height: 64, Orientation: Vertical, Frequency: 1, Mode: SineWave}, 16, 0, 1, false},
		{"sawtooth half way", StyleParams{Width: 65, Height: 64, Orientation: Vertical, Frequency: 1, Mode: GradientBars}, 32, 7, 1, true},
		{"sawtooth wraps at the end", StyleParams{Width: 65, Height: 64, Orientation: Vertical, Frequency: 1, Mode: GradientBars}, 64, 0, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.p.Ramp = gray
			got := StyleField(tc.p, 1).At(tc.col, tc.row)
			if tc.exact && got != tc.want {
				t.Errorf("field(%d,%d) = %g, want %g", tc.col, tc.row, got, tc.want)
			}
			if !tc.exact && math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("field(%d,%d) = %g, want ~%g", tc.col, tc.row, got, tc.want)
			}
		})
	}
}

func TestStyleFieldIsPure(t *testing.T) {
	p := StyleParams{Width: 128, Height: 96, Orientation: Vertical, Frequency: 5, Mode: ColorBands}
	first := StyleField(p, 1)
	second := StyleField(p, 4)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated sampling differs (-first +second):\n%s", diff)
	}
	for _, v := range first.V {
		if v != 0 && v != 1 {
			t.Fatalf("color bands produced level %g, want 0 or 1", v)
		}
	}
}

func TestStyleBarsUsesRamp(t *testing.T) {
	gray, err := palette.Lookup("gray")
	if err != nil {
		t.Fatal(err)
	}
	p := StyleParams{Width: 100, Height: 64, Ramp: gray, Orientation: Vertical, Frequency: 5, Mode: ColorBands}
	img := StyleBars(p, 2)
	if got := img.RGBAAt(0, 0); got != colors.Black {
		t.Errorf("low band = %v, want black", got)
	}
	if got := img.RGBAAt(30, 0); got != colors.White {
		t.Errorf("high band = %v, want white", got)
	}
}

func TestParse(t *testing.T) {
	if o, err := ParseOrientation("diagonal"); err != nil || o != Diagonal {
		t.Errorf("ParseOrientation(diagonal) = %v, %v", o, err)
	}
	if m, err := ParseMode("sin-wave"); err != nil || m != SineWave {
		t.Errorf("ParseMode(sin-wave) = %v, %v", m, err)
	}
	if _, err := ParseMode("zigzag"); !errors.Is(err, param.ErrInvalid) {
		t.Errorf("ParseMode(zigzag) error = %v, want ErrInvalid", err)
	}
	if _, err := ParseOrientation("Vertical"); !errors.Is(err, param.ErrInvalid) {
		t.Errorf("ParseOrientation(Vertical) error = %v, want ErrInvalid", err)
	}
}
