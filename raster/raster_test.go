package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"

	"patgen/palette"
	"patgen/param"
	"patgen/parallel"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func stripes(col, row int) color.RGBA {
	return color.RGBA{R: uint8(col), G: uint8(row), B: uint8(col ^ row), A: 255}
}

func TestFillWorkersAgree(t *testing.T) {
	one := image.NewRGBA(image.Rect(0, 0, 97, 131))
	Fill(one, 1, stripes)
	four := image.NewRGBA(image.Rect(0, 0, 97, 131))
	Fill(four, 4, stripes)

	if diff := cmp.Diff(one.Pix, four.Pix); diff != "" {
		t.Errorf("worker count changed the output (-1 +4):\n%s", diff)
	}
	if got := one.RGBAAt(10, 20); got != stripes(10, 20) {
		t.Errorf("pixel (10,20) = %v, want %v", got, stripes(10, 20))
	}
}

func TestAxis(t *testing.T) {
	testCases := []struct {
		index, extent int
		want          float64
	}{
		{0, 1, 0},
		{0, 64, 0},
		{63, 64, 1},
		{2, 5, 0.5},
	}
	for _, tc := range testCases {
		if got := Axis(tc.index, tc.extent); got != tc.want {
			t.Errorf("Axis(%d, %d) = %g, want %g", tc.index, tc.extent, got, tc.want)
		}
	}
}

func TestFieldColorize(t *testing.T) {
	gray, err := palette.Lookup("gray")
	if err != nil {
		t.Fatal(err)
	}

	f := NewField(3, 1)
	f.Set(0, 0, -2)
	f.Set(1, 0, 0)
	f.Set(2, 0, 2)
	if lo, hi := f.Range(); lo != -2 || hi != 2 {
		t.Errorf("Range() = %g, %g, want -2, 2", lo, hi)
	}

	img := f.Colorize(gray, 1)
	if got := img.RGBAAt(0, 0); got != black {
		t.Errorf("minimum maps to %v, want black", got)
	}
	if got := img.RGBAAt(2, 0); got != white {
		t.Errorf("maximum maps to %v, want white", got)
	}

	flat := NewField(4, 4)
	for i := range flat.V {
		flat.V[i] = 0.7
	}
	img = flat.Colorize(gray, 2)
	if got := img.RGBAAt(3, 3); got != black {
		t.Errorf("flat field maps to %v, want the low end", got)
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{XMin: -1, XMax: 1, YMin: -1, YMax: 1, Width: 200, Height: 100}
	testCases := []struct {
		in, want vec.Vec2
	}{
		{vec.Vec2{X: -1, Y: 1}, vec.Vec2{X: 0, Y: 0}},
		{vec.Vec2{X: 1, Y: -1}, vec.Vec2{X: 200, Y: 100}},
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 50}},
		{vec.Vec2{X: 0.5, Y: 0.5}, vec.Vec2{X: 150, Y: 25}},
	}
	for _, tc := range testCases {
		if got := v.Apply(tc.in); got != tc.want {
			t.Errorf("Apply(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func square(lo, hi float64) []vec.Vec2 {
	return []vec.Vec2{{X: lo, Y: lo}, {X: hi, Y: lo}, {X: hi, Y: hi}, {X: lo, Y: hi}}
}

func TestPainter(t *testing.T) {
	unit := Viewport{XMax: 1, YMax: 1, Width: 100, Height: 100}

	type probe struct {
		x, y int
		want color.RGBA
	}
	testCases := []struct {
		name   string
		paint  func(p *Painter)
		probes []probe
	}{
		{
			name:   "polygon",
			paint:  func(p *Painter) { p.Polygon(square(0.2, 0.8), black) },
			probes: []probe{{50, 50, black}, {25, 75, black}, {10, 10, white}, {90, 50, white}},
		},
		{
			name:   "ring",
			paint:  func(p *Painter) { p.Ring(square(0.1, 0.9), square(0.3, 0.7), black) },
			probes: []probe{{50, 50, white}, {20, 50, black}, {50, 85, black}, {5, 5, white}},
		},
		{
			name:   "segment",
			paint:  func(p *Painter) { p.Segment(vec.Vec2{X: 0.1, Y: 0.5}, vec.Vec2{X: 0.9, Y: 0.5}, 4, black) },
			probes: []probe{{50, 49, black}, {50, 50, black}, {8, 50, black}, {91, 50, black}, {5, 50, white}, {50, 40, white}},
		},
		{
			name:   "disc",
			paint:  func(p *Painter) { p.Disc(vec.Vec2{X: 0.5, Y: 0.5}, 10, black) },
			probes: []probe{{50, 50, black}, {50, 45, black}, {50, 35, white}, {62, 50, white}},
		},
		{
			name:   "segment leaving the canvas",
			paint:  func(p *Painter) { p.Segment(vec.Vec2{X: 0.5, Y: 0.5}, vec.Vec2{X: 0.5, Y: 1000}, 4, black) },
			probes: []probe{{50, 1, black}, {50, 30, black}, {50, 49, black}, {50, 55, white}, {40, 10, white}},
		},
		{
			name:   "ring straddling the corner",
			paint:  func(p *Painter) { p.Ring(square(-0.5, 0.5), square(-0.3, 0.3), black) },
			probes: []probe{{40, 80, black}, {10, 60, black}, {10, 80, white}, {10, 30, white}, {60, 80, white}},
		},
		{
			name:   "polygon off the canvas",
			paint:  func(p *Painter) { p.Polygon(square(2, 3), black) },
			probes: []probe{{0, 0, white}, {99, 99, white}, {99, 0, white}},
		},
		{
			name: "later paints over earlier",
			paint: func(p *Painter) {
				p.Polygon(square(0, 1), black)
				p.Polygon(square(0.4, 0.6), white)
			},
			probes: []probe{{50, 50, white}, {10, 10, black}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := NewCanvas(100, 100, white)
			tc.paint(NewPainter(img, unit))
			for _, pr := range tc.probes {
				if got := img.RGBAAt(pr.x, pr.y); got != pr.want {
					t.Errorf("pixel (%d,%d) = %v, want %v", pr.x, pr.y, got, pr.want)
				}
			}
		})
	}
}

func TestPNGRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 80))
	Fill(img, parallel.Workers(3), stripes)

	var buf bytes.Buffer
	if err := Encode(&buf, img, PNG); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if dec.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", dec.Bounds(), img.Bounds())
	}
	for y := range 80 {
		for x := range 64 {
			got := color.RGBAModel.Convert(dec.At(x, y)).(color.RGBA)
			if want := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFormats(t *testing.T) {
	testCases := []struct {
		out, format string
		want        Format
		wantErr     bool
	}{
		{"a.png", "auto", PNG, false},
		{"a.JPG", "auto", JPEG, false},
		{"dir/a.tif", "auto", TIFF, false},
		{"a.gif", "auto", GIF, false},
		{"a.bmp", "auto", BMP, false},
		{"a.png", "bmp", BMP, false},
		{"noext", "auto", Auto, true},
		{"a.png", "webp", Auto, true},
	}
	for _, tc := range testCases {
		t.Run(tc.out+"/"+tc.format, func(t *testing.T) {
			o := Output{Out: tc.out, Format: tc.format}
			got, err := o.Resolve()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, param.ErrInvalid) {
				t.Errorf("error %v does not wrap param.ErrInvalid", err)
			}
			if got != tc.want {
				t.Errorf("Resolve() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOutputWrite(t *testing.T) {
	img := NewCanvas(64, 64, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	for _, ext := range []string{"png", "jpeg", "gif", "bmp", "tiff"} {
		t.Run(ext, func(t *testing.T) {
			dir := t.TempDir()
			o := Output{Out: filepath.Join(dir, "sub", "out."+ext), Format: "auto"}
			if err := o.Write(img); err != nil {
				t.Fatalf("Write: %v", err)
			}

			f, err := os.Open(o.Out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			cfg, _, err := image.DecodeConfig(f)
			if err != nil {
				t.Fatalf("DecodeConfig: %v", err)
			}
			if cfg.Width != 64 || cfg.Height != 64 {
				t.Errorf("decoded size %dx%d, want 64x64", cfg.Width, cfg.Height)
			}

			entries, err := os.ReadDir(filepath.Dir(o.Out))
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("destination holds %d entries, want only the output", len(entries))
			}
		})
	}
}

func TestQuantize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	Fill(img, 1, func(col, _ int) color.RGBA {
		v := uint8(col * 4)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	})
	bw := color.Palette{black, white}

	flat := Quantize(img, bw, false)
	if got := flat.At(10, 0); got != black {
		t.Errorf("dark pixel = %v, want black", got)
	}
	if got := flat.At(60, 0); got != white {
		t.Errorf("light pixel = %v, want white", got)
	}

	dithered := Quantize(img, bw, true)
	var whites int
	for x := 28; x < 36; x++ {
		for y := range 64 {
			if dithered.ColorIndexAt(x, y) == 1 {
				whites++
			}
		}
	}
	if whites == 0 || whites == 8*64 {
		t.Errorf("dithering mid gray gave %d white pixels of %d, want a mix", whites, 8*64)
	}
}

func TestOutputReduce(t *testing.T) {
	dir := t.TempDir()
	pal := filepath.Join(dir, "bw.pal")
	var buf bytes.Buffer
	if _, err := palette.WriteTo(&buf, []color.Palette{{black, white}}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pal, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	img := NewCanvas(64, 64, color.RGBA{R: 250, G: 240, B: 230, A: 255})
	o := Output{Out: filepath.Join(dir, "out.png"), Format: "auto", Reduce: pal}
	if err := o.Write(img); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(o.Out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.RGBAModel.Convert(dec.At(5, 5)); got != white {
		t.Errorf("reduced pixel = %v, want white", got)
	}

	o.Reduce = filepath.Join(dir, "missing.pal")
	if err := o.Write(img); err == nil {
		t.Error("Write with a missing palette file succeeded")
	}
}

func TestClipPolygon(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	testCases := []struct {
		name string
		in   []vec.Vec2
		want []vec.Vec2
	}{
		{
			name: "inside",
			in:   []vec.Vec2{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 5, Y: 9}},
			want: []vec.Vec2{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 5, Y: 9}},
		},
		{
			name: "outside",
			in:   []vec.Vec2{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30}},
			want: nil,
		},
		{
			name: "covering",
			in:   []vec.Vec2{{X: -5, Y: -5}, {X: 15, Y: -5}, {X: 15, Y: 15}, {X: -5, Y: 15}},
			want: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := clipPolygon(tc.in, r)
			if len(got) < 3 {
				got = nil
			}
			if tc.want == nil {
				if got != nil {
					t.Errorf("clipPolygon() = %v, want nothing", got)
				}
				return
			}
			if diff := cmp.Diff(area(tc.want), area(got), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("clipped area (-want +got):\n%s", diff)
			}
			for _, q := range got {
				if q.X < 0 || q.X > 10 || q.Y < 0 || q.Y > 10 {
					t.Errorf("point %v lies outside %v", q, r)
				}
			}
		})
	}
}

// area is the signed shoelace area of a closed polygon.
func area(pts []vec.Vec2) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func BenchmarkPainterDiscs(b *testing.B) {
	img := NewCanvas(2048, 2048, white)
	p := NewPainter(img, Viewport{XMax: 1, YMax: 1, Width: 2048, Height: 2048})
	for b.Loop() {
		for i := range 200 {
			for j := range 200 {
				p.Disc(vec.Vec2{X: float64(i) / 199, Y: float64(j) / 199}, 5, black)
			}
		}
	}
}

func TestQuantizeLab(t *testing.T) {
	bw := color.Palette{black, white}

	// sRGB 110 is below the sRGB midpoint but above OKLab's mid lightness.
	gray := NewCanvas(8, 8, color.RGBA{R: 110, G: 110, B: 110, A: 255})
	if got := Quantize(gray, bw, false).ColorIndexAt(3, 3); got != 0 {
		t.Errorf("sRGB match picked index %d, want black", got)
	}
	if got := QuantizeLab(gray, bw, false).ColorIndexAt(3, 3); got != 1 {
		t.Errorf("OKLab match picked index %d, want white", got)
	}

	mid := NewCanvas(32, 32, color.RGBA{R: 99, G: 99, B: 99, A: 255})
	dithered := QuantizeLab(mid, bw, true)
	var whites int
	for _, i := range dithered.Pix {
		whites += int(i)
	}
	if whites == 0 || whites == len(dithered.Pix) {
		t.Errorf("dithering gave %d white pixels of %d, want a mix", whites, len(dithered.Pix))
	}
}
