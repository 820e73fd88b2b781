package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"patgen/okcolor"
	"patgen/palette"
)

// Quantize maps img onto pal, optionally with Floyd-Steinberg error
// diffusion.
func Quantize(img image.Image, pal color.Palette, dither bool) *image.Paletted {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())
	dest := image.NewPaletted(dr, pal)

	if dither {
		draw.FloydSteinberg.Draw(dest, dr, img, sr.Min)
	} else {
		draw.Draw(dest, dr, img, sr.Min, draw.Src)
	}
	return dest
}

// QuantizeLab is Quantize with colors matched, and errors diffused, in OKLab.
func QuantizeLab(img image.Image, pal color.Palette, dither bool) *image.Paletted {
	sr := img.Bounds()
	w, h := sr.Dx(), sr.Dy()
	dest := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	lab := palette.NewLab(pal)

	// error carried into the current and the next row, pixel x at x+1
	cur, next := make([][3]float64, w+2), make([][3]float64, w+2)
	for y := range h {
		for x := range w {
			lc := okcolor.LabModel.Convert(img.At(sr.Min.X+x, sr.Min.Y+y)).(okcolor.Lab)
			if dither {
				e := cur[x+1]
				lc.L, lc.A, lc.B = lc.L+e[0], lc.A+e[1], lc.B+e[2]
			}

			i := lab.Index(lc)
			dest.Pix[y*dest.Stride+x] = uint8(i)
			if !dither {
				continue
			}

			got := lab[i]
			d := [3]float64{lc.L - got.L, lc.A - got.A, lc.B - got.B}
			for k := range d {
				cur[x+2][k] += d[k] * 7 / 16
				next[x][k] += d[k] * 3 / 16
				next[x+1][k] += d[k] * 5 / 16
				next[x+2][k] += d[k] * 1 / 16
			}
		}
		cur, next = next, cur
		clear(next)
	}
	return dest
}
