// Package raster holds the pixel buffers shared by the pattern engines: the
// RGB canvas, the scalar field mapped through a palette, a vector painter for
// shape-based patterns and the encoders that turn a canvas into a file.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"patgen/parallel"
)

// NewCanvas returns an opaque width×height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// Fill sets every pixel of img to fn(col, row). Rows are distributed over
// workers; fn must be safe to call concurrently.
func Fill(img *image.RGBA, workers parallel.Workers, fn func(col, row int) color.RGBA) {
	b := img.Bounds()
	parallel.Rows(workers, b.Dy(), func(row int) {
		off := img.PixOffset(b.Min.X, b.Min.Y+row)
		pix := img.Pix[off : off+4*b.Dx() : off+4*b.Dx()]
		for col := range b.Dx() {
			c := fn(col, row)
			pix[4*col+0] = c.R
			pix[4*col+1] = c.G
			pix[4*col+2] = c.B
			pix[4*col+3] = 0xFF
		}
	})
}

// Axis returns the normalized position index/(extent-1) of a pixel along an
// axis of extent pixels. A single pixel axis sits at 0.
func Axis(index, extent int) float64 {
	if extent <= 1 {
		return 0
	}
	return float64(index) / float64(extent-1)
}
