package palette

import (
	"image/color"
	"math"

	"patgen/okcolor"
)

// Lab is a palette held in OKLab, so that nearest-color matching follows
// perceived distance rather than sRGB distance.
type Lab []okcolor.Lab

func NewLab(pal color.Palette) Lab {
	p := make(Lab, len(pal))
	for i, col := range pal {
		p[i] = okcolor.LabModel.Convert(col).(okcolor.Lab)
	}
	return p
}

// Index returns the index of the entry closest to lc. Alpha counts on the
// same [0,1] scale as lightness.
func (p Lab) Index(lc okcolor.Lab) int {
	ret, bestSum := 0, math.MaxFloat64
	for i, v := range p {
		dL := lc.L - v.L
		da := lc.A - v.A
		db := lc.B - v.B
		dA := (float64(lc.Alpha) - float64(v.Alpha)) / 0xffff
		sum := dL*dL + da*da + db*db + dA*dA
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			ret, bestSum = i, sum
		}
	}
	return ret
}

// Convert returns the palette color closest to c.
func (p Lab) Convert(c color.Color) color.Color {
	if len(p) == 0 {
		return nil
	}
	return p[p.Index(okcolor.LabModel.Convert(c).(okcolor.Lab))]
}
