package palette

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	clr "github.com/lucasb-eyer/go-colorful"
)

// lutSize is the number of samples taken from formula-defined ramps.
const lutSize = 256

var builtin = map[string]Ramp{}

func init() {
	register := func(name string, r Ramp) {
		r.Name = name
		builtin[name] = r
	}

	// perceptually uniform sequential
	register("viridis", even(hex("440154 482878 3e4989 31688e 26828e 1f9e89 35b779 6ece58 b5de2b fde725")...))
	register("plasma", even(hex("0d0887 46039f 7201a8 9c179e bd3786 d8576b ed7953 fb9f3a fdca26 f0f921")...))
	register("inferno", even(hex("000004 1b0c41 4a0c6b 781c6d a52c60 cf4446 ed6925 fb9b06 f7d13d fcffa4")...))
	register("magma", even(hex("000004 180f3d 440f76 721f81 9e2f7f cd4071 f1605d fd9668 feca8d fcfdbf")...))
	register("cividis", even(hex("00224e 123570 3b496c 575d6d 707173 8a8779 a69d75 c4b56c e4cf5b fee838")...))
	register("turbo", even(hex("30123b 4662d7 36aaf9 1ae4b6 72fe5e c8ef34 faba39 f66b19 cb2a04 7a0403")...))

	// sequential
	register("Blues", even(hex("f7fbff deebf7 c6dbef 9ecae1 6baed6 4292c6 2171b5 08519c 08306b")...))
	register("Greens", even(hex("f7fcf5 e5f5e0 c7e9c0 a1d99b 74c476 41ab5d 238b45 006d2c 00441b")...))
	register("Greys", even(hex("ffffff f0f0f0 d9d9d9 bdbdbd 969696 737373 525252 252525 000000")...))
	register("Oranges", even(hex("fff5eb fee6ce fdd0a2 fdae6b fd8d3c f16913 d94801 a63603 7f2704")...))
	register("Purples", even(hex("fcfbfd efedf5 dadaeb bcbddc 9e9ac8 807dba 6a51a3 54278f 3f007d")...))
	register("Reds", even(hex("fff5f0 fee0d2 fcbba1 fc9272 fb6a4a ef3b2c cb181d a50f15 67000d")...))
	register("BuGn", even(hex("f7fcfd e5f5f9 ccece6 99d8c9 66c2a4 41ae76 238b45 006d2c 00441b")...))
	register("BuPu", even(hex("f7fcfd e0ecf4 bfd3e6 9ebcda 8c96c6 8c6bb1 88419d 810f7c 4d004b")...))
	register("GnBu", even(hex("f7fcf0 e0f3db ccebc5 a8ddb5 7bccc4 4eb3d3 2b8cbe 0868ac 084081")...))
	register("OrRd", even(hex("fff7ec fee8c8 fdd49e fdbb84 fc8d59 ef6548 d7301f b30000 7f0000")...))
	register("PuBu", even(hex("fff7fb ece7f2 d0d1e6 a6bddb 74a9cf 3690c0 0570b0 045a8d 023858")...))
	register("PuBuGn", even(hex("fff7fb ece2f0 d0d1e6 a6bddb 67a9cf 3690c0 02818a 016c59 014636")...))
	register("PuRd", even(hex("f7f4f9 e7e1ef d4b9da c994c7 df65b0 e7298a ce1256 980043 67001f")...))
	register("RdPu", even(hex("fff7f3 fde0dd fcc5c0 fa9fb5 f768a1 dd3497 ae017e 7a0177 49006a")...))
	register("YlGn", even(hex("ffffe5 f7fcb9 d9f0a3 addd8e 78c679 41ab5d 238443 006837 004529")...))
	register("YlGnBu", even(hex("ffffd9 edf8b1 c7e9b4 7fcdbb 41b6c4 1d91c0 225ea8 253494 081d58")...))
	register("YlOrBr", even(hex("ffffe5 fff7bc fee391 fec44f fe9929 ec7014 cc4c02 993404 662506")...))
	register("YlOrRd", even(hex("ffffcc ffeda0 fed976 feb24c fd8d3c fc4e2a e31a1c bd0026 800026")...))
	register("Wistia", even(hex("e4ff7a ffe81a ffbd00 ffa000 fc7f00")...))

	// diverging
	register("BrBG", even(hex("543005 8c510a bf812d dfc27d f6e8c3 f5f5f5 c7eae5 80cdc1 35978f 01665e 003c30")...))
	register("PiYG", even(hex("8e0152 c51b7d de77ae f1b6da fde0ef f7f7f7 e6f5d0 b8e186 7fbc41 4d9221 276419")...))
	register("PRGn", even(hex("40004b 762a83 9970ab c2a5cf e7d4e8 f7f7f7 d9f0d3 a6dba0 5aae61 1b7837 00441b")...))
	register("PuOr", even(hex("7f3b08 b35806 e08214 fdb863 fee0b6 f7f7f7 d8daeb b2abd2 8073ac 542788 2d004b")...))
	register("RdBu", even(hex("67001f b2182b d6604d f4a582 fddbc7 f7f7f7 d1e5f0 92c5de 4393c3 2166ac 053061")...))
	register("RdGy", even(hex("67001f b2182b d6604d f4a582 fddbc7 ffffff e0e0e0 bababa 878787 4d4d4d 1a1a1a")...))
	register("RdYlBu", even(hex("a50026 d73027 f46d43 fdae61 fee090 ffffbf e0f3f8 abd9e9 74add1 4575b4 313695")...))
	register("RdYlGn", even(hex("a50026 d73027 f46d43 fdae61 fee08b ffffbf d9ef8b a6d96a 66bd63 1a9850 006837")...))
	register("Spectral", even(hex("9e0142 d53e4f f46d43 fdae61 fee08b ffffbf e6f598 abdda4 66c2a5 3288bd 5e4fa2")...))
	register("coolwarm", even(hex("3b4cc0 6788ee 9abbff c9d7f0 edd1c2 f7a889 e26952 b40426")...))
	register("bwr", even(hex("0000ff ffffff ff0000")...))
	register("seismic", even(hex("00004c 0000ff ffffff ff0000 800000")...))

	// cyclic
	register("twilight", even(hex("e2d9e2 a7bccb 7196c2 6169b4 5a3c96 2f1436 6a2151 a23f55 c47b6b d9b7a6 e2d9e2")...))
	register("twilight_shifted", even(hex("2f1436 5a3c96 6169b4 7196c2 a7bccb e2d9e2 d9b7a6 c47b6b a23f55 6a2151 2f1436")...))
	register("hsv", sample(func(x float64) (float64, float64, float64) {
		c := clr.Hsv(math.Mod(x*360, 360), 1, 1)
		return c.R, c.G, c.B
	}))

	// qualitative
	register("Accent", listed("7fc97f beaed4 fdc086 ffff99 386cb0 f0027f bf5b17 666666"))
	register("Dark2", listed("1b9e77 d95f02 7570b3 e7298a 66a61e e6ab02 a6761d 666666"))
	register("Paired", listed("a6cee3 1f78b4 b2df8a 33a02c fb9a99 e31a1c fdbf6f ff7f00 cab2d6 6a3d9a ffff99 b15928"))
	register("Pastel1", listed("fbb4ae b3cde3 ccebc5 decbe4 fed9a6 ffffcc e5d8bd fddaec f2f2f2"))
	register("Pastel2", listed("b3e2cd fdcdac cbd5e8 f4cae4 e6f5c9 fff2ae f1e2cc cccccc"))
	register("Set1", listed("e41a1c 377eb8 4daf4a 984ea3 ff7f00 ffff33 a65628 f781bf 999999"))
	register("Set2", listed("66c2a5 fc8d62 8da0cb e78ac3 a6d854 ffd92f e5c494 b3b3b3"))
	register("Set3", listed("8dd3c7 ffffb3 bebada fb8072 80b1d3 fdb462 b3de69 fccde5 d9d9d9 bc80bd ccebc5 ffed6f"))
	register("tab10", listed("1f77b4 ff7f0e 2ca02c d62728 9467bd 8c564b e377c2 7f7f7f bcbd22 17becf"))
	register("tab20", listed("1f77b4 aec7e8 ff7f0e ffbb78 2ca02c 98df8a d62728 ff9896 9467bd c5b0d5 8c564b c49c94 e377c2 f7b6d2 7f7f7f c7c7c7 bcbd22 dbdb8d 17becf 9edae5"))
	register("tab20b", listed("393b79 5254a3 6b6ecf 9c9ede 637939 8ca252 b5cf6b cedb9c 8c6d31 bd9e39 e7ba52 e7cb94 843c39 ad494a d6616b e7969c 7b4173 a55194 ce6dbd de9ed6"))
	register("tab20c", listed("3182bd 6baed6 9ecae1 c6dbef e6550d fd8d3c fdae6b fdd0a2 31a354 74c476 a1d99b c7e9c0 756bb1 9e9ac8 bcbddc dadaeb 636363 969696 bdbdbd d9d9d9"))

	// miscellaneous
	register("gray", even(hex("000000 ffffff")...))
	register("gist_gray", even(hex("000000 ffffff")...))
	register("binary", even(hex("ffffff 000000")...))
	register("gist_yarg", even(hex("ffffff 000000")...))
	register("brg", even(hex("0000ff ff0000 00ff00")...))
	register("CMRmap", even(rgbf(
		0, 0, 0, 0.15, 0.15, 0.5, 0.3, 0.15, 0.75,
		0.6, 0.2, 0.5, 1, 0.25, 0.15, 0.9, 0.5, 0,
		0.9, 0.75, 0.1, 0.9, 0.9, 0.5, 1, 1, 1)...))
	register("terrain", Ramp{Stops: []Stop{
		{0, rgb(0.2, 0.2, 0.6)},
		{0.15, rgb(0, 0.6, 1)},
		{0.25, rgb(0, 0.8, 0.4)},
		{0.5, rgb(1, 1, 0.6)},
		{0.75, rgb(0.5, 0.36, 0.33)},
		{1, rgb(1, 1, 1)},
	}})
	register("gist_earth", even(hex("000000 1c4a78 3a8c5e 8aa84e b9977b fdfbfb")...))
	register("gist_stern", Ramp{Stops: []Stop{
		{0, rgb(0, 0, 0)},
		{0.0547, rgb(1, 0.0547, 0.109)},
		{0.25, rgb(0.25, 0.25, 0.5)},
		{0.5, rgb(0.5, 0.5, 1)},
		{0.735, rgb(0.735, 0.735, 0)},
		{1, rgb(1, 1, 1)},
	}})
	register("gist_rainbow", even(hex("ff0029 ff8c00 ffff00 00ff00 00ffff 0000ff ff00bf")...))
	register("nipy_spectral", even(hex("000000 770088 0000aa 0077dd 00aa88 00aa00 00dd00 ccee00 ffbb00 ee0000 cccccc")...))
	register("jet", sample(func(x float64) (float64, float64, float64) {
		return pw(x, 0, 0, 0.35, 0, 0.66, 1, 0.89, 1, 1, 0.5),
			pw(x, 0, 0, 0.125, 0, 0.375, 1, 0.64, 1, 0.91, 0, 1, 0),
			pw(x, 0, 0.5, 0.11, 1, 0.34, 1, 0.65, 0, 1, 0)
	}))
	register("hot", sample(hot))
	register("afmhot", sample(func(x float64) (float64, float64, float64) {
		return 2 * x, 2*x - 0.5, 2*x - 1
	}))
	register("gist_heat", sample(func(x float64) (float64, float64, float64) {
		return 1.5 * x, 2*x - 1, 4*x - 3
	}))
	register("bone", sample(func(x float64) (float64, float64, float64) {
		return pw(x, 0, 0, 0.746032, 0.652778, 1, 1),
			pw(x, 0, 0, 0.365079, 0.319444, 0.746032, 0.777778, 1, 1),
			pw(x, 0, 0, 0.365079, 0.444444, 1, 1)
	}))
	register("copper", sample(func(x float64) (float64, float64, float64) {
		return 1.25 * x, 0.7812 * x, 0.4975 * x
	}))
	register("pink", sample(func(x float64) (float64, float64, float64) {
		r, g, b := hot(x)
		return math.Sqrt((2*x + r) / 3), math.Sqrt((2*x + g) / 3), math.Sqrt((2*x + b) / 3)
	}))
	register("cool", sample(func(x float64) (float64, float64, float64) { return x, 1 - x, 1 }))
	register("spring", sample(func(x float64) (float64, float64, float64) { return 1, x, 1 - x }))
	register("summer", sample(func(x float64) (float64, float64, float64) { return x, 0.5 + x/2, 0.4 }))
	register("autumn", sample(func(x float64) (float64, float64, float64) { return 1, x, 0 }))
	register("winter", sample(func(x float64) (float64, float64, float64) { return 0, x, 1 - x/2 }))
	register("ocean", sample(func(x float64) (float64, float64, float64) {
		return 3*x - 2, math.Abs((3*x - 1) / 2), x
	}))
	register("rainbow", sample(func(x float64) (float64, float64, float64) {
		return math.Abs(2*x - 0.5), math.Sin(math.Pi * x), math.Cos(math.Pi * x / 2)
	}))
	register("gnuplot", sample(func(x float64) (float64, float64, float64) {
		return math.Sqrt(x), x * x * x, math.Sin(2 * math.Pi * x)
	}))
	register("gnuplot2", sample(func(x float64) (float64, float64, float64) {
		var b float64
		switch {
		case x < 0.25:
			b = 4 * x
		case x < 0.92:
			b = -2*x + 1.84
		default:
			b = x/0.08 - 11.5
		}
		return x/0.32 - 0.78125, 2*x - 0.84, b
	}))
	register("cubehelix", sample(cubehelix))
	register("flag", sample(func(x float64) (float64, float64, float64) {
		return 0.75*math.Sin((x*31.5+0.25)*math.Pi) + 0.5,
			math.Sin(x * 31.5 * math.Pi),
			0.75*math.Sin((x*31.5-0.25)*math.Pi) + 0.5
	}))
	register("prism", sample(func(x float64) (float64, float64, float64) {
		return 0.75*math.Sin((x*20.9+0.25)*math.Pi) + 0.67,
			0.75*math.Sin((x*20.9-0.25)*math.Pi) + 0.33,
			-1.1 * math.Sin(x*20.9*math.Pi)
	}))
}

func hot(x float64) (float64, float64, float64) {
	return pw(x, 0, 0.0416, 0.365079, 1, 1, 1),
		pw(x, 0, 0, 0.365079, 0, 0.746032, 1, 1, 1),
		pw(x, 0, 0, 0.746032, 0, 1, 1)
}

// cubehelix with the default start 0.5, rotations -1.5, hue 1 and gamma 1.
func cubehelix(x float64) (float64, float64, float64) {
	const (
		start = 0.5
		rot   = -1.5
		hue   = 1.0
	)
	phi := 2 * math.Pi * (start/3 + rot*x)
	a := hue * x * (1 - x) / 2
	cp, sp := math.Cos(phi), math.Sin(phi)
	return x + a*(-0.14861*cp+1.78277*sp),
		x + a*(-0.29227*cp-0.90649*sp),
		x + a*(1.97294*cp)
}

// pw evaluates the piecewise linear function through the (x, y) knots given
// as a flat list with increasing x.
func pw(x float64, knots ...float64) float64 {
	for i := 2; i < len(knots); i += 2 {
		x0, y0, x1, y1 := knots[i-2], knots[i-1], knots[i], knots[i+1]
		if x <= x1 {
			if x1 == x0 {
				return y1
			}
			return y0 + (y1-y0)*(x-x0)/(x1-x0)
		}
	}
	return knots[len(knots)-1]
}

// sample tabulates f at lutSize evenly spaced points; channels are clamped.
func sample(f func(float64) (float64, float64, float64)) Ramp {
	stops := make([]Stop, lutSize)
	for i := range stops {
		x := float64(i) / (lutSize - 1)
		r, g, b := f(x)
		stops[i] = Stop{Pos: x, Color: rgb(r, g, b)}
	}
	return Ramp{Stops: stops}
}

func even(cols ...color.Color) Ramp {
	stops := make([]Stop, len(cols))
	for i, c := range cols {
		pos := 0.0
		if len(cols) > 1 {
			pos = float64(i) / float64(len(cols)-1)
		}
		stops[i] = Stop{Pos: pos, Color: color.RGBAModel.Convert(c).(color.RGBA)}
	}
	return Ramp{Stops: stops}
}

func listed(s string) Ramp {
	r := even(hex(s)...)
	r.Discrete = true
	return r
}

// hex parses a space separated list of RRGGBB literals. It is only fed the
// constants in this file, so a malformed entry is a programming error.
func hex(s string) []color.Color {
	fields := strings.Fields(s)
	res := make([]color.Color, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 16, 32)
		if err != nil || len(f) != 6 {
			panic("palette: bad color literal " + f)
		}
		res[i] = color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
	}
	return res
}

func rgbf(v ...float64) []color.Color {
	res := make([]color.Color, 0, len(v)/3)
	for i := 0; i+2 < len(v); i += 3 {
		res = append(res, rgb(v[i], v[i+1], v[i+2]))
	}
	return res
}

func rgb(r, g, b float64) color.RGBA {
	c := clr.Color{R: r, G: g, B: b}.Clamped()
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 0xFF}
}
