// Package colors is the fixed table of named colors understood by every
// pattern command, plus hex parsing for colors outside the table.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"patgen/param"
)

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}
	Black = color.RGBA{A: 0xFF}
)

// names keeps the table's declaration order for help output.
var names = []string{
	"white", "black", "red", "green", "blue", "yellow",
	"cyan", "magenta", "orange", "purple", "pink", "brown", "gray",
	"lightgray", "darkgray", "olive", "lime", "teal", "navy", "maroon",
	"fuchsia", "aqua", "silver", "gold", "turquoise", "lavender",
	"violet", "coral", "indigo",
}

var table = map[string]color.RGBA{
	"white":     rgb(255, 255, 255),
	"black":     rgb(0, 0, 0),
	"red":       rgb(255, 0, 0),
	"green":     rgb(0, 255, 0),
	"blue":      rgb(0, 0, 255),
	"yellow":    rgb(255, 255, 0),
	"cyan":      rgb(0, 255, 255),
	"magenta":   rgb(255, 0, 255),
	"orange":    rgb(255, 165, 0),
	"purple":    rgb(128, 0, 128),
	"pink":      rgb(255, 192, 203),
	"brown":     rgb(165, 42, 42),
	"gray":      rgb(128, 128, 128),
	"lightgray": rgb(211, 211, 211),
	"darkgray":  rgb(169, 169, 169),
	"olive":     rgb(128, 128, 0),
	"lime":      rgb(0, 128, 0),
	"teal":      rgb(0, 128, 128),
	"navy":      rgb(0, 0, 128),
	"maroon":    rgb(128, 0, 0),
	"fuchsia":   rgb(255, 0, 128),
	"aqua":      rgb(0, 255, 128),
	"silver":    rgb(192, 192, 192),
	"gold":      rgb(255, 215, 0),
	"turquoise": rgb(64, 224, 208),
	"lavender":  rgb(230, 230, 250),
	"violet":    rgb(238, 130, 238),
	"coral":     rgb(255, 127, 80),
	"indigo":    rgb(75, 0, 130),
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Names returns the known color names in table order.
func Names() []string {
	return append([]string(nil), names...)
}

// Known reports whether name is in the table.
func Known(name string) bool {
	_, ok := table[name]
	return ok
}

// Lookup never fails: unknown names resolve to fallback.
func Lookup(name string, fallback color.RGBA) color.RGBA {
	if c, ok := table[name]; ok {
		return c
	}
	return fallback
}

// Resolve accepts either a table name or a #RGB / #RRGGBB literal. Malformed
// hex literals resolve to fallback like unknown names do; use ParseHex at the
// boundary to reject them instead.
func Resolve(s string, fallback color.RGBA) color.RGBA {
	if strings.HasPrefix(s, "#") {
		c, err := ParseHex(s)
		if err != nil {
			return fallback
		}
		return c
	}
	return Lookup(s, fallback)
}

// Check validates a color flag value: a table name or a hex literal.
func Check(s string) error {
	if strings.HasPrefix(s, "#") {
		if _, err := ParseHex(s); err != nil {
			return fmt.Errorf("%w: %w", param.ErrInvalid, err)
		}
		return nil
	}
	if !Known(s) {
		return fmt.Errorf("%w: unknown color %q", param.ErrInvalid, s)
	}
	return nil
}

func ParseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xFF}
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return color.RGBA{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return color.RGBA{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}

	return c, nil
}
