// Package param holds the range checks shared by every command boundary.
// Generators trust their input; everything here runs before they are called.
package param

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every range or enum violation.
var ErrInvalid = errors.New("invalid parameter")

const (
	MinSize = 64
	MaxSize = 2048
)

func Int(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s=%d not in [%d,%d]", ErrInvalid, name, v, lo, hi)
	}
	return nil
}

func Float(name string, v, lo, hi float64) error {
	if v < lo || v > hi || v != v {
		return fmt.Errorf("%w: %s=%g not in [%g,%g]", ErrInvalid, name, v, lo, hi)
	}
	return nil
}

// Size checks canvas dimensions.
func Size(width, height int) error {
	if err := Int("width", width, MinSize, MaxSize); err != nil {
		return err
	}
	return Int("height", height, MinSize, MaxSize)
}

// Enum reports an unknown literal for an enumerated option.
func Enum(name, value string, accepted ...string) error {
	return fmt.Errorf("%w: %s=%q, expected one of %q", ErrInvalid, name, value, accepted)
}

// Dims are the canvas size flags every command embeds.
type Dims struct {
	Width  int `help:"Canvas width in pixels" default:"512"`
	Height int `help:"Canvas height in pixels" default:"512"`
}

func (d Dims) Check() error {
	return Size(d.Width, d.Height)
}
