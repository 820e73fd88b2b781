package param

import (
	"errors"
	"math"
	"testing"
)

func TestInt(t *testing.T) {
	testCases := []struct {
		name    string
		v       int
		wantErr bool
	}{
		{"lower bound", 64, false},
		{"upper bound", 2048, false},
		{"below", 63, true},
		{"above", 2049, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Int("width", tc.v, MinSize, MaxSize)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Int(%d) error = %v, wantErr %v", tc.v, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	if err := Float("x_pos", 0.5, 0, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Float("x_pos", 1.01, 0, 1); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	if err := Float("x_pos", math.NaN(), 0, 1); !errors.Is(err, ErrInvalid) {
		t.Errorf("NaN accepted: %v", err)
	}
}

func TestSize(t *testing.T) {
	if err := Size(512, 512); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Size(512, 32); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for height 32, got %v", err)
	}
}

func TestEnum(t *testing.T) {
	err := Enum("mode", "zigzag", "regular", "stepped")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
