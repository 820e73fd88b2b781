package colors

import (
	"image/color"
	"testing"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		name     string
		fallback color.RGBA
		want     color.RGBA
	}{
		{"white", Black, White},
		{"orange", White, color.RGBA{R: 255, G: 165, A: 255}},
		{"lime", White, color.RGBA{G: 128, A: 255}},
		{"chartreuse", White, White},
		{"", Black, Black},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lookup(tc.name, tc.fallback); got != tc.want {
				t.Errorf("Lookup(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestNamesCoverTable(t *testing.T) {
	got := Names()
	if len(got) != len(table) {
		t.Fatalf("%d names for %d table entries", len(got), len(table))
	}
	for _, n := range got {
		if !Known(n) {
			t.Errorf("name %q missing from table", n)
		}
	}
}

func TestParseHex(t *testing.T) {
	testCases := []struct {
		hex     string
		want    color.RGBA
		wantErr bool
	}{
		{"#FF0000", color.RGBA{R: 255, A: 255}, false},
		{"#0F0", color.RGBA{G: 255, A: 255}, false},
		{"#fA8072", color.RGBA{R: 250, G: 128, B: 114, A: 255}, false},
		{"#12345", color.RGBA{}, true},
		{"#GG0000", color.RGBA{}, true},
		{"#", color.RGBA{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.hex, func(t *testing.T) {
			got, err := ParseHex(tc.hex)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tc.hex, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tc.hex, got, tc.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("#000080", White); got != Lookup("navy", White) {
		t.Errorf("hex navy = %v", got)
	}
	if got := Resolve("#zzzzzz", Black); got != Black {
		t.Errorf("malformed hex = %v, want fallback", got)
	}
	if err := Check("nope"); err == nil {
		t.Error("Check accepted unknown color")
	}
	if err := Check("teal"); err != nil {
		t.Errorf("Check(teal) = %v", err)
	}
}
