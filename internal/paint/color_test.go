package paint

import (
	"errors"
	"testing"
)

func TestParseHexRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
	}{
		{"#FF0000", 255, 0, 0},
		{"00ff00", 0, 255, 0},
		{"#0000Ff", 0, 0, 255},
		{"#808080", 128, 128, 128},
		{"1a2B3c", 0x1a, 0x2b, 0x3c},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, g, b, err := ParseHexRGB(tt.in)
			if err != nil {
				t.Fatalf("ParseHexRGB(%q) failed: %v", tt.in, err)
			}
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("got (%d,%d,%d), want (%d,%d,%d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	tests := []string{
		"12345",
		"GGGGGG",
		"",
		"#",
		"#1234567",
		"##123456",
		"#12345G",
		"0x1234",
		"#FFF",
		" 123456",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			var colorErr *InvalidColorError
			if !errors.As(err, &colorErr) {
				t.Fatalf("ParseHex(%q): got %v, want *InvalidColorError", in, err)
			}
			if colorErr.Value != in {
				t.Errorf("Value: got %q, want %q", colorErr.Value, in)
			}
		})
	}
}

func TestFormatHex_RoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				hex := FormatHex(uint8(r), uint8(g), uint8(b))
				pr, pg, pb, err := ParseHexRGB(hex)
				if err != nil {
					t.Fatalf("ParseHexRGB(%q) failed: %v", hex, err)
				}
				if int(pr) != r || int(pg) != g || int(pb) != b {
					t.Fatalf("%s: got (%d,%d,%d), want (%d,%d,%d)", hex, pr, pg, pb, r, g, b)
				}
			}
		}
	}
}

func TestToLab_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Lab
	}{
		{"white", 255, 255, 255, Lab{100, 0, 0}},
		{"black", 0, 0, 0, Lab{0, 0, 0}},
		{"red", 255, 0, 0, Lab{53.24, 80.09, 67.20}},
		{"mid gray", 128, 128, 128, Lab{53.59, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToLab(tt.r, tt.g, tt.b)
			assertClose(t, "L", got.L, tt.want.L, 0.05)
			assertClose(t, "a", got.A, tt.want.A, 0.05)
			assertClose(t, "b", got.B, tt.want.B, 0.05)
		})
	}
}

func TestLab_RoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				gr, gg, gb := FromLab(ToLab(uint8(r), uint8(g), uint8(b)))
				if absDiff(gr, uint8(r)) > 1 || absDiff(gg, uint8(g)) > 1 || absDiff(gb, uint8(b)) > 1 {
					t.Fatalf("(%d,%d,%d) round-tripped to (%d,%d,%d)", r, g, b, gr, gg, gb)
				}
			}
		}
	}
}

func TestFromLab_ClampsOutOfGamut(t *testing.T) {
	r, g, b := FromLab(Lab{L: 120, A: 0, B: 0})
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("super-white: got (%d,%d,%d), want (255,255,255)", r, g, b)
	}

	r, g, b = FromLab(Lab{L: -10, A: 0, B: 0})
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("sub-black: got (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}

func TestDeltaE(t *testing.T) {
	red := ToLab(255, 0, 0)
	if d := DeltaE(red, red); d > 1e-9 {
		t.Errorf("DeltaE(x, x): got %g, want 0", d)
	}

	near := DeltaE(ToLab(128, 128, 128), ToLab(130, 128, 128))
	far := DeltaE(ToLab(128, 128, 128), ToLab(0, 0, 255))
	if near >= far {
		t.Errorf("near color distance %.2f should be less than far %.2f", near, far)
	}
	if near > 2 {
		t.Errorf("one-step gray difference: got %.2f, want < 2", near)
	}
}

func TestNearestColor(t *testing.T) {
	palette := []string{"#FFFFFF", "#2E4A62", "b33a3a", "#C9B79C"}

	match, err := NearestColor(ToLab(0xB0, 0x3C, 0x3A), palette)
	if err != nil {
		t.Fatalf("NearestColor failed: %v", err)
	}
	if match.Index != 2 || match.Hex != "#B33A3A" {
		t.Errorf("match: got %d %s, want 2 #B33A3A", match.Index, match.Hex)
	}
	if match.DeltaE <= 0 || match.DeltaE > 5 {
		t.Errorf("DeltaE: got %.2f, want small positive", match.DeltaE)
	}

	exact, err := NearestColor(ToLab(0xC9, 0xB7, 0x9C), palette)
	if err != nil {
		t.Fatalf("NearestColor failed: %v", err)
	}
	if exact.Index != 3 || exact.DeltaE > 1e-6 {
		t.Errorf("exact match: got index %d deltaE %g", exact.Index, exact.DeltaE)
	}
}

func TestNearestColor_Errors(t *testing.T) {
	var inputErr *InvalidInputError
	if _, err := NearestColor(Lab{}, nil); !errors.As(err, &inputErr) {
		t.Errorf("empty palette: got %v, want *InvalidInputError", err)
	}

	var colorErr *InvalidColorError
	if _, err := NearestColor(Lab{}, []string{"#000000", "nope"}); !errors.As(err, &colorErr) {
		t.Errorf("bad entry: got %v, want *InvalidColorError", err)
	}
}
