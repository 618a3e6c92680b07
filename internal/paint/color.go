package paint

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Lab is a color in CIE L*a*b* (D65 white, sRGB primaries).
//
// L is lightness in [0, 100]; A (green-red) and B (blue-yellow) carry the
// chrominance. The Compositor relies on L isolating shading from A and B.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// go-colorful scales L*a*b* so that L lies in [0, 1].
const labScale = 100

// ToLab converts an 8-bit device sRGB triple to L*a*b*.
func ToLab(r, g, b uint8) Lab {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, a, bb := c.Lab()
	return Lab{L: l * labScale, A: a * labScale, B: bb * labScale}
}

// FromLab converts L*a*b* back to 8-bit device sRGB. Colors outside the sRGB
// gamut are clamped per channel.
func FromLab(c Lab) (r, g, b uint8) {
	return colorful.Lab(c.L/labScale, c.A/labScale, c.B/labScale).Clamped().RGB255()
}

// ParseHexRGB parses "#RRGGBB" or "RRGGBB" (either case) into device RGB.
func ParseHexRGB(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, &InvalidColorError{Value: s, Reason: fmt.Sprintf("want 6 hex digits, got %d", len(hex))}
	}

	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(hex[2*i])
		lo, ok2 := hexNibble(hex[2*i+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, &InvalidColorError{Value: s, Reason: "non-hex character"}
		}
		v[i] = hi<<4 | lo
	}
	return v[0], v[1], v[2], nil
}

// ParseHex parses a 6-digit hex color and converts it to L*a*b*.
func ParseHex(s string) (Lab, error) {
	r, g, b, err := ParseHexRGB(s)
	if err != nil {
		return Lab{}, err
	}
	return ToLab(r, g, b), nil
}

// FormatHex renders a device RGB triple as "#RRGGBB".
func FormatHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DeltaE returns the CIEDE2000 color difference between a and b, in the
// usual units where 1.0 is roughly a just-noticeable difference.
func DeltaE(a, b Lab) float64 {
	ca := colorful.Lab(a.L/labScale, a.A/labScale, a.B/labScale)
	cb := colorful.Lab(b.L/labScale, b.A/labScale, b.B/labScale)
	return ca.DistanceCIEDE2000(cb) * labScale
}

// PaletteMatch is the result of NearestColor.
type PaletteMatch struct {
	Index  int     `json:"index"`   // Position in the supplied palette
	Hex    string  `json:"hex"`     // Palette entry, normalized to "#RRGGBB"
	DeltaE float64 `json:"delta_e"` // CIEDE2000 distance to the target
}

// NearestColor finds the palette entry perceptually closest to target.
// Every palette entry must be a valid 6-digit hex color; the first invalid
// entry fails the whole call.
func NearestColor(target Lab, palette []string) (*PaletteMatch, error) {
	if len(palette) == 0 {
		return nil, invalidInput("empty palette")
	}

	best := &PaletteMatch{Index: -1, DeltaE: math.Inf(1)}
	for i, entry := range palette {
		r, g, b, err := ParseHexRGB(entry)
		if err != nil {
			return nil, err
		}
		if d := DeltaE(target, ToLab(r, g, b)); d < best.DeltaE {
			best = &PaletteMatch{Index: i, Hex: FormatHex(r, g, b), DeltaE: d}
		}
	}
	return best, nil
}
