package imaging

import (
	"image"
	"image/color"

	"github.com/ironsheep/paint-preview-mcp/internal/paint"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// ColorResult contains a color value in the representations the tools
// report: hex for display, device RGB, and CIE L*a*b*.
type ColorResult struct {
	Hex string    `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor  `json:"rgb"` // RGB components
	Lab paint.Lab `json:"lab"` // L*a*b* (L 0-100)
}

// NewColorResult describes a device RGB triple.
func NewColorResult(r, g, b uint8) ColorResult {
	return ColorResult{
		Hex: paint.FormatHex(r, g, b),
		RGB: RGBColor{R: r, G: g, B: b},
		Lab: paint.ToLab(r, g, b),
	}
}

// FromLab describes an L*a*b* color by its nearest device RGB triple. The
// reported Lab is the exact input, not the quantized round trip.
func FromLab(lab paint.Lab) ColorResult {
	r, g, b := paint.FromLab(lab)
	res := NewColorResult(r, g, b)
	res.Lab = lab
	return res
}

// SampleResult is a color sample together with the pixel it was taken from.
type SampleResult struct {
	X     int         `json:"x"` // X coordinate after clamping
	Y     int         `json:"y"` // Y coordinate after clamping
	Color ColorResult `json:"color"`
}

// SampleColor extracts the color under a click. Coordinates outside the
// image are clamped to the nearest edge pixel, matching how the segmenter
// treats seed points.
func SampleColor(img image.Image, x, y int) (*SampleResult, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, &paint.InvalidInputError{Reason: "image has zero area"}
	}

	p := paint.SeedPoint{X: x, Y: y}.Clamp(bounds.Dx(), bounds.Dy())
	c := color.NRGBAModel.Convert(img.At(bounds.Min.X+p.X, bounds.Min.Y+p.Y)).(color.NRGBA)

	return &SampleResult{
		X:     p.X,
		Y:     p.Y,
		Color: NewColorResult(c.R, c.G, c.B),
	}, nil
}
