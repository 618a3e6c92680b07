package paint

import (
	"image"
	"image/color"
)

// Channels is the number of 8-bit channels per PixelGrid pixel (R, G, B).
const Channels = 3

// DefaultTolerance is the per-channel tolerance used when the caller does
// not supply one.
const DefaultTolerance = 30

// PixelGrid is a dense, row-major device RGB raster with 8 bits per channel.
//
// Pixel (x, y) occupies Pix[(y*Width+x)*3 : (y*Width+x)*3+3] in R, G, B
// order. A grid is owned by whichever pipeline stage is transforming it;
// stages never write into a grid they did not allocate.
type PixelGrid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelGrid allocates a zeroed (black) grid of the given size.
func NewPixelGrid(width, height int) *PixelGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelGrid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// Validate checks the structural invariants of the grid: non-zero area and
// a buffer of exactly Width*Height*3 bytes.
func (g *PixelGrid) Validate() error {
	if g == nil {
		return invalidInput("nil pixel grid")
	}
	if g.Width <= 0 || g.Height <= 0 {
		return invalidInput("pixel grid has zero area (%dx%d)", g.Width, g.Height)
	}
	if want := g.Width * g.Height * Channels; len(g.Pix) != want {
		return invalidInput("pixel buffer length %d, want %d for %dx%d", len(g.Pix), want, g.Width, g.Height)
	}
	return nil
}

// At returns the device RGB value of pixel (x, y). The coordinates must be
// inside the grid.
func (g *PixelGrid) At(x, y int) (r, gr, b uint8) {
	i := (y*g.Width + x) * Channels
	return g.Pix[i], g.Pix[i+1], g.Pix[i+2]
}

// Set writes the device RGB value of pixel (x, y).
func (g *PixelGrid) Set(x, y int, r, gr, b uint8) {
	i := (y*g.Width + x) * Channels
	g.Pix[i], g.Pix[i+1], g.Pix[i+2] = r, gr, b
}

// Fill sets every pixel in the rectangle r (clipped to the grid) to one color.
func (g *PixelGrid) Fill(r image.Rectangle, cr, cg, cb uint8) {
	r = r.Intersect(image.Rect(0, 0, g.Width, g.Height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			g.Set(x, y, cr, cg, cb)
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *PixelGrid) Clone() *PixelGrid {
	pix := make([]uint8, len(g.Pix))
	copy(pix, g.Pix)
	return &PixelGrid{Width: g.Width, Height: g.Height, Pix: pix}
}

// Image returns the grid as a fully opaque *image.NRGBA suitable for
// encoding. The returned image does not share memory with the grid.
func (g *PixelGrid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i, j := 0, 0; i < len(g.Pix); i, j = i+Channels, j+4 {
		img.Pix[j] = g.Pix[i]
		img.Pix[j+1] = g.Pix[i+1]
		img.Pix[j+2] = g.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// GridFromImage copies any image into a new PixelGrid. Alpha is discarded;
// the image's non-premultiplied color channels are kept. The grid origin is
// the image's Bounds().Min.
func GridFromImage(img image.Image) (*PixelGrid, error) {
	if img == nil {
		return nil, invalidInput("nil image")
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, invalidInput("image has zero area (%dx%d)", b.Dx(), b.Dy())
	}
	g := NewPixelGrid(b.Dx(), b.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < g.Height; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < g.Width; x++ {
				g.Set(x, y, row[x*4], row[x*4+1], row[x*4+2])
			}
		}
		return g, nil
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			g.Set(x, y, c.R, c.G, c.B)
		}
	}
	return g, nil
}

// SeedPoint is the pixel the user clicked. Raw request coordinates may lie
// outside the image; call Clamp before use.
type SeedPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Clamp returns the nearest point inside a width x height grid. Width and
// height must be positive.
func (p SeedPoint) Clamp(width, height int) SeedPoint {
	return SeedPoint{X: clamp(p.X, 0, width-1), Y: clamp(p.Y, 0, height-1)}
}

// Tolerance bounds the per-channel deviation allowed during segmentation.
type Tolerance struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// UniformTolerance returns a Tolerance with the same bound on every channel.
func UniformTolerance(n int) Tolerance {
	return Tolerance{R: n, G: n, B: n}
}

// Validate rejects negative channel bounds.
func (t Tolerance) Validate() error {
	if t.R < 0 || t.G < 0 || t.B < 0 {
		return invalidInput("negative tolerance (%d,%d,%d)", t.R, t.G, t.B)
	}
	return nil
}

// within reports whether every channel of (r,g,b) is within t of (sr,sg,sb).
func (t Tolerance) within(r, g, b, sr, sg, sb uint8) bool {
	return absDiff(r, sr) <= t.R && absDiff(g, sg) <= t.G && absDiff(b, sb) <= t.B
}

// Mask is a single-channel inclusion weight per pixel: 0 excluded, 255 fully
// included, values in between only along softened edges.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewMask allocates an all-zero mask.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// At returns the weight of pixel (x, y).
func (m *Mask) At(x, y int) uint8 {
	return m.Pix[y*m.Width+x]
}

// Area counts the pixels with a non-zero weight.
func (m *Mask) Area() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Bounds returns the smallest rectangle containing every non-zero pixel,
// or the empty rectangle for an empty mask.
func (m *Mask) Bounds() image.Rectangle {
	minX, minY, maxX, maxY := m.Width, m.Height, -1, -1
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Width : (y+1)*m.Width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Image wraps the mask as an *image.Gray sharing the same buffer.
func (m *Mask) Image() *image.Gray {
	return &image.Gray{
		Pix:    m.Pix,
		Stride: m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
