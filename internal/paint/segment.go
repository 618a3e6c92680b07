package paint

import (
	"github.com/anthonynsimon/bild/convolution"
)

// RangeMode selects the reference pixel a neighbor is compared against
// while growing the region.
type RangeMode int

const (
	// FixedRange compares every candidate with the seed pixel.
	FixedRange RangeMode = iota

	// FloatingRange compares a candidate with the already-included neighbor
	// it was reached from, so the region can follow a gradual gradient.
	FloatingRange
)

// String returns the name used for the mode in tool arguments.
func (m RangeMode) String() string {
	switch m {
	case FloatingRange:
		return "floating"
	default:
		return "fixed"
	}
}

// ParseRangeMode maps "fixed", "floating" or "" (fixed) to a RangeMode.
func ParseRangeMode(s string) (RangeMode, error) {
	switch s {
	case "", "fixed":
		return FixedRange, nil
	case "floating":
		return FloatingRange, nil
	default:
		return FixedRange, invalidInput("unknown range mode %q", s)
	}
}

// SegmentOptions tunes SegmentWith.
type SegmentOptions struct {
	Tolerance Tolerance
	Range     RangeMode

	// Hard skips edge softening and returns the binary flood mask.
	Hard bool
}

// Segment marks the 4-connected region around seed whose pixels differ from
// the seed pixel by at most tol on every channel, then softens the mask edge
// with a 5x5 Gaussian. An out-of-bounds seed is clamped into the grid.
func Segment(grid *PixelGrid, seed SeedPoint, tol Tolerance) (*Mask, error) {
	return SegmentWith(grid, seed, SegmentOptions{Tolerance: tol})
}

// SegmentWith is Segment with explicit options.
func SegmentWith(grid *PixelGrid, seed SeedPoint, opts SegmentOptions) (*Mask, error) {
	mask, err := FloodMask(grid, seed, opts.Tolerance, opts.Range)
	if err != nil {
		return nil, err
	}
	if opts.Hard {
		return mask, nil
	}
	return SoftenMask(mask), nil
}

// FloodMask returns the binary (0/255) mask of the region connected to seed.
//
// The search uses an explicit stack of pixel offsets and the mask buffer as
// its visited set, so each pixel is pushed at most once and call depth stays
// constant regardless of region size.
func FloodMask(grid *PixelGrid, seed SeedPoint, tol Tolerance, mode RangeMode) (*Mask, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := tol.Validate(); err != nil {
		return nil, err
	}

	w, h := grid.Width, grid.Height
	seed = seed.Clamp(w, h)
	mask := NewMask(w, h)
	pix := grid.Pix

	start := seed.Y*w + seed.X
	sr, sg, sb := pix[start*Channels], pix[start*Channels+1], pix[start*Channels+2]

	mask.Pix[start] = 255
	stack := []int{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rr, rg, rb := sr, sg, sb
		if mode == FloatingRange {
			rr, rg, rb = pix[p*Channels], pix[p*Channels+1], pix[p*Channels+2]
		}

		x, y := p%w, p/w
		neighbors := [4]struct {
			ok bool
			n  int
		}{
			{x > 0, p - 1},
			{x < w-1, p + 1},
			{y > 0, p - w},
			{y < h-1, p + w},
		}
		for _, nb := range neighbors {
			n := nb.n
			if !nb.ok || mask.Pix[n] != 0 {
				continue
			}
			i := n * Channels
			if !tol.within(pix[i], pix[i+1], pix[i+2], rr, rg, rb) {
				continue
			}
			mask.Pix[n] = 255
			stack = append(stack, n)
		}
	}

	return mask, nil
}

// softenKernel is the 5x5 Gaussian built from the binomial row 1 4 6 4 1,
// normalized by 256. Every weight is an exact binary fraction, so fully
// included and fully excluded areas stay at exactly 255 and 0.
var softenKernel = func() *convolution.Kernel {
	row := [5]float64{1, 4, 6, 4, 1}
	k := convolution.NewKernel(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			k.Matrix[y*5+x] = row[y] * row[x] / 256
		}
	}
	return k
}()

// SoftenMask blurs a mask with the fixed 5x5 Gaussian, producing fractional
// weights along the region boundary. Pixels beyond the image edge replicate
// the nearest edge pixel. The kernel radius does not scale with image size.
func SoftenMask(m *Mask) *Mask {
	blurred := convolution.Convolve(m.Image(), softenKernel, &convolution.Options{Bias: 0, Wrap: false, KeepAlpha: false})

	out := NewMask(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		row := blurred.Pix[y*blurred.Stride:]
		for x := 0; x < m.Width; x++ {
			out.Pix[y*m.Width+x] = row[x*4]
		}
	}
	return out
}
