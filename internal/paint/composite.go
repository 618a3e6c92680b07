package paint

import (
	"github.com/anthonynsimon/bild/parallel"
)

// Composite blends target's chrominance into grid wherever mask is non-zero.
//
// Each pixel is taken to L*a*b*; a and b are interpolated towards the
// target by the mask weight (mask/255) and L is kept, which preserves the
// surface's shading and texture. Pixels with weight 0 are copied unchanged.
// The input grid is not modified.
//
// Rows are processed in parallel; each worker writes a disjoint row range
// of the output grid.
func Composite(grid *PixelGrid, mask *Mask, target Lab) (*PixelGrid, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := checkMask(mask, grid); err != nil {
		return nil, err
	}

	out := NewPixelGrid(grid.Width, grid.Height)
	parallel.Line(grid.Height, func(start, end int) {
		for y := start; y < end; y++ {
			compositeRow(out, grid, mask, target, y)
		}
	})
	return out, nil
}

func compositeRow(dst, src *PixelGrid, mask *Mask, target Lab, y int) {
	w := src.Width
	for x := 0; x < w; x++ {
		i := (y*w + x) * Channels
		m := mask.Pix[y*w+x]
		if m == 0 {
			copy(dst.Pix[i:i+Channels], src.Pix[i:i+Channels])
			continue
		}

		wgt := float64(m) / 255
		lab := ToLab(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		lab.A = lab.A*(1-wgt) + target.A*wgt
		lab.B = lab.B*(1-wgt) + target.B*wgt

		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = FromLab(lab)
	}
}

func checkMask(mask *Mask, grid *PixelGrid) error {
	if mask == nil {
		return invalidInput("nil mask")
	}
	if mask.Width != grid.Width || mask.Height != grid.Height {
		return invalidInput("mask is %dx%d, grid is %dx%d", mask.Width, mask.Height, grid.Width, grid.Height)
	}
	if len(mask.Pix) != mask.Width*mask.Height {
		return invalidInput("mask buffer length %d, want %d", len(mask.Pix), mask.Width*mask.Height)
	}
	return nil
}

// MeanLab returns the mask-weighted mean L*a*b* color of grid. ok is false
// when the mask is empty.
func MeanLab(grid *PixelGrid, mask *Mask) (mean Lab, ok bool, err error) {
	if err := grid.Validate(); err != nil {
		return Lab{}, false, err
	}
	if err := checkMask(mask, grid); err != nil {
		return Lab{}, false, err
	}

	var sum Lab
	var total float64
	for p, m := range mask.Pix {
		if m == 0 {
			continue
		}
		wgt := float64(m) / 255
		i := p * Channels
		lab := ToLab(grid.Pix[i], grid.Pix[i+1], grid.Pix[i+2])
		sum.L += lab.L * wgt
		sum.A += lab.A * wgt
		sum.B += lab.B * wgt
		total += wgt
	}
	if total == 0 {
		return Lab{}, false, nil
	}
	return Lab{L: sum.L / total, A: sum.A / total, B: sum.B / total}, true, nil
}
