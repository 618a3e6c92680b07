package paint

// Request describes one paint-the-wall preview.
type Request struct {
	// Seed is the raw click position; it is clamped into the grid.
	Seed SeedPoint

	// Tolerance bounds per-channel deviation during segmentation.
	Tolerance Tolerance

	// Color is the target paint color as "#RRGGBB" or "RRGGBB".
	Color string

	// Range selects fixed (seed-relative) or floating region growth.
	Range RangeMode
}

// Result holds the output of Preview.
type Result struct {
	Grid   *PixelGrid // Recolored image, same size as the input
	Mask   *Mask      // Softened inclusion mask that drove the blend
	Seed   SeedPoint  // Seed after clamping
	Target Lab        // Parsed target color
}

// Preview runs the full pipeline on grid: parse the target color, segment
// the surface under the seed, and composite the color into it.
//
// The color is parsed first so a malformed color fails before any pixel
// work. grid is read but never modified.
func Preview(grid *PixelGrid, req Request) (*Result, error) {
	target, err := ParseHex(req.Color)
	if err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	seed := req.Seed.Clamp(grid.Width, grid.Height)
	mask, err := SegmentWith(grid, seed, SegmentOptions{Tolerance: req.Tolerance, Range: req.Range})
	if err != nil {
		return nil, err
	}

	out, err := Composite(grid, mask, target)
	if err != nil {
		return nil, err
	}

	return &Result{Grid: out, Mask: mask, Seed: seed, Target: target}, nil
}
