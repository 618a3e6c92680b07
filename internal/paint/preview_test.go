package paint

import (
	"errors"
	"testing"
)

func TestPreview_UniformGrayToRed(t *testing.T) {
	grid := uniformGrid(10, 10, 128, 128, 128)

	res, err := Preview(grid, Request{
		Seed:      SeedPoint{X: 5, Y: 5},
		Tolerance: UniformTolerance(10),
		Color:     "#FF0000",
	})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if countFull(res.Mask) != 100 {
		t.Errorf("uniform region should be fully included, got %d/100", countFull(res.Mask))
	}

	red := ToLab(255, 0, 0)
	gray := ToLab(128, 128, 128)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			got := ToLab(res.Grid.At(x, y))
			assertClose(t, "a", got.A, red.A, 3)
			assertClose(t, "b", got.B, red.B, 3)
			assertClose(t, "L", got.L, gray.L, 1.5)
		}
	}

	// Every output pixel is identical
	r0, g0, b0 := res.Grid.At(0, 0)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if r, g, b := res.Grid.At(x, y); r != r0 || g != g0 || b != b0 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want uniform (%d,%d,%d)", x, y, r, g, b, r0, g0, b0)
			}
		}
	}
}

func TestPreview_TwoRegionsZeroTolerance(t *testing.T) {
	a := [3]uint8{200, 180, 160}
	b := [3]uint8{60, 90, 120}
	grid := splitGrid(20, 10, 10, a, b)
	seed := SeedPoint{X: 3, Y: 4}

	hard, err := FloodMask(grid, seed, UniformTolerance(0), FixedRange)
	if err != nil {
		t.Fatalf("FloodMask failed: %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			want := uint8(0)
			if x < 10 {
				want = 255
			}
			if hard.At(x, y) != want {
				t.Fatalf("mask (%d,%d): got %d, want %d", x, y, hard.At(x, y), want)
			}
		}
	}

	res, err := Preview(grid, Request{Seed: seed, Tolerance: UniformTolerance(0), Color: "#2E8B57"})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 12; x < 20; x++ {
			if r, g, bb := res.Grid.At(x, y); r != b[0] || g != b[1] || bb != b[2] {
				t.Fatalf("region B pixel (%d,%d) changed to (%d,%d,%d)", x, y, r, g, bb)
			}
		}
	}

	// With the unsoftened mask not a single region B pixel changes
	target, _ := ParseHex("#2E8B57")
	out, err := Composite(grid, hard, target)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 10; x < 20; x++ {
			if r, g, bb := out.At(x, y); r != b[0] || g != b[1] || bb != b[2] {
				t.Fatalf("region B pixel (%d,%d) changed to (%d,%d,%d)", x, y, r, g, bb)
			}
		}
		if r, g, bb := out.At(0, y); r == a[0] && g == a[1] && bb == a[2] {
			t.Fatalf("region A pixel (0,%d) was not recolored", y)
		}
	}
}

func TestPreview_SeedClamped(t *testing.T) {
	grid := uniformGrid(100, 100, 10, 20, 30)

	res, err := Preview(grid, Request{Seed: SeedPoint{X: 100, Y: -5}, Tolerance: UniformTolerance(DefaultTolerance), Color: "336699"})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if res.Seed != (SeedPoint{X: 99, Y: 0}) {
		t.Errorf("seed: got %+v, want {99 0}", res.Seed)
	}
}

func TestPreview_InvalidColor(t *testing.T) {
	grid := uniformGrid(4, 4, 1, 1, 1)

	for _, hex := range []string{"12345", "GGGGGG"} {
		t.Run(hex, func(t *testing.T) {
			res, err := Preview(grid, Request{Color: hex, Tolerance: UniformTolerance(10)})
			var colorErr *InvalidColorError
			if !errors.As(err, &colorErr) {
				t.Fatalf("error: got %v, want *InvalidColorError", err)
			}
			if res != nil {
				t.Error("no partial result expected on failure")
			}
		})
	}
}

func TestPreview_InvalidGrid(t *testing.T) {
	_, err := Preview(NewPixelGrid(0, 0), Request{Color: "#FFFFFF", Tolerance: UniformTolerance(10)})
	var inputErr *InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Errorf("error: got %v, want *InvalidInputError", err)
	}
}

func TestPreview_OnePixelImage(t *testing.T) {
	grid := uniformGrid(1, 1, 128, 128, 128)

	res, err := Preview(grid, Request{Color: "#0000FF", Tolerance: UniformTolerance(0)})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if res.Grid.Width != 1 || res.Grid.Height != 1 || res.Mask.At(0, 0) != 255 {
		t.Errorf("1x1 preview: got %dx%d, mask %d", res.Grid.Width, res.Grid.Height, res.Mask.At(0, 0))
	}
}

func TestPreview_InputUntouched(t *testing.T) {
	grid := patchGrid(12, 12)
	before := grid.Clone()

	if _, err := Preview(grid, Request{Seed: SeedPoint{X: 6, Y: 6}, Tolerance: UniformTolerance(60), Color: "#C0FFEE"}); err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	for i := range grid.Pix {
		if grid.Pix[i] != before.Pix[i] {
			t.Fatalf("input byte %d changed", i)
		}
	}
}
