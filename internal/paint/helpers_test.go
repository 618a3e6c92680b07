package paint

import (
	"image"
	"math"
	"testing"
)

// uniformGrid creates a grid filled with a single color
func uniformGrid(width, height int, r, g, b uint8) *PixelGrid {
	grid := NewPixelGrid(width, height)
	grid.Fill(image.Rect(0, 0, width, height), r, g, b)
	return grid
}

// splitGrid creates a grid whose left `split` columns are color a and the
// rest color b, with a sharp vertical boundary
func splitGrid(width, height, split int, a, b [3]uint8) *PixelGrid {
	grid := uniformGrid(width, height, b[0], b[1], b[2])
	grid.Fill(image.Rect(0, 0, split, height), a[0], a[1], a[2])
	return grid
}

// gradientGrid creates a horizontal gray ramp increasing by step per column
func gradientGrid(width, height, step int) *PixelGrid {
	grid := NewPixelGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(clamp(x*step, 0, 255))
			grid.Set(x, y, v, v, v)
		}
	}
	return grid
}

func assertClose(t *testing.T, what string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.3f, want %.3f (±%.2f)", what, got, want, tol)
	}
}
