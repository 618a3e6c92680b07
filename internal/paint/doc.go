// Package paint implements the paint-the-wall recoloring core.
//
// Given a photo as a PixelGrid, a click point, a tolerance and a target
// color, it segments the contiguous surface under the click and recolors it
// while keeping the surface's original shading and texture.
//
// # Pipeline
//
//  1. Segment: 4-connected flood fill from the seed within a per-channel
//     tolerance, then a fixed 5x5 Gaussian softens the mask edge.
//  2. ParseHex: the target "#RRGGBB" is converted to CIE L*a*b*.
//  3. Composite: every pixel's a*/b* is interpolated towards the target by
//     its mask weight while L* is carried through unchanged.
//
// Preview chains the three steps.
//
// # Color Space
//
// The perceptual space is CIE L*a*b* with a D65 white point and the sRGB
// transfer curve, as implemented by github.com/lucasb-eyer/go-colorful.
// Values are kept in float64 throughout, so output bytes differ slightly
// from implementations that quantize L*a*b* to 8 bits per channel.
//
// # Coordinates
//
// (0,0) is the top-left pixel, X grows rightward and Y downward. Seed
// coordinates outside the grid are clamped, never rejected.
//
// # Concurrency
//
// Every function is a pure transform over caller-owned buffers and keeps no
// package state, so independent invocations may run concurrently. Composite
// splits its rows across goroutines internally.
//
// # Errors
//
// Structural problems (zero-area grid, wrong buffer length, mismatched mask,
// negative tolerance) are reported as *InvalidInputError; malformed colors as
// *InvalidColorError. Use errors.As to tell them apart.
package paint
