// Package imaging adapts encoded photos to and from the paint core.
//
// It owns everything the recoloring core deliberately knows nothing about:
// reading files, enforcing the accepted input encodings, EXIF orientation,
// downscaling oversized photos, and encoding results as JPEG or PNG. The
// heavy lifting is done by github.com/disintegration/imaging.
//
// # Accepted Formats
//
// Only JPEG and PNG inputs are accepted. The format is sniffed from the file
// contents; GIF, BMP and TIFF decoders are registered by the imaging library
// but are rejected here.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left of the upright image,
// i.e. after EXIF auto-orientation. Sampling clamps coordinates into bounds.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Cached images are shared
// between callers and must not be mutated; convert them to a paint.PixelGrid,
// which copies, before processing.
//
// # Memory Management
//
// Cached photos remain in memory until removed via Evict() or Clear().
package imaging
