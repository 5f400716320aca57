package rug

import (
	intImage "github.com/gogpu/rug/internal/image"
)

// Format describes how a pixel is stored: bytes per pixel, channel order
// and channel masks.
type Format = intImage.Format

// Pixel formats.
const (
	// FormatRGBA8 is 32-bit RGBA with straight alpha (4 bytes per pixel).
	// Layers, blank images and every transform result use it.
	FormatRGBA8 = intImage.FormatRGBA8

	// FormatBGRA8 is 32-bit BGRA with straight alpha (4 bytes per pixel).
	FormatBGRA8 = intImage.FormatBGRA8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	// Opaque decoded images and 24-bit displays use it.
	FormatRGB8 = intImage.FormatRGB8

	// FormatBGR8 is 24-bit BGR (3 bytes per pixel, no alpha).
	FormatBGR8 = intImage.FormatBGR8

	// FormatRGB565 is 16-bit packed RGB (2 bytes per pixel, no alpha).
	FormatRGB565 = intImage.FormatRGB565

	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	// Decoded grayscale images keep it; flips reject it.
	FormatGray8 = intImage.FormatGray8
)

// InterpolationMode selects the smoothing filter used by Rotate and Scale.
type InterpolationMode = intImage.InterpolationMode

// Interpolation modes. Smoothing is always on; there is no
// nearest-neighbor mode.
const (
	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	// Good balance between quality and performance.
	InterpBilinear = intImage.InterpBilinear

	// InterpBicubic performs Catmull-Rom interpolation over a 4x4 pixel neighborhood.
	// Highest quality but slower than bilinear.
	InterpBicubic = intImage.InterpBicubic
)

// Pool recycles pixel buffers of identical size and format. Released
// images and layers return their buffers to the pool of their Context.
// A Pool is safe for concurrent use and may be shared with WithPool.
type Pool = intImage.Pool

// NewPool creates a buffer pool keeping at most perBucket buffers of each
// size and format. A perBucket of 0 means unlimited.
func NewPool(perBucket int) *Pool {
	return intImage.NewPool(perBucket)
}
