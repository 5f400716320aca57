// Package image provides the pixel buffers behind rug images and layers.
//
// A PixelBuf is raw pixel storage plus a format descriptor. Every operation
// that needs to understand channel layout goes through the per-format codec
// selected when the buffer is constructed, so depth-specific code lives in
// one table instead of being repeated in each operation.
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatRGBA8 is 32-bit RGBA, bytes in R, G, B, A order, straight alpha.
	// This is the format of created images, layers and transform output.
	FormatRGBA8 Format = iota

	// FormatBGRA8 is 32-bit BGRA, bytes in B, G, R, A order, straight alpha.
	FormatBGRA8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatBGR8 is 24-bit BGR (3 bytes per pixel, no alpha).
	FormatBGR8

	// FormatRGB565 is 16-bit RGB packed little-endian as rrrrrggg gggbbbbb.
	FormatRGB565

	// FormatGray8 is 8-bit grayscale. Decoded grayscale images use it.
	FormatGray8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// Masks holds the channel bit masks of a format, in the layout a pixel
// occupies when read as a little-endian integer of BytesPerPixel bytes.
type Masks struct {
	R, G, B, A uint32
}

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of channels stored per pixel.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// Masks are the channel masks.
	Masks Masks
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatRGBA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
		Masks:         Masks{R: 0x000000ff, G: 0x0000ff00, B: 0x00ff0000, A: 0xff000000},
	},
	FormatBGRA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
		Masks:         Masks{R: 0x00ff0000, G: 0x0000ff00, B: 0x000000ff, A: 0xff000000},
	},
	FormatRGB8: {
		BytesPerPixel: 3,
		Channels:      3,
		Masks:         Masks{R: 0x0000ff, G: 0x00ff00, B: 0xff0000},
	},
	FormatBGR8: {
		BytesPerPixel: 3,
		Channels:      3,
		Masks:         Masks{R: 0xff0000, G: 0x00ff00, B: 0x0000ff},
	},
	FormatRGB565: {
		BytesPerPixel: 2,
		Channels:      3,
		Masks:         Masks{R: 0xf800, G: 0x07e0, B: 0x001f},
	},
	FormatGray8: {
		BytesPerPixel: 1,
		Channels:      1,
		Masks:         Masks{R: 0xff, G: 0xff, B: 0xff},
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// BitsPerPixel returns the color depth in bits.
func (f Format) BitsPerPixel() int {
	return f.Info().BytesPerPixel * 8
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// Masks returns the channel masks of the format.
func (f Format) Masks() Masks {
	return f.Info().Masks
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	case FormatRGB8:
		return "RGB8"
	case FormatBGR8:
		return "BGR8"
	case FormatRGB565:
		return "RGB565"
	case FormatGray8:
		return "Gray8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// FormatForDepth returns the default format for a display color depth in
// bits per pixel: 16 → RGB565, 24 → RGB8, 32 → RGBA8.
func FormatForDepth(bitsPerPixel int) (Format, bool) {
	switch bitsPerPixel {
	case 16:
		return FormatRGB565, true
	case 24:
		return FormatRGB8, true
	case 32:
		return FormatRGBA8, true
	default:
		return 0, false
	}
}
