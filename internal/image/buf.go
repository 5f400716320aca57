package image

import (
	"errors"
	"image"
	"image/color"
)

// Common errors for pixel buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// PixelBuf is raw pixel storage plus its format descriptor.
//
// PixelBuf stores pixel data in a contiguous byte slice, one row every
// stride bytes. A buffer is never resized: operations that change the
// dimensions allocate a new PixelBuf.
//
// PixelBuf implements image.Image and draw.Image so it can be handed to
// golang.org/x/image/draw directly. Colors read through At are color.NRGBA.
//
// Thread safety: PixelBuf is not safe for concurrent mutation.
type PixelBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
	codec  *codec
}

// NewPixelBuf creates a new zeroed pixel buffer with the given dimensions
// and format. For formats with alpha the result is fully transparent.
func NewPixelBuf(width, height int, format Format) (*PixelBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &PixelBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
		codec:  &codecTable[format],
	}, nil
}

// FromRaw creates a PixelBuf from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the PixelBuf.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*PixelBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	requiredSize := stride * height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &PixelBuf{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		stride: stride,
		format: format,
		codec:  &codecTable[format],
	}, nil
}

// Clone creates a deep copy of the pixel buffer.
func (b *PixelBuf) Clone() *PixelBuf {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &PixelBuf{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
		codec:  b.codec,
	}
}

// Convert returns a copy of the buffer in the given format.
// Converting to the buffer's own format is equivalent to Clone.
func (b *PixelBuf) Convert(format Format) (*PixelBuf, error) {
	if format == b.format {
		return b.Clone(), nil
	}
	dst, err := NewPixelBuf(b.width, b.height, format)
	if err != nil {
		return nil, err
	}
	sbpp := b.format.BytesPerPixel()
	dbpp := format.BytesPerPixel()
	for y := range b.height {
		srow := b.RowBytes(y)
		drow := dst.RowBytes(y)
		for x := range b.width {
			r, g, bl, a := b.codec.load(srow[x*sbpp:])
			dst.codec.store(drow[x*dbpp:], r, g, bl, a)
		}
	}
	return dst, nil
}

// Width returns the buffer width in pixels.
func (b *PixelBuf) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *PixelBuf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *PixelBuf) Format() Format {
	return b.format
}

// Size returns the buffer dimensions as (width, height).
func (b *PixelBuf) Size() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *PixelBuf) Data() []byte {
	return b.data
}

// ByteSize returns the total size of the pixel data in bytes.
func (b *PixelBuf) ByteSize() int {
	return len(b.data)
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *PixelBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	end := start + b.format.RowBytes(b.width)
	return b.data[start:end]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *PixelBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (b *PixelBuf) PixelBytes(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+b.format.BytesPerPixel()]
}

// RGBA returns the straight-alpha color at (x, y).
// For formats without alpha, a=255.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *PixelBuf) RGBA(x, y int) (r, g, bl, a uint8) {
	pixel := b.PixelBytes(x, y)
	if pixel == nil {
		return 0, 0, 0, 0
	}
	return b.codec.load(pixel)
}

// SetRGBA stores a straight-alpha color at (x, y), replacing the pixel.
// Returns ErrOutOfBounds if coordinates are outside buffer bounds.
func (b *PixelBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	pixel := b.PixelBytes(x, y)
	if pixel == nil {
		return ErrOutOfBounds
	}
	b.codec.store(pixel, r, g, bl, a)
	return nil
}

// BlendRGBA composites a straight-alpha color over the pixel at (x, y).
// Opaque colors replace the pixel. Out-of-bounds coordinates are ignored.
func (b *PixelBuf) BlendRGBA(x, y int, r, g, bl, a uint8) {
	pixel := b.PixelBytes(x, y)
	if pixel == nil {
		return
	}
	if a == 255 {
		b.codec.store(pixel, r, g, bl, a)
		return
	}
	dr, dg, db, da := b.codec.load(pixel)
	r, g, bl, a = blendOver(r, g, bl, a, dr, dg, db, da)
	b.codec.store(pixel, r, g, bl, a)
}

// Clear sets all bytes to zero (transparent black for formats with alpha).
func (b *PixelBuf) Clear() {
	clear(b.data)
}

// Fill sets all pixels to the given color.
func (b *PixelBuf) Fill(r, g, bl, a uint8) {
	bpp := b.format.BytesPerPixel()
	for y := range b.height {
		row := b.RowBytes(y)
		b.codec.store(row[:bpp], r, g, bl, a)
		// Double the filled prefix until the row is complete.
		for n := bpp; n < len(row); n *= 2 {
			copy(row[n:], row[:n])
		}
	}
}

// ColorModel implements image.Image.
func (b *PixelBuf) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image. The origin is always (0, 0).
func (b *PixelBuf) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image.
func (b *PixelBuf) At(x, y int) color.Color {
	r, g, bl, a := b.RGBA(x, y)
	return color.NRGBA{R: r, G: g, B: bl, A: a}
}

// Set implements draw.Image.
func (b *PixelBuf) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	_ = b.SetRGBA(x, y, n.R, n.G, n.B, n.A)
}
