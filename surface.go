package rug

import (
	"image"
	"io"

	intImage "github.com/gogpu/rug/internal/image"
)

// Surface is the primary display buffer the render loop presents.
// Images drawn onto it overwrite pixels; layers are blended.
//
// The surface has the pixel format chosen by its color depth and keeps it
// for its whole life.
type Surface struct {
	buf *intImage.PixelBuf
}

// NewSurface creates a display surface of the given size and color depth.
// bitsPerPixel must be 16, 24 or 32 and selects FormatRGB565, FormatRGB8
// or FormatRGBA8. The surface starts out all zero bytes.
func NewSurface(width, height, bitsPerPixel int) (*Surface, error) {
	format, ok := intImage.FormatForDepth(bitsPerPixel)
	if !ok {
		return nil, &InvalidArgumentError{Op: "NewSurface", Arg: "bitsPerPixel", Value: bitsPerPixel}
	}
	if width <= 0 || height <= 0 {
		return nil, &InvalidArgumentError{Op: "NewSurface", Arg: "size", Value: image.Pt(width, height)}
	}
	buf, err := intImage.NewPixelBuf(width, height, format)
	if err != nil {
		return nil, err
	}
	return &Surface{buf: buf}, nil
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int { return s.buf.Width() }

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int { return s.buf.Height() }

// Format returns the pixel format of the surface.
func (s *Surface) Format() Format { return s.buf.Format() }

// Clear fills the whole surface with c.
func (s *Surface) Clear(c Color) error {
	if err := c.validate("Surface.Clear"); err != nil {
		return err
	}
	n := c.NRGBA()
	s.buf.Fill(n.R, n.G, n.B, n.A)
	return nil
}

// At returns the color of the pixel at (x, y).
// Out-of-bounds coordinates return Transparent.
func (s *Surface) At(x, y int) Color {
	r, g, b, a := s.buf.RGBA(x, y)
	return Color{R: int(r), G: int(g), B: int(b), A: int(a)}
}

// Snapshot returns a copy of the surface contents as a standard image.
func (s *Surface) Snapshot() image.Image {
	return s.buf.ToNRGBA()
}

// EncodePNG writes the surface contents as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.buf.EncodePNG(w)
}

// SavePNG writes the surface contents to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.buf.SavePNG(path)
}

// targetBuffer implements Target.
func (s *Surface) targetBuffer() *intImage.PixelBuf { return s.buf }

// isDisplay implements Target.
func (s *Surface) isDisplay() bool { return true }
