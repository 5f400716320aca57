package image

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// opaquer is implemented by standard library images that can report
// whether every pixel is fully opaque.
type opaquer interface {
	Opaque() bool
}

// FromStdImage creates a PixelBuf from a decoded standard library image,
// keeping the decoded depth where it has a matching Format:
//
//   - *image.Gray becomes FormatGray8
//   - images that report Opaque() become FormatRGB8
//   - everything else becomes FormatRGBA8 with straight alpha
func FromStdImage(img image.Image) (*PixelBuf, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf, err := NewPixelBuf(width, height, FormatGray8)
		if err != nil {
			return nil, err
		}
		for y := range height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), src.Pix[start:start+width])
		}
		return buf, nil

	case *image.NRGBA:
		buf, err := NewPixelBuf(width, height, FormatRGBA8)
		if err != nil {
			return nil, err
		}
		for y := range height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), src.Pix[start:start+width*4])
		}
		return buf, nil
	}

	format := FormatRGBA8
	if o, ok := img.(opaquer); ok && o.Opaque() {
		format = FormatRGB8
	}
	buf, err := NewPixelBuf(width, height, format)
	if err != nil {
		return nil, err
	}

	// Generic slow path for any image type
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			_ = buf.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return buf, nil
}

// ToNRGBA copies the buffer into a new *image.NRGBA.
func (b *PixelBuf) ToNRGBA() *image.NRGBA {
	nrgba := image.NewNRGBA(b.Bounds())
	if b.format == FormatRGBA8 {
		for y := range b.height {
			copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
		}
		return nrgba
	}

	bpp := b.format.BytesPerPixel()
	for y := range b.height {
		row := b.RowBytes(y)
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x := range b.width {
			r, g, bl, a := b.codec.load(row[x*bpp:])
			dst[x*4], dst[x*4+1], dst[x*4+2], dst[x*4+3] = r, g, bl, a
		}
	}
	return nrgba
}

// EncodePNG encodes the buffer as PNG to the given writer.
func (b *PixelBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToNRGBA()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the buffer as a PNG file.
func (b *PixelBuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
