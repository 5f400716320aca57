package image

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when an operation has no implementation
// for the buffer's pixel format.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// pixelMover copies one pixel from src to dst. Both slices start at the
// pixel and hold at least one pixel.
type pixelMover func(dst, src []byte)

// moverTable holds the mirroring strategies keyed by bytes per pixel.
//
// 24-bit pixels are moved as a unit: the channel order inside a pixel is
// preserved, so FlipH and FlipV never swap red and blue.
var moverTable = map[int]pixelMover{
	4: func(dst, src []byte) {
		_ = dst[3]
		dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], src[3]
	},
	3: func(dst, src []byte) {
		_ = dst[2]
		dst[0], dst[1], dst[2] = src[0], src[1], src[2]
	},
	2: func(dst, src []byte) {
		_ = dst[1]
		dst[0], dst[1] = src[0], src[1]
	},
}

// moverFor returns the mirroring strategy for the buffer's format.
func moverFor(op string, f Format) (pixelMover, error) {
	move, ok := moverTable[f.BytesPerPixel()]
	if !ok {
		return nil, fmt.Errorf("image: %s %s (%d bpp): %w", op, f, f.BitsPerPixel(), ErrUnsupportedFormat)
	}
	return move, nil
}

// FlipH returns a new buffer with the columns of src in reverse order.
// The result has the same dimensions and format as src.
// Returns ErrUnsupportedFormat for depths other than 16, 24 and 32 bits.
func FlipH(src *PixelBuf) (*PixelBuf, error) {
	move, err := moverFor("flip horizontal", src.format)
	if err != nil {
		return nil, err
	}
	dst, err := NewPixelBuf(src.width, src.height, src.format)
	if err != nil {
		return nil, err
	}

	bpp := src.format.BytesPerPixel()
	last := src.width - 1
	for y := range src.height {
		srow := src.RowBytes(y)
		drow := dst.RowBytes(y)
		for x := range src.width {
			move(drow[x*bpp:], srow[(last-x)*bpp:])
		}
	}
	return dst, nil
}

// FlipV returns a new buffer with the rows of src in reverse order.
// The result has the same dimensions and format as src.
// Returns ErrUnsupportedFormat for depths other than 16, 24 and 32 bits.
func FlipV(src *PixelBuf) (*PixelBuf, error) {
	move, err := moverFor("flip vertical", src.format)
	if err != nil {
		return nil, err
	}
	dst, err := NewPixelBuf(src.width, src.height, src.format)
	if err != nil {
		return nil, err
	}

	bpp := src.format.BytesPerPixel()
	last := src.height - 1
	for y := range src.height {
		srow := src.RowBytes(last - y)
		drow := dst.RowBytes(y)
		for x := range src.width {
			move(drow[x*bpp:], srow[x*bpp:])
		}
	}
	return dst, nil
}
