package rug

import (
	"errors"
	"log/slog"
	"math"

	intImage "github.com/gogpu/rug/internal/image"
)

// Rotate returns a new image holding img rotated by degrees about its
// center. Positive angles turn counter-clockwise. The result is sized to
// the bounding box of the rotated image, so nothing is cropped, and is
// always 32-bit RGBA. Corners outside the rotated image are transparent.
//
// Multiples of 90 degrees are exact; other angles are smoothed with the
// Context's interpolation mode. NaN and infinite angles return an
// *InvalidArgumentError.
func (img *Image) Rotate(degrees float64) (*Image, error) {
	buf, err := img.rotated(degrees)
	if err != nil {
		return nil, err
	}
	return img.derive(buf), nil
}

// RotateInPlace replaces the image with its rotation. See Rotate.
func (img *Image) RotateInPlace(degrees float64) error {
	buf, err := img.rotated(degrees)
	if err != nil {
		return err
	}
	img.replace(buf)
	return nil
}

func (img *Image) rotated(degrees float64) (*intImage.PixelBuf, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return nil, &InvalidArgumentError{Op: "Rotate", Arg: "degrees", Value: degrees}
	}
	return img.transform("Rotate", func(src *intImage.PixelBuf) (*intImage.PixelBuf, error) {
		return intImage.Rotate(src, degrees, img.ctx.interp)
	})
}

// Scale returns a new image resized by sx horizontally and sy vertically.
// Each side becomes round(side*|factor|) pixels, at least 1. Negative
// factors mirror the image along that axis. Scale(1, 1) is an exact copy.
// The result is always 32-bit RGBA.
//
// Zero, NaN and infinite factors return an *InvalidArgumentError.
func (img *Image) Scale(sx, sy float64) (*Image, error) {
	buf, err := img.scaled(sx, sy)
	if err != nil {
		return nil, err
	}
	return img.derive(buf), nil
}

// ScaleUniform is Scale(s, s).
func (img *Image) ScaleUniform(s float64) (*Image, error) {
	return img.Scale(s, s)
}

// ScaleInPlace replaces the image with its scaled version. See Scale.
func (img *Image) ScaleInPlace(sx, sy float64) error {
	buf, err := img.scaled(sx, sy)
	if err != nil {
		return err
	}
	img.replace(buf)
	return nil
}

// ScaleUniformInPlace is ScaleInPlace(s, s).
func (img *Image) ScaleUniformInPlace(s float64) error {
	return img.ScaleInPlace(s, s)
}

func (img *Image) scaled(sx, sy float64) (*intImage.PixelBuf, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{{"sx", sx}, {"sy", sy}} {
		if f.v == 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return nil, &InvalidArgumentError{Op: "Scale", Arg: f.name, Value: f.v}
		}
	}
	return img.transform("Scale", func(src *intImage.PixelBuf) (*intImage.PixelBuf, error) {
		return intImage.Scale(src, sx, sy, img.ctx.interp)
	})
}

// FlipH returns a new image mirrored left to right, with the same size
// and pixel format. Only 16, 24 and 32-bit images can be flipped; other
// depths return an *UnsupportedFormatError.
func (img *Image) FlipH() (*Image, error) {
	buf, err := img.transform("FlipH", intImage.FlipH)
	if err != nil {
		return nil, err
	}
	return img.derive(buf), nil
}

// FlipV returns a new image mirrored top to bottom. See FlipH.
func (img *Image) FlipV() (*Image, error) {
	buf, err := img.transform("FlipV", intImage.FlipV)
	if err != nil {
		return nil, err
	}
	return img.derive(buf), nil
}

// FlipHInPlace replaces the image with its horizontal mirror. See FlipH.
func (img *Image) FlipHInPlace() error {
	buf, err := img.transform("FlipH", intImage.FlipH)
	if err != nil {
		return err
	}
	img.replace(buf)
	return nil
}

// FlipVInPlace replaces the image with its vertical mirror. See FlipH.
func (img *Image) FlipVInPlace() error {
	buf, err := img.transform("FlipV", intImage.FlipV)
	if err != nil {
		return err
	}
	img.replace(buf)
	return nil
}

// transform applies fn to the image buffer and translates engine errors.
// The image is never modified.
func (img *Image) transform(op string, fn func(*intImage.PixelBuf) (*intImage.PixelBuf, error)) (*intImage.PixelBuf, error) {
	if img.buf == nil {
		return nil, releasedError(op)
	}
	out, err := fn(img.buf)
	switch {
	case errors.Is(err, intImage.ErrUnsupportedFormat):
		return nil, &UnsupportedFormatError{Op: op, Format: img.buf.Format()}
	case err != nil:
		return nil, err
	}
	img.ctx.logger.Debug("rug: image transformed",
		slog.String("op", op),
		slog.Int("width", out.Width()),
		slog.Int("height", out.Height()))
	return out, nil
}

// derive wraps buf in a new Image that inherits img's colors.
func (img *Image) derive(buf *intImage.PixelBuf) *Image {
	return &Image{ctx: img.ctx, buf: buf, fore: img.fore, back: img.back}
}

// replace swaps buf in and releases the previous buffer.
func (img *Image) replace(buf *intImage.PixelBuf) {
	old := img.buf
	img.buf = buf
	img.ctx.recycle(old)
}
