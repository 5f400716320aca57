package rug

import (
	"log/slog"

	intImage "github.com/gogpu/rug/internal/image"
)

// Image is a drawable pixel buffer with a foreground and background color.
// The foreground color strokes outlines, the background color fills shapes.
//
// An Image exclusively owns its buffer until Release. Transforms either
// return a new Image or, for the InPlace variants, build the new buffer
// completely before swapping it in, so a failed transform leaves the
// image unchanged.
type Image struct {
	ctx  *Context
	buf  *intImage.PixelBuf
	fore Color
	back Color
}

// Width returns the width in pixels, or 0 after Release.
func (img *Image) Width() int {
	if img.buf == nil {
		return 0
	}
	return img.buf.Width()
}

// Height returns the height in pixels, or 0 after Release.
func (img *Image) Height() int {
	if img.buf == nil {
		return 0
	}
	return img.buf.Height()
}

// Format returns the pixel format of the image buffer.
func (img *Image) Format() Format {
	if img.buf == nil {
		return FormatRGBA8
	}
	return img.buf.Format()
}

// At returns the color of the pixel at (x, y).
// Out-of-bounds coordinates and released images return Transparent.
func (img *Image) At(x, y int) Color {
	if img.buf == nil {
		return Transparent
	}
	r, g, b, a := img.buf.RGBA(x, y)
	return Color{R: int(r), G: int(g), B: int(b), A: int(a)}
}

// ForeColor returns the color used for outlines.
func (img *Image) ForeColor() Color { return img.fore }

// BackColor returns the color used for fills.
func (img *Image) BackColor() Color { return img.back }

// SetForeColor sets the color used for outlines. Components outside
// [0, 255] return an *InvalidArgumentError and leave the color unchanged.
func (img *Image) SetForeColor(c Color) error {
	if err := c.validate("SetForeColor"); err != nil {
		return err
	}
	img.fore = c
	return nil
}

// SetBackColor sets the color used for fills. Components outside
// [0, 255] return an *InvalidArgumentError and leave the color unchanged.
func (img *Image) SetBackColor(c Color) error {
	if err := c.validate("SetBackColor"); err != nil {
		return err
	}
	img.back = c
	return nil
}

// Draw composites the image at (x, y) onto the display, or onto the
// layer given with WithTarget. On the display the image overwrites the
// covered pixels; on a layer it is blended source-over.
//
// Failures are logged at Warn and leave every buffer untouched. Draw
// returns img so calls can be chained.
func (img *Image) Draw(x, y int, opts ...DrawOption) *Image {
	if err := img.ctx.Draw(img, x, y, opts...); err != nil {
		img.ctx.logger.Warn("rug: image draw dropped", slog.String("err", err.Error()))
	}
	return img
}

// SavePNG writes the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	if img.buf == nil {
		return releasedError("SavePNG")
	}
	return img.buf.SavePNG(path)
}

// Release returns the buffer to the Context pool. The image must not be
// drawn or transformed afterwards; Width and Height report 0. Calling
// Release again does nothing.
func (img *Image) Release() {
	if img.buf == nil {
		return
	}
	img.ctx.logger.Debug("rug: image released",
		slog.Int("width", img.buf.Width()),
		slog.Int("height", img.buf.Height()))
	img.ctx.recycle(img.buf)
	img.buf = nil
}

// sourceBuffer implements Drawable.
func (img *Image) sourceBuffer() *intImage.PixelBuf { return img.buf }

// blitOp implements Drawable: images overwrite the display and blend
// onto layers.
func (img *Image) blitOp(t Target) intImage.BlitOp {
	if t.isDisplay() {
		return intImage.BlitCopy
	}
	return intImage.BlitOver
}
