package rug

import (
	"image"
	"log/slog"

	intImage "github.com/gogpu/rug/internal/image"
)

// Drawable is anything the compositor can draw: *Image and *Layer.
type Drawable interface {
	Width() int
	Height() int

	sourceBuffer() *intImage.PixelBuf
	blitOp(t Target) intImage.BlitOp
}

// Target is anything the compositor can draw onto: *Surface and *Layer.
type Target interface {
	targetBuffer() *intImage.PixelBuf
	isDisplay() bool
}

// DrawOption configures a single draw.
type DrawOption func(*drawOptions)

// drawOptions holds the source region and destination of a draw.
type drawOptions struct {
	srcX, srcY int
	srcW, srcH int
	cropped    bool
	target     Target
}

// WithCrop draws only a srcW x srcH region of the source. A srcH of 0 or
// less means a square region of srcW. The region starts at the origin set
// with WithCropOrigin, (0, 0) by default.
func WithCrop(srcW, srcH int) DrawOption {
	return func(o *drawOptions) {
		if srcH <= 0 {
			srcH = srcW
		}
		o.srcW, o.srcH = srcW, srcH
		o.cropped = true
	}
}

// WithCropOrigin sets the top-left corner of the source region.
// Without WithCrop the region extends to the source's right and bottom
// edges.
func WithCropOrigin(srcX, srcY int) DrawOption {
	return func(o *drawOptions) {
		o.srcX, o.srcY = srcX, srcY
	}
}

// WithTarget draws onto t instead of the display. A nil t, including a
// nil *Layer, means the display.
func WithTarget(t Target) DrawOption {
	return func(o *drawOptions) {
		o.target = t
	}
}

// Draw composites src with its top-left corner at (x, y). The target is
// the display unless WithTarget says otherwise. Images overwrite display
// pixels and blend onto layers; layers always blend.
//
// The source region is clipped to the source, then to the destination;
// destination pixels outside the clipped region are never touched, and
// the source is never modified. A layer may be drawn onto itself.
//
// Draw returns ErrReleased when src or the target has been released, and
// an *InvalidArgumentError for a non-positive crop width.
func (c *Context) Draw(src Drawable, x, y int, opts ...DrawOption) error {
	var o drawOptions
	for _, opt := range opts {
		opt(&o)
	}

	target := o.target
	if l, ok := target.(*Layer); target == nil || (ok && l == nil) {
		target = c.display
	}

	sbuf := src.sourceBuffer()
	if sbuf == nil {
		return releasedError("Draw")
	}
	dbuf := target.targetBuffer()
	if dbuf == nil {
		return releasedError("Draw")
	}

	region := intImage.Rect{X: o.srcX, Y: o.srcY, Width: sbuf.Width() - o.srcX, Height: sbuf.Height() - o.srcY}
	if o.cropped {
		if o.srcW <= 0 {
			return &InvalidArgumentError{Op: "Draw", Arg: "crop", Value: image.Pt(o.srcW, o.srcH)}
		}
		region.Width, region.Height = o.srcW, o.srcH
	}

	if sbuf == dbuf {
		sbuf = sbuf.Clone()
	}

	op := src.blitOp(target)
	written := intImage.Blit(dbuf, sbuf, &region, x, y, op)
	if written.Empty() {
		c.logger.Debug("rug: draw clipped away", slog.Int("x", x), slog.Int("y", y))
	}
	return nil
}
