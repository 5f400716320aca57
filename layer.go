package rug

import (
	"log/slog"

	intImage "github.com/gogpu/rug/internal/image"
)

// Layer is an off-screen 32-bit RGBA buffer. Images and other layers can
// be drawn onto it, and it is drawn onto the display or another layer
// like an image, always blended source-over.
//
// A Layer exclusively owns its buffer until Release.
type Layer struct {
	ctx *Context
	buf *intImage.PixelBuf
}

// Width returns the width in pixels, or 0 after Release.
func (l *Layer) Width() int {
	if l.buf == nil {
		return 0
	}
	return l.buf.Width()
}

// Height returns the height in pixels, or 0 after Release.
func (l *Layer) Height() int {
	if l.buf == nil {
		return 0
	}
	return l.buf.Height()
}

// At returns the color of the pixel at (x, y).
// Out-of-bounds coordinates and released layers return Transparent.
func (l *Layer) At(x, y int) Color {
	if l.buf == nil {
		return Transparent
	}
	r, g, b, a := l.buf.RGBA(x, y)
	return Color{R: int(r), G: int(g), B: int(b), A: int(a)}
}

// Clear makes every pixel fully transparent.
func (l *Layer) Clear() {
	if l.buf == nil {
		l.ctx.logger.Warn("rug: clear on released layer")
		return
	}
	l.buf.Clear()
}

// Draw blends the layer at (x, y) onto the display, or onto the layer
// given with WithTarget. Failures are logged at Warn and leave every
// buffer untouched. Draw returns l so calls can be chained.
func (l *Layer) Draw(x, y int, opts ...DrawOption) *Layer {
	if err := l.ctx.Draw(l, x, y, opts...); err != nil {
		l.ctx.logger.Warn("rug: layer draw dropped", slog.String("err", err.Error()))
	}
	return l
}

// Release returns the buffer to the Context pool. Calling Release again
// does nothing.
func (l *Layer) Release() {
	if l.buf == nil {
		return
	}
	l.ctx.logger.Debug("rug: layer released",
		slog.Int("width", l.buf.Width()),
		slog.Int("height", l.buf.Height()))
	l.ctx.recycle(l.buf)
	l.buf = nil
}

// sourceBuffer implements Drawable.
func (l *Layer) sourceBuffer() *intImage.PixelBuf { return l.buf }

// blitOp implements Drawable: layers always blend.
func (l *Layer) blitOp(Target) intImage.BlitOp { return intImage.BlitOver }

// targetBuffer implements Target.
func (l *Layer) targetBuffer() *intImage.PixelBuf {
	if l == nil {
		return nil
	}
	return l.buf
}

// isDisplay implements Target.
func (l *Layer) isDisplay() bool { return false }
