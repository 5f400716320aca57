package rug

import (
	"log/slog"

	"github.com/gogpu/rug/internal/shape"
)

// DrawRect draws the outline of the rectangle with inclusive corners
// (left, top) and (right, bottom) in the foreground color. Reversed
// corners are swapped. Drawing is clipped to the image.
func (img *Image) DrawRect(left, top, right, bottom int) {
	if img.released("DrawRect") {
		return
	}
	shape.Rect(img.buf, left, top, right, bottom, img.fore.NRGBA())
}

// FillRect fills the rectangle with inclusive corners (left, top) and
// (right, bottom) with the background color.
func (img *Image) FillRect(left, top, right, bottom int) {
	if img.released("FillRect") {
		return
	}
	shape.FillRect(img.buf, left, top, right, bottom, img.back.NRGBA())
}

// DrawCircle draws the outline of a circle centered at (x, y) in the
// foreground color. A radius of 0 draws one pixel; a negative radius
// draws nothing.
func (img *Image) DrawCircle(x, y, radius int) {
	if img.released("DrawCircle") {
		return
	}
	shape.Circle(img.buf, x, y, radius, img.fore.NRGBA())
}

// FillCircle fills a circle centered at (x, y) with the background color.
func (img *Image) FillCircle(x, y, radius int) {
	if img.released("FillCircle") {
		return
	}
	shape.FillCircle(img.buf, x, y, radius, img.back.NRGBA())
}

// DrawPie draws the outline of a pie slice centered at (x, y) in the
// foreground color. Angles are in degrees, measured counter-clockwise
// from east (3 o'clock); the slice runs from start to end.
func (img *Image) DrawPie(x, y, radius, start, end int) {
	if img.released("DrawPie") {
		return
	}
	s, e := pieAngles(start, end)
	shape.Pie(img.buf, x, y, radius, s, e, img.fore.NRGBA())
}

// FillPie fills a pie slice with the background color. See DrawPie.
func (img *Image) FillPie(x, y, radius, start, end int) {
	if img.released("FillPie") {
		return
	}
	s, e := pieAngles(start, end)
	shape.FillPie(img.buf, x, y, radius, s, e, img.back.NRGBA())
}

// pieAngles converts counter-clockwise angles to the clockwise angles the
// pie rasterizer takes. Mirroring the sweep also swaps its ends.
func pieAngles(start, end int) (int, int) {
	return 360 - end, 360 - start
}

// released reports whether the image has been released, logging the
// dropped operation.
func (img *Image) released(op string) bool {
	if img.buf != nil {
		return false
	}
	img.ctx.logger.Warn("rug: draw on released image", slog.String("op", op))
	return true
}
