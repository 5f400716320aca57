package shape

import (
	"image/color"

	intImage "github.com/gogpu/rug/internal/image"
)

// Rect draws the one pixel wide outline of the rectangle with inclusive
// corners (x1, y1) and (x2, y2). Reversed corners are swapped.
func Rect(dst *intImage.PixelBuf, x1, y1, x2, y2 int, c color.NRGBA) {
	x1, x2 = order(x1, x2)
	y1, y2 = order(y1, y2)
	p := plotter{dst: dst, c: c}

	p.hline(x1, x2, y1)
	if y2 == y1 {
		return
	}
	p.hline(x1, x2, y2)
	for y := y1 + 1; y < y2; y++ {
		p.plot(x1, y)
		if x2 != x1 {
			p.plot(x2, y)
		}
	}
}

// FillRect fills the rectangle with inclusive corners (x1, y1) and (x2, y2).
// Reversed corners are swapped.
func FillRect(dst *intImage.PixelBuf, x1, y1, x2, y2 int, c color.NRGBA) {
	x1, x2 = order(x1, x2)
	y1, y2 = order(y1, y2)
	p := plotter{dst: dst, c: c}

	y1 = max(y1, 0)
	y2 = min(y2, dst.Height()-1)
	for y := y1; y <= y2; y++ {
		p.hline(x1, x2, y)
	}
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
