package shape

import (
	stdimage "image"
	"image/color"

	intImage "github.com/gogpu/rug/internal/image"
)

// plotter writes a single color into a buffer.
type plotter struct {
	dst *intImage.PixelBuf
	c   color.NRGBA
}

// plot writes one pixel. Out-of-bounds coordinates are ignored.
func (p plotter) plot(x, y int) {
	p.dst.BlendRGBA(x, y, p.c.R, p.c.G, p.c.B, p.c.A)
}

// hline writes the pixels x1..x2 on row y, clipped to the buffer.
func (p plotter) hline(x1, x2, y int) {
	if y < 0 || y >= p.dst.Height() {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x1 = max(x1, 0)
	x2 = min(x2, p.dst.Width()-1)
	for x := x1; x <= x2; x++ {
		p.plot(x, y)
	}
}

// pixelSet collects pixels so shapes built from overlapping pieces can be
// written once per pixel.
type pixelSet map[stdimage.Point]struct{}

func (s pixelSet) add(x, y int) {
	s[stdimage.Point{X: x, Y: y}] = struct{}{}
}

// flush writes every collected pixel.
func (s pixelSet) flush(p plotter) {
	for pt := range s {
		p.plot(pt.X, pt.Y)
	}
}

// Line plots the pixels of a line from (x1, y1) to (x2, y2), both ends
// included, using Bresenham's algorithm. emit is called once per pixel.
func Line(x1, y1, x2, y2 int, emit func(x, y int)) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	e := dx + dy
	for {
		emit(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
