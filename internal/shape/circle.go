package shape

import (
	"image/color"

	intImage "github.com/gogpu/rug/internal/image"
)

// Circle draws the outline of a circle centered at (x, y) with the
// midpoint algorithm. A radius of 0 draws a single pixel, a negative
// radius draws nothing.
func Circle(dst *intImage.PixelBuf, x, y, r int, c color.NRGBA) {
	if r < 0 {
		return
	}
	p := plotter{dst: dst, c: c}

	octants(r, func(dx, dy int) {
		quad(x, y, dx, dy, p.plot)
		if dx != dy {
			quad(x, y, dy, dx, p.plot)
		}
	})
}

// FillCircle fills a circle centered at (x, y). The filled area is bounded
// by the same pixels Circle draws.
func FillCircle(dst *intImage.PixelBuf, x, y, r int, c color.NRGBA) {
	if r < 0 {
		return
	}
	p := plotter{dst: dst, c: c}

	// half[k] is the half-width of the rows k pixels above and below y.
	half := make([]int, r+1)
	octants(r, func(dx, dy int) {
		half[dy] = max(half[dy], dx)
		half[dx] = max(half[dx], dy)
	})

	p.hline(x-half[0], x+half[0], y)
	for k := 1; k <= r; k++ {
		p.hline(x-half[k], x+half[k], y-k)
		p.hline(x-half[k], x+half[k], y+k)
	}
}

// octants walks one octant of a midpoint circle of radius r, from (0, r)
// to the diagonal, calling fn with each offset.
func octants(r int, fn func(dx, dy int)) {
	dx, dy := 0, r
	d := 1 - r
	for dx <= dy {
		fn(dx, dy)
		dx++
		if d < 0 {
			d += 2*dx + 1
		} else {
			dy--
			d += 2*(dx-dy) + 1
		}
	}
}

// quad emits the mirror images of offset (dx, dy) in all four quadrants,
// skipping duplicates on the axes.
func quad(x, y, dx, dy int, emit func(x, y int)) {
	emit(x+dx, y+dy)
	if dx != 0 {
		emit(x-dx, y+dy)
	}
	if dy != 0 {
		emit(x+dx, y-dy)
		if dx != 0 {
			emit(x-dx, y-dy)
		}
	}
}
