package shape

import (
	stdimage "image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	intImage "github.com/gogpu/rug/internal/image"
)

// coverageThreshold is the minimum mask alpha for an interior pixel of a
// filled pie to be written.
const coverageThreshold = 0x80

// PiePath returns the closed polygon approximating a pie slice centered at
// (x, y). The first vertex is the center, followed by points on the arc
// spaced 3/r radians apart. Vertices are truncated to whole pixels.
//
// Angles are in degrees clockwise from east. The result is nil for a
// negative radius.
func PiePath(x, y, r, start, end int) *path.Data {
	if r < 0 {
		return nil
	}
	center := vec.Vec2{X: float64(x), Y: float64(y)}
	p := (&path.Data{}).MoveTo(center)
	if r == 0 {
		return p.Close()
	}

	step := 3.0 / float64(r)
	start %= 360
	end %= 360
	from := float64(start) * math.Pi / 180
	to := float64(end) * math.Pi / 180
	if start > end {
		to += 2 * math.Pi
	}

	arc := func(a float64) vec.Vec2 {
		return vec.Vec2{
			X: float64(x + int(float64(r)*math.Cos(a))),
			Y: float64(y + int(float64(r)*math.Sin(a))),
		}
	}

	p.LineTo(arc(from))
	for a := from; a < to; {
		a = min(a+step, to)
		p.LineTo(arc(a))
	}
	return p.Close()
}

// vertices returns the points of a closed polygon path in order.
func vertices(p *path.Data) []vec.Vec2 {
	var pts []vec.Vec2
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			pts = append(pts, p.Coords[i])
			i++
		}
	}
	return pts
}

// outline collects the pixels of the closed polyline through pts.
// Two points collapse to a single line from the first to the second.
func outline(pts []vec.Vec2, set pixelSet) {
	switch len(pts) {
	case 0:
		return
	case 1:
		set.add(int(pts[0].X), int(pts[0].Y))
		return
	case 2:
		Line(int(pts[0].X), int(pts[0].Y), int(pts[1].X), int(pts[1].Y), set.add)
		return
	}
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		Line(int(a.X), int(a.Y), int(b.X), int(b.Y), set.add)
	}
}

// Pie draws the outline of a pie slice centered at (x, y): the arc plus
// the two radii joining it to the center. A radius of 0 draws a single
// pixel, a negative radius draws nothing.
func Pie(dst *intImage.PixelBuf, x, y, r, start, end int, c color.NRGBA) {
	p := PiePath(x, y, r, start, end)
	if p == nil {
		return
	}
	set := pixelSet{}
	outline(vertices(p), set)
	set.flush(plotter{dst: dst, c: c})
}

// FillPie fills a pie slice centered at (x, y). The filled area includes
// the outline Pie draws.
func FillPie(dst *intImage.PixelBuf, x, y, r, start, end int, c color.NRGBA) {
	p := PiePath(x, y, r, start, end)
	if p == nil {
		return
	}
	pts := vertices(p)
	set := pixelSet{}
	outline(pts, set)
	if len(pts) >= 3 {
		interior(pts, set)
	}
	set.flush(plotter{dst: dst, c: c})
}

// interior rasterizes the polygon through pixel centers and adds every
// pixel whose coverage reaches coverageThreshold.
func interior(pts []vec.Vec2, set pixelSet) {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, v := range pts[1:] {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}
	w := int(maxX-minX) + 1
	h := int(maxY-minY) + 1
	origin := vec.Vec2{X: minX - 0.5, Y: minY - 0.5}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	for i, v := range pts {
		local := v.Sub(origin)
		if i == 0 {
			z.MoveTo(float32(local.X), float32(local.Y))
		} else {
			z.LineTo(float32(local.X), float32(local.Y))
		}
	}
	z.ClosePath()

	mask := stdimage.NewAlpha(stdimage.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), stdimage.Opaque, stdimage.Point{})

	for my := range h {
		for mx := range w {
			if mask.AlphaAt(mx, my).A >= coverageThreshold {
				set.add(int(minX)+mx, int(minY)+my)
			}
		}
	}
}
