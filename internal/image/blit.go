package image

// Rect represents a rectangular region in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// BlitOp defines how source pixels are written into the destination.
type BlitOp uint8

const (
	// BlitCopy overwrites destination pixels with source pixels, alpha included.
	BlitCopy BlitOp = iota

	// BlitOver composites source pixels over the destination (source-over).
	BlitOver
)

// String returns a string representation of the blit operation.
func (op BlitOp) String() string {
	switch op {
	case BlitCopy:
		return "Copy"
	case BlitOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Blit copies the sr region of src to dst with its top-left corner at
// (dx, dy). A nil sr selects the whole source.
//
// The source region is first clipped to the source bounds, then the
// destination region is clipped to the destination bounds; each clip
// shifts the other side so pixels stay aligned. Pixels of dst outside the
// final region are never touched. The source is never modified.
//
// Formats may differ; pixels are converted through straight RGBA.
// Returns the destination rectangle that was written, which may be empty.
func Blit(dst, src *PixelBuf, sr *Rect, dx, dy int, op BlitOp) Rect {
	r := Rect{X: 0, Y: 0, Width: src.width, Height: src.height}
	if sr != nil {
		r = *sr
	}

	// Clip to source bounds.
	if r.X < 0 {
		r.Width += r.X
		dx -= r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		dy -= r.Y
		r.Y = 0
	}
	r.Width = min(r.Width, src.width-r.X)
	r.Height = min(r.Height, src.height-r.Y)

	// Clip to destination bounds.
	if dx < 0 {
		r.X -= dx
		r.Width += dx
		dx = 0
	}
	if dy < 0 {
		r.Y -= dy
		r.Height += dy
		dy = 0
	}
	r.Width = min(r.Width, dst.width-dx)
	r.Height = min(r.Height, dst.height-dy)

	if r.Empty() {
		return Rect{X: dx, Y: dy}
	}

	sbpp := src.format.BytesPerPixel()
	dbpp := dst.format.BytesPerPixel()

	for row := range r.Height {
		srow := src.RowBytes(r.Y + row)[r.X*sbpp : (r.X+r.Width)*sbpp]
		drow := dst.RowBytes(dy + row)[dx*dbpp : (dx+r.Width)*dbpp]

		if op == BlitCopy && src.format == dst.format {
			copy(drow, srow)
			continue
		}

		for i := range r.Width {
			sp := srow[i*sbpp:]
			dp := drow[i*dbpp:]
			cr, cg, cb, ca := src.codec.load(sp)
			if op == BlitOver && ca != 255 {
				dr, dg, db, da := dst.codec.load(dp)
				cr, cg, cb, ca = blendOver(cr, cg, cb, ca, dr, dg, db, da)
			}
			dst.codec.store(dp, cr, cg, cb, ca)
		}
	}

	return Rect{X: dx, Y: dy, Width: r.Width, Height: r.Height}
}
