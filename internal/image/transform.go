package image

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ErrInvalidArgument is returned for non-finite angles and unusable scale factors.
var ErrInvalidArgument = errors.New("image: invalid argument")

// sizeEpsilon absorbs floating point noise when sizing rotated output, so a
// 10x10 buffer turned by 90 degrees is 10x10 and not 11x11.
const sizeEpsilon = 1e-6

// Rotate returns a new buffer holding src rotated by degrees about its
// center. Positive angles turn counter-clockwise on screen. The result is
// sized to the bounding box of the rotated rectangle, so nothing is
// cropped, and is always FormatRGBA8.
//
// Angles that are exact multiples of 90 degrees are remapped pixel for
// pixel; all other angles are resampled with the given interpolation mode.
// The angle is used as given, it is not normalized first.
func Rotate(src *PixelBuf, degrees float64, mode InterpolationMode) (*PixelBuf, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return nil, fmt.Errorf("image: rotate by %v degrees: %w", degrees, ErrInvalidArgument)
	}

	rgba, err := asRGBA8(src)
	if err != nil {
		return nil, err
	}

	if q := degrees / 90; q == math.Trunc(q) {
		turns := int(math.Mod(q, 4))
		if turns < 0 {
			turns += 4
		}
		return quarterTurn(rgba, turns), nil
	}

	w, h := src.Size()
	dw, dh := RotatedSize(w, h, degrees)

	m := Translate(float64(dw)/2, float64(dh)/2).
		Multiply(RotateBy(degrees * math.Pi / 180)).
		Multiply(Translate(-float64(w)/2, -float64(h)/2))

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	mode.Interpolator().Transform(dst, m.Aff3(), nrgbaView(rgba), rgba.Bounds(), draw.Src, nil)

	return fromPremultiplied(dst), nil
}

// RotatedSize returns the dimensions of the bounding box of a w x h
// rectangle rotated by degrees. Both results are at least 1.
func RotatedSize(w, h int, degrees float64) (int, int) {
	m := RotateBy(degrees * math.Pi / 180)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}} {
		x, y := m.TransformPoint(corner[0], corner[1])
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	fw, fh := maxX-minX, maxY-minY
	return max(1, int(math.Ceil(fw-sizeEpsilon))), max(1, int(math.Ceil(fh-sizeEpsilon)))
}

// quarterTurn rotates an RGBA8 buffer counter-clockwise by turns*90 degrees
// without resampling. turns must be in [0, 3]. The result never aliases src.
func quarterTurn(src *PixelBuf, turns int) *PixelBuf {
	w, h := src.Size()
	if turns == 0 {
		return src.Clone()
	}

	dw, dh := w, h
	if turns%2 == 1 {
		dw, dh = h, w
	}
	dst, _ := NewPixelBuf(dw, dh, FormatRGBA8)

	for y := range h {
		srow := src.RowBytes(y)
		for x := range w {
			var dx, dy int
			switch turns {
			case 1:
				dx, dy = y, w-1-x
			case 2:
				dx, dy = w-1-x, h-1-y
			default:
				dx, dy = h-1-y, x
			}
			copy(dst.PixelBytes(dx, dy), srow[x*4:x*4+4])
		}
	}
	return dst
}

// ScaledSize returns the output dimensions for scale factors sx and sy:
// each side is rounded to the nearest integer and is at least 1.
func ScaledSize(w, h int, sx, sy float64) (int, int) {
	dw := int(math.Floor(float64(w)*math.Abs(sx) + 0.5))
	dh := int(math.Floor(float64(h)*math.Abs(sy) + 0.5))
	return max(1, dw), max(1, dh)
}

// Scale returns a new buffer holding src resized by sx horizontally and sy
// vertically, resampled with the given interpolation mode. Negative factors
// mirror along that axis. A factor of exactly 1 on both axes copies src
// unchanged. The result is always FormatRGBA8.
func Scale(src *PixelBuf, sx, sy float64, mode InterpolationMode) (*PixelBuf, error) {
	if !usableFactor(sx) || !usableFactor(sy) {
		return nil, fmt.Errorf("image: scale by (%v, %v): %w", sx, sy, ErrInvalidArgument)
	}

	rgba, err := asRGBA8(src)
	if err != nil {
		return nil, err
	}
	if sx == 1 && sy == 1 {
		if rgba == src {
			return src.Clone(), nil
		}
		return rgba, nil
	}

	w, h := src.Size()
	dw, dh := ScaledSize(w, h, sx, sy)
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	view := nrgbaView(rgba)

	if sx > 0 && sy > 0 {
		mode.Interpolator().Scale(dst, dst.Bounds(), view, view.Bounds(), draw.Src, nil)
		return fromPremultiplied(dst), nil
	}

	// Mirroring: map the source rectangle onto the destination with a
	// negative scale and shift it back into view.
	kx := float64(dw) / float64(w)
	ky := float64(dh) / float64(h)
	tx, ty := 0.0, 0.0
	if sx < 0 {
		kx, tx = -kx, float64(dw)
	}
	if sy < 0 {
		ky, ty = -ky, float64(dh)
	}
	m := Translate(tx, ty).Multiply(ScaleBy(kx, ky))
	mode.Interpolator().Transform(dst, m.Aff3(), view, view.Bounds(), draw.Src, nil)

	return fromPremultiplied(dst), nil
}

// usableFactor reports whether f can be used as a scale factor.
func usableFactor(f float64) bool {
	return f != 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// asRGBA8 returns src itself when it is already FormatRGBA8, or a converted copy.
func asRGBA8(src *PixelBuf) (*PixelBuf, error) {
	if src.format == FormatRGBA8 {
		return src, nil
	}
	return src.Convert(FormatRGBA8)
}

// nrgbaView wraps an RGBA8 buffer as an *image.NRGBA sharing its pixels.
// The view is only handed to read-only consumers.
func nrgbaView(b *PixelBuf) *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.stride,
		Rect:   b.Bounds(),
	}
}

// fromPremultiplied converts a premultiplied *image.RGBA into a new
// straight-alpha RGBA8 buffer.
func fromPremultiplied(img *image.RGBA) *PixelBuf {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	dst, _ := NewPixelBuf(w, h, FormatRGBA8)

	for y := range h {
		srow := img.Pix[y*img.Stride : y*img.Stride+w*4]
		drow := dst.RowBytes(y)
		for i := 0; i < len(srow); i += 4 {
			a := srow[i+3]
			switch a {
			case 0:
				// Leave fully transparent pixels zeroed.
			case 255:
				copy(drow[i:i+4], srow[i:i+4])
			default:
				drow[i] = unpremul(srow[i], a)
				drow[i+1] = unpremul(srow[i+1], a)
				drow[i+2] = unpremul(srow[i+2], a)
				drow[i+3] = a
			}
		}
	}
	return dst
}

// unpremul divides a premultiplied channel by alpha, rounding to nearest.
func unpremul(c, a uint8) uint8 {
	v := (int(c)*255 + int(a)/2) / int(a)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
