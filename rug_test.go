package rug

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// newTestContext returns a Context with a 32-bit display of the given size.
func newTestContext(t *testing.T, w, h int, opts ...ContextOption) *Context {
	t.Helper()
	display, err := NewSurface(w, h, 32)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	ctx, err := NewContext(display, opts...)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return ctx
}

// newLoggedContext returns a Context that logs every level into the
// returned buffer.
func newLoggedContext(t *testing.T, w, h int) (*Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return newTestContext(t, w, h, WithLogger(logger)), &out
}

// solidImage returns a w x h image filled with c.
func solidImage(t *testing.T, ctx *Context, w, h int, c Color) *Image {
	t.Helper()
	img, err := ctx.NewImage(w, h)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	if err := img.SetBackColor(c); err != nil {
		t.Fatal(err)
	}
	img.FillRect(0, 0, w-1, h-1)
	return img
}

// writePNG encodes img into a file under t.TempDir and returns its path.
func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// gradient returns an opaque NRGBA image where every pixel differs.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 20), G: uint8(y * 20), B: uint8(x*7 + y*3), A: 255})
		}
	}
	return img
}

// sameImage fails unless both images have equal size and pixels.
func sameImage(t *testing.T, got, want *Image) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for y := range want.Height() {
		for x := range want.Width() {
			if g, w := got.At(x, y), want.At(x, y); g != w {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, g, w)
			}
		}
	}
}

// encodePNG is png.Encode with a bytes.Buffer destination.
func encodePNG(b *bytes.Buffer, img image.Image) error {
	return png.Encode(b, img)
}

// pngReader encodes img as PNG and returns a reader over the bytes.
func pngReader(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		t.Fatal(err)
	}
	return &b
}
