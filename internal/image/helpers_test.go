package image

import (
	"bytes"
	"testing"
)

// patternBuf returns a buffer whose every byte differs from its neighbors,
// so any misplaced pixel or swapped channel shows up in a byte comparison.
func patternBuf(t testing.TB, w, h int, f Format) *PixelBuf {
	t.Helper()
	buf, err := NewPixelBuf(w, h, f)
	if err != nil {
		t.Fatalf("NewPixelBuf(%d, %d, %v) error = %v", w, h, f, err)
	}
	for i := range buf.Data() {
		buf.Data()[i] = byte(i*7 + 3)
	}
	return buf
}

// solidBuf returns an RGBA8 buffer filled with one color.
func solidBuf(t testing.TB, w, h int, r, g, b, a uint8) *PixelBuf {
	t.Helper()
	buf, err := NewPixelBuf(w, h, FormatRGBA8)
	if err != nil {
		t.Fatalf("NewPixelBuf(%d, %d) error = %v", w, h, err)
	}
	buf.Fill(r, g, b, a)
	return buf
}

// assertSamePixels fails unless both buffers have the same size, format and bytes.
func assertSamePixels(t *testing.T, got, want *PixelBuf) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	if got.Format() != want.Format() {
		t.Fatalf("format = %v, want %v", got.Format(), want.Format())
	}
	for y := range want.Height() {
		if !bytes.Equal(got.RowBytes(y), want.RowBytes(y)) {
			t.Fatalf("row %d differs:\n got %v\nwant %v", y, got.RowBytes(y), want.RowBytes(y))
		}
	}
}
