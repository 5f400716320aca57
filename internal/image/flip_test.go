package image

import (
	"bytes"
	"errors"
	"testing"
)

func TestFlipRoundTrip(t *testing.T) {
	flips := []struct {
		name string
		fn   func(*PixelBuf) (*PixelBuf, error)
	}{
		{"FlipH", FlipH},
		{"FlipV", FlipV},
	}
	formats := []Format{FormatRGBA8, FormatBGRA8, FormatRGB8, FormatBGR8, FormatRGB565}

	for _, flip := range flips {
		for _, f := range formats {
			t.Run(flip.name+"/"+f.String(), func(t *testing.T) {
				src := patternBuf(t, 7, 5, f)
				once, err := flip.fn(src)
				if err != nil {
					t.Fatalf("%s() error = %v", flip.name, err)
				}
				if bytes.Equal(once.Data(), src.Data()) {
					t.Fatal("single flip left the buffer unchanged")
				}
				twice, err := flip.fn(once)
				if err != nil {
					t.Fatalf("%s() error = %v", flip.name, err)
				}
				assertSamePixels(t, twice, src)
			})
		}
	}
}

func TestFlipMirrorsIndices(t *testing.T) {
	src := patternBuf(t, 4, 3, FormatRGBA8)

	h, err := FlipH(src)
	if err != nil {
		t.Fatalf("FlipH() error = %v", err)
	}
	v, err := FlipV(src)
	if err != nil {
		t.Fatalf("FlipV() error = %v", err)
	}

	for y := range 3 {
		for x := range 4 {
			if !bytes.Equal(h.PixelBytes(x, y), src.PixelBytes(3-x, y)) {
				t.Errorf("FlipH pixel (%d,%d) != source (%d,%d)", x, y, 3-x, y)
			}
			if !bytes.Equal(v.PixelBytes(x, y), src.PixelBytes(x, 2-y)) {
				t.Errorf("FlipV pixel (%d,%d) != source (%d,%d)", x, y, x, 2-y)
			}
		}
	}
}

// 24-bit pixels keep their channel order when mirrored.
func TestFlip24BitPreservesChannelOrder(t *testing.T) {
	src, _ := NewPixelBuf(2, 2, FormatRGB8)
	_ = src.SetRGBA(0, 0, 200, 100, 50, 255)

	h, err := FlipH(src)
	if err != nil {
		t.Fatalf("FlipH() error = %v", err)
	}
	if got := h.PixelBytes(1, 0); got[0] != 200 || got[1] != 100 || got[2] != 50 {
		t.Errorf("FlipH bytes = %v, want [200 100 50]", got)
	}

	v, err := FlipV(src)
	if err != nil {
		t.Fatalf("FlipV() error = %v", err)
	}
	if got := v.PixelBytes(0, 1); got[0] != 200 || got[1] != 100 || got[2] != 50 {
		t.Errorf("FlipV bytes = %v, want [200 100 50]", got)
	}

	back, _ := FlipH(h)
	assertSamePixels(t, back, src)
}

func TestFlipKeepsFormatAndSize(t *testing.T) {
	src := patternBuf(t, 9, 4, FormatRGB565)
	out, err := FlipV(src)
	if err != nil {
		t.Fatalf("FlipV() error = %v", err)
	}
	if out.Format() != FormatRGB565 || out.Width() != 9 || out.Height() != 4 {
		t.Errorf("FlipV() = %v %dx%d, want RGB565 9x4", out.Format(), out.Width(), out.Height())
	}
	if &out.Data()[0] == &src.Data()[0] {
		t.Error("FlipV() result aliases source storage")
	}
}

func TestFlipUnsupportedDepth(t *testing.T) {
	src := patternBuf(t, 3, 3, FormatGray8)

	for name, fn := range map[string]func(*PixelBuf) (*PixelBuf, error){"FlipH": FlipH, "FlipV": FlipV} {
		out, err := fn(src)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s() error = %v, want ErrUnsupportedFormat", name, err)
		}
		if out != nil {
			t.Errorf("%s() returned a buffer with an error", name)
		}
	}
}

func BenchmarkFlipH(b *testing.B) {
	src := patternBuf(b, 512, 512, FormatRGBA8)
	b.ResetTimer()
	for range b.N {
		_, _ = FlipH(src)
	}
}
