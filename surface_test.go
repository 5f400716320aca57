package rug

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"
)

func TestNewSurface(t *testing.T) {
	tests := []struct {
		bpp    int
		format Format
	}{
		{16, FormatRGB565},
		{24, FormatRGB8},
		{32, FormatRGBA8},
	}

	for _, tt := range tests {
		s, err := NewSurface(7, 3, tt.bpp)
		if err != nil {
			t.Fatalf("NewSurface(%d bpp) error = %v", tt.bpp, err)
		}
		if s.Width() != 7 || s.Height() != 3 {
			t.Errorf("size = %dx%d, want 7x3", s.Width(), s.Height())
		}
		if s.Format() != tt.format {
			t.Errorf("NewSurface(%d bpp).Format() = %v, want %v", tt.bpp, s.Format(), tt.format)
		}
		if s.Format().BitsPerPixel() != tt.bpp {
			t.Errorf("BitsPerPixel() = %d, want %d", s.Format().BitsPerPixel(), tt.bpp)
		}
	}
}

func TestNewSurfaceInvalid(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		bpp    int
		argErr string
	}{
		{"8 bpp", 4, 4, 8, "bitsPerPixel"},
		{"15 bpp", 4, 4, 15, "bitsPerPixel"},
		{"zero width", 0, 4, 32, "size"},
		{"negative height", 4, -2, 24, "size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSurface(tt.w, tt.h, tt.bpp)
			var argErr *InvalidArgumentError
			if !errors.As(err, &argErr) || argErr.Arg != tt.argErr {
				t.Errorf("NewSurface() error = %v, want invalid %s", err, tt.argErr)
			}
		})
	}
}

func TestSurfaceClear(t *testing.T) {
	for _, bpp := range []int{16, 24, 32} {
		s, _ := NewSurface(3, 3, bpp)
		if err := s.Clear(Magenta); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		if got := s.At(2, 1); got != Magenta {
			t.Errorf("%d bpp At() = %v, want magenta", bpp, got)
		}
	}

	s, _ := NewSurface(2, 2, 32)
	if err := s.Clear(RGBA(0, 0, 0, 300)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Clear(invalid) error = %v, want ErrInvalidArgument", err)
	}
	if got := s.At(0, 0); got != Transparent {
		t.Errorf("failed Clear modified the surface: %v", got)
	}
}

func TestSurfaceAtOutOfBounds(t *testing.T) {
	s, _ := NewSurface(2, 2, 24)
	_ = s.Clear(White)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := s.At(p[0], p[1]); got != Transparent {
			t.Errorf("At(%d, %d) = %v, want transparent", p[0], p[1], got)
		}
	}
}

func TestSurfaceSnapshot(t *testing.T) {
	s, _ := NewSurface(4, 2, 32)
	_ = s.Clear(Blue)

	snap := s.Snapshot()
	if snap.Bounds().Dx() != 4 || snap.Bounds().Dy() != 2 {
		t.Errorf("snapshot bounds = %v", snap.Bounds())
	}
	if got := FromColor(snap.At(3, 1)); got != Blue {
		t.Errorf("snapshot pixel = %v, want blue", got)
	}

	_ = s.Clear(Red)
	if got := FromColor(snap.At(3, 1)); got != Blue {
		t.Error("snapshot shares memory with the surface")
	}
}

func TestSurfacePNG(t *testing.T) {
	s, _ := NewSurface(3, 3, 16)
	_ = s.Clear(Yellow)

	var b bytes.Buffer
	if err := s.EncodePNG(&b); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := png.Decode(&b)
	if err != nil {
		t.Fatal(err)
	}
	if got := FromColor(decoded.At(1, 1)); got != Yellow {
		t.Errorf("encoded pixel = %v, want yellow", got)
	}

	path := filepath.Join(t.TempDir(), "display.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	ctx := newTestContext(t, 1, 1)
	img, err := ctx.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if got := img.At(2, 2); got != Yellow {
		t.Errorf("reloaded pixel = %v, want yellow", got)
	}
}
