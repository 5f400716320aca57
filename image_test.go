package rug

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestImageColors(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	img, _ := ctx.NewImage(2, 2)

	if err := img.SetForeColor(Blue); err != nil {
		t.Fatalf("SetForeColor() error = %v", err)
	}
	if err := img.SetBackColor(RGBA(1, 2, 3, 4)); err != nil {
		t.Fatalf("SetBackColor() error = %v", err)
	}
	if img.ForeColor() != Blue || img.BackColor() != RGBA(1, 2, 3, 4) {
		t.Errorf("colors = %v, %v", img.ForeColor(), img.BackColor())
	}
}

func TestImageInvalidColorKeepsState(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	img, _ := ctx.NewImage(2, 2)

	tests := []struct {
		name string
		c    Color
		arg  string
	}{
		{"red too large", RGB(256, 0, 0), "color.r"},
		{"negative green", RGB(0, -1, 0), "color.g"},
		{"blue too large", RGB(0, 0, 1000), "color.b"},
		{"negative alpha", RGBA(0, 0, 0, -5), "color.a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := img.SetForeColor(tt.c)
			var argErr *InvalidArgumentError
			if !errors.As(err, &argErr) || argErr.Arg != tt.arg {
				t.Errorf("SetForeColor() error = %v, want invalid %s", err, tt.arg)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Error("error does not match ErrInvalidArgument")
			}
			if err := img.SetBackColor(tt.c); err == nil {
				t.Error("SetBackColor() accepted an invalid color")
			}
			if img.ForeColor() != White || img.BackColor() != Black {
				t.Errorf("colors changed to %v, %v", img.ForeColor(), img.BackColor())
			}
		})
	}
}

func TestImageRelease(t *testing.T) {
	ctx, logs := newLoggedContext(t, 4, 4)
	img := solidImage(t, ctx, 3, 2, Red)

	img.Release()
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("size after Release = %dx%d, want 0x0", img.Width(), img.Height())
	}
	img.Release() // no-op

	if n := ctx.pool.Len(); n != 1 {
		t.Errorf("pool holds %d buffers after double Release, want 1", n)
	}
	if c := img.At(0, 0); c != Transparent {
		t.Errorf("At() after Release = %v, want transparent", c)
	}

	if _, err := img.Rotate(90); !errors.Is(err, ErrReleased) {
		t.Errorf("Rotate() after Release error = %v, want ErrReleased", err)
	}
	if err := img.FlipHInPlace(); !errors.Is(err, ErrReleased) {
		t.Errorf("FlipHInPlace() after Release error = %v, want ErrReleased", err)
	}
	if err := img.SavePNG(t.TempDir() + "/x.png"); !errors.Is(err, ErrReleased) {
		t.Errorf("SavePNG() after Release error = %v, want ErrReleased", err)
	}

	img.DrawRect(0, 0, 1, 1)
	img.Draw(0, 0)
	out := logs.String()
	if !strings.Contains(out, "draw on released image") || !strings.Contains(out, "image draw dropped") {
		t.Errorf("dropped draws not logged at warn:\n%s", out)
	}
	if strings.Count(out, "level=WARN") < 2 {
		t.Errorf("want two warnings, got:\n%s", out)
	}
}

func TestDrawRectOnBlankImage(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	img, _ := ctx.NewImage(10, 10)
	if err := img.SetForeColor(Blue); err != nil {
		t.Fatal(err)
	}

	img.DrawRect(0, 0, 9, 9)

	for _, p := range [][2]int{{0, 0}, {9, 0}, {0, 9}, {9, 9}} {
		if c := img.At(p[0], p[1]); c != Blue {
			t.Errorf("corner %v = %v, want opaque blue", p, c)
		}
	}
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			if c := img.At(x, y); c != Transparent {
				t.Fatalf("interior (%d,%d) = %v, want untouched", x, y, c)
			}
		}
	}
}

func TestFillShapesUseBackColor(t *testing.T) {
	ctx := newTestContext(t, 4, 4)

	tests := []struct {
		name string
		draw func(*Image)
		at   [2]int
	}{
		{"rect", func(img *Image) { img.FillRect(2, 2, 8, 8) }, [2]int{5, 5}},
		{"circle", func(img *Image) { img.FillCircle(10, 10, 5) }, [2]int{10, 10}},
		{"pie", func(img *Image) { img.FillPie(10, 10, 8, 0, 90) }, [2]int{13, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _ := ctx.NewImage(20, 20)
			_ = img.SetForeColor(Red)
			_ = img.SetBackColor(Green)
			tt.draw(img)
			if c := img.At(tt.at[0], tt.at[1]); c != Green {
				t.Errorf("At(%v) = %v, want back color green", tt.at, c)
			}
		})
	}
}

func TestOutlineShapesUseForeColor(t *testing.T) {
	ctx := newTestContext(t, 4, 4)

	tests := []struct {
		name string
		draw func(*Image)
		at   [2]int
	}{
		{"circle", func(img *Image) { img.DrawCircle(10, 10, 5) }, [2]int{15, 10}},
		{"pie", func(img *Image) { img.DrawPie(10, 10, 8, 0, 90) }, [2]int{14, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _ := ctx.NewImage(20, 20)
			_ = img.SetForeColor(Red)
			_ = img.SetBackColor(Green)
			tt.draw(img)
			if c := img.At(tt.at[0], tt.at[1]); c != Red {
				t.Errorf("At(%v) = %v, want fore color red", tt.at, c)
			}
			if c := img.At(10, 10); c == Green {
				t.Error("outline used the back color")
			}
		})
	}
}

func TestPieAnglesCounterClockwise(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	img, _ := ctx.NewImage(40, 40)
	_ = img.SetBackColor(Yellow)

	// 0..90 counter-clockwise from east is the upper-right quadrant.
	img.FillPie(20, 20, 15, 0, 90)

	if c := img.At(26, 14); c != Yellow {
		t.Errorf("upper-right = %v, want filled", c)
	}
	for _, p := range [][2]int{{26, 26}, {14, 14}, {14, 26}} {
		if c := img.At(p[0], p[1]); c != Transparent {
			t.Errorf("pixel %v = %v, want untouched", p, c)
		}
	}
}

func TestPieAngleConversion(t *testing.T) {
	tests := []struct {
		start, end int
		s, e       int
	}{
		{0, 90, 270, 360},
		{90, 180, 180, 270},
		{45, 315, 45, 315},
		{-30, 30, 330, 390},
	}
	for _, tt := range tests {
		s, e := pieAngles(tt.start, tt.end)
		if s != tt.s || e != tt.e {
			t.Errorf("pieAngles(%d, %d) = %d, %d, want %d, %d", tt.start, tt.end, s, e, tt.s, tt.e)
		}
	}
}

func TestTranslucentFillBlends(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	img := solidImage(t, ctx, 4, 4, Black)

	_ = img.SetBackColor(RGBA(255, 255, 255, 128))
	img.FillRect(0, 0, 3, 3)

	c := img.At(2, 2)
	if c.R < 127 || c.R > 129 || c.A != 255 {
		t.Errorf("blended pixel = %v, want about {128 128 128 255}", c)
	}
}

func TestImageSavePNG(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	img := solidImage(t, ctx, 3, 3, Cyan)
	path := t.TempDir() + "/cyan.png"

	if err := img.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	back, err := ctx.LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if c := back.At(1, 1); c != Cyan {
		t.Errorf("reloaded pixel = %v, want cyan", c)
	}
}

func TestImageDrawableInterface(t *testing.T) {
	var _ Drawable = (*Image)(nil)
	var _ Drawable = (*Layer)(nil)
	var _ Target = (*Surface)(nil)
	var _ Target = (*Layer)(nil)
	var _ color.Color = Color{}
}
