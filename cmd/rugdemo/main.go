// Command rugdemo demonstrates the rug compositing library.
//
// It builds a frame from shapes, a transformed sprite and a translucent
// layer, then writes the display to a PNG file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/rug"
)

func main() {
	var (
		width   = flag.Int("width", 640, "display width")
		height  = flag.Int("height", 480, "display height")
		bpp     = flag.Int("bpp", 32, "display color depth: 16, 24 or 32")
		sprite  = flag.String("sprite", "", "optional image file to composite")
		output  = flag.String("output", "demo.png", "output file")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	display, err := rug.NewSurface(*width, *height, *bpp)
	if err != nil {
		log.Fatalf("Failed to create display: %v", err)
	}

	opts := []rug.ContextOption{rug.WithInterpolation(rug.InterpBicubic)}
	if *verbose {
		opts = append(opts, rug.WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)))
	}
	ctx, err := rug.NewContext(display, opts...)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}

	if err := display.Clear(rug.Hex("#1a2a4a")); err != nil {
		log.Fatal(err)
	}

	drawShapesDemo(ctx)
	drawTransformDemo(ctx, *sprite)
	drawLayerDemo(ctx)

	if err := display.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d bpp)\n", *output, *width, *height, *bpp)
}

func drawShapesDemo(ctx *rug.Context) {
	img, err := ctx.NewImage(200, 200)
	if err != nil {
		log.Fatal(err)
	}
	defer img.Release()

	_ = img.SetBackColor(rug.RGBA(255, 80, 80, 200))
	img.FillCircle(70, 70, 50)
	_ = img.SetBackColor(rug.RGBA(80, 255, 80, 200))
	img.FillCircle(130, 70, 50)
	_ = img.SetBackColor(rug.RGBA(80, 80, 255, 200))
	img.FillCircle(100, 120, 50)

	_ = img.SetForeColor(rug.White)
	img.DrawRect(0, 0, 199, 199)

	_ = img.SetBackColor(rug.Yellow)
	img.FillPie(100, 170, 25, 30, 330)

	img.Draw(20, 20)
}

func drawTransformDemo(ctx *rug.Context, path string) {
	var (
		img *rug.Image
		err error
	)
	if path != "" {
		img, err = ctx.LoadImage(path)
	} else {
		img, err = ctx.NewImage(60, 60)
		if err == nil {
			_ = img.SetBackColor(rug.Hex("#ffcc00"))
			img.FillRect(0, 0, 59, 59)
			_ = img.SetForeColor(rug.Magenta)
			img.DrawRect(0, 0, 59, 59)
		}
	}
	if err != nil {
		log.Fatalf("Failed to load sprite: %v", err)
	}
	defer img.Release()

	// Rotated copies in a row
	x := 260
	for i := range 4 {
		rot, err := img.Rotate(float64(i) * 30)
		if err != nil {
			log.Fatal(err)
		}
		rot.Draw(x, 40)
		x += rot.Width() + 10
		rot.Release()
	}

	// Mirrored and stretched
	if flipped, err := img.FlipH(); err == nil {
		flipped.Draw(260, 160)
		flipped.Release()
	}
	if wide, err := img.Scale(2, 0.5); err == nil {
		wide.Draw(340, 180)
		wide.Release()
	}
}

func drawLayerDemo(ctx *rug.Context) {
	layer, err := ctx.NewScreenLayer()
	if err != nil {
		log.Fatal(err)
	}
	defer layer.Release()

	glass, err := ctx.NewImage(layer.Width()-40, 120)
	if err != nil {
		log.Fatal(err)
	}
	defer glass.Release()

	_ = glass.SetBackColor(rug.RGBA(255, 255, 255, 60))
	glass.FillRect(0, 0, glass.Width()-1, glass.Height()-1)
	glass.Draw(20, layer.Height()-140, rug.WithTarget(layer))

	// Only the top half of the banner reaches the layer.
	banner, err := ctx.NewImage(200, 40)
	if err != nil {
		log.Fatal(err)
	}
	defer banner.Release()
	_ = banner.SetBackColor(rug.Cyan)
	banner.FillRect(0, 0, 199, 39)
	banner.Draw(40, layer.Height()-120, rug.WithTarget(layer), rug.WithCrop(200, 20))

	layer.Draw(0, 0)
}
