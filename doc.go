// Package rug is a pixel-buffer compositing engine for simple 2D games.
//
// # Overview
//
// rug loads raster images, keeps them as pixel buffers with a known color
// depth, and composites them onto a display surface or onto off-screen
// layers. New images are derived with rotation, scaling and mirroring,
// and rectangles, circles and pie slices are drawn with a per-image
// foreground and background color.
//
// # Quick Start
//
//	import "github.com/gogpu/rug"
//
//	display, _ := rug.NewSurface(640, 480, 32)
//	ctx, _ := rug.NewContext(display)
//
//	ship, err := ctx.LoadImage("ship.png")
//	if err != nil {
//	    return err // *rug.DecodeError
//	}
//	defer ship.Release()
//
//	turned, _ := ship.Rotate(30)
//	turned.Draw(100, 100)
//
//	hud, _ := ctx.NewScreenLayer()
//	banner, _ := ctx.NewImage(200, 20)
//	_ = banner.SetBackColor(rug.RGBA(0, 0, 0, 128))
//	banner.FillRect(0, 0, 199, 19)
//	banner.Draw(0, 0, rug.WithTarget(hud))
//	hud.Draw(0, 0)
//
//	_ = display.SavePNG("frame.png")
//
// # Compositing
//
// Images drawn onto the display overwrite the covered pixels. Images drawn
// onto a layer, and layers drawn anywhere, are blended source-over. Draw
// options select a source region (WithCrop, WithCropOrigin) and a
// destination (WithTarget).
//
// # Ownership
//
// Every Image and Layer exclusively owns its buffer. Release returns it
// to the Context's buffer pool exactly once. Operations on a released
// image either return ErrReleased or, for draws, are logged and skipped.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is east, positive angles turn counter-clockwise
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Surface, Image, Layer, Color
//   - internal/image: pixel buffers, format tables, blit, flip, rotate, scale
//   - internal/shape: aliased rectangle, circle and pie rasterization
package rug

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
