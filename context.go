package rug

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	intImage "github.com/gogpu/rug/internal/image"
)

// Context is the rendering context images and layers are created from.
// It holds the display surface, the image decoder, the default colors,
// the smoothing filter, the buffer pool and the logger. There is no
// package-level state: everything an image or layer needs comes from the
// Context that created it.
//
// A Context and the images and layers it creates are not safe for
// concurrent use.
type Context struct {
	display *Surface
	logger  *slog.Logger
	decoder Decoder
	interp  InterpolationMode
	fore    Color
	back    Color
	pool    *Pool
}

// NewContext creates a rendering context that presents to display.
// Optional ContextOption arguments configure logging, decoding, smoothing,
// default colors and buffer pooling:
//
//	display, _ := rug.NewSurface(640, 480, 32)
//	ctx, err := rug.NewContext(display, rug.WithInterpolation(rug.InterpBicubic))
func NewContext(display *Surface, opts ...ContextOption) (*Context, error) {
	if display == nil {
		return nil, &InvalidArgumentError{Op: "NewContext", Arg: "display", Value: nil}
	}

	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if err := options.fore.validate("NewContext"); err != nil {
		return nil, err
	}
	if err := options.back.validate("NewContext"); err != nil {
		return nil, err
	}

	logger := options.logger
	if logger == nil {
		logger = newNopLogger()
	}
	decoder := options.decoder
	if decoder == nil {
		decoder = StdDecoder{}
	}
	interp := options.interp
	if !interp.IsValid() {
		interp = InterpBilinear
	}
	pool := options.pool
	if pool == nil {
		pool = NewPool(defaultPoolSize)
	}

	return &Context{
		display: display,
		logger:  logger,
		decoder: decoder,
		interp:  interp,
		fore:    options.fore,
		back:    options.back,
		pool:    pool,
	}, nil
}

// Display returns the display surface.
func (c *Context) Display() *Surface {
	return c.display
}

// Interpolation returns the smoothing filter used by Rotate and Scale.
func (c *Context) Interpolation() InterpolationMode {
	return c.interp
}

// DefaultColors returns the foreground and background colors new images
// start with.
func (c *Context) DefaultColors() (fore, back Color) {
	return c.fore, c.back
}

// LoadImage decodes the image file at path. The pixel format follows the
// decoded data: grayscale stays 8-bit, opaque images become 24-bit RGB and
// everything else 32-bit RGBA.
//
// Unreadable files and unrecognized formats return a *DecodeError and no
// image.
func (c *Context) LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	img, err := c.decode(bytes.NewReader(data), path)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("rug: image loaded",
		slog.String("path", path),
		slog.Int("width", img.Width()),
		slog.Int("height", img.Height()),
		slog.String("format", img.buf.Format().String()))
	return img, nil
}

// DecodeImage decodes an image from r. Errors are as for LoadImage, with
// an empty Path.
func (c *Context) DecodeImage(r io.Reader) (*Image, error) {
	return c.decode(r, "")
}

func (c *Context) decode(r io.Reader, path string) (*Image, error) {
	decoded, name, err := c.decoder.Decode(r)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	buf, err := intImage.FromStdImage(decoded)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("%s: %w", name, err)}
	}
	return c.wrapImage(buf), nil
}

// NewImage creates a blank, fully transparent 32-bit RGBA image.
func (c *Context) NewImage(width, height int) (*Image, error) {
	buf, err := c.newBuffer("NewImage", width, height)
	if err != nil {
		return nil, err
	}
	return c.wrapImage(buf), nil
}

// NewLayer creates a fully transparent 32-bit RGBA layer.
func (c *Context) NewLayer(width, height int) (*Layer, error) {
	buf, err := c.newBuffer("NewLayer", width, height)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("rug: layer allocated", slog.Int("width", width), slog.Int("height", height))
	return &Layer{ctx: c, buf: buf}, nil
}

// NewScreenLayer creates a layer the size of the display.
func (c *Context) NewScreenLayer() (*Layer, error) {
	return c.NewLayer(c.display.Width(), c.display.Height())
}

// wrapImage hands buf to a new Image with the default colors.
func (c *Context) wrapImage(buf *intImage.PixelBuf) *Image {
	return &Image{ctx: c, buf: buf, fore: c.fore, back: c.back}
}

// newBuffer takes a cleared RGBA8 buffer from the pool.
func (c *Context) newBuffer(op string, width, height int) (*intImage.PixelBuf, error) {
	buf, err := c.pool.Get(width, height, intImage.FormatRGBA8)
	if errors.Is(err, intImage.ErrInvalidDimensions) {
		return nil, &InvalidArgumentError{Op: op, Arg: "size", Value: image.Pt(width, height)}
	}
	return buf, err
}

// recycle returns a buffer that is no longer referenced to the pool.
func (c *Context) recycle(buf *intImage.PixelBuf) {
	c.pool.Put(buf)
}
