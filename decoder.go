package rug

import (
	"fmt"
	"image"
	"io"
	"slices"

	// Registered codecs accepted by StdDecoder.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
)

// Decoder turns encoded image bytes into a standard image.
// It returns the decoded image and the name of its format.
//
// The Context converts the result into a pixel buffer; the decoder never
// sees the engine's buffer types.
type Decoder interface {
	Decode(r io.Reader) (image.Image, string, error)
}

// StdDecoder decodes JPEG, PNG and TIFF through the standard image
// registry. Other formats are rejected even if another package registered
// a codec for them.
type StdDecoder struct{}

// stdFormats lists the format names StdDecoder accepts.
var stdFormats = []string{"jpeg", "png", "tiff"}

// Decode implements Decoder.
func (StdDecoder) Decode(r io.Reader) (image.Image, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, name, err
	}
	if !slices.Contains(stdFormats, name) {
		return nil, name, fmt.Errorf("format %q not supported", name)
	}
	return img, name, nil
}
