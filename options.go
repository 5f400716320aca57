package rug

import "log/slog"

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Defaults: silent logging, bilinear smoothing, JPEG/PNG/TIFF decoding
//	ctx, err := rug.NewContext(display)
//
//	// Debug logging and sharper resampling
//	ctx, err := rug.NewContext(display,
//	    rug.WithLogger(slog.Default()),
//	    rug.WithInterpolation(rug.InterpBicubic))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	logger  *slog.Logger
	decoder Decoder
	interp  InterpolationMode
	fore    Color
	back    Color
	pool    *Pool
}

// defaultPoolSize is the number of buffers kept per size class by the
// pool a Context creates for itself.
const defaultPoolSize = 8

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		logger:  nil, // Will be set to a silent logger if nil
		decoder: nil, // Will be set to StdDecoder if nil
		interp:  InterpBilinear,
		fore:    White,
		back:    Black,
		pool:    nil, // Will be created if nil
	}
}

// WithLogger sets the logger the Context and everything it creates write to.
// Pass nil to keep logging disabled.
//
// Example:
//
//	ctx, _ := rug.NewContext(display, rug.WithLogger(slog.New(
//	    slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
//	)))
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}

// WithDecoder replaces the image decoder used by LoadImage and DecodeImage.
func WithDecoder(d Decoder) ContextOption {
	return func(o *contextOptions) {
		o.decoder = d
	}
}

// WithInterpolation selects the smoothing filter used by Rotate and Scale.
// Unknown modes fall back to InterpBilinear.
func WithInterpolation(m InterpolationMode) ContextOption {
	return func(o *contextOptions) {
		o.interp = m
	}
}

// WithDefaultColors sets the foreground and background colors new images
// start with. Invalid colors make NewContext fail.
func WithDefaultColors(fore, back Color) ContextOption {
	return func(o *contextOptions) {
		o.fore = fore
		o.back = back
	}
}

// WithPool shares a buffer pool between several Contexts.
func WithPool(p *Pool) ContextOption {
	return func(o *contextOptions) {
		o.pool = p
	}
}
