package rug

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by rug matches one of them with
// errors.Is.
var (
	// ErrDecode reports a file that could not be read or decoded.
	ErrDecode = errors.New("rug: cannot decode image")

	// ErrUnsupportedFormat reports a pixel format an operation cannot handle.
	ErrUnsupportedFormat = errors.New("rug: unsupported pixel format")

	// ErrInvalidArgument reports an out-of-range parameter.
	ErrInvalidArgument = errors.New("rug: invalid argument")

	// ErrReleased reports use of an Image or Layer after Release.
	ErrReleased = errors.New("rug: use of released buffer")
)

// DecodeError is returned when an image cannot be loaded.
type DecodeError struct {
	Path string // file path, or "" when decoding from a reader
	Err  error  // underlying cause
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("rug: decode image: %v", e.Err)
	}
	return fmt.Sprintf("rug: decode %s: %v", e.Path, e.Err)
}

// Unwrap returns ErrDecode and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// UnsupportedFormatError is returned when an operation is applied to a
// buffer whose pixel format it does not handle.
type UnsupportedFormatError struct {
	Op     string // operation name, e.g. "FlipH"
	Format Format // offending pixel format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("rug: %s: unsupported %d-bit format %v", e.Op, e.Format.BitsPerPixel(), e.Format)
}

// Unwrap returns ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// InvalidArgumentError is returned for out-of-range parameters.
type InvalidArgumentError struct {
	Op    string // operation name, e.g. "Scale"
	Arg   string // parameter name
	Value any    // rejected value
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("rug: %s: invalid %s %v", e.Op, e.Arg, e.Value)
}

// Unwrap returns ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// releasedError wraps ErrReleased with the operation that hit it.
func releasedError(op string) error {
	return fmt.Errorf("%w (%s)", ErrReleased, op)
}
