package image

import "golang.org/x/image/draw"

// InterpolationMode selects the resampling filter used by Rotate and Scale.
// Every mode interpolates; there is deliberately no nearest-neighbor mode.
type InterpolationMode uint8

const (
	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	InterpBilinear InterpolationMode = iota

	// InterpBicubic performs Catmull-Rom interpolation over a 4x4 neighborhood.
	// Sharper than bilinear but slower.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m is a known mode.
func (m InterpolationMode) IsValid() bool {
	return m <= InterpBicubic
}

// Interpolator returns the golang.org/x/image/draw filter for the mode.
// Unknown modes fall back to bilinear.
func (m InterpolationMode) Interpolator() draw.Interpolator {
	if m == InterpBicubic {
		return draw.CatmullRom
	}
	return draw.BiLinear
}
