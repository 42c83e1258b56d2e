package dib

import "errors"

// Sentinel errors for surface construction and drawing.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("dib: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("dib: invalid format")

	// ErrInvalidStride is returned when the row stride is too small for the width.
	ErrInvalidStride = errors.New("dib: stride too small for width")

	// ErrDataTooSmall is returned when caller-supplied bits cannot hold every row.
	ErrDataTooSmall = errors.New("dib: data buffer too small")

	// ErrInvalidMasks is returned when bit-field masks are zero or overlap.
	ErrInvalidMasks = errors.New("dib: invalid color masks")

	// ErrOutOfMemory is returned when an operation needs more scratch memory
	// than the destination surface allows.
	ErrOutOfMemory = errors.New("dib: scratch memory exhausted")

	// ErrInvalidSource is returned when a primitive cannot use its source
	// surface, such as a non-32-bit alpha blend source or a glyph that is
	// not an 8-bit coverage map.
	ErrInvalidSource = errors.New("dib: unusable source surface")

	// ErrInvalidGradientMode is returned by GradientFill for an unknown mode.
	ErrInvalidGradientMode = errors.New("dib: invalid gradient mode")

	// ErrNoData is returned by decoders that find no image.
	ErrNoData = errors.New("dib: no image data")
)
