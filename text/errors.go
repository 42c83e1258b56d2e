package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrClosed is returned when a face of a closed FontSource is used.
	ErrClosed = errors.New("text: font source closed")
)
