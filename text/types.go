package text

import (
	"golang.org/x/image/font"
	"golang.org/x/text/unicode/bidi"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionAuto picks the direction of the first strongly directional
	// character.
	DirectionAuto Direction = iota
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionAuto:
		return "Auto"
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// DetectDirection returns the direction of the first strongly directional
// rune in s, or DirectionLTR when there is none.
func DetectDirection(s string) Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionLTR
}

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}

// Metrics holds face-level metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns ascent + descent + line gap.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
