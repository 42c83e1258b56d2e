package dib

import (
	"image"

	"github.com/gogpu/dib/internal/raster"
)

// BkMode selects whether gaps in hatches and dashed pens are painted.
type BkMode uint8

const (
	// Opaque paints gaps with the background color.
	Opaque BkMode = iota

	// Transparent leaves gaps untouched.
	Transparent
)

// StretchMode selects how rows and columns are merged when a blit shrinks.
type StretchMode uint8

const (
	// StretchAndScans ANDs merged pixels, preserving black on white.
	StretchAndScans StretchMode = iota + 1

	// StretchOrScans ORs merged pixels, preserving white on black.
	StretchOrScans

	// StretchDeleteScans keeps one pixel of every merged run.
	StretchDeleteScans

	// StretchHalftone resamples bilinearly.
	StretchHalftone
)

// FillMode selects which parts of a self-intersecting polygon are inside.
type FillMode uint8

const (
	// FillAlternate fills areas crossed by an odd number of edges.
	FillAlternate FillMode = iota

	// FillWinding fills areas with a nonzero winding number.
	FillWinding
)

// PenStyle selects the dash pattern of lines.
type PenStyle uint8

// Pen styles.
const (
	PenSolid PenStyle = iota
	PenDash
	PenDot
	PenDashDot
	PenDashDotDot
	PenNull
)

// penDashes are the on/off run lengths of the dashed styles, in pixels.
var penDashes = [...][]int{
	PenDash:       {18, 6},
	PenDot:        {3, 3},
	PenDashDot:    {9, 6, 3, 6},
	PenDashDotDot: {9, 3, 3, 3, 3, 3},
}

// Pen is a cosmetic one-pixel pen.
type Pen struct {
	Style PenStyle
	Color ColorRef

	// Dash, when set, replaces the style's built-in pattern.
	Dash *Dash
}

// DrawState carries the attributes every drawing primitive reads. It is
// owned by the caller and may be shared between surfaces, but not between
// goroutines that modify it.
type DrawState struct {
	// Rop2 combines pens and brushes with the destination. Zero means
	// R2CopyPen.
	Rop2 Rop2

	// Pen draws lines and outlines.
	Pen Pen

	// Brush fills interiors. Nil behaves as NullBrush.
	Brush *Brush

	// BrushOrigin is the surface point where brush pixel (0, 0) lands.
	BrushOrigin image.Point

	// TextColor colors glyphs and the clear bits of monochrome patterns.
	TextColor ColorRef

	// BkColor paints hatch and dash gaps and the set bits of monochrome
	// patterns.
	BkColor ColorRef

	// BkMode selects whether gaps are painted.
	BkMode BkMode

	// StretchMode selects how StretchBlt merges pixels. Zero means
	// StretchAndScans.
	StretchMode StretchMode

	// FillMode selects the polygon interior rule.
	FillMode FillMode
}

// NewDrawState returns the default state: copy pen, black solid pen, white
// solid brush, black text on an opaque white background.
func NewDrawState() *DrawState {
	return &DrawState{
		Rop2:        R2CopyPen,
		Pen:         Pen{Style: PenSolid, Color: RGB(0, 0, 0)},
		Brush:       SolidBrush(RGB(0xff, 0xff, 0xff)),
		TextColor:   RGB(0, 0, 0),
		BkColor:     RGB(0xff, 0xff, 0xff),
		BkMode:      Opaque,
		StretchMode: StretchAndScans,
		FillMode:    FillAlternate,
	}
}

// orDefault substitutes the default state for nil.
func (st *DrawState) orDefault() *DrawState {
	if st == nil {
		return NewDrawState()
	}
	return st
}

func (st *DrawState) rop2() Rop2 {
	if st.Rop2 == 0 {
		return R2CopyPen
	}
	return st.Rop2
}

func (st *DrawState) stretchMode() StretchMode {
	if st.StretchMode == 0 {
		return StretchAndScans
	}
	return st.StretchMode
}

func (st *DrawState) fillRule() raster.FillRule {
	if st.FillMode == FillWinding {
		return raster.Winding
	}
	return raster.Alternate
}

// pixelColor resolves c to a pixel of s. On 1-bit surfaces with monoFixup
// set, a color matching neither table entry exactly is drawn as the
// opposite of the background: the background takes its nearest entry and
// everything else the other one.
func (s *Surface) pixelColor(c, bk ColorRef, monoFixup bool) uint32 {
	if c.IsDIBIndex() {
		if i := c.Index(); i < len(s.table) {
			return uint32(i) //nolint:gosec // bounded by the table
		}
		c = 0
	}
	if s.format != Format1 || !monoFixup || len(s.palette) < 2 {
		return s.driver.ColorRefToPixel(s, c)
	}
	switch c.rgb() {
	case s.palette[0]:
		return 0
	case s.palette[1]:
		return 1
	}
	p := s.pixelColor(bk, bk, false)
	if c == bk {
		return p
	}
	return p ^ 1
}
