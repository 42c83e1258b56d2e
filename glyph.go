package dib

import (
	"fmt"
	"image"

	"github.com/gogpu/dib/internal/blend"
	"github.com/gogpu/dib/internal/clip"
)

// GlyphLevels is the number of coverage levels a glyph surface holds:
// 0 (uncovered) through 16 (fully covered).
const GlyphLevels = blend.Levels

// NewGlyph creates an empty glyph coverage surface. Each byte is one
// pixel's coverage level, 0 through 16.
func NewGlyph(width, height int) (*Surface, error) {
	return New(Format8, width, height)
}

// GlyphLevel quantizes an 8-bit coverage value to a glyph level.
func GlyphLevel(a uint8) uint8 {
	return uint8((uint32(a)*16 + 127) / 255) //nolint:gosec // at most 16
}

// GlyphFromAlpha creates a glyph coverage surface from an image's alpha
// channel. The glyph's pixel (0, 0) is img.Bounds().Min.
func GlyphFromAlpha(img image.Image) (*Surface, error) {
	b := img.Bounds()
	g, err := NewGlyph(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("dib: glyph from alpha: %w", err)
	}
	if a, ok := img.(*image.Alpha); ok {
		for y := range b.Dy() {
			src := a.Pix[a.PixOffset(b.Min.X, b.Min.Y+y):][:b.Dx()]
			dst := g.row(y)
			for x, v := range src {
				dst[x] = GlyphLevel(v)
			}
		}
		return g, nil
	}
	for y := range b.Dy() {
		dst := g.row(y)
		for x := range b.Dx() {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// #nosec G115 -- a>>8 is always in range [0, 255]
			dst[x] = GlyphLevel(uint8(a >> 8))
		}
	}
	return g, nil
}

// DrawGlyph composites an anti-aliased glyph in the state's text color with
// its top-left corner at pt. glyph must be an 8-bit coverage surface as
// made by NewGlyph: level 0 and 1 leave the destination alone, 16 paints
// the text color and the levels between blend toward it. On 1-bit surfaces
// only fully covered pixels are painted.
func DrawGlyph(s *Surface, pt image.Point, glyph *Surface, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	if glyph == nil || glyph.format != Format8 {
		Logger().Warn("dib: glyph is not an 8-bit coverage surface")
		return fmt.Errorf("%w: glyph must be an 8-bit coverage surface", ErrInvalidSource)
	}
	if s.format == FormatNull {
		return nil
	}
	r := glyph.Bounds().Add(pt)
	vis := clip.Rects(s.Bounds(), r, clipList)
	if len(vis) == 0 {
		return nil
	}
	text := s.pixelColor(st.TextColor, st.BkColor, true)
	c := s.driver.PixelToColorRef(s, text)
	ranges := blend.Ranges(c.R(), c.G(), c.B())
	for _, v := range vis {
		s.driver.DrawGlyph(s, v, glyph, v.Min.Sub(pt), text, ranges)
	}
	return nil
}
