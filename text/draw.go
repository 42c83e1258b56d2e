package text

import (
	"image"
	"math"

	"github.com/gogpu/dib"
)

// DrawString renders text onto s in the state's text color. (x, y) is the
// pen origin on the baseline. Glyphs are anti-aliased on every format but
// 1-bit, where only fully covered pixels are painted.
func DrawString(s *dib.Surface, x, y int, text string, face *Face, st *dib.DrawState, clip []image.Rectangle) error {
	glyphs, err := defaultShaper.Shape(text, face)
	if err != nil {
		return err
	}
	for _, sg := range glyphs {
		g, err := face.Glyph(sg.GID)
		if err != nil {
			return err
		}
		if g.Coverage == nil {
			continue
		}
		pen := image.Pt(x+int(math.Round(sg.X)), y-int(math.Round(sg.Y)))
		if err := dib.DrawGlyph(s, pen.Add(g.Offset), g.Coverage, st, clip); err != nil {
			return err
		}
	}
	return nil
}

// Measure returns the dimensions of text.
// Width is the horizontal advance, height is the face's line height.
func Measure(text string, face *Face) (width, height float64, err error) {
	glyphs, err := defaultShaper.Shape(text, face)
	if err != nil {
		return 0, 0, err
	}
	for _, g := range glyphs {
		width += g.XAdvance
	}
	return width, face.Metrics().LineHeight(), nil
}
