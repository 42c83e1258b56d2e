package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/norm"
)

// ShapedGlyph is a glyph id at its pen position relative to the string's
// origin on the baseline.
type ShapedGlyph struct {
	GID      uint16
	Cluster  int // index of the first rune of the glyph's cluster
	X, Y     float64
	XAdvance float64
}

// Shaper converts text into positioned glyphs with HarfBuzz-level shaping
// from go-text/typesetting: ligatures, kerning, right-to-left and complex
// scripts.
//
// Shaper is safe for concurrent use. The HarfbuzzShaper instances are
// pooled since they are not.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

var defaultShaper = NewShaper()

// Shape converts text into positioned glyphs at face's size. The text is
// normalized to NFC first; Cluster indexes the normalized runes.
func (s *Shaper) Shape(text string, face *Face) ([]ShapedGlyph, error) {
	if text == "" {
		return nil, nil
	}
	_, fnt, err := face.source.fonts()
	if err != nil {
		return nil, err
	}

	text = norm.NFC.String(text)
	runes := []rune(text)
	dir := face.config.direction
	if dir == DirectionAuto {
		dir = DetectDirection(text)
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      gotext.NewFace(fnt),
		Size:      face.ppem(),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(face.config.language),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper) //nolint:forcetypeassert // pool only holds shapers
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs), nil
}

// mapDirection converts a resolved Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space character. This
// is a simple heuristic; mixed-script text should be split into runs.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs lays shaped glyphs out along the baseline.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]ShapedGlyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:      uint16(g.GlyphID), //nolint:gosec // glyph ids of sfnt fonts fit 16 bits
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
