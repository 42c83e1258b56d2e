package text

import (
	"image"
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/dib"
)

// Face is a font at one size. It caches rasterized glyphs.
// Face is safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig

	mu     sync.Mutex
	glyphs map[sfnt.GlyphIndex]*Glyph
}

// Glyph is one rasterized glyph.
type Glyph struct {
	// Coverage is an 8-bit dib coverage surface, levels 0 to 16. It is nil
	// for glyphs without ink, such as a space.
	Coverage *dib.Surface

	// Offset places Coverage's top-left corner relative to the pen
	// position on the baseline.
	Offset image.Point
}

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Direction returns the direction configured for the face.
func (f *Face) Direction() Direction { return f.config.direction }

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// ppem returns the face size in 26.6 fixed point.
func (f *Face) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.size * 64)
}

// Metrics returns the font metrics at this face's size. A face of a closed
// source reports zero metrics.
func (f *Face) Metrics() Metrics {
	outl, _, err := f.source.fonts()
	if err != nil {
		return Metrics{}
	}
	var buf sfnt.Buffer
	m, err := outl.Metrics(&buf, f.ppem(), mapHinting(f.config.hinting))
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		LineGap: fixedToFloat(m.Height - m.Ascent - m.Descent),
	}
}

// Glyph returns the rasterized glyph gid, rendering it on first use.
func (f *Face) Glyph(gid uint16) (*Glyph, error) {
	idx := sfnt.GlyphIndex(gid)
	f.mu.Lock()
	g, ok := f.glyphs[idx]
	f.mu.Unlock()
	if ok {
		return g, nil
	}

	g, err := f.rasterize(idx)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if limit := f.source.config.cacheLimit; limit > 0 && len(f.glyphs) >= limit {
		dib.Logger().Debug("text: glyph cache reset", "entries", len(f.glyphs), "size", f.size)
		clear(f.glyphs)
	}
	f.glyphs[idx] = g
	return g, nil
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
