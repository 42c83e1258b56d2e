package text

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/dib"
)

// rasterize renders a glyph outline to a dib coverage surface.
func (f *Face) rasterize(idx sfnt.GlyphIndex) (*Glyph, error) {
	outl, _, err := f.source.fonts()
	if err != nil {
		return nil, err
	}
	var buf sfnt.Buffer
	segs, err := outl.LoadGlyph(&buf, idx, f.ppem(), nil)
	if err != nil {
		return nil, fmt.Errorf("text: load glyph %d: %w", idx, err)
	}
	b := segs.Bounds()
	r := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if r.Empty() {
		return &Glyph{}, nil
	}

	ras := vector.NewRasterizer(r.Dx(), r.Dy())
	ras.DrawOp = draw.Src
	org := fixed.Point26_6{X: fixed.I(r.Min.X), Y: fixed.I(r.Min.Y)}
	pt := func(p fixed.Point26_6) (float32, float32) {
		p = p.Sub(org)
		return float32(p.X) / 64, float32(p.Y) / 64
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			ras.ClosePath()
			ras.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			ras.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			ras.QuadTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			x3, y3 := pt(seg.Args[2])
			ras.CubeTo(x1, y1, x2, y2, x3, y3)
		}
	}
	ras.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	cov, err := dib.GlyphFromAlpha(mask)
	if err != nil {
		return nil, err
	}
	return &Glyph{Coverage: cov, Offset: r.Min}, nil
}
