package dib

import (
	"fmt"
	"image"

	"github.com/gogpu/dib/internal/clip"
)

// FillRects paints rects with the state's brush. Rectangles are clipped to
// the surface and to clipList; a nil clipList leaves the whole surface
// visible.
//
// Example:
//
//	st := dib.NewDrawState()
//	st.Brush = dib.HatchBrush(dib.HatchCross, dib.RGB(0, 0, 255))
//	err := dib.FillRects(s, []image.Rectangle{image.Rect(10, 10, 50, 50)}, st, nil)
func FillRects(s *Surface, rects []image.Rectangle, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	if s.format == FormatNull {
		return nil
	}
	var vis []image.Rectangle
	for _, r := range rects {
		vis = append(vis, clip.Rects(s.Bounds(), r.Canon(), clipList)...)
	}
	return st.fillBrush(s, vis, st.rop2())
}

// PatBlt combines the state's brush with r of the destination through a
// ternary raster operation. Operations that read a source are rejected.
func PatBlt(s *Surface, r image.Rectangle, rop3 Rop3, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	if rop3.UsesSource() {
		return fmt.Errorf("%w: raster operation %#02x reads a source", ErrInvalidSource, uint8(rop3))
	}
	if s.format == FormatNull {
		return nil
	}
	vis := clip.Rects(s.Bounds(), r.Canon(), clipList)
	if len(vis) == 0 {
		return nil
	}
	rop2 := rop3.PatternRop2()
	if !rop3.UsesPattern() {
		m := RopMasks(rop2, 0)
		s.driver.SolidRects(s, vis, m.And, m.Xor)
		return nil
	}
	return st.fillBrush(s, vis, rop2)
}

// Rectangle outlines r with the pen and fills the inside with the brush.
// The outline runs along the rectangle's inner edge. With a null pen the
// fill covers r less its right column and bottom row.
func Rectangle(s *Surface, r image.Rectangle, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	r = r.Canon()
	if r.Empty() || s.format == FormatNull {
		return nil
	}
	pl := newPenLiner(s, st, clipList)
	inner := image.Rectangle{Min: r.Min, Max: r.Max.Sub(image.Pt(1, 1))}
	if pl != nil {
		inner.Min = inner.Min.Add(image.Pt(1, 1))
	}
	if !inner.Empty() {
		if err := st.fillBrush(s, clip.Rects(s.Bounds(), inner, clipList), st.rop2()); err != nil {
			return err
		}
	}
	if pl != nil {
		last := r.Max.Sub(image.Pt(1, 1))
		pl.closed([]image.Point{r.Min, {X: last.X, Y: r.Min.Y}, last, {X: r.Min.X, Y: last.Y}})
	}
	return nil
}
