package dib

import (
	"image"

	"github.com/gogpu/dib/internal/raster"
)

// Ellipse draws the ellipse inscribed in r: the interior with the brush,
// the outline with the pen.
func Ellipse(s *Surface, r image.Rectangle, st *DrawState, clipList []image.Rectangle) error {
	r = r.Canon()
	return RoundRect(s, r, r.Dx(), r.Dy(), st, clipList)
}

// RoundRect draws r with its corners rounded by an ellipse of size cw x ch.
func RoundRect(s *Surface, r image.Rectangle, cw, ch int, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	pts := raster.EllipsePoints(r, cw, ch)
	return closedShape(s, pts, st, clipList)
}

// Arc draws the part of the ellipse inscribed in r that runs
// counter-clockwise from the radial through start to the radial through
// end. Identical radials draw the whole ellipse.
func Arc(s *Surface, r image.Rectangle, start, end image.Point, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	pts := raster.ArcPoints(r, start, end)
	pl := newPenLiner(s, st, clipList)
	if pl == nil || len(pts) == 0 {
		return nil
	}
	if err := s.checkScratch(len(pts) * pointBytes); err != nil {
		return err
	}
	for i := 1; i < len(pts); i++ {
		pl.segment(pts[i-1], pts[i], false)
	}
	pl.segment(pts[len(pts)-1], pts[len(pts)-1], true)
	return nil
}

// Chord draws an arc closed by the straight line between its ends, filled
// with the brush.
func Chord(s *Surface, r image.Rectangle, start, end image.Point, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	return closedShape(s, raster.ArcPoints(r, start, end), st, clipList)
}

// Pie draws an arc closed by the two radials to the center of r, filled
// with the brush.
func Pie(s *Surface, r image.Rectangle, start, end image.Point, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	pts := raster.ArcPoints(r, start, end)
	if len(pts) == 0 {
		return nil
	}
	r = r.Canon()
	center := image.Pt((r.Min.X+r.Max.X-1)/2, (r.Min.Y+r.Max.Y-1)/2)
	return closedShape(s, append(pts, center), st, clipList)
}

// closedShape fills the ring through pts with the brush and outlines it
// with the pen.
func closedShape(s *Surface, pts []image.Point, st *DrawState, clipList []image.Rectangle) error {
	if len(pts) == 0 || s.format == FormatNull {
		return nil
	}
	if err := s.checkScratch(len(pts) * pointBytes); err != nil {
		return err
	}
	if err := fillPolygon(s, pts, raster.Winding, st, clipList); err != nil {
		return err
	}
	if pl := newPenLiner(s, st, clipList); pl != nil {
		if len(pts) == 1 {
			pl.segment(pts[0], pts[0], true)
			return nil
		}
		pl.closed(pts)
	}
	return nil
}
