package dib

import (
	"image"

	"github.com/gogpu/dib/internal/clip"
	"github.com/gogpu/dib/internal/raster"
)

// penLiner draws the segments of one pen stroke onto a surface. Dashed
// pens keep their phase from segment to segment.
type penLiner struct {
	s       *Surface
	vis     []image.Rectangle
	bounds  image.Rectangle
	fg, bg  RopMask
	opaque  bool
	dash    *Dash
	dashPos int
}

// newPenLiner prepares st's pen for s, restricted to clipList. It returns
// nil when the pen draws nothing.
func newPenLiner(s *Surface, st *DrawState, clipList []image.Rectangle) *penLiner {
	if st.Pen.Style == PenNull || s.format == FormatNull {
		return nil
	}
	vis := clip.Rects(s.Bounds(), s.Bounds(), clipList)
	if len(vis) == 0 {
		return nil
	}
	rop2 := st.rop2()
	pl := &penLiner{
		s:      s,
		vis:    vis,
		bounds: clip.Bounds(vis),
		fg:     RopMasks(rop2, s.pixelColor(st.Pen.Color, st.BkColor, true)),
		dash:   st.Pen.dashFor(),
	}
	if pl.dash != nil && st.BkMode == Opaque {
		pl.opaque = true
		pl.bg = RopMasks(rop2, s.pixelColor(st.BkColor, st.BkColor, false))
	}
	return pl
}

// segment draws start..end. The end point is drawn only if includeEnd.
func (pl *penLiner) segment(start, end image.Point, includeEnd bool) {
	start, end = raster.Crop(start), raster.Crop(end)
	if start == end {
		if includeEnd {
			pl.point(start)
		}
		return
	}
	if pl.dash != nil {
		pl.dashed(start, end, includeEnd)
		return
	}
	if start.Y == end.Y || start.X == end.X {
		pl.straight(start, end, includeEnd)
		return
	}

	bp, lp, bounds := raster.InitParams(start, end)
	if !bounds.Overlaps(pl.bounds) {
		return
	}
	for _, c := range pl.vis {
		if !c.Overlaps(bounds) {
			continue
		}
		cs, ce, status := raster.ClipLine(start, end, c, &bp)
		if status == raster.Rejected {
			continue
		}
		piece := lp
		piece.Clip(&bp, start, end, cs, ce, includeEnd)
		if piece.Length > 0 {
			pl.s.driver.SolidLine(pl.s, cs, &piece, pl.fg.And, pl.fg.Xor)
		}
	}
}

// straight draws a horizontal or vertical segment as rectangles.
func (pl *penLiner) straight(start, end image.Point, includeEnd bool) {
	lo, hi := start, end
	if start.X > end.X || start.Y > end.Y {
		lo, hi = end, start
		// The excluded end point is now the low corner.
		if !includeEnd {
			lo = lo.Add(image.Pt(btoi(lo.X != hi.X), btoi(lo.Y != hi.Y)))
			includeEnd = true
		}
	}
	r := image.Rectangle{Min: lo, Max: hi.Add(image.Pt(1, 1))}
	if !includeEnd {
		if start.Y == end.Y {
			r.Max.X--
		} else {
			r.Max.Y--
		}
	}
	pl.s.driver.SolidRects(pl.s, clip.Intersect(pl.vis, r), pl.fg.And, pl.fg.Xor)
}

func (pl *penLiner) point(p image.Point) {
	r := image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
	pl.s.driver.SolidRects(pl.s, clip.Intersect(pl.vis, r), pl.fg.And, pl.fg.Xor)
}

// dashed draws a segment with the pen's dash pattern. Each visible piece
// resumes the pattern at its distance from the unclipped start.
func (pl *penLiner) dashed(start, end image.Point, includeEnd bool) {
	bp, lp, bounds := raster.InitParams(start, end)
	steps := max(bp.DX, bp.DY)
	if includeEnd {
		steps++
	}
	defer func() { pl.dashPos += steps }()
	if !bounds.Overlaps(pl.bounds) {
		return
	}
	for _, c := range pl.vis {
		if !c.Overlaps(bounds) {
			continue
		}
		cs, ce, status := raster.ClipLine(start, end, c, &bp)
		if status == raster.Rejected {
			continue
		}
		piece := lp
		piece.Clip(&bp, start, end, cs, ce, includeEnd)
		skip := max(abs(cs.X-start.X), abs(cs.Y-start.Y))
		pl.dashRuns(cs, &piece, pl.dashPos+skip)
	}
}

// dashRuns splits a clipped line into runs of equal dash state and draws
// each run as its own line, beginning with the error term the walk has at
// that pixel.
func (pl *penLiner) dashRuns(start image.Point, lp *LineParams, pos int) {
	x, y, err := start.X, start.Y, lp.ErrStart
	run := *lp
	runStart, runLen := start, 0
	on := pl.dash.IsOn(pos)

	flush := func() {
		if runLen == 0 {
			return
		}
		m := pl.fg
		if !on {
			if !pl.opaque {
				return
			}
			m = pl.bg
		}
		run.Length = runLen
		pl.s.driver.SolidLine(pl.s, runStart, &run, m.And, m.Xor)
	}

	for k := range lp.Length {
		if state := pl.dash.IsOn(pos + k); state != on {
			flush()
			on, runStart, runLen = state, image.Pt(x, y), 0
			run.ErrStart = err
		}
		runLen++
		if lp.XMajor {
			if lp.Step(&err) {
				y += lp.YInc
			}
			x += lp.XInc
		} else {
			if lp.Step(&err) {
				x += lp.XInc
			}
			y += lp.YInc
		}
	}
	flush()
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Line draws a line from p0 to p1 inclusive with the state's pen.
//
// Example:
//
//	st := dib.NewDrawState()
//	st.Pen.Color = dib.RGB(255, 0, 0)
//	dib.Line(s, image.Pt(0, 0), image.Pt(9, 0), st, nil)
func Line(s *Surface, p0, p1 image.Point, st *DrawState, clipList []image.Rectangle) error {
	pl := newPenLiner(s, st.orDefault(), clipList)
	if pl == nil {
		return nil
	}
	pl.segment(p0, p1, true)
	return nil
}

// Polyline draws connected segments through pts. Each segment omits its
// end point, so shared vertices are drawn once and the final point is not
// drawn.
func Polyline(s *Surface, pts []image.Point, st *DrawState, clipList []image.Rectangle) error {
	pl := newPenLiner(s, st.orDefault(), clipList)
	if pl == nil || len(pts) < 2 {
		return nil
	}
	if err := s.checkScratch(len(pts) * pointBytes); err != nil {
		return err
	}
	for i := 1; i < len(pts); i++ {
		pl.segment(pts[i-1], pts[i], false)
	}
	return nil
}

// Polygon fills the polygon through pts with the state's brush under its
// fill mode, then outlines it with the pen.
func Polygon(s *Surface, pts []image.Point, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	if len(pts) < 2 || s.format == FormatNull {
		return nil
	}
	if err := s.checkScratch(len(pts) * pointBytes); err != nil {
		return err
	}
	if err := fillPolygon(s, pts, st.fillRule(), st, clipList); err != nil {
		return err
	}
	if pl := newPenLiner(s, st, clipList); pl != nil {
		pl.closed(pts)
	}
	return nil
}

// pointBytes is the bookkeeping cost of one polygon vertex.
const pointBytes = 16

// closed outlines the ring through pts.
func (pl *penLiner) closed(pts []image.Point) {
	for i := range pts {
		pl.segment(pts[i], pts[(i+1)%len(pts)], false)
	}
}

// fillPolygon paints the interior spans of pts with the brush.
func fillPolygon(s *Surface, pts []image.Point, rule raster.FillRule, st *DrawState, clipList []image.Rectangle) error {
	if st.Brush.Style() == BrushNull || len(pts) < 3 {
		return nil
	}
	var rects []image.Rectangle
	for _, span := range raster.PolygonSpans(pts, rule) {
		rects = append(rects, clip.Rects(s.Bounds(), span, clipList)...)
	}
	return st.fillBrush(s, rects, st.rop2())
}
