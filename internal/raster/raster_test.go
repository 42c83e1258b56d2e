// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"testing"
)

func TestEllipseQuadrantSmall(t *testing.T) {
	got := EllipseQuadrant(3, 1)
	want := []image.Point{{0, 1}, {1, 1}, {2, 1}, {3, 0}}
	if len(got) != len(want) {
		t.Fatalf("EllipseQuadrant(3, 1) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEllipseQuadrantConnected(t *testing.T) {
	for _, r := range [][2]int{{0, 0}, {5, 0}, {0, 4}, {1, 1}, {7, 3}, {3, 9}, {20, 20}, {40, 7}} {
		q := EllipseQuadrant(r[0], r[1])
		if q[0] != image.Pt(0, r[1]) || q[len(q)-1] != image.Pt(r[0], 0) {
			t.Errorf("radii %v: endpoints %v..%v", r, q[0], q[len(q)-1])
		}
		for i := 1; i < len(q); i++ {
			dx, dy := q[i].X-q[i-1].X, q[i-1].Y-q[i].Y
			if dx < 0 || dy < 0 || dx > 1 || dy > 1 || dx+dy == 0 {
				t.Errorf("radii %v: step %v -> %v is not a monotone 8-connected move", r, q[i-1], q[i])
			}
		}
	}
}

func TestEllipsePointsSymmetric(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 11, 7),
		image.Rect(2, 3, 12, 9),
		image.Rect(-4, -4, 5, 20),
	} {
		pts := EllipsePoints(r, r.Dx(), r.Dy())
		set := toSet(pts)
		for p := range set {
			if !p.In(r) {
				t.Errorf("%v: point %v outside rectangle", r, p)
			}
			mx := image.Pt(r.Min.X+r.Max.X-1-p.X, p.Y)
			my := image.Pt(p.X, r.Min.Y+r.Max.Y-1-p.Y)
			if !set[mx] || !set[my] {
				t.Errorf("%v: point %v has no mirror", r, p)
			}
		}
		// Every edge of the rectangle is touched.
		var l, rt, tp, bt bool
		for p := range set {
			l = l || p.X == r.Min.X
			rt = rt || p.X == r.Max.X-1
			tp = tp || p.Y == r.Min.Y
			bt = bt || p.Y == r.Max.Y-1
		}
		if !l || !rt || !tp || !bt {
			t.Errorf("%v: outline does not reach all four edges", r)
		}
	}
}

func TestRoundRectCorners(t *testing.T) {
	r := image.Rect(0, 0, 20, 10)
	pts := toSet(EllipsePoints(r, 5, 5))
	// Corner arcs end where the straight edges begin.
	for _, p := range []image.Point{{2, 0}, {17, 0}, {2, 9}, {17, 9}, {0, 2}, {0, 7}, {19, 2}, {19, 7}} {
		if !pts[p] {
			t.Errorf("arc end %v missing", p)
		}
	}
	if pts[image.Pt(0, 0)] {
		t.Error("corner pixel should be rounded off")
	}
}

func TestArcPoints(t *testing.T) {
	r := image.Rect(0, 0, 21, 21)
	// From the right (3 o'clock) counter-clockwise to the top (12 o'clock).
	pts := ArcPoints(r, image.Pt(30, 10), image.Pt(10, -30))
	if len(pts) == 0 {
		t.Fatal("no arc points")
	}
	for _, p := range pts {
		if p.X < 10 || p.Y > 10 {
			t.Errorf("point %v outside the upper-right quadrant", p)
		}
	}
	if pts[0] != image.Pt(20, 10) {
		t.Errorf("arc starts at %v, want (20,10)", pts[0])
	}
	if last := pts[len(pts)-1]; last != image.Pt(10, 0) {
		t.Errorf("arc ends at %v, want (10,0)", last)
	}
	full := ArcPoints(r, image.Pt(30, 10), image.Pt(30, 10))
	if len(full) != len(EllipsePoints(r, 21, 21)) {
		t.Errorf("coincident radials give %d points, want whole ellipse", len(full))
	}
}

func TestPolygonSpansRectangle(t *testing.T) {
	pts := []image.Point{{2, 1}, {6, 1}, {6, 4}, {2, 4}}
	spans := PolygonSpans(pts, Alternate)
	if len(spans) != 3 {
		t.Fatalf("got %d spans, want 3: %v", len(spans), spans)
	}
	for i, s := range spans {
		if want := image.Rect(2, 1+i, 6, 2+i); s != want {
			t.Errorf("span %d = %v, want %v", i, s, want)
		}
	}
}

func TestPolygonSpansFillRules(t *testing.T) {
	// Two overlapping squares traced in the same direction.
	pts := []image.Point{
		{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0},
		{2, 2}, {6, 2}, {6, 6}, {2, 6}, {2, 2},
	}
	count := func(spans []image.Rectangle, p image.Point) bool {
		for _, s := range spans {
			if p.In(s) {
				return true
			}
		}
		return false
	}
	alt := PolygonSpans(pts, Alternate)
	wind := PolygonSpans(pts, Winding)
	if count(alt, image.Pt(3, 3)) {
		t.Error("even-odd fill should leave the overlap empty")
	}
	if !count(wind, image.Pt(3, 3)) {
		t.Error("non-zero fill should cover the overlap")
	}
	if !count(alt, image.Pt(1, 1)) || !count(wind, image.Pt(5, 5)) {
		t.Error("non-overlapping parts should be filled by both rules")
	}
}

// resample maps dst indices to src indices with the stretch parameters.
func resample(sp StretchParams, span Span) map[int]int {
	out := map[int]int{}
	d, s, err := span.DstStart, span.SrcStart, sp.ErrStart
	for range sp.Length {
		if span.Stretch {
			out[d] = s
			d += sp.DstInc
			if err > 0 {
				s += sp.SrcInc
				err += sp.ErrAdd1
			} else {
				err += sp.ErrAdd2
			}
		} else {
			if _, ok := out[d]; !ok {
				out[d] = s
			}
			s += sp.SrcInc
			if err > 0 {
				d += sp.DstInc
				err += sp.ErrAdd1
			} else {
				err += sp.ErrAdd2
			}
		}
	}
	return out
}

func TestCalc1DStretch(t *testing.T) {
	tests := []struct {
		name                 string
		dstStart, dstLen     int
		srcStart, srcLen     int
		want                 []int
		stretch              bool
	}{
		{"double", 0, 8, 0, 4, []int{0, 0, 1, 1, 2, 2, 3, 3}, true},
		{"halve", 0, 4, 0, 8, []int{0, 2, 4, 6}, false},
		{"identity", 0, 5, 0, 5, []int{0, 1, 2, 3, 4}, true},
		{"mirror", 7, -8, 0, 4, []int{3, 3, 2, 2, 1, 1, 0, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := len(tt.want)
			sp, span, ok := Calc1DStretch(tt.dstStart, tt.dstLen, 0, n, tt.srcStart, tt.srcLen, 0, abs(tt.srcLen))
			if !ok {
				t.Fatal("Calc1DStretch rejected a visible mapping")
			}
			if span.Stretch != tt.stretch {
				t.Errorf("Stretch = %v, want %v", span.Stretch, tt.stretch)
			}
			got := resample(sp, span)
			for d, s := range tt.want {
				if got[d] != s {
					t.Errorf("dst %d <- src %d, want src %d", d, got[d], s)
				}
			}
		})
	}
}

func TestCalc1DStretchClipped(t *testing.T) {
	// Only dst 3..5 of a doubled row is visible.
	sp, span, ok := Calc1DStretch(0, 8, 3, 6, 0, 4, 0, 4)
	if !ok {
		t.Fatal("rejected")
	}
	if span.DstStart != 3 {
		t.Errorf("DstStart = %d, want 3", span.DstStart)
	}
	got := resample(sp, span)
	for d, s := range map[int]int{3: 1, 4: 2, 5: 2} {
		if got[d] != s {
			t.Errorf("dst %d <- src %d, want %d", d, got[d], s)
		}
	}
	if _, _, ok := Calc1DStretch(0, 8, 10, 20, 0, 4, 0, 4); ok {
		t.Error("invisible window accepted")
	}
	if _, _, ok := Calc1DStretch(0, 0, 0, 8, 0, 4, 0, 4); ok {
		t.Error("zero length accepted")
	}
}
