// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"slices"
)

// FillRule selects how overlapping polygon areas are classified.
type FillRule int

// Fill rules.
const (
	Alternate FillRule = iota // even-odd
	Winding                   // non-zero
)

type crossing struct {
	x   int
	dir int
}

// PolygonSpans scan converts the closed polygon pts and returns its interior
// as one-row rectangles, sorted by row then column. Pixel (x, y) is inside
// when its top-left corner is inside the polygon, with the left and top
// edges included.
func PolygonSpans(pts []image.Point, rule FillRule) []image.Rectangle {
	if len(pts) < 3 {
		return nil
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	var spans []image.Rectangle
	var xs []crossing
	for y := minY; y < maxY; y++ {
		xs = xs[:0]
		for i, p0 := range pts {
			p1 := pts[(i+1)%len(pts)]
			if p0.Y == p1.Y {
				continue
			}
			dir := 1
			lo, hi := p0, p1
			if p0.Y > p1.Y {
				dir = -1
				lo, hi = p1, p0
			}
			if y < lo.Y || y >= hi.Y {
				continue
			}
			// x at row y, rounded up to the first pixel at or right of it.
			num := int64(y-lo.Y) * int64(hi.X-lo.X)
			den := int64(hi.Y - lo.Y)
			xs = append(xs, crossing{x: lo.X + ceilDiv(num, den), dir: dir})
		}
		slices.SortFunc(xs, func(a, b crossing) int { return a.x - b.x })

		wind := 0
		for i := 0; i+1 < len(xs); i++ {
			if rule == Alternate {
				if i%2 == 1 {
					continue
				}
			} else {
				wind += xs[i].dir
				if wind == 0 {
					continue
				}
			}
			if x0, x1 := xs[i].x, xs[i+1].x; x1 > x0 {
				spans = appendSpan(spans, image.Rect(x0, y, x1, y+1))
			}
		}
	}
	return spans
}

// appendSpan merges r into the previous span when they touch on one row.
func appendSpan(spans []image.Rectangle, r image.Rectangle) []image.Rectangle {
	if n := len(spans); n > 0 {
		last := &spans[n-1]
		if last.Min.Y == r.Min.Y && last.Max.X >= r.Min.X {
			last.Max.X = max(last.Max.X, r.Max.X)
			return spans
		}
	}
	return append(spans, r)
}

func ceilDiv(num, den int64) int {
	q := num / den
	if (num%den != 0) && ((num < 0) == (den < 0)) {
		q++
	}
	return int(q)
}
