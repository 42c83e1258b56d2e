// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"math"
)

// EllipseQuadrant returns one quadrant of the integer ellipse with radii
// rx and ry, as offsets from the center with x >= 0 and y >= 0, ordered
// from (0, ry) to (rx, 0). Consecutive points are 8-connected.
//
// The iteration is the midpoint algorithm with all decision terms scaled by
// four so that it stays in integers.
func EllipseQuadrant(rx, ry int) []image.Point {
	if rx < 0 || ry < 0 {
		return nil
	}
	if ry == 0 {
		pts := make([]image.Point, 0, rx+1)
		for x := 0; x <= rx; x++ {
			pts = append(pts, image.Pt(x, 0))
		}
		return pts
	}
	if rx == 0 {
		pts := make([]image.Point, 0, ry+1)
		for y := ry; y >= 0; y-- {
			pts = append(pts, image.Pt(0, y))
		}
		return pts
	}

	a2, b2 := int64(rx)*int64(rx), int64(ry)*int64(ry)
	x, y := int64(0), int64(ry)
	pts := make([]image.Point, 0, rx+ry+1)

	// Region 1: slope shallower than -1, x steps every iteration.
	d := 4*b2 - 4*a2*y + a2
	for b2*x < a2*y {
		pts = append(pts, image.Pt(int(x), int(y)))
		x++
		if d < 0 {
			d += 4 * (2*b2*x + b2)
		} else {
			y--
			d += 4 * (2*b2*x - 2*a2*y + b2)
		}
	}

	// Region 2: y steps every iteration.
	d = b2*(2*x+1)*(2*x+1) + 4*a2*(y-1)*(y-1) - 4*a2*b2
	for y >= 0 {
		pts = append(pts, image.Pt(int(x), int(y)))
		y--
		if d > 0 {
			d += 4 * (a2 - 2*a2*y)
		} else {
			x++
			d += 4 * (2*b2*x - 2*a2*y + a2)
		}
	}
	for last := pts[len(pts)-1].X; last < rx; last++ {
		pts = append(pts, image.Pt(last+1, 0))
	}
	return pts
}

// EllipsePoints returns the closed outline of the ellipse inscribed in r
// whose corners are rounded by an ellipse of size cw x ch. With cw and ch
// equal to the rectangle size this is a plain ellipse; smaller values give a
// rounded rectangle. The outline runs clockwise on screen starting at the
// top of the right-hand corner arc, and consecutive duplicates are removed.
func EllipsePoints(r image.Rectangle, cw, ch int) []image.Point {
	r = r.Canon()
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	cw = min(max(cw, 1), w)
	ch = min(max(ch, 1), h)
	rx, ry := (cw-1)/2, (ch-1)/2
	q := EllipseQuadrant(rx, ry)

	left, right := r.Min.X+rx, r.Max.X-1-rx
	top, bottom := r.Min.Y+ry, r.Max.Y-1-ry

	pts := make([]image.Point, 0, 4*len(q)+1)
	add := func(p image.Point) {
		if n := len(pts); n > 0 && pts[n-1] == p {
			return
		}
		pts = append(pts, p)
	}
	for _, p := range q {
		add(image.Pt(right+p.X, top-p.Y))
	}
	for i := len(q) - 1; i >= 0; i-- {
		add(image.Pt(right+q[i].X, bottom+q[i].Y))
	}
	for _, p := range q {
		add(image.Pt(left-p.X, bottom+p.Y))
	}
	for i := len(q) - 1; i >= 0; i-- {
		add(image.Pt(left-q[i].X, top-q[i].Y))
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// ArcPoints selects the part of the ellipse inscribed in r that runs
// counter-clockwise on screen from the radial through start to the radial
// through end. If both radials coincide the whole ellipse is returned,
// starting at the start radial.
func ArcPoints(r image.Rectangle, start, end image.Point) []image.Point {
	outline := EllipsePoints(r, r.Dx(), r.Dy())
	n := len(outline)
	if n == 0 {
		return nil
	}
	r = r.Canon()
	cx := float64(r.Min.X+r.Max.X-1) / 2
	cy := float64(r.Min.Y+r.Max.Y-1) / 2
	angle := func(x, y float64) float64 {
		a := math.Atan2(cy-y, x-cx)
		if a < 0 {
			a += 2 * math.Pi
		}
		return a
	}

	a0 := angle(float64(start.X), float64(start.Y))
	span := angle(float64(end.X), float64(end.Y)) - a0
	if span <= 0 {
		span += 2 * math.Pi
	}
	rel := func(p image.Point) float64 {
		d := angle(float64(p.X), float64(p.Y)) - a0
		if d < 0 {
			d += 2 * math.Pi
		}
		return d
	}

	// The outline runs clockwise; walk it backwards from the point just
	// past the start radial.
	first, best := 0, math.Inf(1)
	for i, p := range outline {
		if d := rel(p); d < best {
			first, best = i, d
		}
	}
	pts := make([]image.Point, 0, n)
	for k := range n {
		p := outline[(first-k+n)%n]
		if rel(p) > span {
			break
		}
		pts = append(pts, p)
	}
	return pts
}
