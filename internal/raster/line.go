// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "image"

// BresParams describes a whole line for clipping purposes.
type BresParams struct {
	DX, DY int // absolute deltas
	Octant Octant
	Bias   int
}

// LineParams is the stepping state handed to a pixel walker.
type LineParams struct {
	ErrStart int
	ErrAdd1  int // added when the minor axis steps
	ErrAdd2  int // added otherwise
	Bias     int
	Length   int
	XMajor   bool
	XInc     int
	YInc     int
}

// cropLimit bounds coordinates so the error terms fit comfortably in 64 bits.
const cropLimit = 0x10000000

// Crop scales points with huge coordinates down by 8.
func Crop(p image.Point) image.Point {
	if p.X >= cropLimit || p.X <= -cropLimit || p.Y >= cropLimit || p.Y <= -cropLimit {
		p.X /= 8
		p.Y /= 8
	}
	return p
}

// InitParams prepares the Bresenham state for the line from start to end
// and returns its bounding rectangle, end point included.
func InitParams(start, end image.Point) (BresParams, LineParams, image.Rectangle) {
	dx, dy := end.X-start.X, end.Y-start.Y
	bp := BresParams{DX: abs(dx), DY: abs(dy), Octant: OctantOf(dx, dy)}
	bp.Bias = bp.Octant.Bias()

	lp := LineParams{
		Bias:   bp.Bias,
		XMajor: bp.Octant.XMajor(),
		XInc:   -1,
		YInc:   -1,
	}
	if bp.Octant.XIncreasing() {
		lp.XInc = 1
	}
	if bp.Octant.YIncreasing() {
		lp.YInc = 1
	}
	if lp.XMajor {
		lp.ErrAdd1 = 2*bp.DY - 2*bp.DX
		lp.ErrAdd2 = 2 * bp.DY
	} else {
		lp.ErrAdd1 = 2*bp.DX - 2*bp.DY
		lp.ErrAdd2 = 2 * bp.DX
	}

	bounds := image.Rect(min(start.X, end.X), min(start.Y, end.Y),
		max(start.X, end.X)+1, max(start.Y, end.Y)+1)
	return bp, lp, bounds
}

// Clip sets ErrStart and Length for drawing the clipped piece cs..ce of the
// line start..end so the walk reproduces the unclipped pixel selection.
// When includeEnd is false the original end point is not drawn.
func (lp *LineParams) Clip(bp *BresParams, start, end, cs, ce image.Point, includeEnd bool) {
	m := abs(cs.X - start.X)
	n := abs(cs.Y - start.Y)
	if lp.XMajor {
		lp.ErrStart = 2*bp.DY - bp.DX + m*2*bp.DY - n*2*bp.DX
		lp.Length = abs(ce.X-cs.X) + 1
	} else {
		lp.ErrStart = 2*bp.DX - bp.DY + n*2*bp.DX - m*2*bp.DY
		lp.Length = abs(ce.Y-cs.Y) + 1
	}
	if !includeEnd && ce == end {
		lp.Length--
	}
}

// Walk visits the Length pixels of the line beginning at start.
func (lp *LineParams) Walk(start image.Point, fn func(x, y int)) {
	x, y := start.X, start.Y
	err := lp.ErrStart
	for range lp.Length {
		fn(x, y)
		if lp.XMajor {
			if err+lp.Bias > 0 {
				y += lp.YInc
				err += lp.ErrAdd1
			} else {
				err += lp.ErrAdd2
			}
			x += lp.XInc
		} else {
			if err+lp.Bias > 0 {
				x += lp.XInc
				err += lp.ErrAdd1
			} else {
				err += lp.ErrAdd2
			}
			y += lp.YInc
		}
	}
}

// Step advances the error term once and reports whether the minor axis moves.
func (lp *LineParams) Step(err *int) bool {
	if *err+lp.Bias > 0 {
		*err += lp.ErrAdd1
		return true
	}
	*err += lp.ErrAdd2
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
