// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "image"

// StretchParams drives a one-dimensional resample. The source index moves by
// SrcInc and the destination index by DstInc; which of the two advances on
// every iteration depends on whether the axis is stretched or shrunk.
type StretchParams struct {
	ErrStart int
	ErrAdd1  int
	ErrAdd2  int
	SrcInc   int
	DstInc   int
	Length   int
}

// Span is the visible part of one resampled axis.
type Span struct {
	DstStart, DstEnd int
	SrcStart, SrcEnd int
	Stretch          bool // destination longer than source
}

// Calc1DStretch plans the resampling of src (start, length) onto dst
// (start, length), restricted to the visible windows [dstVis0, dstVis1)
// and [srcVis0, srcVis1). Negative lengths mirror the axis.
//
// The mapping is drawn as a Bresenham line with the source on x and the
// destination on y. It differs from a line only in the error of the first
// step, which is 3d - 2D instead of 2d - D, because the decision looks at
// the midpoint between the next two pixel centers. That extra d - D is fed
// through the bias so the line clipper yields the visible window.
func Calc1DStretch(dstStart, dstLen, dstVis0, dstVis1, srcStart, srcLen, srcVis0, srcVis1 int) (StretchParams, Span, bool) {
	sp := StretchParams{SrcInc: 1, DstInc: 1}
	if dstLen == 0 || srcLen == 0 {
		return sp, Span{}, false
	}

	bp := BresParams{DY: abs(dstLen), DX: abs(srcLen)}
	oct := 2
	if bp.DX > bp.DY {
		oct = 1
	}
	if srcLen < 0 {
		oct = 5 - oct
		sp.SrcInc = -1
	}
	if dstLen < 0 {
		oct = 9 - oct
		sp.DstInc = -1
	}
	bp.Octant = Octant(1) << uint(oct-1) //nolint:gosec // 0..7
	if bp.DX > bp.DY {
		bp.Bias = bp.DY - bp.DX
	} else {
		bp.Bias = bp.DX - bp.DY
	}

	start := image.Pt(srcStart, dstStart)
	end := image.Pt(srcStart+srcLen, dstStart+dstLen)
	clip := image.Rect(srcVis0, dstVis0, srcVis1, dstVis1)
	cs, ce, status := ClipLine(start, end, clip, &bp)
	if status == Rejected {
		return sp, Span{}, false
	}

	m := abs(cs.X - start.X)
	n := abs(cs.Y - start.Y)
	var span Span
	if bp.DX > bp.DY {
		sp.ErrStart = 3*bp.DY - 2*bp.DX + m*2*bp.DY - n*2*bp.DX
		sp.ErrAdd1 = 2*bp.DY - 2*bp.DX
		sp.ErrAdd2 = 2 * bp.DY
		sp.Length = abs(ce.X - cs.X)
	} else {
		sp.ErrStart = 3*bp.DX - 2*bp.DY + n*2*bp.DX - m*2*bp.DY
		sp.ErrAdd1 = 2*bp.DX - 2*bp.DY
		sp.ErrAdd2 = 2 * bp.DX
		sp.Length = abs(ce.Y - cs.Y)
		span.Stretch = true
	}

	// The true end point lies one past the last pixel; a clipped end is a
	// real pixel and must be included.
	if ce != end {
		ce.X += sp.SrcInc
		ce.Y += sp.DstInc
		sp.Length++
	}

	span.SrcStart, span.DstStart = cs.X, cs.Y
	span.SrcEnd, span.DstEnd = ce.X, ce.Y
	return sp, span, true
}
