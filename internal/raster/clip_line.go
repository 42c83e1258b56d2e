// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "image"

// ClipStatus is the outcome of clipping a line against a rectangle.
type ClipStatus int

// Clip outcomes.
const (
	Rejected  ClipStatus = iota // nothing visible
	Clipped                     // partially visible
	Unclipped                   // entirely inside
)

// Outcode bits.
const (
	OutLeft   = 1
	OutRight  = 2
	OutTop    = 4
	OutBottom = 8
)

// Outcode classifies p against the half-open rectangle clip.
func Outcode(p image.Point, clip image.Rectangle) int {
	var out int
	if p.X < clip.Min.X {
		out |= OutLeft
	} else if p.X >= clip.Max.X {
		out |= OutRight
	}
	if p.Y < clip.Min.Y {
		out |= OutTop
	} else if p.Y >= clip.Max.Y {
		out |= OutBottom
	}
	return out
}

// ClipLine clips the line start..end to clip. The end point is treated like
// the start point: if it survives, it is part of the returned segment.
//
// Intersections are found by inverting the Bresenham error recurrence
// rather than solving the line equation, so the returned points are exactly
// the pixels the unclipped walk would visit at the clip boundary. For an
// x-major line the error satisfies 2dy >= err + bias > 2dy - 2dx; moving
// the start by m along x forces a unique minor offset n, and moving it by n
// along y allows a range of m of which the smallest is taken.
func ClipLine(start, end image.Point, clip image.Rectangle, bp *BresParams) (p1, p2 image.Point, status ClipStatus) {
	bias := int64(bp.Bias)
	dx, dy := int64(bp.DX), int64(bp.DY)
	twoDX, twoDY := 2*dx, 2*dy
	xmajor := bp.Octant.XMajor()
	negSlope := !bp.Octant.PosSlope()

	p1, p2 = start, end
	startOC := Outcode(start, clip)
	endOC := Outcode(end, clip)
	clipped := false

	for {
		if startOC == 0 && endOC == 0 {
			if clipped {
				return p1, p2, Clipped
			}
			return p1, p2, Unclipped
		}
		if startOC&endOC != 0 {
			return p1, p2, Rejected
		}
		clipped = true

		var m, n int64
		switch {
		case startOC&OutLeft != 0:
			m = int64(clip.Min.X - start.X)
			n = startMinor(m, xmajor, bias, dx, dy, twoDX, twoDY)
			if negSlope {
				n = -n
			}
			p1 = image.Pt(clip.Min.X, start.Y+int(n))
			startOC = Outcode(p1, clip)
		case startOC&OutRight != 0:
			m = int64(start.X - clip.Max.X + 1)
			n = startMinor(m, xmajor, bias, dx, dy, twoDX, twoDY)
			if negSlope {
				n = -n
			}
			p1 = image.Pt(clip.Max.X-1, start.Y-int(n))
			startOC = Outcode(p1, clip)
		case startOC&OutTop != 0:
			n = int64(clip.Min.Y - start.Y)
			m = startMajor(n, xmajor, bias, dx, dy, twoDX, twoDY)
			if negSlope {
				m = -m
			}
			p1 = image.Pt(start.X+int(m), clip.Min.Y)
			startOC = Outcode(p1, clip)
		case startOC&OutBottom != 0:
			n = int64(start.Y - clip.Max.Y + 1)
			m = startMajor(n, xmajor, bias, dx, dy, twoDX, twoDY)
			if negSlope {
				m = -m
			}
			p1 = image.Pt(start.X-int(m), clip.Max.Y-1)
			startOC = Outcode(p1, clip)
		case endOC&OutLeft != 0:
			m = int64(clip.Min.X - end.X)
			n = endMinor(m, xmajor, bias, dx, dy, twoDX, twoDY)
			if negSlope {
				n = -n
			}
			p2 = image.Pt(clip.Min.X, end.Y+int(n))
			endOC = Outcode(p2, clip)
		case endOC&OutRight != 0:
			m = int64(end.X - clip.Max.X + 1)
			n = endMinor(m, xmajor, bias, dx, dy, twoDX, twoDY)
			if negSlope {
				n = -n
			}
			p2 = image.Pt(clip.Max.X-1, end.Y-int(n))
			endOC = Outcode(p2, clip)
		case endOC&OutTop != 0:
			n = int64(clip.Min.Y - end.Y)
			m = endMajor(n, xmajor, bias, dx, dy, twoDX, twoDY)
			if negSlope {
				m = -m
			}
			p2 = image.Pt(end.X+int(m), clip.Min.Y)
			endOC = Outcode(p2, clip)
		case endOC&OutBottom != 0:
			n = int64(end.Y - clip.Max.Y + 1)
			m = endMajor(n, xmajor, bias, dx, dy, twoDX, twoDY)
			if negSlope {
				m = -m
			}
			p2 = image.Pt(end.X-int(m), clip.Max.Y-1)
			endOC = Outcode(p2, clip)
		}
	}
}

// startMinor returns the y offset for a start point moved m along x.
func startMinor(m int64, xmajor bool, bias, dx, dy, twoDX, twoDY int64) int64 {
	if xmajor {
		return (m*twoDY + bias + dx - 1) / twoDX
	}
	return (m*twoDY-bias-dy)/twoDX + 1
}

// startMajor returns the x offset for a start point moved n along y.
func startMajor(n int64, xmajor bool, bias, dx, dy, twoDX, twoDY int64) int64 {
	if xmajor {
		return (n*twoDX-bias-dx)/twoDY + 1
	}
	return (n*twoDX + bias + dy - 1) / twoDY
}

// endMinor returns the y offset for an end point moved m along x.
func endMinor(m int64, xmajor bool, bias, dx, dy, twoDX, twoDY int64) int64 {
	if xmajor {
		return (m*twoDY - bias + dx) / twoDX
	}
	return (m*twoDY+bias-dy-1)/twoDX + 1
}

// endMajor returns the x offset for an end point moved n along y.
func endMajor(n int64, xmajor bool, bias, dx, dy, twoDX, twoDY int64) int64 {
	if xmajor {
		return (n*twoDX+bias-dx-1)/twoDY + 1
	}
	return (n*twoDX - bias + dy) / twoDY
}
