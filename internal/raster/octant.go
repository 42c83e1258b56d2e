// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster implements integer Bresenham rasterization: line setup and
// analytic clipping, ellipse outline generation, polygon scan conversion and
// the one-dimensional stretch parameters shared by image resampling.
//
// Coordinates are in device space with y increasing downwards. Rectangles are
// half-open, as image.Rectangle.
package raster

// Octant is a one-hot mask identifying the slope class of a line.
// Octants are numbered clockwise from the positive x axis, so octant 1
// (bit 0) covers x-major lines going right and down.
type Octant uint32

const (
	yIncreasingMask Octant = 0x0f
	xIncreasingMask Octant = 0xc3
	xMajorMask      Octant = 0x99
	posSlopeMask    Octant = 0x33
	biasMask        Octant = 0xb4
)

// OctantNumber returns the octant (1..8) of the direction (dx, dy).
func OctantNumber(dx, dy int) int {
	if dy > 0 {
		if dx > 0 {
			if dx > dy {
				return 1
			}
			return 2
		}
		if -dx > dy {
			return 4
		}
		return 3
	}
	if dx < 0 {
		if -dx > -dy {
			return 5
		}
		return 6
	}
	if dx > -dy {
		return 8
	}
	return 7
}

// OctantOf returns the octant mask of the direction (dx, dy).
func OctantOf(dx, dy int) Octant {
	return Octant(1) << uint(OctantNumber(dx, dy)-1) //nolint:gosec // 0..7
}

// XMajor reports whether the line advances along x every step.
func (o Octant) XMajor() bool { return o&xMajorMask != 0 }

// PosSlope reports whether x and y advance in the same direction.
func (o Octant) PosSlope() bool { return o&posSlopeMask != 0 }

// XIncreasing reports whether x increases along the line.
func (o Octant) XIncreasing() bool { return o&xIncreasingMask != 0 }

// YIncreasing reports whether y increases along the line.
func (o Octant) YIncreasing() bool { return o&yIncreasingMask != 0 }

// Bias returns the tie-breaking bias. Octants 3, 5, 6 and 8 take a bias of 1
// so a line and its reverse select the same pixels.
func (o Octant) Bias() int {
	if o&biasMask != 0 {
		return 1
	}
	return 0
}
