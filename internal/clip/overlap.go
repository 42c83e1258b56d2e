// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clip

import "image"

// Overlap describes how a destination rectangle sits relative to an
// aliasing source rectangle on the same pixel buffer.
type Overlap uint8

// Overlap flags. Above and Below are exclusive, as are Left and Right.
const (
	OverlapNone  Overlap = 0
	OverlapLeft  Overlap = 0x1 // destination left of source
	OverlapRight Overlap = 0x2 // destination right of source
	OverlapAbove Overlap = 0x4 // destination above source
	OverlapBelow Overlap = 0x8 // destination below source
)

// Reverse reports whether rows must be walked right to left.
func (o Overlap) Reverse() bool { return o&OverlapRight != 0 }

// BottomUp reports whether rows must be visited bottom to top.
func (o Overlap) BottomUp() bool { return o&OverlapBelow != 0 }

// GetOverlap classifies dst against src when both address the same buffer.
// Disjoint rectangles do not overlap.
func GetOverlap(dst, src image.Rectangle, shared bool) Overlap {
	if !shared || !dst.Overlaps(src) {
		return OverlapNone
	}
	var o Overlap
	switch {
	case dst.Min.Y < src.Min.Y:
		o |= OverlapAbove
	case dst.Min.Y > src.Min.Y:
		o |= OverlapBelow
	}
	switch {
	case dst.Min.X < src.Min.X:
		o |= OverlapLeft
	case dst.Min.X > src.Min.X:
		o |= OverlapRight
	}
	return o
}

// Order returns the indices of rects in the order a copy must visit them so
// that no clip piece overwrites source pixels another piece still needs.
// rects must be y-major sorted.
func Order(rects []image.Rectangle, o Overlap) []int {
	idx := make([]int, 0, len(rects))
	switch {
	case o&OverlapBelow != 0 && o&OverlapRight != 0:
		for i := len(rects) - 1; i >= 0; i-- {
			idx = append(idx, i)
		}
	case o&OverlapBelow != 0:
		// Bands bottom to top, each band left to right.
		for start := len(rects) - 1; start >= 0; {
			end := start - 1
			for end >= 0 && rects[end].Min.Y == rects[start].Min.Y {
				end--
			}
			for i := end + 1; i <= start; i++ {
				idx = append(idx, i)
			}
			start = end
		}
	case o&OverlapRight != 0:
		// Bands top to bottom, each band right to left.
		for start := 0; start < len(rects); {
			end := start + 1
			for end < len(rects) && rects[end].Min.Y == rects[start].Min.Y {
				end++
			}
			for i := end - 1; i >= start; i-- {
				idx = append(idx, i)
			}
			start = end
		}
	default:
		for i := range rects {
			idx = append(idx, i)
		}
	}
	return idx
}
