// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package clip computes the visible pieces of drawing operations from a
// precomputed clip list.
//
// A clip list is a y-major sorted sequence of disjoint rectangles. Region
// algebra is not done here; lists come from the caller and are only ever
// intersected with single rectangles.
package clip

import "image"

// Rects returns the pieces of r that are visible on a surface with the
// given bounds and clip list. A nil clip list means the whole surface is
// visible; an empty non-nil list hides everything. The result keeps the
// clip list's order. A list that is not y-major sorted is scanned in full
// instead of stopping at the first rectangle below r.
func Rects(bounds, r image.Rectangle, clip []image.Rectangle) []image.Rectangle {
	r = r.Intersect(bounds)
	if r.Empty() {
		return nil
	}
	if clip == nil {
		return []image.Rectangle{r}
	}
	sorted := Sorted(clip)
	out := make([]image.Rectangle, 0, len(clip))
	for _, c := range clip {
		if sorted && c.Min.Y >= r.Max.Y {
			break
		}
		if c.Max.Y <= r.Min.Y {
			continue
		}
		if i := c.Intersect(r); !i.Empty() {
			out = append(out, i)
		}
	}
	return out
}

// Intersect restricts every rectangle of list to r, dropping empty results.
func Intersect(list []image.Rectangle, r image.Rectangle) []image.Rectangle {
	if list == nil {
		return []image.Rectangle{r}
	}
	out := make([]image.Rectangle, 0, len(list))
	for _, c := range list {
		if i := c.Intersect(r); !i.Empty() {
			out = append(out, i)
		}
	}
	return out
}

// Bounds returns the union bounding box of list.
func Bounds(list []image.Rectangle) image.Rectangle {
	var b image.Rectangle
	for _, r := range list {
		b = b.Union(r)
	}
	return b
}

// Sorted reports whether list is y-major sorted and free of empty entries.
func Sorted(list []image.Rectangle) bool {
	for i, r := range list {
		if r.Empty() {
			return false
		}
		if i == 0 {
			continue
		}
		p := list[i-1]
		if r.Min.Y < p.Min.Y || (r.Min.Y == p.Min.Y && r.Min.X < p.Max.X) {
			return false
		}
	}
	return true
}
