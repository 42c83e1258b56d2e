// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dib

import (
	"fmt"
	"image"
)

// Convert writes the pixels of srcRect in src into dst starting at dst's
// origin, translating between the two formats. Identical layouts are
// copied byte for byte; other pairs decode each pixel to RGB and encode it
// again, quantizing to dst's palette where dst is indexed. The area copied
// is limited to what both surfaces hold.
func Convert(dst, src *Surface, srcRect image.Rectangle) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%w: nil surface", ErrInvalidSource)
	}
	srcRect = srcRect.Canon().Intersect(src.Bounds())
	w, h := min(srcRect.Dx(), dst.width), min(srcRect.Dy(), dst.height)
	if w <= 0 || h <= 0 || dst.format == FormatNull {
		return nil
	}
	srcRect.Max = srcRect.Min.Add(image.Pt(w, h))
	dst.driver.ConvertTo(dst, src, srcRect)
	return nil
}

// ConvertFormat returns a copy of s in format f. Options apply to the new
// surface as they do for New; without WithColorTable an indexed copy gets
// the format's default palette.
//
// Example:
//
//	gray, err := s.ConvertFormat(dib.Format8, dib.WithColorTable(grays))
func (s *Surface) ConvertFormat(f Format, opts ...SurfaceOption) (*Surface, error) {
	out, err := New(f, s.width, s.height, opts...)
	if err != nil {
		return nil, fmt.Errorf("dib: convert %s to %s: %w", s.format, f, err)
	}
	if err := Convert(out, s, s.Bounds()); err != nil {
		return nil, err
	}
	return out, nil
}
