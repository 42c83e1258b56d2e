// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dib

import (
	"fmt"
	"image"

	"github.com/gogpu/dib/internal/clip"
	"github.com/gogpu/dib/internal/rop"
)

// BitBlt combines the pixels of src starting at srcPt with dstRect of dst
// through a ternary raster operation. Operations that ignore the source
// behave as PatBlt. A source in another format is converted to the
// destination's first; a source sharing the destination's memory is
// copied in the order that never reads an already written pixel.
//
// Example:
//
//	// Scroll the top 100 rows of s down by 10 pixels.
//	err := dib.BitBlt(s, image.Rect(0, 10, s.Width(), 110), s, image.Pt(0, 0), dib.SrcCopy, st, nil)
func BitBlt(dst *Surface, dstRect image.Rectangle, src *Surface, srcPt image.Point, rop3 Rop3, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	if !rop3.UsesSource() {
		return PatBlt(dst, dstRect, rop3, st, clipList)
	}
	if src == nil {
		return fmt.Errorf("%w: nil source", ErrInvalidSource)
	}
	if dst.format == FormatNull || src.format == FormatNull {
		return nil
	}

	// Restrict to the part of the source that exists.
	dstRect = dstRect.Canon()
	srcRect := image.Rectangle{Min: srcPt, Max: srcPt.Add(dstRect.Size())}
	srcVis := srcRect.Intersect(src.Bounds())
	if srcVis.Empty() {
		return nil
	}
	dstRect = srcVis.Sub(srcPt).Add(dstRect.Min)
	vis := clip.Rects(dst.Bounds(), dstRect, clipList)
	if len(vis) == 0 {
		return nil
	}

	source, origin := src, srcVis.Min
	shared := dst.sharesMemory(src)
	if !src.sameLayout(dst) {
		tmp, err := dst.newScratch(dst.format, srcVis.Dx(), srcVis.Dy(), dst)
		if err != nil {
			return err
		}
		defer tmp.release()
		dst.driver.ConvertTo(tmp, src, srcVis)
		source, origin, shared = tmp, image.Point{}, false
	}

	if rop3.UsesPattern() {
		return ternaryBlt(dst, dstRect, vis, source, origin, shared, rop3, st)
	}

	rop2 := rop3.SourceRop2()
	switch rop2 {
	case R2Nop:
		return nil
	case R2Black, R2White, R2Not:
		m := RopMasks(rop2, 0)
		dst.driver.SolidRects(dst, vis, m.And, m.Xor)
		return nil
	}
	overlap := clip.GetOverlap(dstRect, srcVis, shared)
	for _, i := range clip.Order(vis, overlap) {
		r := vis[i]
		dst.driver.CopyRect(dst, r, source, origin.Add(r.Min.Sub(dstRect.Min)), rop2, overlap)
	}
	return nil
}

// ternaryBlt evaluates a raster operation reading pattern, source and
// destination. The brush is first rendered into a scratch surface covering
// the visible area; an aliasing source is snapshotted the same way.
func ternaryBlt(dst *Surface, dstRect image.Rectangle, vis []image.Rectangle, src *Surface, origin image.Point,
	shared bool, rop3 Rop3, st *DrawState,
) error {
	bbox := clip.Bounds(vis)
	pat, err := dst.newScratch(dst.format, bbox.Dx(), bbox.Dy(), dst)
	if err != nil {
		return err
	}
	defer pat.release()
	pst := *st
	pst.BrushOrigin = st.BrushOrigin.Sub(bbox.Min)
	if err := pst.fillBrush(pat, []image.Rectangle{pat.Bounds()}, R2CopyPen); err != nil {
		return err
	}

	if shared {
		srcBox := bbox.Sub(dstRect.Min).Add(origin)
		snap, err := dst.newScratch(dst.format, srcBox.Dx(), srcBox.Dy(), dst)
		if err != nil {
			return err
		}
		defer snap.release()
		dst.driver.ConvertTo(snap, src, srcBox)
		src, origin = snap, origin.Sub(srcBox.Min)
	}

	px := dst.px
	bpp := px.bpp()
	readDst := rop3.UsesDest()
	for _, r := range vis {
		so := origin.Add(r.Min.Sub(dstRect.Min))
		po := r.Min.Sub(bbox.Min)
		for y := range r.Dy() {
			drow := dst.row(r.Min.Y + y)
			srow := src.row(so.Y + y)
			prow := pat.row(po.Y + y)
			if bpp >= 8 {
				n := bpp / 8
				w := r.Dx() * n
				rop.TernaryBytes(rop3, drow[r.Min.X*n:][:w], srow[so.X*n:][:w], prow[po.X*n:][:w])
				continue
			}
			for x := range r.Dx() {
				var d uint32
				if readDst {
					d = px.pixel(drow, r.Min.X+x)
				}
				s := px.pixel(srow, so.X+x)
				p := px.pixel(prow, po.X+x)
				px.setPixel(drow, r.Min.X+x, rop.Ternary(rop3, p, s, d))
			}
		}
	}
	return nil
}

// sharesMemory reports whether s and o draw into the same pixel buffer.
func (s *Surface) sharesMemory(o *Surface) bool {
	if s == o {
		return true
	}
	if len(s.bits) == 0 || len(o.bits) == 0 {
		return false
	}
	return &s.bits[0] == &o.bits[0]
}
