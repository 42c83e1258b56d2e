// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dib

import (
	"image"

	"github.com/gogpu/dib/internal/bitfield"
	"github.com/gogpu/dib/internal/rop"
)

// packedDriver serves formats with several pixels per byte. Runs are
// processed a byte at a time with masks for the partial bytes at either
// end; misaligned copies fall back to the per-pixel loop.
type packedDriver struct {
	genericDriver
}

// replicate spreads a pixel value over a whole byte.
func (d *packedDriver) replicate(v uint32) byte {
	if d.px.bpp() == 1 {
		return bitfield.Replicate1(v)
	}
	return bitfield.Replicate4(v)
}

func (d *packedDriver) SolidRects(s *Surface, rects []image.Rectangle, and, xor uint32) {
	bpp := d.px.bpp()
	a, x := d.replicate(and), d.replicate(xor)
	for _, r := range rects {
		i0, i1 := bitfield.ByteSpan(r.Min.X, r.Max.X, bpp)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			row := s.row(y)
			for i := i0; i <= i1; i++ {
				m := byte(0xff)
				if i == i0 || i == i1 {
					m = bitfield.SpanMask(r.Min.X, r.Max.X, i, bpp)
				}
				row[i] = row[i]&(a|^m) ^ x&m
			}
		}
	}
}

func (d *packedDriver) CopyRect(dst *Surface, r image.Rectangle, src *Surface, origin image.Point, rop2 Rop2, overlap Overlap) {
	bpp := d.px.bpp()
	ppb := bitfield.PixelsPerByte(bpp)
	if (r.Min.X-origin.X)%ppb != 0 {
		d.genericDriver.CopyRect(dst, r, src, origin, rop2, overlap)
		return
	}
	i0, i1 := bitfield.ByteSpan(r.Min.X, r.Max.X, bpp)
	delta := origin.X/ppb - i0
	for k := range r.Dy() {
		y := r.Min.Y + k
		if overlap.BottomUp() {
			y = r.Max.Y - 1 - k
		}
		drow, srow := dst.row(y), src.row(origin.Y+y-r.Min.Y)
		for j := range i1 - i0 + 1 {
			i := i0 + j
			if overlap.Reverse() {
				i = i1 - j
			}
			m := byte(0xff)
			if i == i0 || i == i1 {
				m = bitfield.SpanMask(r.Min.X, r.Max.X, i, bpp)
			}
			v := byte(rop.Apply(rop2, uint32(srow[i+delta]), uint32(drow[i])))
			drow[i] = drow[i]&^m | v&m
		}
	}
}
