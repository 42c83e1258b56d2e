// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dib

import (
	"encoding/binary"
	"image"

	"github.com/gogpu/dib/internal/blend"
	"github.com/gogpu/dib/internal/clip"
	icolor "github.com/gogpu/dib/internal/color"
	"github.com/gogpu/dib/internal/raster"
	"github.com/gogpu/dib/internal/rop"
)

// Types shared between the drivers and the primitives that call them.
type (
	// LineParams is the Bresenham stepping state of one clipped line.
	LineParams = raster.LineParams

	// StretchParams is the error-term state of one resampled row.
	StretchParams = raster.StretchParams

	// Overlap tells a copy which way to walk when source and destination
	// share memory.
	Overlap = clip.Overlap

	// BlendFunc selects constant and per-pixel alpha for BlendRect.
	BlendFunc = blend.Func

	// IntensityRanges holds the per-level channel bounds for glyph blending.
	IntensityRanges = blend.IntensityRanges
)

// SrcAlpha is the BlendFunc.AlphaFormat flag for sources carrying
// per-pixel premultiplied alpha.
const SrcAlpha = blend.SrcAlpha

// Driver performs the per-pixel work of every primitive for one pixel
// format. Callers have already clipped: every rectangle lies inside the
// surface and every line stays in bounds for its whole length.
type Driver interface {
	// SolidRects sets each pixel p of rects to (p & and) ^ xor.
	SolidRects(s *Surface, rects []image.Rectangle, and, xor uint32)

	// SolidLine applies (p & and) ^ xor along a line of lp.Length pixels
	// starting at start.
	SolidLine(s *Surface, start image.Point, lp *LineParams, and, xor uint32)

	// PatternRects tiles masks over rects, aligned so brush pixel (0, 0)
	// falls on origin.
	PatternRects(s *Surface, rects []image.Rectangle, origin image.Point, brush *Surface, masks *BrushMasks)

	// CopyRect combines src pixels from origin onward into r of dst with a
	// binary raster operation. src has dst's format.
	CopyRect(dst *Surface, r image.Rectangle, src *Surface, origin image.Point, rop2 Rop2, overlap Overlap)

	// BlendRect composites a 32-bit src onto r of dst.
	BlendRect(dst *Surface, r image.Rectangle, src *Surface, origin image.Point, f BlendFunc)

	// GradientRect fills r with the two-vertex gradient v.
	GradientRect(s *Surface, r image.Rectangle, v [2]Vertex, mode GradientMode)

	// DrawGlyph composites an 8-bit coverage map (levels 0 to 16) onto r.
	DrawGlyph(s *Surface, r image.Rectangle, glyph *Surface, origin image.Point, text uint32, ranges *IntensityRanges)

	// GetPixel returns the raw pixel value at (x, y).
	GetPixel(s *Surface, x, y int) uint32

	// ColorRefToPixel maps a color to the nearest pixel value.
	ColorRefToPixel(s *Surface, c ColorRef) uint32

	// PixelToColorRef expands a pixel value to its color.
	PixelToColorRef(s *Surface, p uint32) ColorRef

	// ConvertTo fills dst, whose format is the driver's, with the pixels of
	// srcRect in src. dst pixel (0, 0) receives srcRect.Min.
	ConvertTo(dst, src *Surface, srcRect image.Rectangle)

	// CreateRopMasks expands a 1-bit hatch into per-pixel AND/XOR masks:
	// set bits take fg, clear bits take bg.
	CreateRopMasks(s *Surface, hatch *Surface, fg, bg RopMask) (*BrushMasks, error)

	// StretchRow resamples one row where the destination is longer.
	StretchRow(dst *Surface, dstStart image.Point, src *Surface, srcStart image.Point, sp *StretchParams, mode StretchMode, keepDst bool)

	// ShrinkRow resamples one row where the destination is shorter.
	ShrinkRow(dst *Surface, dstStart image.Point, src *Surface, srcStart image.Point, sp *StretchParams, mode StretchMode, keepDst bool)
}

// BrushMasks is a tile of per-pixel AND and XOR values in a destination's
// pixel layout. And is nil when the raster operation never reads the
// destination.
type BrushMasks struct {
	And, Xor      []byte
	Width, Height int
	Stride        int

	buf []byte // backing scratch memory
}

// pixelFormat is the per-encoding codec the generic driver loops are built
// on.
type pixelFormat interface {
	bpp() int
	pixel(row []byte, x int) uint32
	setPixel(row []byte, x int, v uint32)
	toRGB(s *Surface, p uint32) icolor.RGB
	// fromRGB maps c to a pixel. Indexed formats use lc when it is non-nil
	// and the exact nearest search otherwise.
	fromRGB(s *Surface, c icolor.RGB, lc *icolor.LookupCache) uint32
}

// driverFor binds a format to its driver. Selection happens once per surface.
func driverFor(f Format) (Driver, pixelFormat) {
	var px pixelFormat
	switch f {
	case Format1:
		d := &driver1{packedDriver{genericDriver{px: format1{}}}}
		return d, d.px
	case Format4:
		d := &packedDriver{genericDriver{px: format4{}}}
		return d, d.px
	case Format8:
		px = format8{}
	case Format555, Format565, Format16:
		px = format16{}
	case Format24:
		px = format24{}
	case Format32:
		px = format32{}
	case Format8888:
		d := &driver8888{byteDriver{genericDriver{px: format8888{}}}}
		return d, d.px
	default:
		return nullDriver{}, nil
	}
	if f == Format565 {
		d := &driver565{byteDriver{genericDriver{px: px}}}
		return d, px
	}
	return &byteDriver{genericDriver{px: px}}, px
}

// genericDriver implements Driver one pixel at a time on top of a
// pixelFormat. Format drivers embed it and override the hot paths.
type genericDriver struct {
	px pixelFormat
}

func (d *genericDriver) SolidRects(s *Surface, rects []image.Rectangle, and, xor uint32) {
	for _, r := range rects {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			row := s.row(y)
			for x := r.Min.X; x < r.Max.X; x++ {
				d.px.setPixel(row, x, d.px.pixel(row, x)&and^xor)
			}
		}
	}
}

func (d *genericDriver) SolidLine(s *Surface, start image.Point, lp *LineParams, and, xor uint32) {
	lp.Walk(start, func(x, y int) {
		row := s.row(y)
		d.px.setPixel(row, x, d.px.pixel(row, x)&and^xor)
	})
}

func (d *genericDriver) PatternRects(s *Surface, rects []image.Rectangle, origin image.Point, _ *Surface, masks *BrushMasks) {
	for _, r := range rects {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			row := s.row(y)
			off := mod(y-origin.Y, masks.Height) * masks.Stride
			xorRow := masks.Xor[off:]
			bx := mod(r.Min.X-origin.X, masks.Width)
			if masks.And == nil {
				for x := r.Min.X; x < r.Max.X; x++ {
					d.px.setPixel(row, x, d.px.pixel(xorRow, bx))
					if bx++; bx == masks.Width {
						bx = 0
					}
				}
				continue
			}
			andRow := masks.And[off:]
			for x := r.Min.X; x < r.Max.X; x++ {
				d.px.setPixel(row, x, d.px.pixel(row, x)&d.px.pixel(andRow, bx)^d.px.pixel(xorRow, bx))
				if bx++; bx == masks.Width {
					bx = 0
				}
			}
		}
	}
}

func (d *genericDriver) CopyRect(dst *Surface, r image.Rectangle, src *Surface, origin image.Point, rop2 Rop2, overlap Overlap) {
	w, h := r.Dx(), r.Dy()
	for i := range h {
		y := r.Min.Y + i
		if overlap.BottomUp() {
			y = r.Max.Y - 1 - i
		}
		drow, srow := dst.row(y), src.row(origin.Y+y-r.Min.Y)
		for j := range w {
			x := r.Min.X + j
			if overlap.Reverse() {
				x = r.Max.X - 1 - j
			}
			sp := d.px.pixel(srow, origin.X+x-r.Min.X)
			d.px.setPixel(drow, x, rop.Apply(rop2, sp, d.px.pixel(drow, x)))
		}
	}
}

func (d *genericDriver) BlendRect(dst *Surface, r image.Rectangle, src *Surface, origin image.Point, f BlendFunc) {
	lc := dst.lookupCache()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		drow, srow := dst.row(y), src.row(origin.Y+y-r.Min.Y)
		sx := origin.X
		for x := r.Min.X; x < r.Max.X; x++ {
			sp := binary.LittleEndian.Uint32(srow[sx*4:])
			c := d.px.toRGB(dst, d.px.pixel(drow, x))
			c.R, c.G, c.B = blend.RGB(c.R, c.G, c.B, sp, f)
			d.px.setPixel(drow, x, d.px.fromRGB(dst, c, lc))
			sx++
		}
	}
}

func (d *genericDriver) GradientRect(s *Surface, r image.Rectangle, v [2]Vertex, mode GradientMode) {
	lc := s.lookupCache()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.row(y)
		for x := r.Min.X; x < r.Max.X; x++ {
			c, _ := gradientAt(v, mode, x, y)
			d.px.setPixel(row, x, d.px.fromRGB(s, c, lc))
		}
	}
}

func (d *genericDriver) DrawGlyph(s *Surface, r image.Rectangle, glyph *Surface, origin image.Point, text uint32, ranges *IntensityRanges) {
	t := d.px.toRGB(s, text)
	lc := s.lookupCache()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.row(y)
		grow := glyph.row(origin.Y + y - r.Min.Y)
		gx := origin.X
		for x := r.Min.X; x < r.Max.X; x++ {
			level := int(grow[gx])
			gx++
			switch {
			case level <= 1:
			case level >= blend.Levels-1:
				d.px.setPixel(row, x, text)
			default:
				c := d.px.toRGB(s, d.px.pixel(row, x))
				c.R, c.G, c.B = blend.AARGB(c.R, c.G, c.B, t.R, t.G, t.B, &ranges[level])
				d.px.setPixel(row, x, d.px.fromRGB(s, c, lc))
			}
		}
	}
}

func (d *genericDriver) GetPixel(s *Surface, x, y int) uint32 {
	return d.px.pixel(s.row(y), x)
}

func (d *genericDriver) ColorRefToPixel(s *Surface, c ColorRef) uint32 {
	if c.IsDIBIndex() {
		if i := c.Index(); i < len(s.table) {
			return uint32(i) //nolint:gosec // bounded by the table
		}
		c = 0
	}
	return d.px.fromRGB(s, c.rgb(), nil)
}

func (d *genericDriver) PixelToColorRef(s *Surface, p uint32) ColorRef {
	return colorRefOf(d.px.toRGB(s, p))
}

func (d *genericDriver) ConvertTo(dst, src *Surface, srcRect image.Rectangle) {
	if src.px == nil {
		return
	}
	w, h := srcRect.Dx(), srcRect.Dy()
	if dst.sameLayout(src) {
		if bpp := d.px.bpp(); bpp >= 8 {
			n := bpp / 8
			for y := range h {
				copy(dst.row(y)[:w*n], src.row(srcRect.Min.Y + y)[srcRect.Min.X*n:])
			}
			return
		}
		for y := range h {
			drow, srow := dst.row(y), src.row(srcRect.Min.Y+y)
			for x := range w {
				d.px.setPixel(drow, x, d.px.pixel(srow, srcRect.Min.X+x))
			}
		}
		return
	}
	lc := dst.lookupCache()
	for y := range h {
		drow, srow := dst.row(y), src.row(srcRect.Min.Y+y)
		for x := range w {
			c := src.px.toRGB(src, src.px.pixel(srow, srcRect.Min.X+x))
			d.px.setPixel(drow, x, d.px.fromRGB(dst, c, lc))
		}
	}
}

func (d *genericDriver) CreateRopMasks(s *Surface, hatch *Surface, fg, bg RopMask) (*BrushMasks, error) {
	w, h := hatch.width, hatch.height
	stride := RowBytes(s.format, w)
	buf, err := s.scratchBytes(2 * stride * h)
	if err != nil {
		return nil, err
	}
	m := &BrushMasks{And: buf[:stride*h], Xor: buf[stride*h:], Width: w, Height: h, Stride: stride, buf: buf}
	for y := range h {
		hrow := hatch.row(y)
		arow, xrow := m.And[y*stride:], m.Xor[y*stride:]
		for x := range w {
			rm := bg
			if hatch.px.pixel(hrow, x) != 0 {
				rm = fg
			}
			d.px.setPixel(arow, x, rm.And)
			d.px.setPixel(xrow, x, rm.Xor)
		}
	}
	return m, nil
}

func (d *genericDriver) StretchRow(dst *Surface, dstStart image.Point, src *Surface, srcStart image.Point, sp *StretchParams, mode StretchMode, keepDst bool) {
	drow, srow := dst.row(dstStart.Y), src.row(srcStart.Y)
	dx, sx, err := dstStart.X, srcStart.X, sp.ErrStart
	overwrite := mode == StretchDeleteScans || !keepDst
	rop2 := scanRop(mode)
	for range sp.Length {
		p := d.px.pixel(srow, sx)
		if !overwrite {
			p = rop.Apply(rop2, p, d.px.pixel(drow, dx))
		}
		d.px.setPixel(drow, dx, p)
		dx += sp.DstInc
		if err > 0 {
			sx += sp.SrcInc
			err += sp.ErrAdd1
		} else {
			err += sp.ErrAdd2
		}
	}
}

func (d *genericDriver) ShrinkRow(dst *Surface, dstStart image.Point, src *Surface, srcStart image.Point, sp *StretchParams, mode StretchMode, keepDst bool) {
	drow, srow := dst.row(dstStart.Y), src.row(srcStart.Y)
	dx, sx, err := dstStart.X, srcStart.X, sp.ErrStart
	rop2 := scanRop(mode)
	var init uint32
	if mode == StretchAndScans {
		init = ^uint32(0)
	}
	newPix := true
	for range sp.Length {
		p := d.px.pixel(srow, sx)
		switch {
		case mode == StretchDeleteScans:
			if newPix {
				d.px.setPixel(drow, dx, p)
			}
		default:
			if newPix && !keepDst {
				d.px.setPixel(drow, dx, init)
			}
			d.px.setPixel(drow, dx, rop.Apply(rop2, p, d.px.pixel(drow, dx)))
		}
		newPix = false
		sx += sp.SrcInc
		if err > 0 {
			dx += sp.DstInc
			newPix = true
			err += sp.ErrAdd1
		} else {
			err += sp.ErrAdd2
		}
	}
}

// scanRop is the binary operation that merges resampled pixels in mode.
func scanRop(mode StretchMode) Rop2 {
	if mode == StretchOrScans {
		return rop.MergePen
	}
	return rop.MaskPen
}

// byteDriver serves formats whose pixels are whole bytes.
type byteDriver struct {
	genericDriver
}

func (d *byteDriver) SolidRects(s *Surface, rects []image.Rectangle, and, xor uint32) {
	n := d.px.bpp() / 8
	for _, r := range rects {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			fillBytes(s.row(y)[r.Min.X*n:r.Max.X*n], n, and, xor)
		}
	}
}

func (d *byteDriver) CopyRect(dst *Surface, r image.Rectangle, src *Surface, origin image.Point, rop2 Rop2, overlap Overlap) {
	n := d.px.bpp() / 8
	w := r.Dx() * n
	for i := range r.Dy() {
		y := r.Min.Y + i
		if overlap.BottomUp() {
			y = r.Max.Y - 1 - i
		}
		dspan := dst.row(y)[r.Min.X*n:][:w]
		sspan := src.row(origin.Y + y - r.Min.Y)[origin.X*n:][:w]
		switch {
		case rop2 == rop.CopyPen:
			copy(dspan, sspan)
		case overlap.Reverse():
			for j := w - 1; j >= 0; j-- {
				dspan[j] = byte(rop.Apply(rop2, uint32(sspan[j]), uint32(dspan[j])))
			}
		default:
			rop.ApplyBytes(rop2, dspan, sspan)
		}
	}
}

// fillBytes applies (p & and) ^ xor to every n-byte pixel of span.
func fillBytes(span []byte, n int, and, xor uint32) {
	var a, x [4]byte
	binary.LittleEndian.PutUint32(a[:], and)
	binary.LittleEndian.PutUint32(x[:], xor)
	if and&ones(n*8) == 0 {
		for i := 0; i < len(span); i += n {
			copy(span[i:i+n], x[:n])
		}
		return
	}
	for i := 0; i < len(span); i += n {
		for j := range n {
			span[i+j] = span[i+j]&a[j] ^ x[j]
		}
	}
}
