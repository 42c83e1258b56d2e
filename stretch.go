// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dib

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/dib/internal/clip"
	"github.com/gogpu/dib/internal/raster"
)

// Coords is a blit rectangle that may be mirrored. A negative Width runs
// leftward from X, which is then the rightmost column covered; a negative
// Height runs upward from Y the same way.
type Coords struct {
	X, Y          int
	Width, Height int
}

// Bounds returns the pixels c covers.
func (c Coords) Bounds() image.Rectangle {
	r := image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
	if c.Width < 0 {
		r.Min.X, r.Max.X = c.X+c.Width+1, c.X+1
	}
	if c.Height < 0 {
		r.Min.Y, r.Max.Y = c.Y+c.Height+1, c.Y+1
	}
	return r
}

// StretchBlt resamples srcCoords of src onto dstCoords of dst and combines
// the result with the destination through rop3. Opposite signs on a
// dimension mirror the image along it. Shrinking merges pixels according
// to the state's StretchMode.
//
// Example:
//
//	// Double a 32x32 icon and flip it horizontally.
//	err := dib.StretchBlt(s, dib.Coords{X: 63, Y: 0, Width: -64, Height: 64},
//		icon, dib.Coords{Width: 32, Height: 32}, dib.SrcCopy, st, nil)
func StretchBlt(dst *Surface, dstCoords Coords, src *Surface, srcCoords Coords, rop3 Rop3, st *DrawState, clipList []image.Rectangle) error {
	st = st.orDefault()
	if !rop3.UsesSource() {
		return PatBlt(dst, dstCoords.Bounds(), rop3, st, clipList)
	}
	if src == nil {
		return fmt.Errorf("%w: nil source", ErrInvalidSource)
	}
	if dst.format == FormatNull || src.format == FormatNull {
		return nil
	}
	if dstCoords.Width == 0 || dstCoords.Height == 0 || srcCoords.Width == 0 || srcCoords.Height == 0 {
		return nil
	}

	// A one pixel wide destination samples the first source column only.
	if abs(dstCoords.Width) == 1 && abs(srcCoords.Width) > 1 {
		srcCoords.Width -= sign(srcCoords.Width)
	}
	if abs(dstCoords.Height) == 1 && abs(srcCoords.Height) > 1 {
		srcCoords.Height -= sign(srcCoords.Height)
	}

	if dstCoords.Width == srcCoords.Width && dstCoords.Height == srcCoords.Height {
		return BitBlt(dst, dstCoords.Bounds(), src, srcCoords.Bounds().Min, rop3, st, clipList)
	}

	dstVis := dst.Bounds().Intersect(dstCoords.Bounds())
	if clipList != nil {
		dstVis = dstVis.Intersect(clip.Bounds(clipList))
	}
	srcVis := src.Bounds().Intersect(srcCoords.Bounds())
	if dstVis.Empty() || srcVis.Empty() {
		return nil
	}

	vp, vspan, ok := raster.Calc1DStretch(dstCoords.Y, dstCoords.Height, dstVis.Min.Y, dstVis.Max.Y,
		srcCoords.Y, srcCoords.Height, srcVis.Min.Y, srcVis.Max.Y)
	if !ok {
		return nil
	}
	hp, hspan, ok := raster.Calc1DStretch(dstCoords.X, dstCoords.Width, dstVis.Min.X, dstVis.Max.X,
		srcCoords.X, srcCoords.Width, srcVis.Min.X, srcVis.Max.X)
	if !ok {
		return nil
	}
	produced := Coords{
		X: hspan.DstStart, Y: vspan.DstStart,
		Width: hspan.DstEnd - hspan.DstStart, Height: vspan.DstEnd - vspan.DstStart,
	}
	dstVis = dstVis.Intersect(produced.Bounds())
	if dstVis.Empty() {
		return nil
	}

	mode := st.stretchMode()
	Logger().Debug("dib: stretch",
		"dst", dstCoords, "src", srcCoords, "visible", dstVis,
		"hstretch", hspan.Stretch, "vstretch", vspan.Stretch, "mode", mode)

	tmp, err := dst.newScratch(dst.format, dstVis.Dx(), dstVis.Dy(), dst)
	if err != nil {
		return err
	}
	defer tmp.release()

	if mode == StretchHalftone {
		halftone(tmp, dstVis.Min, dstCoords, src, srcCoords, srcVis)
		return BitBlt(dst, dstVis, tmp, image.Point{}, rop3, st, clipList)
	}

	source, srcOff := src, image.Point{}
	if !src.sameLayout(dst) {
		conv, err := dst.newScratch(dst.format, srcVis.Dx(), srcVis.Dy(), dst)
		if err != nil {
			return err
		}
		defer conv.release()
		dst.driver.ConvertTo(conv, src, srcVis)
		source, srcOff = conv, srcVis.Min
	}

	dstStart := image.Pt(hspan.DstStart, vspan.DstStart).Sub(dstVis.Min)
	srcStart := image.Pt(hspan.SrcStart, vspan.SrcStart).Sub(srcOff)
	resample(tmp, dstStart, source, srcStart, &hp, &vp, hspan.Stretch, vspan.Stretch, mode)
	return BitBlt(dst, dstVis, tmp, image.Point{}, rop3, st, clipList)
}

// resample walks the destination rows of a stretch. Growing vertically
// renders each source row once and duplicates it; shrinking merges several
// source rows into one destination row.
func resample(dst *Surface, dstStart image.Point, src *Surface, srcStart image.Point,
	hp, vp *StretchParams, hstretch, vstretch bool, mode StretchMode,
) {
	d := dst.driver
	row := d.ShrinkRow
	if hstretch {
		row = d.StretchRow
	}
	err := vp.ErrStart

	if vstretch {
		if hstretch {
			mode = StretchDeleteScans
		}
		needRow := true
		for range vp.Length {
			if needRow {
				row(dst, dstStart, src, srcStart, hp, mode, false)
				needRow = false
			} else {
				last := image.Rect(0, dstStart.Y-vp.DstInc, dst.width, dstStart.Y-vp.DstInc+1)
				this := last.Add(image.Pt(0, vp.DstInc))
				d.CopyRect(dst, this, dst, last.Min, R2CopyPen, clip.OverlapNone)
			}
			if err > 0 {
				srcStart.Y += vp.SrcInc
				needRow = true
				err += vp.ErrAdd1
			} else {
				err += vp.ErrAdd2
			}
			dstStart.Y += vp.DstInc
		}
		return
	}

	merged := 0
	for range vp.Length {
		if mode != StretchDeleteScans || merged == 0 {
			row(dst, dstStart, src, srcStart, hp, mode, merged != 0)
		}
		merged++
		if err > 0 {
			dstStart.Y += vp.DstInc
			merged = 0
			err += vp.ErrAdd1
		} else {
			err += vp.ErrAdd2
		}
		srcStart.Y += vp.SrcInc
	}
}

// halftone resamples bilinearly. tmp holds the destination pixels from
// origin onward.
func halftone(tmp *Surface, origin image.Point, dstCoords Coords, src *Surface, srcCoords Coords, srcVis image.Rectangle) {
	db, sb := dstCoords.Bounds(), srcCoords.Bounds()
	kx := float64(db.Dx()) / float64(sb.Dx())
	ky := float64(db.Dy()) / float64(sb.Dy())

	// s2d maps source pixel space onto tmp.
	m := f64.Aff3{
		kx, 0, float64(db.Min.X-origin.X) - kx*float64(sb.Min.X),
		0, ky, float64(db.Min.Y-origin.Y) - ky*float64(sb.Min.Y),
	}
	if (dstCoords.Width < 0) != (srcCoords.Width < 0) {
		m[0], m[2] = -kx, float64(db.Max.X-origin.X)+kx*float64(sb.Min.X)
	}
	if (dstCoords.Height < 0) != (srcCoords.Height < 0) {
		m[4], m[5] = -ky, float64(db.Max.Y-origin.Y)+ky*float64(sb.Min.Y)
	}
	draw.BiLinear.Transform(tmp, m, src, srcVis, draw.Src, nil)
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
