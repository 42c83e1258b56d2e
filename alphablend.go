package dib

import (
	"fmt"
	"image"

	"github.com/gogpu/dib/internal/clip"
)

// AlphaBlend composites srcRect of a 32-bit src onto dstRect of dst. The
// source is resampled when the rectangles differ in size. With SrcAlpha
// set in f.AlphaFormat the source pixels are premultiplied and their top
// byte is the per-pixel alpha; f.ConstantAlpha scales the whole source.
//
// Example:
//
//	f := dib.BlendFunc{ConstantAlpha: 0xff, AlphaFormat: dib.SrcAlpha}
//	err := dib.AlphaBlend(s, image.Rect(0, 0, 32, 32), icon, icon.Bounds(), f, nil)
func AlphaBlend(dst *Surface, dstRect image.Rectangle, src *Surface, srcRect image.Rectangle, f BlendFunc, clipList []image.Rectangle) error {
	if src == nil || (src.format != Format8888 && src.format != Format32) {
		Logger().Warn("dib: alpha blend source is not 32-bit")
		return fmt.Errorf("%w: alpha blend needs a 32-bit source", ErrInvalidSource)
	}
	dstRect, srcRect = dstRect.Canon(), srcRect.Canon()
	if srcRect.Empty() || !srcRect.In(src.Bounds()) {
		return fmt.Errorf("%w: source rectangle %v outside %v", ErrInvalidSource, srcRect, src.Bounds())
	}
	if dst.format == FormatNull {
		return nil
	}
	vis := clip.Rects(dst.Bounds(), dstRect, clipList)
	if len(vis) == 0 {
		return nil
	}

	source, origin := src, srcRect.Min
	if src.format != Format8888 || dstRect.Size() != srcRect.Size() {
		tmp, err := dst.newScratch(Format8888, dstRect.Dx(), dstRect.Dy(), nil)
		if err != nil {
			return err
		}
		defer tmp.release()
		if dstRect.Size() == srcRect.Size() {
			tmp.driver.ConvertTo(tmp, src, srcRect)
		} else {
			st := &DrawState{StretchMode: StretchDeleteScans}
			to := Coords{Width: dstRect.Dx(), Height: dstRect.Dy()}
			from := Coords{X: srcRect.Min.X, Y: srcRect.Min.Y, Width: srcRect.Dx(), Height: srcRect.Dy()}
			if err := StretchBlt(tmp, to, src, from, SrcCopy, st, nil); err != nil {
				return err
			}
		}
		source, origin = tmp, image.Point{}
	}

	for _, r := range vis {
		dst.driver.BlendRect(dst, r, source, origin.Add(r.Min.Sub(dstRect.Min)), f)
	}
	return nil
}
