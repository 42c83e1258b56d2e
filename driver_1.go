package dib

import (
	"image"

	"github.com/gogpu/dib/internal/bitfield"
	icolor "github.com/gogpu/dib/internal/color"
)

// format1 is the codec for 1-bit indexed pixels.
type format1 struct{}

func (format1) bpp() int { return 1 }

func (format1) pixel(row []byte, x int) uint32 {
	return uint32(bitfield.GetBit(row, x))
}

func (format1) setPixel(row []byte, x int, v uint32) {
	bitfield.SetBit(row, x, uint8(v&1))
}

func (format1) toRGB(s *Surface, p uint32) icolor.RGB { return indexRGB(s, p) }

func (format1) fromRGB(s *Surface, c icolor.RGB, lc *icolor.LookupCache) uint32 {
	return indexOf(s, c, lc)
}

// driver1 draws 1-bit surfaces. Anti-aliasing is meaningless at this depth:
// glyph pixels are either fully covered or left alone.
type driver1 struct {
	packedDriver
}

func (d *driver1) DrawGlyph(s *Surface, r image.Rectangle, glyph *Surface, origin image.Point, text uint32, _ *IntensityRanges) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.row(y)
		grow := glyph.row(origin.Y + y - r.Min.Y)
		gx := origin.X
		for x := r.Min.X; x < r.Max.X; x++ {
			if grow[gx] >= 16 {
				bitfield.SetBit(row, x, uint8(text&1))
			}
			gx++
		}
	}
}

// indexRGB looks a pixel up in the surface's color table. Indices past the
// end of the table read as black.
func indexRGB(s *Surface, p uint32) icolor.RGB {
	if int(p) < len(s.palette) {
		return s.palette[p]
	}
	return icolor.RGB{}
}

// indexOf finds the table index for c. A one-entry table is always matched
// exactly, since snapping would break its equality semantics.
func indexOf(s *Surface, c icolor.RGB, lc *icolor.LookupCache) uint32 {
	if lc != nil && len(s.palette) != 1 {
		return uint32(lc.Lookup(c)) //nolint:gosec // palette index
	}
	return uint32(s.palette.Nearest(c)) //nolint:gosec // palette index
}
