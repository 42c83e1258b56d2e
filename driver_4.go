package dib

import (
	"github.com/gogpu/dib/internal/bitfield"
	icolor "github.com/gogpu/dib/internal/color"
)

// format4 is the codec for 4-bit indexed pixels.
type format4 struct{}

func (format4) bpp() int { return 4 }

func (format4) pixel(row []byte, x int) uint32 {
	return uint32(bitfield.GetNibble(row, x))
}

func (format4) setPixel(row []byte, x int, v uint32) {
	bitfield.SetNibble(row, x, uint8(v&0x0f))
}

func (format4) toRGB(s *Surface, p uint32) icolor.RGB { return indexRGB(s, p) }

func (format4) fromRGB(s *Surface, c icolor.RGB, lc *icolor.LookupCache) uint32 {
	return indexOf(s, c, lc)
}
