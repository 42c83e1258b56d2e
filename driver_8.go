package dib

import icolor "github.com/gogpu/dib/internal/color"

// format8 is the codec for 8-bit indexed pixels.
type format8 struct{}

func (format8) bpp() int { return 8 }

func (format8) pixel(row []byte, x int) uint32 { return uint32(row[x]) }

func (format8) setPixel(row []byte, x int, v uint32) { row[x] = byte(v) }

func (format8) toRGB(s *Surface, p uint32) icolor.RGB { return indexRGB(s, p) }

func (format8) fromRGB(s *Surface, c icolor.RGB, lc *icolor.LookupCache) uint32 {
	return indexOf(s, c, lc)
}
