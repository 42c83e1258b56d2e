package dib

import icolor "github.com/gogpu/dib/internal/color"

// format24 is the codec for 24-bit pixels stored blue, green, red. The
// pixel value is 0xRRGGBB.
type format24 struct{}

func (format24) bpp() int { return 24 }

func (format24) pixel(row []byte, x int) uint32 {
	p := row[x*3 : x*3+3]
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
}

func (format24) setPixel(row []byte, x int, v uint32) {
	p := row[x*3 : x*3+3]
	p[0] = byte(v)
	p[1] = byte(v >> 8)
	p[2] = byte(v >> 16)
}

func (format24) toRGB(_ *Surface, p uint32) icolor.RGB {
	return icolor.RGB{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)} //nolint:gosec // byte fields
}

func (format24) fromRGB(_ *Surface, c icolor.RGB, _ *icolor.LookupCache) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
