package dib

import (
	"encoding/binary"
	"image"

	"github.com/gogpu/dib/internal/blend"
	icolor "github.com/gogpu/dib/internal/color"
)

// format32 is the codec for 32-bit pixels with arbitrary bit fields.
type format32 struct{}

func (format32) bpp() int { return 32 }

func (format32) pixel(row []byte, x int) uint32 {
	return binary.LittleEndian.Uint32(row[x*4:])
}

func (format32) setPixel(row []byte, x int, v uint32) {
	binary.LittleEndian.PutUint32(row[x*4:], v)
}

func (format32) toRGB(s *Surface, p uint32) icolor.RGB {
	r, g, b := s.ch.Unpack(p)
	return icolor.RGB{R: r, G: g, B: b}
}

func (format32) fromRGB(s *Surface, c icolor.RGB, _ *icolor.LookupCache) uint32 {
	return s.ch.Pack(c.R, c.G, c.B)
}

// format8888 is the codec for 32-bit 0x00RRGGBB pixels. The top byte is
// carried through copies and alpha blends but never produced by color
// mapping.
type format8888 struct{ format32 }

func (format8888) toRGB(_ *Surface, p uint32) icolor.RGB {
	return icolor.RGB{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)} //nolint:gosec // byte fields
}

func (format8888) fromRGB(_ *Surface, c icolor.RGB, _ *icolor.LookupCache) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// driver8888 works on whole words where the generic loops would unpack and
// repack channels.
type driver8888 struct {
	byteDriver
}

func (d *driver8888) BlendRect(dst *Surface, r image.Rectangle, src *Surface, origin image.Point, f BlendFunc) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		drow := dst.row(y)[r.Min.X*4:]
		srow := src.row(origin.Y + y - r.Min.Y)[origin.X*4:]
		for i := range r.Dx() {
			dp := binary.LittleEndian.Uint32(drow[i*4:])
			sp := binary.LittleEndian.Uint32(srow[i*4:])
			binary.LittleEndian.PutUint32(drow[i*4:], blend.ARGB(dp, sp, f))
		}
	}
}

func (d *driver8888) GradientRect(s *Surface, r image.Rectangle, v [2]Vertex, mode GradientMode) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.row(y)
		for x := r.Min.X; x < r.Max.X; x++ {
			c, a := gradientAt(v, mode, x, y)
			p := uint32(a)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
			binary.LittleEndian.PutUint32(row[x*4:], p)
		}
	}
}
