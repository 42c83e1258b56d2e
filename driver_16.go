package dib

import (
	"encoding/binary"
	"image"

	icolor "github.com/gogpu/dib/internal/color"
)

// format16 is the codec for 16-bit pixels. The channel layout comes from
// the surface's bit-field masks, so one codec serves 5-5-5, 5-6-5 and any
// other 16-bit arrangement.
type format16 struct{}

func (format16) bpp() int { return 16 }

func (format16) pixel(row []byte, x int) uint32 {
	return uint32(binary.LittleEndian.Uint16(row[x*2:]))
}

func (format16) setPixel(row []byte, x int, v uint32) {
	binary.LittleEndian.PutUint16(row[x*2:], uint16(v)) //nolint:gosec // low half is the pixel
}

func (format16) toRGB(s *Surface, p uint32) icolor.RGB {
	r, g, b := s.ch.Unpack(p)
	return icolor.RGB{R: r, G: g, B: b}
}

func (format16) fromRGB(s *Surface, c icolor.RGB, _ *icolor.LookupCache) uint32 {
	return s.ch.Pack(c.R, c.G, c.B)
}

// driver565 adds ordered dithering to 5-6-5 gradients, which band visibly
// when truncated.
type driver565 struct {
	byteDriver
}

func (d *driver565) GradientRect(s *Surface, r image.Rectangle, v [2]Vertex, mode GradientMode) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.row(y)
		for x := r.Min.X; x < r.Max.X; x++ {
			pos, n := gradientPos(v, mode, x, y)
			t := icolor.DitherThreshold(x, y)
			red := clampField(lerp16(v[0].R, v[1].R, pos, n)/128+t, 31)
			green := clampField(lerp16(v[0].G, v[1].G, pos, n)/64+t, 63)
			blue := clampField(lerp16(v[0].B, v[1].B, pos, n)/128+t, 31)
			binary.LittleEndian.PutUint16(row[x*2:], uint16(red<<11|green<<5|blue)) //nolint:gosec // fields clamped
		}
	}
}

// clampField quantizes a dithered value with four fractional bits to
// [0, hi].
func clampField(v, hi int) int {
	return min(hi, max(0, v/16))
}
