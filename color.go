package dib

import (
	"image/color"

	icolor "github.com/gogpu/dib/internal/color"
)

// ColorRef is a logical color laid out 0x00BBGGRR. The flag values in the
// top byte select special meanings; see DIBIndex.
type ColorRef uint32

// dibIndexFlag marks a ColorRef that names a color table index directly.
const dibIndexFlag = 0x10ff0000

// RGB packs red, green and blue into a ColorRef.
func RGB(r, g, b uint8) ColorRef {
	return ColorRef(r) | ColorRef(g)<<8 | ColorRef(b)<<16
}

// DIBIndex returns a ColorRef that resolves to color table index i on an
// indexed surface instead of being matched by value.
func DIBIndex(i uint16) ColorRef {
	return dibIndexFlag | ColorRef(i)
}

// R returns the red component.
func (c ColorRef) R() uint8 { return uint8(c) } //nolint:gosec // low byte

// G returns the green component.
func (c ColorRef) G() uint8 { return uint8(c >> 8) } //nolint:gosec // second byte

// B returns the blue component.
func (c ColorRef) B() uint8 { return uint8(c >> 16) } //nolint:gosec // third byte

// IsDIBIndex reports whether c was made by DIBIndex.
func (c ColorRef) IsDIBIndex() bool { return c&0xffff0000 == dibIndexFlag }

// Index returns the table index carried by a DIBIndex color.
func (c ColorRef) Index() int { return int(c & 0xffff) }

// RGBA implements color.Color. ColorRefs are always opaque.
func (c ColorRef) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	g = uint32(c.G())
	b = uint32(c.B())
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

func (c ColorRef) rgb() icolor.RGB {
	return icolor.RGB{R: c.R(), G: c.G(), B: c.B()}
}

func colorRefOf(c icolor.RGB) ColorRef {
	return RGB(c.R, c.G, c.B)
}

// ColorRefModel converts any color.Color to a ColorRef, dropping alpha.
var ColorRefModel = color.ModelFunc(func(c color.Color) color.Color {
	if cr, ok := c.(ColorRef); ok {
		return cr
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)) //nolint:gosec // 16-bit channels
})

func paletteOf(table []ColorRef) icolor.Palette {
	if table == nil {
		return nil
	}
	p := make(icolor.Palette, len(table))
	for i, c := range table {
		p[i] = c.rgb()
	}
	return p
}
