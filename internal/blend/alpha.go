package blend

// SrcAlpha marks a source whose pixels carry premultiplied per-pixel alpha
// in their top byte.
const SrcAlpha = 0x01

// Func describes an alpha blend: a constant alpha applied to the whole
// source, optionally combined with the source's own per-pixel alpha.
type Func struct {
	ConstantAlpha byte
	AlphaFormat   byte
}

// PerPixel reports whether the source alpha channel is used.
func (f Func) PerPixel() bool { return f.AlphaFormat&SrcAlpha != 0 }

// Color mixes one channel: (src*alpha + dst*(255-alpha) + 127) / 255.
func Color(dst, src, alpha byte) byte {
	return byte(div255Round(uint32(src)*uint32(alpha) + uint32(dst)*uint32(inv255(alpha))))
}

// over composites a premultiplied channel onto dst with coverage alpha.
func over(dst, src, alpha byte) byte {
	return clamp255(uint32(src) + div255Round(uint32(dst)*uint32(inv255(alpha))))
}

// RGB blends the 0xAARRGGBB source pixel src onto an opaque destination
// given as separate channels, returning the result channels.
func RGB(dr, dg, db byte, src uint32, f Func) (r, g, b byte) {
	sb, sg, sr, sa := byte(src), byte(src>>8), byte(src>>16), byte(src>>24)
	if f.PerPixel() {
		a := f.ConstantAlpha
		sr, sg, sb = MulDiv255(sr, a), MulDiv255(sg, a), MulDiv255(sb, a)
		sa = MulDiv255(sa, a)
		return over(dr, sr, sa), over(dg, sg, sa), over(db, sb, sa)
	}
	a := f.ConstantAlpha
	return Color(dr, sr, a), Color(dg, sg, a), Color(db, sb, a)
}

// ARGB blends src onto dst where both are 0xAARRGGBB and the destination
// alpha channel is kept up to date.
func ARGB(dst, src uint32, f Func) uint32 {
	if !f.PerPixel() {
		a := f.ConstantAlpha
		return uint32(Color(byte(dst), byte(src), a)) |
			uint32(Color(byte(dst>>8), byte(src>>8), a))<<8 |
			uint32(Color(byte(dst>>16), byte(src>>16), a))<<16 |
			uint32(Color(byte(dst>>24), byte(src>>24), a))<<24
	}
	sb, sg, sr, sa := byte(src), byte(src>>8), byte(src>>16), byte(src>>24)
	if a := f.ConstantAlpha; a != 255 {
		sr, sg, sb = MulDiv255(sr, a), MulDiv255(sg, a), MulDiv255(sb, a)
		sa = MulDiv255(sa, a)
	}
	return uint32(over(byte(dst), sb, sa)) |
		uint32(over(byte(dst>>8), sg, sa))<<8 |
		uint32(over(byte(dst>>16), sr, sa))<<16 |
		uint32(over(byte(dst>>24), sa, sa))<<24
}
