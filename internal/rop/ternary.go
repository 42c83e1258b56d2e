package rop

// Rop3 is a ternary raster operation identified by its truth table byte.
// Bit i of the byte is the result for P = i>>2&1, S = i>>1&1, D = i&1,
// which makes the pattern 0xF0, the source 0xCC and the destination 0xAA.
type Rop3 uint8

// Named ternary operations.
const (
	Blackness   Rop3 = 0x00
	NotSrcErase Rop3 = 0x11 // ~(S | D)
	NotSrcCopy  Rop3 = 0x33 // ~S
	SrcErase    Rop3 = 0x44 // S & ~D
	DstInvert   Rop3 = 0x55 // ~D
	PatInvert   Rop3 = 0x5A // P ^ D
	SrcInvert   Rop3 = 0x66 // S ^ D
	SrcAnd      Rop3 = 0x88 // S & D
	MergePaint  Rop3 = 0xBB // ~S | D
	MergeCopy   Rop3 = 0xC0 // P & S
	SrcCopy     Rop3 = 0xCC // S
	SrcPaint    Rop3 = 0xEE // S | D
	PatCopy     Rop3 = 0xF0 // P
	PatPaint    Rop3 = 0xFB // P | ~S | D
	Whiteness   Rop3 = 0xFF
)

// UsesPattern reports whether the result depends on the pattern.
func (r Rop3) UsesPattern() bool { return ((r>>4)^r)&0x0f != 0 }

// UsesSource reports whether the result depends on the source.
func (r Rop3) UsesSource() bool { return ((r>>2)^r)&0x33 != 0 }

// UsesDest reports whether the result depends on the destination.
func (r Rop3) UsesDest() bool { return ((r>>1)^r)&0x55 != 0 }

// PatternRop2 reduces a ROP3 that ignores the source to the ROP2 that
// applies the pattern as the pen.
func (r Rop3) PatternRop2() Rop2 {
	return Rop2(((r>>2)&0x0c)|(r&0x03)) + 1
}

// SourceRop2 reduces a ROP3 that ignores the pattern to the ROP2 that
// applies the source as the pen.
func (r Rop3) SourceRop2() Rop2 {
	return Rop2(r&0x0f) + 1
}

// Ternary evaluates r bitwise over pattern, source and destination words.
func Ternary(r Rop3, p, s, d uint32) uint32 {
	var out uint32
	for i := range 8 {
		if r&(1<<uint(i)) == 0 {
			continue
		}
		term := ^uint32(0)
		if i&4 != 0 {
			term &= p
		} else {
			term &^= p
		}
		if i&2 != 0 {
			term &= s
		} else {
			term &^= s
		}
		if i&1 != 0 {
			term &= d
		} else {
			term &^= d
		}
		out |= term
	}
	return out
}

// TernaryBytes evaluates r over byte slices, storing the result in dst.
// A nil pat or src behaves as all zero bits.
func TernaryBytes(r Rop3, dst, src, pat []byte) {
	for i := range dst {
		var p, s byte
		if pat != nil {
			p = pat[i]
		}
		if src != nil {
			s = src[i]
		}
		dst[i] = byte(Ternary(r, uint32(p), uint32(s), uint32(dst[i])))
	}
}
