// Package rop implements raster-operation algebra.
//
// A binary raster operation (ROP2) combines a pen value P with the
// destination D. Every ROP2 can be written as
//
//	D' = (D & AND) ^ XOR
//
// where AND and XOR are derived once from P, so inner loops never branch on
// the operation. A ternary operation (ROP3) additionally involves a source
// S and is identified by the byte of its truth table.
package rop

// Rop2 is a binary raster operation code in 1..16.
type Rop2 uint8

// Binary raster operations, numbered as the classic R2_* codes.
const (
	Black       Rop2 = 1  // 0
	NotMergePen Rop2 = 2  // ~(D | P)
	MaskNotPen  Rop2 = 3  // D & ~P
	NotCopyPen  Rop2 = 4  // ~P
	MaskPenNot  Rop2 = 5  // P & ~D
	Not         Rop2 = 6  // ~D
	XorPen      Rop2 = 7  // D ^ P
	NotMaskPen  Rop2 = 8  // ~(D & P)
	MaskPen     Rop2 = 9  // D & P
	NotXorPen   Rop2 = 10 // ~(D ^ P)
	Nop         Rop2 = 11 // D
	MergeNotPen Rop2 = 12 // D | ~P
	CopyPen     Rop2 = 13 // P
	MergePenNot Rop2 = 14 // P | ~D
	MergePen    Rop2 = 15 // D | P
	White       Rop2 = 16 // 1
)

// Valid reports whether r is one of the sixteen defined operations.
func (r Rop2) Valid() bool { return r >= Black && r <= White }

// Codes holds the four constants that turn a pen value into AND/XOR masks:
//
//	AND = (P & A1) ^ A2
//	XOR = (P & X1) ^ X2
type Codes struct {
	A1, A2, X1, X2 uint32
}

type pair struct{ a, b uint32 }

var (
	zero = pair{0, 0}
	one  = pair{0, ^uint32(0)}
	pen  = pair{^uint32(0), 0}
	npen = pair{^uint32(0), ^uint32(0)}
)

var andTable = [16]pair{zero, npen, npen, zero, pen, one, one, pen, pen, one, one, pen, zero, npen, npen, zero}
var xorTable = [16]pair{zero, npen, zero, npen, pen, one, pen, one, zero, npen, zero, npen, pen, one, pen, one}

// CodesFor returns the mask constants of r. Invalid codes behave as Nop.
func CodesFor(r Rop2) Codes {
	if !r.Valid() {
		r = Nop
	}
	a, x := andTable[r-1], xorTable[r-1]
	return Codes{A1: a.a, A2: a.b, X1: x.a, X2: x.b}
}

// Masks computes the AND/XOR pair applying r with pen value p.
func Masks(r Rop2, p uint32) (and, xor uint32) {
	c := CodesFor(r)
	return (p & c.A1) ^ c.A2, (p & c.X1) ^ c.X2
}

// Apply evaluates r directly on a pen and destination word.
func Apply(r Rop2, p, d uint32) uint32 {
	and, xor := Masks(r, p)
	return (d & and) ^ xor
}

// NeedsAnd reports whether r reads the destination. Operations that do not
// (Black, NotCopyPen, CopyPen, White) produce an all-zero AND mask.
func NeedsAnd(r Rop2) bool {
	c := CodesFor(r)
	return c.A1 != 0 || c.A2 != 0
}

// ApplyBytes applies r to dst using the byte-wise pen src, for every byte.
// dst and src must have equal length and must not partially overlap.
func ApplyBytes(r Rop2, dst, src []byte) {
	c := CodesFor(r)
	if c.A1 == 0 && c.X1 != 0 && c.A2 == 0 && c.X2 == 0 {
		copy(dst, src)
		return
	}
	a1, a2 := byte(c.A1), byte(c.A2)
	x1, x2 := byte(c.X1), byte(c.X2)
	for i := range dst {
		p := src[i]
		dst[i] = (dst[i] & ((p & a1) ^ a2)) ^ ((p & x1) ^ x2)
	}
}
