package dib

import "github.com/gogpu/dib/internal/rop"

// Rop2 is a binary raster operation combining a pen P with the destination D.
type Rop2 = rop.Rop2

// Binary raster operations.
const (
	R2Black       = rop.Black       // 0
	R2NotMergePen = rop.NotMergePen // ~(D | P)
	R2MaskNotPen  = rop.MaskNotPen  // D & ~P
	R2NotCopyPen  = rop.NotCopyPen  // ~P
	R2MaskPenNot  = rop.MaskPenNot  // P & ~D
	R2Not         = rop.Not         // ~D
	R2XorPen      = rop.XorPen      // D ^ P
	R2NotMaskPen  = rop.NotMaskPen  // ~(D & P)
	R2MaskPen     = rop.MaskPen     // D & P
	R2NotXorPen   = rop.NotXorPen   // ~(D ^ P)
	R2Nop         = rop.Nop         // D
	R2MergeNotPen = rop.MergeNotPen // D | ~P
	R2CopyPen     = rop.CopyPen     // P
	R2MergePenNot = rop.MergePenNot // P | ~D
	R2MergePen    = rop.MergePen    // D | P
	R2White       = rop.White       // 1
)

// Rop3 is a ternary raster operation combining pattern, source and
// destination. Its value is the truth table of the boolean function.
type Rop3 = rop.Rop3

// Named ternary raster operations.
const (
	Blackness   = rop.Blackness
	NotSrcErase = rop.NotSrcErase
	NotSrcCopy  = rop.NotSrcCopy
	SrcErase    = rop.SrcErase
	DstInvert   = rop.DstInvert
	PatInvert   = rop.PatInvert
	SrcInvert   = rop.SrcInvert
	SrcAnd      = rop.SrcAnd
	MergePaint  = rop.MergePaint
	MergeCopy   = rop.MergeCopy
	SrcCopy     = rop.SrcCopy
	SrcPaint    = rop.SrcPaint
	PatCopy     = rop.PatCopy
	PatPaint    = rop.PatPaint
	Whiteness   = rop.Whiteness
)

// RopCodes are the four words from which a Rop2 builds its masks:
// and = (P & A1) ^ A2, xor = (P & X1) ^ X2.
type RopCodes = rop.Codes

// RopMask is the AND/XOR pair a Rop2 reduces to for one pen value. A pixel
// D becomes (D & And) ^ Xor.
type RopMask struct {
	And, Xor uint32
}

// RopCodesFor returns the codes of r. Invalid operations behave as R2Nop.
func RopCodesFor(r Rop2) RopCodes {
	return rop.CodesFor(r)
}

// RopMasks computes the mask pair applying r with pen pixel p.
func RopMasks(r Rop2, p uint32) RopMask {
	and, xor := rop.Masks(r, p)
	return RopMask{And: and, Xor: xor}
}

// RopNeedsAndMask reports whether r reads the destination.
func RopNeedsAndMask(r Rop2) bool {
	return rop.NeedsAnd(r)
}
