package rop

import "testing"

// reference evaluates each ROP2 by its boolean definition on single bits.
func reference(r Rop2, p, d uint32) uint32 {
	switch r {
	case Black:
		return 0
	case NotMergePen:
		return ^(d | p)
	case MaskNotPen:
		return d &^ p
	case NotCopyPen:
		return ^p
	case MaskPenNot:
		return p &^ d
	case Not:
		return ^d
	case XorPen:
		return d ^ p
	case NotMaskPen:
		return ^(d & p)
	case MaskPen:
		return d & p
	case NotXorPen:
		return ^(d ^ p)
	case Nop:
		return d
	case MergeNotPen:
		return d | ^p
	case CopyPen:
		return p
	case MergePenNot:
		return p | ^d
	case MergePen:
		return d | p
	case White:
		return ^uint32(0)
	}
	return d
}

func TestMasksMatchBooleanDefinitions(t *testing.T) {
	for r := Black; r <= White; r++ {
		for _, p := range []uint32{0, 1} {
			for _, d := range []uint32{0, 1} {
				got := Apply(r, p, d) & 1
				want := reference(r, p, d) & 1
				if got != want {
					t.Errorf("rop %d p=%d d=%d: got %d, want %d", r, p, d, got, want)
				}
			}
		}
	}
}

func TestMasksOnWords(t *testing.T) {
	const p, d = 0x00ff00f0, 0x0f0f0f0f
	for r := Black; r <= White; r++ {
		if got, want := Apply(r, p, d), reference(r, p, d); got != want {
			t.Errorf("rop %d: got %#x, want %#x", r, got, want)
		}
	}
}

func TestCodesForInvalidIsNop(t *testing.T) {
	for _, r := range []Rop2{0, 17, 255} {
		if got := Apply(r, 0x12345678, 0xcafe); got != 0xcafe {
			t.Errorf("rop %d: got %#x, want destination unchanged", r, got)
		}
	}
}

func TestNeedsAnd(t *testing.T) {
	for r := Black; r <= White; r++ {
		want := r != Black && r != NotCopyPen && r != CopyPen && r != White
		if got := NeedsAnd(r); got != want {
			t.Errorf("NeedsAnd(%d) = %v, want %v", r, got, want)
		}
	}
}

func TestApplyBytes(t *testing.T) {
	dst := []byte{0xf0, 0x0f, 0xaa}
	ApplyBytes(XorPen, dst, []byte{0xff, 0xff, 0x0f})
	if dst[0] != 0x0f || dst[1] != 0xf0 || dst[2] != 0xa5 {
		t.Errorf("XorPen = %x", dst)
	}
	ApplyBytes(CopyPen, dst, []byte{1, 2, 3})
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Errorf("CopyPen = %x", dst)
	}
}

func TestRop3Classification(t *testing.T) {
	tests := []struct {
		rop              Rop3
		pat, src, dst    bool
		patRop2, srcRop2 Rop2
	}{
		{SrcCopy, false, true, false, 0, CopyPen},
		{PatCopy, true, false, false, CopyPen, 0},
		{PatInvert, true, false, true, XorPen, 0},
		{DstInvert, false, false, true, Not, Not},
		{Blackness, false, false, false, Black, Black},
		{Whiteness, false, false, false, White, White},
		{SrcAnd, false, true, true, 0, MaskPen},
		{SrcPaint, false, true, true, 0, MergePen},
		{SrcInvert, false, true, true, 0, XorPen},
		{NotSrcCopy, false, true, false, 0, NotCopyPen},
		{MergeCopy, true, true, false, 0, 0},
	}
	for _, tt := range tests {
		if tt.rop.UsesPattern() != tt.pat || tt.rop.UsesSource() != tt.src || tt.rop.UsesDest() != tt.dst {
			t.Errorf("rop3 %#x: uses (P,S,D) = (%v,%v,%v), want (%v,%v,%v)", uint8(tt.rop),
				tt.rop.UsesPattern(), tt.rop.UsesSource(), tt.rop.UsesDest(), tt.pat, tt.src, tt.dst)
		}
		if tt.patRop2 != 0 && tt.rop.PatternRop2() != tt.patRop2 {
			t.Errorf("rop3 %#x: PatternRop2 = %d, want %d", uint8(tt.rop), tt.rop.PatternRop2(), tt.patRop2)
		}
		if tt.srcRop2 != 0 && tt.rop.SourceRop2() != tt.srcRop2 {
			t.Errorf("rop3 %#x: SourceRop2 = %d, want %d", uint8(tt.rop), tt.rop.SourceRop2(), tt.srcRop2)
		}
	}
}

func TestTernary(t *testing.T) {
	const p, s, d = 0xF0, 0xCC, 0xAA
	for r := range 256 {
		if got := Ternary(Rop3(r), p, s, d) & 0xff; got != uint32(r) {
			t.Errorf("Ternary(%#x) on canonical operands = %#x", r, got)
		}
	}
}

func TestTernaryAgreesWithReducedRop2(t *testing.T) {
	const p, s, d = 0x00ff00f0, 0x0f0f3c3c, 0x12345678
	for r := range 256 {
		r3 := Rop3(r)
		if !r3.UsesSource() {
			if got, want := Ternary(r3, p, s, d), Apply(r3.PatternRop2(), p, d); got != want {
				t.Errorf("rop3 %#x: pattern reduction %#x != %#x", r, want, got)
			}
		}
		if !r3.UsesPattern() {
			if got, want := Ternary(r3, p, s, d), Apply(r3.SourceRop2(), s, d); got != want {
				t.Errorf("rop3 %#x: source reduction %#x != %#x", r, want, got)
			}
		}
	}
}
