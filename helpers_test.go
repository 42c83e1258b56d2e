package dib

import (
	"image"
	"testing"
)

var ptZero = image.Point{}

// allFormats lists every drawable format.
var allFormats = []Format{
	Format1, Format4, Format8,
	Format555, Format565, Format16,
	Format24, Format32, Format8888,
}

// mustNew creates a surface or fails the test.
func mustNew(t testing.TB, f Format, w, h int, opts ...SurfaceOption) *Surface {
	t.Helper()
	s, err := New(f, w, h, opts...)
	if err != nil {
		t.Fatalf("New(%v, %d, %d): %v", f, w, h, err)
	}
	return s
}

// fillSolid paints the whole surface with c.
func fillSolid(t testing.TB, s *Surface, c ColorRef) {
	t.Helper()
	st := NewDrawState()
	st.Brush = SolidBrush(c)
	if err := FillRects(s, []image.Rectangle{s.Bounds()}, st, nil); err != nil {
		t.Fatalf("FillRects: %v", err)
	}
}

// countColor returns how many pixels of r read back as c.
func countColor(s *Surface, r image.Rectangle, c ColorRef) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if s.GetPixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

// assertRect checks that every pixel inside r is in and every other pixel
// is out.
func assertRect(t *testing.T, s *Surface, r image.Rectangle, in, out ColorRef) {
	t.Helper()
	for y := range s.Height() {
		for x := range s.Width() {
			want := out
			if image.Pt(x, y).In(r) {
				want = in
			}
			if got := s.GetPixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#06x, want %#06x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

var (
	black = RGB(0, 0, 0)
	white = RGB(0xff, 0xff, 0xff)
	red   = RGB(0xff, 0, 0)
	blue  = RGB(0, 0, 0xff)
)
