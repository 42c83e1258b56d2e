package dib

import (
	"errors"
	"image"
	"testing"
)

func TestFillRectsClipped(t *testing.T) {
	s := mustNew(t, Format8888, 10, 10)
	st := NewDrawState()
	st.Brush = SolidBrush(red)
	clip := []image.Rectangle{image.Rect(0, 0, 3, 3), image.Rect(6, 6, 20, 20)}
	if err := FillRects(s, []image.Rectangle{image.Rect(2, 2, 8, 8)}, st, clip); err != nil {
		t.Fatal(err)
	}
	if n := countColor(s, s.Bounds(), red); n != 1+4 {
		t.Errorf("%d pixels filled, want 5", n)
	}
	if s.GetPixel(2, 2) != red || s.GetPixel(7, 7) != red || s.GetPixel(8, 8) == red {
		t.Error("fill does not match the clip intersection")
	}
}

func TestFillRectsEmptyClip(t *testing.T) {
	s := mustNew(t, Format8, 4, 4)
	st := NewDrawState()
	if err := FillRects(s, []image.Rectangle{s.Bounds()}, st, []image.Rectangle{}); err != nil {
		t.Fatal(err)
	}
	if countColor(s, s.Bounds(), white) != 0 {
		t.Error("empty clip list let pixels through")
	}
}

func TestFillRectsCanonicalizes(t *testing.T) {
	s := mustNew(t, Format555, 6, 6)
	r := image.Rectangle{Min: image.Pt(4, 4), Max: image.Pt(1, 2)}
	if err := FillRects(s, []image.Rectangle{r}, NewDrawState(), nil); err != nil {
		t.Fatal(err)
	}
	assertRect(t, s, image.Rect(1, 2, 4, 4), white, black)
}

func TestFillRectsRop(t *testing.T) {
	s := mustNew(t, Format8888, 2, 2)
	fillSolid(t, s, RGB(0xff, 0xf0, 0x0f))
	st := NewDrawState()
	st.Brush = SolidBrush(RGB(0x0f, 0xff, 0xff))
	st.Rop2 = R2MaskPen
	if err := FillRects(s, []image.Rectangle{s.Bounds()}, st, nil); err != nil {
		t.Fatal(err)
	}
	if got := s.GetPixel(1, 1); got != RGB(0x0f, 0xf0, 0x0f) {
		t.Errorf("pixel = %#06x, want AND of brush and destination", uint32(got))
	}
}

func TestFillRectsNullBrush(t *testing.T) {
	s := mustNew(t, Format24, 3, 3)
	st := NewDrawState()
	st.Brush = nil
	if err := FillRects(s, []image.Rectangle{s.Bounds()}, st, nil); err != nil {
		t.Fatal(err)
	}
	if countColor(s, s.Bounds(), black) != 9 {
		t.Error("nil brush painted")
	}
}

func TestFillRectsMonoFixup(t *testing.T) {
	tests := []struct {
		name  string
		color ColorRef
		bk    ColorRef
		want  uint32
	}{
		{"exact black", black, white, 0},
		{"exact white", white, black, 1},
		{"other on white background", RGB(200, 200, 200), white, 0},
		{"other on black background", RGB(50, 50, 50), black, 1},
		{"equal to background", red, red, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, Format1, 1, 1)
			st := NewDrawState()
			st.Brush = SolidBrush(tt.color)
			st.BkColor = tt.bk
			if err := FillRects(s, []image.Rectangle{s.Bounds()}, st, nil); err != nil {
				t.Fatal(err)
			}
			if got := s.Driver().GetPixel(s, 0, 0); got != tt.want {
				t.Errorf("pixel = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPatBlt(t *testing.T) {
	tests := []struct {
		name string
		rop  Rop3
		want ColorRef
	}{
		{"blackness", Blackness, black},
		{"whiteness", Whiteness, white},
		{"dst invert", DstInvert, RGB(0xff, 0xff, 0)},
		{"pat copy", PatCopy, red},
		{"pat invert", PatInvert, RGB(0xff, 0, 0xff)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, Format24, 4, 4)
			fillSolid(t, s, blue)
			st := NewDrawState()
			st.Brush = SolidBrush(red)
			if err := PatBlt(s, image.Rect(1, 1, 3, 3), tt.rop, st, nil); err != nil {
				t.Fatal(err)
			}
			assertRect(t, s, image.Rect(1, 1, 3, 3), tt.want, blue)
		})
	}
}

func TestPatBltRejectsSource(t *testing.T) {
	s := mustNew(t, Format8, 2, 2)
	if err := PatBlt(s, s.Bounds(), SrcCopy, nil, nil); !errors.Is(err, ErrInvalidSource) {
		t.Errorf("err = %v, want ErrInvalidSource", err)
	}
}

func TestPatBltAllFormatsInvertTwice(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			s := mustNew(t, f, 13, 3)
			fillSolid(t, s, white)
			for range 2 {
				if err := PatBlt(s, image.Rect(3, 0, 11, 3), DstInvert, nil, nil); err != nil {
					t.Fatal(err)
				}
			}
			if n := countColor(s, s.Bounds(), white); n != 39 {
				t.Errorf("%d pixels white, want 39", n)
			}
		})
	}
}

func TestRectangle(t *testing.T) {
	s := mustNew(t, Format8888, 8, 7)
	fillSolid(t, s, white)
	st := NewDrawState()
	st.Brush = SolidBrush(red)
	if err := Rectangle(s, image.Rect(1, 1, 6, 5), st, nil); err != nil {
		t.Fatal(err)
	}
	for y := range 7 {
		for x := range 8 {
			want := white
			switch {
			case x >= 2 && x <= 4 && y >= 2 && y <= 3:
				want = red
			case (x == 1 || x == 5) && y >= 1 && y <= 4, (y == 1 || y == 4) && x >= 1 && x <= 5:
				want = black
			}
			if got := s.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %#06x, want %#06x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestRectangleNullPen(t *testing.T) {
	s := mustNew(t, Format8, 8, 7)
	st := NewDrawState()
	st.Pen.Style = PenNull
	st.Brush = SolidBrush(red)
	if err := Rectangle(s, image.Rect(1, 1, 6, 5), st, nil); err != nil {
		t.Fatal(err)
	}
	assertRect(t, s, image.Rect(1, 1, 5, 4), red, black)
}
