package dib

import (
	"image"
	"testing"
)

func shapeState() *DrawState {
	st := NewDrawState()
	st.Brush = SolidBrush(red)
	return st
}

func TestEllipseSymmetric(t *testing.T) {
	for _, size := range []int{11, 10, 7} {
		s := mustNew(t, Format8888, size, size)
		fillSolid(t, s, white)
		if err := Ellipse(s, image.Rect(0, 0, size, size), shapeState(), nil); err != nil {
			t.Fatal(err)
		}
		last := size - 1
		for y := range size {
			for x := range size {
				c := s.GetPixel(x, y)
				if c != s.GetPixel(last-x, y) || c != s.GetPixel(x, last-y) {
					t.Fatalf("size %d: pixel (%d,%d) breaks symmetry", size, x, y)
				}
			}
		}
		mid := last / 2
		if s.GetPixel(mid, mid) != red {
			t.Errorf("size %d: center not filled", size)
		}
		if s.GetPixel(mid, 0) != black || s.GetPixel(0, mid) != black {
			t.Errorf("size %d: outline misses the extremes", size)
		}
		if s.GetPixel(0, 0) != white {
			t.Errorf("size %d: corner painted", size)
		}
	}
}

func TestRoundRect(t *testing.T) {
	s := mustNew(t, Format24, 20, 10)
	fillSolid(t, s, white)
	if err := RoundRect(s, image.Rect(0, 0, 20, 10), 6, 6, shapeState(), nil); err != nil {
		t.Fatal(err)
	}
	if s.GetPixel(10, 0) != black || s.GetPixel(10, 9) != black || s.GetPixel(0, 5) != black || s.GetPixel(19, 5) != black {
		t.Error("straight edges not outlined")
	}
	if s.GetPixel(10, 5) != red {
		t.Error("interior not filled")
	}
	if s.GetPixel(0, 0) != white || s.GetPixel(19, 9) != white {
		t.Error("corners not rounded")
	}
}

func TestArcFullAndQuarter(t *testing.T) {
	r := image.Rect(0, 0, 11, 11)

	full := mustNew(t, Format8888, 11, 11)
	fillSolid(t, full, white)
	if err := Arc(full, r, image.Pt(20, 5), image.Pt(20, 5), shapeState(), nil); err != nil {
		t.Fatal(err)
	}
	if full.GetPixel(5, 5) != white {
		t.Error("arc filled its interior")
	}
	for _, p := range []image.Point{{5, 0}, {0, 5}, {10, 5}, {5, 10}} {
		if full.GetPixel(p.X, p.Y) != black {
			t.Errorf("full arc misses %v", p)
		}
	}

	quarter := mustNew(t, Format8888, 11, 11)
	fillSolid(t, quarter, white)
	if err := Arc(quarter, r, image.Pt(10, 5), image.Pt(5, 0), shapeState(), nil); err != nil {
		t.Fatal(err)
	}
	if quarter.GetPixel(10, 5) != black || quarter.GetPixel(5, 0) != black {
		t.Error("quarter arc misses its ends")
	}
	for y := range 11 {
		for x := range 11 {
			if quarter.GetPixel(x, y) == black && (x < 5 || y > 5) {
				t.Errorf("quarter arc drew (%d,%d) outside the top-right quadrant", x, y)
			}
		}
	}
}

func TestChordAndPie(t *testing.T) {
	r := image.Rect(0, 0, 11, 11)

	chord := mustNew(t, Format565, 11, 11)
	fillSolid(t, chord, white)
	if err := Chord(chord, r, image.Pt(10, 5), image.Pt(0, 5), shapeState(), nil); err != nil {
		t.Fatal(err)
	}
	if chord.GetPixel(5, 2) != red {
		t.Error("upper half not filled")
	}
	if chord.GetPixel(5, 8) != white {
		t.Error("lower half painted")
	}
	if chord.GetPixel(5, 5) != black {
		t.Error("chord line missing")
	}

	pie := mustNew(t, Format565, 11, 11)
	fillSolid(t, pie, white)
	if err := Pie(pie, r, image.Pt(10, 5), image.Pt(5, 0), shapeState(), nil); err != nil {
		t.Fatal(err)
	}
	if pie.GetPixel(5, 5) != black {
		t.Error("pie does not reach the center")
	}
	if pie.GetPixel(7, 3) != red {
		t.Error("pie interior not filled")
	}
	if pie.GetPixel(3, 7) != white {
		t.Error("pie painted the opposite quadrant")
	}
}

func TestPolygonFillModes(t *testing.T) {
	star := []image.Point{{20, 0}, {32, 38}, {1, 14}, {39, 14}, {8, 38}}
	tests := []struct {
		name   string
		mode   FillMode
		center ColorRef
	}{
		{"alternate", FillAlternate, white},
		{"winding", FillWinding, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, Format8, 40, 40)
			fillSolid(t, s, white)
			st := shapeState()
			st.Pen.Style = PenNull
			st.FillMode = tt.mode
			if err := Polygon(s, star, st, nil); err != nil {
				t.Fatal(err)
			}
			if got := s.GetPixel(20, 22); got != tt.center {
				t.Errorf("center = %#06x, want %#06x", uint32(got), uint32(tt.center))
			}
			if s.GetPixel(20, 5) != red {
				t.Error("star tip not filled")
			}
			if s.GetPixel(5, 30) != white {
				t.Error("outside painted")
			}
		})
	}
}

func TestPolygonOutlineClosed(t *testing.T) {
	s := mustNew(t, Format8888, 10, 10)
	fillSolid(t, s, white)
	st := NewDrawState()
	st.Brush = NullBrush()
	tri := []image.Point{{1, 1}, {8, 1}, {1, 8}}
	if err := Polygon(s, tri, st, nil); err != nil {
		t.Fatal(err)
	}
	for _, p := range tri {
		if s.GetPixel(p.X, p.Y) != black {
			t.Errorf("vertex %v not drawn", p)
		}
	}
	if s.GetPixel(1, 5) != black {
		t.Error("closing edge not drawn")
	}
	if s.GetPixel(3, 3) != white {
		t.Error("null brush filled")
	}
}

func TestShapesClipped(t *testing.T) {
	s := mustNew(t, Format8888, 12, 12)
	fillSolid(t, s, white)
	clip := []image.Rectangle{image.Rect(0, 0, 6, 12)}
	if err := Ellipse(s, image.Rect(0, 0, 12, 12), shapeState(), clip); err != nil {
		t.Fatal(err)
	}
	if n := countColor(s, image.Rect(6, 0, 12, 12), white); n != 72 {
		t.Errorf("%d pixels right of the clip untouched, want 72", n)
	}
	if s.GetPixel(5, 5) != red {
		t.Error("left half not filled")
	}
}
