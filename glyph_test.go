package dib

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestGlyphLevel(t *testing.T) {
	tests := []struct {
		in, want uint8
	}{
		{0, 0}, {7, 0}, {8, 1}, {128, 8}, {240, 15}, {255, 16},
	}
	for _, tt := range tests {
		if got := GlyphLevel(tt.in); got != tt.want {
			t.Errorf("GlyphLevel(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGlyphFromAlpha(t *testing.T) {
	a := image.NewAlpha(image.Rect(2, 3, 6, 5))
	a.SetAlpha(2, 3, color.Alpha{A: 0xff})
	a.SetAlpha(5, 4, color.Alpha{A: 0x80})
	rgba := image.NewRGBA(a.Bounds())
	rgba.Set(2, 3, color.RGBA{A: 0xff})
	rgba.Set(5, 4, color.RGBA{A: 0x80})

	for name, img := range map[string]image.Image{"alpha": a, "rgba": rgba} {
		t.Run(name, func(t *testing.T) {
			g, err := GlyphFromAlpha(img)
			if err != nil {
				t.Fatal(err)
			}
			if g.Format() != Format8 || g.Width() != 4 || g.Height() != 2 {
				t.Fatalf("glyph is %v %dx%d", g.Format(), g.Width(), g.Height())
			}
			if got := g.Row(0)[0]; got != 16 {
				t.Errorf("level at (0,0) = %d, want 16", got)
			}
			if got := g.Row(1)[3]; got != 8 {
				t.Errorf("level at (3,1) = %d, want 8", got)
			}
			if got := g.Row(0)[1]; got != 0 {
				t.Errorf("level at (1,0) = %d, want 0", got)
			}
		})
	}
}

// levels builds a one-row glyph.
func levels(t *testing.T, v ...uint8) *Surface {
	t.Helper()
	g, err := NewGlyph(len(v), 1)
	if err != nil {
		t.Fatal(err)
	}
	copy(g.Row(0), v)
	return g
}

func TestDrawGlyph(t *testing.T) {
	st := NewDrawState()
	st.TextColor = white
	for _, f := range []Format{Format8888, Format24, Format565, Format8} {
		t.Run(f.String(), func(t *testing.T) {
			s := mustNew(t, f, 6, 3)
			if err := DrawGlyph(s, image.Pt(1, 1), levels(t, 16, 8, 1, 0), st, nil); err != nil {
				t.Fatal(err)
			}
			if got := s.GetPixel(1, 1); got != white {
				t.Errorf("full coverage = %#06x, want white", uint32(got))
			}
			if got := s.GetPixel(2, 1); got == black || got == white {
				t.Errorf("half coverage = %#06x, want a blend", uint32(got))
			}
			if s.GetPixel(3, 1) != black || s.GetPixel(4, 1) != black {
				t.Error("level 1 or 0 changed the destination")
			}
			if countColor(s, s.Bounds(), black) != 16 {
				t.Error("glyph painted outside its bounds")
			}
		})
	}
}

func TestDrawGlyphMono(t *testing.T) {
	s := mustNew(t, Format1, 8, 1)
	st := NewDrawState()
	st.TextColor = white
	if err := DrawGlyph(s, image.Pt(0, 0), levels(t, 16, 15, 8, 16), st, nil); err != nil {
		t.Fatal(err)
	}
	want := []ColorRef{white, black, black, white, black, black, black, black}
	if got := rowColors(s); !equalColors(got, want) {
		t.Errorf("row = %#06x, want %#06x", got, want)
	}
}

func TestDrawGlyphClip(t *testing.T) {
	st := NewDrawState()
	st.TextColor = white
	tests := []struct {
		name string
		pt   image.Point
		clip []image.Rectangle
		want []ColorRef
	}{
		{"clip list", image.Pt(0, 0), []image.Rectangle{image.Rect(1, 0, 3, 1)}, []ColorRef{black, white, white, black}},
		{"left edge", image.Pt(-2, 0), nil, []ColorRef{white, black, black, black}},
		{"right edge", image.Pt(3, 0), nil, []ColorRef{black, black, black, white}},
		{"empty clip", image.Pt(0, 0), []image.Rectangle{}, []ColorRef{black, black, black, black}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, Format8888, 4, 1)
			if err := DrawGlyph(s, tt.pt, levels(t, 16, 16, 16), st, tt.clip); err != nil {
				t.Fatal(err)
			}
			if got := rowColors(s); !equalColors(got, tt.want) {
				t.Errorf("row = %#06x, want %#06x", got, tt.want)
			}
		})
	}
}

func TestDrawGlyphInvalid(t *testing.T) {
	s := mustNew(t, Format24, 4, 4)
	for name, g := range map[string]*Surface{"nil": nil, "24-bit": mustNew(t, Format24, 2, 2)} {
		t.Run(name, func(t *testing.T) {
			if err := DrawGlyph(s, image.Point{}, g, nil, nil); !errors.Is(err, ErrInvalidSource) {
				t.Errorf("error = %v, want ErrInvalidSource", err)
			}
		})
	}
}
