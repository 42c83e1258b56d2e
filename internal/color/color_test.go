package color

import "testing"

var vga = Palette{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want int
	}{
		{"exact black", RGB{0, 0, 0}, 0},
		{"exact white", RGB{255, 255, 255}, 15},
		{"near red", RGB{250, 10, 5}, 9},
		{"dark grey", RGB{110, 120, 130}, 8},
		{"silver", RGB{200, 190, 185}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vga.Nearest(tt.c); got != tt.want {
				t.Errorf("Nearest(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestNearestFirstExactMatchWins(t *testing.T) {
	p := Palette{{1, 1, 1}, {9, 9, 9}, {9, 9, 9}}
	if got := p.Nearest(RGB{9, 9, 9}); got != 1 {
		t.Errorf("duplicate entries: got %d, want first match 1", got)
	}
}

func TestNearestSingleEntry(t *testing.T) {
	p := Palette{{10, 20, 30}}
	if p.Nearest(RGB{10, 20, 30}) != 1 {
		t.Error("matching the only entry should give 1")
	}
	if p.Nearest(RGB{10, 20, 31}) != 0 {
		t.Error("any other color should give 0")
	}
}

func TestLookupSnaps(t *testing.T) {
	p := Palette{{0, 0, 0}, {4, 4, 4}, {255, 255, 255}}
	// 0 snaps to 4, landing on entry 1 exactly.
	if got := p.Lookup(RGB{0, 0, 0}); got != 1 {
		t.Errorf("Lookup(black) = %d, want 1", got)
	}
	if got := p.Nearest(RGB{0, 0, 0}); got != 0 {
		t.Errorf("Nearest(black) = %d, want 0", got)
	}
	if s := (RGB{0x1f, 0x20, 0xff}).Snap(); s != (RGB{0x1c, 0x24, 0xfc}) {
		t.Errorf("Snap = %v", s)
	}
}

func TestLookupCache(t *testing.T) {
	lc := NewLookupCache(vga)
	for _, c := range []RGB{{250, 10, 5}, {251, 11, 6}, {110, 120, 130}, {250, 10, 5}} {
		if got, want := lc.Lookup(c), vga.Lookup(c); got != want {
			t.Errorf("cached Lookup(%v) = %d, want %d", c, got, want)
		}
	}
	if len(lc.cells) != 2 {
		t.Errorf("cache holds %d cells, want 2", len(lc.cells))
	}
	var nilCache *LookupCache
	if nilCache.Lookup(RGB{1, 2, 3}) != 0 {
		t.Error("nil cache should return 0")
	}
}

func TestBayerMatrix(t *testing.T) {
	seen := map[uint8]bool{}
	for y := range 4 {
		for x := range 4 {
			seen[Bayer4x4[y][x]] = true
		}
	}
	if len(seen) != 16 {
		t.Errorf("matrix has %d distinct values, want 16", len(seen))
	}
	if DitherThreshold(5, 6) != int(Bayer4x4[2][1]) {
		t.Error("DitherThreshold does not wrap coordinates")
	}
}
