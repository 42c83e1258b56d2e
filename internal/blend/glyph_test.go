package blend

import "testing"

func TestRampMonotonic(t *testing.T) {
	for i := 1; i < Levels; i++ {
		if ramp[i] <= ramp[i-1] {
			t.Errorf("ramp[%d] = %#x not above ramp[%d] = %#x", i, ramp[i], i-1, ramp[i-1])
		}
	}
	if ramp[0] != 0 || ramp[16] != 0xff {
		t.Error("ramp endpoints must be 0 and 0xff")
	}
}

func TestRanges(t *testing.T) {
	rng := Ranges(0, 128, 255)
	// Level 16 pins every channel to the text color.
	if e := rng[16]; e.RMin != 0 || e.RMax != 0 || e.GMin != 128 || e.GMax != 128 || e.BMin != 255 || e.BMax != 255 {
		t.Errorf("level 16 = %+v", e)
	}
	// Level 0 leaves the full range open.
	if e := rng[0]; e.RMin != 0 || e.RMax != 255 || e.BMin != 0 || e.BMax != 255 {
		t.Errorf("level 0 = %+v", e)
	}
	for level := range Levels {
		e := rng[level]
		if e.GMin > 128 || e.GMax < 128 {
			t.Errorf("level %d: green range [%d, %d] excludes the text value", level, e.GMin, e.GMax)
		}
	}
}

func TestAAColor(t *testing.T) {
	tests := []struct {
		name               string
		dst, text, lo, hi  byte
		want               byte
	}{
		{"equal", 77, 77, 0, 255, 77},
		{"above, full range", 255, 0, 0, 255, 255},
		{"above, pinned", 255, 0, 0, 0, 0},
		{"above, partial", 255, 0, 0, 0x68, 0x68},
		{"below, partial", 0, 255, 0x97, 255, 0x97},
		{"below, halfway", 100, 200, 100, 255, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AAColor(tt.dst, tt.text, tt.lo, tt.hi); got != tt.want {
				t.Errorf("AAColor(%d, %d, %d, %d) = %d, want %d", tt.dst, tt.text, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestAARGBBlackOnWhite(t *testing.T) {
	rng := Ranges(0, 0, 0)
	prev := byte(255)
	for level := 2; level <= 16; level++ {
		r, g, b := AARGB(255, 255, 255, 0, 0, 0, &rng[level])
		if r != g || g != b {
			t.Fatalf("level %d: channels differ %d %d %d", level, r, g, b)
		}
		if r > prev {
			t.Errorf("level %d: %d is lighter than level %d", level, r, level-1)
		}
		prev = r
	}
	if prev != 0 {
		t.Errorf("level 16 = %d, want 0", prev)
	}
}
