package blend

import (
	"testing"
)

// TestDiv255Exact tests Alvy Ray Smith's exact formula.
func TestDiv255Exact(t *testing.T) {
	// Test all possible values from alpha blending, plus the rounding offset
	for x := uint32(0); x <= 255*255+127; x++ {
		if got, want := div255Exact(x), x/255; got != want {
			t.Fatalf("div255Exact(%d) = %d, want %d", x, got, want)
		}
	}
}

// TestMulDiv255 tests multiplication with rounded division.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b     byte
		expected byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{0, 255, 0},
		{255, 0, 0},
		{128, 128, 64}, // 128*128/255 = 64.25
		{200, 100, 78}, // 200*100/255 = 78.43
		{1, 255, 1},
		{127, 127, 63}, // 127*127/255 = 63.25
		{1, 128, 1},    // 0.502 rounds up
		{1, 127, 0},    // 0.498 rounds down
	}
	for _, tt := range tests {
		if got := MulDiv255(tt.a, tt.b); got != tt.expected {
			t.Errorf("MulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

// TestMulDiv255AllValues compares against integer division for every pair.
func TestMulDiv255AllValues(t *testing.T) {
	for a := range 256 {
		for b := range 256 {
			want := byte((a*b + 127) / 255)
			if got := MulDiv255(byte(a), byte(b)); got != want {
				t.Fatalf("MulDiv255(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestInv255(t *testing.T) {
	tests := []struct {
		input, want byte
	}{
		{0, 255},
		{255, 0},
		{128, 127},
		{1, 254},
	}
	for _, tt := range tests {
		if got := inv255(tt.input); got != tt.want {
			t.Errorf("inv255(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct {
		input uint32
		want  byte
	}{
		{0, 0},
		{255, 255},
		{256, 255},
		{1000, 255},
		{100, 100},
	}
	for _, tt := range tests {
		if got := clamp255(tt.input); got != tt.want {
			t.Errorf("clamp255(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
