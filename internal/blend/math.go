// Package blend provides the integer arithmetic for alpha compositing and
// anti-aliased glyph blending.
//
// The div255 family of functions avoid integer division by using bit shifts
// and addition. Results match (x + 127) / 255 rounding exactly.
//
// References:
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255Exact divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula, which gives exact results for every
// input up to 255*255 + 255.
func div255Exact(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// div255Round returns x / 255 rounded to nearest, as (x + 127) / 255.
func div255Round(x uint32) uint32 {
	return div255Exact(x + 127)
}

// MulDiv255 multiplies two bytes and divides by 255 with rounding.
func MulDiv255(a, b byte) byte {
	return byte(div255Round(uint32(a) * uint32(b)))
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

// clamp255 clamps a uint32 to byte range [0, 255].
func clamp255(x uint32) byte {
	if x > 255 {
		return 255
	}
	return byte(x)
}
