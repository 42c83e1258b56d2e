package blend

// Levels is the number of glyph coverage levels, 0 through 16.
const Levels = 17

// ramp approximates a gamma-corrected coverage curve.
var ramp = [Levels]byte{
	0, 0x4d, 0x68, 0x7c,
	0x8c, 0x9a, 0xa7, 0xb2,
	0xbd, 0xc7, 0xd0, 0xd9,
	0xe1, 0xe9, 0xf0, 0xf8,
	0xff,
}

// IntensityRange bounds the output of each channel at one coverage level.
type IntensityRange struct {
	RMin, RMax byte
	GMin, GMax byte
	BMin, BMax byte
}

// IntensityRanges holds one range per coverage level.
type IntensityRanges [Levels]IntensityRange

func rangeFor(level int, text byte) (lo, hi byte) {
	t := uint32(text)
	lo = byte(uint32(ramp[level]) * t / 255)
	r := uint32(ramp[16-level])
	hi = byte(r + (255-r)*t/255)
	return lo, hi
}

// Ranges precomputes the intensity ranges for a text color.
func Ranges(r, g, b byte) *IntensityRanges {
	var out IntensityRanges
	for level := range out {
		e := &out[level]
		e.RMin, e.RMax = rangeFor(level, r)
		e.GMin, e.GMax = rangeFor(level, g)
		e.BMin, e.BMax = rangeFor(level, b)
	}
	return &out
}

// AAColor moves one destination channel toward the text channel. Values
// above text are pulled toward hi, values below toward lo, in proportion
// to their distance from text.
func AAColor(dst, text, lo, hi byte) byte {
	switch {
	case dst == text:
		return dst
	case dst > text:
		diff := uint32(dst - text)
		span := uint32(hi) - uint32(text)
		return byte(uint32(text) + diff*span/uint32(255-text))
	default:
		diff := uint32(text - dst)
		span := uint32(text) - uint32(lo)
		return byte(uint32(text) - diff*span/uint32(text))
	}
}

// AARGB blends a destination color toward a text color at one coverage
// level's range.
func AARGB(dr, dg, db, tr, tg, tb byte, rng *IntensityRange) (r, g, b byte) {
	return AAColor(dr, tr, rng.RMin, rng.RMax),
		AAColor(dg, tg, rng.GMin, rng.GMax),
		AAColor(db, tb, rng.BMin, rng.BMax)
}
