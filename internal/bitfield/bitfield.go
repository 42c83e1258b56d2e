// Package bitfield packs and unpacks color channels stored as bit fields
// inside a pixel word, and addresses pixels narrower than a byte.
//
// Every direct-color pixel format is described by a (shift, length) pair per
// channel. Extract widens a field to an 8-bit intensity by replicating its
// high bits into the vacated low bits, so a 5-bit 0x1f becomes 0xff rather
// than 0xf8. Pack is the inverse and simply truncates.
//
// Lengths outside 1..8 are not supported.
package bitfield

// fieldMasks[n] keeps the top n bits of a byte.
var fieldMasks = [9]uint32{0x00, 0x80, 0xc0, 0xe0, 0xf0, 0xf8, 0xfc, 0xfe, 0xff}

// Extract isolates the length-bit field at shift in pixel and widens it to
// an 8-bit value.
func Extract(pixel uint32, shift, length uint) uint8 {
	s := int(shift) - int(8-length)
	if s < 0 {
		pixel <<= uint(-s)
	} else {
		pixel >>= uint(s)
	}
	pixel &= fieldMasks[length]
	pixel |= pixel >> length
	return uint8(pixel) //nolint:gosec // masked to 8 bits above
}

// Pack truncates an 8-bit value to length bits and places it at shift.
func Pack(value uint8, shift, length uint) uint32 {
	field := uint32(value) & fieldMasks[length]
	s := int(shift) - int(8-length)
	if s < 0 {
		return field >> uint(-s)
	}
	return field << uint(s)
}

// MaskShift returns the shift and length of the contiguous run of set bits
// in mask. A zero mask yields (0, 0).
func MaskShift(mask uint32) (shift, length uint) {
	if mask == 0 {
		return 0, 0
	}
	for mask&1 == 0 {
		mask >>= 1
		shift++
	}
	for mask&1 == 1 {
		mask >>= 1
		length++
	}
	return shift, length
}

// Channels describes the red, green and blue fields of a direct-color pixel.
type Channels struct {
	RShift, GShift, BShift uint
	RLen, GLen, BLen       uint
}

// FromMasks derives channel descriptors from three bit masks.
// Fields wider than 8 bits are clamped to their top 8 bits.
func FromMasks(r, g, b uint32) Channels {
	var c Channels
	c.RShift, c.RLen = clampField(MaskShift(r))
	c.GShift, c.GLen = clampField(MaskShift(g))
	c.BShift, c.BLen = clampField(MaskShift(b))
	return c
}

func clampField(shift, length uint) (uint, uint) {
	if length > 8 {
		shift += length - 8
		length = 8
	}
	return shift, length
}

// Unpack returns the 8-bit red, green and blue intensities of pixel.
func (c Channels) Unpack(pixel uint32) (r, g, b uint8) {
	return Extract(pixel, c.RShift, c.RLen),
		Extract(pixel, c.GShift, c.GLen),
		Extract(pixel, c.BShift, c.BLen)
}

// Pack builds a pixel from 8-bit red, green and blue intensities.
func (c Channels) Pack(r, g, b uint8) uint32 {
	return Pack(r, c.RShift, c.RLen) | Pack(g, c.GShift, c.GLen) | Pack(b, c.BShift, c.BLen)
}
