package bitfield

// Sub-byte addressing. Pixels are stored most significant first: in a 4bpp
// row the left pixel of each byte occupies the high nibble, in a 1bpp row
// pixel 0 is bit 7.

// Nibble returns the byte index and shift of the 4bpp pixel at x.
func Nibble(x int) (index int, shift uint) {
	return x >> 1, uint(1-x&1) * 4 //nolint:gosec // x&1 is 0 or 1
}

// GetNibble reads the 4bpp pixel at x from row.
func GetNibble(row []byte, x int) uint8 {
	i, s := Nibble(x)
	return (row[i] >> s) & 0x0f
}

// SetNibble writes the 4bpp pixel at x in row.
func SetNibble(row []byte, x int, v uint8) {
	i, s := Nibble(x)
	row[i] = row[i]&^(0x0f<<s) | (v&0x0f)<<s
}

// Bit returns the byte index and shift of the 1bpp pixel at x.
func Bit(x int) (index int, shift uint) {
	return x >> 3, uint(7 - x&7) //nolint:gosec // x&7 is in 0..7
}

// GetBit reads the 1bpp pixel at x from row.
func GetBit(row []byte, x int) uint8 {
	i, s := Bit(x)
	return (row[i] >> s) & 1
}

// SetBit writes the 1bpp pixel at x in row.
func SetBit(row []byte, x int, v uint8) {
	i, s := Bit(x)
	row[i] = row[i]&^(1<<s) | (v&1)<<s
}

// PixelsPerByte returns how many pixels of bpp bits share a byte.
func PixelsPerByte(bpp int) int { return 8 / bpp }

// ByteSpan returns the indexes of the first and last bytes holding pixels
// [x0, x1) of a row at bpp bits per pixel. x1 must exceed x0.
func ByteSpan(x0, x1, bpp int) (first, last int) {
	ppb := PixelsPerByte(bpp)
	return x0 / ppb, (x1 - 1) / ppb
}

// SpanMask returns the bits of byte i that hold pixels [x0, x1) of a row
// at bpp bits per pixel, 1 or 4. Bytes wholly inside the span get 0xff;
// bytes outside it get 0.
func SpanMask(x0, x1, i, bpp int) byte {
	ppb := PixelsPerByte(bpp)
	lo, hi := max(x0, i*ppb), min(x1, (i+1)*ppb)
	if lo >= hi {
		return 0
	}
	first, last := uint((lo-i*ppb)*bpp), uint((hi-i*ppb)*bpp) //nolint:gosec // within one byte
	return byte(0xff>>first) &^ byte(0xff>>last)
}

// Replicate4 spreads a 4-bit value over both nibbles of a byte.
func Replicate4(v uint32) byte {
	n := byte(v & 0x0f)
	return n | n<<4
}

// Replicate1 spreads a 1-bit value over all eight bits of a byte.
func Replicate1(v uint32) byte {
	if v&1 != 0 {
		return 0xff
	}
	return 0
}
