package color

// Bayer4x4 is the 4x4 ordered dither matrix, values 0 through 15.
var Bayer4x4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// DitherThreshold returns the matrix entry for pixel (x, y).
func DitherThreshold(x, y int) int {
	return int(Bayer4x4[y&3][x&3])
}
