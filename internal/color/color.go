// Package color provides 8-bit RGB triples, palette quantization and the
// ordered dither matrix used by the pixel format drivers.
package color

// RGB is a color with uint8 components in [0,255].
type RGB struct {
	R, G, B uint8
}

// Dist2 returns the squared Euclidean distance between c and o.
func (c RGB) Dist2(o RGB) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}

// Snap reduces each channel to 5-bit precision, moving it to the center of
// its 8-value bucket.
func (c RGB) Snap() RGB {
	return RGB{R: snap(c.R), G: snap(c.G), B: snap(c.B)}
}

func snap(v uint8) uint8 {
	return (v &^ 7) + 4
}

// cell indexes the 5-bit bucket of c.
func (c RGB) cell() uint16 {
	return uint16(c.R>>3)<<10 | uint16(c.G>>3)<<5 | uint16(c.B>>3)
}
