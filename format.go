package dib

import "fmt"

// Format identifies a pixel encoding.
type Format uint8

const (
	// FormatNull accepts every operation and draws nothing. Surfaces of an
	// unsupported bit depth are bound to it.
	FormatNull Format = iota

	// Format1 is 1 bit per pixel, most significant bit leftmost, indexing a
	// two-entry color table.
	Format1

	// Format4 is 4 bits per pixel, high nibble leftmost, indexing a
	// 16-entry color table.
	Format4

	// Format8 is 8 bits per pixel indexing a 256-entry color table.
	Format8

	// Format555 is 16 bits per pixel with 5-5-5 red, green and blue fields.
	Format555

	// Format565 is 16 bits per pixel with 5-6-5 red, green and blue fields.
	Format565

	// Format16 is 16 bits per pixel with caller-defined bit fields.
	Format16

	// Format24 is 24 bits per pixel stored blue, green, red.
	Format24

	// Format32 is 32 bits per pixel with caller-defined bit fields.
	Format32

	// Format8888 is 32 bits per pixel laid out 0x00RRGGBB.
	Format8888

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is a short human-readable name.
	Name string

	// BitsPerPixel is the storage size of one pixel.
	BitsPerPixel int

	// Indexed reports whether pixels are color table indices.
	Indexed bool

	// Masked reports whether the channel layout comes from bit-field masks.
	Masked bool

	// Masks are the default red, green and blue masks of a masked format.
	Masks [3]uint32
}

var (
	masks555  = [3]uint32{0x7c00, 0x03e0, 0x001f}
	masks565  = [3]uint32{0xf800, 0x07e0, 0x001f}
	masks8888 = [3]uint32{0xff0000, 0x00ff00, 0x0000ff}
)

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatNull: {Name: "null"},
	Format1:    {Name: "1bpp", BitsPerPixel: 1, Indexed: true},
	Format4:    {Name: "4bpp", BitsPerPixel: 4, Indexed: true},
	Format8:    {Name: "8bpp", BitsPerPixel: 8, Indexed: true},
	Format555:  {Name: "16bpp-555", BitsPerPixel: 16, Masked: true, Masks: masks555},
	Format565:  {Name: "16bpp-565", BitsPerPixel: 16, Masked: true, Masks: masks565},
	Format16:   {Name: "16bpp-masked", BitsPerPixel: 16, Masked: true, Masks: masks555},
	Format24:   {Name: "24bpp", BitsPerPixel: 24},
	Format32:   {Name: "32bpp-masked", BitsPerPixel: 32, Masked: true, Masks: masks8888},
	Format8888: {Name: "32bpp-8888", BitsPerPixel: 32, Masked: true, Masks: masks8888},
}

// Info returns metadata for the format.
// Returns a zero FormatInfo for an invalid format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BitsPerPixel returns the storage size of one pixel in bits.
func (f Format) BitsPerPixel() int {
	return f.Info().BitsPerPixel
}

// IsIndexed reports whether pixels index a color table.
func (f Format) IsIndexed() bool {
	return f.Info().Indexed
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns a human-readable format name.
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatInfoTable[f].Name
}

// RowBytes returns the minimum stride of a row of width pixels: the bit
// width rounded up to a whole number of 32-bit units.
func RowBytes(f Format, width int) int {
	return ((width*f.BitsPerPixel() + 31) >> 5) << 2
}

// FormatForDepth picks the format for a bit depth and optional bit-field
// masks, the way a bitmap header describes a surface. Depths no driver
// handles yield FormatNull.
func FormatForDepth(bpp int, masks *[3]uint32) Format {
	switch bpp {
	case 1:
		return Format1
	case 4:
		return Format4
	case 8:
		return Format8
	case 16:
		switch {
		case masks == nil || *masks == masks555:
			return Format555
		case *masks == masks565:
			return Format565
		}
		return Format16
	case 24:
		return Format24
	case 32:
		if masks == nil || *masks == masks8888 {
			return Format8888
		}
		return Format32
	}
	return FormatNull
}

// defaultColorTable returns the color table given to an indexed surface
// created without WithColorTable.
func defaultColorTable(f Format) []ColorRef {
	switch f {
	case Format1:
		return []ColorRef{RGB(0, 0, 0), RGB(0xff, 0xff, 0xff)}
	case Format4:
		return append([]ColorRef(nil), vga16[:]...)
	case Format8:
		t := make([]ColorRef, 0, 256)
		t = append(t, vga16[:]...)
		levels := [6]uint8{0, 0x33, 0x66, 0x99, 0xcc, 0xff}
		for _, r := range levels {
			for _, g := range levels {
				for _, b := range levels {
					t = append(t, RGB(r, g, b))
				}
			}
		}
		for i := range 24 {
			v := uint8(8 + 10*i) //nolint:gosec // at most 238
			t = append(t, RGB(v, v, v))
		}
		return t
	}
	return nil
}

// vga16 is the standard 16-color palette.
var vga16 = [16]ColorRef{
	0x000000, 0x000080, 0x008000, 0x008080,
	0x800000, 0x800080, 0x808000, 0xc0c0c0,
	0x808080, 0x0000ff, 0x00ff00, 0x00ffff,
	0xff0000, 0xff00ff, 0xffff00, 0xffffff,
}
