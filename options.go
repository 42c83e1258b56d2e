package dib

// SurfaceOption configures a Surface during creation.
// Use functional options to customize the pixel layout.
//
// Example:
//
//	// Default top-down surface with DWORD-aligned rows
//	s, err := dib.New(dib.Format565, 640, 480)
//
//	// Bottom-up surface sharing caller memory
//	s, err := dib.New(dib.Format24, 640, 480, dib.WithBottomUp(), dib.WithBits(buf))
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	stride       int
	bottomUp     bool
	bits         []byte
	colorTable   []ColorRef
	masks        [3]uint32
	hasMasks     bool
	scratchLimit int
}

// DefaultScratchLimit caps the temporary memory one drawing call may take.
const DefaultScratchLimit = 64 << 20

// defaultOptions returns the default surface options.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		stride:       0, // Derived from width when zero
		scratchLimit: DefaultScratchLimit,
	}
}

// WithStride sets the distance in bytes between the starts of consecutive
// rows. A negative stride lays rows out bottom-up. The magnitude must be at
// least RowBytes of the width.
//
// Example:
//
//	s, err := dib.New(dib.Format8, 100, 10, dib.WithStride(128))
func WithStride(stride int) SurfaceOption {
	return func(o *surfaceOptions) {
		o.stride = stride
	}
}

// WithBottomUp stores row 0 last in memory, as BMP files do.
func WithBottomUp() SurfaceOption {
	return func(o *surfaceOptions) {
		o.bottomUp = true
	}
}

// WithBits makes the surface draw into caller-owned memory instead of
// allocating its own. The slice must hold every row.
//
// Example:
//
//	buf := make([]byte, dib.RowBytes(dib.Format8888, 320)*200)
//	s, err := dib.New(dib.Format8888, 320, 200, dib.WithBits(buf))
func WithBits(bits []byte) SurfaceOption {
	return func(o *surfaceOptions) {
		o.bits = bits
	}
}

// WithColorTable sets the palette of an indexed surface. Extra entries
// beyond the format's capacity are ignored; a short table leaves the
// remaining indices undefined (they read back as black).
//
// A one-entry table on a 1-bit surface holds only the background color:
// colors equal to it map to index 1, everything else to 0.
func WithColorTable(table []ColorRef) SurfaceOption {
	return func(o *surfaceOptions) {
		o.colorTable = table
	}
}

// WithBitFields sets the red, green and blue masks of a 16- or 32-bit
// masked surface. Masks must be nonzero and must not overlap.
//
// Example:
//
//	// 16-bit surface with 4-4-4 channels
//	s, err := dib.New(dib.Format16, 64, 64, dib.WithBitFields(0x0f00, 0x00f0, 0x000f))
func WithBitFields(r, g, b uint32) SurfaceOption {
	return func(o *surfaceOptions) {
		o.masks = [3]uint32{r, g, b}
		o.hasMasks = true
	}
}

// WithScratchLimit caps the temporary memory a single drawing call on the
// surface may allocate. Calls that would exceed it fail with ErrOutOfMemory.
// Zero or negative removes the limit.
func WithScratchLimit(n int) SurfaceOption {
	return func(o *surfaceOptions) {
		o.scratchLimit = n
	}
}
