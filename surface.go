package dib

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/dib/internal/bitfield"
	icolor "github.com/gogpu/dib/internal/color"
	scratch "github.com/gogpu/dib/internal/image"
)

// Surface is a device-independent bitmap: a rectangular grid of pixels in
// one Format together with the driver that draws into it.
//
// A Surface is not safe for concurrent drawing. Distinct surfaces may be
// drawn from different goroutines.
type Surface struct {
	format        Format
	width, height int
	stride        int // signed; negative lays rows out bottom-up
	origin        int // byte offset of row 0
	bits          []byte
	table         []ColorRef
	palette       icolor.Palette
	masks         [3]uint32
	ch            bitfield.Channels
	driver        Driver
	px            pixelFormat
	scratchLimit  int
	pooled        bool
}

// New creates a surface of the given format and size.
//
// Example:
//
//	s, err := dib.New(dib.Format8888, 640, 480)
//	if err != nil {
//	    return err
//	}
//	dib.FillRects(s, []image.Rectangle{s.Bounds()}, dib.NewDrawState(), nil)
func New(f Format, width, height int, opts ...SurfaceOption) (*Surface, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFormat, uint8(f))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newSurface(f, width, height, &o)
}

// FromBits wraps caller memory holding a bitmap of the given bit depth.
// Bit-field masks, if any, come from WithBitFields. A depth that no driver
// handles produces a surface bound to the null driver: every operation on
// it succeeds and draws nothing.
func FromBits(bits []byte, width, height, bpp int, opts ...SurfaceOption) (*Surface, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var masks *[3]uint32
	if o.hasMasks {
		masks = &o.masks
	}
	f := FormatForDepth(bpp, masks)
	if f == FormatNull {
		Logger().Debug("dib: unsupported bit depth, binding null driver", "bpp", bpp)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	o.bits = bits
	return newSurface(f, width, height, &o)
}

func newSurface(f Format, width, height int, o *surfaceOptions) (*Surface, error) {
	s := &Surface{
		format:       f,
		width:        width,
		height:       height,
		scratchLimit: o.scratchLimit,
	}
	info := f.Info()

	if info.Masked {
		masks := info.Masks
		if o.hasMasks {
			if (f != Format16 && f != Format32) && o.masks != info.Masks {
				return nil, fmt.Errorf("%w: %s has fixed masks", ErrInvalidMasks, f)
			}
			masks = o.masks
		}
		if err := checkMasks(masks, info.BitsPerPixel); err != nil {
			return nil, err
		}
		s.masks = masks
		s.ch = bitfield.FromMasks(masks[0], masks[1], masks[2])
	}
	if info.Indexed {
		table := o.colorTable
		if table == nil {
			table = defaultColorTable(f)
		}
		if n := 1 << info.BitsPerPixel; len(table) > n {
			table = table[:n]
		}
		s.table = append([]ColorRef(nil), table...)
		s.palette = paletteOf(s.table)
	}

	s.driver, s.px = driverFor(f)
	if f == FormatNull {
		return s, nil
	}

	rowBytes := RowBytes(f, width)
	stride := o.stride
	if stride == 0 {
		stride = rowBytes
	}
	if abs(stride) < rowBytes {
		return nil, fmt.Errorf("%w: %d < %d", ErrInvalidStride, abs(stride), rowBytes)
	}
	if o.bottomUp && stride > 0 {
		stride = -stride
	}
	size := abs(stride) * height
	if o.bits != nil {
		if len(o.bits) < size {
			return nil, fmt.Errorf("%w: %d < %d", ErrDataTooSmall, len(o.bits), size)
		}
		s.bits = o.bits[:size]
	} else {
		s.bits = make([]byte, size)
	}
	s.stride = stride
	if stride < 0 {
		s.origin = (height - 1) * -stride
	}

	Logger().Debug("dib: surface created",
		"format", f.String(), "width", width, "height", height, "stride", stride)
	return s, nil
}

// checkMasks rejects empty, overlapping or oversized bit fields.
func checkMasks(m [3]uint32, bpp int) error {
	limit := uint32(1<<bpp - 1)
	if bpp >= 32 {
		limit = ^uint32(0)
	}
	var seen uint32
	for _, v := range m {
		if v == 0 || v&seen != 0 || v&^limit != 0 {
			return fmt.Errorf("%w: %#x %#x %#x", ErrInvalidMasks, m[0], m[1], m[2])
		}
		seen |= v
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Format returns the surface's pixel encoding.
func (s *Surface) Format() Format { return s.format }

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the signed byte distance from one row to the next.
func (s *Surface) Stride() int { return s.stride }

// Bits returns the pixel memory. Row 0 is at the end of the slice for a
// bottom-up surface.
func (s *Surface) Bits() []byte { return s.bits }

// Bounds returns the surface rectangle (0, 0)-(width, height).
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Driver returns the driver bound to the surface's format.
func (s *Surface) Driver() Driver { return s.driver }

// ColorTable returns a copy of the color table of an indexed surface.
func (s *Surface) ColorTable() []ColorRef {
	return append([]ColorRef(nil), s.table...)
}

// Masks returns the red, green and blue masks of a masked surface.
func (s *Surface) Masks() (r, g, b uint32) {
	return s.masks[0], s.masks[1], s.masks[2]
}

// Row returns the bytes of row y, exactly RowBytes long.
func (s *Surface) Row(y int) []byte {
	off := s.origin + y*s.stride
	return s.bits[off : off+RowBytes(s.format, s.width)]
}

// row returns the memory from the start of row y onward.
func (s *Surface) row(y int) []byte {
	return s.bits[s.origin+y*s.stride:]
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model { return ColorRefModel }

// At implements image.Image. Pixels outside the surface are black.
func (s *Surface) At(x, y int) color.Color {
	if !image.Pt(x, y).In(s.Bounds()) {
		return ColorRef(0)
	}
	return s.GetPixel(x, y)
}

// Set implements draw.Image.
func (s *Surface) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(s.Bounds()) {
		return
	}
	s.SetPixel(x, y, ColorRefModel.Convert(c).(ColorRef)) //nolint:forcetypeassert // model always yields ColorRef
}

// GetPixel returns the color of the pixel at (x, y).
func (s *Surface) GetPixel(x, y int) ColorRef {
	if !image.Pt(x, y).In(s.Bounds()) {
		return 0
	}
	return s.driver.PixelToColorRef(s, s.driver.GetPixel(s, x, y))
}

// SetPixel stores the pixel nearest to c at (x, y) and returns the color
// actually stored.
func (s *Surface) SetPixel(x, y int, c ColorRef) ColorRef {
	p := s.driver.ColorRefToPixel(s, c)
	if image.Pt(x, y).In(s.Bounds()) {
		s.driver.SolidRects(s, []image.Rectangle{image.Rect(x, y, x+1, y+1)}, 0, p)
	}
	return s.driver.PixelToColorRef(s, p)
}

// NearestColor returns the color c would be stored as.
func (s *Surface) NearestColor(c ColorRef) ColorRef {
	return s.driver.PixelToColorRef(s, s.driver.ColorRefToPixel(s, c))
}

// lookupCache returns a palette lookup cache for one operation, or nil for
// direct-color surfaces.
func (s *Surface) lookupCache() *icolor.LookupCache {
	if !s.format.IsIndexed() {
		return nil
	}
	return icolor.NewLookupCache(s.palette)
}

// sameLayout reports whether pixels of s and o can be copied verbatim.
func (s *Surface) sameLayout(o *Surface) bool {
	if s.format != o.format || s.masks != o.masks || len(s.table) != len(o.table) {
		return false
	}
	for i, c := range s.table {
		if o.table[i] != c {
			return false
		}
	}
	return true
}

// scratchBytes reserves n bytes of temporary memory against the surface's
// scratch limit.
func (s *Surface) scratchBytes(n int) ([]byte, error) {
	buf, err := scratch.Get(n, s.scratchLimit)
	if err != nil {
		Logger().Debug("dib: scratch allocation rejected",
			"bytes", n, "limit", s.scratchLimit, "err", err)
		if errors.Is(err, scratch.ErrLimit) {
			return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		return nil, err
	}
	return buf, nil
}

// checkScratch fails with ErrOutOfMemory when n bytes of bookkeeping would
// exceed the scratch limit.
func (s *Surface) checkScratch(n int) error {
	if s.scratchLimit > 0 && n > s.scratchLimit {
		Logger().Debug("dib: scratch allocation rejected", "bytes", n, "limit", s.scratchLimit)
		return fmt.Errorf("%w: %d bytes requested, limit %d", ErrOutOfMemory, n, s.scratchLimit)
	}
	return nil
}

// newScratch creates a temporary top-down surface of format f with the
// color layout of like (when like has format f). The caller must release it.
func (s *Surface) newScratch(f Format, width, height int, like *Surface) (*Surface, error) {
	o := defaultOptions()
	o.scratchLimit = s.scratchLimit
	if like != nil && like.format == f {
		o.colorTable = like.table
		if f.Info().Masked {
			o.masks = like.masks
			o.hasMasks = true
		}
	}
	if f == FormatNull || width <= 0 || height <= 0 {
		return newSurface(FormatNull, max(width, 1), max(height, 1), &o)
	}
	buf, err := s.scratchBytes(RowBytes(f, width) * height)
	if err != nil {
		return nil, err
	}
	o.bits = buf
	t, err := newSurface(f, width, height, &o)
	if err != nil {
		scratch.Put(buf)
		return nil, err
	}
	t.pooled = true
	return t, nil
}

// release returns a scratch surface's memory to the pool.
func (s *Surface) release() {
	if s == nil || !s.pooled {
		return
	}
	scratch.Put(s.bits)
	s.bits = nil
	s.pooled = false
}

// mod returns a modulo b in [0, b).
func mod(a, b int) int {
	a %= b
	if a < 0 {
		a += b
	}
	return a
}

// ones returns a 32-bit mask of the low n bits.
func ones(n int) uint32 {
	if n >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<uint(n) - 1 //nolint:gosec // n < 32
}
