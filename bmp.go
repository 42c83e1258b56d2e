package dib

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// EncodeBMP writes s to w as a BMP file. Indexed surfaces are written with
// their color table; all others as 24-bit RGB.
func EncodeBMP(w io.Writer, s *Surface) error {
	if s.format == FormatNull {
		return fmt.Errorf("%w: cannot encode a null surface", ErrInvalidFormat)
	}
	var img image.Image = s
	if s.format.IsIndexed() {
		img = s.paletted()
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("dib: encode bmp: %w", err)
	}
	return nil
}

// paletted copies an indexed surface into an image.Paletted that shares
// its color table.
func (s *Surface) paletted() *image.Paletted {
	pal := make(color.Palette, len(s.table))
	for i, c := range s.table {
		pal[i] = c
	}
	p := image.NewPaletted(s.Bounds(), pal)
	for y := range s.height {
		row := s.row(y)
		dst := p.Pix[y*p.Stride:]
		for x := range s.width {
			dst[x] = uint8(s.px.pixel(row, x)) //nolint:gosec // index below 256
		}
	}
	return p
}

// DecodeBMP reads a BMP file into a new surface of format f. When f is
// indexed, the file has a palette that fits, and opts set no color table,
// the file's palette becomes the surface's.
//
// Example:
//
//	s, err := dib.DecodeBMP(file, dib.Format24)
func DecodeBMP(r io.Reader, f Format, opts ...SurfaceOption) (*Surface, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("dib: decode bmp: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrNoData
	}
	if p, ok := img.(*image.Paletted); ok && f.IsIndexed() && len(p.Palette) <= 1<<f.BitsPerPixel() {
		table := make([]ColorRef, len(p.Palette))
		for i, c := range p.Palette {
			table[i] = ColorRefModel.Convert(c).(ColorRef) //nolint:forcetypeassert // model always yields ColorRef
		}
		opts = append([]SurfaceOption{WithColorTable(table)}, opts...)
	}
	s, err := New(f, b.Dx(), b.Dy(), opts...)
	if err != nil {
		return nil, err
	}
	draw.Draw(s, s.Bounds(), img, b.Min, draw.Src)
	return s, nil
}
