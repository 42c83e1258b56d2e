// Package dib provides a software rasterizer for device-independent bitmaps.
//
// # Overview
//
// dib draws into packed pixel buffers in the classic DIB encodings: 1, 4
// and 8 bits per pixel with a color table, 16 bits as 5-5-5, 5-6-5 or
// arbitrary bit fields, 24-bit BGR, and 32 bits either as 0x00RRGGBB or
// with arbitrary bit fields. Every primitive produces the same pixels on
// every encoding, up to the precision the encoding holds.
//
// # Quick Start
//
//	import "github.com/gogpu/dib"
//
//	s, err := dib.New(dib.Format565, 320, 200)
//	if err != nil {
//		return err
//	}
//
//	st := dib.NewDrawState()
//	st.Brush = dib.HatchBrush(dib.HatchDiagCross, dib.RGB(0, 0x80, 0))
//	st.Pen.Color = dib.RGB(0xff, 0, 0)
//	dib.Ellipse(s, image.Rect(10, 10, 150, 110), st, nil)
//
//	f, _ := os.Create("out.bmp")
//	defer f.Close()
//	dib.EncodeBMP(f, s)
//
// # Architecture
//
// The library is organized into:
//   - Surface: the bitmap descriptor, bound once to a format Driver
//   - Driver: per-format pixel loops (fills, lines, copies, blends,
//     gradients, glyphs, conversion, resampling)
//   - Primitives: FillRects, Line, Polyline, Polygon, Rectangle, Ellipse,
//     RoundRect, Arc, Chord, Pie, PatBlt, BitBlt, StretchBlt, AlphaBlend,
//     GradientFill, DrawGlyph, Convert
//   - Internal: bitfield (channel packing), rop (raster operations), raster
//     (Bresenham geometry), clip (rectangle lists), blend (alpha and glyph
//     math), color (palette quantization)
//
// # Clipping
//
// Every primitive takes a clip list: disjoint rectangles sorted top to
// bottom, then left to right. A nil list leaves the whole surface visible.
// The list is consumed, never computed; region algebra belongs to the
// caller.
//
// # Draw State
//
// Pens, brushes, colors and modes travel in a caller-owned DrawState. The
// package keeps no global drawing state.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel, whatever the row order in memory
//   - X increases right
//   - Y increases down
//   - Rectangles are half-open; lines include their last point
package dib
