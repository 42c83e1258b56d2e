package dib

import (
	"image"

	scratch "github.com/gogpu/dib/internal/image"
)

// BrushStyle identifies how a brush paints.
type BrushStyle uint8

// Brush styles.
const (
	BrushNull BrushStyle = iota
	BrushSolid
	BrushHatched
	BrushPattern
)

// HatchStyle selects one of the built-in 8x8 hatch patterns.
type HatchStyle uint8

// Hatch styles.
const (
	HatchHorizontal HatchStyle = iota // -----
	HatchVertical                     // |||||
	HatchFDiagonal                    // \\\\\
	HatchBDiagonal                    // /////
	HatchCross                        // +++++
	HatchDiagCross                    // xxxxx
)

// hatchBits are the rows of each hatch, set bits drawn in the brush color.
var hatchBits = [...][8]byte{
	HatchHorizontal: {0x00, 0x00, 0x00, 0xff, 0x00, 0x00, 0x00, 0x00},
	HatchVertical:   {0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08},
	HatchFDiagonal:  {0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01},
	HatchBDiagonal:  {0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80},
	HatchCross:      {0x08, 0x08, 0x08, 0xff, 0x08, 0x08, 0x08, 0x08},
	HatchDiagCross:  {0x81, 0x42, 0x24, 0x18, 0x18, 0x24, 0x42, 0x81},
}

// Brush paints interiors. Brushes are immutable once created.
type Brush struct {
	style   BrushStyle
	color   ColorRef
	hatch   HatchStyle
	pattern *Surface
}

// SolidBrush returns a brush painting a single color.
func SolidBrush(c ColorRef) *Brush {
	return &Brush{style: BrushSolid, color: c}
}

// HatchBrush returns a brush drawing hatch lines in color c over the
// background color (or nothing, in transparent mode).
func HatchBrush(h HatchStyle, c ColorRef) *Brush {
	if int(h) >= len(hatchBits) {
		h = HatchHorizontal
	}
	return &Brush{style: BrushHatched, color: c, hatch: h}
}

// PatternBrush returns a brush tiling p. A 1-bit pattern drawn on a color
// surface takes the text color for clear bits and the background color
// for set bits. The surface is referenced, not copied.
func PatternBrush(p *Surface) *Brush {
	if p == nil || p.format == FormatNull {
		return NullBrush()
	}
	return &Brush{style: BrushPattern, pattern: p}
}

// NullBrush returns a brush that paints nothing.
func NullBrush() *Brush {
	return &Brush{style: BrushNull}
}

// Style returns the brush style.
func (b *Brush) Style() BrushStyle {
	if b == nil {
		return BrushNull
	}
	return b.style
}

// Color returns the color of a solid or hatched brush.
func (b *Brush) Color() ColorRef { return b.color }

// hatchSurface builds the 1-bit tile of hatch h.
func hatchSurface(h HatchStyle) *Surface {
	bits := make([]byte, 8*4)
	for y, v := range hatchBits[h] {
		bits[y*4] = v
	}
	s, _ := FromBits(bits, 8, 8, 1) //nolint:errcheck // fixed valid geometry
	return s
}

// release returns the masks' memory to the scratch pool.
func (m *BrushMasks) release() {
	if m == nil {
		return
	}
	scratch.Put(m.buf)
	m.buf = nil
}

// fillBrush paints rects, already clipped, with the state's brush combined
// through rop2.
func (st *DrawState) fillBrush(s *Surface, rects []image.Rectangle, rop2 Rop2) error {
	b := st.Brush
	if len(rects) == 0 || b.Style() == BrushNull {
		return nil
	}
	switch b.style {
	case BrushSolid:
		m := RopMasks(rop2, s.pixelColor(b.color, st.BkColor, true))
		s.driver.SolidRects(s, rects, m.And, m.Xor)
		return nil
	case BrushHatched:
		hatch := hatchSurface(b.hatch)
		fg := RopMasks(rop2, s.pixelColor(b.color, st.BkColor, true))
		bg := RopMask{And: ^uint32(0)}
		if st.BkMode == Opaque {
			bg = RopMasks(rop2, s.pixelColor(st.BkColor, st.BkColor, false))
		}
		masks, err := s.driver.CreateRopMasks(s, hatch, fg, bg)
		if err != nil {
			return err
		}
		defer masks.release()
		s.driver.PatternRects(s, rects, st.BrushOrigin, hatch, masks)
		return nil
	}

	masks, err := st.patternMasks(s, b.pattern, rop2)
	if err != nil {
		return err
	}
	defer masks.release()
	s.driver.PatternRects(s, rects, st.BrushOrigin, b.pattern, masks)
	return nil
}

// patternMasks realizes a pattern brush for s: the tile is converted to the
// surface's format and every pixel reduced to its AND/XOR pair.
func (st *DrawState) patternMasks(s *Surface, pat *Surface, rop2 Rop2) (*BrushMasks, error) {
	if pat.format == Format1 && s.format != Format1 {
		text := RopMasks(rop2, s.pixelColor(st.TextColor, st.BkColor, true))
		bk := RopMasks(rop2, s.pixelColor(st.BkColor, st.BkColor, false))
		return s.driver.CreateRopMasks(s, pat, bk, text)
	}

	tile := pat
	if !pat.sameLayout(s) {
		t, err := s.newScratch(s.format, pat.width, pat.height, s)
		if err != nil {
			return nil, err
		}
		defer t.release()
		s.driver.ConvertTo(t, pat, pat.Bounds())
		tile = t
	}

	w, h := tile.width, tile.height
	stride := RowBytes(s.format, w)
	n := stride * h
	needAnd := RopNeedsAndMask(rop2)
	size := n
	if needAnd {
		size *= 2
	}
	buf, err := s.scratchBytes(size)
	if err != nil {
		return nil, err
	}
	m := &BrushMasks{Xor: buf[:n], Width: w, Height: h, Stride: stride, buf: buf}
	if needAnd {
		m.And = buf[n:]
	}
	for y := range h {
		trow := tile.row(y)
		for x := range w {
			rm := RopMasks(rop2, s.px.pixel(trow, x))
			s.px.setPixel(m.Xor[y*stride:], x, rm.Xor)
			if needAnd {
				s.px.setPixel(m.And[y*stride:], x, rm.And)
			}
		}
	}
	return m, nil
}
