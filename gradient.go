package dib

import (
	"image"

	"github.com/gogpu/dib/internal/clip"
	icolor "github.com/gogpu/dib/internal/color"
)

// GradientMode selects the axis a rectangle gradient runs along.
type GradientMode uint8

const (
	// GradientHorizontal interpolates from the left vertex to the right.
	GradientHorizontal GradientMode = iota

	// GradientVertical interpolates from the top vertex to the bottom.
	GradientVertical
)

// Vertex is one corner of a gradient rectangle. Channels are 16-bit; the
// high byte is the 8-bit value.
type Vertex struct {
	X, Y       int
	R, G, B, A uint16
}

// gradientPos returns how far (x, y) lies along the gradient axis and the
// axis length.
func gradientPos(v [2]Vertex, mode GradientMode, x, y int) (pos, n int) {
	if mode == GradientVertical {
		return y - v[0].Y, v[1].Y - v[0].Y
	}
	return x - v[0].X, v[1].X - v[0].X
}

// lerp16 interpolates a 16-bit channel at pos of n.
func lerp16(a, b uint16, pos, n int) int {
	if n == 0 {
		return int(a)
	}
	return (int(a)*(n-pos) + int(b)*pos) / n
}

// gradientAt returns the 8-bit color and alpha at (x, y).
func gradientAt(v [2]Vertex, mode GradientMode, x, y int) (icolor.RGB, uint8) {
	pos, n := gradientPos(v, mode, x, y)
	ch := func(a, b uint16) uint8 {
		return uint8(lerp16(a, b, pos, n) >> 8) //nolint:gosec // 16-bit channel
	}
	return icolor.RGB{R: ch(v[0].R, v[1].R), G: ch(v[0].G, v[1].G), B: ch(v[0].B, v[1].B)}, ch(v[0].A, v[1].A)
}

// GradientFill fills the rectangle spanned by two vertices with a linear
// blend of their colors along mode's axis. The vertices may be given in
// either order.
//
// Example:
//
//	v := [2]dib.Vertex{
//		{X: 0, Y: 0, R: 0xff00},
//		{X: 256, Y: 32, B: 0xff00},
//	}
//	err := dib.GradientFill(s, v, dib.GradientHorizontal, nil)
func GradientFill(s *Surface, v [2]Vertex, mode GradientMode, clipList []image.Rectangle) error {
	if mode != GradientHorizontal && mode != GradientVertical {
		return ErrInvalidGradientMode
	}
	if s.format == FormatNull {
		return nil
	}
	var bounds image.Rectangle
	if mode == GradientHorizontal {
		if v[1].X < v[0].X {
			v[0], v[1] = v[1], v[0]
		}
		y0, y1 := min(v[0].Y, v[1].Y), max(v[0].Y, v[1].Y)
		v[0].Y, v[1].Y = y0, y1
		bounds = image.Rect(v[0].X, y0, v[1].X, y1)
	} else {
		if v[1].Y < v[0].Y {
			v[0], v[1] = v[1], v[0]
		}
		x0, x1 := min(v[0].X, v[1].X), max(v[0].X, v[1].X)
		v[0].X, v[1].X = x0, x1
		bounds = image.Rect(x0, v[0].Y, x1, v[1].Y)
	}
	for _, r := range clip.Rects(s.Bounds(), bounds, clipList) {
		s.driver.GradientRect(s, r, v, mode)
	}
	return nil
}
