package dib

import "image"

// nullDriver backs surfaces whose depth no driver handles. Every operation
// succeeds and leaves memory untouched.
type nullDriver struct{}

func (nullDriver) SolidRects(*Surface, []image.Rectangle, uint32, uint32) {}

func (nullDriver) SolidLine(*Surface, image.Point, *LineParams, uint32, uint32) {}

func (nullDriver) PatternRects(*Surface, []image.Rectangle, image.Point, *Surface, *BrushMasks) {}

func (nullDriver) CopyRect(*Surface, image.Rectangle, *Surface, image.Point, Rop2, Overlap) {}

func (nullDriver) BlendRect(*Surface, image.Rectangle, *Surface, image.Point, BlendFunc) {}

func (nullDriver) GradientRect(*Surface, image.Rectangle, [2]Vertex, GradientMode) {}

func (nullDriver) DrawGlyph(*Surface, image.Rectangle, *Surface, image.Point, uint32, *IntensityRanges) {
}

func (nullDriver) GetPixel(*Surface, int, int) uint32 { return 0 }

func (nullDriver) ColorRefToPixel(*Surface, ColorRef) uint32 { return 0 }

func (nullDriver) PixelToColorRef(*Surface, uint32) ColorRef { return 0 }

func (nullDriver) ConvertTo(*Surface, *Surface, image.Rectangle) {}

func (nullDriver) CreateRopMasks(*Surface, *Surface, RopMask, RopMask) (*BrushMasks, error) {
	return nil, nil
}

func (nullDriver) StretchRow(*Surface, image.Point, *Surface, image.Point, *StretchParams, StretchMode, bool) {
}

func (nullDriver) ShrinkRow(*Surface, image.Point, *Surface, image.Point, *StretchParams, StretchMode, bool) {
}
