package color

// Palette is an ordered color table. Entries are unique by position, not by
// value.
type Palette []RGB

// Nearest returns the index of the entry closest to c, stopping at the first
// exact match. A one-entry palette degenerates to an equality test: the
// result is 1 when c equals the entry and 0 otherwise, which is how colors
// map onto a monochrome surface whose table holds only the background.
func (p Palette) Nearest(c RGB) int {
	switch len(p) {
	case 0:
		return 0
	case 1:
		if p[0] == c {
			return 1
		}
		return 0
	}
	best, bestDiff := 0, int(^uint(0)>>1)
	for i, e := range p {
		d := c.Dist2(e)
		if d == 0 {
			return i
		}
		if d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// Lookup is Nearest on the color snapped to 5-bit precision.
func (p Palette) Lookup(c RGB) int {
	return p.Nearest(c.Snap())
}

// LookupCache memoises Lookup results per 5-bit cell for the lifetime of one
// operation. A nil *LookupCache maps every color to index 0.
type LookupCache struct {
	palette Palette
	cells   map[uint16]uint8
}

// NewLookupCache creates a cache for p.
func NewLookupCache(p Palette) *LookupCache {
	return &LookupCache{palette: p}
}

// Lookup returns p.Lookup(c), consulting the cache first.
func (lc *LookupCache) Lookup(c RGB) int {
	if lc == nil {
		return 0
	}
	if len(lc.palette) > 256 {
		return lc.palette.Lookup(c)
	}
	key := c.cell()
	if idx, ok := lc.cells[key]; ok {
		return int(idx)
	}
	if lc.cells == nil {
		lc.cells = make(map[uint16]uint8, 64)
	}
	idx := lc.palette.Lookup(c)
	lc.cells[key] = uint8(idx) //nolint:gosec // palettes hold at most 256 entries
	return idx
}
