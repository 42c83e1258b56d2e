package dib

// Dash defines a user dash pattern for cosmetic pens.
// A dash pattern consists of alternating dash and gap lengths in pixels.
// For example, [5, 3] draws 5 pixels, skips 3, and repeats.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []int

	// Offset is the starting offset into the pattern.
	Offset int
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
//
// Examples:
//
//	NewDash(5, 3)        // 5 pixels on, 3 off
//	NewDash(10, 5, 2, 5) // 10 on, 5 off, 2 on, 5 off
//	NewDash(5)           // equivalent to [5, 5]
//
// Returns nil if no lengths are provided or all lengths are zero.
// Negative lengths count as their absolute value.
func NewDash(lengths ...int) *Dash {
	normalized := make([]int, len(lengths))
	total := 0
	for i, l := range lengths {
		normalized[i] = abs(l)
		total += normalized[i]
	}
	if total == 0 {
		return nil
	}
	return &Dash{Array: normalized}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset int) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// IsOn reports whether pixel pos of a line, counted from the pattern
// start, falls in a dash rather than a gap.
func (d *Dash) IsOn(pos int) bool {
	n := d.PatternLength()
	if n == 0 {
		return true
	}
	pos = mod(pos+d.Offset, n)
	for i, l := range d.effectiveArray() {
		if pos < l {
			return i%2 == 0
		}
		pos -= l
	}
	return false
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []int {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]int, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// dashFor returns the dash pattern a pen draws with, or nil for a solid
// line.
func (p Pen) dashFor() *Dash {
	if p.Dash != nil {
		if p.Dash.IsDashed() {
			return p.Dash
		}
		return nil
	}
	if int(p.Style) < len(penDashes) && penDashes[p.Style] != nil {
		return &Dash{Array: penDashes[p.Style]}
	}
	return nil
}
