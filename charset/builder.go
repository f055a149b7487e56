package charset

// Builder accumulates code units and ranges before normalizing them into a
// Set. The zero value is ready to use.
type Builder struct {
	ranges []Range
}

// Add includes a single code unit.
func (b *Builder) Add(code uint16) {
	b.ranges = append(b.ranges, Range{code, code})
}

// AddRange includes lo..hi inclusive. Panics if lo > hi.
func (b *Builder) AddRange(lo, hi uint16) {
	if lo > hi {
		panic("charset: inverted range in AddRange")
	}
	b.ranges = append(b.ranges, Range{lo, hi})
}

// AddSet includes every member of s.
func (b *Builder) AddSet(s *Set) {
	b.ranges = append(b.ranges, s.ranges...)
}

// Build normalizes the accumulated ranges into a Set. The builder may keep
// accumulating afterwards; the returned Set is independent.
func (b *Builder) Build() *Set {
	rs := make([]Range, len(b.ranges))
	copy(rs, b.ranges)
	return &Set{ranges: normalize(rs)}
}
