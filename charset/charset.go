// Package charset provides immutable sets of 16-bit code units, stored as
// sorted inclusive ranges. Sets are the exchange format between the class
// parser, the minterm partitioner, and the classifier: Ranges yields a
// sorted, ascending, mutually disjoint range list ready for table filling.
package charset

import (
	"fmt"
	"slices"
	"strings"
)

// MaxCode is the highest code unit in the classification domain. The domain
// is UTF-16 code units, so surrogate halves (0xD800-0xDFFF) are ordinary
// members; a supplementary codepoint is handled as its two units.
const MaxCode = 0xFFFF

// Range is an inclusive span of code units. Lo <= Hi always holds for
// ranges inside a Set.
type Range struct {
	Lo, Hi uint16
}

// Set is an immutable set of code units. The zero value is the empty set.
type Set struct {
	ranges []Range
}

// New builds a Set from the given ranges. Input may be unsorted, overlapping
// or adjacent; it is normalized. An inverted range (Lo > Hi) is a caller bug
// and panics.
func New(ranges ...Range) *Set {
	rs := make([]Range, len(ranges))
	copy(rs, ranges)
	return &Set{ranges: normalize(rs)}
}

// Single returns the set containing exactly one code unit.
func Single(code uint16) *Set {
	return &Set{ranges: []Range{{code, code}}}
}

// Span returns the set covering lo..hi inclusive.
func Span(lo, hi uint16) *Set {
	if lo > hi {
		panic(fmt.Sprintf("charset: inverted range [%d, %d]", lo, hi))
	}
	return &Set{ranges: []Range{{lo, hi}}}
}

// Ranges returns the set's ranges, sorted ascending and mutually disjoint.
// The returned slice is the set's backing storage; callers must not modify
// it.
func (s *Set) Ranges() []Range {
	return s.ranges
}

// Contains reports whether code is a member of the set.
func (s *Set) Contains(code uint16) bool {
	n := len(s.ranges)
	if n == 0 {
		return false
	}
	// Probes at or beyond the final range are the common case in practice,
	// so check it before searching.
	if last := s.ranges[n-1]; code >= last.Lo {
		return code <= last.Hi
	}
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if s.ranges[mid].Hi < code {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	r := s.ranges[lo]
	return code >= r.Lo && code <= r.Hi
}

// Count returns the number of code units in the set.
func (s *Set) Count() int {
	n := 0
	for _, r := range s.ranges {
		n += int(r.Hi) - int(r.Lo) + 1
	}
	return n
}

// IsEmpty reports whether the set contains no code units.
func (s *Set) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Min returns the lowest member, or false for the empty set.
func (s *Set) Min() (uint16, bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}
	return s.ranges[0].Lo, true
}

// Max returns the highest member, or false for the empty set.
func (s *Set) Max() (uint16, bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}
	return s.ranges[len(s.ranges)-1].Hi, true
}

// Complement returns the set of all code units in 0..MaxCode not in s.
func (s *Set) Complement() *Set {
	out := make([]Range, 0, len(s.ranges)+1)
	next := 0
	for _, r := range s.ranges {
		if int(r.Lo) > next {
			out = append(out, Range{uint16(next), r.Lo - 1})
		}
		next = int(r.Hi) + 1
	}
	if next <= MaxCode {
		out = append(out, Range{uint16(next), MaxCode})
	}
	return &Set{ranges: out}
}

// Equal reports whether two sets contain exactly the same code units.
func (s *Set) Equal(o *Set) bool {
	return slices.Equal(s.ranges, o.ranges)
}

// String renders the set in class-expression notation, e.g. [0-9a-f] or
// [\x{4e00}-\x{9fff}].
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range s.ranges {
		b.WriteString(formatCode(r.Lo))
		if r.Hi > r.Lo {
			b.WriteByte('-')
			b.WriteString(formatCode(r.Hi))
		}
	}
	b.WriteByte(']')
	return b.String()
}

func formatCode(code uint16) string {
	if code > 0x20 && code < 0x7F {
		switch c := byte(code); c {
		case '\\', ']', '[', '^', '-':
			return `\` + string(c)
		default:
			return string(c)
		}
	}
	return fmt.Sprintf(`\x{%04x}`, code)
}

// normalize sorts ranges ascending and merges overlapping and adjacent
// ones. The input slice is reused.
func normalize(ranges []Range) []Range {
	for _, r := range ranges {
		if r.Lo > r.Hi {
			panic(fmt.Sprintf("charset: inverted range [%d, %d]", r.Lo, r.Hi))
		}
	}
	if len(ranges) == 0 {
		return nil
	}
	slices.SortFunc(ranges, func(a, b Range) int {
		if a.Lo != b.Lo {
			return int(a.Lo) - int(b.Lo)
		}
		return int(a.Hi) - int(b.Hi)
	})
	out := ranges[:1]
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if int(r.Lo) <= int(last.Hi)+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
