// Package minterm compresses the 16-bit code-unit alphabet into the small
// set of equivalence classes (minterms) a symbolic automaton transitions
// over. Partition derives the classes from possibly-overlapping character
// sets, Classifier answers per-unit class lookups in O(1), and Cache reuses
// classifiers across identical partitions.
package minterm

import (
	"fmt"
	"slices"

	"github.com/ieviev/runtime/charset"
)

const (
	tableSize = charset.MaxCode + 1 // one slot per UTF-16 code unit
	asciiSize = 128

	// maxByteClasses is the largest class count whose IDs still fit the
	// byte-wide table: IDs 0..255.
	maxByteClasses = 256
)

// zeroTable backs every classifier built from a single class: every code
// unit maps to class 0. It is allocated once and never written afterwards,
// so any number of classifiers may read it concurrently.
var zeroTable = make([]byte, tableSize)

// Classifier maps UTF-16 code units to minterm class IDs. It is immutable
// after construction and safe for unsynchronized concurrent reads.
type Classifier struct {
	lookup  []byte   // 128 or 65536 slots; nil when wide is in use
	wide    []uint16 // 65536 slots, only when class IDs exceed a byte
	ascii   bool     // no explicit class claims a code unit >= 128
	classes int
}

// NewClassifier builds the lookup table for an ordered minterm partition,
// indexed by class ID. minterms[0] is the default class: code units not
// claimed by any explicit class map to it, and its own ranges are never
// filled into the table. Explicit classes (IDs >= 1) must be mutually
// disjoint, and any content declared for the default class must not
// intersect them. Violations panic: partitions come from the partitioning
// stage, never from user input, so a bad one is a bug upstream.
func NewClassifier(minterms []*charset.Set) *Classifier {
	if len(minterms) == 0 {
		panic("minterm: classifier requires at least the default class")
	}
	if len(minterms) == 1 {
		return &Classifier{lookup: zeroTable, classes: 1}
	}

	checkDisjoint(minterms)

	// Ranges are sorted ascending, so the last range per class decides
	// whether the class claims anything at or above 128.
	ascii := true
	for _, m := range minterms[1:] {
		if rs := m.Ranges(); len(rs) > 0 && rs[len(rs)-1].Hi >= asciiSize {
			ascii = false
			break
		}
	}

	c := &Classifier{ascii: ascii, classes: len(minterms)}
	if len(minterms) > maxByteClasses {
		c.wide = make([]uint16, tableSize)
		for id := 1; id < len(minterms); id++ {
			for _, r := range minterms[id].Ranges() {
				fill(c.wide[r.Lo:int(r.Hi)+1], uint16(id))
			}
		}
		return c
	}

	size := tableSize
	if ascii {
		size = asciiSize
	}
	c.lookup = make([]byte, size)
	for id := 1; id < len(minterms); id++ {
		for _, r := range minterms[id].Ranges() {
			fill(c.lookup[r.Lo:int(r.Hi)+1], byte(id))
		}
	}
	return c
}

// Classify returns the class ID owning the given code unit. This is the
// matching engine's per-character hot path: allocation-free and at most two
// branches ahead of the table read.
func (c *Classifier) Classify(code uint16) int {
	if c.ascii && code >= asciiSize {
		return 0
	}
	if lookup := c.lookup; lookup != nil {
		return int(lookup[code])
	}
	return int(c.wide[code])
}

// AlphabetLen returns the number of classes, the default class included.
// Automaton transition tables are sized by this.
func (c *Classifier) AlphabetLen() int {
	return c.classes
}

// ASCIIOnly reports whether the table is restricted to code units below 128,
// everything above mapping to the default class.
func (c *Classifier) ASCIIOnly() bool {
	return c.ascii
}

// TableBytes returns the memory held by the lookup table. The single-class
// table is shared between classifiers and counted as zero.
func (c *Classifier) TableBytes() int {
	if c.wide != nil {
		return len(c.wide) * 2
	}
	if c.classes == 1 {
		return 0
	}
	return len(c.lookup)
}

// fill writes v into every slot of dst. Filling a contiguous sub-slice per
// range keeps construction free of per-character branching.
func fill[T byte | uint16](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

type claim struct {
	r  charset.Range
	id int
}

// checkDisjoint panics if any code unit is claimed by two classes. The
// default class participates with ID 0: declaring content for it is fine
// (partitions carry the complement there), conflicting with an explicit
// class is not.
func checkDisjoint(minterms []*charset.Set) {
	var claims []claim
	for id, m := range minterms {
		for _, r := range m.Ranges() {
			claims = append(claims, claim{r, id})
		}
	}
	slices.SortFunc(claims, func(a, b claim) int {
		return int(a.r.Lo) - int(b.r.Lo)
	})
	for i := 1; i < len(claims); i++ {
		prev, cur := claims[i-1], claims[i]
		if cur.r.Lo <= prev.r.Hi {
			panic(fmt.Sprintf("minterm: classes %d and %d overlap at %#x", prev.id, cur.id, cur.r.Lo))
		}
	}
}
