package minterm

import (
	"errors"
	"fmt"

	"github.com/ieviev/runtime/charset"
)

// MaxSets is the largest number of input sets Partition accepts: membership
// signatures carry one bit per input set in a single word.
const MaxSets = 64

// ErrTooManySets is returned when a partition request exceeds MaxSets.
var ErrTooManySets = errors.New("minterm: too many input sets")

// Partition derives the minterms of the given, possibly overlapping, sets:
// the equivalence classes of "belongs to exactly the same inputs". Index 0
// of the result is the complement of the union of all inputs (empty when
// they cover the whole domain); explicit classes are numbered by first
// appearance in ascending code order, so identical input always yields an
// identical partition. The result satisfies NewClassifier's construction
// contract.
func Partition(sets []*charset.Set) ([]*charset.Set, error) {
	if len(sets) > MaxSets {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManySets, len(sets), MaxSets)
	}

	sig := make([]uint64, tableSize)
	for i, s := range sets {
		bit := uint64(1) << i
		for _, r := range s.Ranges() {
			for code := int(r.Lo); code <= int(r.Hi); code++ {
				sig[code] |= bit
			}
		}
	}

	// Walk maximal runs of equal signatures, handing each distinct
	// signature the next class ID. Signature 0 is the default class.
	ids := map[uint64]int{0: 0}
	builders := []*charset.Builder{{}}
	for code := 0; code < tableSize; {
		cur := sig[code]
		end := code
		for end+1 < tableSize && sig[end+1] == cur {
			end++
		}
		id, ok := ids[cur]
		if !ok {
			id = len(builders)
			ids[cur] = id
			builders = append(builders, &charset.Builder{})
		}
		builders[id].AddRange(uint16(code), uint16(end))
		code = end + 1
	}

	out := make([]*charset.Set, len(builders))
	for i, b := range builders {
		out[i] = b.Build()
	}
	return out, nil
}
