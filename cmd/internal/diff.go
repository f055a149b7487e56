package internal

import (
	"cmp"
	"maps"
	"slices"
)

// SumValues totals a disagreement tally.
func SumValues(m map[string]int) int {
	sum := 0
	for _, v := range m {
		sum += v
	}
	return sum
}

// SortByCount returns the keys ordered by descending count, ties broken by
// name so report output is stable.
func SortByCount(m map[string]int) []string {
	return slices.SortedFunc(maps.Keys(m), func(a, b string) int {
		if c := cmp.Compare(m[b], m[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}
