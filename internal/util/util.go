package util

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// MapsKeysSorted returns the keys of m in ascending order.
func MapsKeysSorted[M ~map[K]V, K constraints.Ordered, V any](m M) []K {
	if m == nil {
		return nil
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
