package compare

import (
	"cmp"
	"slices"
)

// Pointers compares two pointer values for equality.
// Returns true if both are nil, or both are non-nil with equal values.
//
// Example:
//
//	func (c ColumnDefinition) Equal(other ColumnDefinition) bool {
//	    return c.Type == other.Type && compare.Pointers(c.Default, other.Default)
//	}
func Pointers[T comparable](a, b *T) bool {
	if (a != nil) != (b != nil) {
		return false
	}
	if a != nil && *a != *b {
		return false
	}
	return true
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Partition splits the keys of two maps into three disjoint, sorted groups:
// keys only in current (removed), keys only in target (added) and keys in both
// (common). The ordering function decides the sort order of each group.
//
// Example:
//
//	removed, added, common := compare.Partition(oldCols, newCols, strings.Compare)
func Partition[K comparable, V any](current, target map[K]V, order func(a, b K) int) (removed, added, common []K) {
	removed = make([]K, 0)
	added = make([]K, 0)
	common = make([]K, 0)

	for k := range current {
		if _, ok := target[k]; ok {
			common = append(common, k)
		} else {
			removed = append(removed, k)
		}
	}

	for k := range target {
		if _, ok := current[k]; !ok {
			added = append(added, k)
		}
	}

	slices.SortFunc(removed, order)
	slices.SortFunc(added, order)
	slices.SortFunc(common, order)
	return removed, added, common
}
