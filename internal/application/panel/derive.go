package panel

import (
	"sort"
	"strings"
)

// Pure derivation helpers. Each returns a fresh slice and never mutates its
// input, so derived views can be recomputed on every change of the
// collection or the filter criteria.

// SortByOrder returns the items sorted by ascending order key. The sort is
// stable: ties keep their prior relative position.
func SortByOrder[T any](items []T, order func(T) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return order(out[i]) < order(out[j]) })
	return out
}

// Partition splits items into those matching the predicate and the rest,
// both in original order. Every item lands in exactly one half.
func Partition[T any](items []T, pred func(T) bool) (in, out []T) {
	for _, item := range items {
		if pred(item) {
			in = append(in, item)
		} else {
			out = append(out, item)
		}
	}
	return in, out
}

// GroupBy buckets items by the key function, preserving order within each
// bucket.
func GroupBy[T any](items []T, key func(T) string) map[string][]T {
	groups := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Filter returns the items matching the predicate, in original order.
func Filter[T any](items []T, pred func(T) bool) []T {
	var out []T
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Search returns the items whose searchable text contains the query,
// case-insensitively. An empty query matches everything.
func Search[T any](items []T, query string, text func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	return Filter(items, func(item T) bool {
		return strings.Contains(strings.ToLower(text(item)), q)
	})
}
