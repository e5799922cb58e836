// Package filter composes profile predicates for the dashboards.
package filter

// Predicate reports whether an item should be kept.
type Predicate[T any] func(T) bool

// All is the conjunction of ps. With no predicates every item matches.
func All[T any](ps ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range ps {
			if p != nil && !p(item) {
				return false
			}
		}
		return true
	}
}

// Apply returns the items matching p, preserving order.
func Apply[T any](items []T, p Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if p(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns how many items match p.
func Count[T any](items []T, p Predicate[T]) int {
	n := 0
	for _, item := range items {
		if p(item) {
			n++
		}
	}
	return n
}
