package types

import (
	"cmp"
	"maps"
	"slices"
)

// Set is an unordered collection of distinct ordered values.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet returns a Set holding values.
func NewSet[T cmp.Ordered](values ...T) Set[T] {
	s := make(Set[T], len(values))
	s.Add(values...)
	return s
}

// Add inserts values. Values already present are ignored.
func (s Set[T]) Add(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the values in ascending order. An empty set yields an empty,
// non-nil slice.
func (s Set[T]) Sorted() []T {
	out := slices.AppendSeq(make([]T, 0, len(s)), maps.Keys(s))
	slices.Sort(out)
	return out
}
