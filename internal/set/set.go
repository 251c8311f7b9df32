package set

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set provides a wrapper around a map[T]struct{}. The zero value is an empty set.
type Set[T cmp.Ordered] struct {
	values map[T]struct{}
}

// Of returns a set containing the given values.
func Of[T cmp.Ordered](values ...T) Set[T] {
	var s Set[T]
	for _, value := range values {
		s.Insert(value)
	}

	return s
}

// Insert adds the value to the set and reports whether it was not
// contained before.
func (s *Set[T]) Insert(value T) bool {
	if s.values == nil {
		s.values = make(map[T]struct{})
	}

	if _, exists := s.values[value]; exists {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

func (s *Set[T]) Remove(value T) {
	delete(s.values, value)
}

func (s *Set[T]) Has(value T) bool {
	_, exists := s.values[value]
	return exists
}

func (s *Set[T]) Len() int {
	return len(s.values)
}

// Sorted returns the values of the set in ascending order.
func (s *Set[T]) Sorted() []T {
	return slices.Sorted(maps.Keys(s.values))
}

// Without yields the values of s that are not in other, in ascending order.
func (s *Set[T]) Without(other Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range s.Sorted() {
			if other.Has(value) {
				continue
			}

			if !yield(value) {
				return
			}
		}
	}
}
