package lox

import (
	"cmp"
	"slices"
)

// Set неупорядоченное множество без дубликатов.
type Set[T cmp.Ordered] map[T]struct{}

func NewSet[T cmp.Ordered](items ...T) Set[T] {
	s := make(Set[T], len(items))

	for _, item := range items {
		s.Add(item)
	}

	return s
}

func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

func (s Set[T]) Has(item T) bool {
	_, ok := s[item]

	return ok
}

// Sorted элементы по возрастанию, для детерминированного вывода.
func (s Set[T]) Sorted() []T {
	out := make([]T, 0, len(s))

	for item := range s {
		out = append(out, item)
	}

	slices.Sort(out)

	return out
}
