package Go_Containers

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Compare is a three-way ordering of T: negative if a<b, zero if a==b,
// positive if a>b. It must be a total order; the containers in this module
// silently corrupt if it isn't.
type Compare[T any] func(a, b T) int

// Ordered is the natural ordering of T.
func Ordered[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Reverse returns the ordering with the sign flipped.
func (c Compare[T]) Reverse() Compare[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// FromComparator adapts a gods comparator. The comparator will panic on
// type assertion if it doesn't handle T.
func FromComparator[T any](c utils.Comparator) Compare[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}

// Comparator is the inverse of FromComparator.
func (c Compare[T]) Comparator() utils.Comparator {
	return func(a, b interface{}) int {
		return c(a.(T), b.(T))
	}
}
