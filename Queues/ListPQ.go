package Queues

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Lists"
	"golang.org/x/exp/constraints"
)

// ListPQ is a PriorityQueue over a SortedList kept in descending priority
// order, so the next item out is always at position 1.
type ListPQ[T any] struct {
	l Lists.SortedList[T]
}

var _ PriorityQueue[int] = (*ListPQ[int])(nil)

// NewListPQ backed by a linked sorted list; c is the priority order.
func NewListPQ[T any](c Go_Containers.Compare[T]) *ListPQ[T] {
	return &ListPQ[T]{Lists.NewLinkedWith[T](c.Reverse())}
}

// NewArrayListPQ backed by an array sorted list; c is the priority order.
func NewArrayListPQ[T any](c Go_Containers.Compare[T]) *ListPQ[T] {
	return &ListPQ[T]{Lists.NewArrayWith[T](c.Reverse(), Lists.DefaultCapacity)}
}

// NewOrderedListPQ is NewListPQ with the natural ordering of T.
func NewOrderedListPQ[T constraints.Ordered]() *ListPQ[T] {
	return NewListPQ[T](Go_Containers.Ordered[T])
}

func (u *ListPQ[T]) Empty() bool {
	return u.l.Empty()
}

// Add [PriorityQueue.Add]. Equal items come out in insertion order.
// Time: O(n)
func (u *ListPQ[T]) Add(item T) bool {
	u.l.InsertSorted(item)
	return true
}

// Remove [PriorityQueue.Remove]
// Time: O(1) linked, O(n) array
func (u *ListPQ[T]) Remove() bool {
	return u.l.Remove(1) == nil
}

// Peek [PriorityQueue.Peek]
// Time: O(1)
func (u *ListPQ[T]) Peek() (T, error) {
	if u.l.Empty() {
		return *new(T), &Go_Containers.EmptyStructureError{Op: "Peek"}
	}
	return u.l.Get(1)
}
