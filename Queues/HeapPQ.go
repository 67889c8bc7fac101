package Queues

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Heaps"
	"golang.org/x/exp/constraints"
)

// HeapPQ is a PriorityQueue over an ArrMaxHeap. The heap is held, not
// embedded, so only the PriorityQueue methods are exposed.
type HeapPQ[T any] struct {
	h *Heaps.ArrMaxHeap[T]
}

var _ PriorityQueue[int] = (*HeapPQ[int])(nil)

func NewHeapPQ[T constraints.Ordered]() *HeapPQ[T] {
	return &HeapPQ[T]{Heaps.NewMaxHeap[T]()}
}

// NewHeapPQWith c as the priority order; the largest item under c comes out first.
func NewHeapPQWith[T any](c Go_Containers.Compare[T]) *HeapPQ[T] {
	return &HeapPQ[T]{Heaps.NewMaxHeapWith[T](c, Heaps.DefaultCapacity)}
}

func (u *HeapPQ[T]) Empty() bool {
	return u.h.Empty()
}

// Add [PriorityQueue.Add]
// Time: amortized O(log n)
func (u *HeapPQ[T]) Add(item T) bool {
	return u.h.Add(item)
}

// Remove [PriorityQueue.Remove]
// Time: O(log n)
func (u *HeapPQ[T]) Remove() bool {
	return u.h.Remove() == nil
}

// Peek [PriorityQueue.Peek]
// Time: O(1)
func (u *HeapPQ[T]) Peek() (T, error) {
	if u.h.Empty() {
		return *new(T), &Go_Containers.EmptyStructureError{Op: "Peek"}
	}
	return u.h.PeekTop()
}
