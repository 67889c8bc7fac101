package Heaps

import (
	"math/bits"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/golang/glog"
	"golang.org/x/exp/constraints"
)

// DefaultCapacity of a heap made without a capacity hint.
const DefaultCapacity = 21

// ArrMaxHeap is a max heap stored in a slice. items[:sz] is the occupied
// prefix; len(items) is the capacity. The capacity doubles when full and never
// shrinks, not even on Clear.
type ArrMaxHeap[T any] struct {
	items []T
	sz    int
	cmp   Go_Containers.Compare[T]
}

var _ Heap[int] = (*ArrMaxHeap[int])(nil)

// NewMaxHeap using the natural ordering of T.
func NewMaxHeap[T constraints.Ordered]() *ArrMaxHeap[T] {
	return NewMaxHeapWith[T](Go_Containers.Ordered[T], DefaultCapacity)
}

// NewMaxHeapWith the given ordering and initial capacity. capacity<1 means
// DefaultCapacity.
func NewMaxHeapWith[T any](c Go_Containers.Compare[T], capacity int) *ArrMaxHeap[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &ArrMaxHeap[T]{items: make([]T, capacity), cmp: c}
}

func parent(i int) int { return (i - 1) >> 1 }
func left(i int) int   { return i<<1 + 1 }

func (u *ArrMaxHeap[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrMaxHeap[T]) Size() int {
	return u.sz
}

// Cap of the backing buffer.
func (u *ArrMaxHeap[T]) Cap() int {
	return len(u.items)
}

// Height [Heap.Height]
// Time: O(1)
func (u *ArrMaxHeap[T]) Height() int {
	return bits.Len(uint(u.sz))
}

// PeekTop [Heap.PeekTop]
// Time: O(1)
func (u *ArrMaxHeap[T]) PeekTop() (T, error) {
	if u.sz == 0 {
		return *new(T), &Go_Containers.EmptyStructureError{Op: "PeekTop"}
	}
	return u.items[0], nil
}

// grow doubles the buffer.
func (u *ArrMaxHeap[T]) grow() {
	nb := make([]T, len(u.items)<<1)
	copy(nb, u.items)
	glog.V(2).Infof("Heaps: grew heap capacity %d -> %d", len(u.items), len(nb))
	u.items = nb
}

// Add [Heap.Add]. The new element is placed after the last occupied slot and
// sifted up while it is strictly larger than its parent.
// Time: amortized O(log n)
func (u *ArrMaxHeap[T]) Add(v T) bool {
	if u.sz == len(u.items) {
		u.grow()
	}
	i := u.sz
	for u.items[i] = v; i > 0; {
		p := parent(i)
		if u.cmp(u.items[i], u.items[p]) <= 0 {
			break
		}
		u.items[i], u.items[p] = u.items[p], u.items[i]
		i = p
	}
	u.sz++
	return true
}

// siftDown the element at i until it's no smaller than both of its children.
// The right child is chosen only when it exists and is strictly larger than
// the left one.
func (u *ArrMaxHeap[T]) siftDown(i int) {
	for l := left(i); l < u.sz; l = left(i) {
		c := l
		if r := l + 1; r < u.sz && u.cmp(u.items[r], u.items[l]) > 0 {
			c = r
		}
		if u.cmp(u.items[c], u.items[i]) <= 0 {
			return
		}
		u.items[i], u.items[c] = u.items[c], u.items[i]
		i = c
	}
}

// Remove [Heap.Remove]. The last element replaces the top and is sifted down.
// Time: O(log n)
func (u *ArrMaxHeap[T]) Remove() error {
	if u.sz == 0 {
		return &Go_Containers.EmptyStructureError{Op: "Remove"}
	}
	u.sz--
	u.items[0] = u.items[u.sz]
	u.items[u.sz] = *new(T)
	u.siftDown(0)
	return nil
}

// Pop [Heap.Pop]
// Time: O(log n)
func (u *ArrMaxHeap[T]) Pop() (T, error) {
	v, e := u.PeekTop()
	if e == nil {
		e = u.Remove()
	}
	return v, e
}

// Clear the heap. The capacity is kept; the vacated slots are zeroed so they
// don't hold on to references.
func (u *ArrMaxHeap[T]) Clear() {
	clear(u.items[:u.sz])
	u.sz = 0
}

// Clone copies the occupied prefix into a new buffer of the same capacity.
// Time: O(n)
func (u *ArrMaxHeap[T]) Clone() *ArrMaxHeap[T] {
	items := make([]T, len(u.items))
	copy(items, u.items[:u.sz])
	return &ArrMaxHeap[T]{items: items, sz: u.sz, cmp: u.cmp}
}

// Values in storage order, which is the level order of the tree.
func (u *ArrMaxHeap[T]) Values() []interface{} {
	vs := make([]interface{}, u.sz)
	for i, v := range u.items[:u.sz] {
		vs[i] = v
	}
	return vs
}

func (u *ArrMaxHeap[T]) String() string {
	return Go_Containers.Format("ArrMaxHeap", u.Values())
}

// Corrupt [Heap.Corrupt]
// Time: O(n)
func (u *ArrMaxHeap[T]) Corrupt() bool {
	for i := 1; i < u.sz; i++ {
		if u.cmp(u.items[parent(i)], u.items[i]) < 0 {
			return true
		}
	}
	return false
}
