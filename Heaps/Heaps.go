package Heaps

import Go_Containers "github.com/g-m-twostay/go-containers"

// Heap is a complete binary tree kept in heap order. The top is the largest
// element under the heap's comparator.
// Methods that return an error only fail with *Go_Containers.EmptyStructureError,
// and only when the heap is empty; the heap is unchanged in that case.
type Heap[T any] interface {
	Go_Containers.Container
	//Height of the complete tree, ceil(log2(Size()+1)).
	Height() int
	//PeekTop returns the top element without removing it.
	PeekTop() (T, error)
	//Add v to the heap. Always returns true.
	Add(v T) bool
	//Remove the top element.
	Remove() error
	//Pop removes and returns the top element.
	Pop() (T, error)
	//Corrupt returns whether some element is larger than its parent.
	Corrupt() bool
}
