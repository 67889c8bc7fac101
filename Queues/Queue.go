package Queues

import Go_Containers "github.com/g-m-twostay/go-containers"

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Go_Containers.Container
	Shrink()
	resize(newLen uint)
}

// PriorityQueue hands out items highest priority first. Highest means largest
// under the comparator the queue was built with.
type PriorityQueue[T any] interface {
	Empty() bool
	//Add always succeeds and returns true.
	Add(item T) bool
	//Remove the highest priority item. Returns false if the queue is empty.
	Remove() bool
	//Peek at the highest priority item. Returns an *EmptyStructureError if
	//the queue is empty.
	Peek() (T, error)
}

// EmptyQueueError is returned by Pop and Peek on an empty Queue. It also
// matches Go_Containers.ErrEmptyStructure.
type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

func (e *EmptyQueueError) Is(target error) bool {
	switch target.(type) {
	case *EmptyQueueError, *Go_Containers.EmptyStructureError:
		return true
	}
	return false
}
