package Queues

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/golang/glog"
)

// circArrQ is a circular buffer. head is the index of the first item, tail the
// index the next Push writes to. head==tail means either empty or full; sz tells
// them apart.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize copies the content to a new buffer of newLen, newLen>=sz. The items are
// unwrapped so that head is 0 afterward.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	glog.V(2).Infof("Queues: resized array queue %d -> %d", len(u.content), newLen)
	u.content = nc
	u.head, u.tail = 0, u.sz%max(newLen, 1)
}

// Shrink the buffer to fit the current items, keeping at least one slot.
func (u *circArrQ[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *circArrQ[T]) Size() int {
	return int(u.sz)
}

// Push item to the back. The buffer grows by half when full.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + u.sz/2 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

// Pop the front item.
func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	return u.content[u.head], nil
}

// Values front to back.
func (u *circArrQ[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.sz)
	for i, j := uint(0), u.head; i < u.sz; i, j = i+1, (j+1)%uint(len(u.content)) {
		vs = append(vs, u.content[j])
	}
	return vs
}

func (u *circArrQ[T]) String() string {
	return Go_Containers.Format("ArrayQueue", u.Values())
}
