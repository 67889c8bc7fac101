package Lists

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
	"golang.org/x/exp/constraints"
)

type node[T any] struct {
	v  T
	nx *node[T]
}

// LinkedSortedList is a singly linked SortedList. head is a sentinel whose
// value is never read, so the first item is head.nx.
type LinkedSortedList[T any] struct {
	head node[T]
	sz   int
	cmp  Go_Containers.Compare[T]
}

var _ SortedList[int] = (*LinkedSortedList[int])(nil)

func NewLinked[T constraints.Ordered]() *LinkedSortedList[T] {
	return NewLinkedWith[T](Go_Containers.Ordered[T])
}

func NewLinkedWith[T any](c Go_Containers.Compare[T]) *LinkedSortedList[T] {
	return &LinkedSortedList[T]{cmp: c}
}

func (u *LinkedSortedList[T]) Empty() bool {
	return u.sz == 0
}

func (u *LinkedSortedList[T]) Size() int {
	return u.sz
}

// before returns the node after which pos would go, pos in [1, sz+1].
func (u *LinkedSortedList[T]) before(pos int) *node[T] {
	prev := &u.head
	for ; pos > 1; pos-- {
		prev = prev.nx
	}
	return prev
}

// InsertSorted [SortedList.InsertSorted]
// Time: O(n)
func (u *LinkedSortedList[T]) InsertSorted(v T) {
	prev := &u.head
	for prev.nx != nil && u.cmp(prev.nx.v, v) <= 0 {
		prev = prev.nx
	}
	prev.nx = &node[T]{v, prev.nx}
	u.sz++
}

// RemoveSorted [SortedList.RemoveSorted]
// Time: O(n)
func (u *LinkedSortedList[T]) RemoveSorted(v T) bool {
	prev := &u.head
	for prev.nx != nil && u.cmp(prev.nx.v, v) < 0 {
		prev = prev.nx
	}
	if prev.nx == nil || u.cmp(prev.nx.v, v) != 0 {
		return false
	}
	prev.nx = prev.nx.nx
	u.sz--
	return true
}

// Remove [SortedList.Remove]. Removing position 1 is O(1).
// Time: O(pos)
func (u *LinkedSortedList[T]) Remove(pos int) error {
	if pos < 1 || pos > u.sz {
		return invalidIndex("Remove", pos, u.sz)
	}
	prev := u.before(pos)
	prev.nx = prev.nx.nx
	u.sz--
	return nil
}

// Get [SortedList.Get]
// Time: O(pos)
func (u *LinkedSortedList[T]) Get(pos int) (T, error) {
	if pos < 1 || pos > u.sz {
		return *new(T), invalidIndex("Get", pos, u.sz)
	}
	return u.before(pos).nx.v, nil
}

// Position [SortedList.Position]
// Time: O(n)
func (u *LinkedSortedList[T]) Position(v T) int {
	p := 1
	cur := u.head.nx
	for ; cur != nil && u.cmp(cur.v, v) < 0; cur = cur.nx {
		p++
	}
	if cur == nil || u.cmp(cur.v, v) != 0 {
		return -p
	}
	return p
}

func (u *LinkedSortedList[T]) Range(f func(T) bool) {
	for cur := u.head.nx; cur != nil && f(cur.v); cur = cur.nx {
	}
}

func (u *LinkedSortedList[T]) Clear() {
	u.head.nx, u.sz = nil, 0
}

// Clone copies the chain so the two lists share no nodes.
// Time: O(n)
func (u *LinkedSortedList[T]) Clone() *LinkedSortedList[T] {
	c := &LinkedSortedList[T]{sz: u.sz, cmp: u.cmp}
	tail := &c.head
	for cur := u.head.nx; cur != nil; cur = cur.nx {
		tail.nx = &node[T]{v: cur.v}
		tail = tail.nx
	}
	return c
}

func (u *LinkedSortedList[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.sz)
	u.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func (u *LinkedSortedList[T]) String() string {
	return Go_Containers.Format("LinkedSortedList", u.Values())
}
