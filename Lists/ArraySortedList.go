package Lists

import (
	"sort"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/golang/glog"
	"golang.org/x/exp/constraints"
)

// DefaultCapacity of an ArraySortedList made without a capacity hint.
const DefaultCapacity = 21

// ArraySortedList is a SortedList in a slice. items[:sz] holds the items;
// len(items) is the capacity, which doubles when full and never shrinks.
// Lookups are binary searches; inserts and removes shift the tail.
type ArraySortedList[T any] struct {
	items []T
	sz    int
	cmp   Go_Containers.Compare[T]
}

var _ SortedList[int] = (*ArraySortedList[int])(nil)

func NewArray[T constraints.Ordered]() *ArraySortedList[T] {
	return NewArrayWith[T](Go_Containers.Ordered[T], DefaultCapacity)
}

// NewArrayWith the given ordering and capacity; capacity<1 means DefaultCapacity.
func NewArrayWith[T any](c Go_Containers.Compare[T], capacity int) *ArraySortedList[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &ArraySortedList[T]{items: make([]T, capacity), cmp: c}
}

func (u *ArraySortedList[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArraySortedList[T]) Size() int {
	return u.sz
}

func (u *ArraySortedList[T]) Cap() int {
	return len(u.items)
}

// upper is the index of the first item greater than v.
func (u *ArraySortedList[T]) upper(v T) int {
	return sort.Search(u.sz, func(i int) bool { return u.cmp(u.items[i], v) > 0 })
}

// lower is the index of the first item not less than v.
func (u *ArraySortedList[T]) lower(v T) int {
	return sort.Search(u.sz, func(i int) bool { return u.cmp(u.items[i], v) >= 0 })
}

// InsertSorted [SortedList.InsertSorted]
// Time: O(n)
func (u *ArraySortedList[T]) InsertSorted(v T) {
	if u.sz == len(u.items) {
		nb := make([]T, len(u.items)<<1)
		copy(nb, u.items)
		glog.V(2).Infof("Lists: grew sorted list capacity %d -> %d", len(u.items), len(nb))
		u.items = nb
	}
	i := u.upper(v)
	copy(u.items[i+1:u.sz+1], u.items[i:u.sz])
	u.items[i] = v
	u.sz++
}

// removeAt index i, shifting the tail down.
func (u *ArraySortedList[T]) removeAt(i int) {
	copy(u.items[i:], u.items[i+1:u.sz])
	u.sz--
	u.items[u.sz] = *new(T)
}

// RemoveSorted [SortedList.RemoveSorted]
// Time: O(n)
func (u *ArraySortedList[T]) RemoveSorted(v T) bool {
	if i := u.lower(v); i < u.sz && u.cmp(u.items[i], v) == 0 {
		u.removeAt(i)
		return true
	}
	return false
}

// Remove [SortedList.Remove]
// Time: O(n-pos)
func (u *ArraySortedList[T]) Remove(pos int) error {
	if pos < 1 || pos > u.sz {
		return invalidIndex("Remove", pos, u.sz)
	}
	u.removeAt(pos - 1)
	return nil
}

// Get [SortedList.Get]
// Time: O(1)
func (u *ArraySortedList[T]) Get(pos int) (T, error) {
	if pos < 1 || pos > u.sz {
		return *new(T), invalidIndex("Get", pos, u.sz)
	}
	return u.items[pos-1], nil
}

// Position [SortedList.Position]
// Time: O(log n)
func (u *ArraySortedList[T]) Position(v T) int {
	i := u.lower(v)
	if i < u.sz && u.cmp(u.items[i], v) == 0 {
		return i + 1
	}
	return -(i + 1)
}

func (u *ArraySortedList[T]) Range(f func(T) bool) {
	for _, v := range u.items[:u.sz] {
		if !f(v) {
			return
		}
	}
}

// Clear the list, keeping the capacity.
func (u *ArraySortedList[T]) Clear() {
	clear(u.items[:u.sz])
	u.sz = 0
}

// Clone copies the items into a new buffer of the same capacity.
func (u *ArraySortedList[T]) Clone() *ArraySortedList[T] {
	items := make([]T, len(u.items))
	copy(items, u.items[:u.sz])
	return &ArraySortedList[T]{items, u.sz, u.cmp}
}

func (u *ArraySortedList[T]) Values() []interface{} {
	vs := make([]interface{}, u.sz)
	for i, v := range u.items[:u.sz] {
		vs[i] = v
	}
	return vs
}

func (u *ArraySortedList[T]) String() string {
	return Go_Containers.Format("ArraySortedList", u.Values())
}
