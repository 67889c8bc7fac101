package Dicts

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Lists"
	"golang.org/x/exp/constraints"
)

// ArrayDict is a Dictionary over an ArraySortedList of entries. Lookups are
// binary searches; adds and removes shift the entries after the key.
type ArrayDict[K, V any] struct {
	l *Lists.ArraySortedList[entry[K, V]]
}

var _ Dictionary[int, int] = (*ArrayDict[int, int])(nil)

func NewArrayDict[K constraints.Ordered, V any]() *ArrayDict[K, V] {
	return NewArrayDictWith[K, V](Go_Containers.Ordered[K], Lists.DefaultCapacity)
}

// NewArrayDictWith the given key ordering and capacity; capacity<1 means
// Lists.DefaultCapacity.
func NewArrayDictWith[K, V any](c Go_Containers.Compare[K], capacity int) *ArrayDict[K, V] {
	return &ArrayDict[K, V]{Lists.NewArrayWith(byKey[K, V](c), capacity)}
}

func (u *ArrayDict[K, V]) Empty() bool {
	return u.l.Empty()
}

func (u *ArrayDict[K, V]) Size() int {
	return u.l.Size()
}

// Add [Dictionary.Add]
// Time: O(n)
func (u *ArrayDict[K, V]) Add(k K, v V) bool {
	e := entry[K, V]{k, v}
	if p := u.l.Position(e); p > 0 {
		_ = u.l.Remove(p)
	}
	u.l.InsertSorted(e)
	return true
}

// Remove [Dictionary.Remove]
// Time: O(n)
func (u *ArrayDict[K, V]) Remove(k K) bool {
	return u.l.RemoveSorted(entry[K, V]{k: k})
}

// Get [Dictionary.Get]
// Time: O(log n)
func (u *ArrayDict[K, V]) Get(k K) (V, error) {
	if p := u.l.Position(entry[K, V]{k: k}); p > 0 {
		e, err := u.l.Get(p)
		return e.v, err
	}
	return *new(V), getErr(u.l.Empty())
}

func (u *ArrayDict[K, V]) Contains(k K) bool {
	return u.l.Position(entry[K, V]{k: k}) > 0
}

func (u *ArrayDict[K, V]) Traverse(visit func(K, V) bool) {
	u.l.Range(func(e entry[K, V]) bool {
		return visit(e.k, e.v)
	})
}

func (u *ArrayDict[K, V]) Keys() []K {
	return keys[K, V](u)
}

// Clear keeps the capacity.
func (u *ArrayDict[K, V]) Clear() {
	u.l.Clear()
}

func (u *ArrayDict[K, V]) Clone() *ArrayDict[K, V] {
	return &ArrayDict[K, V]{u.l.Clone()}
}

func (u *ArrayDict[K, V]) Values() []interface{} {
	return values[K, V](u)
}

func (u *ArrayDict[K, V]) String() string {
	return format[K, V]("ArrayDict", u)
}
