package Dicts

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// DefaultDegree of a BTreeDict made without a degree.
const DefaultDegree = 32

// BTreeDict is a Dictionary over a btree.BTreeG of entries.
type BTreeDict[K, V any] struct {
	t *btree.BTreeG[entry[K, V]]
}

var _ Dictionary[int, int] = (*BTreeDict[int, int])(nil)

func NewBTreeDict[K constraints.Ordered, V any]() *BTreeDict[K, V] {
	return NewBTreeDictWith[K, V](Go_Containers.Ordered[K], DefaultDegree)
}

// NewBTreeDictWith the given key ordering and degree; degree<2 means
// DefaultDegree.
func NewBTreeDictWith[K, V any](c Go_Containers.Compare[K], degree int) *BTreeDict[K, V] {
	if degree < 2 {
		degree = DefaultDegree
	}
	return &BTreeDict[K, V]{btree.NewG(degree, func(a, b entry[K, V]) bool {
		return c(a.k, b.k) < 0
	})}
}

func (u *BTreeDict[K, V]) Empty() bool {
	return u.t.Len() == 0
}

func (u *BTreeDict[K, V]) Size() int {
	return u.t.Len()
}

// Add [Dictionary.Add]
// Time: O(log n)
func (u *BTreeDict[K, V]) Add(k K, v V) bool {
	u.t.ReplaceOrInsert(entry[K, V]{k, v})
	return true
}

// Remove [Dictionary.Remove]
// Time: O(log n)
func (u *BTreeDict[K, V]) Remove(k K) bool {
	_, ok := u.t.Delete(entry[K, V]{k: k})
	return ok
}

// Get [Dictionary.Get]
// Time: O(log n)
func (u *BTreeDict[K, V]) Get(k K) (V, error) {
	if e, ok := u.t.Get(entry[K, V]{k: k}); ok {
		return e.v, nil
	}
	return *new(V), getErr(u.t.Len() == 0)
}

func (u *BTreeDict[K, V]) Contains(k K) bool {
	return u.t.Has(entry[K, V]{k: k})
}

func (u *BTreeDict[K, V]) Traverse(visit func(K, V) bool) {
	u.t.Ascend(func(e entry[K, V]) bool {
		return visit(e.k, e.v)
	})
}

func (u *BTreeDict[K, V]) Keys() []K {
	return keys[K, V](u)
}

// Clear hands the nodes to the tree's freelist for reuse.
func (u *BTreeDict[K, V]) Clear() {
	u.t.Clear(true)
}

// Clone is lazy: the two dictionaries share nodes until either one writes.
// Time: O(1)
func (u *BTreeDict[K, V]) Clone() *BTreeDict[K, V] {
	return &BTreeDict[K, V]{u.t.Clone()}
}

func (u *BTreeDict[K, V]) Values() []interface{} {
	return values[K, V](u)
}

func (u *BTreeDict[K, V]) String() string {
	return format[K, V]("BTreeDict", u)
}
