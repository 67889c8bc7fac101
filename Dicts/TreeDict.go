package Dicts

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

// TreeDict is a Dictionary over a BSTree of entries. Its shape depends on the
// order keys are added in.
type TreeDict[K, V any] struct {
	t  *Trees.BSTree[entry[K, V]]
	sz int
}

var _ Dictionary[int, int] = (*TreeDict[int, int])(nil)

func NewTreeDict[K constraints.Ordered, V any]() *TreeDict[K, V] {
	return NewTreeDictWith[K, V](Go_Containers.Ordered[K])
}

func NewTreeDictWith[K, V any](c Go_Containers.Compare[K]) *TreeDict[K, V] {
	return &TreeDict[K, V]{t: Trees.NewWith(byKey[K, V](c))}
}

func (u *TreeDict[K, V]) Empty() bool {
	return u.sz == 0
}

func (u *TreeDict[K, V]) Size() int {
	return u.sz
}

// Add [Dictionary.Add]. A replaced entry is removed and added again.
// Time: O(D)
func (u *TreeDict[K, V]) Add(k K, v V) bool {
	e := entry[K, V]{k, v}
	if !u.t.Remove(e) {
		u.sz++
	}
	return u.t.Add(e)
}

// Remove [Dictionary.Remove]
// Time: O(D)
func (u *TreeDict[K, V]) Remove(k K) bool {
	if u.t.Remove(entry[K, V]{k: k}) {
		u.sz--
		return true
	}
	return false
}

// Get [Dictionary.Get]
// Time: O(D)
func (u *TreeDict[K, V]) Get(k K) (V, error) {
	e, err := u.t.GetEntry(entry[K, V]{k: k})
	if err != nil {
		return *new(V), getErr(u.sz == 0)
	}
	return e.v, nil
}

func (u *TreeDict[K, V]) Contains(k K) bool {
	return u.t.Contains(entry[K, V]{k: k})
}

func (u *TreeDict[K, V]) Traverse(visit func(K, V) bool) {
	u.t.InOrder(func(e entry[K, V]) bool {
		return visit(e.k, e.v)
	})
}

func (u *TreeDict[K, V]) Keys() []K {
	return keys[K, V](u)
}

func (u *TreeDict[K, V]) Clear() {
	u.t.Clear()
	u.sz = 0
}

// Clone deep copies the tree; the clone has the same shape.
func (u *TreeDict[K, V]) Clone() *TreeDict[K, V] {
	return &TreeDict[K, V]{u.t.Clone(), u.sz}
}

func (u *TreeDict[K, V]) Values() []interface{} {
	return values[K, V](u)
}

func (u *TreeDict[K, V]) String() string {
	return format[K, V]("TreeDict", u)
}
