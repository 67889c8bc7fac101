package Sets

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Dicts"
	"golang.org/x/exp/constraints"
)

// DictSet is a Set stored as the keys of a Dictionary. Its performance is
// that of the Dictionary it's made from.
type DictSet[E any] struct {
	d  Dicts.Dictionary[E, struct{}]
	mk func() Dicts.Dictionary[E, struct{}]
}

var _ ExtendedSet[int] = (*DictSet[int])(nil)

// NewDictSet over dictionaries made by mk, which must return an empty one
// each call. Filter uses it for the new set.
func NewDictSet[E any](mk func() Dicts.Dictionary[E, struct{}]) *DictSet[E] {
	return &DictSet[E]{mk(), mk}
}

// NewBTreeSet of ordered elements over a BTreeDict.
func NewBTreeSet[E constraints.Ordered]() *DictSet[E] {
	return NewDictSet(func() Dicts.Dictionary[E, struct{}] {
		return Dicts.NewBTreeDict[E, struct{}]()
	})
}

// NewTreeSet of ordered elements over a TreeDict.
func NewTreeSet[E constraints.Ordered]() *DictSet[E] {
	return NewDictSet(func() Dicts.Dictionary[E, struct{}] {
		return Dicts.NewTreeDict[E, struct{}]()
	})
}

func (u *DictSet[E]) Empty() bool {
	return u.d.Empty()
}

func (u *DictSet[E]) Size() int {
	return u.d.Size()
}

func (u *DictSet[E]) Clear() {
	u.d.Clear()
}

func (u *DictSet[E]) Put(e E) bool {
	if u.d.Contains(e) {
		return false
	}
	return u.d.Add(e, struct{}{})
}

func (u *DictSet[E]) Has(e E) bool {
	return u.d.Contains(e)
}

func (u *DictSet[E]) Remove(e E) bool {
	return u.d.Remove(e)
}

func (u *DictSet[E]) Take() (e E, err error) {
	if u.d.Empty() {
		return e, &Go_Containers.EmptyStructureError{Op: "Take"}
	}
	u.d.Traverse(func(k E, _ struct{}) bool {
		e = k
		return false
	})
	u.d.Remove(e)
	return e, nil
}

func (u *DictSet[E]) Range(f func(E) bool) {
	u.d.Traverse(func(k E, _ struct{}) bool {
		return f(k)
	})
}

func (u *DictSet[E]) PutAll(s Set[E]) (n int) {
	s.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

func (u *DictSet[E]) RemoveAll(s Set[E]) (n int) {
	s.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

func (u *DictSet[E]) Eq(s Set[E]) bool {
	if u.Size() != s.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.Has(e)
		return eq
	})
	return eq
}

func (u *DictSet[E]) Filter(f func(E) bool) ExtendedSet[E] {
	n := NewDictSet(u.mk)
	u.Range(func(e E) bool {
		if f(e) {
			n.d.Add(e, struct{}{})
		}
		return true
	})
	return n
}

// Values in ascending order.
func (u *DictSet[E]) Values() []interface{} {
	vs := make([]interface{}, 0, u.d.Size())
	u.Range(func(e E) bool {
		vs = append(vs, e)
		return true
	})
	return vs
}

func (u *DictSet[E]) String() string {
	return Go_Containers.Format("DictSet", u.Values())
}
