package Dicts

import (
	"fmt"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

// Dictionary maps unique keys to values, ordered by a key comparator. Values
// returns the values in ascending key order.
type Dictionary[K, V any] interface {
	Go_Containers.Container
	//Add k with v, replacing the value if k is already present. Always true.
	Add(k K, v V) bool
	//Remove k. Returns false if k isn't present.
	Remove(k K) bool
	//Get the value of k. Fails with *Go_Containers.EmptyStructureError on an
	//empty dictionary and *Go_Containers.NotFoundError when k is absent.
	Get(k K) (V, error)
	Contains(k K) bool
	//Traverse calls visit on each pair in ascending key order until visit
	//returns false.
	Traverse(visit func(K, V) bool)
	//Keys in ascending order.
	Keys() []K
}

type entry[K, V any] struct {
	k K
	v V
}

// byKey orders entries by k alone, so a probe entry{k: k} finds the stored one.
func byKey[K, V any](c Go_Containers.Compare[K]) Go_Containers.Compare[entry[K, V]] {
	return func(a, b entry[K, V]) int {
		return c(a.k, b.k)
	}
}

func getErr(empty bool) error {
	if empty {
		return &Go_Containers.EmptyStructureError{Op: "Get"}
	}
	return &Go_Containers.NotFoundError{Op: "Get"}
}

func keys[K, V any](d Dictionary[K, V]) []K {
	ks := make([]K, 0, d.Size())
	d.Traverse(func(k K, _ V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

func values[K, V any](d Dictionary[K, V]) []interface{} {
	vs := make([]interface{}, 0, d.Size())
	d.Traverse(func(_ K, v V) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// format as Name[k1:v1 k2:v2].
func format[K, V any](name string, d Dictionary[K, V]) string {
	ps := make([]interface{}, 0, d.Size())
	d.Traverse(func(k K, v V) bool {
		ps = append(ps, fmt.Sprintf("%v:%v", k, v))
		return true
	})
	return Go_Containers.Format(name, ps)
}
