package Sets

import Go_Containers "github.com/g-m-twostay/go-containers"

// Set of unique elements, unique under the set's comparator.
type Set[E any] interface {
	Go_Containers.Container
	//Put e. Returns false if it was already there.
	Put(E) bool
	Has(E) bool
	//Remove e. Returns false if it wasn't there.
	Remove(E) bool
	//Take removes and returns the smallest element. Fails with
	//*Go_Containers.EmptyStructureError on an empty set.
	Take() (E, error)
	//Range calls f on the elements in ascending order until f returns false.
	Range(func(E) bool)
}

type ExtendedSet[E any] interface {
	Set[E]
	//PutAll elements of s; returns how many were new.
	PutAll(s Set[E]) int
	//RemoveAll elements of s; returns how many were removed.
	RemoveAll(s Set[E]) int
	//Eq holds when both sets have the same elements.
	Eq(s Set[E]) bool
	//Filter returns a new set of the elements f keeps.
	Filter(f func(E) bool) ExtendedSet[E]
}
