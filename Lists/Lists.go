package Lists

import Go_Containers "github.com/g-m-twostay/go-containers"

// SortedList keeps its items in non-decreasing order under its comparator.
// Positions are 1-based: Get(1) is the smallest item.
type SortedList[T any] interface {
	Go_Containers.Container
	//InsertSorted v after every item equal to it.
	InsertSorted(v T)
	//RemoveSorted removes the first item equal to v. Returns false if there's
	//none, in which case the list is unchanged.
	RemoveSorted(v T) bool
	//Remove the item at pos. Fails with *Go_Containers.InvalidIndexError if
	//pos isn't in [1, Size()].
	Remove(pos int) error
	//Get the item at pos. Fails like Remove.
	Get(pos int) (T, error)
	//Position of the first item equal to v. If there's none, it's -p where p
	//is the position v would be inserted at.
	Position(v T) int
	//Range calls f on the items in order until f returns false.
	Range(f func(T) bool)
}

func invalidIndex(op string, pos, size int) error {
	return &Go_Containers.InvalidIndexError{Op: op, Index: pos, Size: size}
}
