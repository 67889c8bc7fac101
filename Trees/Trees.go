package Trees

import Go_Containers "github.com/g-m-twostay/go-containers"

// Tree represents A binary tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value and shouldn't be used.
// Receivers that return an error fail with *Go_Containers.EmptyStructureError
// on an empty tree and *Go_Containers.NotFoundError when the tree has no
// matching element; a failed call never modifies the tree.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	Go_Containers.Container
	//Height of the tree: 0 when empty, otherwise 1+max(height(l), height(r)).
	Height() int
	//RootData returns the element at the root.
	RootData() (T, error)
	//Add v to the Tree. Returning true if successful, false otherwise.
	//Exact behavior depend on implementation.
	Add(v T) bool
	//Remove one element equal to v. Returns false if there's no such element,
	//in which case the tree is unchanged.
	Remove(v T) bool
	//GetEntry returns the stored element equal to v.
	GetEntry(v T) (T, error)
	//Contains an element equal to v.
	Contains(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//InOrder calls visit on each element in non-decreasing order until visit
	//returns false. visit gets a copy of the element; changing it doesn't
	//change the tree. The tree must not be modified during the traversal.
	InOrder(visit func(T) bool)
	//PreOrder is like InOrder but visits a node before its subtrees.
	PreOrder(visit func(T) bool)
	//PostOrder is like InOrder but visits a node after its subtrees.
	PostOrder(visit func(T) bool)
	//LevelOrder is like InOrder but visits the tree level by level, left to right.
	LevelOrder(visit func(T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
