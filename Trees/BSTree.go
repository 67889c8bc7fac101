package Trees

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Queues"
	"golang.org/x/exp/constraints"
)

// BSTree is a plain binary search tree. No balancing is done, so the height
// D is O(n) in the worst case (sorted input) and O(log n) on average for
// random input.
// For every node, everything in the left subtree is strictly less than the
// node and everything in the right subtree is greater or equal. Equal
// elements are allowed and are always added to the right, so among equal
// elements the one closest to the root was added first.
// The size isn't cached; Size walks the tree.
type BSTree[T any] struct {
	root *node[T]
	cmp  Go_Containers.Compare[T]
}

var _ Tree[int] = (*BSTree[int])(nil)

// New BSTree ordered by the natural ordering of T.
func New[T constraints.Ordered]() *BSTree[T] {
	return NewWith[T](Go_Containers.Ordered[T])
}

// NewWith returns an empty BSTree ordered by c.
func NewWith[T any](c Go_Containers.Compare[T]) *BSTree[T] {
	return &BSTree[T]{cmp: c}
}

// NewWithRoot returns a BSTree ordered by c holding the single element v.
func NewWithRoot[T any](c Go_Containers.Compare[T], v T) *BSTree[T] {
	return &BSTree[T]{&node[T]{v: v}, c}
}

func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Size [Tree.Size]
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Size() int {
	n := 0
	u.InOrder(func(T) bool {
		n++
		return true
	})
	return n
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() int {
	return u.root.height()
}

// RootData [Tree.RootData]
// Time: O(1)
func (u *BSTree[T]) RootData() (T, error) {
	if u.root == nil {
		return *new(T), &Go_Containers.EmptyStructureError{Op: "RootData"}
	}
	return u.root.v, nil
}

// Add [Tree.Add]. v is always added as a new leaf: left of nodes it's less
// than, right of everything else. Always returns true.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Add(v T) bool {
	cur := &u.root
	for *cur != nil {
		if u.cmp(v, (*cur).v) < 0 {
			cur = &(*cur).l
		} else {
			cur = &(*cur).r
		}
	}
	*cur = &node[T]{v: v}
	return true
}

// find returns the slot holding the first node equal to v on the search path,
// or nil.
func (u *BSTree[T]) find(v T) **node[T] {
	for cur := &u.root; *cur != nil; {
		if c := u.cmp(v, (*cur).v); c < 0 {
			cur = &(*cur).l
		} else if c == 0 {
			return cur
		} else {
			cur = &(*cur).r
		}
	}
	return nil
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Contains(v T) bool {
	return u.find(v) != nil
}

// GetEntry [Tree.GetEntry]. When several elements equal v, the one closest
// to the root is returned.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) GetEntry(v T) (T, error) {
	if u.root == nil {
		return *new(T), &Go_Containers.EmptyStructureError{Op: "GetEntry"}
	}
	if s := u.find(v); s != nil {
		return (*s).v, nil
	}
	return *new(T), &Go_Containers.NotFoundError{Op: "GetEntry"}
}

// removeNode removes the node in *slot:
//   - a leaf is dropped;
//   - a node with one child is replaced by that child;
//   - a node with two children takes the value of its inorder successor S, the
//     leftmost node of its right subtree, and S is removed instead. S has no
//     left child so that removal is one of the cases above.
func (u *BSTree[T]) removeNode(slot **node[T]) {
	n := *slot
	if n.isLeaf() {
		*slot = nil
	} else if n.l == nil {
		*slot = n.r
	} else if n.r == nil {
		*slot = n.l
	} else {
		s := leftmost(&n.r)
		n.v = (*s).v
		u.removeNode(s)
	}
}

// Remove [Tree.Remove]. The node removed is the one GetEntry(v) would return.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) bool {
	if s := u.find(v); s != nil {
		u.removeNode(s)
		return true
	}
	return false
}

// Clear the tree.
func (u *BSTree[T]) Clear() {
	u.root = nil
}

// Clone returns a deep copy sharing no nodes with u. Recursive.
// Time: O(n)
func (u *BSTree[T]) Clone() *BSTree[T] {
	return &BSTree[T]{u.root.clone(), u.cmp}
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return (*leftmost(&u.root)).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// InOrder [Tree.InOrder]. Uses an explicit stack, so degenerate trees don't
// deepen the call stack.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) InOrder(visit func(T) bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !visit(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// PreOrder [Tree.PreOrder]
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PreOrder(visit func(T) bool) {
	if u.root == nil {
		return
	}
	for st := []*node[T]{u.root}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !visit(cur.v) {
			return
		}
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
}

// PostOrder [Tree.PostOrder]
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PostOrder(visit func(T) bool) {
	var st []*node[T]
	var last *node[T]
	for cur := u.root; cur != nil || len(st) > 0; {
		if cur != nil {
			st = append(st, cur)
			cur = cur.l
			continue
		}
		top := st[len(st)-1]
		if top.r != nil && top.r != last {
			cur = top.r
			continue
		}
		if !visit(top.v) {
			return
		}
		last = top
		st = st[:len(st)-1]
	}
}

// LevelOrder [Tree.LevelOrder]
// Time: O(n); Space: O(width)
func (u *BSTree[T]) LevelOrder(visit func(T) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*node[T]](8)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if !visit(cur.v) {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

// Values in non-decreasing order.
func (u *BSTree[T]) Values() []interface{} {
	var vs []interface{}
	u.InOrder(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func (u *BSTree[T]) String() string {
	return Go_Containers.Format("BSTree", u.Values())
}

// bound is a node paired with the half-open interval its value must fall in. A nil
// bound is unbounded; lo is inclusive, hi is exclusive.
type bound[T any] struct {
	n      *node[T]
	lo, hi *T
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Corrupt() bool {
	if u.root == nil {
		return false
	}
	for st := []bound[T]{{n: u.root}}; len(st) > 0; {
		b := st[len(st)-1]
		st = st[:len(st)-1]
		if (b.lo != nil && u.cmp(b.n.v, *b.lo) < 0) || (b.hi != nil && u.cmp(b.n.v, *b.hi) >= 0) {
			return true
		}
		if b.n.l != nil {
			st = append(st, bound[T]{b.n.l, b.lo, &b.n.v})
		}
		if b.n.r != nil {
			st = append(st, bound[T]{b.n.r, &b.n.v, b.hi})
		}
	}
	return false
}
