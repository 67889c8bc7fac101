package Trees

// A node in the BSTree. Each node is owned by exactly one parent edge or by
// the tree's root; dropping the edge drops the whole subtree.
type node[T any] struct {
	v    T
	l, r *node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.l == nil && n.r == nil
}

// clone the subtree rooted at n in preorder: the node first, then its left
// and right subtrees. Recursive.
// Time: O(n)
func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{n.v, n.l.clone(), n.r.clone()}
}

// height of the subtree rooted at n, 0 for nil. Recursive.
// Time: O(n)
func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.l.height(), n.r.height())
}

// leftmost returns the slot holding the leftmost node of the subtree in *slot.
// *slot mustn't be nil.
func leftmost[T any](slot **node[T]) **node[T] {
	for (*slot).l != nil {
		slot = &(*slot).l
	}
	return slot
}
