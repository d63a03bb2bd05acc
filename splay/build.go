package splay

// Build returns a new tree of n copies of fill, built as a balanced
// binary tree directly rather than via n sequential inserts (which
// would leave the tree as an unbalanced chain until the first splay
// touched it). Grounded on the original homework's recursive `Build`:
// split count into (count/2, (count-1)/2) for the two halves, so the
// result is balanced from the start. Spec SPEC_FULL §9.1.
func Build[V Number](n int, fill V) *Tree[V] {
	t := New[V]()
	t.root = t.build(n, fill, nilID)
	return t
}

func (t *Tree[V]) build(count int, fill V, parent id) id {
	if count == 0 {
		return nilID
	}
	n := t.alloc(fill)
	t.nodes[n].parent = parent
	t.nodes[n].left = t.build(count/2, fill, n)
	t.nodes[n].right = t.build((count-1)/2, fill, n)
	t.update(n)
	return n
}
