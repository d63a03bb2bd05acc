package splay

// merge concatenates l and r, in that order, and returns the new root.
// If either side is empty the other is returned unchanged. Otherwise
// the maximum element of l is splayed to l's root (it has no right
// child once pushed), r is attached as its right child, and the result
// is updated. Spec §4.5.
func (t *Tree[V]) merge(l, r id) id {
	if l == nilID {
		return r
	}
	if r == nilID {
		return l
	}
	lsz := t.size(l)
	l = t.find(l, lsz-1)

	t.nodes[l].right = r
	t.nodes[r].parent = l
	t.update(l)
	return l
}

// split splits the tree rooted at root into (T[0:k), T[k:)). Spec §4.5.
func (t *Tree[V]) split(root id, k int) (id, id) {
	if root == nilID {
		return nilID, nilID
	}
	sz := t.size(root)
	if k == 0 {
		return nilID, root
	}
	if k == sz {
		return root, nilID
	}

	n := t.find(root, k)

	l := t.nodes[n].left
	if l != nilID {
		t.nodes[l].parent = nilID
	}
	t.nodes[n].left = nilID
	t.update(n)

	return l, n
}
