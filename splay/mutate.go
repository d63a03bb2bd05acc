package splay

// Insert places val at position i, shifting everything currently at or
// after i one place to the right. i == Len() appends. Spec §4.7.
//
// The new node is allocated before the tree is split so that a slice
// growth inside alloc never invalidates an id computed from the
// pre-split tree — alloc never touches existing links, only appends or
// recycles a free slot, per node.go's allocation contract.
func (t *Tree[V]) Insert(i int, val V) {
	if i < 0 || i > t.Len() {
		panic(ErrOutOfRange{Start: i, Length: 0, Size: t.Len()})
	}
	n := t.alloc(val)
	l, r := t.split(t.root, i)
	t.root = t.merge(t.merge(l, n), r)
}

// Erase removes the element at position i, shifting everything after it
// one place to the left. Spec §4.7.
func (t *Tree[V]) Erase(i int) {
	if i < 0 || i >= t.Len() {
		panic(ErrOutOfRange{Start: i, Length: 1, Size: t.Len()})
	}
	l, rest := t.split(t.root, i)
	mid, r := t.split(rest, 1)
	t.release(mid)
	t.root = t.merge(l, r)
}
