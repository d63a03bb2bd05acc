package splay

// direction is which child a splay step descends into next; dirNone
// means "stop, this node is the target" — the same three-value
// direction vocabulary zyedidia-generic/splay/splay.go uses for its own
// predicate-driven splay.
type direction int

const (
	dirNone direction = iota
	dirLeft
	dirRight
)

// rotateLeft rotates n's right child up past n: n's right child becomes
// n's parent, n becomes that node's left child. Pushes n and its parent
// before rewiring (so no in-flight lazy is silently dropped by the
// rewire) and calls update bottom-up on every node whose subtree
// composition changed, exactly as spec §4.3 requires.
func (t *Tree[V]) rotateLeft(n id) {
	p := t.nodes[n].parent
	t.push(p)
	t.push(n)

	r := t.nodes[n].right
	t.push(r)

	if p != nilID {
		if t.nodes[p].left == n {
			t.nodes[p].left = r
		} else {
			t.nodes[p].right = r
		}
	}
	mid := t.nodes[r].left
	t.nodes[r].left = n
	t.nodes[n].right = mid
	if mid != nilID {
		t.nodes[mid].parent = n
	}
	t.nodes[n].parent = r
	t.nodes[r].parent = p

	t.update(n)
	t.update(r)
	t.update(p)
}

// rotateRight is the mirror of rotateLeft: n's left child becomes n's
// parent, n becomes that node's right child.
func (t *Tree[V]) rotateRight(n id) {
	p := t.nodes[n].parent
	t.push(p)
	t.push(n)

	l := t.nodes[n].left
	t.push(l)

	if p != nilID {
		if t.nodes[p].right == n {
			t.nodes[p].right = l
		} else {
			t.nodes[p].left = l
		}
	}
	mid := t.nodes[l].right
	t.nodes[l].right = n
	t.nodes[n].left = mid
	if mid != nilID {
		t.nodes[mid].parent = n
	}
	t.nodes[n].parent = l
	t.nodes[l].parent = p

	t.update(n)
	t.update(l)
	t.update(p)
}

func (t *Tree[V]) isLeftChild(n id) bool {
	return t.nodes[t.nodes[n].parent].left == n
}

// splayToRoot moves n to the root of its own subtree via the classic
// zig / zig-zig / zig-zag sequence of rotations, stopping once n has no
// parent. It does not touch t.root: n's subtree may be a detached piece
// being manipulated by split or merge, not the whole tree, so only
// callers operating on the whole tree (At, SetAt, the find used inside
// withRange's own root argument) assign the result back to t.root.
func (t *Tree[V]) splayToRoot(n id) {
	for t.nodes[n].parent != nilID {
		p := t.nodes[n].parent
		gp := t.nodes[p].parent

		if gp == nilID {
			// zig
			if t.isLeftChild(n) {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
			continue
		}

		nIsLeft := t.isLeftChild(n)
		pIsLeft := t.isLeftChild(p)
		if nIsLeft == pIsLeft {
			// zig-zig
			if pIsLeft {
				t.rotateRight(gp)
				t.rotateRight(p)
			} else {
				t.rotateLeft(gp)
				t.rotateLeft(p)
			}
		} else {
			// zig-zag
			if nIsLeft {
				t.rotateRight(p)
				t.rotateLeft(t.nodes[n].parent)
			} else {
				t.rotateLeft(p)
				t.rotateRight(t.nodes[n].parent)
			}
		}
	}
}

// descend walks down from root, pushing each node before inspecting it,
// following pred's direction until pred reports dirNone, and splays the
// node it stops on to become the root of this subtree, returning it.
// This is the one mechanism that positional find (find.go) and the
// permutation engine's pivot/swap descents (permutation.go) all share —
// the direct generalization of the teacher's
// splayNth/splayAt/splayLowerbound, each of which is just a different
// pred over the same splay(pred) primitive. root may be any detached
// subtree, not just t.root — split/merge rely on that to operate on
// isolated pieces of the tree.
func (t *Tree[V]) descend(root id, pred func(n id) direction) id {
	if root == nilID {
		return nilID
	}
	n := root
	t.push(n)
	for {
		switch pred(n) {
		case dirLeft:
			n = t.nodes[n].left
		case dirRight:
			n = t.nodes[n].right
		default:
			t.splayToRoot(n)
			return n
		}
		t.push(n)
	}
}
