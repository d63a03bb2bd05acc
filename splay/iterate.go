package splay

import "github.com/nextperm/seqtree/iter"

// Iter returns a pull iterator over the tree's values in positional
// order. Unlike At, which splays the visited node to the root on every
// call, Iter does one linear in-order walk with an explicit stack and
// never rotates anything — the right shape for "give me everything
// once" instead of repeated random access.
func (t *Tree[V]) Iter() iter.Iter[V] {
	stack := make([]id, 0, 32)
	cur := t.root
	return func() (V, bool) {
		for cur != nilID {
			t.push(cur)
			stack = append(stack, cur)
			cur = t.nodes[cur].left
		}
		if len(stack) == 0 {
			var zero V
			return zero, false
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur = t.nodes[n].right
		return t.nodes[n].val, true
	}
}
