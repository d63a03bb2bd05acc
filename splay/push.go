package splay

// push resolves n's own pending lazies against n's stored value, in the
// order spec §4.1 requires: set, then add, then reverse. It schedules
// each one on n's children via applySet/applyAdd/applyRev rather than
// touching their stored values directly — those helpers are also what
// range.go's RangeSet/RangeAdd/RangeReverse call on a subtree root, so
// there is exactly one place that knows how to apply each kind of lazy.
//
// Every algorithm in this package pushes a node before reading its
// val/min/max or rewiring its children — "push before read, on each hop
// of descent."
func (t *Tree[V]) push(n id) {
	if n == nilID {
		return
	}
	v := &t.nodes[n]

	if v.hasSet {
		v.val = v.lazySet
		v.min = v.lazySet
		v.max = v.lazySet
		v.sum = v.lazySet * V(v.size)
		v.asc = true
		v.desc = true

		if v.left != nilID {
			t.applySet(v.left, v.lazySet)
		}
		if v.right != nilID {
			t.applySet(v.right, v.lazySet)
		}
		v.hasSet = false
		v.lazyAdd = 0
	}

	if v.lazyAdd != 0 {
		v.val += v.lazyAdd

		if v.left != nilID {
			t.applyAdd(v.left, v.lazyAdd)
		}
		if v.right != nilID {
			t.applyAdd(v.right, v.lazyAdd)
		}
		v.lazyAdd = 0
	}

	if v.lazyRev {
		v.left, v.right = v.right, v.left

		if v.left != nilID {
			t.applyRev(v.left)
		}
		if v.right != nilID {
			t.applyRev(v.right)
		}
		v.lazyRev = false
	}
}

// applySet schedules a whole-subtree overwrite on n. The aggregate
// fields (sum/min/max/asc/desc) are updated immediately — a caller
// reading them never needs to push first — while n's own stored value
// and any further propagation to n's children wait for push to visit n.
// Set dominates a previously pending add, so lazyAdd is cleared.
func (t *Tree[V]) applySet(n id, val V) {
	v := &t.nodes[n]
	v.hasSet = true
	v.lazySet = val
	v.lazyAdd = 0
	v.min = val
	v.max = val
	v.sum = val * V(v.size)
	v.asc = true
	v.desc = true
}

// applyAdd schedules a whole-subtree increment on n. If n already has a
// pending set, the add folds into that set's value instead of becoming
// a separate add lazy, matching spec §4.1's precedence: set then
// dominates with the post-add value whenever it is eventually pushed.
func (t *Tree[V]) applyAdd(n id, delta V) {
	v := &t.nodes[n]
	if v.hasSet {
		v.lazySet += delta
	} else {
		v.lazyAdd += delta
	}
	v.min += delta
	v.max += delta
	v.sum += delta * V(v.size)
}

// applyRev schedules a whole-subtree reversal on n. sum/min/max are
// unaffected by reordering; asc/desc swap immediately since they
// describe the subtree's current in-order shape.
func (t *Tree[V]) applyRev(n id) {
	v := &t.nodes[n]
	v.lazyRev = !v.lazyRev
	v.asc, v.desc = v.desc, v.asc
}
