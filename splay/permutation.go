package splay

// orderedSuffixLen returns the length of the longest suffix of the
// in-order sequence of the subtree rooted at root that is already
// ordered: non-decreasing when wantAsc is true, non-increasing when
// wantAsc is false. It threads a running requiredVal through the
// descent — the value the next element further left must still
// satisfy to extend the run — rather than comparing each node only
// against its immediate right child, so it correctly spans a run that
// crosses from a left subtree into its ancestor.
func (t *Tree[V]) orderedSuffixLen(root id, wantAsc bool) int {
	var required V
	haveRequired := false
	length := 0

	t.push(root)
	for root != nilID {
		if haveRequired {
			var breaksRun bool
			if wantAsc {
				breaksRun = t.nodes[root].val > required
			} else {
				breaksRun = t.nodes[root].val < required
			}
			if breaksRun {
				root = t.nodes[root].right
				t.push(root)
				continue
			}
		}

		right := t.nodes[root].right
		t.push(right)

		extends := right == nilID
		if !extends {
			if wantAsc {
				extends = t.nodes[right].asc &&
					(!haveRequired || t.nodes[right].max <= required) &&
					t.nodes[right].min >= t.nodes[root].val
			} else {
				extends = t.nodes[right].desc &&
					(!haveRequired || t.nodes[right].min >= required) &&
					t.nodes[right].max <= t.nodes[root].val
			}
		}

		if extends {
			required = t.nodes[root].val
			haveRequired = true
			length += 1 + t.size(right)
			root = t.nodes[root].left
			t.push(root)
			continue
		}

		root = right
	}
	return length
}

// countPrefix counts how many elements of the ordered run rooted at
// root — non-decreasing if wantAscending, non-increasing otherwise —
// come strictly before the point where comparison against target
// flips. Because the run's order is already known, this is a binary
// search over tree structure rather than a linear scan: at each node,
// a node satisfying the comparison carries its whole left subtree
// along (all of it lies on the same side of target), and the search
// continues into the child on the side that still might not.
func (t *Tree[V]) countPrefix(root id, target V, wantAscending bool) int {
	t.push(root)
	length := 0
	for root != nilID {
		var before bool
		if wantAscending {
			before = t.nodes[root].val < target
		} else {
			before = t.nodes[root].val > target
		}
		if before {
			length += 1 + t.size(t.nodes[root].left)
			root = t.nodes[root].right
		} else {
			root = t.nodes[root].left
		}
		t.push(root)
	}
	return length
}

// permute is the shared body of NextPermutation and PreviousPermutation:
// given the subtree root of the range being permuted, it rearranges it
// in place into the next (isNext) or previous (!isNext) permutation and
// returns the new subtree root. ok reports whether the range actually
// had a next/previous permutation, i.e. false means it wrapped.
func (t *Tree[V]) permute(root id, isNext bool) (id, bool) {
	if root == nilID {
		return root, false
	}

	// A subtree already non-increasing has no next permutation — it's
	// the last one of its multiset — and wraps to the first (ascending)
	// by reversing whole. Previous permutation mirrors this on a
	// subtree already non-decreasing.
	if isNext && t.nodes[root].desc {
		t.applyRev(root)
		return root, false
	}
	if !isNext && t.nodes[root].asc {
		t.applyRev(root)
		return root, false
	}

	wantAsc := !isNext
	suffixLen := t.orderedSuffixLen(root, wantAsc)

	l, r := t.split(root, t.size(root)-suffixLen)
	l = t.find(l, t.size(l)-1)
	pivotVal := t.nodes[l].val

	swapPos := t.countPrefix(r, pivotVal, wantAsc) - 1
	r = t.find(r, swapPos)

	t.nodes[l].val, t.nodes[r].val = t.nodes[r].val, t.nodes[l].val
	t.update(r)
	t.update(l)
	t.applyRev(r)

	return t.merge(l, r), true
}

// NextPermutation rearranges [start, start+length) into the
// lexicographically next permutation of its current multiset of
// values, wrapping to the lexicographically least arrangement if the
// range is already at its greatest (the decided reading of spec §4.8's
// open question on exhaustion: wrap rather than report failure).
// Reports whether the range actually had a next permutation, i.e.
// false means it wrapped.
func (t *Tree[V]) NextPermutation(start, length int) bool {
	t.checkRange(start, length)
	hadNext := true
	t.withRange(start, length, func(mid id) id {
		var ok bool
		mid, ok = t.permute(mid, true)
		if !ok {
			hadNext = false
		}
		return mid
	})
	return hadNext
}

// PreviousPermutation is NextPermutation's mirror: rearranges
// [start, start+length) into the lexicographically previous
// permutation, wrapping to the greatest arrangement if the range is
// already at its least.
func (t *Tree[V]) PreviousPermutation(start, length int) bool {
	t.checkRange(start, length)
	hadPrev := true
	t.withRange(start, length, func(mid id) id {
		var ok bool
		mid, ok = t.permute(mid, false)
		if !ok {
			hadPrev = false
		}
		return mid
	})
	return hadPrev
}
