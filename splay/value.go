package splay

import (
	g "github.com/zyedidia/generic"
	"golang.org/x/exp/constraints"
)

// Number is the constraint satisfied by the element type of a Tree:
// totally ordered and additively grouped (+, -, 0), which is exactly
// what range-add, range-sum, and the permutation engine's comparisons
// need. It is strictly narrower than "any additive group" but matches
// every caller in this module, the same way the teacher package bounds
// its containers with constraints.Ordered rather than a hand-rolled
// Lesser interface when the built-in operators already do the job.
type Number interface {
	constraints.Integer | constraints.Float
}

// maxV and minV wrap github.com/zyedidia/generic's Max/Min so callers in
// this package don't pull in both generic and constraints by hand — the
// same pairing zyedidia-generic/interval/itree.go uses for its own
// "max of two ordered values" need.
func maxV[V Number](a, b V) V {
	return g.Max(a, b)
}

func minV[V Number](a, b V) V {
	return g.Min(a, b)
}
