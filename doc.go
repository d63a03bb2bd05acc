// Package seqtree provides a positional sequence backed by an
// implicit-key splay tree. It supports indexed get/set, insert, erase,
// and a full set of subrange operations — sum, min, max, set, add,
// reverse, and in-place next/previous lexicographic permutation — each
// in amortized O(log n).
//
// The tree itself lives in the seqtree/splay subpackage; this package
// is the thin public facade most callers should use directly.
package seqtree
