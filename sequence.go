package seqtree

import (
	"github.com/nextperm/seqtree/iter"
	"github.com/nextperm/seqtree/splay"
)

// Number is the element type constraint for a Sequence; see
// splay.Number for the exact bound.
type Number = splay.Number

// Sequence is a mutable positional sequence of numbers backed by an
// implicit-key splay tree. Every operation below is amortized O(log n)
// except New, Build, FromSlice, and Slice, which are O(n) (or O(1) for
// New); a full walk of Values is O(n) as well.
// A Sequence is not safe for concurrent use.
type Sequence[V Number] struct {
	tree *splay.Tree[V]
}

// New returns an empty sequence.
func New[V Number]() *Sequence[V] {
	return &Sequence[V]{tree: splay.New[V]()}
}

// Build returns a sequence of n copies of fill, constructed directly as
// a balanced tree.
func Build[V Number](n int, fill V) *Sequence[V] {
	return &Sequence[V]{tree: splay.Build(n, fill)}
}

// FromSlice returns a sequence holding a copy of vals, in order.
func FromSlice[V Number](vals []V) *Sequence[V] {
	s := New[V]()
	for i, v := range vals {
		s.tree.Insert(i, v)
	}
	return s
}

// Len returns the number of elements in the sequence.
func (s *Sequence[V]) Len() int {
	return s.tree.Len()
}

// At returns the value at position i. Panics if i is out of range.
func (s *Sequence[V]) At(i int) V {
	return s.tree.At(i)
}

// SetAt replaces the value at position i. Panics if i is out of range.
func (s *Sequence[V]) SetAt(i int, val V) {
	s.tree.SetAt(i, val)
}

// Insert places val at position i, shifting everything at or after i
// one place to the right. i == Len() appends.
func (s *Sequence[V]) Insert(i int, val V) {
	s.tree.Insert(i, val)
}

// Erase removes the element at position i, shifting everything after
// it one place to the left.
func (s *Sequence[V]) Erase(i int) {
	s.tree.Erase(i)
}

// RangeSum returns the sum of [start, start+length).
func (s *Sequence[V]) RangeSum(start, length int) V {
	return s.tree.RangeSum(start, length)
}

// RangeMin returns the minimum of [start, start+length).
func (s *Sequence[V]) RangeMin(start, length int) V {
	return s.tree.RangeMin(start, length)
}

// RangeMax returns the maximum of [start, start+length).
func (s *Sequence[V]) RangeMax(start, length int) V {
	return s.tree.RangeMax(start, length)
}

// RangeSet assigns val to every element of [start, start+length).
func (s *Sequence[V]) RangeSet(start, length int, val V) {
	s.tree.RangeSet(start, length, val)
}

// RangeAdd adds val to every element of [start, start+length).
func (s *Sequence[V]) RangeAdd(start, length int, val V) {
	s.tree.RangeAdd(start, length, val)
}

// RangeReverse reverses [start, start+length) in place.
func (s *Sequence[V]) RangeReverse(start, length int) {
	s.tree.RangeReverse(start, length)
}

// RangeIsSorted reports whether [start, start+length) is currently
// weakly non-decreasing and/or weakly non-increasing.
func (s *Sequence[V]) RangeIsSorted(start, length int) (ascending, descending bool) {
	return s.tree.RangeIsSorted(start, length)
}

// NextPermutation rearranges [start, start+length) into the
// lexicographically next permutation of its current values, wrapping
// to the least arrangement if it is already at the greatest. The
// returned bool is false exactly when it wrapped.
func (s *Sequence[V]) NextPermutation(start, length int) bool {
	return s.tree.NextPermutation(start, length)
}

// PreviousPermutation is NextPermutation's mirror.
func (s *Sequence[V]) PreviousPermutation(start, length int) bool {
	return s.tree.PreviousPermutation(start, length)
}

// Values returns a pull iterator over the sequence's current values, in
// position order.
func (s *Sequence[V]) Values() iter.Iter[V] {
	return s.tree.Iter()
}

// Slice materializes the sequence into a new slice.
func (s *Sequence[V]) Slice() []V {
	return iter.Collect(s.Values())
}
