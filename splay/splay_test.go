package splay_test

import (
	"math/rand"
	"testing"

	"github.com/nextperm/seqtree/splay"
)

// checkeq compares the tree's full contents against a reference slice,
// the cross-check idiom this package's tests follow throughout: a plain
// []int walked in lockstep with every operation run against the tree.
func checkeq(t *testing.T, tree *splay.Tree[int], ref []int) {
	t.Helper()
	if got := tree.Len(); got != len(ref) {
		t.Fatalf("len mismatch: got %d, want %d", got, len(ref))
	}
	for i, want := range ref {
		if got := tree.At(i); got != want {
			t.Fatalf("position %d: got %d, want %d", i, got, want)
		}
	}
}

func refInsert(ref []int, i, val int) []int {
	ref = append(ref, 0)
	copy(ref[i+1:], ref[i:])
	ref[i] = val
	return ref
}

func refErase(ref []int, i int) []int {
	return append(ref[:i], ref[i+1:]...)
}

func refReverse(ref []int, start, length int) {
	l, r := start, start+length-1
	for l < r {
		ref[l], ref[r] = ref[r], ref[l]
		l++
		r--
	}
}

func TestCrossCheckInsertEraseAt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := splay.New[int]()
	var ref []int

	const nops = 2000
	for i := 0; i < nops; i++ {
		switch {
		case len(ref) == 0 || rng.Intn(3) != 0:
			pos := rng.Intn(len(ref) + 1)
			val := rng.Intn(1000)
			tree.Insert(pos, val)
			ref = refInsert(ref, pos, val)
		default:
			pos := rng.Intn(len(ref))
			tree.Erase(pos)
			ref = refErase(ref, pos)
		}
		checkeq(t, tree, ref)
	}
}

func TestCrossCheckRangeOps(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n = 200
	ref := make([]int, n)
	tree := splay.New[int]()
	for i := range ref {
		ref[i] = rng.Intn(50)
		tree.Insert(i, ref[i])
	}

	for iter := 0; iter < 500; iter++ {
		start := rng.Intn(n)
		length := rng.Intn(n-start) + 1

		switch rng.Intn(5) {
		case 0:
			want := 0
			for i := start; i < start+length; i++ {
				want += ref[i]
			}
			if got := tree.RangeSum(start, length); got != want {
				t.Fatalf("RangeSum(%d,%d): got %d, want %d", start, length, got, want)
			}
		case 1:
			want := ref[start]
			for i := start; i < start+length; i++ {
				if ref[i] < want {
					want = ref[i]
				}
			}
			if got := tree.RangeMin(start, length); got != want {
				t.Fatalf("RangeMin(%d,%d): got %d, want %d", start, length, got, want)
			}
		case 2:
			want := ref[start]
			for i := start; i < start+length; i++ {
				if ref[i] > want {
					want = ref[i]
				}
			}
			if got := tree.RangeMax(start, length); got != want {
				t.Fatalf("RangeMax(%d,%d): got %d, want %d", start, length, got, want)
			}
		case 3:
			delta := rng.Intn(21) - 10
			tree.RangeAdd(start, length, delta)
			for i := start; i < start+length; i++ {
				ref[i] += delta
			}
		case 4:
			tree.RangeReverse(start, length)
			refReverse(ref, start, length)
		}
		checkeq(t, tree, ref)
	}
}

func TestRangeSetDominatesAdd(t *testing.T) {
	tree := splay.New[int]()
	for i := 0; i < 10; i++ {
		tree.Insert(i, i)
	}
	tree.RangeAdd(2, 5, 100)
	tree.RangeSet(2, 5, 7)
	for i := 2; i < 7; i++ {
		if got := tree.At(i); got != 7 {
			t.Fatalf("position %d: got %d, want 7 (set should win over a pending add)", i, got)
		}
	}
	tree.RangeAdd(2, 5, 3)
	for i := 2; i < 7; i++ {
		if got := tree.At(i); got != 10 {
			t.Fatalf("position %d: got %d, want 10 (add after set folds into the set value)", i, got)
		}
	}
}

func TestRangeIsSorted(t *testing.T) {
	tree := splay.New[int]()
	for _, v := range []int{1, 2, 2, 3, 5} {
		tree.Insert(tree.Len(), v)
	}
	if asc, desc := tree.RangeIsSorted(0, 5); !asc || desc {
		t.Fatalf("ascending run reported as (asc=%v, desc=%v)", asc, desc)
	}

	tree.RangeReverse(0, 5)
	if asc, desc := tree.RangeIsSorted(0, 5); asc || !desc {
		t.Fatalf("reversed run reported as (asc=%v, desc=%v)", asc, desc)
	}

	tree.RangeSet(0, 5, 9)
	if asc, desc := tree.RangeIsSorted(0, 5); !asc || !desc {
		t.Fatalf("constant run should be both (asc=%v, desc=%v)", asc, desc)
	}
}

func TestNextPermutationSequence(t *testing.T) {
	tree := splay.New[int]()
	for _, v := range []int{1, 2, 3} {
		tree.Insert(tree.Len(), v)
	}

	want := [][]int{
		{1, 3, 2},
		{2, 1, 3},
		{2, 3, 1},
		{3, 1, 2},
		{3, 2, 1},
	}
	for _, w := range want {
		if !tree.NextPermutation(0, 3) {
			t.Fatalf("expected a next permutation before reaching %v", w)
		}
		got := []int{tree.At(0), tree.At(1), tree.At(2)}
		if got[0] != w[0] || got[1] != w[1] || got[2] != w[2] {
			t.Fatalf("got %v, want %v", got, w)
		}
	}

	// 3,2,1 is the last permutation: NextPermutation wraps to the least.
	if tree.NextPermutation(0, 3) {
		t.Fatal("expected wrap-around (false) at the last permutation")
	}
	got := []int{tree.At(0), tree.At(1), tree.At(2)}
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("wrap-around result = %v, want [1 2 3]", got)
	}
}

func TestPreviousPermutationSequence(t *testing.T) {
	tree := splay.New[int]()
	for _, v := range []int{1, 2, 3} {
		tree.Insert(tree.Len(), v)
	}

	if tree.PreviousPermutation(0, 3) {
		t.Fatal("expected wrap-around (false) at the least permutation")
	}
	got := []int{tree.At(0), tree.At(1), tree.At(2)}
	if got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Fatalf("wrap-around result = %v, want [3 2 1]", got)
	}

	want := [][]int{
		{3, 1, 2},
		{2, 3, 1},
		{2, 1, 3},
		{1, 3, 2},
		{1, 2, 3},
	}
	for _, w := range want {
		if !tree.PreviousPermutation(0, 3) {
			t.Fatalf("expected a previous permutation before reaching %v", w)
		}
		got := []int{tree.At(0), tree.At(1), tree.At(2)}
		if got[0] != w[0] || got[1] != w[1] || got[2] != w[2] {
			t.Fatalf("got %v, want %v", got, w)
		}
	}
}

func TestNextPermutationWithDuplicates(t *testing.T) {
	tree := splay.New[int]()
	for _, v := range []int{1, 1, 2} {
		tree.Insert(tree.Len(), v)
	}
	if !tree.NextPermutation(0, 3) {
		t.Fatal("expected a next permutation")
	}
	if got := []int{tree.At(0), tree.At(1), tree.At(2)}; got[0] != 1 || got[1] != 2 || got[2] != 1 {
		t.Fatalf("got %v, want [1 2 1]", got)
	}
}

func TestNextPermutationSubrange(t *testing.T) {
	tree := splay.New[int]()
	for _, v := range []int{9, 1, 2, 3, 9} {
		tree.Insert(tree.Len(), v)
	}
	tree.NextPermutation(1, 3)
	want := []int{9, 1, 3, 2, 9}
	for i, w := range want {
		if got := tree.At(i); got != w {
			t.Fatalf("position %d: got %d, want %d (untouched elements must survive a subrange permutation)", i, got, w)
		}
	}
}

func TestCrossCheckPermutationAgainstBruteForce(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		rng := rand.New(rand.NewSource(int64(trial)))
		n := rng.Intn(5) + 2

		vals := make([]int, n)
		for i := range vals {
			vals[i] = rng.Intn(4)
		}
		tree := splay.New[int]()
		for i, v := range vals {
			tree.Insert(i, v)
		}

		for step := 0; step < 3*factorial(n); step++ {
			before := make([]int, n)
			for i := range before {
				before[i] = tree.At(i)
			}
			hadNext := tree.NextPermutation(0, n)
			after := make([]int, n)
			for i := range after {
				after[i] = tree.At(i)
			}

			wantNext, wantHad := bruteNextPermutation(before)
			if hadNext != wantHad {
				t.Fatalf("trial %d step %d: hadNext=%v, want %v (before=%v)", trial, step, hadNext, wantHad, before)
			}
			for i := range after {
				if after[i] != wantNext[i] {
					t.Fatalf("trial %d step %d: got %v, want %v (before=%v)", trial, step, after, wantNext, before)
				}
			}
		}
	}
}

func factorial(n int) int {
	r := 1
	for i := 2; i <= n; i++ {
		r *= i
	}
	return r
}

// bruteNextPermutation is the textbook O(n) reference implementation,
// used only to check the tree's O(log n) result against.
func bruteNextPermutation(a []int) ([]int, bool) {
	b := append([]int(nil), a...)
	n := len(b)
	i := n - 2
	for i >= 0 && b[i] >= b[i+1] {
		i--
	}
	if i < 0 {
		for l, r := 0, n-1; l < r; l, r = l+1, r-1 {
			b[l], b[r] = b[r], b[l]
		}
		return b, false
	}
	j := n - 1
	for b[j] <= b[i] {
		j--
	}
	b[i], b[j] = b[j], b[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
	return b, true
}

func TestBuildBalanced(t *testing.T) {
	tree := splay.Build(5, 7)
	if tree.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", tree.Len())
	}
	for i := 0; i < 5; i++ {
		if got := tree.At(i); got != 7 {
			t.Fatalf("position %d: got %d, want 7", i, got)
		}
	}
}

func TestIterMatchesAt(t *testing.T) {
	tree := splay.New[int]()
	vals := []int{4, 8, 15, 16, 23, 42}
	for i, v := range vals {
		tree.Insert(i, v)
	}
	it := tree.Iter()
	for i, want := range vals {
		got, ok := it()
		if !ok {
			t.Fatalf("iterator ended early at position %d", i)
		}
		if got != want {
			t.Fatalf("position %d: got %d, want %d", i, got, want)
		}
	}
	if _, ok := it(); ok {
		t.Fatal("iterator should be exhausted")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tree := splay.New[int]()
	tree.Insert(0, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-range RangeSum")
		}
	}()
	tree.RangeSum(0, 5)
}
