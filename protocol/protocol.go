// Package protocol implements the reference text protocol: a small
// line-oriented script format for driving a Sequence end to end,
// useful for cross-checking this module against another
// implementation without writing Go on both sides.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/nextperm/seqtree"
)

// command tags, one per row of the reference protocol's table.
const (
	tagRangeSum = 1
	tagInsert   = 2
	tagErase    = 3
	tagRangeSet = 4
	tagRangeAdd = 5
	tagNextPerm = 6
	tagPrevPerm = 7
)

// Run reads a script from r and writes its output to w: one line per
// tagRangeSum query, followed by the final sequence printed
// space-separated on its own line. It reports a wrapped error on any
// malformed input — unlike a Sequence's own out-of-range panics, a
// syntax error in a text script is an ordinary recoverable failure of
// this one call, not a programmer contract violation.
func Run(r io.Reader, w io.Writer, log logr.Logger) error {
	sc := newTokenScanner(r)

	n, err := sc.nextInt()
	if err != nil {
		return fmt.Errorf("protocol: reading n: %w", err)
	}
	vals := make([]int64, n)
	for i := range vals {
		v, err := sc.nextInt()
		if err != nil {
			return fmt.Errorf("protocol: reading initial value %d: %w", i, err)
		}
		vals[i] = v
	}
	seq := seqtree.FromSlice(vals)
	log.V(1).Info("initialized sequence", "len", seq.Len())

	q, err := sc.nextInt()
	if err != nil {
		return fmt.Errorf("protocol: reading q: %w", err)
	}

	out := bufio.NewWriter(w)
	defer out.Flush()

	for i := int64(0); i < q; i++ {
		tag, err := sc.nextInt()
		if err != nil {
			return fmt.Errorf("protocol: reading command %d tag: %w", i, err)
		}
		if err := runOne(sc, seq, out, log, tag); err != nil {
			return fmt.Errorf("protocol: command %d (tag %d): %w", i, tag, err)
		}
	}

	values := seq.Slice()
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatInt(v, 10)
	}
	if _, err := fmt.Fprintln(out, strings.Join(strs, " ")); err != nil {
		return fmt.Errorf("protocol: writing final sequence: %w", err)
	}
	return nil
}

func runOne(sc *tokenScanner, seq *seqtree.Sequence[int64], out *bufio.Writer, log logr.Logger, tag int64) error {
	switch tag {
	case tagRangeSum:
		l, r, err := sc.nextRange()
		if err != nil {
			return err
		}
		log.V(1).Info("range_sum", "l", l, "r", r)
		_, err = fmt.Fprintln(out, seq.RangeSum(l, r-l+1))
		return err
	case tagInsert:
		x, err := sc.nextInt()
		if err != nil {
			return err
		}
		pos, err := sc.nextInt()
		if err != nil {
			return err
		}
		log.V(1).Info("insert", "pos", pos, "value", x)
		seq.Insert(int(pos), x)
		return nil
	case tagErase:
		pos, err := sc.nextInt()
		if err != nil {
			return err
		}
		log.V(1).Info("erase", "pos", pos)
		seq.Erase(int(pos))
		return nil
	case tagRangeSet:
		x, err := sc.nextInt()
		if err != nil {
			return err
		}
		l, r, err := sc.nextRange()
		if err != nil {
			return err
		}
		log.V(1).Info("range_set", "l", l, "r", r, "value", x)
		seq.RangeSet(l, r-l+1, x)
		return nil
	case tagRangeAdd:
		x, err := sc.nextInt()
		if err != nil {
			return err
		}
		l, r, err := sc.nextRange()
		if err != nil {
			return err
		}
		log.V(1).Info("range_add", "l", l, "r", r, "value", x)
		seq.RangeAdd(l, r-l+1, x)
		return nil
	case tagNextPerm:
		l, r, err := sc.nextRange()
		if err != nil {
			return err
		}
		log.V(1).Info("range_next_permutation", "l", l, "r", r)
		seq.NextPermutation(l, r-l+1)
		return nil
	case tagPrevPerm:
		l, r, err := sc.nextRange()
		if err != nil {
			return err
		}
		log.V(1).Info("range_prev_permutation", "l", l, "r", r)
		seq.PreviousPermutation(l, r-l+1)
		return nil
	default:
		return fmt.Errorf("unknown tag %d", tag)
	}
}

// tokenScanner pulls whitespace-separated integer tokens off r,
// independent of line breaks — the reference protocol only specifies
// which tokens follow which tag, not how they're wrapped onto lines.
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenScanner{sc: sc}
}

func (s *tokenScanner) nextInt() (int64, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseInt(s.sc.Text(), 10, 64)
}

// nextRange reads the inclusive l, r bounds the reference protocol uses
// for every range command and converts them to int.
func (s *tokenScanner) nextRange() (int, int, error) {
	l, err := s.nextInt()
	if err != nil {
		return 0, 0, err
	}
	r, err := s.nextInt()
	if err != nil {
		return 0, 0, err
	}
	return int(l), int(r), nil
}
