// Package ranges stores the finalized sign history of a single variable
// within a single block: disjoint closed intervals of statement indices,
// each tagged with the sign the variable held over it.
package ranges

import (
	"fmt"
	"iter"
	"math"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/cbounds/internal/sign"
)

const (
	// BlockEntry is the start index of a binding inherited from predecessors.
	BlockEntry = math.MinInt

	// BlockEnd is the end index of a binding that holds through the rest of
	// the block and into successors.
	BlockEnd = math.MaxInt
)

// Range is a finalized record: the variable held Value for every statement
// index in [Start, End].
type Range struct {
	Start int
	End   int
	Value sign.Sign
}

// New is [Ranges] constructor.
func New() *Ranges {
	return &Ranges{tree: rbtree.New[*span]()}
}

// Ranges holds the finalized ranges of one variable.
// Spans are kept twice: in the tree for point lookups and in a slice
// in insertion order, which is also start order.
type Ranges struct {
	tree  *rbtree.Tree[*span]
	spans []*span
}

// Insert records a new range. It panics if the range is inverted, starts
// before the end of the last inserted range or overlaps any stored one.
func (r *Ranges) Insert(start, end int, value sign.Sign) {
	if start > end {
		panic(fmt.Sprintf("ranges: inverted range [%d,%d]", start, end))
	}
	if n := len(r.spans); n > 0 && r.spans[n-1].end >= start {
		panic(fmt.Sprintf("ranges: range [%d,%d] does not follow [%d,%d]", start, end, r.spans[n-1].start, r.spans[n-1].end))
	}

	s := &span{start: start, end: end, value: value}
	if got := r.tree.InsertReturn(s); got != s {
		panic(fmt.Sprintf("ranges: range [%d,%d] overlaps [%d,%d]", start, end, got.start, got.end))
	}
	r.spans = append(r.spans, s)
}

// Lookup returns the value of the range covering index.
func (r *Ranges) Lookup(index int) (sign.Sign, bool) {
	res := r.tree.Search(&span{start: index, end: index})
	if res == nil {
		return sign.Bottom, false
	}

	return res.value, true
}

// Last returns the most recently inserted range.
func (r *Ranges) Last() (Range, bool) {
	if len(r.spans) == 0 {
		return Range{}, false
	}

	return r.spans[len(r.spans)-1].Range(), true
}

// Len returns the number of stored ranges.
func (r *Ranges) Len() int {
	return len(r.spans)
}

// All iterates over ranges in ascending start order.
func (r *Ranges) All() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for _, s := range r.spans {
			if !yield(s.Range()) {
				return
			}
		}
	}
}
