package ranges

import (
	"github.com/sirkon/cbounds/internal/sign"
)

// span stores a closed [start,end] statement index interval and its sign.
type span struct {
	start int
	end   int
	value sign.Sign
}

// Cmp defines ordering for the RB-tree as "disjoint by index".
//   - return -1 if this span is strictly before other (ends before other's start)
//   - return  1 if this span is strictly after  other (starts after other's end)
//   - return  0 if spans overlap in any way.
//
// A point probe [i,i] therefore compares equal to the span covering i.
func (n *span) Cmp(other *span) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func (n *span) Range() Range {
	return Range{
		Start: n.start,
		End:   n.end,
		Value: n.value,
	}
}
