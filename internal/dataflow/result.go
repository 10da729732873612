package dataflow

import (
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"maps"
	"slices"

	"github.com/sirkon/cbounds/internal/cir"
	"github.com/sirkon/cbounds/internal/ranges"
	"github.com/sirkon/cbounds/internal/sign"
)

var (
	// ErrRedeclared is reported when a variable is declared while it already
	// has a binding opened in the same block visit.
	ErrRedeclared = errors.New("variable redeclared")

	// ErrUnsupportedStatement is reported for statement kinds the evaluator
	// does not know.
	ErrUnsupportedStatement = errors.New("unsupported statement")
)

// BlockRanges maps variables to their finalized ranges within one block.
type BlockRanges map[*cir.Variable]*ranges.Ranges

// Variables returns variables with ranges in declaration order.
func (r BlockRanges) Variables() []*cir.Variable {
	return slices.SortedFunc(maps.Keys(r), compareVariables)
}

// Exit returns variable values handed over to successors.
func (r BlockRanges) Exit() map[*cir.Variable]sign.Sign {
	res := make(map[*cir.Variable]sign.Sign, len(r))
	for v, rs := range r {
		if value, ok := rs.Lookup(ranges.BlockEnd); ok {
			res[v] = value
		}
	}

	return res
}

func compareVariables(a, b *cir.Variable) int {
	return cmp.Or(
		cmp.Compare(a.Pos, b.Pos),
		cmp.Compare(a.Name, b.Name),
	)
}

// BlockResult is the outcome of the last visit of a block.
type BlockResult struct {
	Ranges       BlockRanges
	Observations []Observation
}

// Result is the fixpoint of a function graph.
type Result struct {
	graph  *cir.Graph
	blocks map[*cir.Block]*BlockResult
	visits int
}

// Graph returns the analyzed graph.
func (r *Result) Graph() *cir.Graph {
	return r.graph
}

// Block returns ranges computed for the block. It is nil for blocks that
// were never reached.
func (r *Result) Block(b *cir.Block) BlockRanges {
	res, ok := r.blocks[b]
	if !ok {
		return nil
	}

	return res.Ranges
}

// ValueAt returns the sign of v at the given statement index of b.
func (r *Result) ValueAt(b *cir.Block, v *cir.Variable, index int) (sign.Sign, bool) {
	rs, ok := r.Block(b)[v]
	if !ok {
		return sign.Bottom, false
	}

	return rs.Lookup(index)
}

// Exit returns the sign of v handed over by b to its successors.
func (r *Result) Exit(b *cir.Block, v *cir.Variable) (sign.Sign, bool) {
	return r.ValueAt(b, v, ranges.BlockEnd)
}

// Visits returns how many block visits the fixpoint took.
func (r *Result) Visits() int {
	return r.visits
}

// Observations returns observations of every block in block order.
func (r *Result) Observations() []Observation {
	var res []Observation
	for _, b := range r.graph.Blocks {
		if br, ok := r.blocks[b]; ok {
			res = append(res, br.Observations...)
		}
	}

	return res
}

// ObservationKind tells what an observed value was used for.
type ObservationKind int

const (
	observationInvalid ObservationKind = iota
	ObservedIndex
	ObservedSliceBound
	ObservedDivisor
)

func (k ObservationKind) String() string {
	switch k {
	case ObservedIndex:
		return "index"
	case ObservedSliceBound:
		return "slice bound"
	case ObservedDivisor:
		return "divisor"
	default:
		return fmt.Sprintf("unknown-observation(%d)", k)
	}
}

// Observation is the sign of a value used as an index, a slice bound or
// a divisor at the moment it was evaluated.
type Observation struct {
	Kind  ObservationKind
	Block int
	Stmt  int
	Pos   token.Pos
	Value sign.Sign
}
