package dataflow

import (
	"fmt"
	"go/token"

	"github.com/sirkon/cbounds/internal/cir"
	"github.com/sirkon/cbounds/internal/ranges"
	"github.com/sirkon/cbounds/internal/sign"
)

// binding is an open binding: the variable has held value since statement start.
type binding struct {
	start int
	value sign.Sign
}

// blockState holds the state of a single block visit.
type blockState struct {
	block *cir.Block
	index int

	open         map[*cir.Variable]binding
	closed       BlockRanges
	observations []Observation
}

func newBlockState(block *cir.Block) *blockState {
	return &blockState{
		block:  block,
		open:   map[*cir.Variable]binding{},
		closed: BlockRanges{},
	}
}

// --- Entry ----------------------------------------------------------------------------------------------------------

// inherit joins a value coming from a predecessor into the entry state.
func (s *blockState) inherit(v *cir.Variable, value sign.Sign) {
	b, ok := s.open[v]
	if !ok {
		s.open[v] = binding{start: ranges.BlockEntry, value: value}
		return
	}

	b.value = sign.Join(b.value, value)
	s.open[v] = b
}

// --- Bindings -------------------------------------------------------------------------------------------------------

// value returns the current value of the variable. Variables without an
// open binding are not visible to the analysis and may hold anything.
func (s *blockState) value(v *cir.Variable) sign.Sign {
	b, ok := s.open[v]
	if !ok {
		return sign.Top
	}

	return b.value
}

// declare opens a fresh binding for v at the current statement.
//
// A binding inherited from predecessors belongs to an earlier iteration of a
// loop re-entering the declaration scope and is dropped. A binding opened in
// this very block visit means the graph declares the variable twice.
func (s *blockState) declare(v *cir.Variable, value sign.Sign) error {
	if b, ok := s.open[v]; ok && b.start != ranges.BlockEntry {
		return fmt.Errorf("declare %s at statement %d, already bound since %d: %w", v, s.index, b.start, ErrRedeclared)
	}

	s.open[v] = binding{start: s.index, value: value}
	return nil
}

// rebind closes the current binding of v and opens a new one at the current
// statement. It returns false if v has no open binding, in which case
// nothing is tracked.
func (s *blockState) rebind(v *cir.Variable, value sign.Sign) bool {
	b, ok := s.open[v]
	if !ok {
		return false
	}

	if b.start < s.index {
		s.closeRange(v, b.start, s.index-1, b.value)
	}
	// A binding opened by this very statement is simply replaced.
	s.open[v] = binding{start: s.index, value: value}
	return true
}

// finish closes every open binding to the block end and returns the block result.
func (s *blockState) finish() *BlockResult {
	for v, b := range s.open {
		s.closeRange(v, b.start, ranges.BlockEnd, b.value)
	}
	s.open = nil

	return &BlockResult{
		Ranges:       s.closed,
		Observations: s.observations,
	}
}

func (s *blockState) closeRange(v *cir.Variable, start, end int, value sign.Sign) {
	r, ok := s.closed[v]
	if !ok {
		r = ranges.New()
		s.closed[v] = r
	}

	r.Insert(start, end, value)
}

// --- Observations ---------------------------------------------------------------------------------------------------

func (s *blockState) observe(kind ObservationKind, pos token.Pos, value sign.Sign) {
	s.observations = append(s.observations, Observation{
		Kind:  kind,
		Block: s.block.Index,
		Stmt:  s.index,
		Pos:   pos,
		Value: value,
	})
}
