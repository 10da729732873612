// Package dataflow computes, for every integer variable of a function and
// every statement of every block, the sign the variable may hold.
//
// The analysis is an abstract interpretation over the sign lattice of
// package sign, driven by a worklist over a cir.Graph.
//
// Core components:
//
//   - Block state
//     Open bindings of a single block visit: the sign each variable has
//     held since its last change. Reassignment and address-of close the
//     current binding into the block's range store and open a new one.
//
//   - Statement evaluator
//     Walks one statement's expression tree over the block state. Shapes
//     it does not model evaluate to TOP after their operands have been
//     visited for effects. Index, slice and divisor signs are recorded as
//     observations.
//
//   - Fixpoint driver
//     Seeds each block from the exit values of its processed predecessors,
//     evaluates its statements, closes the remaining bindings at the block
//     end and installs the block result. Successors are revisited whenever
//     the exit values of a block change.
//
// The result maps each block to per-variable ranges.Ranges. Indices are
// statement positions in cir.Block.Stmts; ranges.BlockEntry and
// ranges.BlockEnd stand for the values inherited from predecessors and
// handed over to successors.
package dataflow
