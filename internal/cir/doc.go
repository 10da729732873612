// Package cir defines the abstract control flow graph consumed by the
// sign dataflow engine.
//
// A function is described as a Graph of Blocks. Each block holds an ordered
// list of Statements built from a closed set of Expr variants: integer
// constants, variable reads, arithmetic, address-of, calls, index and slice
// accesses. Anything the engine does not model is represented as
// ExprUnknown, which still carries its operands so their side effects on
// tracked variables are seen.
//
// Variables are identified by pointer: every reference to the same
// declared entity within a graph must share the same *Variable.
package cir
