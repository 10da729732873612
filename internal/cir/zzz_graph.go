package cir

import "go/ast"

// Graph is the control flow graph of a single function.
type Graph struct {
	// Name of the function, for reporting.
	Name string

	// Blocks in a stable order. Blocks[0] is the entry block.
	Blocks []*Block

	// Params are integer parameters and receivers. They are TOP on entry.
	Params []*Variable

	// Results are named integer results. They are ZERO on entry.
	Results []*Variable
}

// Block is a basic block: statements executed in order with no internal
// branching.
type Block struct {
	// Index of the block within Graph.Blocks.
	Index int

	// Kind describes the origin of the block, e.g. "for.body".
	Kind string

	// Stmts is the block body. Statement indices are positions in this slice.
	Stmts []Statement

	// Nodes are the source nodes the block was built from. Empty for
	// hand built graphs.
	Nodes []ast.Node

	// Preds and Succs are the block's neighbours. A nil entry stands for an
	// unreachable edge and is ignored.
	Preds []*Block
	Succs []*Block

	// Unreachable is set for blocks proven dead by the graph builder.
	Unreachable bool
}

// Entry returns the entry block of the graph or nil for an empty graph.
func (g *Graph) Entry() *Block {
	if len(g.Blocks) == 0 {
		return nil
	}
	return g.Blocks[0]
}

// NewBlock appends a new empty block to the graph.
func (g *Graph) NewBlock(kind string) *Block {
	b := &Block{
		Index: len(g.Blocks),
		Kind:  kind,
	}
	g.Blocks = append(g.Blocks, b)
	return b
}

// Connect adds an edge from → to.
func Connect(from, to *Block) {
	from.Succs = append(from.Succs, to)
	to.Preds = append(to.Preds, from)
}

// Append adds statements to the block body.
func (b *Block) Append(stmts ...Statement) *Block {
	b.Stmts = append(b.Stmts, stmts...)
	return b
}
