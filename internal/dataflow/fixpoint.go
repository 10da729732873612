package dataflow

import (
	"fmt"
	"maps"

	"github.com/sirkon/cbounds/internal/cir"
	"github.com/sirkon/cbounds/internal/sign"
)

// Solve runs the worklist over the graph until block exit values stop
// changing.
//
// Every block is queued once in graph order. A dequeued block joins the exit
// values of its already processed predecessors, evaluates its statements
// and replaces its previous result. If its exit values differ from the
// previous visit, or this was the first visit, its successors are queued
// again unless they are already waiting.
//
// Values only move up the lattice, which has height 2, so every block exit
// changes a bounded number of times and the worklist empties.
func Solve(g *cir.Graph) (*Result, error) {
	res := &Result{
		graph:  g,
		blocks: make(map[*cir.Block]*BlockResult, len(g.Blocks)),
	}

	queue := make([]*cir.Block, 0, len(g.Blocks))
	queued := make(map[*cir.Block]bool, len(g.Blocks))
	push := func(b *cir.Block) {
		if b == nil || queued[b] {
			return
		}
		queued[b] = true
		queue = append(queue, b)
	}
	for _, b := range g.Blocks {
		push(b)
	}

	exits := make(map[*cir.Block]map[*cir.Variable]sign.Sign, len(g.Blocks))
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		queued[b] = false
		res.visits++

		br, err := processBlock(g, res, b)
		if err != nil {
			return nil, fmt.Errorf("%s: block %d (%s): %w", g.Name, b.Index, b.Kind, err)
		}
		res.blocks[b] = br

		exit := br.Ranges.Exit()
		prev, visited := exits[b]
		exits[b] = exit
		if visited && maps.Equal(prev, exit) {
			continue
		}

		for _, succ := range b.Succs {
			push(succ)
		}
	}

	return res, nil
}

func processBlock(g *cir.Graph, res *Result, b *cir.Block) (*BlockResult, error) {
	s := newBlockState(b)

	if b == g.Entry() {
		for _, v := range g.Params {
			s.inherit(v, sign.Top)
		}
		for _, v := range g.Results {
			s.inherit(v, sign.Zero)
		}
	}

	for _, pred := range b.Preds {
		if pred == nil {
			continue
		}

		pr, ok := res.blocks[pred]
		if !ok {
			// Not processed yet, it will queue this block once it is.
			continue
		}

		for v, value := range pr.Ranges.Exit() {
			s.inherit(v, value)
		}
	}

	if err := interpretBlock(s); err != nil {
		return nil, err
	}

	return s.finish(), nil
}
