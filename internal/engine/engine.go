// Package engine runs the sign analysis for a single function and derives
// bounds findings from it. It is shared by the analyzer and the command line
// tool.
package engine

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/cfg"

	"github.com/sirkon/cbounds/internal/cbrules"
	"github.com/sirkon/cbounds/internal/cir"
	"github.com/sirkon/cbounds/internal/cirbuild"
	"github.com/sirkon/cbounds/internal/dataflow"
	"github.com/sirkon/cbounds/internal/sign"
)

// Input describes a function to analyze.
type Input struct {
	Fset *token.FileSet

	// Node is either *ast.FuncDecl or *ast.FuncLit.
	Node  ast.Node
	CFG   *cfg.CFG
	Info  *types.Info
	Sizes types.Sizes
}

// Func is an analyzed function.
type Func struct {
	Name   string
	Node   ast.Node
	CFG    *cfg.CFG
	Graph  *cir.Graph
	Result *dataflow.Result

	fset *token.FileSet
}

// Analyze translates the function and computes its fixpoint.
func Analyze(in Input) (*Func, error) {
	graph, err := cirbuild.Build(in.Node, in.CFG, in.Info, in.Sizes)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	res, err := dataflow.Solve(graph)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	return &Func{
		Name:   graph.Name,
		Node:   in.Node,
		CFG:    in.CFG,
		Graph:  graph,
		Result: res,
		fset:   in.Fset,
	}, nil
}

// Finding is a definite bounds violation.
type Finding struct {
	Rule    cbrules.Rule
	Pos     token.Pos
	Message string
	Value   sign.Sign
}

// Position returns the source position of the finding.
func (f *Func) Position(finding Finding) token.Position {
	if f.fset == nil {
		return token.Position{}
	}

	return f.fset.Position(finding.Pos)
}

// Findings derives findings from observations of live blocks. Only values
// that are certainly wrong are reported: TOP is never a finding.
func (f *Func) Findings() []Finding {
	var res []Finding
	for _, obs := range f.Result.Observations() {
		if obs.Block < len(f.Graph.Blocks) && f.Graph.Blocks[obs.Block].Unreachable {
			continue
		}

		rule, ok := ruleOf(obs)
		if !ok {
			continue
		}

		res = append(res, Finding{
			Rule:    rule,
			Pos:     obs.Pos,
			Message: message(rule),
			Value:   obs.Value,
		})
	}

	return res
}

func ruleOf(obs dataflow.Observation) (cbrules.Rule, bool) {
	switch {
	case obs.Kind == dataflow.ObservedIndex && obs.Value == sign.Negative:
		return cbrules.NegativeIndex(), true
	case obs.Kind == dataflow.ObservedSliceBound && obs.Value == sign.Negative:
		return cbrules.NegativeSliceBound(), true
	case obs.Kind == dataflow.ObservedDivisor && obs.Value == sign.Zero:
		return cbrules.DivisionByZero(), true
	default:
		return 0, false
	}
}

func message(rule cbrules.Rule) string {
	switch rule {
	case cbrules.CB001NegativeIndex:
		return "index is always negative"
	case cbrules.CB002NegativeSliceBound:
		return "slice bound is always negative"
	case cbrules.CB010DivisionByZero:
		return "integer division by zero"
	default:
		return rule.Description()
	}
}
