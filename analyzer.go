// Package cbounds provides an analyzer that computes the sign of every signed
// integer variable of a function at every program point and reports indices,
// slice bounds and divisors whose sign makes them certainly wrong.
package cbounds

import (
	"flag"
	"fmt"
	"go/ast"
	"reflect"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/ctrlflow"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/cfg"

	"github.com/sirkon/cbounds/internal/cbrules"
	"github.com/sirkon/cbounds/internal/engine"
)

const doc = `cbounds reports negative indices, negative slice bounds and division by zero

The analyzer tracks the sign (negative, zero, positive or unknown) of signed
integer variables of every function through its control flow graph and
reports only values that are wrong on every path reaching them.`

// Analyzer is the main entry point for the linter.
var Analyzer = &analysis.Analyzer{
	Name:       "cbounds",
	Doc:        doc,
	Requires:   []*analysis.Analyzer{inspect.Analyzer, ctrlflow.Analyzer},
	Run:        run,
	ResultType: reflect.TypeOf((*Result)(nil)),
}

var disabled ruleList

func init() {
	Analyzer.Flags.Var(&disabled, "disable", "comma separated list of rules to skip, e.g. CB010,NegativeSliceBound")
}

// Result is the analyzer result: analyzed functions and functions that could
// not be analyzed.
type Result struct {
	// Funcs maps *ast.FuncDecl and *ast.FuncLit nodes to their analysis.
	Funcs map[ast.Node]*engine.Func

	// Failures maps function nodes to errors of their analysis.
	Failures map[ast.Node]error
}

func run(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	cfgs := pass.ResultOf[ctrlflow.Analyzer].(*ctrlflow.CFGs)

	res := &Result{
		Funcs:    map[ast.Node]*engine.Func{},
		Failures: map[ast.Node]error{},
	}

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.FuncLit)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		var g *cfg.CFG
		switch n := node.(type) {
		case *ast.FuncDecl:
			g = cfgs.FuncDecl(n)
		case *ast.FuncLit:
			g = cfgs.FuncLit(n)
		}
		if g == nil {
			// No body.
			return
		}

		fn, err := engine.Analyze(engine.Input{
			Fset:  pass.Fset,
			Node:  node,
			CFG:   g,
			Info:  pass.TypesInfo,
			Sizes: pass.TypesSizes,
		})
		if err != nil {
			res.Failures[node] = err
			return
		}
		res.Funcs[node] = fn

		for _, finding := range fn.Findings() {
			if disabled.has(finding.Rule) {
				continue
			}

			pass.Report(analysis.Diagnostic{
				Pos:      finding.Pos,
				Category: finding.Rule.Code(),
				Message:  fmt.Sprintf("%s: %s", finding.Rule.Code(), finding.Message),
			})
		}
	})

	return res, nil
}

// ruleList is a flag value of comma separated rules.
type ruleList []cbrules.Rule

var _ flag.Value = (*ruleList)(nil)

func (l *ruleList) String() string {
	if l == nil {
		return ""
	}

	codes := make([]string, len(*l))
	for i, r := range *l {
		codes[i] = r.Code()
	}
	return strings.Join(codes, ",")
}

func (l *ruleList) Set(s string) error {
	var res ruleList
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		r, err := cbrules.Parse(part)
		if err != nil {
			return err
		}
		res = append(res, r)
	}

	*l = res
	return nil
}

func (l ruleList) has(r cbrules.Rule) bool {
	for _, v := range l {
		if v == r {
			return true
		}
	}

	return false
}
