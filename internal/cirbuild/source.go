package cirbuild

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/cfg"

	"github.com/sirkon/cbounds/internal/cir"
)

// Source is a single type checked file with graphs of all its functions.
type Source struct {
	Fset  *token.FileSet
	File  *ast.File
	Pkg   *types.Package
	Info  *types.Info
	Funcs []*Func
}

// Func is a function of a Source.
type Func struct {
	// Node is either *ast.FuncDecl or *ast.FuncLit.
	Node  ast.Node
	CFG   *cfg.CFG
	Graph *cir.Graph
}

// Lookup returns the function with the given graph name.
func (s *Source) Lookup(name string) *Func {
	for _, fn := range s.Funcs {
		if fn.Graph.Name == name {
			return fn
		}
	}

	return nil
}

// BuildSource parses and type checks a single file and builds graphs of
// its functions with bodies, function literals included, in source order.
// Calls of predefined functions that never return end blocks.
func BuildSource(filename string, src []byte) (*Source, error) {
	return BuildSourceWith(filename, src, defaultNoReturn)
}

// BuildSourceWith is BuildSource with a custom set of functions that never
// return.
func BuildSourceWith(filename string, src []byte, noReturn *NoReturn) (*Source, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	conf := types.Config{Importer: importer.Default()}
	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Implicits:  make(map[ast.Node]types.Object),
		Instances:  make(map[*ast.Ident]types.Instance),
	}
	pkg, err := conf.Check(file.Name.Name, fset, []*ast.File{file}, info)
	if err != nil {
		return nil, fmt.Errorf("type check %s: %w", filename, err)
	}

	res := &Source{
		Fset: fset,
		File: file,
		Pkg:  pkg,
		Info: info,
	}

	mayReturn := func(call *ast.CallExpr) bool {
		return noReturn.MayReturn(info, call)
	}
	ast.Inspect(file, func(n ast.Node) bool {
		var body *ast.BlockStmt
		switch v := n.(type) {
		case *ast.FuncDecl:
			body = v.Body
		case *ast.FuncLit:
			body = v.Body
		default:
			return true
		}
		if body == nil {
			return true
		}

		g := cfg.New(body, mayReturn)
		graph, err2 := Build(n, g, info, types.SizesFor("gc", "amd64"))
		if err2 != nil {
			err = fmt.Errorf("build %s: %w", FuncName(n), err2)
			return false
		}
		if lit, ok := n.(*ast.FuncLit); ok {
			graph.Name = fmt.Sprintf("func literal at %d:%d", fset.Position(lit.Pos()).Line, fset.Position(lit.Pos()).Column)
		}

		res.Funcs = append(res.Funcs, &Func{
			Node:  n,
			CFG:   g,
			Graph: graph,
		})
		return true
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
