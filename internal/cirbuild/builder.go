// Package cirbuild translates Go function bodies into cir graphs.
//
// Blocks come from golang.org/x/tools/go/cfg. Every node of a cfg block
// becomes exactly one CIR statement, so statement indices of the dataflow
// result refer back to cfg.Block.Nodes.
//
// Only variables declared by the function itself whose type has a signed
// integer underlying type are tracked: parameters, named results and locals.
// Package variables, variables captured from enclosing functions and
// unsigned integers are read as unknown.
package cirbuild

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/cfg"

	"github.com/sirkon/cbounds/internal/cir"
)

// Build translates the function (an *ast.FuncDecl or an *ast.FuncLit) with
// the given control flow graph of its body. Sizes are used to tell narrowing
// conversions apart, nil stands for gc/amd64.
func Build(fn ast.Node, g *cfg.CFG, info *types.Info, sizes types.Sizes) (*cir.Graph, error) {
	var (
		ftype *ast.FuncType
		recv  *ast.FieldList
		body  *ast.BlockStmt
	)
	switch v := fn.(type) {
	case *ast.FuncDecl:
		ftype, recv, body = v.Type, v.Recv, v.Body
	case *ast.FuncLit:
		ftype, body = v.Type, v.Body
	default:
		return nil, fmt.Errorf("unsupported function node %T", fn)
	}
	if body == nil {
		return nil, fmt.Errorf("function %s has no body", FuncName(fn))
	}
	if g == nil {
		return nil, fmt.Errorf("function %s has no control flow graph", FuncName(fn))
	}

	if sizes == nil {
		sizes = types.SizesFor("gc", "amd64")
	}

	b := &builder{
		info:      info,
		sizes:     sizes,
		vars:      map[types.Object]*cir.Variable{},
		rangeVars: map[ast.Expr]*ast.RangeStmt{},
	}
	graph := &cir.Graph{Name: FuncName(fn)}

	graph.Params = append(graph.Params, b.fields(recv)...)
	graph.Params = append(graph.Params, b.fields(ftype.Params)...)
	graph.Results = b.fields(ftype.Results)
	b.scanBody(body)

	b.blocks(graph, g)

	return graph, nil
}

// FuncName returns a short printable name of a function node.
func FuncName(fn ast.Node) string {
	switch v := fn.(type) {
	case *ast.FuncDecl:
		if v.Recv == nil || len(v.Recv.List) == 0 {
			return v.Name.Name
		}
		return "(" + recvTypeName(v.Recv.List[0].Type) + ")." + v.Name.Name
	case *ast.FuncLit:
		return "func literal"
	default:
		return fmt.Sprintf("%T", fn)
	}
}

func recvTypeName(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.StarExpr:
		return "*" + recvTypeName(v.X)
	case *ast.Ident:
		return v.Name
	case *ast.IndexExpr:
		return recvTypeName(v.X)
	case *ast.IndexListExpr:
		return recvTypeName(v.X)
	case *ast.ParenExpr:
		return recvTypeName(v.X)
	default:
		return "?"
	}
}

// builder holds the translation state of a single function.
type builder struct {
	info  *types.Info
	sizes types.Sizes

	// vars maps objects of tracked variables to their identities.
	vars map[types.Object]*cir.Variable

	// rangeVars maps key and value expressions of range statements to
	// their statements, cfg places them as bare expression nodes.
	rangeVars map[ast.Expr]*ast.RangeStmt

	// escaped lists tracked variables whose address outlives the expression
	// taking it, in order of discovery.
	escaped []*cir.Variable
}

// --- Variables ------------------------------------------------------------------------------------------------------

// fields registers tracked variables of a parameter list.
func (b *builder) fields(list *ast.FieldList) []*cir.Variable {
	if list == nil {
		return nil
	}

	var res []*cir.Variable
	for _, field := range list.List {
		for _, name := range field.Names {
			if v := b.define(name); v != nil {
				res = append(res, v)
			}
		}
	}

	return res
}

// scanBody registers tracked locals and range statements of the body.
// Function literals are separate functions and are not entered.
func (b *builder) scanBody(body *ast.BlockStmt) {
	ast.Inspect(body, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.Ident:
			b.define(v)
		case *ast.RangeStmt:
			if v.Key != nil {
				b.rangeVars[v.Key] = v
			}
			if v.Value != nil {
				b.rangeVars[v.Value] = v
			}
		}
		return true
	})

	b.scanEscapes(body)
}

// scanEscapes collects tracked variables that can be changed through an
// alias: their address is taken, a pointer method is selected on them or a
// function literal captures them.
func (b *builder) scanEscapes(body *ast.BlockStmt) {
	seen := map[*cir.Variable]bool{}
	escape := func(e ast.Expr) {
		id, ok := ast.Unparen(e).(*ast.Ident)
		if !ok {
			return
		}
		v := b.lookup(id)
		if v == nil || seen[v] {
			return
		}
		seen[v] = true
		b.escaped = append(b.escaped, v)
	}

	ast.Inspect(body, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.UnaryExpr:
			if v.Op == token.AND {
				escape(v.X)
			}
		case *ast.SelectorExpr:
			sel, ok := b.info.Selections[v]
			if ok && sel.Kind() == types.MethodVal && hasPointerReceiver(sel) {
				escape(v.X)
			}
		case *ast.FuncLit:
			ast.Inspect(v.Body, func(n ast.Node) bool {
				if id, ok := n.(*ast.Ident); ok {
					escape(id)
				}
				return true
			})
			return false
		}
		return true
	})
}

// clobbers returns fresh address-of expressions of every escaped variable.
// Statements that may write through a pointer carry them.
func (b *builder) clobbers() []cir.Expr {
	if len(b.escaped) == 0 {
		return nil
	}

	res := make([]cir.Expr, len(b.escaped))
	for i, v := range b.escaped {
		res[i] = &cir.ExprAddrOf{Var: v}
	}

	return res
}

// define registers the variable declared by the identifier if it is tracked.
func (b *builder) define(id *ast.Ident) *cir.Variable {
	if id.Name == "_" {
		return nil
	}

	obj, ok := b.info.Defs[id].(*types.Var)
	if !ok || obj.IsField() || !isSignedInteger(obj.Type()) {
		return nil
	}

	if v, ok := b.vars[obj]; ok {
		return v
	}
	v := &cir.Variable{
		Name:   id.Name,
		Pos:    id.Pos(),
		Object: obj,
	}
	b.vars[obj] = v

	return v
}

// lookup returns the tracked variable the identifier refers to.
func (b *builder) lookup(id *ast.Ident) *cir.Variable {
	obj := b.info.Uses[id]
	if obj == nil {
		obj = b.info.Defs[id]
	}
	if obj == nil {
		return nil
	}

	return b.vars[obj]
}

// --- Blocks ---------------------------------------------------------------------------------------------------------

func (b *builder) blocks(graph *cir.Graph, g *cfg.CFG) {
	blocks := make(map[*cfg.Block]*cir.Block, len(g.Blocks))
	for _, blk := range g.Blocks {
		cb := graph.NewBlock(blockKind(blk))
		cb.Nodes = blk.Nodes
		cb.Unreachable = !blk.Live
		for _, node := range blk.Nodes {
			cb.Stmts = append(cb.Stmts, b.node(node))
		}
		blocks[blk] = cb
	}

	for _, blk := range g.Blocks {
		from := blocks[blk]
		for _, succ := range blk.Succs {
			to := blocks[succ]
			if !blk.Live {
				// Nothing flows out of dead code.
				from.Succs = append(from.Succs, nil)
				to.Preds = append(to.Preds, nil)
				continue
			}
			cir.Connect(from, to)
		}
	}
}

// blockKind extracts the block comment from "block 3 (for.body)".
func blockKind(blk *cfg.Block) string {
	s := blk.String()
	start := strings.IndexByte(s, '(')
	if start < 0 || !strings.HasSuffix(s, ")") {
		return s
	}

	return s[start+1 : len(s)-1]
}
