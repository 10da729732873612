package cirbuild

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/sirkon/cbounds/internal/cir"
)

// expr translates an expression. Expressions the engine does not model
// become cir.ExprUnknown over their translated operands.
func (b *builder) expr(e ast.Expr) cir.Expr {
	if e == nil {
		return unknown()
	}

	if tv, ok := b.info.Types[e]; ok && tv.Value != nil {
		// Constants have no effects to keep.
		if !isInteger(tv.Type) {
			return unknown()
		}
		return constExpr(tv.Value)
	}

	switch v := e.(type) {
	case *ast.ParenExpr:
		return b.expr(v.X)

	case *ast.Ident:
		if tracked := b.lookup(v); tracked != nil {
			return &cir.ExprVar{Var: tracked}
		}
		return unknown()

	case *ast.BinaryExpr:
		return b.binary(v.Op, b.expr(v.X), b.expr(v.Y), b.info.TypeOf(v), v.OpPos)

	case *ast.UnaryExpr:
		return b.unary(v)

	case *ast.CallExpr:
		return b.call(v)

	case *ast.SelectorExpr:
		return b.selector(v)

	case *ast.IndexExpr:
		return b.index(v)

	case *ast.IndexListExpr:
		// Generic instantiation.
		return unknown()

	case *ast.SliceExpr:
		res := &cir.ExprSlice{
			X:   b.expr(v.X),
			Pos: v.Lbrack,
		}
		if v.Low != nil {
			res.Low = b.expr(v.Low)
		}
		if v.High != nil {
			res.High = b.expr(v.High)
		}
		if v.Max != nil {
			res.Max = b.expr(v.Max)
		}
		return res

	case *ast.StarExpr:
		return unknown(b.expr(v.X))

	case *ast.TypeAssertExpr:
		return unknown(b.expr(v.X))

	case *ast.CompositeLit:
		return unknown(b.exprs(v.Elts)...)

	case *ast.KeyValueExpr:
		if _, ok := v.Key.(*ast.Ident); ok && b.info.Types[v.Key].Type == nil {
			// Struct field name.
			return b.expr(v.Value)
		}
		return unknown(b.expr(v.Key), b.expr(v.Value))

	case *ast.FuncLit:
		return b.funcLit(v)

	default:
		// Types and the rest carry no values.
		return unknown()
	}
}

func (b *builder) exprs(list []ast.Expr) []cir.Expr {
	res := make([]cir.Expr, len(list))
	for i, e := range list {
		res[i] = b.expr(e)
	}

	return res
}

func unknown(operands ...cir.Expr) cir.Expr {
	return &cir.ExprUnknown{Operands: operands}
}

// constExpr turns an integer constant into cir.ExprInt. Constants that do
// not fit int64 keep only their sign.
func constExpr(value constant.Value) cir.Expr {
	if value.Kind() != constant.Int {
		return unknown()
	}

	if v, exact := constant.Int64Val(value); exact {
		return &cir.ExprInt{Value: v}
	}
	return &cir.ExprInt{Value: int64(constant.Sign(value))}
}

// --- Arithmetic -----------------------------------------------------------------------------------------------------

var binaryOps = map[token.Token]cir.BinaryOp{
	token.ADD: cir.OpAdd,
	token.SUB: cir.OpSub,
	token.MUL: cir.OpMul,
	token.QUO: cir.OpDiv,
	token.REM: cir.OpRem,
}

// binary translates x op y where typ is the type of the result.
func (b *builder) binary(op token.Token, x, y cir.Expr, typ types.Type, pos token.Pos) cir.Expr {
	cop, ok := binaryOps[op]
	if !ok || !isInteger(typ) {
		return unknown(x, y)
	}

	return &cir.ExprBinary{
		Op:  cop,
		X:   x,
		Y:   y,
		Pos: pos,
	}
}

func (b *builder) unary(e *ast.UnaryExpr) cir.Expr {
	switch e.Op {
	case token.SUB:
		if isInteger(b.info.TypeOf(e)) {
			return &cir.ExprNeg{X: b.expr(e.X)}
		}
	case token.ADD:
		return b.expr(e.X)
	case token.AND:
		if id, ok := ast.Unparen(e.X).(*ast.Ident); ok {
			if v := b.lookup(id); v != nil {
				return &cir.ExprAddrOf{Var: v}
			}
		}
	}

	return unknown(b.expr(e.X))
}

// isDeref reports whether the expression is a store target of a signed
// integer through a pointer, which may be any escaped variable.
func (b *builder) isDeref(e ast.Expr) bool {
	star, ok := ast.Unparen(e).(*ast.StarExpr)
	return ok && isSignedInteger(b.info.TypeOf(star))
}

// --- Accesses -------------------------------------------------------------------------------------------------------

func (b *builder) index(e *ast.IndexExpr) cir.Expr {
	switch typ := b.info.TypeOf(e.X); {
	case typ == nil:
		return unknown(b.expr(e.X), b.expr(e.Index))
	case isFunc(typ):
		// Generic instantiation f[int].
		return unknown()
	case !isIndexable(typ):
		// Map keys may be anything.
		return unknown(b.expr(e.X), b.expr(e.Index))
	}

	return &cir.ExprIndex{
		X:     b.expr(e.X),
		Index: b.expr(e.Index),
		Pos:   e.Lbrack,
	}
}

func (b *builder) selector(e *ast.SelectorExpr) cir.Expr {
	sel, ok := b.info.Selections[e]
	if !ok {
		// Qualified identifier pkg.Name.
		return unknown()
	}

	if sel.Kind() == types.MethodVal {
		// A method value binds the receiver.
		return unknown(b.receiver(e, sel))
	}
	return unknown(b.expr(e.X))
}

// receiver translates the receiver of a method selection. Calling a pointer
// method on an addressable tracked variable takes its address.
func (b *builder) receiver(e *ast.SelectorExpr, sel *types.Selection) cir.Expr {
	if id, ok := ast.Unparen(e.X).(*ast.Ident); ok {
		if v := b.lookup(id); v != nil && hasPointerReceiver(sel) {
			return &cir.ExprAddrOf{Var: v}
		}
	}

	return b.expr(e.X)
}

// --- Calls ----------------------------------------------------------------------------------------------------------

func (b *builder) call(e *ast.CallExpr) cir.Expr {
	if tv, ok := b.info.Types[e.Fun]; ok && tv.IsType() {
		return b.conversion(e, tv.Type)
	}

	callee := typeutil.Callee(b.info, e)
	res := &cir.ExprCall{
		Ref:  reference(callee),
		Args: b.exprs(e.Args),
	}
	if _, ok := callee.(*types.Builtin); !ok {
		res.Clobbers = b.clobbers()
	}

	fun := ast.Unparen(e.Fun)
	switch v := fun.(type) {
	case *ast.SelectorExpr:
		sel, ok := b.info.Selections[v]
		switch {
		case !ok:
			// Package function.
		case sel.Kind() == types.MethodVal:
			res.Recv = b.receiver(v, sel)
		default:
			// Field of a function type or a method expression.
			res.Recv = b.expr(v)
		}
	case *ast.Ident:
		if _, ok := b.info.Uses[v].(*types.Var); ok {
			res.Recv = b.expr(v)
		}
	default:
		if _, ok := callee.(*types.Func); !ok {
			res.Recv = b.expr(fun)
		}
	}

	return res
}

// conversion passes through conversions between signed integer types that
// cannot change the value. Everything else may wrap around or truncate.
func (b *builder) conversion(e *ast.CallExpr, to types.Type) cir.Expr {
	if len(e.Args) != 1 {
		return unknown(b.exprs(e.Args)...)
	}

	arg := b.expr(e.Args[0])
	from := b.info.TypeOf(e.Args[0])
	if from == nil || !isSignedInteger(from) || !isSignedInteger(to) {
		return unknown(arg)
	}
	if b.sizes.Sizeof(to) < b.sizes.Sizeof(from) {
		return unknown(arg)
	}

	return arg
}

// funcLit translates a function literal value. The literal may change every
// tracked variable it captures at any later point, they escape just like
// with an explicit address-of.
func (b *builder) funcLit(lit *ast.FuncLit) cir.Expr {
	var (
		captured []cir.Expr
		seen     = map[*cir.Variable]bool{}
	)
	ast.Inspect(lit.Body, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok {
			return true
		}

		v := b.vars[b.info.Uses[id]]
		if v == nil || seen[v] {
			return true
		}
		seen[v] = true
		captured = append(captured, &cir.ExprAddrOf{Var: v})
		return true
	})

	return unknown(captured...)
}

// reference describes the callee.
func reference(obj types.Object) cir.Reference {
	switch obj.(type) {
	case *types.Func, *types.Builtin:
	default:
		// Function values.
		return cir.Reference{}
	}

	var res cir.Reference
	res.Name = obj.Name()
	if obj.Pkg() != nil {
		res.Package = obj.Pkg().Path()
	}

	fn, ok := obj.(*types.Func)
	if !ok {
		return res
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return res
	}

	recv := sig.Recv().Type()
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = ptr.Elem()
	}
	switch v := recv.(type) {
	case *types.Named:
		res.Type = v.Obj().Name()
	case *types.Alias:
		res.Type = v.Obj().Name()
	}

	return res
}
