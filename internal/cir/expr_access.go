package cir

import "go/token"

// ExprCall represents a function or method call. The engine does not look
// into callees, so the result is TOP, but the receiver and arguments are
// still evaluated in order. Recv is the receiver of a method call or the
// function value of a dynamic call.
//
//	strconv.Atoi(s)  // Ref: "strconv"."Atoi", Args: [<ExprFor>(s)]
//	buf.Len()        // Ref: "bytes"."Buffer"."Len", Recv: <ExprFor>(buf)
//	fn(x)            // Ref: <dynamic>
//
// Clobbers lists address-of expressions of escaped variables the callee may
// write through. They are evaluated after the arguments and are not printed.
type ExprCall struct {
	Ref      Reference
	Recv     Expr
	Args     []Expr
	Clobbers []Expr
}

// ExprIndex represents an index expression. The indexed value itself is
// not tracked, so the result is TOP, while the sign of Index is observed
// at Pos.
//
//	a[i] // X: <ExprFor>(a), Index: <ExprFor>(i)
type ExprIndex struct {
	X     Expr
	Index Expr
	Pos   token.Pos
}

// ExprSlice represents a slice expression. Missing bounds are nil.
//
//	a[lo:hi]     // Low: <ExprFor>(lo), High: <ExprFor>(hi)
//	a[:hi:max]   // High: <ExprFor>(hi), Max: <ExprFor>(max)
type ExprSlice struct {
	X    Expr
	Low  Expr
	High Expr
	Max  Expr
	Pos  token.Pos
}

func (*ExprCall) isNode()  {}
func (*ExprCall) isExpr()  {}
func (*ExprIndex) isNode() {}
func (*ExprIndex) isExpr() {}
func (*ExprSlice) isNode() {}
func (*ExprSlice) isExpr() {}
