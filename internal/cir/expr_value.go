package cir

import (
	"fmt"
	"go/token"
)

// ExprInt represents an integer constant: a literal, a named constant or
// a constant expression folded by the type checker.
//
//	x := 42     // Value: 42
//	x := -1 << 3
type ExprInt struct {
	Value int64
}

// ExprBinary represents an arithmetic operation the engine models.
// Pos is the operator position, the sign of Y is observed there for OpDiv
// and OpRem.
//
//	a + b // Op: OpAdd, X: <ExprFor>(a), Y: <ExprFor>(b)
type ExprBinary struct {
	Op  BinaryOp
	X   Expr
	Y   Expr
	Pos token.Pos
}

// BinaryOp enumerates modeled arithmetic operators.
type BinaryOp int

const (
	OpUnknown BinaryOp = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
)

// String returns the operator token.
func (o BinaryOp) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpRem:
		return "%"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// ExprNeg represents unary minus.
//
//	-x // X: <ExprFor>(x)
type ExprNeg struct {
	X Expr
}

// ExprUnknown represents an expression the engine does not model: shifts, bit operations, comparisons, conversions, loads through pointers
// and so on. Operands are kept so their effects are still evaluated.
//
//	a << b     // Operands: [<ExprFor>(a), <ExprFor>(b)]
//	*p         // Operands: [<ExprFor>(p)]
//	uint(x)    // Operands: [<ExprFor>(x)]
type ExprUnknown struct {
	Operands []Expr
}

func (*ExprInt) isNode()     {}
func (*ExprInt) isExpr()     {}
func (*ExprBinary) isNode()  {}
func (*ExprBinary) isExpr()  {}
func (*ExprNeg) isNode()     {}
func (*ExprNeg) isExpr()     {}
func (*ExprUnknown) isNode() {}
func (*ExprUnknown) isExpr() {}
