package dataflow

import (
	"fmt"

	"github.com/sirkon/cbounds/internal/cir"
	"github.com/sirkon/cbounds/internal/sign"
)

// interpretBlock evaluates the block body in statement order.
func interpretBlock(s *blockState) error {
	for i, stmt := range s.block.Stmts {
		s.index = i
		if err := interpret(s, stmt); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}

	return nil
}

// interpret applies a single statement to the block state.
func interpret(s *blockState, stmt cir.Statement) error {
	switch v := stmt.(type) {

	// Example: "var x, y = 1, -1"
	case *cir.StmtDecl:
		return handleDecl(s, v)

	// Example: "a, b = b, a"
	case *cir.StmtAssign:
		return handleAssign(s, v)

	// Example: "i++"
	case *cir.StmtIncDec:
		handleIncDec(s, v)
		return nil

	// Example: "fmt.Println(a[i])"
	case *cir.StmtExpr:
		eval(s, v.X)
		return nil

	default:
		return fmt.Errorf("%T: %w", stmt, ErrUnsupportedStatement)
	}
}

// --- handlers ---

func handleDecl(s *blockState, decl *cir.StmtDecl) error {
	values := make([]sign.Sign, len(decl.Specs))
	for i, spec := range decl.Specs {
		values[i] = sign.Bottom
		if spec.Init != nil {
			values[i] = eval(s, spec.Init)
		}
	}

	for i, spec := range decl.Specs {
		if spec.Var == nil {
			continue
		}
		if err := s.declare(spec.Var, values[i]); err != nil {
			return err
		}
	}

	return nil
}

func handleAssign(s *blockState, assign *cir.StmtAssign) error {
	// Everything on both sides is evaluated before any target changes.
	values := make([]sign.Sign, len(assign.Pairs))
	for i, pair := range assign.Pairs {
		if pair.Place != nil {
			eval(s, pair.Place)
		}
		values[i] = eval(s, pair.Value)
	}

	for i, pair := range assign.Pairs {
		if pair.Var == nil {
			continue
		}

		if pair.Declare {
			if err := s.declare(pair.Var, values[i]); err != nil {
				return err
			}
			continue
		}

		s.rebind(pair.Var, values[i])
	}

	for _, pair := range assign.Pairs {
		evalAll(s, pair.Clobbers...)
	}

	return nil
}

func handleIncDec(s *blockState, stmt *cir.StmtIncDec) {
	if _, ok := s.open[stmt.Var]; !ok {
		return
	}

	op := sign.Inc
	if stmt.Dec {
		op = sign.Dec
	}
	s.rebind(stmt.Var, op(s.value(stmt.Var)))
}

// --- expressions ---

// eval computes the sign of an expression, applying the effects of its
// subexpressions on the block state.
func eval(s *blockState, expr cir.Expr) sign.Sign {
	switch v := expr.(type) {
	case *cir.ExprInt:
		return sign.Of(v.Value)

	case *cir.ExprVar:
		return s.value(v.Var)

	case *cir.ExprAddrOf:
		s.rebind(v.Var, sign.Top)
		return sign.Top

	case *cir.ExprNeg:
		return sign.Neg(eval(s, v.X))

	case *cir.ExprBinary:
		x := eval(s, v.X)
		y := eval(s, v.Y)
		switch v.Op {
		case cir.OpAdd:
			return sign.Add(x, y)
		case cir.OpSub:
			return sign.Sub(x, y)
		case cir.OpMul:
			return sign.Mul(x, y)
		case cir.OpDiv:
			s.observe(ObservedDivisor, v.Pos, y)
			return sign.Div(x, y)
		case cir.OpRem:
			s.observe(ObservedDivisor, v.Pos, y)
			return sign.Top
		default:
			return sign.Top
		}

	case *cir.ExprCall:
		evalAll(s, v.Recv)
		evalAll(s, v.Args...)
		evalAll(s, v.Clobbers...)
		return sign.Top

	case *cir.ExprIndex:
		eval(s, v.X)
		s.observe(ObservedIndex, v.Pos, eval(s, v.Index))
		return sign.Top

	case *cir.ExprSlice:
		eval(s, v.X)
		for _, bound := range [...]cir.Expr{v.Low, v.High, v.Max} {
			if bound != nil {
				s.observe(ObservedSliceBound, v.Pos, eval(s, bound))
			}
		}
		return sign.Top

	case *cir.ExprUnknown:
		evalAll(s, v.Operands...)
		return sign.Top

	default:
		return sign.Top
	}
}

func evalAll(s *blockState, exprs ...cir.Expr) {
	for _, e := range exprs {
		if e != nil {
			eval(s, e)
		}
	}
}
