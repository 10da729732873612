package cir

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a node as Go-like text.
func Format(n Node) string {
	var b strings.Builder
	format(&b, n)
	return b.String()
}

func format(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case nil:
		b.WriteString("_")

	case *StmtDecl:
		b.WriteString("var ")
		for i, s := range v.Specs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(s.Var.String())
		}
		if len(v.Specs) > 0 && v.Specs[0].Init != nil {
			b.WriteString(" = ")
			for i, s := range v.Specs {
				if i > 0 {
					b.WriteString(", ")
				}
				format(b, s.Init)
			}
		}

	case *StmtAssign:
		op := " = "
		for i, p := range v.Pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			if p.Declare {
				op = " := "
			}
			switch {
			case p.Var != nil:
				b.WriteString(p.Var.String())
			case p.Place != nil:
				format(b, p.Place)
			default:
				b.WriteString("_")
			}
		}
		b.WriteString(op)
		for i, p := range v.Pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, p.Value)
		}

	case *StmtIncDec:
		b.WriteString(v.Var.String())
		if v.Dec {
			b.WriteString("--")
		} else {
			b.WriteString("++")
		}

	case *StmtExpr:
		format(b, v.X)

	case *ExprInt:
		b.WriteString(strconv.FormatInt(v.Value, 10))

	case *ExprVar:
		b.WriteString(v.Var.String())

	case *ExprAddrOf:
		b.WriteString("&")
		b.WriteString(v.Var.String())

	case *ExprBinary:
		b.WriteString("(")
		format(b, v.X)
		b.WriteString(" " + v.Op.String() + " ")
		format(b, v.Y)
		b.WriteString(")")

	case *ExprNeg:
		b.WriteString("-")
		format(b, v.X)

	case *ExprCall:
		switch {
		case v.Recv != nil && v.Ref.Name == "":
			format(b, v.Recv)
		case v.Recv != nil:
			format(b, v.Recv)
			b.WriteString(".")
			b.WriteString(v.Ref.Name)
		default:
			b.WriteString(v.Ref.String())
		}
		formatList(b, "(", v.Args, ")")

	case *ExprIndex:
		format(b, v.X)
		b.WriteString("[")
		format(b, v.Index)
		b.WriteString("]")

	case *ExprSlice:
		format(b, v.X)
		b.WriteString("[")
		formatOptional(b, v.Low)
		b.WriteString(":")
		formatOptional(b, v.High)
		if v.Max != nil {
			b.WriteString(":")
			format(b, v.Max)
		}
		b.WriteString("]")

	case *ExprUnknown:
		formatList(b, "?(", v.Operands, ")")

	default:
		panic(fmt.Errorf("unsupported CIR node %T", n))
	}
}

func formatList(b *strings.Builder, open string, list []Expr, closing string) {
	b.WriteString(open)
	for i, e := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		format(b, e)
	}
	b.WriteString(closing)
}

func formatOptional(b *strings.Builder, e Expr) {
	if e != nil {
		format(b, e)
	}
}
