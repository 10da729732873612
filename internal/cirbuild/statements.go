package cirbuild

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/cbounds/internal/cir"
)

// node translates a single cfg node into a statement.
func (b *builder) node(n ast.Node) cir.Statement {
	switch v := n.(type) {
	case *ast.AssignStmt:
		return b.onAssign(v)
	case *ast.ValueSpec:
		return b.onValueSpec(v)
	case *ast.IncDecStmt:
		return b.onIncDec(v)
	case *ast.ExprStmt:
		return &cir.StmtExpr{X: b.expr(v.X)}
	case *ast.ReturnStmt:
		return b.onReturn(v)
	case *ast.GoStmt:
		return &cir.StmtExpr{X: b.expr(v.Call)}
	case *ast.DeferStmt:
		return &cir.StmtExpr{X: b.expr(v.Call)}
	case *ast.SendStmt:
		return &cir.StmtExpr{X: unknown(b.expr(v.Chan), b.expr(v.Value))}
	case *ast.DeclStmt:
		// Only appears in older cfg versions, newer ones split var specs.
		return b.onDecl(v)
	case ast.Expr:
		if rng, ok := b.rangeVars[v]; ok {
			return b.onRangeVar(rng, v)
		}
		return &cir.StmtExpr{X: b.expr(v)}
	default:
		// Empty and bad statements.
		return &cir.StmtExpr{X: unknown()}
	}
}

// --- Handlers -------------------------------------------------------------------------------------------------------

func (b *builder) onAssign(as *ast.AssignStmt) cir.Statement {
	if op, ok := compoundOps[as.Tok]; ok && len(as.Lhs) == 1 && len(as.Rhs) == 1 {
		return b.onCompound(as, op)
	}

	pairs := make([]cir.Assignment, len(as.Lhs))
	for i, lhs := range as.Lhs {
		pairs[i] = b.target(lhs, as.Tok == token.DEFINE)
	}

	switch {
	case len(as.Lhs) == len(as.Rhs):
		for i, rhs := range as.Rhs {
			pairs[i].Value = b.expr(rhs)
		}
	case len(as.Rhs) == 1:
		// v, ok := m[k], a, b := f() and so on: the only value is evaluated once.
		pairs[0].Value = unknown(b.expr(as.Rhs[0]))
		for i := 1; i < len(pairs); i++ {
			pairs[i].Value = unknown()
		}
	default:
		for i := range pairs {
			pairs[i].Value = unknown()
		}
	}

	return &cir.StmtAssign{Pairs: pairs}
}

// compoundOps maps compound assignment tokens to binary operators.
var compoundOps = map[token.Token]token.Token{
	token.ADD_ASSIGN:     token.ADD,
	token.SUB_ASSIGN:     token.SUB,
	token.MUL_ASSIGN:     token.MUL,
	token.QUO_ASSIGN:     token.QUO,
	token.REM_ASSIGN:     token.REM,
	token.AND_ASSIGN:     token.AND,
	token.OR_ASSIGN:      token.OR,
	token.XOR_ASSIGN:     token.XOR,
	token.SHL_ASSIGN:     token.SHL,
	token.SHR_ASSIGN:     token.SHR,
	token.AND_NOT_ASSIGN: token.AND_NOT,
}

// onCompound desugars `x op= y` into `x = x op y`.
func (b *builder) onCompound(as *ast.AssignStmt, op token.Token) cir.Statement {
	lhs := ast.Unparen(as.Lhs[0])

	var pair cir.Assignment
	if id, ok := lhs.(*ast.Ident); ok {
		pair.Var = b.lookup(id)
	} else if b.isDeref(lhs) {
		pair.Clobbers = b.clobbers()
	}

	pair.Value = b.binary(op, b.expr(lhs), b.expr(as.Rhs[0]), b.info.TypeOf(lhs), as.TokPos)
	return &cir.StmtAssign{Pairs: []cir.Assignment{pair}}
}

func (b *builder) onValueSpec(spec *ast.ValueSpec) cir.Statement {
	specs := make([]cir.DeclSpec, len(spec.Names))
	for i, name := range spec.Names {
		specs[i].Var = b.lookup(name)
	}

	switch {
	case len(spec.Values) == 0:
		for i := range specs {
			if specs[i].Var != nil {
				specs[i].Init = &cir.ExprInt{Value: 0}
			}
		}
	case len(spec.Values) == len(spec.Names):
		for i, value := range spec.Values {
			specs[i].Init = b.expr(value)
		}
	default:
		specs[0].Init = unknown(b.expr(spec.Values[0]))
		for i := 1; i < len(specs); i++ {
			specs[i].Init = unknown()
		}
	}

	return &cir.StmtDecl{Specs: specs}
}

func (b *builder) onDecl(decl *ast.DeclStmt) cir.Statement {
	gen, ok := decl.Decl.(*ast.GenDecl)
	if !ok || gen.Tok != token.VAR {
		return &cir.StmtExpr{X: unknown()}
	}

	res := &cir.StmtDecl{}
	for _, spec := range gen.Specs {
		if vs, ok := spec.(*ast.ValueSpec); ok {
			res.Specs = append(res.Specs, b.onValueSpec(vs).(*cir.StmtDecl).Specs...)
		}
	}

	return res
}

func (b *builder) onIncDec(s *ast.IncDecStmt) cir.Statement {
	if id, ok := ast.Unparen(s.X).(*ast.Ident); ok {
		if v := b.lookup(id); v != nil {
			return &cir.StmtIncDec{Var: v, Dec: s.Tok == token.DEC}
		}
	}

	operands := []cir.Expr{b.expr(s.X)}
	if b.isDeref(s.X) {
		operands = append(operands, b.clobbers()...)
	}
	return &cir.StmtExpr{X: unknown(operands...)}
}

func (b *builder) onReturn(r *ast.ReturnStmt) cir.Statement {
	if len(r.Results) == 1 {
		return &cir.StmtExpr{X: b.expr(r.Results[0])}
	}

	return &cir.StmtExpr{X: unknown(b.exprs(r.Results)...)}
}

// onRangeVar translates the key or the value of a range statement. Its
// sign is unknown: it depends on the collection.
func (b *builder) onRangeVar(rng *ast.RangeStmt, e ast.Expr) cir.Statement {
	pair := b.target(e, rng.Tok == token.DEFINE)
	pair.Value = unknown()

	if pair.Declare {
		return &cir.StmtDecl{Specs: []cir.DeclSpec{{Var: pair.Var, Init: pair.Value}}}
	}
	return &cir.StmtAssign{Pairs: []cir.Assignment{pair}}
}

// target translates the left hand side of an assignment.
func (b *builder) target(lhs ast.Expr, define bool) cir.Assignment {
	lhs = ast.Unparen(lhs)

	id, ok := lhs.(*ast.Ident)
	if !ok {
		// Elements, fields and dereferences are not tracked, but evaluating
		// them still matters: a[i] = 0 observes i. A store through a pointer
		// may change any escaped variable.
		res := cir.Assignment{Place: b.expr(lhs)}
		if b.isDeref(lhs) {
			res.Clobbers = b.clobbers()
		}
		return res
	}
	if id.Name == "_" {
		return cir.Assignment{}
	}

	return cir.Assignment{
		Var:     b.lookup(id),
		Declare: define && b.info.Defs[id] != nil,
	}
}
