package cir

// StmtDecl represents declarations of integer variables. Each spec opens
// a new binding for Var initialized from Init.
//
//	var x = 1          // Specs: [{Var: x, Init: <ExprInt>(1)}]
//	var a, b int = 1, 2
//	var y int          // Init: <ExprInt>(0)
//
// A nil Init leaves the variable at BOTTOM, which only makes sense for
// hand built graphs: Go always zero-initializes. A nil Var declares something
// that is not tracked, its Init is still evaluated.
type StmtDecl struct {
	Specs []DeclSpec
}

// DeclSpec is a single declared variable of [StmtDecl].
type DeclSpec struct {
	Var  *Variable
	Init Expr
}

// StmtAssign represents a (possibly parallel) assignment. All Place and
// Value expressions are evaluated before any binding changes, so
//
//	a, b = b, a
//
// swaps the signs of a and b.
//
// A pair with a nil Var targets something that is not a tracked variable
// (a field, an element, a dereference, `_`, or a non integer variable);
// its Place is still evaluated for effects and its Value is dropped.
//
// Pairs with Declare set come from short variable declarations and open
// fresh bindings:
//
//	x, err := f() // Pairs: [{Var: x, Value: <ExprCall>, Declare: true}, {Var: nil, …}]
type StmtAssign struct {
	Pairs []Assignment
}

// Assignment is a single target of [StmtAssign].
//
// Clobbers of a store through a pointer are address-of expressions of
// escaped variables the store may change. They are evaluated after every
// target of the statement is assigned and are not printed.
type Assignment struct {
	Var      *Variable
	Place    Expr
	Value    Expr
	Declare  bool
	Clobbers []Expr
}

// StmtIncDec represents `x++` and `x--` on a tracked variable.
//
//	i++ // Var: i
//	i-- // Var: i, Dec: true
//
// Increments of untracked places are expressed as StmtExpr over their operands.
type StmtIncDec struct {
	Var *Variable
	Dec bool
}

func (*StmtDecl) isNode()        {}
func (*StmtDecl) isStatement()   {}
func (*StmtAssign) isNode()      {}
func (*StmtAssign) isStatement() {}
func (*StmtIncDec) isNode()      {}
func (*StmtIncDec) isStatement() {}
