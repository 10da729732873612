package cir

// StmtExpr represents an expression evaluated only for its effects: an
// expression statement, a return value, a condition, a send, a go or defer
// call.
//
//	fmt.Println(a[i])  // X: <ExprCall>
//	return x / y       // X: <ExprBinary>
//	if i < n {         // X: <ExprUnknown>
type StmtExpr struct {
	X Expr
}

func (*StmtExpr) isNode()      {}
func (*StmtExpr) isStatement() {}
