package cir

// ExprVar represents a read of a variable.
//
//	y := x // Var: x
//
// Reading a variable the engine does not track, or one without a live
// binding, yields TOP.
type ExprVar struct {
	Var *Variable
}

// ExprAddrOf represents taking the address of a variable. Once the address
// escapes the variable may change behind the engine's back, so its binding
// is reset to TOP.
//
//	p := &x      // Var: x
//	x.Method()   // Var: x, when Method has a pointer receiver
//	func() { x++ }
type ExprAddrOf struct {
	Var *Variable
}

// Interface markers.
func (*ExprVar) isNode()    {}
func (*ExprVar) isExpr()    {}
func (*ExprAddrOf) isNode() {}
func (*ExprAddrOf) isExpr() {}
