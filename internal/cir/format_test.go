package cir

import (
	"testing"
)

func TestFormat(t *testing.T) {
	x := &Variable{Name: "x"}
	y := &Variable{Name: "y"}

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "declaration",
			node: &StmtDecl{Specs: []DeclSpec{
				{Var: x, Init: &ExprInt{Value: 5}},
				{Var: y, Init: &ExprNeg{X: &ExprInt{Value: 1}}},
			}},
			want: "var x, y = 5, -1",
		},
		{
			name: "bare declaration",
			node: &StmtDecl{Specs: []DeclSpec{{Var: x}}},
			want: "var x",
		},
		{
			name: "swap",
			node: &StmtAssign{Pairs: []Assignment{
				{Var: x, Value: &ExprVar{Var: y}},
				{Var: y, Value: &ExprVar{Var: x}},
			}},
			want: "x, y = y, x",
		},
		{
			name: "short declaration with blank",
			node: &StmtAssign{Pairs: []Assignment{
				{Var: x, Value: &ExprCall{Ref: Reference{Package: "strconv", Name: "Atoi"}}, Declare: true},
				{Value: &ExprCall{Ref: Reference{Package: "strconv", Name: "Atoi"}}},
			}},
			want: "x, _ := strconv.Atoi(), strconv.Atoi()",
		},
		{
			name: "increment",
			node: &StmtIncDec{Var: x},
			want: "x++",
		},
		{
			name: "decrement",
			node: &StmtIncDec{Var: x, Dec: true},
			want: "x--",
		},
		{
			name: "arithmetic",
			node: &ExprBinary{
				Op: OpSub,
				X:  &ExprVar{Var: x},
				Y:  &ExprBinary{Op: OpMul, X: &ExprInt{Value: 2}, Y: &ExprVar{Var: y}},
			},
			want: "(x - (2 * y))",
		},
		{
			name: "method call",
			node: &StmtExpr{X: &ExprCall{
				Ref:  Reference{Package: "bytes", Type: "Buffer", Name: "Grow"},
				Recv: &ExprUnknown{},
				Args: []Expr{&ExprVar{Var: x}},
			}},
			want: "?().Grow(x)",
		},
		{
			name: "dynamic call",
			node: &ExprCall{Args: []Expr{&ExprAddrOf{Var: x}, &ExprInt{Value: 0}}},
			want: "<dynamic>(&x, 0)",
		},
		{
			name: "index",
			node: &ExprIndex{X: &ExprUnknown{}, Index: &ExprVar{Var: x}},
			want: "?()[x]",
		},
		{
			name: "full slice",
			node: &ExprSlice{X: &ExprUnknown{}, High: &ExprVar{Var: x}, Max: &ExprVar{Var: y}},
			want: "?()[:x:y]",
		},
		{
			name: "unknown",
			node: &ExprUnknown{Operands: []Expr{&ExprVar{Var: x}, &ExprInt{Value: 3}}},
			want: "?(x, 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReferenceString(t *testing.T) {
	tests := []struct {
		ref  Reference
		want string
	}{
		{ref: Reference{}, want: "<dynamic>"},
		{ref: Reference{Name: "len"}, want: "len"},
		{ref: Reference{Package: "os", Name: "Exit"}, want: "os.Exit"},
		{ref: Reference{Package: "bytes", Type: "Buffer", Name: "Len"}, want: "(bytes.Buffer).Len"},
	}

	for _, tt := range tests {
		if got := tt.ref.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestGraphBuilding(t *testing.T) {
	g := &Graph{Name: "f"}
	if g.Entry() != nil {
		t.Fatal("empty graph must have no entry")
	}

	entry := g.NewBlock("entry")
	body := g.NewBlock("body")
	Connect(entry, body)
	Connect(body, body)

	if g.Entry() != entry {
		t.Error("the first block is the entry")
	}
	if body.Index != 1 {
		t.Errorf("index 1 was expected, got %d", body.Index)
	}
	if len(body.Preds) != 2 || body.Preds[0] != entry || body.Preds[1] != body {
		t.Errorf("unexpected predecessors of body: %v", body.Preds)
	}
	if len(entry.Succs) != 1 || entry.Succs[0] != body {
		t.Errorf("unexpected successors of entry: %v", entry.Succs)
	}
}
