package sign

import (
	"fmt"
	"testing"
)

type binaryOp struct {
	name     string
	abstract func(a, b Sign) Sign
	concrete func(a, b int64) int64
}

var arithmetic = []binaryOp{
	{
		name:     "add",
		abstract: Add,
		concrete: func(a, b int64) int64 { return a + b },
	},
	{
		name:     "sub",
		abstract: Sub,
		concrete: func(a, b int64) int64 { return a - b },
	},
	{
		name:     "mul",
		abstract: Mul,
		concrete: func(a, b int64) int64 { return a * b },
	},
}

func TestOf(t *testing.T) {
	tests := []struct {
		v    int64
		want Sign
	}{
		{v: -100, want: Negative},
		{v: -1, want: Negative},
		{v: 0, want: Zero},
		{v: 1, want: Positive},
		{v: 1 << 40, want: Positive},
	}
	for _, tt := range tests {
		if got := Of(tt.v); got != tt.want {
			t.Errorf("Of(%d) = %s, want %s", tt.v, got, tt.want)
		}
	}
}

func TestJoinLaws(t *testing.T) {
	for _, x := range All {
		if got := Join(x, x); got != x {
			t.Errorf("join(%s, %s) = %s, want idempotence", x, x, got)
		}
		if got := Join(Bottom, x); got != x {
			t.Errorf("join(BOTTOM, %s) = %s", x, got)
		}
		if got := Join(Top, x); got != Top {
			t.Errorf("join(TOP, %s) = %s", x, got)
		}

		for _, y := range All {
			if Join(x, y) != Join(y, x) {
				t.Errorf("join(%s, %s) is not commutative", x, y)
			}
			if x != y && x != Bottom && y != Bottom && x != Top && y != Top && Join(x, y) != Top {
				t.Errorf("join(%s, %s) = %s, want TOP", x, y, Join(x, y))
			}

			for _, z := range All {
				if Join(Join(x, y), z) != Join(x, Join(y, z)) {
					t.Errorf("join(%s, %s, %s) is not associative", x, y, z)
				}
			}
		}
	}
}

func TestSoundness(t *testing.T) {
	for _, op := range arithmetic {
		t.Run(op.name, func(t *testing.T) {
			for a := int64(-6); a <= 6; a++ {
				for b := int64(-6); b <= 6; b++ {
					got := op.abstract(Of(a), Of(b))
					if !got.Contains(op.concrete(a, b)) {
						t.Errorf(
							"%s(%s, %s) = %s does not cover %d %s %d = %d",
							op.name, Of(a), Of(b), got, a, op.name, b, op.concrete(a, b),
						)
					}
				}
			}
		})
	}

	t.Run("div", func(t *testing.T) {
		for a := int64(-6); a <= 6; a++ {
			for b := int64(-6); b <= 6; b++ {
				if b == 0 {
					continue
				}
				if got := Div(Of(a), Of(b)); !got.Contains(a / b) {
					t.Errorf("div(%d, %d) not covered by %s", a, b, got)
				}
			}
		}
	})

	t.Run("unary", func(t *testing.T) {
		for a := int64(-6); a <= 6; a++ {
			if !Inc(Of(a)).Contains(a + 1) {
				t.Errorf("inc(%d) not covered by %s", a, Inc(Of(a)))
			}
			if !Dec(Of(a)).Contains(a - 1) {
				t.Errorf("dec(%d) not covered by %s", a, Dec(Of(a)))
			}
			if !Neg(Of(a)).Contains(-a) {
				t.Errorf("neg(%d) not covered by %s", a, Neg(Of(a)))
			}
		}
	})
}

func TestMonotonicity(t *testing.T) {
	ops := append([]binaryOp{}, arithmetic...)
	ops = append(ops, binaryOp{name: "div", abstract: Div})

	for _, op := range ops {
		for _, x := range All {
			for _, xx := range All {
				if !x.Leq(xx) {
					continue
				}
				for _, y := range All {
					if !op.abstract(x, y).Leq(op.abstract(xx, y)) {
						t.Errorf("%s is not monotone in lhs: %s ⊑ %s, rhs %s", op.name, x, xx, y)
					}
					if !op.abstract(y, x).Leq(op.abstract(y, xx)) {
						t.Errorf("%s is not monotone in rhs: %s ⊑ %s, lhs %s", op.name, x, xx, y)
					}
				}
			}
		}
	}

	unary := map[string]func(Sign) Sign{"inc": Inc, "dec": Dec, "neg": Neg}
	for name, op := range unary {
		for _, x := range All {
			for _, xx := range All {
				if x.Leq(xx) && !op(x).Leq(op(xx)) {
					t.Errorf("%s is not monotone: %s ⊑ %s", name, x, xx)
				}
			}
		}
	}
}

func TestArithmeticTable(t *testing.T) {
	tests := []struct {
		name string
		got  Sign
		want Sign
	}{
		{name: "bottom dominates add", got: Add(Bottom, Top), want: Bottom},
		{name: "top dominates add", got: Add(Top, Positive), want: Top},
		{name: "zero is identity", got: Add(Zero, Negative), want: Negative},
		{name: "same sign add", got: Add(Positive, Positive), want: Positive},
		{name: "opposite sign add", got: Add(Negative, Positive), want: Top},
		{name: "pos minus neg", got: Sub(Positive, Negative), want: Positive},
		{name: "neg minus pos", got: Sub(Negative, Positive), want: Negative},
		{name: "zero minus pos", got: Sub(Zero, Positive), want: Negative},
		{name: "pos minus pos", got: Sub(Positive, Positive), want: Top},
		{name: "zero absorbs", got: Mul(Zero, Negative), want: Zero},
		{name: "top before zero", got: Mul(Top, Zero), want: Top},
		{name: "neg times neg", got: Mul(Negative, Negative), want: Positive},
		{name: "pos times neg", got: Mul(Positive, Negative), want: Negative},
		{name: "neg times pos", got: Mul(Negative, Positive), want: Negative},
		{name: "division", got: Div(Positive, Positive), want: Top},
		{name: "inc zero", got: Inc(Zero), want: Positive},
		{name: "inc negative", got: Inc(Negative), want: Top},
		{name: "inc bottom", got: Inc(Bottom), want: Bottom},
		{name: "dec zero", got: Dec(Zero), want: Negative},
		{name: "dec positive", got: Dec(Positive), want: Top},
		{name: "dec top", got: Dec(Top), want: Top},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	for _, s := range All {
		t.Run(s.String(), func(t *testing.T) {
			data, err := s.MarshalText()
			if err != nil {
				t.Fatal(fmt.Errorf("marshal: %w", err))
			}

			var got Sign
			if err := got.UnmarshalText(data); err != nil {
				t.Fatal(fmt.Errorf("unmarshal: %w", err))
			}
			if got != s {
				t.Errorf("got %s, want %s", got, s)
			}
		})
	}

	var s Sign
	if err := s.UnmarshalText([]byte("MAYBE")); err == nil {
		t.Error("error was expected for an unknown sign")
	}
	if _, err := Sign(42).MarshalText(); err == nil {
		t.Error("error was expected for an invalid sign")
	}
}
