// Package sign defines the sign lattice used to abstract integer values.
//
// The lattice is flat and has height 2:
//
//	           Top
//	       /    |     \
//	Negative  Zero  Positive
//	       \    |     /
//	          Bottom
//
// Bottom means no information has reached a program point yet, Top means
// the value may have any sign.
package sign

import (
	"encoding"
	"fmt"
)

// Sign is an element of the sign lattice.
type Sign uint8

const (
	Bottom Sign = iota
	Negative
	Zero
	Positive
	Top
)

// All lists every lattice element in a stable order.
var All = [...]Sign{Bottom, Negative, Zero, Positive, Top}

var signNames = map[Sign]string{
	Bottom:   "BOTTOM",
	Negative: "NEGATIVE",
	Zero:     "ZERO",
	Positive: "POSITIVE",
	Top:      "TOP",
}

// Of classifies an integer literal.
func Of(v int64) Sign {
	switch {
	case v < 0:
		return Negative
	case v > 0:
		return Positive
	default:
		return Zero
	}
}

// Join returns the least upper bound of a and b.
func Join(a, b Sign) Sign {
	switch {
	case a == Bottom:
		return b
	case b == Bottom:
		return a
	case a == b:
		return a
	default:
		return Top
	}
}

// Leq reports whether a ⊑ b.
func (s Sign) Leq(o Sign) bool {
	return Join(s, o) == o
}

// Contains reports whether the concrete value v is described by s.
func (s Sign) Contains(v int64) bool {
	switch s {
	case Top:
		return true
	case Bottom:
		return false
	default:
		return Of(v) == s
	}
}

// --- Arithmetic -----------------------------------------------------------------------------------------------------

// Add models a + b.
func Add(a, b Sign) Sign {
	if a == Bottom || b == Bottom {
		return Bottom
	}
	if a == Top || b == Top {
		return Top
	}
	if b == Zero {
		return a
	}
	if a == Zero {
		return b
	}
	if a == b {
		// Same sign addition keeps the sign.
		return a
	}

	return Top
}

// Sub models a - b as a + (-b).
func Sub(a, b Sign) Sign {
	return Add(a, Neg(b))
}

// Mul models a * b.
func Mul(a, b Sign) Sign {
	if a == Bottom || b == Bottom {
		return Bottom
	}
	if a == Top || b == Top {
		return Top
	}
	if a == Zero || b == Zero {
		return Zero
	}
	if a == b {
		return Positive
	}

	return Negative
}

// Div models integer a / b. Truncating division does not distribute over
// signs (1/2 == 0), so nothing tighter than Top is returned.
func Div(a, b Sign) Sign {
	return Top
}

// Neg models unary minus.
func Neg(a Sign) Sign {
	switch a {
	case Negative:
		return Positive
	case Positive:
		return Negative
	default:
		return a
	}
}

// Inc models a + 1.
func Inc(a Sign) Sign {
	switch a {
	case Zero, Positive:
		return Positive
	case Negative:
		// -1 + 1 crosses into Zero.
		return Top
	default:
		return a
	}
}

// Dec models a - 1.
func Dec(a Sign) Sign {
	switch a {
	case Zero, Negative:
		return Negative
	case Positive:
		return Top
	default:
		return a
	}
}

// --- Text -----------------------------------------------------------------------------------------------------------

func (s Sign) String() string {
	v, ok := signNames[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = Sign(0)
	_ encoding.TextUnmarshaler = (*Sign)(nil)
)

// MarshalText renders the sign name.
func (s Sign) MarshalText() ([]byte, error) {
	v, ok := signNames[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid sign %d", uint8(s))
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, expectations, etc.
func (s *Sign) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range signNames {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown sign %q", text)
}
