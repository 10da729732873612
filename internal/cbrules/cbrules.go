package cbrules

import (
	"fmt"
	"strings"
)

// Rule represents a cbounds rule code (CB-series).
type Rule int

const (
	ruleInvalid Rule = iota

	CB001NegativeIndex
	CB002NegativeSliceBound
	CB010DivisionByZero
	CB900AnalysisFailure
)

// All returns every known rule in code order.
func All() []Rule {
	return []Rule{
		CB001NegativeIndex,
		CB002NegativeSliceBound,
		CB010DivisionByZero,
		CB900AnalysisFailure,
	}
}

// Code returns the short code of the rule, e.g. "CB001".
func (r Rule) Code() string {
	switch r {
	case CB001NegativeIndex:
		return "CB001"
	case CB002NegativeSliceBound:
		return "CB002"
	case CB010DivisionByZero:
		return "CB010"
	case CB900AnalysisFailure:
		return "CB900"
	default:
		return fmt.Sprintf("CB?%d", r)
	}
}

// Name returns the short name of the rule, e.g. "NegativeIndex".
func (r Rule) Name() string {
	switch r {
	case CB001NegativeIndex:
		return "NegativeIndex"
	case CB002NegativeSliceBound:
		return "NegativeSliceBound"
	case CB010DivisionByZero:
		return "DivisionByZero"
	case CB900AnalysisFailure:
		return "AnalysisFailure"
	default:
		return "Unknown"
	}
}

// String returns the canonical code and short name of the rule.
// Example: "CB001: NegativeIndex"
func (r Rule) String() string {
	switch r {
	case CB001NegativeIndex, CB002NegativeSliceBound, CB010DivisionByZero, CB900AnalysisFailure:
		return r.Code() + ": " + r.Name()
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case CB001NegativeIndex:
		return "Index expression is always negative."
	case CB002NegativeSliceBound:
		return "Slice bound is always negative."
	case CB010DivisionByZero:
		return "Divisor is always zero."
	case CB900AnalysisFailure:
		return "Function could not be analyzed."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Parse returns the rule with the given code or name, case-insensitive.
func Parse(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	for _, r := range All() {
		if strings.EqualFold(s, r.Code()) || strings.EqualFold(s, r.Name()) {
			return r, nil
		}
	}

	return ruleInvalid, fmt.Errorf("unknown rule %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if r.Name() == "Unknown" {
		return nil, fmt.Errorf("invalid rule %d", int(r))
	}

	return []byte(r.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*r = v
	return nil
}

// Canonical constructors.

func NegativeIndex() Rule      { return CB001NegativeIndex }
func NegativeSliceBound() Rule { return CB002NegativeSliceBound }
func DivisionByZero() Rule     { return CB010DivisionByZero }
func AnalysisFailure() Rule    { return CB900AnalysisFailure }
