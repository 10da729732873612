package cir

import (
	"go/token"
	"go/types"
)

// Node is the base interface implemented by all CIR node types.
type Node interface {
	isNode()
}

// Statement marks nodes that make up block bodies.
type Statement interface {
	Node
	isStatement()
}

// Expr marks nodes that evaluate to an integer sign.
type Expr interface {
	Node
	isExpr()
}

// Variable identifies a tracked integer variable of a function.
type Variable struct {
	// Name is the identifier as written in the source.
	Name string

	// Pos is the position of the declaring identifier. It is NoPos for
	// hand built graphs.
	Pos token.Pos

	// Object is the type checker object behind the variable, if any.
	Object types.Object
}

func (v *Variable) String() string {
	if v == nil {
		return "_"
	}
	return v.Name
}

// Reference identifies a declared entity in Go source code, such as
// a function, type, variable, or constant. It is used to attribute
// call expressions to the callee they invoke.
type Reference struct {
	// Package is the import path of the package that declares the entity
	// (e.g., "io", "fmt", or "example.com/project/module").
	Package string

	// Type is type package-local name. It is needed when some method of
	// a type should be referenced. Will be empty for free functions and
	// variables/constants.
	Type string

	// Name is the declared identifier of the entity within its package.
	Name string
}

func (r Reference) String() string {
	switch {
	case r.Name == "":
		return "<dynamic>"
	case r.Package == "" && r.Type == "":
		return r.Name
	case r.Type == "":
		return r.Package + "." + r.Name
	default:
		return "(" + r.Package + "." + r.Type + ")." + r.Name
	}
}
