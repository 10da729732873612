package cirbuild

import (
	"go/types"
)

// isSignedInteger reports whether values of the type are signed integers.
func isSignedInteger(typ types.Type) bool {
	basic, ok := typ.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	info := basic.Info()
	return info&types.IsInteger != 0 && info&types.IsUnsigned == 0
}

func isInteger(typ types.Type) bool {
	if typ == nil {
		return false
	}

	basic, ok := typ.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsInteger != 0
}

func isFunc(typ types.Type) bool {
	_, ok := typ.Underlying().(*types.Signature)
	return ok
}

// isIndexable reports whether indexing values of the type panics on
// negative indices.
func isIndexable(typ types.Type) bool {
	switch v := typ.Underlying().(type) {
	case *types.Slice, *types.Array:
		return true
	case *types.Pointer:
		_, ok := v.Elem().Underlying().(*types.Array)
		return ok
	case *types.Basic:
		return v.Info()&types.IsString != 0
	default:
		return false
	}
}

func hasPointerReceiver(sel *types.Selection) bool {
	fn, ok := sel.Obj().(*types.Func)
	if !ok {
		return false
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	_, ok = sig.Recv().Type().(*types.Pointer)
	return ok
}
