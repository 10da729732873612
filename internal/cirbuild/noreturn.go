package cirbuild

import (
	"fmt"
	"go/ast"
	"go/types"
	"maps"
	"strings"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/sirkon/cbounds/internal/cir"
)

// Some funcs are known for stopping current func execution or even the whole
// program. Code after their calls is dead and must not be analyzed.
var predefinedNoReturn = map[cir.Reference]struct{}{
	// Stdlib.
	{Package: "os", Name: "Exit"}:                         {},
	{Package: "log", Name: "Fatal"}:                       {},
	{Package: "log", Name: "Fatalf"}:                      {},
	{Package: "log", Name: "Fatalln"}:                     {},
	{Package: "log", Name: "Panic"}:                       {},
	{Package: "log", Name: "Panicf"}:                      {},
	{Package: "log", Name: "Panicln"}:                     {},
	{Package: "runtime", Name: "Goexit"}:                  {},
	{Package: "testing", Type: "common", Name: "Fatal"}:   {},
	{Package: "testing", Type: "common", Name: "Fatalf"}:  {},
	{Package: "testing", Type: "common", Name: "FailNow"}: {},
	{Package: "testing", Type: "common", Name: "Skip"}:    {},
	{Package: "testing", Type: "common", Name: "Skipf"}:   {},
	{Package: "testing", Type: "common", Name: "SkipNow"}: {},

	// Zap.
	{Package: "go.uber.org/zap", Type: "Logger", Name: "Fatal"}:         {},
	{Package: "go.uber.org/zap", Type: "Logger", Name: "Panic"}:         {},
	{Package: "go.uber.org/zap", Type: "SugaredLogger", Name: "Fatal"}:  {},
	{Package: "go.uber.org/zap", Type: "SugaredLogger", Name: "Fatalf"}: {},
	{Package: "go.uber.org/zap", Type: "SugaredLogger", Name: "Fatalw"}: {},
	{Package: "go.uber.org/zap", Type: "SugaredLogger", Name: "Panic"}:  {},
	{Package: "go.uber.org/zap", Type: "SugaredLogger", Name: "Panicf"}: {},
	{Package: "go.uber.org/zap", Type: "SugaredLogger", Name: "Panicw"}: {},
}

// NoReturn is a set of functions that never return.
type NoReturn struct {
	known map[cir.Reference]struct{}
}

// NewNoReturn is [NoReturn] constructor. Custom functions are added to the
// predefined ones.
func NewNoReturn(custom ...cir.Reference) *NoReturn {
	known := maps.Clone(predefinedNoReturn)
	for _, ref := range custom {
		known[ref] = struct{}{}
	}

	return &NoReturn{
		known: known,
	}
}

// Has tells whether the function is known to never return.
func (n *NoReturn) Has(ref cir.Reference) bool {
	_, ok := n.known[ref]
	return ok
}

// MayReturn reports whether the call may return. It is meant for cfg.New
// when no control flow facts are available.
func (n *NoReturn) MayReturn(info *types.Info, call *ast.CallExpr) bool {
	obj := typeutil.Callee(info, call)
	if b, ok := obj.(*types.Builtin); ok {
		return b.Name() != "panic"
	}

	return !n.Has(reference(obj))
}

var defaultNoReturn = NewNoReturn()

// ParseReference parses a function reference in one of the forms
//
//	os.Exit
//	go.uber.org/zap.(*Logger).Fatal
//	go.uber.org/zap.(Logger).Fatal
func ParseReference(s string) (cir.Reference, error) {
	s = strings.TrimSpace(s)

	if open := strings.Index(s, ".("); open >= 0 {
		closing := strings.Index(s[open:], ").")
		if closing < 0 {
			return cir.Reference{}, fmt.Errorf("invalid method reference %q", s)
		}
		closing += open

		res := cir.Reference{
			Package: s[:open],
			Type:    strings.TrimPrefix(s[open+2:closing], "*"),
			Name:    s[closing+2:],
		}
		if res.Package == "" || res.Type == "" || res.Name == "" {
			return cir.Reference{}, fmt.Errorf("invalid method reference %q", s)
		}
		return res, nil
	}

	dot := strings.LastIndex(s, ".")
	if dot <= 0 || dot == len(s)-1 {
		return cir.Reference{}, fmt.Errorf("invalid function reference %q", s)
	}

	return cir.Reference{
		Package: s[:dot],
		Name:    s[dot+1:],
	}, nil
}
