package main

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"

	"go.uber.org/zap"
	"golang.org/x/tools/go/cfg"
	"golang.org/x/tools/go/packages"

	"github.com/sirkon/cbounds/internal/cir"
	"github.com/sirkon/cbounds/internal/cirbuild"
	"github.com/sirkon/cbounds/internal/engine"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedTypesSizes

// loadPackages loads packages matching the patterns with their syntax and
// type information.
func loadPackages(ctx context.Context, patterns []string, tests bool) ([]*packages.Package, error) {
	pcfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Tests:   tests,
	}

	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var errs []error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Errorf("%s: %w", pkg.PkgPath, e))
		}
	})
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	logger.Debug("packages loaded", zap.Int("count", len(pkgs)), zap.Strings("patterns", patterns))
	return pkgs, nil
}

// funcInputs lists every function with a body of the packages, literals
// included.
func funcInputs(pkgs []*packages.Package, noReturn *cirbuild.NoReturn) []engine.Input {
	var res []engine.Input
	seen := map[string]bool{}

	for _, pkg := range pkgs {
		mayReturn := func(call *ast.CallExpr) bool {
			return noReturn.MayReturn(pkg.TypesInfo, call)
		}

		for _, file := range pkg.Syntax {
			// Test variants of a package share files with it.
			filename := pkg.Fset.Position(file.Pos()).Filename
			if seen[filename] {
				continue
			}
			seen[filename] = true

			ast.Inspect(file, func(n ast.Node) bool {
				var body *ast.BlockStmt
				switch v := n.(type) {
				case *ast.FuncDecl:
					body = v.Body
				case *ast.FuncLit:
					body = v.Body
				default:
					return true
				}
				if body == nil {
					return true
				}

				res = append(res, engine.Input{
					Fset:  pkg.Fset,
					Node:  n,
					CFG:   cfg.New(body, mayReturn),
					Info:  pkg.TypesInfo,
					Sizes: sizesOf(pkg),
				})
				return true
			})
		}
	}

	return res
}

func sizesOf(pkg *packages.Package) types.Sizes {
	if pkg.TypesSizes != nil {
		return pkg.TypesSizes
	}

	return types.SizesFor("gc", "amd64")
}

// noReturnFuncs builds the set of functions that never return from the
// configuration.
func noReturnFuncs(names []string) (*cirbuild.NoReturn, error) {
	var custom []cir.Reference
	for _, name := range names {
		ref, err := cirbuild.ParseReference(name)
		if err != nil {
			return nil, fmt.Errorf("no-return function: %w", err)
		}
		custom = append(custom, ref)
	}

	return cirbuild.NewNoReturn(custom...), nil
}
