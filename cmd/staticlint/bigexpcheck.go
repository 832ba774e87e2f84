package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// BigExpAnalyzer reports (*big.Int).Exp calls with a literal nil modulus and
// math.Pow calls. Both raise to a power before reducing, which overflows or
// explodes in size for key-sized exponents.
var BigExpAnalyzer = &analysis.Analyzer{
	Name: "bigexp",
	Doc:  "exponentiation must be modular: no (*big.Int).Exp with nil modulus, no math.Pow.",
	Run:  runBigExp,
}

func runBigExp(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			if isPkgFunc(pass, call, "math", "Pow") {
				pass.Reportf(call.Pos(), "math.Pow used, use (*big.Int).Exp with a modulus.")
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok || sel.Sel.Name != "Exp" || len(call.Args) != 3 {
				return true
			}
			fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
			if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "math/big" {
				return true
			}
			if ident, ok := call.Args[2].(*ast.Ident); ok && ident.Name == "nil" {
				pass.Reportf(call.Pos(), "(*big.Int).Exp called without a modulus.")
			}
			return true
		})
	}

	return nil, nil
}

// isPkgFunc reports whether call invokes pkg.name, resolving the package
// through type information so renamed imports are caught.
func isPkgFunc(pass *analysis.Pass, call *ast.CallExpr, pkg, name string) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != name {
		return false
	}
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return false
	}
	return pkgName.Imported().Path() == pkg
}
