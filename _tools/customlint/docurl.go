package customlint

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const docURLMessage = "use rules.DocURL instead of hardcoded DocURL string %s"

var docURLAnalyzer = &analysis.Analyzer{
	Name: "docurl",
	Doc:  "checks that rule doc links use the rules.DocURL helper instead of hardcoded strings",
	Run:  runDocURL,
	Requires: []*analysis.Analyzer{
		inspect.Analyzer,
	},
}

func runDocURL(pass *analysis.Pass) (any, error) {
	// Only check files in internal/rules/.
	if !strings.Contains(pass.Pkg.Path(), "internal/rules") {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.KeyValueExpr)(nil),
		(*ast.CallExpr)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch node := n.(type) {
		case *ast.KeyValueExpr:
			checkDocURLField(pass, node)
		case *ast.CallExpr:
			checkWithDocURLCall(pass, node)
		}
	})

	return nil, nil
}

// checkDocURLField reports if a struct literal has DocURL: "..." with a string literal.
func checkDocURLField(pass *analysis.Pass, kv *ast.KeyValueExpr) {
	ident, ok := kv.Key.(*ast.Ident)
	if !ok || ident.Name != "DocURL" {
		return
	}
	reportStringLiteral(pass, kv.Value)
}

// checkWithDocURLCall reports finding.WithDocURL("...") calls.
func checkWithDocURLCall(pass *analysis.Pass, call *ast.CallExpr) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "WithDocURL" || len(call.Args) != 1 {
		return
	}
	reportStringLiteral(pass, call.Args[0])
}

func reportStringLiteral(pass *analysis.Pass, expr ast.Expr) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return
	}
	pass.Reportf(lit.Pos(), docURLMessage, lit.Value)
}
