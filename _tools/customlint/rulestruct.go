package customlint

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var ruleStructAnalyzer = &analysis.Analyzer{
	Name: "rulestruct",
	Doc:  "checks that rule structs in internal/rules are documented and have a New constructor",
	Run:  runRuleStruct,
	Requires: []*analysis.Analyzer{
		inspect.Analyzer,
	},
}

func runRuleStruct(pass *analysis.Pass) (any, error) {
	// Only check files in internal/rules/
	if !strings.Contains(pass.Pkg.Path(), "internal/rules") {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	// Constructors may live in any file of the package.
	constructors := make(map[string]bool)
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Recv == nil {
			constructors[fn.Name.Name] = true
		}
	})

	insp.Preorder([]ast.Node{(*ast.GenDecl)(nil)}, func(n ast.Node) {
		genDecl := n.(*ast.GenDecl)

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			if _, ok := typeSpec.Type.(*ast.StructType); !ok {
				continue
			}

			// Only check exported structs that look like rules (end with "Rule")
			name := typeSpec.Name.Name
			if !ast.IsExported(name) || !strings.HasSuffix(name, "Rule") {
				continue
			}

			// TypeSpec.Doc covers grouped declarations; GenDecl.Doc the plain form.
			doc := typeSpec.Doc
			if doc == nil || len(doc.List) == 0 {
				doc = genDecl.Doc
			}
			if doc == nil || len(doc.List) == 0 {
				pass.Reportf(typeSpec.Pos(), "exported rule struct %s should have a documentation comment", name)
			}

			if !constructors["New"+name] {
				pass.Reportf(typeSpec.Pos(), "exported rule struct %s should have a New%s constructor", name, name)
			}
		}
	})

	return nil, nil
}
