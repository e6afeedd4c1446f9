package directive

import (
	"math"
	"testing"

	"github.com/wharflab/julint/internal/rules"
)

func TestParseNextLine(t *testing.T) {
	content := "# julint ignore=not-in\n\"a\" not in ys"
	result := Parse(content, nil)

	if len(result.Directives) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(result.Directives))
	}
	d := result.Directives[0]
	if d.Type != TypeNextLine {
		t.Errorf("expected TypeNextLine, got %v", d.Type)
	}
	if len(d.Rules) != 1 || d.Rules[0] != "not-in" {
		t.Errorf("expected [not-in], got %v", d.Rules)
	}
	if d.Line != 1 {
		t.Errorf("expected directive on line 1, got %d", d.Line)
	}
	if d.AppliesTo.Start != 2 || d.AppliesTo.End != 2 {
		t.Errorf("expected AppliesTo {2, 2}, got %v", d.AppliesTo)
	}
}

func TestParseMultipleRules(t *testing.T) {
	content := "# julint ignore=not-in, julia/python-operators ,indentation\nx = 1"
	result := Parse(content, nil)

	if len(result.Directives) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(result.Directives))
	}
	expected := []string{"not-in", "julia/python-operators", "indentation"}
	d := result.Directives[0]
	if len(d.Rules) != len(expected) {
		t.Fatalf("expected %d rules, got %v", len(expected), d.Rules)
	}
	for i, r := range expected {
		if d.Rules[i] != r {
			t.Errorf("expected rule %d to be %s, got %s", i, r, d.Rules[i])
		}
	}
}

func TestParseGlobal(t *testing.T) {
	content := "x = 1\n# julint global ignore=indentation\ny = 2"
	result := Parse(content, nil)

	if len(result.Directives) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(result.Directives))
	}
	d := result.Directives[0]
	if d.Type != TypeGlobal {
		t.Errorf("expected TypeGlobal, got %v", d.Type)
	}
	if d.AppliesTo.Start != 1 || d.AppliesTo.End != math.MaxInt {
		t.Errorf("expected global range, got %v", d.AppliesTo)
	}
	if !result.SuppressesGlobally("julia/indentation") {
		t.Error("SuppressesGlobally(julia/indentation) = false")
	}
	if result.SuppressesGlobally("julia/not-in") {
		t.Error("SuppressesGlobally(julia/not-in) = true")
	}
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	result := Parse("#JULINT Global IGNORE=all\nx", nil)
	if len(result.Directives) != 1 || result.Directives[0].Type != TypeGlobal {
		t.Fatalf("expected one global directive, got %+v", result.Directives)
	}
}

func TestParseTrailingComment(t *testing.T) {
	result := Parse("x = 1  # julint ignore=python-operators\ny = True", nil)
	if len(result.Directives) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(result.Directives))
	}
	if got := result.Directives[0].AppliesTo; got.Start != 2 {
		t.Errorf("AppliesTo = %v, want line 2", got)
	}
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	content := "# julint ignore=not-in\n\n# explanation\n   \n\"a\" not in ys"
	result := Parse(content, nil)

	if len(result.Directives) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(result.Directives))
	}
	if got := result.Directives[0].AppliesTo; got.Start != 5 || got.End != 5 {
		t.Errorf("AppliesTo = %v, want {5, 5}", got)
	}
}

func TestParseAtEndOfFile(t *testing.T) {
	result := Parse("x = 1\n# julint ignore=not-in\n", nil)

	if len(result.Directives) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(result.Directives))
	}
	d := result.Directives[0]
	if d.SuppressesLine(1) || d.SuppressesLine(2) || d.SuppressesLine(3) {
		t.Errorf("directive at end of file should match no line, got %v", d.AppliesTo)
	}
}

func TestParseEmptyRuleList(t *testing.T) {
	result := Parse("# julint ignore=\nx = 1", nil)

	if len(result.Directives) != 0 {
		t.Errorf("expected no directives, got %d", len(result.Directives))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if got := result.Errors[0].Error(); got != "line 1: empty rule list" {
		t.Errorf("Error() = %q", got)
	}
}

func TestParseUnknownRule(t *testing.T) {
	known := func(code string) bool { return code == "not-in" }
	result := Parse("# julint ignore=not-in,bogus\nx = 1", known)

	if len(result.Directives) != 1 {
		t.Errorf("expected directive to be kept, got %d", len(result.Directives))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if result.Errors[0].Message != "unknown rule code(s): bogus" {
		t.Errorf("Message = %q", result.Errors[0].Message)
	}
}

func TestParseNoDirectives(t *testing.T) {
	result := Parse("# just a comment\nx = 1 # julia is fun", nil)
	if len(result.Directives) != 0 || len(result.Errors) != 0 {
		t.Errorf("expected nothing, got %+v", result)
	}
}

func TestSuppressesRule(t *testing.T) {
	tests := []struct {
		name  string
		rules []string
		code  string
		want  bool
	}{
		{"exact", []string{"julia/not-in"}, "julia/not-in", true},
		{"bare name", []string{"not-in"}, "julia/not-in", true},
		{"all", []string{"all"}, "julia/indentation", true},
		{"other rule", []string{"not-in"}, "julia/indentation", false},
		{"other namespace", []string{"other/not-in"}, "julia/not-in", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Directive{Rules: tt.rules}
			if got := d.SuppressesRule(tt.code); got != tt.want {
				t.Errorf("SuppressesRule(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestDirectiveTypeString(t *testing.T) {
	if TypeNextLine.String() != "next-line" || TypeGlobal.String() != "global" {
		t.Error("unexpected DirectiveType names")
	}
	if DirectiveType(9).String() != "unknown" {
		t.Error("expected unknown for out-of-range type")
	}
}

func finding(code string, line int) rules.Finding {
	f := rules.NewFinding(code, "msg", rules.SeverityError)
	f.Location = rules.Location{Line: line}
	return f
}

func TestFilter(t *testing.T) {
	directives := Parse("# julint ignore=not-in\n\"a\" not in ys\n\"b\" not in zs", nil).Directives

	result := Filter([]rules.Finding{
		finding("julia/not-in", 2),
		finding("julia/not-in", 3),
		finding("julia/python-operators", 2),
		finding("julia/not-in", 0),
	}, directives)

	if len(result.Suppressed) != 1 || result.Suppressed[0].Location.Line != 2 {
		t.Errorf("Suppressed = %+v, want the line-2 not-in finding", result.Suppressed)
	}
	if len(result.Findings) != 3 {
		t.Fatalf("expected 3 remaining findings, got %d", len(result.Findings))
	}
	if result.Findings[0].Location.Line != 3 || result.Findings[1].RuleCode != "julia/python-operators" {
		t.Errorf("remaining findings out of order: %+v", result.Findings)
	}
}

func TestFilterGlobalCoversTextLevelFindings(t *testing.T) {
	directives := Parse("# julint global ignore=balanced-blocks\nfunction f()", nil).Directives

	result := Filter([]rules.Finding{finding("julia/balanced-blocks", 0)}, directives)
	if len(result.Findings) != 0 || len(result.Suppressed) != 1 {
		t.Errorf("expected the text-level finding to be suppressed, got %+v", result)
	}
}
