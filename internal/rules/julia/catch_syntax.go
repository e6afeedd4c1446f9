package julia

import (
	"strings"

	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// CatchSyntaxRuleCode is the full rule code.
const CatchSyntaxRuleCode = rules.JuliaRulePrefix + "catch-syntax"

// badCatch matches a `catch` clause that neither discards the exception
// with `_` nor binds a single identifier terminated by `;`.
var badCatch = pattern.MustCompile(`catch\s+(?!_|\w+\s*;).*?(?=\n|end)`, pattern.DotAll())

// CatchSyntaxRule reports malformed catch clauses.
type CatchSyntaxRule struct{}

// NewCatchSyntaxRule creates a new rule instance.
func NewCatchSyntaxRule() *CatchSyntaxRule { return &CatchSyntaxRule{} }

// Metadata returns the rule metadata.
func (r *CatchSyntaxRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            CatchSyntaxRuleCode,
		Name:            "Catch clause syntax",
		Description:     "A `catch` must be followed by `_;` or an identifier and `;`",
		DocURL:          rules.DocURL(CatchSyntaxRuleCode),
		DefaultSeverity: rules.SeverityError,
		Category:        "correctness",
		Order:           20,
	}
}

// Check runs the rule. Each offending clause gets its own finding.
func (r *CatchSyntaxRule) Check(input rules.Input) []rules.Finding {
	meta := r.Metadata()
	var findings []rules.Finding
	for _, m := range badCatch.FindAllMatches(input.Current) {
		clause := strings.TrimSpace(m.Text)
		f := newFinding(meta, "Invalid catch: '"+clause+"' (use 'catch _;' or 'catch err;')").
			WithExamples([]string{clause})
		findings = append(findings, at(f, input.Current, m))
	}
	return findings
}
