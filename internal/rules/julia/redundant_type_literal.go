package julia

import (
	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// RedundantTypeLiteralRuleCode is the full rule code.
const RedundantTypeLiteralRuleCode = rules.JuliaRulePrefix + "redundant-type-literal"

var typeWrappedLiteral = pattern.MustCompile(`T\([0-9.]+\)`)

// RedundantTypeLiteralRule flags numeric literals wrapped in T(...).
type RedundantTypeLiteralRule struct{}

// NewRedundantTypeLiteralRule creates a new rule instance.
func NewRedundantTypeLiteralRule() *RedundantTypeLiteralRule { return &RedundantTypeLiteralRule{} }

// Metadata returns the rule metadata.
func (r *RedundantTypeLiteralRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            RedundantTypeLiteralRuleCode,
		Name:            "Redundant T() literal",
		Description:     "Numeric literals do not need a T(...) conversion",
		DocURL:          rules.DocURL(RedundantTypeLiteralRuleCode),
		DefaultSeverity: rules.SeverityStyle,
		Category:        "style",
		Order:           60,
	}
}

// Check runs the rule.
func (r *RedundantTypeLiteralRule) Check(input rules.Input) []rules.Finding {
	matches := typeWrappedLiteral.FindAllMatches(input.Current)
	if len(matches) == 0 {
		return nil
	}
	f := exampleFinding(r.Metadata(), "Redundant T() wrapper", groupTexts(matches, 0), maxExamples, "remove T()")
	return []rules.Finding{at(f, input.Current, matches[0])}
}
