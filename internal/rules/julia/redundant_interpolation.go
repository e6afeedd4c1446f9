package julia

import (
	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// RedundantInterpolationRuleCode is the full rule code.
const RedundantInterpolationRuleCode = rules.JuliaRulePrefix + "redundant-interpolation"

var parenInterpolation = pattern.MustCompile(`\$\(\w+\)`)

// RedundantInterpolationRule flags `$(name)` where `$name` would do.
type RedundantInterpolationRule struct{}

// NewRedundantInterpolationRule creates a new rule instance.
func NewRedundantInterpolationRule() *RedundantInterpolationRule {
	return &RedundantInterpolationRule{}
}

// Metadata returns the rule metadata.
func (r *RedundantInterpolationRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            RedundantInterpolationRuleCode,
		Name:            "Redundant interpolation parentheses",
		Description:     "Interpolating a bare identifier does not need parentheses",
		DocURL:          rules.DocURL(RedundantInterpolationRuleCode),
		DefaultSeverity: rules.SeverityStyle,
		Category:        "style",
		Order:           120,
	}
}

// Check runs the rule.
func (r *RedundantInterpolationRule) Check(input rules.Input) []rules.Finding {
	matches := parenInterpolation.FindAllMatches(input.Current)
	if len(matches) == 0 {
		return nil
	}
	f := exampleFinding(r.Metadata(), "Unnecessary $(var)", groupTexts(matches, 0), maxExamples, "use $var")
	return []rules.Finding{at(f, input.Current, matches[0])}
}
