package julia

import (
	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// TestInterpolatedDescriptionRuleCode is the full rule code.
const TestInterpolatedDescriptionRuleCode = rules.JuliaRulePrefix + "test-interpolated-description"

var interpolatedTestDescription = pattern.MustCompile(`@test\s+[^\n"]+"\s*"\$[({][^"}]*[})]"`)

// TestInterpolatedDescriptionRule flags @test calls followed by a string
// that is nothing but one interpolation.
type TestInterpolatedDescriptionRule struct{}

// NewTestInterpolatedDescriptionRule creates a new rule instance.
func NewTestInterpolatedDescriptionRule() *TestInterpolatedDescriptionRule {
	return &TestInterpolatedDescriptionRule{}
}

// Metadata returns the rule metadata.
func (r *TestInterpolatedDescriptionRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            TestInterpolatedDescriptionRuleCode,
		Name:            "Interpolated @test description",
		Description:     "@test does not take a trailing description string",
		DocURL:          rules.DocURL(TestInterpolatedDescriptionRuleCode),
		DefaultSeverity: rules.SeverityError,
		Category:        "correctness",
		Order:           130,
	}
}

// Check runs the rule.
func (r *TestInterpolatedDescriptionRule) Check(input rules.Input) []rules.Finding {
	matches := interpolatedTestDescription.FindAllMatches(input.Current)
	if len(matches) == 0 {
		return nil
	}
	f := exampleFinding(r.Metadata(), "Invalid @test description", groupTexts(matches, 0), maxTestExamples, "wrap in @testset instead")
	return []rules.Finding{at(f, input.Current, matches[0])}
}
