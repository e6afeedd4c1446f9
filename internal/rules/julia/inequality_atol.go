package julia

import (
	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// InequalityAtolRuleCode is the full rule code.
const InequalityAtolRuleCode = rules.JuliaRulePrefix + "inequality-atol"

var (
	inequalityAtol    = pattern.MustCompile(`@test\s+.*?\s+(>|<|>=|<=)\s+.*?\s+atol\s*=`)
	inequalityAtolArg = pattern.MustCompile(`(@test\s+.*?\s+(>|<|>=|<=)\s+.*?)\s+atol\s*=\s*[0-9.e-]+`)
)

// InequalityAtolRule flags `atol=` on @test comparisons that use an
// inequality, where a tolerance has no meaning, and removes it.
type InequalityAtolRule struct{}

// NewInequalityAtolRule creates a new rule instance.
func NewInequalityAtolRule() *InequalityAtolRule { return &InequalityAtolRule{} }

// Metadata returns the rule metadata.
func (r *InequalityAtolRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            InequalityAtolRuleCode,
		Name:            "atol on inequality @test",
		Description:     "atol only applies to approximate equality; drop it from <, >, <= and >= tests",
		DocURL:          rules.DocURL(InequalityAtolRuleCode),
		DefaultSeverity: rules.SeverityError,
		Category:        "correctness",
		Order:           140,
	}
}

// Check runs the rule. The examples are the offending operators.
func (r *InequalityAtolRule) Check(input rules.Input) []rules.Finding {
	matches := inequalityAtol.FindAllMatches(input.Current)
	if len(matches) == 0 {
		return nil
	}
	f := exampleFinding(r.Metadata(), "Invalid atol in inequality test", groupTexts(matches, 1), maxExamples, "use a manual check")
	return []rules.Finding{at(f, input.Current, matches[0])}
}

// Fix removes the atol argument from each offending @test.
func (r *InequalityAtolRule) Fix(text string) rules.FixResult {
	fixed := inequalityAtolArg.ReplaceAll(text, "$1")
	if fixed == text {
		return rules.Unchanged(text)
	}
	return rules.FixResult{Changed: true, Text: fixed}
}

// FixDescription says what an applied fix did.
func (r *InequalityAtolRule) FixDescription() string {
	return "removed atol from inequality @test"
}
