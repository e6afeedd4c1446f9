package julia

import (
	"slices"
	"strings"

	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// TestKeywordsRuleCode is the full rule code.
const TestKeywordsRuleCode = rules.JuliaRulePrefix + "test-keywords"

var testKeyword = pattern.MustCompile(`@test\s+.*?\s+(label|description)\s*=\s*`)

// TestKeywordsRule flags `label=` and `description=` keyword arguments on
// @test, which the Test stdlib does not accept.
type TestKeywordsRule struct{}

// NewTestKeywordsRule creates a new rule instance.
func NewTestKeywordsRule() *TestKeywordsRule { return &TestKeywordsRule{} }

// Metadata returns the rule metadata.
func (r *TestKeywordsRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            TestKeywordsRuleCode,
		Name:            "Unsupported @test keywords",
		Description:     "@test does not accept label= or description= keyword arguments",
		DocURL:          rules.DocURL(TestKeywordsRuleCode),
		DefaultSeverity: rules.SeverityError,
		Category:        "correctness",
		Order:           100,
	}
}

// Check runs the rule.
func (r *TestKeywordsRule) Check(input rules.Input) []rules.Finding {
	matches := testKeyword.FindAllMatches(input.Current)
	if len(matches) == 0 {
		return nil
	}
	keywords := groupTexts(matches, 1)
	slices.Sort(keywords)
	keywords = slices.Compact(keywords)

	msg := "Invalid @test keywords: " + strings.Join(keywords, ", ") + " (use @testset for labels)"
	return []rules.Finding{at(newFinding(r.Metadata(), msg).WithExamples(keywords), input.Current, matches[0])}
}
