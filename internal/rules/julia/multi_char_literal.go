package julia

import (
	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// MultiCharLiteralRuleCode is the full rule code.
const MultiCharLiteralRuleCode = rules.JuliaRulePrefix + "multi-char-literal"

var multiCharLiteral = pattern.MustCompile(`'([^']{2,})'`)

// MultiCharLiteralRule flags single-quoted literals holding two or more
// characters. Julia reserves single quotes for one Char.
type MultiCharLiteralRule struct{}

// NewMultiCharLiteralRule creates a new rule instance.
func NewMultiCharLiteralRule() *MultiCharLiteralRule { return &MultiCharLiteralRule{} }

// Metadata returns the rule metadata.
func (r *MultiCharLiteralRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            MultiCharLiteralRuleCode,
		Name:            "Multi-character char literal",
		Description:     "Single quotes delimit a single Char; use double quotes for strings",
		DocURL:          rules.DocURL(MultiCharLiteralRuleCode),
		DefaultSeverity: rules.SeverityError,
		Category:        "correctness",
		Order:           40,
	}
}

// Check runs the rule.
func (r *MultiCharLiteralRule) Check(input rules.Input) []rules.Finding {
	matches := multiCharLiteral.FindAllMatches(input.Current)
	if len(matches) == 0 {
		return nil
	}
	f := exampleFinding(r.Metadata(), "Multi-char literals", groupTexts(matches, 1), maxExamples, "use a string")
	return []rules.Finding{at(f, input.Current, matches[0])}
}
