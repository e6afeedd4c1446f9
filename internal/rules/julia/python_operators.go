package julia

import (
	"slices"
	"strings"

	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// PythonOperatorsRuleCode is the full rule code.
const PythonOperatorsRuleCode = rules.JuliaRulePrefix + "python-operators"

var pythonOperator = pattern.MustCompile(`\b(and|or|elif|True|False|is not)\b`)

// juliaEquivalent maps each Python token to its Julia spelling.
var juliaEquivalent = map[string]string{
	"and":    "&&",
	"or":     "||",
	"elif":   "elseif",
	"True":   "true",
	"False":  "false",
	"is not": "!==",
}

// PythonOperatorsRule flags Python keywords and literals that Julia spells
// differently.
type PythonOperatorsRule struct{}

// NewPythonOperatorsRule creates a new rule instance.
func NewPythonOperatorsRule() *PythonOperatorsRule { return &PythonOperatorsRule{} }

// Metadata returns the rule metadata.
func (r *PythonOperatorsRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            PythonOperatorsRuleCode,
		Name:            "Python operators",
		Description:     "Use &&, ||, elseif, true, false and !== instead of their Python spellings",
		DocURL:          rules.DocURL(PythonOperatorsRuleCode),
		DefaultSeverity: rules.SeverityError,
		Category:        "correctness",
		Order:           80,
		Heuristic:       true,
	}
}

// Check runs the rule. The distinct tokens found are listed in sorted order.
func (r *PythonOperatorsRule) Check(input rules.Input) []rules.Finding {
	matches := pythonOperator.FindAllMatches(input.Current)
	if len(matches) == 0 {
		return nil
	}
	tokens := groupTexts(matches, 1)
	slices.Sort(tokens)
	tokens = slices.Compact(tokens)

	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok + " -> " + juliaEquivalent[tok]
	}
	msg := "Python operators: " + strings.Join(parts, ", ")
	return []rules.Finding{at(newFinding(r.Metadata(), msg).WithExamples(tokens), input.Current, matches[0])}
}
