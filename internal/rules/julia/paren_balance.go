package julia

import (
	"fmt"

	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// ParenBalanceRuleCode is the full rule code.
const ParenBalanceRuleCode = rules.JuliaRulePrefix + "paren-balance"

// ParenBalanceRule compares the counts of `(` and `)` in the original text.
// Only totals are compared; `)(` balances.
type ParenBalanceRule struct{}

// NewParenBalanceRule creates a new rule instance.
func NewParenBalanceRule() *ParenBalanceRule { return &ParenBalanceRule{} }

// Metadata returns the rule metadata.
func (r *ParenBalanceRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            ParenBalanceRuleCode,
		Name:            "Parenthesis balance",
		Description:     "Every `(` should have a matching `)`",
		DocURL:          rules.DocURL(ParenBalanceRuleCode),
		DefaultSeverity: rules.SeverityError,
		Category:        "correctness",
		Order:           110,
		Heuristic:       true,
	}
}

// Check runs the rule against the original text.
func (r *ParenBalanceRule) Check(input rules.Input) []rules.Finding {
	opens := pattern.CountLiteral(input.Original, "(")
	closes := pattern.CountLiteral(input.Original, ")")
	if opens == closes {
		return nil
	}
	msg := fmt.Sprintf("Unbalanced parentheses: %d '(' vs %d ')'", opens, closes)
	return []rules.Finding{newFinding(r.Metadata(), msg)}
}
