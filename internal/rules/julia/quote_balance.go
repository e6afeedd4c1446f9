package julia

import (
	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// QuoteBalanceRuleCode is the full rule code.
const QuoteBalanceRuleCode = rules.JuliaRulePrefix + "quote-balance"

// QuoteBalanceRule flags text whose combined count of `"` and `'` is odd.
//
// Apostrophes in comments and the transpose operator count as quotes.
type QuoteBalanceRule struct{}

// NewQuoteBalanceRule creates a new rule instance.
func NewQuoteBalanceRule() *QuoteBalanceRule { return &QuoteBalanceRule{} }

// Metadata returns the rule metadata.
func (r *QuoteBalanceRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            QuoteBalanceRuleCode,
		Name:            "Quote balance",
		Description:     "The total number of quote characters should be even",
		DocURL:          rules.DocURL(QuoteBalanceRuleCode),
		DefaultSeverity: rules.SeverityError,
		Category:        "correctness",
		Order:           30,
		Heuristic:       true,
	}
}

// Check runs the rule against the original text.
func (r *QuoteBalanceRule) Check(input rules.Input) []rules.Finding {
	quotes := pattern.CountLiteral(input.Original, `"`) + pattern.CountLiteral(input.Original, `'`)
	if quotes%2 == 0 {
		return nil
	}
	return []rules.Finding{newFinding(r.Metadata(), "Unbalanced quotes")}
}
