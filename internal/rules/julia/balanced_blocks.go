package julia

import (
	"fmt"

	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// BalancedBlocksRuleCode is the full rule code.
const BalancedBlocksRuleCode = rules.JuliaRulePrefix + "balanced-blocks"

var (
	functionOpen = pattern.MustCompile(`function\s+\w`)
	bareEnd      = pattern.MustCompile(`^\s*end\s*$`, pattern.Multiline())
)

// BalancedBlocksRule compares the number of `function` openers with the
// number of lines that hold nothing but `end`.
//
// Other block openers (if, for, while, begin) also close with `end`, so a
// file full of them will be reported even though it is correct.
type BalancedBlocksRule struct{}

// NewBalancedBlocksRule creates a new rule instance.
func NewBalancedBlocksRule() *BalancedBlocksRule { return &BalancedBlocksRule{} }

// Metadata returns the rule metadata.
func (r *BalancedBlocksRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            BalancedBlocksRuleCode,
		Name:            "Balanced function blocks",
		Description:     "Every `function` opener should have a matching standalone `end` line",
		DocURL:          rules.DocURL(BalancedBlocksRuleCode),
		DefaultSeverity: rules.SeverityError,
		Category:        "correctness",
		Order:           10,
		Heuristic:       true,
	}
}

// Check runs the rule.
func (r *BalancedBlocksRule) Check(input rules.Input) []rules.Finding {
	opens := functionOpen.Count(input.Current)
	ends := bareEnd.Count(input.Current)
	if opens == ends {
		return nil
	}
	meta := r.Metadata()
	return []rules.Finding{
		newFinding(meta, fmt.Sprintf("Imbalance: %d 'function' vs %d 'end'", opens, ends)),
	}
}
