package julia

import (
	"strings"

	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// NotInRuleCode is the full rule code.
const NotInRuleCode = rules.JuliaRulePrefix + "not-in"

// quotedNotIn captures a quoted left operand (group 2 for double quotes,
// group 3 for single quotes) and the right operand up to the next
// separator (group 4).
var quotedNotIn = pattern.MustCompile(`("([^"]*)"|'([^']*)')\s*not\s+in\s*([^;,\)\n]+)`)

const notInReplacement = "!$2$3 in $4"

// NotInRule rewrites `"x" not in xs` into `!x in xs`.
//
// The rule reports nothing on its own. Its findings are the fix
// announcements emitted by the lint session.
type NotInRule struct{}

// NewNotInRule creates a new rule instance.
func NewNotInRule() *NotInRule { return &NotInRule{} }

// Metadata returns the rule metadata.
func (r *NotInRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            NotInRuleCode,
		Name:            "Python `not in`",
		Description:     "Julia has no `not in` operator; negate the membership test instead",
		DocURL:          rules.DocURL(NotInRuleCode),
		DefaultSeverity: rules.SeverityError,
		Category:        "correctness",
		Order:           90,
	}
}

// Check runs the rule.
func (r *NotInRule) Check(rules.Input) []rules.Finding {
	return nil
}

// Fix rewrites every quoted `not in` expression. The substitution is
// repeated until the text stops changing, so applying Fix to its own
// output is a no-op.
func (r *NotInRule) Fix(text string) rules.FixResult {
	if !strings.Contains(text, "not in") {
		return rules.Unchanged(text)
	}

	// Every productive pass removes at least one "not", which bounds the loop.
	cur := text
	for range strings.Count(text, "not") + 1 {
		next := quotedNotIn.ReplaceAll(cur, notInReplacement)
		if next == cur {
			break
		}
		cur = next
	}

	if cur == text {
		return rules.Unchanged(text)
	}
	return rules.FixResult{Changed: true, Text: cur}
}

// FixDescription says what an applied fix did.
func (r *NotInRule) FixDescription() string {
	return "rewrote 'not in' as '!(... in ...)'"
}
