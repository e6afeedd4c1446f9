package julia

import (
	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// VagueFilterRuleCode is the full rule code.
const VagueFilterRuleCode = rules.JuliaRulePrefix + "vague-filter"

var (
	notInFilter  = pattern.MustCompile(`filter\(tf -> "([^"]*)?" not in .*?\)`)
	quotedString = pattern.MustCompile(`"[^"]*"`)
)

// VagueFilterRule flags `filter(tf -> "..." not in ...)` predicates whose
// quoted operand does not itself contain a quoted string.
type VagueFilterRule struct{}

// NewVagueFilterRule creates a new rule instance.
func NewVagueFilterRule() *VagueFilterRule { return &VagueFilterRule{} }

// Metadata returns the rule metadata.
func (r *VagueFilterRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            VagueFilterRuleCode,
		Name:            "Vague filter predicate",
		Description:     "A filter using `not in` on a bare string is likely missing quotes",
		DocURL:          rules.DocURL(VagueFilterRuleCode),
		DefaultSeverity: rules.SeverityWarning,
		Category:        "correctness",
		Order:           70,
		Heuristic:       true,
	}
}

// Check runs the rule. Each vague predicate gets its own finding.
func (r *VagueFilterRule) Check(input rules.Input) []rules.Finding {
	meta := r.Metadata()
	var findings []rules.Finding
	for _, m := range notInFilter.FindAllMatches(input.Current) {
		operand := m.Group(1)
		if quotedString.Matches(operand) {
			continue
		}
		f := newFinding(meta, "Vague filter 'not in' for '"+operand+"' (check quotes)").
			WithExamples([]string{operand})
		findings = append(findings, at(f, input.Current, m))
	}
	return findings
}
