package rules

import (
	"strconv"
	"strings"
)

// JuliaRulePrefix is the namespace prefix for the Julia rule catalogue.
const JuliaRulePrefix = "julia/"

// Finding is one diagnostic produced by a rule.
// Findings are values; builder methods return modified copies.
type Finding struct {
	// RuleCode is the code of the rule that produced this finding.
	RuleCode string `json:"rule"`

	// Message is the rendered, human-readable description.
	Message string `json:"message"`

	// Severity indicates how critical this finding is.
	Severity Severity `json:"severity"`

	// Examples are excerpts from the source, already truncated to the
	// rule's cap. They are also embedded in Message.
	Examples []string `json:"examples,omitempty"`

	// Fixed marks a finding that announces an applied auto-fix.
	Fixed bool `json:"fixed,omitempty"`

	// Location is where the finding first occurs, if known.
	Location Location `json:"location"`

	// DocURL links to documentation about this rule (optional).
	DocURL string `json:"docUrl,omitempty"`
}

// NewFinding creates a finding with the minimum required fields.
func NewFinding(ruleCode, message string, severity Severity) Finding {
	return Finding{
		RuleCode: ruleCode,
		Message:  message,
		Severity: severity,
	}
}

// WithExamples attaches source excerpts.
func (f Finding) WithExamples(examples []string) Finding {
	f.Examples = examples
	return f
}

// WithLocation sets where the finding occurs.
func (f Finding) WithLocation(loc Location) Finding {
	f.Location = loc
	return f
}

// WithDocURL adds a documentation URL.
func (f Finding) WithDocURL(url string) Finding {
	f.DocURL = url
	return f
}

// AsFixed marks the finding as an auto-fix announcement.
func (f Finding) AsFixed() Finding {
	f.Fixed = true
	return f
}

// Truncate returns at most limit leading items. The result never aliases
// items beyond limit.
func Truncate(items []string, limit int) []string {
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// QuoteList renders items as a bracketed list of quoted strings,
// e.g. ["ab", "cd"].
func QuoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = strconv.Quote(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// ExampleList renders up to limit items with QuoteList, appending an
// ellipsis when items were dropped.
func ExampleList(items []string, limit int) string {
	s := QuoteList(Truncate(items, limit))
	if len(items) > limit {
		s += "..."
	}
	return s
}

// DocURL returns the documentation URL for a julint rule code.
func DocURL(ruleCode string) string {
	return "https://github.com/wharflab/julint/blob/main/docs/rules/" +
		strings.TrimPrefix(ruleCode, JuliaRulePrefix) + ".md"
}
