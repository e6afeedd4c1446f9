// Package julia implements the Julia rule catalogue.
//
// Every rule is a pattern check over raw text. None of them parse, so
// patterns inside string literals and comments are matched like any
// other text. That is a documented limitation, not a bug.
//
// Rules register themselves with the default registry on import and are
// evaluated in ascending Order.
package julia

import (
	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
)

// Example caps. Findings that quote source excerpts embed at most this many.
const (
	maxExamples     = 3
	maxTestExamples = 2
)

// newFinding creates a finding carrying the rule's code, default severity
// and documentation link.
func newFinding(meta rules.RuleMetadata, message string) rules.Finding {
	return rules.NewFinding(meta.Code, message, meta.DefaultSeverity).WithDocURL(meta.DocURL)
}

// exampleFinding quotes up to limit excerpts in a finding of the form
// "<label>: [..] (<hint>)".
func exampleFinding(meta rules.RuleMetadata, label string, examples []string, limit int, hint string) rules.Finding {
	msg := label + ": " + rules.ExampleList(examples, limit) + " (" + hint + ")"
	return newFinding(meta, msg).WithExamples(rules.Truncate(examples, limit))
}

// groupTexts returns capture group n of every match. Group 0 is the
// whole match.
func groupTexts(matches []pattern.Match, n int) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Group(n)
	}
	return out
}

// at places f on the line of m within text.
func at(f rules.Finding, text string, m pattern.Match) rules.Finding {
	return f.WithLocation(rules.LineAt(text, m.Offset))
}

func init() {
	for _, r := range []rules.Rule{
		NewBalancedBlocksRule(),
		NewCatchSyntaxRule(),
		NewQuoteBalanceRule(),
		NewMultiCharLiteralRule(),
		NewIndentationRule(),
		NewRedundantTypeLiteralRule(),
		NewVagueFilterRule(),
		NewPythonOperatorsRule(),
		NewNotInRule(),
		NewTestKeywordsRule(),
		NewParenBalanceRule(),
		NewRedundantInterpolationRule(),
		NewTestInterpolatedDescriptionRule(),
		NewInequalityAtolRule(),
	} {
		rules.Register(r)
	}
}
