package linter

import (
	"github.com/wharflab/julint/internal/fix"
	"github.com/wharflab/julint/internal/reporter"
	"github.com/wharflab/julint/internal/rules"
)

// Outcome is the result of one Session.Run.
type Outcome struct {
	// Findings are all findings in evaluation order. Renderers may show
	// fewer; the slice is never truncated.
	Findings []rules.Finding

	// Original is the text the session was given.
	Original string

	// Final is the original with every applied fix folded in, in rule
	// order. It is Original itself when nothing was applied.
	Final string

	// Applied and Skipped record what happened to each available fix.
	Applied []fix.AppliedFix
	Skipped []fix.SkippedFix

	// RulesEnabled is the number of rules that were evaluated.
	RulesEnabled int
}

// Changed reports whether any fix changed the text.
func (o *Outcome) Changed() bool {
	return o.Final != o.Original
}

// Report renders the plain text report.
func (o *Outcome) Report() string {
	return reporter.RenderText(o.Findings, o.Original, o.Final)
}

// FileReport packages the outcome for a reporter under path.
func (o *Outcome) FileReport(path string) reporter.FileReport {
	return reporter.FileReport{
		Path:     path,
		Findings: o.Findings,
		Original: o.Original,
		Final:    o.Final,
		Changed:  o.Changed(),
	}
}

// Change summarizes the applied and skipped fixes for path.
func (o *Outcome) Change(path string) *fix.FileChange {
	return &fix.FileChange{
		Path:            path,
		FixesApplied:    o.Applied,
		FixesSkipped:    o.Skipped,
		OriginalContent: o.Original,
		ModifiedContent: o.Final,
	}
}

// FailsAt reports whether any finding is at least as severe as threshold.
// Fix announcements count: the source on disk still has the defect.
func (o *Outcome) FailsAt(threshold rules.Severity) bool {
	for _, f := range o.Findings {
		if f.Severity != rules.SeverityOff && f.Severity.IsAtLeast(threshold) {
			return true
		}
	}
	return false
}
