package processor

import (
	"github.com/wharflab/julint/internal/rules"
)

// LineLocation resolves the line of a finding's first example in the
// original text when the rule did not place the finding itself. Findings
// without examples, or whose example only exists in fixed text, stay
// text-level.
type LineLocation struct{}

// NewLineLocation creates a new line location processor.
func NewLineLocation() *LineLocation {
	return &LineLocation{}
}

// Name returns the processor's identifier.
func (p *LineLocation) Name() string {
	return "line-location"
}

// Process fills in finding locations.
func (p *LineLocation) Process(findings []rules.Finding, ctx *Context) []rules.Finding {
	if ctx == nil {
		return findings
	}
	return transformFindings(findings, func(f rules.Finding) rules.Finding {
		return rules.Locate(f, ctx.Source)
	})
}
