package processor

import (
	"github.com/wharflab/julint/internal/directive"
	"github.com/wharflab/julint/internal/rules"
)

// InlineDirectives drops findings suppressed by inline directives.
// It must run after LineLocation so next-line directives can match.
type InlineDirectives struct{}

// NewInlineDirectives creates a new inline directive processor.
func NewInlineDirectives() *InlineDirectives {
	return &InlineDirectives{}
}

// Name returns the processor's identifier.
func (p *InlineDirectives) Name() string {
	return "inline-directives"
}

// Process filters out suppressed findings.
func (p *InlineDirectives) Process(findings []rules.Finding, ctx *Context) []rules.Finding {
	if ctx == nil || len(ctx.Directives) == 0 || len(findings) == 0 {
		return findings
	}
	return directive.Filter(findings, ctx.Directives).Findings
}
