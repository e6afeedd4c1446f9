package processor

import (
	"github.com/wharflab/julint/internal/rules"
)

// SeverityOverride applies severity overrides from configuration.
// Allows users to downgrade errors to warnings, upgrade style to errors, etc.
// Rules configured "off" never run, so "off" is left alone here.
type SeverityOverride struct{}

// NewSeverityOverride creates a new severity override processor.
func NewSeverityOverride() *SeverityOverride {
	return &SeverityOverride{}
}

// Name returns the processor's identifier.
func (p *SeverityOverride) Name() string {
	return "severity-override"
}

// Process applies severity overrides from config.
func (p *SeverityOverride) Process(findings []rules.Finding, ctx *Context) []rules.Finding {
	if ctx == nil || ctx.Config == nil {
		return findings
	}
	return transformFindings(findings, func(f rules.Finding) rules.Finding {
		override := ctx.Config.Rules.GetSeverity(f.RuleCode)
		if override == "" {
			return f
		}
		sev, err := rules.ParseSeverity(override)
		if err != nil || sev == rules.SeverityOff {
			// Invalid severity in config - keep original
			return f
		}
		f.Severity = sev
		return f
	})
}
