package linter

import (
	"github.com/wharflab/julint/internal/config"
	"github.com/wharflab/julint/internal/rules"
)

// EnabledRules returns the rules of registry that are active for cfg, in
// evaluation order.
func EnabledRules(registry *rules.Registry, cfg *config.Config) []rules.Rule {
	if registry == nil {
		registry = rules.DefaultRegistry()
	}
	var enabled []rules.Rule
	for _, rule := range registry.All() {
		if isRuleEnabled(rule.Metadata(), cfg) {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}

// EnabledRuleCodes returns the codes of EnabledRules.
func EnabledRuleCodes(registry *rules.Registry, cfg *config.Config) []string {
	enabled := EnabledRules(registry, cfg)
	codes := make([]string, len(enabled))
	for i, rule := range enabled {
		codes[i] = rule.Metadata().Code
	}
	return codes
}

// isRuleEnabled applies include/exclude, then the effective severity.
// A rule whose severity is "off" never runs.
func isRuleEnabled(meta rules.RuleMetadata, cfg *config.Config) bool {
	severity := meta.DefaultSeverity
	if cfg == nil {
		return severity != rules.SeverityOff
	}
	if enabled := cfg.Rules.IsEnabled(meta.Code); enabled != nil && !*enabled {
		return false
	}
	if override := cfg.Rules.GetSeverity(meta.Code); override != "" {
		if sev, err := rules.ParseSeverity(override); err == nil {
			severity = sev
		}
	}
	return severity != rules.SeverityOff
}
