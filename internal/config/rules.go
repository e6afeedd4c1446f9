package config

import (
	"maps"
	"strings"

	"github.com/wharflab/julint/internal/rules/configutil"
)

// FixMode controls whether auto-fixes are applied for a rule.
type FixMode string

const (
	// FixModeNever disables fixes; the rule only reports that a fix is available.
	FixModeNever FixMode = "never"

	// FixModeAlways applies the fix during linting (default).
	FixModeAlways FixMode = "always"
)

// JuliaNamespace is the rule namespace of the Julia catalogue.
const JuliaNamespace = "julia"

// RuleConfig represents per-rule configuration.
// Can be specified in TOML as:
//
//	[rules.julia.indentation]
//	severity = "warning"
//	# Rule-specific options are flattened at this level
//	width = 2
type RuleConfig struct {
	// Severity overrides the rule's default severity.
	// Use "off" to disable the rule.
	Severity string `json:"severity,omitempty" koanf:"severity"`

	// Fix controls whether the rule's auto-fix is applied.
	// Values: always (default), never.
	Fix FixMode `json:"fix,omitempty" koanf:"fix"`

	// Options contains rule-specific configuration options.
	Options map[string]any `json:"-" koanf:",remain"`
}

// RulesConfig contains rule selection and per-rule configuration.
//
// Example TOML (Ruff-style selection):
//
//	[rules]
//	exclude = ["julia/indentation"]
//	include = ["julia/*"]
//
//	[rules.julia.not-in]
//	fix = "never"
type RulesConfig struct {
	// Include explicitly enables rules.
	Include []string `json:"include,omitempty" koanf:"include"`

	// Exclude explicitly disables rules.
	Exclude []string `json:"exclude,omitempty" koanf:"exclude"`

	// Julia contains configuration for julia/* rules.
	Julia map[string]RuleConfig `json:"julia,omitempty" koanf:"julia"`
}

// Get returns the configuration for a specific rule.
// Returns nil if no configuration exists for the rule.
// ruleCode should be namespaced (e.g., "julia/not-in").
func (rc *RulesConfig) Get(ruleCode string) *RuleConfig {
	if rc == nil {
		return nil
	}
	ns, name := parseRuleCode(ruleCode)
	nsMap := rc.namespaceMap(ns)
	if nsMap == nil {
		return nil
	}
	if cfg, ok := nsMap[name]; ok {
		return &cfg
	}
	return nil
}

// parseRuleCode parses a rule code into namespace and name.
// "julia/not-in" -> ("julia", "not-in")
// "not-in" -> ("", "not-in")
func parseRuleCode(ruleCode string) (string, string) {
	if idx := strings.Index(ruleCode, "/"); idx > 0 {
		return ruleCode[:idx], ruleCode[idx+1:]
	}
	return "", ruleCode
}

// IsEnabled checks if a rule is enabled based on Include/Exclude patterns.
// Returns nil if no configuration specifies enabled/disabled (use rule default).
// Include takes precedence over Exclude (Ruff-style semantics).
func (rc *RulesConfig) IsEnabled(ruleCode string) *bool {
	if rc == nil {
		return nil
	}

	if MatchesAnyPattern(ruleCode, rc.Include) {
		return boolPtr(true)
	}

	if MatchesAnyPattern(ruleCode, rc.Exclude) {
		return boolPtr(false)
	}

	return nil
}

// MatchesAnyPattern checks if ruleCode matches any pattern in the list.
// Patterns can be:
// - Exact match: "julia/not-in"
// - Bare rule name: "not-in"
// - Namespace wildcard: "julia/*"
// - Universal wildcard: "*"
func MatchesAnyPattern(ruleCode string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(ruleCode, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern checks if ruleCode matches a single pattern.
func matchesPattern(ruleCode, pattern string) bool {
	if pattern == "*" {
		return true
	}

	if ruleCode == pattern {
		return true
	}

	ns, name := parseRuleCode(ruleCode)
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return ns == prefix
	}

	return !strings.Contains(pattern, "/") && name == pattern
}

// GetSeverity returns the severity override for a rule.
// Returns empty string if no override is configured.
func (rc *RulesConfig) GetSeverity(ruleCode string) string {
	if cfg := rc.Get(ruleCode); cfg != nil {
		return cfg.Severity
	}
	return ""
}

// GetFixMode returns the fix mode for a rule.
// Returns FixModeAlways (default) if no override is configured.
func (rc *RulesConfig) GetFixMode(ruleCode string) FixMode {
	if cfg := rc.Get(ruleCode); cfg != nil && cfg.Fix != "" {
		return cfg.Fix
	}
	return FixModeAlways
}

// GetOptions returns rule-specific options.
// Returns nil if no options are configured.
// Returns a shallow copy to prevent mutation of internal state.
func (rc *RulesConfig) GetOptions(ruleCode string) map[string]any {
	cfg := rc.Get(ruleCode)
	if cfg == nil || cfg.Options == nil {
		return nil
	}
	out := make(map[string]any, len(cfg.Options))
	maps.Copy(out, cfg.Options)
	return out
}

// DecodeRuleOptions returns typed rule options merged over defaults.
// Returns defaults if the rule has no options or decoding fails.
func DecodeRuleOptions[T any](rc *RulesConfig, ruleCode string, defaults T) T {
	if rc == nil {
		return defaults
	}
	return configutil.Resolve(rc.GetOptions(ruleCode), defaults)
}

// Set stores configuration for a rule.
// Creates the namespace map if nil.
// Returns false if the namespace is unknown.
func (rc *RulesConfig) Set(ruleCode string, cfg RuleConfig) bool {
	ns, name := parseRuleCode(ruleCode)
	switch ns {
	case JuliaNamespace:
		if rc.Julia == nil {
			rc.Julia = make(map[string]RuleConfig)
		}
		rc.Julia[name] = cfg
		return true
	default:
		return false
	}
}

// namespaceMap returns the map for a given namespace.
func (rc *RulesConfig) namespaceMap(ns string) map[string]RuleConfig {
	switch ns {
	case JuliaNamespace:
		return rc.Julia
	default:
		return nil
	}
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}
