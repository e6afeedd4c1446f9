package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/knadh/koanf/v2"

	"github.com/wharflab/julint/internal/rules"
)

var (
	validFormats = []string{"text", "json", "sarif", "markdown", "github-actions"}
	validColors  = []string{"auto", "always", "never"}
	validFixes   = []FixMode{FixModeAlways, FixModeNever}
)

// FailLevelNone disables failing on findings.
const FailLevelNone = "none"

func decodeConfig(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid value in c.
func (c *Config) Validate() error {
	if !slices.Contains(validFormats, c.Output.Format) {
		return fmt.Errorf("output.format: unknown format %q (valid: %v)", c.Output.Format, validFormats)
	}
	if !slices.Contains(validColors, c.Output.Color) {
		return fmt.Errorf("output.color: unknown value %q (valid: %v)", c.Output.Color, validColors)
	}
	if c.Output.FailLevel != FailLevelNone {
		if _, err := rules.ParseSeverity(c.Output.FailLevel); err != nil {
			return fmt.Errorf("output.fail-level: %w", err)
		}
	}

	if c.FileValidation.MaxFileSize < 0 {
		return fmt.Errorf("file-validation.max-file-size: must not be negative, got %d", c.FileValidation.MaxFileSize)
	}

	for _, name := range slices.Sorted(maps.Keys(c.Rules.Julia)) {
		rc := c.Rules.Julia[name]
		if rc.Severity != "" {
			if _, err := rules.ParseSeverity(rc.Severity); err != nil {
				return fmt.Errorf("rules.%s.%s.severity: %w", JuliaNamespace, name, err)
			}
		}
		if rc.Fix != "" && !slices.Contains(validFixes, rc.Fix) {
			return fmt.Errorf("rules.%s.%s.fix: unknown fix mode %q (valid: %v)", JuliaNamespace, name, rc.Fix, validFixes)
		}
	}
	return nil
}

// Map returns c in the nested shape of a config file, suitable for
// serializing back to TOML. Rule options are flattened next to severity
// and fix, the way they are written.
func (c *Config) Map() map[string]any {
	out := map[string]any{
		"output": map[string]any{
			"format":     c.Output.Format,
			"path":       c.Output.Path,
			"color":      c.Output.Color,
			"fail-level": c.Output.FailLevel,
		},
		"file-validation": map[string]any{
			"max-file-size": c.FileValidation.MaxFileSize,
		},
	}

	rulesMap := map[string]any{}
	if len(c.Rules.Include) > 0 {
		rulesMap["include"] = slices.Clone(c.Rules.Include)
	}
	if len(c.Rules.Exclude) > 0 {
		rulesMap["exclude"] = slices.Clone(c.Rules.Exclude)
	}
	if len(c.Rules.Julia) > 0 {
		julia := make(map[string]any, len(c.Rules.Julia))
		for name, rc := range c.Rules.Julia {
			entry := make(map[string]any, len(rc.Options)+2)
			maps.Copy(entry, rc.Options)
			if rc.Severity != "" {
				entry["severity"] = rc.Severity
			}
			if rc.Fix != "" {
				entry["fix"] = string(rc.Fix)
			}
			julia[name] = entry
		}
		rulesMap[JuliaNamespace] = julia
	}
	if len(rulesMap) > 0 {
		out["rules"] = rulesMap
	}
	return out
}
