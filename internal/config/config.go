// Package config provides configuration loading and discovery for julint.
//
// Configuration is loaded from multiple sources with the following priority
// (highest to lowest):
//  1. CLI flags
//  2. Environment variables (JULINT_* prefix)
//  3. Config file (closest .julint.toml, julint.toml or .julint.yaml)
//  4. Built-in defaults
//
// Config file discovery walks up the filesystem from the target file's
// directory until a config file is found. The closest config wins (no
// merging).
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigFileNames defines the config file names to search for, in priority order.
var ConfigFileNames = []string{".julint.toml", "julint.toml", ".julint.yaml"}

// EnvPrefix is the prefix for environment variables.
const EnvPrefix = "JULINT_"

// Config represents the complete julint configuration.
type Config struct {
	// Rules contains rule selection and per-rule configuration.
	Rules RulesConfig `json:"rules" koanf:"rules" toml:"rules"`

	// Output configures output format and destination.
	Output OutputConfig `json:"output" koanf:"output" toml:"output"`

	// FileValidation configures checks run before a file is linted.
	FileValidation FileValidationConfig `json:"file-validation" koanf:"file-validation" toml:"file-validation"`

	// ConfigFile is the path to the config file that was loaded (if any).
	// This is metadata, not loaded from config.
	ConfigFile string `json:"-" koanf:"-" toml:"-"`
}

// OutputConfig configures output formatting and behavior.
type OutputConfig struct {
	// Format specifies the output format: text, json, sarif, markdown or
	// github-actions.
	Format string `json:"format,omitempty" koanf:"format" toml:"format"`

	// Path specifies where to write output: stdout, stderr or a file path.
	Path string `json:"path,omitempty" koanf:"path" toml:"path"`

	// Color controls styled text output: auto, always or never.
	Color string `json:"color,omitempty" koanf:"color" toml:"color"`

	// FailLevel sets the minimum severity level that causes a non-zero
	// exit code. "none" never fails on findings.
	FailLevel string `json:"fail-level,omitempty" koanf:"fail-level" toml:"fail-level"`
}

// FileValidationConfig configures pre-lint file checks.
//
// Example:
//
//	[file-validation]
//	max-file-size = 1048576
type FileValidationConfig struct {
	// MaxFileSize is the maximum file size in bytes (0 = unlimited).
	MaxFileSize int64 `json:"max-file-size,omitempty" koanf:"max-file-size" toml:"max-file-size"`
}

// DefaultMaxFileSize is the default FileValidation.MaxFileSize.
const DefaultMaxFileSize = 1 << 20

// Default returns the default configuration.
// Rule-specific defaults are owned by each rule via ConfigurableRule.DefaultConfig().
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    "text",
			Path:      "stdout",
			Color:     "auto",
			FailLevel: "none",
		},
		FileValidation: FileValidationConfig{
			MaxFileSize: DefaultMaxFileSize,
		},
		Rules: RulesConfig{}, // Empty - defaults come from rules
	}
}

// Load loads configuration for a target file path.
// It discovers the closest config file, loads it, and applies
// environment variable overrides.
func Load(targetPath string) (*Config, error) {
	return LoadWithOverrides(Discover(targetPath), nil)
}

// LoadFromFile loads configuration from a specific config file path.
// Unlike Load, it does not perform config discovery.
func LoadFromFile(configPath string) (*Config, error) {
	return LoadWithOverrides(configPath, nil)
}

// LoadWithOverrides loads configuration from an optional config file path
// and applies overrides last. Overrides use the same nested shape as the
// config file, for example:
//
//	overrides := map[string]any{
//	  "output": map[string]any{"format": "json"},
//	  "rules":  map[string]any{"exclude": []string{"julia/indentation"}},
//	}
func LoadWithOverrides(configPath string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, err
	}

	// 2. Load config file if provided
	if err := loadConfigFile(k, configPath); err != nil {
		return nil, err
	}

	// 3. Load environment variables (JULINT_* prefix)
	// JULINT_RULES_JULIA_NOT_IN_FIX -> rules.julia.not-in.fix
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKeyTransform,
	}), nil); err != nil {
		return nil, err
	}

	// 4. CLI overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, ""), nil); err != nil {
			return nil, err
		}
	}

	cfg, err := decodeConfig(k)
	if err != nil {
		return nil, err
	}

	cfg.ConfigFile = configPath
	return cfg, nil
}

func loadConfigFile(k *koanf.Koanf, configPath string) error {
	if configPath == "" {
		return nil
	}
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return k.Load(file.Provider(configPath), yaml.Parser())
	default:
		return k.Load(file.Provider(configPath), toml.Parser())
	}
}

// knownHyphenatedKeys maps dot-separated patterns to their hyphenated
// equivalents, longest first. Add new entries here when adding rules with
// hyphenated names.
var knownHyphenatedKeys = [][2]string{
	{"test.interpolated.description", "test-interpolated-description"},
	{"redundant.type.literal", "redundant-type-literal"},
	{"redundant.interpolation", "redundant-interpolation"},
	{"multi.char.literal", "multi-char-literal"},
	{"python.operators", "python-operators"},
	{"balanced.blocks", "balanced-blocks"},
	{"inequality.atol", "inequality-atol"},
	{"paren.balance", "paren-balance"},
	{"quote.balance", "quote-balance"},
	{"test.keywords", "test-keywords"},
	{"catch.syntax", "catch-syntax"},
	{"vague.filter", "vague-filter"},
	{"file.validation", "file-validation"},
	{"max.file.size", "max-file-size"},
	{"fail.level", "fail-level"},
	{"not.in", "not-in"},
}

var allowedEnvTopLevelKeys = map[string]struct{}{
	"rules":           {},
	"output":          {},
	"file-validation": {},
}

// listKeys hold comma-separated lists when set from the environment.
var listKeys = []string{"rules.include", "rules.exclude"}

// envKeyTransform converts environment variable names to config keys.
// JULINT_OUTPUT_FORMAT -> output.format
// JULINT_RULES_JULIA_NOT_IN_FIX -> rules.julia.not-in.fix
// JULINT_FILE_VALIDATION_MAX_FILE_SIZE -> file-validation.max-file-size
func envKeyTransform(k, v string) (string, any) {
	s := strings.TrimPrefix(k, EnvPrefix)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", ".")
	for _, kv := range knownHyphenatedKeys {
		s = strings.ReplaceAll(s, kv[0], kv[1])
	}

	topLevel := s
	if before, _, ok := strings.Cut(s, "."); ok {
		topLevel = before
	}
	if _, ok := allowedEnvTopLevelKeys[topLevel]; !ok {
		return "", nil
	}

	if slices.Contains(listKeys, s) {
		var items []string
		for item := range strings.SplitSeq(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return s, items
	}

	return s, v
}

// Discover finds the closest config file for a target file path.
// It walks up the directory tree from the target's directory,
// checking for config files at each level.
// Returns empty string if no config file is found.
func Discover(targetPath string) string {
	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return ""
	}
	return DiscoverFromDir(filepath.Dir(absPath))
}

// DiscoverFromDir finds the closest config file in dir or its parents.
func DiscoverFromDir(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range ConfigFileNames {
			configPath := filepath.Join(dir, name)
			if fileExists(configPath) {
				return configPath
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return ""
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
