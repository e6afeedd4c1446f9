package julia

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wharflab/julint/internal/pattern"
	"github.com/wharflab/julint/internal/rules"
	"github.com/wharflab/julint/internal/rules/configutil"
)

// IndentationRuleCode is the full rule code.
const IndentationRuleCode = rules.JuliaRulePrefix + "indentation"

// IndentationConfig is the configuration for the indentation rule.
type IndentationConfig struct {
	// Width is the indentation unit in characters. Default: 4.
	Width int `koanf:"width" json:"width"`
}

// DefaultIndentationConfig returns the default configuration.
func DefaultIndentationConfig() IndentationConfig {
	return IndentationConfig{Width: 4}
}

// IndentationRule flags text where some non-blank line is indented by a
// character count that is not a multiple of the configured width.
// Tabs count as one character.
type IndentationRule struct{}

// NewIndentationRule creates a new rule instance.
func NewIndentationRule() *IndentationRule { return &IndentationRule{} }

// Metadata returns the rule metadata.
func (r *IndentationRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:            IndentationRuleCode,
		Name:            "Indentation width",
		Description:     "Indent non-blank lines by a multiple of the configured width (4 by default)",
		DocURL:          rules.DocURL(IndentationRuleCode),
		DefaultSeverity: rules.SeverityStyle,
		Category:        "style",
		Order:           50,
	}
}

// DefaultConfig returns the default configuration for this rule.
func (r *IndentationRule) DefaultConfig() any {
	return DefaultIndentationConfig()
}

// Check runs the rule. A single finding carries the histogram of
// indentation remainders across all non-blank lines.
func (r *IndentationRule) Check(input rules.Input) []rules.Finding {
	cfg := configutil.Coerce(input.Config, DefaultIndentationConfig())
	if cfg.Width <= 0 {
		return nil
	}

	var hist histogram
	misaligned := false
	for _, line := range pattern.Lines(input.Current) {
		body := strings.TrimLeftFunc(line, unicode.IsSpace)
		if body == "" {
			continue
		}
		rem := utf8.RuneCountInString(line[:len(line)-len(body)]) % cfg.Width
		hist.add(rem)
		if rem != 0 {
			misaligned = true
		}
	}
	if !misaligned {
		return nil
	}

	msg := fmt.Sprintf("Inconsistent indentation: %s (use %d spaces)", hist.String(), cfg.Width)
	return []rules.Finding{newFinding(r.Metadata(), msg)}
}

// histogram counts indentation remainders in order of first appearance.
type histogram struct {
	counts map[int]int
	order  []int
}

func (h *histogram) add(rem int) {
	if h.counts == nil {
		h.counts = make(map[int]int)
	}
	if _, seen := h.counts[rem]; !seen {
		h.order = append(h.order, rem)
	}
	h.counts[rem]++
}

// String renders the histogram as "{0: 3, 2: 1}", most frequent first.
// Equal counts keep the order in which the remainders first appeared.
func (h histogram) String() string {
	keys := slices.Clone(h.order)
	slices.SortStableFunc(keys, func(a, b int) int {
		return cmp.Compare(h.counts[b], h.counts[a])
	})

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d: %d", k, h.counts[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
