package fix

import (
	"slices"

	"github.com/wharflab/julint/internal/rules"
)

// Status is the outcome of offering one fixing rule to an Accumulator.
type Status int

const (
	// StatusUnchanged means the rule had nothing to rewrite.
	StatusUnchanged Status = iota

	// StatusApplied means the rewrite became the current text.
	StatusApplied

	// StatusSkipped means the rule would have rewritten the text but was
	// not allowed to.
	StatusSkipped
)

// Accumulator threads the text through fixing rules in order.
//
// It is seeded with the original text. Each Apply runs one rule over the
// current text; a change becomes the new current text seen by later rules.
// An Accumulator belongs to one session and is not safe for concurrent use.
type Accumulator struct {
	original string
	current  string
	modes    map[string]FixMode
	enabled  bool

	applied []AppliedFix
	skipped []SkippedFix
}

// NewAccumulator returns an accumulator seeded with original.
// modes maps rule codes to their fix mode; missing codes use FixModeAlways.
// When enabled is false no fix is applied and every would-be change is
// recorded as skipped.
func NewAccumulator(original string, modes map[string]FixMode, enabled bool) *Accumulator {
	return &Accumulator{
		original: original,
		current:  original,
		modes:    modes,
		enabled:  enabled,
	}
}

// Apply offers the current text to r.
func (a *Accumulator) Apply(r rules.FixingRule) Status {
	res := r.Fix(a.current)
	if !res.Changed || res.Text == a.current {
		return StatusUnchanged
	}

	code := r.Metadata().Code
	if !a.enabled {
		a.skipped = append(a.skipped, SkippedFix{RuleCode: code, Description: r.FixDescription(), Reason: SkipDisabled})
		return StatusSkipped
	}
	if mode, ok := a.modes[code]; ok && mode == FixModeNever {
		a.skipped = append(a.skipped, SkippedFix{RuleCode: code, Description: r.FixDescription(), Reason: SkipFixMode})
		return StatusSkipped
	}

	a.current = res.Text
	a.applied = append(a.applied, AppliedFix{RuleCode: code, Description: r.FixDescription()})
	return StatusApplied
}

// Original returns the text the accumulator was seeded with.
func (a *Accumulator) Original() string { return a.original }

// Current returns the text after every applied fix. It is the original
// string value when nothing was applied.
func (a *Accumulator) Current() string { return a.current }

// Changed reports whether any applied fix changed the text.
func (a *Accumulator) Changed() bool { return a.current != a.original }

// Applied returns the fixes applied so far, in order.
func (a *Accumulator) Applied() []AppliedFix { return slices.Clone(a.applied) }

// Skipped returns the fixes skipped so far, in order.
func (a *Accumulator) Skipped() []SkippedFix { return slices.Clone(a.skipped) }

// Change summarizes the accumulator as a FileChange for path.
func (a *Accumulator) Change(path string) *FileChange {
	return &FileChange{
		Path:            path,
		FixesApplied:    a.Applied(),
		FixesSkipped:    a.Skipped(),
		OriginalContent: a.original,
		ModifiedContent: a.current,
	}
}

// Fold applies fixers to text in order and returns the final text.
func Fold(text string, fixers []rules.FixingRule) string {
	acc := NewAccumulator(text, nil, true)
	for _, f := range fixers {
		acc.Apply(f)
	}
	return acc.Current()
}
