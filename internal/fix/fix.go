// Package fix provides auto-fix infrastructure for julint.
// Fixes are text-to-text rewrites folded over the source in rule order.
package fix

import (
	"github.com/wharflab/julint/internal/config"
)

// Re-export FixMode from config for convenience.
type FixMode = config.FixMode

const (
	// FixModeNever disables the rule's fix.
	FixModeNever = config.FixModeNever

	// FixModeAlways applies the rule's fix (default).
	FixModeAlways = config.FixModeAlways
)

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	// RuleCode identifies which rule this fix is for.
	RuleCode string

	// Description explains what the fix did.
	Description string
}

// SkipReason explains why a fix was skipped.
type SkipReason int

const (
	// SkipFixMode means the rule's fix mode config disallows fixing.
	SkipFixMode SkipReason = iota

	// SkipDisabled means fixing was turned off for the whole session.
	SkipDisabled
)

// String returns a human-readable description of the skip reason.
func (r SkipReason) String() string {
	switch r {
	case SkipFixMode:
		return "disabled by fix mode config"
	case SkipDisabled:
		return "fixes disabled"
	default:
		return "unknown reason"
	}
}

// SkippedFix records a fix that would have changed the text but was not
// applied.
type SkippedFix struct {
	// RuleCode identifies which rule this fix is for.
	RuleCode string

	// Description explains what the fix would have done.
	Description string

	// Reason explains why the fix was skipped.
	Reason SkipReason
}

// FileChange describes changes to a single file.
type FileChange struct {
	// Path is the file path.
	Path string

	// FixesApplied lists the fixes that were applied.
	FixesApplied []AppliedFix

	// FixesSkipped lists fixes that couldn't be applied.
	FixesSkipped []SkippedFix

	// OriginalContent is the file content before fixes.
	OriginalContent string

	// ModifiedContent is the file content after fixes.
	ModifiedContent string
}

// HasChanges returns true if any fixes were applied to this file.
func (fc *FileChange) HasChanges() bool {
	return len(fc.FixesApplied) > 0
}

// Diff renders the line diff between the original and modified content.
func (fc *FileChange) Diff() string {
	return Diff(fc.OriginalContent, fc.ModifiedContent)
}
