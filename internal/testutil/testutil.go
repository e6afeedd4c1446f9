// Package testutil provides test helpers for the Julia linter.
package testutil

import (
	"testing"

	"github.com/wharflab/julint/internal/rules"
)

// MakeInput creates a rules.Input for testing a rule against text.
func MakeInput(text string) rules.Input {
	return rules.NewInput(text)
}

// MakeInputWithConfig creates a rules.Input with rule configuration.
func MakeInputWithConfig(text string, config any) rules.Input {
	input := rules.NewInput(text)
	input.Config = config
	return input
}

// CheckMessages runs r over text and returns the finding messages.
// It fails the test if any finding carries a foreign rule code.
func CheckMessages(tb testing.TB, r rules.Rule, text string) []string {
	tb.Helper()

	code := r.Metadata().Code
	var msgs []string
	for _, f := range r.Check(MakeInput(text)) {
		if f.RuleCode != code {
			tb.Errorf("finding has rule code %q, want %q", f.RuleCode, code)
		}
		msgs = append(msgs, f.Message)
	}
	return msgs
}
