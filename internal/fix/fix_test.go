package fix

import (
	"strings"
	"testing"

	"github.com/wharflab/julint/internal/rules"
)

// replaceFixer rewrites every occurrence of old with new.
type replaceFixer struct {
	code     string
	old, new string
}

func (f *replaceFixer) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{Code: f.code, DefaultSeverity: rules.SeverityError}
}

func (f *replaceFixer) Check(rules.Input) []rules.Finding { return nil }

func (f *replaceFixer) Fix(text string) rules.FixResult {
	out := strings.ReplaceAll(text, f.old, f.new)
	if out == text {
		return rules.Unchanged(text)
	}
	return rules.FixResult{Changed: true, Text: out}
}

func (f *replaceFixer) FixDescription() string { return "replaced " + f.old }

func TestSkipReason_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		reason SkipReason
		want   string
	}{
		{SkipFixMode, "disabled by fix mode config"},
		{SkipDisabled, "fixes disabled"},
		{SkipReason(99), "unknown reason"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.reason.String(); got != tt.want {
				t.Errorf("SkipReason(%d).String() = %q, want %q", tt.reason, got, tt.want)
			}
		})
	}
}

func TestAccumulator_FoldsInOrder(t *testing.T) {
	t.Parallel()
	acc := NewAccumulator("a b", nil, true)

	if got := acc.Apply(&replaceFixer{code: "x/1", old: "a", new: "c"}); got != StatusApplied {
		t.Fatalf("first Apply = %v, want applied", got)
	}
	// The second rule sees the first rule's output.
	if got := acc.Apply(&replaceFixer{code: "x/2", old: "c", new: "d"}); got != StatusApplied {
		t.Fatalf("second Apply = %v, want applied", got)
	}
	if got := acc.Apply(&replaceFixer{code: "x/3", old: "zzz", new: "y"}); got != StatusUnchanged {
		t.Errorf("no-op Apply = %v, want unchanged", got)
	}

	if acc.Current() != "d b" {
		t.Errorf("Current() = %q, want %q", acc.Current(), "d b")
	}
	if acc.Original() != "a b" || !acc.Changed() {
		t.Errorf("Original() = %q, Changed() = %v", acc.Original(), acc.Changed())
	}
	applied := acc.Applied()
	if len(applied) != 2 || applied[0].RuleCode != "x/1" || applied[1].Description != "replaced c" {
		t.Errorf("Applied() = %+v", applied)
	}
}

func TestAccumulator_UntouchedKeepsOriginal(t *testing.T) {
	t.Parallel()
	acc := NewAccumulator("x = 1", nil, true)
	acc.Apply(&replaceFixer{code: "x/1", old: "zzz", new: "y"})

	if acc.Changed() || acc.Current() != "x = 1" {
		t.Errorf("Current() = %q, Changed() = %v", acc.Current(), acc.Changed())
	}
	if len(acc.Applied()) != 0 || len(acc.Skipped()) != 0 {
		t.Error("no fixes should be recorded")
	}
}

func TestAccumulator_Skips(t *testing.T) {
	t.Parallel()
	fixer := &replaceFixer{code: "x/1", old: "a", new: "b"}

	t.Run("fix mode never", func(t *testing.T) {
		t.Parallel()
		acc := NewAccumulator("a", map[string]FixMode{"x/1": FixModeNever}, true)
		if got := acc.Apply(fixer); got != StatusSkipped {
			t.Fatalf("Apply = %v, want skipped", got)
		}
		skipped := acc.Skipped()
		if len(skipped) != 1 || skipped[0].Reason != SkipFixMode {
			t.Errorf("Skipped() = %+v", skipped)
		}
		if acc.Current() != "a" {
			t.Errorf("Current() = %q, want original", acc.Current())
		}
	})

	t.Run("fix mode always", func(t *testing.T) {
		t.Parallel()
		acc := NewAccumulator("a", map[string]FixMode{"x/1": FixModeAlways}, true)
		if got := acc.Apply(fixer); got != StatusApplied {
			t.Errorf("Apply = %v, want applied", got)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		acc := NewAccumulator("a", nil, false)
		if got := acc.Apply(fixer); got != StatusSkipped {
			t.Fatalf("Apply = %v, want skipped", got)
		}
		if acc.Skipped()[0].Reason != SkipDisabled || acc.Changed() {
			t.Errorf("Skipped() = %+v, Changed() = %v", acc.Skipped(), acc.Changed())
		}
	})

	t.Run("nothing to skip", func(t *testing.T) {
		t.Parallel()
		acc := NewAccumulator("z", nil, false)
		if got := acc.Apply(fixer); got != StatusUnchanged {
			t.Errorf("Apply = %v, want unchanged", got)
		}
	})
}

func TestFold(t *testing.T) {
	t.Parallel()
	fixers := []rules.FixingRule{
		&replaceFixer{code: "x/1", old: "a", new: "b"},
		&replaceFixer{code: "x/2", old: "b", new: "c"},
	}
	if got := Fold("a-b", fixers); got != "c-c" {
		t.Errorf("Fold() = %q, want %q", got, "c-c")
	}
	if got := Fold("zzz", nil); got != "zzz" {
		t.Errorf("Fold(no fixers) = %q", got)
	}
}

func TestFileChange(t *testing.T) {
	t.Parallel()
	acc := NewAccumulator("a\nb\n", nil, true)
	acc.Apply(&replaceFixer{code: "x/1", old: "b", new: "c"})

	fc := acc.Change("main.jl")
	if fc.Path != "main.jl" || !fc.HasChanges() {
		t.Errorf("Change() = %+v", fc)
	}
	if got, want := fc.Diff(), " a\n-b\n+c\n"; got != want {
		t.Errorf("Diff() = %q, want %q", got, want)
	}

	empty := &FileChange{Path: "x.jl", OriginalContent: "a", ModifiedContent: "a"}
	if empty.HasChanges() || empty.Diff() != "" {
		t.Errorf("unchanged FileChange = %+v", empty)
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		original string
		fixed    string
		want     string
	}{
		{"identical", "x\n", "x\n", ""},
		{"replaced line", "a\nb\nc\n", "a\nB\nc\n", " a\n-b\n+B\n c\n"},
		{"added line", "a\n", "a\nb\n", " a\n+b\n"},
		{"no trailing newline", "a", "b", "-a\n+b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Diff(tt.original, tt.fixed); got != tt.want {
				t.Errorf("Diff() = %q, want %q", got, tt.want)
			}
		})
	}
}
