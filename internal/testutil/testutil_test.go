package testutil

import (
	"slices"
	"strings"
	"testing"

	"github.com/wharflab/julint/internal/rules"
)

type echoRule struct{}

func (echoRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{Code: "julia/echo", DefaultSeverity: rules.SeverityInfo}
}

func (echoRule) Check(input rules.Input) []rules.Finding {
	if input.Current == "" {
		return nil
	}
	return []rules.Finding{rules.NewFinding("julia/echo", input.Current, rules.SeverityInfo)}
}

func TestMakeInput(t *testing.T) {
	input := MakeInput("x = 1")
	if input.Original != "x = 1" || input.Current != "x = 1" {
		t.Errorf("MakeInput() = %+v", input)
	}

	withCfg := MakeInputWithConfig("x", map[string]any{"width": 2})
	if cfg, ok := withCfg.Config.(map[string]any); !ok || cfg["width"] != 2 {
		t.Errorf("Config = %v", withCfg.Config)
	}
}

func TestCheckMessages(t *testing.T) {
	if got := CheckMessages(t, echoRule{}, "hello"); !slices.Equal(got, []string{"hello"}) {
		t.Errorf("CheckMessages() = %v", got)
	}
	if got := CheckMessages(t, echoRule{}, ""); got != nil {
		t.Errorf("CheckMessages(empty) = %v, want nil", got)
	}
}

func TestSnapshotPatch(t *testing.T) {
	patch := SnapshotPatch("Fixes (1):\n", "Fixes (2):\n")
	if !strings.Contains(patch, "-1") || !strings.Contains(patch, "+2") {
		t.Errorf("SnapshotPatch() = %q", patch)
	}
	if SnapshotPatch("same", "same") != "" {
		t.Error("SnapshotPatch of equal inputs should be empty")
	}
}
