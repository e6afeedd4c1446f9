package rules

import (
	"testing"
)

func TestNewInput(t *testing.T) {
	in := NewInput("x = 1")
	if in.Original != "x = 1" || in.Current != "x = 1" {
		t.Errorf("NewInput() = %+v", in)
	}
	if in.Config != nil {
		t.Errorf("Config = %v, want nil", in.Config)
	}
}

func TestUnchanged(t *testing.T) {
	r := Unchanged("abc")
	if r.Changed || r.Text != "abc" {
		t.Errorf("Unchanged() = %+v", r)
	}
}

func TestLineAt(t *testing.T) {
	text := "a = 1\nb = 2\n"

	tests := []struct {
		offset int
		want   int
	}{
		{0, 1},
		{5, 1},
		{6, 2},
		{len(text), 3},
		{len(text) + 10, 3},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := LineAt(text, tt.offset); got.Line != tt.want {
			t.Errorf("LineAt(%d) = %d, want %d", tt.offset, got.Line, tt.want)
		}
	}
}

func TestLocateExcerpt(t *testing.T) {
	text := "a = 1\nb = 'xy'\nc = 'xy'\n"

	tests := []struct {
		excerpt string
		want    int
	}{
		{"a = 1", 1},
		{"'xy'", 2},
		{"missing", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := LocateExcerpt(text, tt.excerpt); got.Line != tt.want {
			t.Errorf("LocateExcerpt(%q) = %d, want %d", tt.excerpt, got.Line, tt.want)
		}
	}
}

func TestLocate(t *testing.T) {
	text := "x\ny = 'ab'\n"

	f := Locate(NewFinding("julia/x", "m", SeverityError).WithExamples([]string{"ab"}), text)
	if f.Location.Line != 2 {
		t.Errorf("Locate() line = %d, want 2", f.Location.Line)
	}

	noExamples := Locate(NewFinding("julia/x", "m", SeverityError), text)
	if !noExamples.Location.IsTextLevel() {
		t.Errorf("Locate() without examples = %+v, want text-level", noExamples.Location)
	}

	preset := NewFinding("julia/x", "m", SeverityError).WithExamples([]string{"ab"})
	preset.Location = Location{Line: 1}
	if got := Locate(preset, text); got.Location.Line != 1 {
		t.Errorf("Locate() overwrote preset line: %d", got.Location.Line)
	}
}
