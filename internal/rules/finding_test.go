package rules

import "testing"

func TestFindingBuilders(t *testing.T) {
	base := NewFinding("julia/x", "msg", SeverityWarning)
	f := base.WithExamples([]string{"a"}).WithDocURL("https://example.com").AsFixed()

	if base.Fixed || base.Examples != nil || base.DocURL != "" {
		t.Errorf("builders mutated the receiver: %+v", base)
	}
	if !f.Fixed || len(f.Examples) != 1 || f.DocURL != "https://example.com" {
		t.Errorf("builders did not apply: %+v", f)
	}
}

func TestTruncate(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	got := Truncate(items, 3)
	if len(got) != 3 || got[2] != "c" {
		t.Errorf("Truncate(4 items, 3) = %v", got)
	}
	got[0] = "mutated"
	if items[0] != "a" {
		t.Error("Truncate result aliases the input")
	}
	if got := Truncate(items, 10); len(got) != 4 {
		t.Errorf("Truncate(4 items, 10) = %v", got)
	}
	if got := Truncate(nil, 3); len(got) != 0 {
		t.Errorf("Truncate(nil, 3) = %v", got)
	}
}

func TestExampleList(t *testing.T) {
	tests := []struct {
		items []string
		limit int
		want  string
	}{
		{nil, 3, `[]`},
		{[]string{"ab"}, 3, `["ab"]`},
		{[]string{"a", "b", "c"}, 3, `["a", "b", "c"]`},
		{[]string{"a", "b", "c", "d"}, 3, `["a", "b", "c"]...`},
		{[]string{`say "hi"`}, 2, `["say \"hi\""]`},
	}
	for _, tt := range tests {
		if got := ExampleList(tt.items, tt.limit); got != tt.want {
			t.Errorf("ExampleList(%v, %d) = %s, want %s", tt.items, tt.limit, got, tt.want)
		}
	}
}

func TestDocURL(t *testing.T) {
	want := "https://github.com/wharflab/julint/blob/main/docs/rules/not-in.md"
	if got := DocURL("julia/not-in"); got != want {
		t.Errorf("DocURL() = %q, want %q", got, want)
	}
}
