package reporter

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/julint/internal/rules"
)

func finding(msg string, sev rules.Severity) rules.Finding {
	return rules.NewFinding("julia/test", msg, sev)
}

func TestRenderText_Clean(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Clean! Ready for Julia.\n\nCode:\n", RenderText(nil, "", ""))
	assert.Equal(t, "Clean! Ready for Julia.\n\nCode:\nx = 1\n", RenderText(nil, "x = 1\n", "x = 1\n"))
}

func TestRenderText_Findings(t *testing.T) {
	t.Parallel()
	findings := []rules.Finding{
		finding("Unbalanced quotes", rules.SeverityError),
		finding("Auto-fixed: rewrote 'not in' as '!(... in ...)'", rules.SeverityError).AsFixed(),
	}

	got := RenderText(findings, `"a" not in xs"`, `!a in xs"`)
	want := "Fixes (2):\n" +
		"- Unbalanced quotes\n" +
		"- Auto-fixed: rewrote 'not in' as '!(... in ...)'\n" +
		"\n" +
		"Fixed code:\n" +
		`!a in xs"`
	assert.Equal(t, want, got)
}

func TestRenderText_Truncation(t *testing.T) {
	t.Parallel()
	var findings []rules.Finding
	for i := range 13 {
		findings = append(findings, finding(fmt.Sprintf("finding %d", i), rules.SeverityStyle))
	}

	got := RenderText(findings, "x", "x")
	lines := strings.Split(got, "\n")

	assert.Equal(t, "Fixes (13):", lines[0])
	bullets := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "- ") {
			bullets++
		}
	}
	assert.Equal(t, MaxListedFindings, bullets)
	assert.Contains(t, got, "- finding 9\n")
	assert.NotContains(t, got, "finding 10")
}

func TestTextReporter_MultiFile(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewTextReporter(&buf, TextOptions{})

	reports := []FileReport{
		{Path: "src/a.jl", Original: "x\n", Final: "x\n"},
		{Path: "src/b.jl", Findings: []rules.Finding{finding("Unbalanced quotes", rules.SeverityError)}, Original: "'", Final: "'"},
	}
	require.NoError(t, r.Report(reports, ReportMetadata{FilesScanned: 2}))

	want := "==> src/a.jl <==\n" +
		"Clean! Ready for Julia.\n\nCode:\nx\n\n" +
		"\n==> src/b.jl <==\n" +
		"Fixes (1):\n- Unbalanced quotes\n\nFixed code:\n'\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_SingleFileHasNoHeader(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewTextReporter(&buf, TextOptions{})

	require.NoError(t, r.Report([]FileReport{{Path: "-", Original: "", Final: ""}}, ReportMetadata{}))
	assert.Equal(t, "Clean! Ready for Julia.\n\nCode:\n\n", buf.String())
}

func TestTextReporter_Diff(t *testing.T) {
	t.Parallel()
	r := NewTextReporter(&bytes.Buffer{}, TextOptions{Diff: true})

	changed := FileReport{
		Findings: []rules.Finding{finding("Auto-fixed: removed atol from inequality @test", rules.SeverityError).AsFixed()},
		Original: "a\n@test x > 0 atol=1e-6\n",
		Final:    "a\n@test x > 0\n",
		Changed:  true,
	}
	want := "Fixes (1):\n- Auto-fixed: removed atol from inequality @test\n\nDiff:\n a\n-@test x > 0 atol=1e-6\n+@test x > 0"
	assert.Equal(t, want, r.Render(changed))

	unchanged := FileReport{
		Findings: []rules.Finding{finding("Unbalanced quotes", rules.SeverityError)},
		Original: "'",
		Final:    "'",
	}
	assert.Equal(t, "Fixes (1):\n- Unbalanced quotes\n\nDiff:\n(no changes)", r.Render(unchanged))

	assert.Equal(t, CleanMessage, r.Render(FileReport{Original: "x", Final: "x"}))
}

func TestTextReporter_Color(t *testing.T) {
	t.Parallel()
	r := NewTextReporter(&bytes.Buffer{}, TextOptions{Color: true, ChromaStyle: "monokai"})

	got := r.Render(FileReport{
		Findings: []rules.Finding{finding("Unbalanced quotes", rules.SeverityError)},
		Original: "x = 1\n",
		Final:    "x = 1\n",
	})
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "Fixes (1):")
	assert.Contains(t, got, "Unbalanced quotes")
}

func TestResolveColor(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.True(t, ResolveColor("always", &buf))
	assert.False(t, ResolveColor("never", &buf))
	assert.False(t, ResolveColor("auto", &buf), "non-file writers are never colored")
}
