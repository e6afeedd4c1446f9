package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/gkampitakis/ciinfo"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/wharflab/julint/internal/fix"
	"github.com/wharflab/julint/internal/rules"
)

const (
	// MaxListedFindings caps the bullets in a text report. The header
	// always carries the true total.
	MaxListedFindings = 10

	// CleanMessage heads the report of a text with no findings.
	CleanMessage = "Clean! Ready for Julia."
)

// RenderText renders the plain text report:
//
//	Fixes (<total>):
//	- <message>
//	...
//
//	Fixed code:
//	<final>
//
// or, with no findings, the clean message followed by the original text.
func RenderText(findings []rules.Finding, original, final string) string {
	if len(findings) == 0 {
		return CleanMessage + "\n\nCode:\n" + original
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Fixes (%d):\n", len(findings))
	for i, f := range findings[:min(len(findings), MaxListedFindings)] {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("- ")
		sb.WriteString(f.Message)
	}
	sb.WriteString("\n\nFixed code:\n")
	sb.WriteString(final)
	return sb.String()
}

// ResolveColor decides whether styled output should be written to w.
// "auto" enables color only for a terminal outside CI whose environment
// allows color (NO_COLOR, CLICOLOR_FORCE).
func ResolveColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) || ciinfo.IsCI {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// TextOptions configures the text reporter output.
type TextOptions struct {
	// Color enables styled output and Julia syntax highlighting.
	Color bool

	// Diff shows a line diff instead of the full fixed code.
	Diff bool

	// ChromaStyle is the Chroma style name for syntax highlighting.
	// Default: "monokai" for dark terminals, "github" for light.
	ChromaStyle string
}

// TextReporter formats reports as the text contract, optionally styled.
type TextReporter struct {
	writer io.Writer
	opts   TextOptions

	header   lipgloss.Style
	section  lipgloss.Style
	fixed    lipgloss.Style
	removed  lipgloss.Style
	added    lipgloss.Style
	severity map[rules.Severity]lipgloss.Style

	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
}

// NewTextReporter creates a new text reporter with the given options.
func NewTextReporter(w io.Writer, opts TextOptions) *TextReporter {
	r := &TextReporter{writer: w, opts: opts}
	if !opts.Color {
		return r
	}

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI256)

	r.header = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("214")) // Orange
	r.section = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("252")) // Light gray
	r.fixed = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))    // Green
	r.removed = renderer.NewStyle().Foreground(lipgloss.Color("196"))             // Red
	r.added = renderer.NewStyle().Foreground(lipgloss.Color("42"))
	r.severity = map[rules.Severity]lipgloss.Style{
		rules.SeverityError:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		rules.SeverityWarning: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		rules.SeverityInfo:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		rules.SeverityStyle:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
	}

	r.lexer = lexers.Get("julia")
	if r.lexer == nil {
		r.lexer = lexers.Fallback
	}
	r.lexer = chroma.Coalesce(r.lexer)

	styleName := opts.ChromaStyle
	if styleName == "" {
		if renderer.HasDarkBackground() {
			styleName = "monokai"
		} else {
			styleName = "github"
		}
	}
	r.style = styles.Get(styleName)
	if r.style == nil {
		r.style = styles.Fallback
	}
	r.formatter = formatters.Get("terminal256")
	if r.formatter == nil {
		r.formatter = formatters.Fallback
	}
	return r
}

// Report implements Reporter. With more than one report, each is headed
// by "==> path <==" and separated by a blank line.
func (r *TextReporter) Report(reports []FileReport, _ ReportMetadata) error {
	multi := len(reports) > 1
	for i, rep := range reports {
		var sb strings.Builder
		if multi {
			if i > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "==> %s <==\n", rep.DisplayPath())
		}
		sb.WriteString(r.Render(rep))
		sb.WriteByte('\n')
		if _, err := io.WriteString(r.writer, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// Render renders one report according to the reporter options.
func (r *TextReporter) Render(rep FileReport) string {
	if !r.opts.Color && !r.opts.Diff {
		return RenderText(rep.Findings, rep.Original, rep.Final)
	}

	if len(rep.Findings) == 0 {
		if r.opts.Diff {
			return r.paint(r.fixed, CleanMessage)
		}
		return r.paint(r.fixed, CleanMessage) + "\n\n" + r.paint(r.section, "Code:") + "\n" + r.highlight(rep.Original)
	}

	var sb strings.Builder
	sb.WriteString(r.paint(r.header, fmt.Sprintf("Fixes (%d):", len(rep.Findings))))
	sb.WriteByte('\n')
	for i, f := range rep.Findings[:min(len(rep.Findings), MaxListedFindings)] {
		if i > 0 {
			sb.WriteByte('\n')
		}
		bullet := r.paint(r.severity[f.Severity], "-")
		if f.Fixed {
			bullet = r.paint(r.fixed, "-")
		}
		sb.WriteString(bullet + " " + f.Message)
	}
	sb.WriteString("\n\n")

	if r.opts.Diff {
		sb.WriteString(r.paint(r.section, "Diff:"))
		sb.WriteByte('\n')
		sb.WriteString(r.renderDiff(rep.Original, rep.Final))
		return strings.TrimSuffix(sb.String(), "\n")
	}

	sb.WriteString(r.paint(r.section, "Fixed code:"))
	sb.WriteByte('\n')
	sb.WriteString(r.highlight(rep.Final))
	return sb.String()
}

// renderDiff renders the line diff, coloring removed and added lines.
func (r *TextReporter) renderDiff(original, final string) string {
	d := fix.Diff(original, final)
	if d == "" {
		return "(no changes)\n"
	}
	if !r.opts.Color {
		return d
	}

	var sb strings.Builder
	for line := range strings.SplitSeq(strings.TrimSuffix(d, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "-"):
			line = r.removed.Render(line)
		case strings.HasPrefix(line, "+"):
			line = r.added.Render(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// paint renders s with style when color is enabled.
func (r *TextReporter) paint(style lipgloss.Style, s string) string {
	if !r.opts.Color {
		return s
	}
	return style.Render(s)
}

// highlight renders Julia source with syntax highlighting. It returns the
// source unchanged when color is off or highlighting fails.
func (r *TextReporter) highlight(source string) string {
	if !r.opts.Color || r.lexer == nil || source == "" {
		return source
	}
	it, err := r.lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}
	var sb strings.Builder
	if err := r.formatter.Format(&sb, r.style, it); err != nil {
		return source
	}
	return sb.String()
}
