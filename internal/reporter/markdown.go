package reporter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wharflab/julint/internal/rules"
)

// MarkdownReporter formats findings as concise markdown tables.
// Designed for AI agents working on Julia code - token-efficient and actionable.
type MarkdownReporter struct {
	writer io.Writer
}

// NewMarkdownReporter creates a new Markdown reporter.
func NewMarkdownReporter(w io.Writer) *MarkdownReporter {
	return &MarkdownReporter{writer: w}
}

// Report implements Reporter.
func (r *MarkdownReporter) Report(reports []FileReport, _ ReportMetadata) error {
	items := flatten(reports)
	if len(items) == 0 {
		_, err := fmt.Fprintln(r.writer, "**No issues found**")
		return err
	}

	sorted := sortBySeverity(items)

	fileSet := make(map[string]struct{})
	for _, it := range sorted {
		fileSet[it.path] = struct{}{}
	}

	if len(fileSet) == 1 {
		return r.writeSingleFileTable(sorted, sorted[0].path)
	}
	return r.writeMultiFileTable(sorted, len(fileSet))
}

// writeSingleFileTable writes a markdown table for findings in a single file.
func (r *MarkdownReporter) writeSingleFileTable(sorted []located, filename string) error {
	if _, err := fmt.Fprintf(r.writer, "**%d %s** in `%s`\n\n",
		len(sorted), pluralize(len(sorted), "issue", "issues"), filename); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.writer, "| Line | Issue |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.writer, "|------|-------|"); err != nil {
		return err
	}

	for _, it := range sorted {
		if _, err := fmt.Fprintf(r.writer, "| %s | %s %s |\n",
			formatLineNumber(it.finding), findingEmoji(it.finding), escapeMarkdown(it.finding.Message)); err != nil {
			return err
		}
	}

	return nil
}

// writeMultiFileTable writes a markdown table for findings across multiple files.
func (r *MarkdownReporter) writeMultiFileTable(sorted []located, fileCount int) error {
	if _, err := fmt.Fprintf(r.writer, "**%d %s** across %d files\n\n",
		len(sorted), pluralize(len(sorted), "issue", "issues"), fileCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.writer, "| File | Line | Issue |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.writer, "|------|------|-------|"); err != nil {
		return err
	}

	for _, it := range sorted {
		if _, err := fmt.Fprintf(r.writer, "| %s | %s | %s %s |\n",
			it.path, formatLineNumber(it.finding), findingEmoji(it.finding), escapeMarkdown(it.finding.Message)); err != nil {
			return err
		}
	}

	return nil
}

// formatLineNumber returns the display string for a finding's line number.
func formatLineNumber(f rules.Finding) string {
	if f.Location.IsTextLevel() {
		return "-"
	}
	return strconv.Itoa(f.Location.Line)
}

// findingEmoji marks applied fixes, otherwise the severity.
func findingEmoji(f rules.Finding) string {
	if f.Fixed {
		return "🔧"
	}
	return severityEmoji(f.Severity)
}

// severityEmoji returns an emoji indicator for the severity level.
func severityEmoji(s rules.Severity) string {
	switch s {
	case rules.SeverityError:
		return "❌"
	case rules.SeverityWarning:
		return "⚠️"
	case rules.SeverityInfo:
		return "ℹ️"
	case rules.SeverityStyle:
		return "💅"
	case rules.SeverityOff:
		return "⭕" // Should never reach here
	default:
		return "⚠️"
	}
}

// escapeMarkdown escapes special markdown characters in table cells.
func escapeMarkdown(s string) string {
	// Escape pipe characters which break table formatting
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}

// pluralize returns singular or plural form based on count.
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
