package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/wharflab/julint/internal/rules"
)

// GitHubActionsReporter formats findings as GitHub Actions workflow commands.
// These commands appear as annotations in the GitHub Actions UI.
//
// Format: ::{level} file={file},line={line},title={title}::{message}
//
// See: https://docs.github.com/actions/using-workflows/workflow-commands-for-github-actions#setting-an-error-message
type GitHubActionsReporter struct {
	writer io.Writer
}

// NewGitHubActionsReporter creates a new GitHub Actions reporter.
func NewGitHubActionsReporter(w io.Writer) *GitHubActionsReporter {
	return &GitHubActionsReporter{writer: w}
}

// Report implements Reporter.
func (r *GitHubActionsReporter) Report(reports []FileReport, _ ReportMetadata) error {
	for _, it := range flatten(reports) {
		parts := []string{"file=" + escapeGitHubProperty(it.path)}
		if !it.finding.Location.IsTextLevel() {
			parts = append(parts, fmt.Sprintf("line=%d", it.finding.Location.Line))
		}
		parts = append(parts, "title="+escapeGitHubProperty(it.finding.RuleCode))

		if _, err := fmt.Fprintf(r.writer, "::%s %s::%s\n",
			severityToGitHubLevel(it.finding),
			strings.Join(parts, ","),
			escapeGitHubMessage(it.finding.Message),
		); err != nil {
			return err
		}
	}
	return nil
}

// GitHub Actions annotation levels.
const (
	ghLevelError   = "error"
	ghLevelWarning = "warning"
	ghLevelNotice  = "notice"
)

// severityToGitHubLevel maps a finding to GitHub Actions levels.
// Applied fixes are notices: the problem no longer exists in the output.
func severityToGitHubLevel(f rules.Finding) string {
	if f.Fixed {
		return ghLevelNotice
	}
	switch f.Severity {
	case rules.SeverityError:
		return ghLevelError
	case rules.SeverityWarning:
		return ghLevelWarning
	case rules.SeverityInfo, rules.SeverityStyle:
		return ghLevelNotice
	case rules.SeverityOff:
		return ghLevelWarning
	default:
		return ghLevelWarning
	}
}

// escapeGitHubMessage escapes special characters in GitHub Actions workflow command messages.
// Messages use escapeData() rules which escape "%", "\r", "\n" but NOT ":" or ",".
// See: https://github.com/actions/toolkit/blob/main/packages/core/src/command.ts
func escapeGitHubMessage(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// escapeGitHubProperty escapes special characters in GitHub Actions workflow command properties.
// Properties (file, title, etc.) use escapeProperty() rules which escape "%", "\r", "\n", ":", and ",".
func escapeGitHubProperty(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	s = strings.ReplaceAll(s, ":", "%3A")
	s = strings.ReplaceAll(s, ",", "%2C")
	return s
}
